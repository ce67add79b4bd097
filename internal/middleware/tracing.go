package middleware

import (
	"context"

	"gamereviews/internal/models"
	"gamereviews/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TraceHeader echoes the request's trace ID back to the client.
const TraceHeader = "X-Trace-ID"

// TracingMiddleware opens a server span per request, continuing any trace
// propagated in the request headers. The span is renamed to the matched
// route pattern once routing has run, so /api/reviews/2 and /api/reviews/3
// share the name "GET /api/reviews/:review_id".
func TracingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		carrier := propagation.HeaderCarrier(c.GetReqHeaders())
		ctx := otel.GetTextMapPropagator().Extract(c.UserContext(), carrier)

		ctx, span := observability.Tracer.Start(ctx, c.Method()+" "+c.Path(),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", c.Method()),
				attribute.String("url.path", c.Path()),
				attribute.String("client.address", c.IP()),
				attribute.String("user_agent.original", c.Get(fiber.HeaderUserAgent)),
			),
		)
		defer span.End()

		traceID := span.SpanContext().TraceID().String()
		c.Locals(LocalTraceID, traceID)
		c.Set(TraceHeader, traceID)
		c.SetUserContext(context.WithValue(ctx, TraceIDKey, traceID))

		err := c.Next()

		if route := c.Route(); route != nil && route.Path != "/" {
			span.SetName(c.Method() + " " + route.Path)
			span.SetAttributes(attribute.String("http.route", route.Path))
		}
		if requestID, ok := c.Locals(LocalRequestID).(string); ok {
			span.SetAttributes(attribute.String("request.id", requestID))
		}
		if identity, ok := IdentityFrom(c); ok {
			span.SetAttributes(
				attribute.String("user.name", identity.Username),
				attribute.Bool("user.admin", identity.IsAdmin()),
			)
		}
		annotateError(span, err)

		return err
	}
}

// annotateError records the outcome of a handler. Client errors are tagged
// with their kind; only internal failures mark the span as failed.
func annotateError(span trace.Span, err error) {
	if err == nil {
		return
	}
	if appErr, ok := models.AsAppError(err); ok && appErr.Kind != models.KindInternal {
		span.SetAttributes(attribute.String("error.kind", appErr.Kind.String()))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
