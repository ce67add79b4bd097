package middleware

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"gamereviews/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Logger is the global structured logger instance used throughout the application.
var Logger *slog.Logger

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	UsernameKey  contextKey = "username"
	TraceIDKey   contextKey = "trace_id"
)

// Fiber locals shared between middleware and handlers.
const (
	LocalRequestID = "requestid"
	LocalIdentity  = "identity"
	LocalTraceID   = "traceID"
)

// ctxHandler is a slog.Handler that adds context values to the log record.
type ctxHandler struct {
	slog.Handler
}

// Handle adds context values to the record before passing it to the underlying handler.
func (h *ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	if rid, ok := ctx.Value(RequestIDKey).(string); ok {
		r.AddAttrs(slog.String("request_id", rid))
	}
	if user, ok := ctx.Value(UsernameKey).(string); ok {
		r.AddAttrs(slog.String("username", user))
	}
	if tid, ok := ctx.Value(TraceIDKey).(string); ok {
		r.AddAttrs(slog.String("trace_id", tid))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ctxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ctxHandler{h.Handler.WithAttrs(attrs)}
}

func (h *ctxHandler) WithGroup(name string) slog.Handler {
	return &ctxHandler{h.Handler.WithGroup(name)}
}

func init() {
	Logger = NewLogger(os.Getenv("APP_ENV"))
}

// NewLogger builds the context-aware logger: JSON in production, text otherwise.
func NewLogger(env string) *slog.Logger {
	var handler slog.Handler
	level := slog.LevelInfo

	switch env {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	case "test":
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(&ctxHandler{handler})
}

// ContextMiddleware copies the request id and trace id from Fiber locals into the request context
// so the context-aware logger picks them up in deeper layers.
func ContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		if rid, ok := c.Locals(LocalRequestID).(string); ok {
			ctx = context.WithValue(ctx, RequestIDKey, rid)
		}
		if tid, ok := c.Locals(LocalTraceID).(string); ok {
			ctx = context.WithValue(ctx, TraceIDKey, tid)
		}

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// StructuredLogger logs one line per request. It runs before the central
// error handler, so the status of a failed request is derived from the error.
func StructuredLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusOf(err)
		}

		fields := []any{
			slog.Int("status", status),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
			slog.Duration("latency", time.Since(start)),
			slog.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		}
		if identity, ok := IdentityFrom(c); ok {
			fields = append(fields, slog.String("username", identity.Username))
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			fields = append(fields, slog.String("error", err.Error()))
			Logger.ErrorContext(c.UserContext(), "request failed", fields...)
		case err != nil:
			fields = append(fields, slog.String("error", err.Error()))
			Logger.WarnContext(c.UserContext(), "request rejected", fields...)
		default:
			Logger.InfoContext(c.UserContext(), "request processed", fields...)
		}

		return err
	}
}

func statusOf(err error) int {
	if appErr, ok := models.AsAppError(err); ok {
		return appErr.Status
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
