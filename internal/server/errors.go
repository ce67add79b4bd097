package server

import (
	"errors"
	"log/slog"

	"gamereviews/internal/database"
	"gamereviews/internal/middleware"
	"gamereviews/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the single place errors become responses. Store failures are
// translated, known rejections are reported as {message}, and anything else is
// logged and hidden behind a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	err = database.TranslateError(err)

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
			err = models.NewRouteNotFoundError()
		default:
			return respond(c, fiberErr.Code, fiberErr.Message)
		}
	}

	appErr, ok := models.AsAppError(err)
	if !ok {
		return internalError(c, err)
	}

	switch appErr.Kind {
	case models.KindNotFound, models.KindInvalidInput, models.KindBadRequest, models.KindConflict,
		models.KindUnauthenticated, models.KindForbidden, models.KindRouteNotFound:
		return respond(c, appErr.Status, appErr.Message)
	default:
		// KindInternal
		return internalError(c, appErr)
	}
}

// RouteNotFound answers any request no route matched.
func RouteNotFound(*fiber.Ctx) error {
	return models.NewRouteNotFoundError()
}

func respond(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{Message: message})
}

func internalError(c *fiber.Ctx, err error) error {
	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return respond(c, fiber.StatusInternalServerError, models.MsgInternalServerErr)
}
