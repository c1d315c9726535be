package serverutils

import (
	"errors"

	"abhi-advisor-be/internal/pkg/apperror"
	"abhi-advisor-be/internal/pkg/logger"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into the standard
// error envelope. Server errors are logged and reported to Sentry; the
// Sentry call is a no-op when no DSN was configured.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, log, err)
	}
}

func WriteError(ctx *fiber.Ctx, log logger.ILogger, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	status := apperror.HTTPStatus(err)
	body := ErrorResponse(status, err.Error())

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		body.Errors = appErr.Fields
	}

	if status >= fiber.StatusInternalServerError {
		if log != nil {
			log.Error("HTTP", "request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}
		sentry.CaptureException(err)
		body.Message = "Internal server error"
	}

	return ctx.Status(status).JSON(body)
}
