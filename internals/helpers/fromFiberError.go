package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FromFiberError mengubah error handler (biasanya *fiber.Error) jadi response JSON konsisten.
// Kalau bukan *fiber.Error, fallback ke 500 dengan pesan asli.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string][]string, len(ve))
		for _, f := range ve {
			fields[f.Field()] = append(fields[f.Field()], f.Tag())
		}
		return JsonValidationError(c, fields)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// ErrorHandler dipasang di fiber.Config; 5xx ikut dicatat.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}
		return FromFiberError(c, err)
	}
}
