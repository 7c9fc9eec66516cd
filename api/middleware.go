package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"os-scheduler-sim/internal/core"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

func newRequestID() string {
	return "req_" + uuid.New().String()[:8]
}

func requestIDFrom(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestLogger tags every request with an id (reusing the caller's
// X-Request-ID when given) and logs it once it is answered.
func RequestLogger(logger *zap.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Get(requestIDHeader)
		if id == "" {
			id = newRequestID()
		}
		ctx.Locals(requestIDKey, id)
		ctx.Set(requestIDHeader, id)

		start := time.Now()
		err := ctx.Next()
		if err != nil {
			if handlerErr := ctx.App().ErrorHandler(ctx, err); handlerErr != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError)
			}
		}

		logger.Info("request",
			zap.String("request_id", id),
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
			zap.Int("status", ctx.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return nil
	}
}

// ErrorHandler renders handler errors as {"error", "request_id"}. Validation
// failures are the caller's fault (400); anything unclassified is an engine
// defect (500).
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
	case errors.Is(err, core.ErrValidation):
		status = fiber.StatusBadRequest
	}
	if status >= fiber.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err), zap.String("request_id", requestIDFrom(ctx)))
	}
	return ctx.Status(status).JSON(fiber.Map{
		"error":      err.Error(),
		"request_id": requestIDFrom(ctx),
	})
}
