package middleware

import (
	"time"

	"wasset-admin/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// NewLogger logs every request with method, path, status and latency.
func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		started := time.Now()
		err := ctx.Next()

		logger := log.GetLogger()
		logger.Info(
			"http",
			ctx.Method()+" "+ctx.Path(),
			"request",
			time.Since(started).String(),
		)
		return err
	}
}
