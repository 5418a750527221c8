package route

import (
	"time"

	internalHttp "wasset-admin/src/internal/delivery/http"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                   *fiber.App
	AuthController        *internalHttp.AuthController
	UserController        *internalHttp.UserController
	TransactionController *internalHttp.TransactionController
	PaymentLinkController *internalHttp.PaymentLinkController
	SupportController     *internalHttp.SupportController
	WalletController      *internalHttp.WalletController
	AnalyticsController   *internalHttp.AnalyticsController
	ExportController      *internalHttp.ExportController
	FeatureFlagController *internalHttp.FeatureFlagController
	AuthMiddleware        fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.SetupGuestRoute()
	c.SetupAuthRoute()

	c.App.Use(func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "المسار غير موجود",
		})
	})
}

func (c *RouteConfig) SetupGuestRoute() {
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":    "ok",
			"service":   ctx.App().Config().AppName,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
	c.App.Post("/auth/login", c.AuthController.Login)
}

func (c *RouteConfig) SetupAuthRoute() {
	api := c.App.Group("/", c.AuthMiddleware)

	api.Post("/auth/logout", c.AuthController.Logout)

	api.Get("/users", c.UserController.List)
	api.Get("/users/:id", c.UserController.Get)
	api.Put("/users/:id", c.UserController.Update)
	api.Delete("/users/:id", c.UserController.Delete)
	api.Put("/users/:id/block", c.UserController.Block)
	api.Put("/users/:id/unblock", c.UserController.Unblock)

	api.Get("/transactions", c.TransactionController.List)
	api.Get("/transactions/:id", c.TransactionController.Get)
	api.Put("/transactions/:id", c.TransactionController.Update)

	api.Get("/payment-links", c.PaymentLinkController.List)
	api.Post("/payment-links", c.PaymentLinkController.Create)
	api.Put("/payment-links/:id", c.PaymentLinkController.Update)
	api.Put("/payment-links/:id/toggle", c.PaymentLinkController.Toggle)

	api.Get("/support", c.SupportController.List)
	api.Put("/support/:id", c.SupportController.Update)

	api.Get("/wallet/transactions", c.WalletController.ListTransactions)
	api.Get("/wallet/wallets", c.WalletController.ListWallets)
	api.Get("/wallet/balance", c.WalletController.Balance)

	api.Get("/analytics/dashboard", c.AnalyticsController.Dashboard)

	api.Get("/export/:type", c.ExportController.Export)

	api.Get("/feature-flags", c.FeatureFlagController.Get)
	api.Put("/feature-flags", c.FeatureFlagController.Update)
}
