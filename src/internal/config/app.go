package config

import (
	"wasset-admin/src/internal/delivery/http"
	"wasset-admin/src/internal/delivery/http/middleware"
	"wasset-admin/src/internal/delivery/http/route"
	"wasset-admin/src/internal/gateway/messaging"
	"wasset-admin/src/internal/repository"
	"wasset-admin/src/internal/usecase"
	"wasset-admin/src/pkg/kafka"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/mongodb"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB       mongodb.DBInterface
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer kafka.Producer
}

func Bootstrap(config *BootstrapConfig) {
	usersCollection := config.Config.GetString("collections.users")
	transactionsCollection := config.Config.GetString("collections.transactions")
	paymentLinksCollection := config.Config.GetString("collections.payment_links")
	supportCollection := config.Config.GetString("collections.support_tickets")

	// setup repositories
	userRepository := repository.NewUserRepository(config.DB, usersCollection)
	transactionRepository := repository.NewTransactionRepository(config.DB, transactionsCollection)
	paymentLinkRepository := repository.NewPaymentLinkRepository(config.DB, paymentLinksCollection)
	ticketRepository := repository.NewSupportTicketRepository(config.DB, supportCollection)
	walletRepository := repository.NewWalletRepository(config.DB, "wallet_transactions", "wallets")
	flagRepository := repository.NewFeatureFlagsRepository(config.DB, "featureFlags")
	adminRepository := repository.NewAdminRepository(config.DB, "admins")
	auditRepository := repository.NewAuditRepository(config.DB, "logs")
	exportRepository := repository.NewExportRepository(config.DB)

	var auditProducer *messaging.AuditProducer
	if config.Producer != nil {
		auditProducer = messaging.NewAuditProducer(config.Producer, config.Log)
	}
	audit := usecase.NewAuditTrail(config.Log, auditRepository, auditProducer)

	// setup use cases
	userUseCase := usecase.NewUserUseCase(config.Log, config.Validate, userRepository, audit)
	transactionUseCase := usecase.NewTransactionUseCase(config.Log, config.Validate, transactionRepository, audit)
	paymentLinkUseCase := usecase.NewPaymentLinkUseCase(config.Log, config.Validate, paymentLinkRepository, audit, config.Config)
	supportUseCase := usecase.NewSupportUseCase(config.Log, config.Validate, ticketRepository, audit)
	walletUseCase := usecase.NewWalletUseCase(config.Log, walletRepository, config.Config)
	analyticsUseCase := usecase.NewAnalyticsUseCase(config.Log, transactionRepository, userRepository, config.Config)
	exportUseCase := usecase.NewExportUseCase(config.Log, exportRepository, config.Config)
	featureFlagsUseCase := usecase.NewFeatureFlagsUseCase(config.Log, flagRepository, audit)
	authUseCase := usecase.NewAuthUseCase(config.Log, config.Validate, adminRepository)

	// setup controllers
	authController := http.NewAuthController(authUseCase, config.Log)
	userController := http.NewUserController(userUseCase, config.Log)
	transactionController := http.NewTransactionController(transactionUseCase, config.Log)
	paymentLinkController := http.NewPaymentLinkController(paymentLinkUseCase, config.Log)
	supportController := http.NewSupportController(supportUseCase, config.Log)
	walletController := http.NewWalletController(walletUseCase, config.Log)
	analyticsController := http.NewAnalyticsController(analyticsUseCase, config.Log)
	exportController := http.NewExportController(exportUseCase, config.Log)
	featureFlagController := http.NewFeatureFlagController(featureFlagsUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)

	routeConfig := route.RouteConfig{
		App:                   config.App,
		AuthController:        authController,
		UserController:        userController,
		TransactionController: transactionController,
		PaymentLinkController: paymentLinkController,
		SupportController:     supportController,
		WalletController:      walletController,
		AnalyticsController:   analyticsController,
		ExportController:      exportController,
		FeatureFlagController: featureFlagController,
		AuthMiddleware:        authMiddleware,
	}
	routeConfig.Setup()
}
