package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"wasset-admin/src/internal/config"
	"wasset-admin/src/internal/delivery/http/middleware"
	"wasset-admin/src/pkg/log"
)

func main() {

	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "WASSET_ADMIN")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viperConfig.SetDefault("mongo.database", "wasset")
	viperConfig.SetDefault("jwt.secret", "change-me")
	viperConfig.SetDefault("commission.rate", 0.02)
	viperConfig.SetDefault("dashboard.scan.limit", 1000)
	viperConfig.SetDefault("export.scan.limit", 1000)
	viperConfig.SetDefault("collections.users", "users")
	viperConfig.SetDefault("collections.transactions", "transactions")
	viperConfig.SetDefault("collections.payment_links", "payment_links")
	viperConfig.SetDefault("collections.support_tickets", "support_tickets")
	log.InitLogger(viperConfig)
	logger := log.GetLogger()
	db := config.NewDatabase(viperConfig, logger)
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	app.Use(middleware.NewLogger())
	config.Bootstrap(&config.BootstrapConfig{
		DB:       db,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
	})

	go func() {
		webPort := viperConfig.GetInt("web.port")
		if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("main", "Server wasset-admin is shutting down...", "graceful", "")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.Shutdown(); err != nil {
		logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("main", fmt.Sprintf("Error closing producer: %v", err), "graceful", "")
		}
	}
	if db != nil {
		if err := db.Disconnect(shutdownCtx); err != nil {
			logger.Error("main", fmt.Sprintf("Error closing database: %v", err), "graceful", "")
		}
	}

	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
