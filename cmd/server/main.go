package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ducminh2107/QL-DoAn-sub001/docs"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/database"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/database/repository"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/router"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/services"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/services/auth"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title Thesis Management API
// @version 1.0
// @description Thesis topic registration and management backend with JWT authentication
// @termsOfService http://swagger.io/terms/

// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter `Bearer ` followed by your JWT token (e.g. "Bearer <token>")

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Set Swagger base path dynamically
	basePath := getEnv("BASE_PATH", "/")
	docs.SwaggerInfo.BasePath = basePath

	// Configure logging
	configureLogging()

	// Initialize Sentry
	utils.InitSentry()

	// Initialize database connection
	db, err := database.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize auth service
	authService := auth.NewAuthService(db)

	// Initialize RabbitMQ; the notification service degrades to direct
	// inserts when the broker is unavailable
	notificationRepo := repository.NewNotificationRepository(db)
	rabbitMQService, err := services.NewRabbitMQService()
	if err != nil {
		logrus.Warnf("Failed to initialize RabbitMQ: %v", err)
		rabbitMQService = nil
	} else {
		logrus.Info("RabbitMQ service initialized")
		defer rabbitMQService.Close()
	}

	notificationService := services.NewNotificationService(notificationRepo, rabbitMQService)
	if rabbitMQService != nil {
		if err := notificationService.StartConsumer(); err != nil {
			logrus.Warnf("Failed to start notification consumer: %v", err)
		} else {
			logrus.Info("Notification consumer started")
			defer notificationService.StopConsumer()
		}
	}

	// Create admin user if not exists
	if err := authService.CreateAdminUser(); err != nil {
		logrus.Warnf("Failed to create admin user: %v", err)
	} else {
		logrus.Info("Admin user check completed")
	}

	// Initialize token cleanup service
	tokenCleanupService := auth.NewTokenCleanupService(db)
	tokenCleanupService.Start()
	defer tokenCleanupService.Stop()

	// Start the registration period sweeper (closes expired periods)
	periodService := services.NewRegistrationPeriodService(
		repository.NewRegistrationPeriodRepository(db),
		repository.NewSemesterRepository(db),
	)
	periodService.Start()
	defer periodService.Stop()

	// Initialize router
	r := router.SetupRouter(db, authService, notificationService, periodService)

	// Configure HTTP server
	port := getEnv("PORT", "8080")
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", port)
		logrus.Infof("API Health Check: http://localhost:%s/api/v1/health", port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the server
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}

func configureLogging() {
	logLevel := getEnv("LOG_LEVEL", "info")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
