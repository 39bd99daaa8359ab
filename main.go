package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dgeemedia/chrenis/controllers"
	"github.com/dgeemedia/chrenis/database"
	"github.com/dgeemedia/chrenis/middleware"
	"github.com/dgeemedia/chrenis/routes"
	"github.com/dgeemedia/chrenis/services"
	"github.com/dgeemedia/chrenis/stores"
	"github.com/dgeemedia/chrenis/utils"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load .env if present (do not overwrite already-set environment variables).
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	requiredEnvVars := []string{"DB_HOST", "DB_USER", "DB_PASS", "DB_NAME", "JWT_SECRET"}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto-migrate only in development to avoid accidental production schema changes
	if strings.ToLower(os.Getenv("ENV")) == "development" {
		log.Println("Running in development mode - performing auto-migration")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		log.Println("Auto-migration completed successfully")
	} else {
		log.Println("Running in production mode - skipping auto-migration")
	}

	rdb := utils.NewRedisClient()

	userStore := stores.NewUserStore(db)
	projectStore := stores.NewProjectStore(db)
	investmentStore := stores.NewInvestmentStore(db)
	transactionStore := stores.NewTransactionStore(db)
	notificationStore := stores.NewNotificationStore(db)

	mailer := services.NewMailer(
		os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"),
		os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS"),
		os.Getenv("SMTP_FROM"),
	)
	investmentSvc := services.NewInvestmentService(investmentStore, transactionStore, projectStore, notificationStore).
		WithUnitOfWork(func(ctx context.Context, fn func(services.InvestmentStore, services.TransactionStore) error) error {
			return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				return fn(stores.NewInvestmentStore(tx), stores.NewTransactionStore(tx))
			})
		})
	transactionSvc := services.NewTransactionService(transactionStore, investmentStore)
	paymentSvc := services.NewPaymentService(os.Getenv("PAYMENT_CHECKOUT_BASE"))

	auth := middleware.NewAuthenticator(rdb)
	ctrl := routes.Controllers{
		Auth:          controllers.NewAuthController(userStore, mailer, rdb),
		Users:         controllers.NewUserController(userStore),
		Projects:      controllers.NewProjectController(projectStore),
		Investments:   controllers.NewInvestmentController(investmentSvc),
		Transactions:  controllers.NewTransactionController(transactionSvc),
		Notifications: controllers.NewNotificationController(notificationStore),
		Payments:      controllers.NewPaymentController(paymentSvc),
	}

	router := routes.InitRouter(ctrl, auth)

	// Global middleware, outermost first
	handler := middleware.RequestLogMiddleware(
		middleware.SecurityHeadersMiddleware(
			middleware.MaxBodyMiddleware(
				middleware.RecoveryMiddleware(router),
			),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
