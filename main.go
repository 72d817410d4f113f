// File: promarket/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"promarket/config"
	"promarket/handlers"
	"promarket/middleware"
	"promarket/routes"
	"promarket/services/bookingview"
	"promarket/services/marketplace"
	"promarket/services/payments"
	"promarket/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	displayLoc := time.Local
	if tz := config.AppConfig.DisplayTimezone; tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			logger.Sugar().Fatalf("main: invalid DISPLAY_TIMEZONE %q: %v", tz, err)
		}
		displayLoc = loc
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")

	// Backend API client.
	apiClient := marketplace.NewClient(
		config.AppConfig.BackendURL,
		config.AppConfig.SessionCookie,
		logger,
	)

	// Services.
	bookingSvc := &bookingview.DefaultBookingViewService{
		API:      apiClient,
		Logger:   logger,
		Location: displayLoc,
	}
	paymentsSvc := &payments.DefaultPaymentsService{
		API:              apiClient,
		Logger:           logger,
		TransactionLimit: payments.DefaultTransactionLimit,
	}
	stripeCtx := payments.NewStripeContext(config.AppConfig.StripePublishableKey)

	flashCodec := utils.NewFlashCodec(
		[]byte(config.AppConfig.JWTSecret),
		"promarket_flash",
		config.IsProduction(),
	)

	deps := &routes.Deps{
		Booking:  handlers.NewBookingHandler(bookingSvc, flashCodec),
		Payments: handlers.NewPaymentsHandler(paymentsSvc, stripeCtx, flashCodec),
		Flash:    flashCodec,
		Sessions: utils.GetSessionCacheClient(),
	}
	routes.RegisterRoutes(router, deps)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	logger.Info("backend API configured", zap.String("url", config.AppConfig.BackendURL))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
