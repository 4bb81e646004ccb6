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

	"github.com/onegreenvn/outreach-dashboard/docs"
	"github.com/onegreenvn/outreach-dashboard/internal/config"
	"github.com/onegreenvn/outreach-dashboard/internal/database"
	"github.com/onegreenvn/outreach-dashboard/internal/database/repository"
	"github.com/onegreenvn/outreach-dashboard/internal/router"
	"github.com/onegreenvn/outreach-dashboard/internal/services"
	"github.com/onegreenvn/outreach-dashboard/internal/services/excel"
	"github.com/onegreenvn/outreach-dashboard/internal/services/outbound"
	"github.com/onegreenvn/outreach-dashboard/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Set Swagger base path dynamically
	if cfg.BasePath != "" {
		docs.SwaggerInfo.BasePath = cfg.BasePath
	}

	// Configure logging
	configureLogging(cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	// Initialize Sentry
	if err := utils.InitSentry(cfg.SentryDSN); err != nil {
		logrus.Warnf("Failed to initialize Sentry: %v", err)
	}
	defer utils.FlushSentry()

	components := map[string]bool{"database": false, "rabbitmq": false, "sentry": cfg.SentryDSN != ""}

	// Shared SSE hub for the activity feed
	sseHub := services.NewSSEHub()
	activityService := services.NewActivityService(sseHub)

	// Exports are written by the scraper page and the export endpoint
	excelService := excel.NewExcelService(cfg.ExportsDir)
	cleanupTasks := []services.CleanupTask{
		{Name: "exports", Run: excelService.DeleteExportsOlderThan},
	}

	// Initialize database connection (optional)
	if cfg.Database.Enabled() {
		db, err := database.InitDB(cfg.Database)
		if err != nil {
			logrus.Warnf("Failed to initialize database, activity history disabled: %v", err)
			utils.CaptureError(err, map[string]string{"component": "database"})
		} else {
			defer database.Close(db)
			activityRepo := repository.NewActivityRepository(db)
			activityService.SetStore(activityRepo)
			cleanupTasks = append(cleanupTasks, services.CleanupTask{Name: "activity", Run: activityRepo.DeleteOlderThan})
			components["database"] = true
		}
	} else {
		logrus.Info("DB_* not set, activity history disabled")
	}

	// Initialize RabbitMQ service (optional)
	if cfg.RabbitMQ.Host != "" {
		rabbitMQService, err := services.NewRabbitMQService(cfg.RabbitMQ)
		if err != nil {
			logrus.Warnf("Failed to initialize RabbitMQ: %v", err)
		} else {
			logrus.Info("RabbitMQ service initialized")
			defer rabbitMQService.Close()
			activityService.SetPublisher(rabbitMQService, cfg.RabbitMQ.Queue)
			components["rabbitmq"] = true
		}
	}

	// Start cleanup service for activity rows and export files
	cleanupService := services.NewCleanupService(cfg.ActivityCleanupInterval, cfg.ActivityRetentionDays, cleanupTasks...)
	cleanupService.Start()
	defer cleanupService.Stop()

	// Heartbeat keeps idle SSE connections open through proxies
	heartbeatStop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sseHub.SendHeartbeat()
			case <-heartbeatStop:
				return
			}
		}
	}()
	defer close(heartbeatStop)

	// Outbound adapters share one client
	client := outbound.NewClient()

	r, err := router.SetupRouter(cfg, router.Dependencies{
		Calls:      services.NewVonageService(cfg.Vonage, client),
		Scraper:    services.NewScraperService(cfg.Scraper, client),
		Blogs:      services.NewBlogService(cfg.Groq, client),
		Exporter:   excelService,
		Activity:   activityService,
		SSEHub:     sseHub,
		Components: components,
	})
	if err != nil {
		logrus.Fatalf("Failed to set up router: %v", err)
	}

	// Configure HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", cfg.Port)
		logrus.Infof("Dashboard: http://localhost:%s/home", cfg.Port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Allow an in-flight scrape to finish
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Scraper.Timeout+10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
		return
	}

	logrus.Info("Server exited properly")
}

func configureLogging(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
