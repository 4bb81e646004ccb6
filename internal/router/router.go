package router

import (
	"fmt"
	"time"

	"github.com/onegreenvn/outreach-dashboard/internal/config"
	"github.com/onegreenvn/outreach-dashboard/internal/handlers"
	"github.com/onegreenvn/outreach-dashboard/internal/middleware"
	"github.com/onegreenvn/outreach-dashboard/internal/services"
	"github.com/onegreenvn/outreach-dashboard/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the services the routes are wired to
type Dependencies struct {
	Calls    handlers.CallPlacer
	Scraper  handlers.URLScraper
	Blogs    handlers.ArticleGenerator
	Exporter handlers.ProfileExporter
	Activity *services.ActivityService
	SSEHub   *services.SSEHub

	// Components reports which optional backends are enabled, for /api/v1/health
	Components map[string]bool
}

// SetupRouter configures the Gin router with the dashboard pages and the JSON API
func SetupRouter(cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	pages, err := web.LoadPages()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create middleware
	basicAuth := middleware.NewBasicAuthMiddleware(cfg.Dashboard.User, cfg.Dashboard.PasswordHash)
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(cfg.Dashboard.APIKey)
	if !basicAuth.Enabled() {
		logrus.Warn("DASHBOARD_USER/DASHBOARD_PASSWORD_HASH not set, dashboard pages are public")
	}
	if cfg.Dashboard.APIKey == "" {
		logrus.Warn("API_KEY not set, JSON API is public")
	}

	// Create handlers
	var recorder handlers.ActivityRecorder
	if deps.Activity != nil {
		recorder = deps.Activity
	}
	outreach := handlers.NewOutreach(deps.Calls, deps.Scraper, deps.Blogs, deps.Exporter, recorder)
	pagesHandler := handlers.NewPagesHandler(outreach, pages, cfg.BasePath)
	apiHandler := handlers.NewAPIHandler(outreach, cfg.BasePath)
	exportHandler := handlers.NewExportHandler(deps.Exporter)
	healthHandler := handlers.NewHealthHandler(deps.Components)

	r.GET("/up", healthHandler.Up)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logrus.Info("Swagger UI endpoint registered at /swagger/index.html")

	// Dashboard pages
	dashboard := r.Group("")
	dashboard.Use(basicAuth.BasicAuth())
	{
		dashboard.GET("/", pagesHandler.Home)
		dashboard.GET("/home", pagesHandler.Home)
		dashboard.POST("/make_call", pagesHandler.MakeCall)
		dashboard.GET("/scrapper", pagesHandler.Scrapper)
		dashboard.POST("/scrape_urls", pagesHandler.ScrapeURLs)
		dashboard.GET("/blogs", pagesHandler.Blogs)
		dashboard.POST("/generate_blog", pagesHandler.GenerateBlog)
		dashboard.GET("/exports/:filename", exportHandler.DownloadExport)
	}

	// API v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", healthHandler.Health)

		protected := api.Group("")
		protected.Use(apiKeyMiddleware.APIKeyAuthMiddleware())
		{
			protected.POST("/calls", apiHandler.MakeCalls)
			protected.POST("/scrape", apiHandler.Scrape)
			protected.POST("/scrape/export", apiHandler.ScrapeAndExport)
			protected.GET("/exports/:filename", exportHandler.DownloadExport)
			protected.POST("/blogs/generate", apiHandler.GenerateBlog)

			if deps.Activity != nil && deps.SSEHub != nil {
				activityHandler := handlers.NewActivityHandler(deps.Activity, deps.SSEHub)
				protected.GET("/activity", activityHandler.ListActivity)
				protected.GET("/activity/stream", activityHandler.StreamActivity)
			}
		}
	}

	return r, nil
}
