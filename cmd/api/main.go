package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Shubhk02/MGNREGA-Finding/internal/cache"
	"github.com/Shubhk02/MGNREGA-Finding/internal/dashboard"
	"github.com/Shubhk02/MGNREGA-Finding/internal/datagov"
	"github.com/Shubhk02/MGNREGA-Finding/internal/handler"
	"github.com/Shubhk02/MGNREGA-Finding/internal/store"
	"github.com/Shubhk02/MGNREGA-Finding/internal/synth"
	"github.com/Shubhk02/MGNREGA-Finding/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	ctx := context.Background()

	// Connect to MongoDB; the store is the one hard dependency
	st, err := store.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer st.Close(ctx)

	if err := st.EnsureIndexes(ctx); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err)
	}

	// The cache connects lazily and is allowed to fail
	cacheLayer := cache.New(cfg.RedisURL)
	defer cacheLayer.Close()

	// Select the performance source strategy
	generator := synth.NewGenerator()
	var source dashboard.PerformanceSource = generator
	if cfg.DataGovEnabled {
		logrus.Info("data.gov.in integration enabled")
		source = datagov.NewClient(datagov.ClientConfig{
			BaseURL:    cfg.DataGovBaseURL,
			APIKey:     cfg.DataGovAPIKey,
			ResourceID: cfg.DataGovResourceID,
		}, generator)
	}

	// Initialize services
	dashboardService := dashboard.NewDashboardService(st, cacheLayer, source)

	// Initialize handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardService, cfg.DefaultStateCode)
	healthHandler := handler.NewHealthHandler(st, cacheLayer)

	// Set up Gin router
	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	api := router.Group("/api")
	{
		api.GET("/", dashboardHandler.Root)
		api.GET("/health", healthHandler.Health)
		api.GET("/states", dashboardHandler.GetStates)
		api.GET("/districts", dashboardHandler.GetDistricts)
		api.GET("/district/:district_code/current", dashboardHandler.GetCurrentPerformance)
		api.GET("/district/:district_code/history", dashboardHandler.GetHistoricalPerformance)
		api.GET("/district/:district_code/compare", dashboardHandler.ComparePerformance)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Wait for a shutdown signal or a server error, then release the
	// store and cache handles owned by this entry point.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		logrus.Info("Shutdown signal received")
	case err := <-serverErrors:
		logrus.Errorf("Server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Error during server shutdown: %v", err)
	}
}

// corsConfig builds the CORS policy from the configured origins. The
// wildcard default serves everyone without credentials.
func corsConfig(origins []string) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        24 * time.Hour,
	}

	allowAll := len(origins) == 0
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
		}
	}

	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	return corsCfg
}
