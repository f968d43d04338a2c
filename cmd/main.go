package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/devbryan02/gestion-hostal-template/internal/handler"
	"github.com/devbryan02/gestion-hostal-template/internal/middleware"
	"github.com/devbryan02/gestion-hostal-template/internal/model"
	"github.com/devbryan02/gestion-hostal-template/internal/store"
	"github.com/devbryan02/gestion-hostal-template/pkg/config"
	"github.com/devbryan02/gestion-hostal-template/pkg/database"
	"github.com/devbryan02/gestion-hostal-template/pkg/jwtutil"
	"github.com/devbryan02/gestion-hostal-template/pkg/logger"
	"github.com/devbryan02/gestion-hostal-template/prometheus"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found or error loading: %v\n", err)
	}

	// Load configuration
	conf, err := config.Load("hostal")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.InitLogger(&logger.LogConfig{
		Level:       conf.Log.Level,
		Environment: conf.Server.Env,
		ServiceName: conf.ServiceName,
	})
	if err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting hostal service", conf.LogConfig()...)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(conf)
	log.Info("Prometheus metrics initialized", zap.String("metrics_prefix", conf.Metrics.Prefix))

	// Initialize database connection
	db, err := database.InitDB(&conf.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Run migrations for the domain models
	if err := database.MigrateModels(db, &model.Room{}, &model.Tenant{}, &model.Occupation{}); err != nil {
		log.Fatal("Failed to migrate database models", zap.Error(err))
	}

	// Initialize JWT utility
	jwtUtil := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      conf.JWT.SigningKey,
		ExpirationHours: conf.JWT.ExpirationHours,
	})

	// Stores share the single database handle
	rooms := handler.NewRoomHandler(store.NewRoomStore(db))
	tenants := handler.NewTenantHandler(store.NewTenantStore(db))
	occupations := handler.NewOccupationHandler(store.NewOccupationStore(db))
	stats := handler.NewStatsHandler(store.NewStatsStore(db))

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID)
	e.Use(middleware.Metrics)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	auth := middleware.JWTAuth(jwtUtil)

	// Room API routes
	roomAPI := e.Group("/api/rooms", auth)
	roomAPI.GET("", rooms.List)
	roomAPI.GET("/:id", rooms.Get)
	roomAPI.POST("", rooms.Create)
	roomAPI.PUT("/:id", rooms.Update)
	roomAPI.DELETE("/:id", rooms.Delete)

	// Tenant API routes
	tenantAPI := e.Group("/api/tenants", auth)
	tenantAPI.GET("", tenants.List)
	tenantAPI.GET("/:id", tenants.Get)
	tenantAPI.POST("", tenants.Create)
	tenantAPI.PUT("/:id", tenants.Update)
	tenantAPI.DELETE("/:id", tenants.Delete)

	// Occupation API routes
	occupationAPI := e.Group("/api/occupations", auth)
	occupationAPI.GET("", occupations.List)
	occupationAPI.GET("/:id", occupations.Get)
	occupationAPI.POST("", occupations.Create)
	occupationAPI.POST("/:id/checkout", occupations.CheckOut)
	occupationAPI.PUT("/:id", occupations.Update)
	occupationAPI.DELETE("/:id", occupations.Delete)

	// Dashboard statistics
	e.GET("/api/stats", stats.Get, auth)

	// Start server
	port := conf.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
