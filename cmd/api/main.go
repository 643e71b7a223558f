package main

import (
	"net/http"
	"os"

	_ "financialtools/api/swagger" // swagger docs
	"financialtools/internal/config"
	"financialtools/internal/handler"
	"financialtools/internal/logging"
	"financialtools/internal/metrics"
	"financialtools/internal/middleware"
	"financialtools/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           VAT Calculator API
// @version         1.0
// @description     Builds VAT classified amounts and converts between figures including and excluding VAT.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	logger := logging.Init(cfg.ServiceName, cfg.LogFile, cfg.LogLevel)
	metrics.Init(prometheus.DefaultRegisterer)

	// Set up dependencies (Service -> Handler)
	vatService := service.NewVATService()
	vatHandler := handler.NewVATHandler(vatService)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logging(logging.New("http")), middleware.Metrics())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Prometheus endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API Routing
	vatHandler.RegisterRoutes(router.Group(""))

	logger.Info("server listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
