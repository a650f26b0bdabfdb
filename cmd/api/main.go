package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/mondaynail/salon-api/internal/config"
	dbpkg "github.com/mondaynail/salon-api/internal/db"
	"github.com/mondaynail/salon-api/internal/middleware"
	"github.com/mondaynail/salon-api/internal/observability"
	"github.com/mondaynail/salon-api/internal/routes"
)

func main() {

	cfg := config.Load()

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db := dbpkg.NewDB(cfg, logger)
	dbpkg.Seed(db, cfg.Seed, logger)

	// Redis only backs the login rate limiter; without an address the
	// limiter is disabled and everything else runs as usual.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, logger, redisClient)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
