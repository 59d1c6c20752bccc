package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fitreni/coach-scheduler/internal/cache"
	"github.com/fitreni/coach-scheduler/internal/config"
	dbpkg "github.com/fitreni/coach-scheduler/internal/db"
	"github.com/fitreni/coach-scheduler/internal/jobs"
	"github.com/fitreni/coach-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	rdb, err := cache.NewClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, availability cache disabled", zap.Error(err))
		rdb = nil
	}

	cronRunner := jobs.Start(db, logger)
	defer cronRunner.Stop()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, rdb, logger)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
