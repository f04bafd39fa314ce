package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"edutrack/internal/auth"
	"edutrack/internal/config"
	"edutrack/internal/handler"
	"edutrack/internal/httpmiddleware"
	"edutrack/internal/notify"
	"edutrack/internal/queue"
	"edutrack/internal/store"
)

func main() {
	cfg := config.Load()

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := runHTTP(cfg); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}

func runHTTP(cfg config.App) error {
	ctx := context.Background()

	mongo, err := store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return err
	}
	defer func() { _ = mongo.Close(context.Background()) }()

	if err := mongo.EnsureIndexes(ctx); err != nil {
		return err
	}

	redisClient := store.NewRedis(cfg.RedisAddr)

	var q queue.Queue
	var limiter httpmiddleware.Limiter
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
		limiter = httpmiddleware.NewMemoryRateLimit(cfg.RateLimitPerMin)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, "edutrack:checkins")
		limiter = httpmiddleware.NewRedisRateLimit(redisClient.Client, cfg.RateLimitPerMin)
	}

	feed := notify.NewFeed(redisClient.Client, "edutrack:notifications")
	passwords := auth.NewPasswordService(cfg.BcryptCost)
	h := handler.New(store.NewStore(mongo), passwords, q, feed, cfg.JWTSigningKey, cfg.JWTIssuer)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(httpmiddleware.CORS())
	r.Use(httpmiddleware.SecurityHeaders())
	r.Use(httpmiddleware.RateLimit(limiter))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/healthz", func(c *gin.Context) {
		redisHealthy := redisClient.Healthy(c.Request.Context())
		mongoHealthy := mongo.Healthy(c.Request.Context())
		status := http.StatusOK
		if !redisHealthy || !mongoHealthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": "ok", "redis": redisHealthy, "mongo": mongoHealthy})
	})

	h.Routes(r, auth.Gate(cfg.JWTSigningKey, cfg.JWTIssuer))

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 10 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}
