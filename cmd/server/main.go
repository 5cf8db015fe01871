package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aimaturity/internal/agent"
	"aimaturity/internal/cache"
	"aimaturity/internal/config"
	"aimaturity/internal/flow"
	"aimaturity/internal/orchestrator"
	"aimaturity/internal/repository"
	"aimaturity/internal/service"
	"aimaturity/internal/transport/rest"
	"aimaturity/internal/transport/ws"
	"aimaturity/pkg/logger"
	"aimaturity/pkg/metrics"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.New("error").Error(ctx, "invalid configuration", logger.Err(err))
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	log.Info(ctx, "starting", logger.String("addr", cfg.Addr))

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Error(ctx, "failed to connect to MongoDB", logger.Err(err))
		os.Exit(1)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Error(ctx, "failed to ping MongoDB", logger.Err(err))
		os.Exit(1)
	}
	log.Info(ctx, "connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Error(ctx, "failed to ping Redis", logger.Err(err))
		os.Exit(1)
	}
	log.Info(ctx, "connected to Redis")

	m := metrics.New()

	// Storage layers
	resultRepo := repository.NewResultRepo(db)
	resultCache := cache.NewResultCache(rdb, cfg.ResultCacheTTL)
	sessionCache := cache.NewSessionCache(rdb, cfg.SessionTTL)

	// Assessment pipeline
	policy := agent.Policy{
		RiskBelow:    cfg.Thresholds.AgentRisk,
		InsightAbove: cfg.Thresholds.AgentInsight,
	}
	orc := orchestrator.New(agent.All(policy), resultCache, log, m, cfg)
	driver := flow.New(orc, log)

	// Services
	authSvc := service.NewAuthService(cfg)
	assessmentSvc := service.NewAssessmentService(driver, orc, sessionCache, resultRepo, log, m)

	wsHub := ws.NewHub(log)

	router := rest.NewRouter(&rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		WSHub:             wsHub,
		Metrics:           m,
		Logger:            log,
	})

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		log.Info(ctx, "server listening", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "server failed", logger.Err(err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info(ctx, "shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "forced shutdown", logger.Err(err))
		os.Exit(1)
	}

	log.Info(ctx, "server exited")
}
