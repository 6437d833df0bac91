package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/aspyra/jobboard-api/config"
	"github.com/aspyra/jobboard-api/internal/container"
	"github.com/aspyra/jobboard-api/internal/infrastructure/storage"
	"github.com/aspyra/jobboard-api/internal/interface/middleware"
	"github.com/aspyra/jobboard-api/internal/router"
	"github.com/aspyra/jobboard-api/pkg/helpers"
	"github.com/aspyra/jobboard-api/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	if cfg.UsesDefaultSecret() {
		logger.Warn("JWT_SECRET is not set; tokens are signed with the built-in development secret")
	}

	ctx := context.Background()

	repos, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer repos.Close()

	// Redis (rate limiting); disabled when REDIS_ADDR is empty
	rdb, err := helpers.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.WithError(err).Warn("redis unavailable, rate limiting disabled")
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	// RabbitMQ (application status events); disabled when RABBITMQ_URL is empty
	var pub *helpers.RabbitPublisher
	if cfg.RabbitMQURL != "" {
		pub, err = helpers.NewRabbitPublisher(cfg.RabbitMQURL, helpers.EventQueueOptions{
			Queue:      cfg.ApplicationEventsQueue,
			Durable:    cfg.ApplicationEventsDurable,
			MessageTTL: cfg.ApplicationEventsTTL,
			AppID:      cfg.AppName,
		})
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable, status events disabled")
		}
		defer pub.Close()
	}

	// GCS (resume upload); disabled when GCS_BUCKET is empty
	var uploader *helpers.GCSUploader
	if cfg.GCSBucket != "" {
		gcsClient, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			log.Fatalf("failed to init GCS client: %v", err)
		}
		defer func() { _ = gcsClient.Close() }()
		uploader = helpers.NewGCSUploader(gcsClient, cfg.GCSBucket)
	}

	jwtManager := helpers.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRepositories(repos)
	container.SetRedis(rdb)
	container.SetJWT(jwtManager)
	container.SetHasher(helpers.NewBcryptHasher(0))
	container.SetEvents(pub)
	container.SetResumes(uploader)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		corsCfg.AllowOrigins = origins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))
	if cfg.Env == "development" || cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	reg.Use(middleware.OptionalSession(jwtManager, logger))
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s (store=%s)", cfg.Port, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
