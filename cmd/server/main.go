package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"blogapi/docs"
	"blogapi/internal/auth"
	"blogapi/internal/cache"
	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/events"
	"blogapi/internal/handler"
	"blogapi/internal/logging"
	"blogapi/internal/repository"
	"blogapi/internal/router"
	"blogapi/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Blog API
// @version 1.0
// @description Blog API with users, posts, comments and JWT authentication.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := logging.New(logging.Options{Service: "blogapi"})
		bootLogger.Fatal().Err(err).Msg("load config")
	}

	logger := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "blogapi",
	})
	zerolog.DefaultContextLogger = &logger

	if cfg.InsecureJWTSecret {
		logger.Warn().Msg("JWT_SECRET is not set; tokens are signed with the built-in default secret")
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("database init")
	}
	if cfg.AutoMigrate {
		if err := db.AutoMigrate(gormDB); err != nil {
			logger.Fatal().Err(err).Msg("auto-migrate")
		}
		logger.Info().Msg("schema migrated")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if cacheClient == nil {
		logger.Info().Msg("REDIS_ADDR not set; read cache disabled")
	} else if err := cacheClient.Ping(context.Background()); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; reads fall through to the database")
	}

	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if len(cfg.KafkaBrokers) > 0 {
		logger.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("publishing domain events")
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	guard := auth.NewGuard(jwtService)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, publisher)
	userService := service.NewUserService(userRepo, cacheClient, publisher)
	postService := service.NewPostService(postRepo, cacheClient, publisher)
	commentService := service.NewCommentService(commentRepo, cacheClient, publisher)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(
		e,
		cfg,
		logger,
		guard,
		handler.NewAuthHandler(authService, userService),
		handler.NewUserHandler(userService),
		handler.NewPostHandler(postService),
		handler.NewCommentHandler(commentService),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	} else {
		docs.SwaggerInfo.Host = "localhost:" + cfg.ServerPort
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.ServerPort
	go func() {
		logger.Info().
			Str("addr", addr).
			Str("swagger", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html").
			Msg("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	if err := publisher.Close(); err != nil {
		logger.Error().Err(err).Msg("close event publisher")
	}
	if err := cacheClient.Close(); err != nil {
		logger.Error().Err(err).Msg("close cache")
	}
	if err := db.Close(gormDB); err != nil {
		logger.Error().Err(err).Msg("close database")
	}
}
