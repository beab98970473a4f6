package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mini-dating-backend/internal/config"
	"mini-dating-backend/internal/handlers"
	"mini-dating-backend/internal/middleware"
	"mini-dating-backend/internal/repository"
	"mini-dating-backend/internal/scheduling"
	"mini-dating-backend/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load(config.String("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.Log.Level, cfg.Log.Format)

	// Apply migrations before the pool starts serving queries
	migrationURL, err := cfg.Database.MigrationURL()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid database configuration")
	}
	if err := repository.Migrate(migrationURL); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Connect to database
	db, err := pgxpool.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Database connection established")

	readiness := map[string]func(context.Context) error{
		"postgres": db.Ping,
	}

	// Redis is optional and only backs the rate limiter
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		readiness["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis client configured")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	likeService := services.NewLikeService(likeRepo, userRepo, matchRepo)
	matchService := services.NewMatchService(matchRepo)
	availabilityService := services.NewAvailabilityService(
		availabilityRepo,
		matchRepo,
		scheduling.NewValidator(),
		time.Now,
	)

	var avatars handlers.Avatars
	if cfg.AWS.S3Bucket != "" {
		avatarService, err := services.NewAvatarService(context.Background(), userRepo, services.AvatarStorage{
			Region:    cfg.AWS.Region,
			Bucket:    cfg.AWS.S3Bucket,
			AccessKey: cfg.AWS.AccessKey,
			SecretKey: cfg.AWS.SecretKey,
			Endpoint:  cfg.AWS.Endpoint,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create avatar service")
		}
		avatars = avatarService
	} else {
		log.Warn().Msg("No S3 bucket configured, avatar uploads disabled")
	}

	// Initialize handlers
	api := &handlers.API{
		Users:        handlers.NewUserHandler(userService),
		Avatars:      handlers.NewAvatarHandler(avatars),
		Likes:        handlers.NewLikeHandler(likeService),
		Matches:      handlers.NewMatchHandler(matchService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
	}
	health := handlers.NewHealthHandler(readiness)

	var limiter *middleware.RateLimiter
	if rdb != nil && cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(
			middleware.NewRedisCounter(rdb),
			cfg.RateLimit.Requests,
			cfg.RateLimit.Window,
			cfg.RateLimit.FailOpen,
		)
	}

	r := newRouter(cfg, limiter, health, api.Mount)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level, format string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
