package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	authpg "notekeep/internal/auth/adapters/postgres"
	authsvc "notekeep/internal/auth/adapters/services"
	authapp "notekeep/internal/auth/app"
	"notekeep/internal/config"
	notespg "notekeep/internal/notes/adapters/postgres"
	notesapp "notekeep/internal/notes/app"
	"notekeep/internal/ratelimit"
	httpServer "notekeep/internal/server/http"
	"notekeep/pkg/db/postgres"
	"notekeep/pkg/logger"
	"notekeep/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTEKEEP_LOGGER_MODE"
	EnvLoggerLevel = "NOTEKEEP_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrRunMigrations        = "failed to run database migrations"
	ErrConnectDatabase      = "failed to connect to database"
	ErrCreateRateLimiter    = "failed to create rate limiter"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "notekeep service started"
	LogServiceShutdownDone = "notekeep service shutdown complete"
	LogRunningMigrations   = "running database migrations"
	LogInitRepositories    = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitRateLimiter     = "initializing rate limiter"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), logger.GenerateRequestID())

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogRunningMigrations)
		if err := postgres.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), cfg.Postgres.MigrationsPath); err != nil {
			log.Error(ctx, ErrRunMigrations, zap.Error(err))
			exitCode = 1
			return
		}

		database, err := postgres.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		if err != nil {
			log.Error(ctx, ErrConnectDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitRepositories)
		userRepo := authpg.NewRepositoryFactory(database.Pool()).UserRepository()
		noteRepo := notespg.NewRepositoryFactory(database.Pool()).NoteRepository()

		log.Info(ctx, LogInitServices)
		serviceFactory := authsvc.NewServiceFactory(cfg.JWT.SecretKey, cfg.JWT.GetTokenTTL(), cfg.JWT.BCryptCost)
		authUseCase := authapp.NewAuthUseCase(userRepo, serviceFactory.PasswordService(), serviceFactory.TokenService())
		noteUseCase := notesapp.NewNoteUseCase(noteRepo)

		log.Info(ctx, LogInitRateLimiter, zap.Bool("enabled", cfg.RateLimit.Enabled))
		var limiter ratelimit.Limiter = ratelimit.NewNoopLimiter()
		if cfg.RateLimit.Enabled {
			limiter, err = ratelimit.NewRedisLimiter(ctx, &cfg.Redis, cfg.RateLimit.Requests, cfg.RateLimit.GetWindow())
			if err != nil {
				log.Error(ctx, ErrCreateRateLimiter, zap.Error(err))
				database.Close(ctx)
				exitCode = 1
				return
			}
		}

		log.Info(ctx, LogInitHTTPServer)
		app := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpServer.SetupRouter(app, authUseCase, noteUseCase, serviceFactory.TokenService(), limiter, database)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := app.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return app.Shutdown()
			},
			// Закрытие соединения с Redis.
			func(ctx context.Context) error {
				log.Info(ctx, "Closing rate limiter")
				return limiter.Close()
			},
			// Закрытие пула соединений с базой данных.
			func(ctx context.Context) error {
				log.Info(ctx, "Closing database connection pool")
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
