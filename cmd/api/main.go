package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/migranthealth/careconnect/internal/adapters/cache"
	"github.com/migranthealth/careconnect/internal/adapters/database"
	"github.com/migranthealth/careconnect/internal/adapters/events"
	"github.com/migranthealth/careconnect/internal/adapters/memory"
	"github.com/migranthealth/careconnect/internal/adapters/providers/abdm"
	"github.com/migranthealth/careconnect/internal/api/handlers"
	"github.com/migranthealth/careconnect/internal/api/middleware"
	"github.com/migranthealth/careconnect/internal/api/routes"
	"github.com/migranthealth/careconnect/internal/application/services"
	"github.com/migranthealth/careconnect/internal/domain/providers"
	"github.com/migranthealth/careconnect/internal/domain/repositories"
	"github.com/migranthealth/careconnect/internal/fixtures"
	"github.com/migranthealth/careconnect/internal/infrastructure/clients/postgres"
	"github.com/migranthealth/careconnect/internal/infrastructure/clients/redis"
	"github.com/migranthealth/careconnect/internal/infrastructure/observability"
	"github.com/migranthealth/careconnect/pkg/config"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.App.Env, cfg.App.LogLevel)
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			observability.EnableLogExport(cfg.OTEL.ServiceName)
			logger = observability.GetLogger()
			logger.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Optional Redis: response cache, user cache and user events
	var cacheProvider providers.CacheProvider
	var eventBus providers.EventBus
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, continuing without cache")
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient)
			bus := events.NewRedisEventBus(redisClient)
			defer bus.Close()
			eventBus = bus
			logger.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis client initialized")
		}
	}

	// Storage driver
	var userRepo repositories.UserRepository
	var patientRepo repositories.PatientRepository
	switch cfg.App.StoreDriver {
	case config.StoreDriverPostgres:
		pgClient, err := postgres.NewClient(ctx, &cfg.Database)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()

		if err := database.Migrate(ctx, pgClient); err != nil {
			logger.Fatal().Err(err).Msg("failed to apply schema")
		}
		userRepo = database.NewUserAdapter(pgClient)
		patientRepo = database.NewPatientAdapter(pgClient)

		if cacheProvider != nil {
			userRepo = database.NewCachedUserAdapter(userRepo, cacheProvider, cfg.Cache.UserTTLSeconds)
			logger.Info().Msg("user adapter wrapped with caching layer")
		}
	default:
		userRepo = memory.NewUserStore()
		patientRepo = memory.NewPatientRepository(time.Now)
	}
	logger.Info().Str("driver", cfg.App.StoreDriver).Msg("storage initialized")

	recordRepo := memory.NewRecordRepository()
	doctorRepo := memory.NewDoctorRepository()
	gateway := abdm.NewMockGateway(cfg.ABDM.MockDelay)

	// Initialize services
	userService := services.NewUserService(userRepo, eventBus)
	abdmService := services.NewABDMService(gateway).WithMetrics(metrics)
	appointmentService := services.NewAppointmentService(doctorRepo, gateway)
	assistant := services.NewVoiceAssistant(services.NewIntentMatcher(services.DefaultIntents()), cfg.Voice.NavigationDelay)
	checker := services.NewInteractionChecker(fixtures.DrugInteractions())
	calculator := services.NewDosageCalculator(fixtures.DosageRules())

	if cacheProvider != nil && eventBus != nil {
		invalidation := services.NewCacheInvalidationService(cacheProvider, eventBus)
		if err := invalidation.Start(); err != nil {
			logger.Warn().Err(err).Msg("cache invalidation disabled")
		} else {
			defer invalidation.Stop()
		}
	}

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, cfg.Cache.FixtureTTLSeconds, metrics)
	}

	router := routes.NewRouter(routes.Handlers{
		User:        handlers.NewUserHandler(userService),
		Patient:     handlers.NewPatientHandler(patientRepo),
		Record:      handlers.NewRecordHandler(recordRepo),
		Doctor:      handlers.NewDoctorHandler(doctorRepo),
		Advisory:    handlers.NewAdvisoryHandler(checker, calculator),
		Voice:       handlers.NewVoiceHandler(assistant),
		ABDM:        handlers.NewABDMHandler(abdmService),
		Appointment: handlers.NewAppointmentHandler(appointmentService),
	}, cfg.Server.AllowedOrigins, cacheMiddleware, metrics)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}
	logger.Info().Msg("server exited")
}
