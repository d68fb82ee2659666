package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	getAvailableDaysHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_days"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_slots"
	getBusinessSettingsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_business_settings"
	getCancellationFeeHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_cancellation_fee"
	invalidateSettingsCacheHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/invalidate_settings_cache"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/cache"
	settingsCache "github.com/m04kA/SMC-SchedulingService/internal/infra/cache/settings"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	categoryPolicyRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/category_policy"
	holidayRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/holiday"
	settingsRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/settings"
	settingsService "github.com/m04kA/SMC-SchedulingService/internal/service/settings"
	calculateCancellationFeeUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/calculate_cancellation_fee"
	getAvailableDaysUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_days"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		configPath = path
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены); nil коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории работают либо с обёрткой метрик, либо напрямую с *sql.DB
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	availabilityRepository := availabilityRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)
	categoryPolicyRepository := categoryPolicyRepo.NewRepository(executor)
	holidayRepository := holidayRepo.NewRepository(executor)
	settingsRepository := settingsRepo.NewRepository(executor)

	// Кэш настроек в Redis (если включен)
	var (
		settingsSource settingsService.SettingsRepository = settingsRepository
		redisClient    *redis.Client
		cachedSettings *settingsCache.Cache
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(context.Background(), cache.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		cachedSettings = settingsCache.New(redisClient, settingsRepository, cfg.Cache.TTL(), metricsCollector, log)
		settingsSource = cachedSettings
		log.Info("Settings cache enabled (redis=%s, ttl=%s)", cfg.Redis.Addr(), cfg.Cache.TTL())
	}

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(settingsSource, categoryPolicyRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		settingsSvc,
		availabilityRepository,
		holidayRepository,
		bookingRepository,
		metricsCollector,
		log,
	)

	getAvailableDaysUseCase := getAvailableDaysUC.NewUseCase(
		settingsSvc,
		availabilityRepository,
		holidayRepository,
		bookingRepository,
		log,
	).WithMaxDays(cfg.Scheduling.MaxDaysRange)

	calculateCancellationFeeUseCase := calculateCancellationFeeUC.NewUseCase(
		bookingRepository,
		settingsSvc,
		settingsSvc,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDays := getAvailableDaysHandler.NewHandler(getAvailableDaysUseCase, log)
	getCancellationFee := getCancellationFeeHandler.NewHandler(calculateCancellationFeeUseCase, log)
	getBusinessSettings := getBusinessSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Доступные слоты на дату
	api.HandleFunc("/businesses/{businessId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Календарь доступных дней
	api.HandleFunc("/businesses/{businessId}/available-days",
		getAvailableDays.Handle).Methods(http.MethodGet)

	// Плата за отмену бронирования на текущий момент
	api.HandleFunc("/businesses/{businessId}/bookings/{bookingId}/cancellation-fee",
		getCancellationFee.Handle).Methods(http.MethodGet)

	// Действующие настройки бизнеса
	api.HandleFunc("/businesses/{businessId}/settings",
		getBusinessSettings.Handle).Methods(http.MethodGet)

	// Сброс кэша настроек после их изменения
	if cachedSettings != nil {
		invalidateSettingsCache := invalidateSettingsCacheHandler.NewHandler(cachedSettings, log)
		api.HandleFunc("/businesses/{businessId}/settings/cache",
			invalidateSettingsCache.Handle).Methods(http.MethodDelete)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
