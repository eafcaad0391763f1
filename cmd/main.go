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

	assignProviderHandler "github.com/m04kA/SMC-AssignmentService/internal/api/handlers/assign_provider"
	getBookingHandler "github.com/m04kA/SMC-AssignmentService/internal/api/handlers/get_booking"
	getDashboardStatsHandler "github.com/m04kA/SMC-AssignmentService/internal/api/handlers/get_dashboard_stats"
	getEligibleProvidersHandler "github.com/m04kA/SMC-AssignmentService/internal/api/handlers/get_eligible_providers"
	getPendingBookingsHandler "github.com/m04kA/SMC-AssignmentService/internal/api/handlers/get_pending_bookings"
	getProvidersHandler "github.com/m04kA/SMC-AssignmentService/internal/api/handlers/get_providers"
	verifyProviderHandler "github.com/m04kA/SMC-AssignmentService/internal/api/handlers/verify_provider"
	"github.com/m04kA/SMC-AssignmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AssignmentService/internal/config"
	"github.com/m04kA/SMC-AssignmentService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-AssignmentService/internal/infra/storage/booking"
	providerRepo "github.com/m04kA/SMC-AssignmentService/internal/infra/storage/provider"
	bookingsService "github.com/m04kA/SMC-AssignmentService/internal/service/bookings"
	providersService "github.com/m04kA/SMC-AssignmentService/internal/service/providers"
	statsService "github.com/m04kA/SMC-AssignmentService/internal/service/stats"
	assignProviderUC "github.com/m04kA/SMC-AssignmentService/internal/usecase/assign_provider"
	findEligibleProvidersUC "github.com/m04kA/SMC-AssignmentService/internal/usecase/find_eligible_providers"
	"github.com/m04kA/SMC-AssignmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AssignmentService/pkg/logger"
	"github.com/m04kA/SMC-AssignmentService/pkg/metrics"
	"github.com/m04kA/SMC-AssignmentService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AssignmentService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-AssignmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем publisher событий назначений
	var publisher assignProviderUC.EventPublisher
	if cfg.Kafka.Enabled {
		kafkaPublisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info("Kafka publisher initialized (brokers=%s, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		publisher = events.NoopPublisher{}
		log.Info("Kafka disabled, assignment events will not be published")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		providerRepository *providerRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		providerRepository = providerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		providerRepository = providerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	providerSvc := providersService.NewService(providerRepository, log)
	statsSvc := statsService.NewService(bookingRepository, providerRepository, log)

	// Инициализируем use cases
	findEligibleProvidersUseCase := findEligibleProvidersUC.NewUseCase(
		bookingRepository,
		providerRepository,
		log,
	)

	assignProviderUseCase := assignProviderUC.NewUseCase(
		bookingRepository,
		providerRepository,
		txMgr,
		publisher,
		log,
	)

	// Инициализируем handlers
	getPendingBookings := getPendingBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getEligibleProviders := getEligibleProvidersHandler.NewHandler(findEligibleProvidersUseCase, log)
	assignProvider := assignProviderHandler.NewHandler(assignProviderUseCase, log)
	getProviders := getProvidersHandler.NewHandler(providerSvc, log)
	verifyProvider := verifyProviderHandler.NewHandler(providerSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(statsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Очередь бронирований, ожидающих назначения
	protected.HandleFunc("/bookings/pending", getPendingBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Подбор провайдеров для бронирования
	protected.HandleFunc("/bookings/{bookingId}/eligible-providers",
		getEligibleProviders.Handle).Methods(http.MethodGet)

	// Назначение провайдера на бронирование
	protected.HandleFunc("/bookings/{bookingId}/assign", assignProvider.Handle).Methods(http.MethodPost)

	// --- Провайдеры ---
	// Список провайдеров с фильтрами
	protected.HandleFunc("/providers", getProviders.Handle).Methods(http.MethodGet)

	// Верификация провайдера
	protected.HandleFunc("/providers/{providerId}/verify", verifyProvider.Handle).Methods(http.MethodPatch)

	// --- Дашборд ---
	// Сводная статистика
	protected.HandleFunc("/stats", getDashboardStats.Handle).Methods(http.MethodGet)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
