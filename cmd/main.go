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

	addExceptionHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/add_exception"
	approveStaffExceptionHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/approve_staff_exception"
	createAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_availability"
	denyStaffExceptionHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/deny_staff_exception"
	getAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_availability"
	getCalendarHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_calendar"
	getStaffExceptionsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_staff_exceptions"
	removeExceptionHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/remove_exception"
	updateAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	availabilityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
	staffServiceClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
	availabilityService "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	staffExceptionsService "github.com/m04kA/SMC-AvailabilityService/internal/service/staffexceptions"
	getCalendarUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting SMC-AvailabilityService...")
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

	// Инициализируем клиент StaffService
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (StaffService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var availabilityRepository *availabilityRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		txMgr,
		log,
	)
	staffExceptionsSvc := staffExceptionsService.NewService(
		staffClient,
		log,
	)

	// Инициализируем use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(
		availabilityRepository,
		staffClient,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	createAvailability := createAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	addException := addExceptionHandler.NewHandler(availabilitySvc, log)
	removeException := removeExceptionHandler.NewHandler(availabilitySvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getStaffExceptions := getStaffExceptionsHandler.NewHandler(staffExceptionsSvc, log)
	approveStaffException := approveStaffExceptionHandler.NewHandler(staffExceptionsSvc, log)
	denyStaffException := denyStaffExceptionHandler.NewHandler(staffExceptionsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Добавляем rate limiter (если включен)
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
		log.Info("Rate limiter enabled (%.0f req/s, burst=%d)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Текущая доступность бизнеса (дефолт, если записи еще нет)
	api.HandleFunc("/businesses/{businessId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Размеченный календарь на диапазон дат
	api.HandleFunc("/businesses/{businessId}/availability/calendar",
		getCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Доступность бизнеса ---
	// Создание записи доступности
	protected.HandleFunc("/businesses/{businessId}/availability",
		createAvailability.Handle).Methods(http.MethodPost)

	// Полное сохранение: расписание плюс все исключения одной записью
	protected.HandleFunc("/businesses/{businessId}/availability",
		updateAvailability.Handle).Methods(http.MethodPut)

	// --- Бизнес-исключения ---
	// Добавление исключения на дату
	protected.HandleFunc("/businesses/{businessId}/availability/exceptions",
		addException.Handle).Methods(http.MethodPost)

	// Удаление исключения по индексу
	protected.HandleFunc("/businesses/{businessId}/availability/exceptions/{index}",
		removeException.Handle).Methods(http.MethodDelete)

	// --- Исключения сотрудников (workflow pending -> approved/denied) ---
	// Коллекция исключений сотрудников бизнеса
	protected.HandleFunc("/businesses/{businessId}/staff-exceptions",
		getStaffExceptions.Handle).Methods(http.MethodGet)

	// Утверждение исключения
	protected.HandleFunc("/businesses/{businessId}/staff-exceptions/{exceptionId}/approve",
		approveStaffException.Handle).Methods(http.MethodPost)

	// Отклонение исключения
	protected.HandleFunc("/businesses/{businessId}/staff-exceptions/{exceptionId}/deny",
		denyStaffException.Handle).Methods(http.MethodPost)

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
