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

	createExceptionHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_date_exception"
	createSlotHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_recurring_slot"
	createTemplateHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_template"
	deleteExceptionHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_date_exception"
	deleteSlotHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_recurring_slot"
	getWindowsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_bookable_windows"
	getAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_day_availability"
	getTemplateHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_template"
	getScheduleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_template_schedule"
	updateTemplateHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_template"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	windowscache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	templateRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/template"
	scheduleService "github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
	templatesService "github.com/m04kA/SMC-AvailabilityService/internal/service/templates"
	checkAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_availability"
	createRecurringSlotUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_recurring_slot"
	getBookableWindowsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_bookable_windows"
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

	// Инициализируем репозитории (с метриками или без)
	var (
		templateRepository *templateRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		templateRepository = templateRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		templateRepository = templateRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем кэш окон (если включен)
	// Интерфейсные переменные остаются nil, когда кэш выключен,
	// чтобы у потребителей не оказался typed-nil интерфейс
	var (
		templatesCache templatesService.WindowsCache
		scheduleCache  scheduleService.WindowsCache
		windowsCache   getBookableWindowsUC.WindowsCache
		slotCache      createRecurringSlotUC.WindowsCache
	)

	if cfg.Cache.Enabled {
		var cacheMetrics windowscache.MetricsRecorder
		if metricsCollector != nil {
			cacheMetrics = metricsCollector
		}

		cache, err := windowscache.NewWindowsCache(cfg.Cache.Size, log, cacheMetrics)
		if err != nil {
			log.Fatal("Failed to initialize windows cache: %v", err)
		}

		templatesCache = cache
		scheduleCache = cache
		windowsCache = cache
		slotCache = cache

		log.Info("Windows cache enabled (size=%d)", cfg.Cache.Size)
	}

	// Инициализируем сервисы
	templatesSvc := templatesService.NewService(templateRepository, templatesCache, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, templateRepository, scheduleCache, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		templateRepository,
		scheduleRepository,
		log,
	)
	getBookableWindowsUseCase := getBookableWindowsUC.NewUseCase(
		templateRepository,
		scheduleRepository,
		windowsCache,
		log,
	)
	createRecurringSlotUseCase := createRecurringSlotUC.NewUseCase(
		templateRepository,
		scheduleRepository,
		txMgr,
		slotCache,
		log,
	)

	// Инициализируем handlers
	getTemplate := getTemplateHandler.NewHandler(templatesSvc, log)
	createTemplate := createTemplateHandler.NewHandler(templatesSvc, log)
	updateTemplate := updateTemplateHandler.NewHandler(templatesSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getWindows := getWindowsHandler.NewHandler(getBookableWindowsUseCase, log)
	createSlot := createSlotHandler.NewHandler(createRecurringSlotUseCase, log)
	deleteSlot := deleteSlotHandler.NewHandler(scheduleSvc, log)
	createException := createExceptionHandler.NewHandler(scheduleSvc, log)
	deleteException := deleteExceptionHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Request ID для трассировки запросов
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение шаблона бронирования
	api.HandleFunc("/templates/{templateId}", getTemplate.Handle).Methods(http.MethodGet)

	// Полное расписание шаблона: слоты и исключения
	api.HandleFunc("/templates/{templateId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Доступность шаблона на дату
	api.HandleFunc("/templates/{templateId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Окна бронирования на дату
	api.HandleFunc("/templates/{templateId}/windows", getWindows.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Шаблоны ---
	// Создание шаблона
	protected.HandleFunc("/templates", createTemplate.Handle).Methods(http.MethodPost)

	// Частичное обновление шаблона
	protected.HandleFunc("/templates/{templateId}", updateTemplate.Handle).Methods(http.MethodPatch)

	// --- Расписание ---
	// Создание повторяющегося слота
	protected.HandleFunc("/templates/{templateId}/slots", createSlot.Handle).Methods(http.MethodPost)

	// Удаление повторяющегося слота
	protected.HandleFunc("/templates/{templateId}/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// Создание исключения на дату
	protected.HandleFunc("/templates/{templateId}/exceptions", createException.Handle).Methods(http.MethodPost)

	// Удаление исключения
	protected.HandleFunc("/templates/{templateId}/exceptions/{exceptionId}", deleteException.Handle).Methods(http.MethodDelete)

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
