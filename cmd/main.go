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

	bookConsultationHandler "github.com/m04kA/PMC-SchedulingService/internal/api/handlers/book_consultation"
	cancelConsultationHandler "github.com/m04kA/PMC-SchedulingService/internal/api/handlers/cancel_consultation"
	checkAvailabilityHandler "github.com/m04kA/PMC-SchedulingService/internal/api/handlers/check_availability"
	createBlockedSlotHandler "github.com/m04kA/PMC-SchedulingService/internal/api/handlers/create_blocked_slot"
	deleteBlockedSlotHandler "github.com/m04kA/PMC-SchedulingService/internal/api/handlers/delete_blocked_slot"
	getAvailabilityHandler "github.com/m04kA/PMC-SchedulingService/internal/api/handlers/get_availability"
	getBlockedSlotsHandler "github.com/m04kA/PMC-SchedulingService/internal/api/handlers/get_blocked_slots"
	getConsultationHandler "github.com/m04kA/PMC-SchedulingService/internal/api/handlers/get_consultation"
	getFreeSlotsHandler "github.com/m04kA/PMC-SchedulingService/internal/api/handlers/get_free_slots"
	getPractitionerConsultationsHandler "github.com/m04kA/PMC-SchedulingService/internal/api/handlers/get_practitioner_consultations"
	saveAvailabilityHandler "github.com/m04kA/PMC-SchedulingService/internal/api/handlers/save_availability"
	"github.com/m04kA/PMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/PMC-SchedulingService/internal/config"
	availabilityRepo "github.com/m04kA/PMC-SchedulingService/internal/infra/storage/availability"
	blockedSlotRepo "github.com/m04kA/PMC-SchedulingService/internal/infra/storage/blockedslot"
	consultationRepo "github.com/m04kA/PMC-SchedulingService/internal/infra/storage/consultation"
	staffServiceClient "github.com/m04kA/PMC-SchedulingService/internal/integrations/staffservice"
	availabilityService "github.com/m04kA/PMC-SchedulingService/internal/service/availability"
	blockedSlotsService "github.com/m04kA/PMC-SchedulingService/internal/service/blockedslots"
	consultationsService "github.com/m04kA/PMC-SchedulingService/internal/service/consultations"
	bookConsultationUC "github.com/m04kA/PMC-SchedulingService/internal/usecase/book_consultation"
	checkAvailabilityUC "github.com/m04kA/PMC-SchedulingService/internal/usecase/check_availability"
	getFreeSlotsUC "github.com/m04kA/PMC-SchedulingService/internal/usecase/get_free_slots"
	saveAvailabilityUC "github.com/m04kA/PMC-SchedulingService/internal/usecase/save_availability"
	"github.com/m04kA/PMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/PMC-SchedulingService/pkg/logger"
	"github.com/m04kA/PMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/PMC-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/PMC-SchedulingService/pkg/txmanager"
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

	log.Info("Starting PMC-SchedulingService...")
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

	// Инициализируем клиент справочника сотрудников
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StaffService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		availabilityRepository *availabilityRepo.Repository
		blockedSlotRepository  *blockedSlotRepo.Repository
		consultationRepository *consultationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		blockedSlotRepository = blockedSlotRepo.NewRepository(wrappedDB)
		consultationRepository = consultationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		blockedSlotRepository = blockedSlotRepo.NewRepository(db)
		consultationRepository = consultationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		availabilityRepository,
		blockedSlotRepository,
		consultationRepository,
		log,
	)

	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		availabilityRepository,
		blockedSlotRepository,
		consultationRepository,
		log,
	)

	bookConsultationUseCase := bookConsultationUC.NewUseCase(
		consultationRepository,
		checkAvailabilityUseCase,
		staffClient,
		txMgr,
		log,
	)

	saveAvailabilityUseCase := saveAvailabilityUC.NewUseCase(
		availabilityRepository,
		staffClient,
		txMgr,
		log,
	)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	blockedSlotsSvc := blockedSlotsService.NewService(blockedSlotRepository, log)
	consultationsSvc := consultationsService.NewService(consultationRepository, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	saveAvailability := saveAvailabilityHandler.NewHandler(saveAvailabilityUseCase, log)
	createBlockedSlot := createBlockedSlotHandler.NewHandler(blockedSlotsSvc, log)
	getBlockedSlots := getBlockedSlotsHandler.NewHandler(blockedSlotsSvc, log)
	deleteBlockedSlot := deleteBlockedSlotHandler.NewHandler(blockedSlotsSvc, log)
	bookConsultation := bookConsultationHandler.NewHandler(bookConsultationUseCase, log)
	getConsultation := getConsultationHandler.NewHandler(consultationsSvc, log)
	cancelConsultation := cancelConsultationHandler.NewHandler(consultationsSvc, log)
	getPractitionerConsultations := getPractitionerConsultationsHandler.NewHandler(consultationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной request id
	r.Use(middleware.RequestID)

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности интервала
	api.HandleFunc("/practitioners/{practitionerId}/availability/check",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Свободные интервалы на день
	api.HandleFunc("/practitioners/{practitionerId}/free-slots",
		getFreeSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание врача
	api.HandleFunc("/practitioners/{practitionerId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание врача ---
	// Замена недельного расписания целиком
	protected.HandleFunc("/practitioners/{practitionerId}/availability",
		saveAvailability.Handle).Methods(http.MethodPut)

	// --- Блокировки времени ---
	// Создание блокировки
	protected.HandleFunc("/practitioners/{practitionerId}/blocked-slots",
		createBlockedSlot.Handle).Methods(http.MethodPost)

	// Список блокировок врача
	protected.HandleFunc("/practitioners/{practitionerId}/blocked-slots",
		getBlockedSlots.Handle).Methods(http.MethodGet)

	// Удаление блокировки
	protected.HandleFunc("/blocked-slots/{blockedSlotId}",
		deleteBlockedSlot.Handle).Methods(http.MethodDelete)

	// --- Консультации ---
	// Запись к врачу
	protected.HandleFunc("/consultations", bookConsultation.Handle).Methods(http.MethodPost)

	// Получение консультации по ID
	protected.HandleFunc("/consultations/{consultationId}",
		getConsultation.Handle).Methods(http.MethodGet)

	// Отмена консультации
	protected.HandleFunc("/consultations/{consultationId}/cancel",
		cancelConsultation.Handle).Methods(http.MethodPatch)

	// Расписание консультаций врача
	protected.HandleFunc("/practitioners/{practitionerId}/consultations",
		getPractitionerConsultations.Handle).Methods(http.MethodGet)

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
