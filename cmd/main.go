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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/kly4ev/SDA-BookingService/internal/api/handlers/cancel_appointment"
	getAppointmentHandler "github.com/kly4ev/SDA-BookingService/internal/api/handlers/get_appointment"
	getClientAppointmentsHandler "github.com/kly4ev/SDA-BookingService/internal/api/handlers/get_client_appointments"
	getSuggestionsHandler "github.com/kly4ev/SDA-BookingService/internal/api/handlers/get_suggestions"
	resolveBookingHandler "github.com/kly4ev/SDA-BookingService/internal/api/handlers/resolve_booking"
	"github.com/kly4ev/SDA-BookingService/internal/api/middleware"
	"github.com/kly4ev/SDA-BookingService/internal/config"
	appointmentRepo "github.com/kly4ev/SDA-BookingService/internal/infra/storage/appointment"
	resourceRepo "github.com/kly4ev/SDA-BookingService/internal/infra/storage/resource"
	notifyServiceClient "github.com/kly4ev/SDA-BookingService/internal/integrations/notifyservice"
	parserServiceClient "github.com/kly4ev/SDA-BookingService/internal/integrations/parserservice"
	appointmentsService "github.com/kly4ev/SDA-BookingService/internal/service/appointments"
	transactorService "github.com/kly4ev/SDA-BookingService/internal/service/transactor"
	getSuggestionsUC "github.com/kly4ev/SDA-BookingService/internal/usecase/get_suggestions"
	resolveBookingUC "github.com/kly4ev/SDA-BookingService/internal/usecase/resolve_booking"
	"github.com/kly4ev/SDA-BookingService/pkg/dbmetrics"
	"github.com/kly4ev/SDA-BookingService/pkg/logger"
	"github.com/kly4ev/SDA-BookingService/pkg/metrics"
	"github.com/kly4ev/SDA-BookingService/pkg/simpletxmanager"
	"github.com/kly4ev/SDA-BookingService/pkg/txmanager"
)

func main() {
	// Переменные окружения из .env (если файл есть)
	_ = godotenv.Load()

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

	log.Info("Starting SDA-BookingService...")
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

	// Инициализируем интеграционных клиентов
	parserClient := parserServiceClient.NewClient(
		cfg.ParserService.URL,
		time.Duration(cfg.ParserService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ParserService=%s timeout=%ds, NotifyService=%s timeout=%ds)",
		cfg.ParserService.URL, cfg.ParserService.Timeout, cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		resourceRepository    *resourceRepo.Repository
	)

	// Интерфейс transaction manager (используется транзактором)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		resourceRepository = resourceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingTransactor := transactorService.NewService(appointmentRepository, txMgr, log)
	apptSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	resolveBookingUseCase := resolveBookingUC.NewUseCase(
		resourceRepository,
		appointmentRepository,
		bookingTransactor,
		notifyClient,
		log,
	)
	getSuggestionsUseCase := getSuggestionsUC.NewUseCase(
		resourceRepository,
		appointmentRepository,
		log,
	)

	// Инициализируем handlers
	resolveBooking := resolveBookingHandler.NewHandler(resolveBookingUseCase, parserClient, log)
	getSuggestions := getSuggestionsHandler.NewHandler(getSuggestionsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(apptSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(apptSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(apptSvc, log)

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные времена начала для ресурса на дату
	api.HandleFunc("/resources/{resourceId}/suggestions",
		getSuggestions.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Client-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Разрешение бронирования: booked / suggestions / rejected
	protected.HandleFunc("/bookings/resolve", resolveBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена бронирования клиентом
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

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
