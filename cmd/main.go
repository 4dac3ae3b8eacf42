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

	cancelAppointmentHandler "github.com/zapvenda/ZV-AgendaService/internal/api/handlers/cancel_appointment"
	createAgendaHandler "github.com/zapvenda/ZV-AgendaService/internal/api/handlers/create_agenda"
	createAppointmentHandler "github.com/zapvenda/ZV-AgendaService/internal/api/handlers/create_appointment"
	getAgendaHandler "github.com/zapvenda/ZV-AgendaService/internal/api/handlers/get_agenda"
	getAgendaAppointmentsHandler "github.com/zapvenda/ZV-AgendaService/internal/api/handlers/get_agenda_appointments"
	getAppointmentHandler "github.com/zapvenda/ZV-AgendaService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/zapvenda/ZV-AgendaService/internal/api/handlers/get_available_slots"
	listAgendasHandler "github.com/zapvenda/ZV-AgendaService/internal/api/handlers/list_agendas"
	updateAgendaHandler "github.com/zapvenda/ZV-AgendaService/internal/api/handlers/update_agenda"
	updateAppointmentStatusHandler "github.com/zapvenda/ZV-AgendaService/internal/api/handlers/update_appointment_status"
	"github.com/zapvenda/ZV-AgendaService/internal/api/middleware"
	"github.com/zapvenda/ZV-AgendaService/internal/config"
	"github.com/zapvenda/ZV-AgendaService/internal/events"
	agendaRepo "github.com/zapvenda/ZV-AgendaService/internal/infra/storage/agenda"
	appointmentRepo "github.com/zapvenda/ZV-AgendaService/internal/infra/storage/appointment"
	clientServiceClient "github.com/zapvenda/ZV-AgendaService/internal/integrations/clientservice"
	agendasService "github.com/zapvenda/ZV-AgendaService/internal/service/agendas"
	appointmentsService "github.com/zapvenda/ZV-AgendaService/internal/service/appointments"
	createAppointmentUC "github.com/zapvenda/ZV-AgendaService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/zapvenda/ZV-AgendaService/internal/usecase/get_available_slots"
	"github.com/zapvenda/ZV-AgendaService/pkg/dbmetrics"
	"github.com/zapvenda/ZV-AgendaService/pkg/logger"
	"github.com/zapvenda/ZV-AgendaService/pkg/metrics"
	"github.com/zapvenda/ZV-AgendaService/pkg/simpletxmanager"
	"github.com/zapvenda/ZV-AgendaService/pkg/txmanager"
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

	log.Info("Starting ZV-AgendaService...")
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

	// Инициализируем интеграционного клиента
	clientClient := clientServiceClient.NewClient(
		cfg.ClientService.URL,
		time.Duration(cfg.ClientService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ClientService=%s timeout=%ds)",
		cfg.ClientService.URL, cfg.ClientService.Timeout)

	// Инициализируем publisher событий (или заглушку, если Kafka выключена)
	var publisher interface {
		PublishAppointmentEvent(ctx context.Context, evt events.AppointmentEvent) error
	}
	if cfg.Kafka.Enabled {
		producer := events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.AppointmentsTopic, log)
		defer producer.Close()
		publisher = producer
		log.Info("Kafka producer initialized (brokers=%v, topic=%s)",
			cfg.Kafka.Brokers, cfg.Kafka.AppointmentsTopic)
	} else {
		publisher = events.NopPublisher{}
		log.Info("Kafka disabled, appointment events will not be published")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		agendaRepository      *agendaRepo.Repository
		appointmentRepository *appointmentRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		agendaRepository = agendaRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		agendaRepository = agendaRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	agendasSvc := agendasService.NewService(agendaRepository, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		agendaRepository,
		publisher,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		agendaRepository,
		clientClient,
		publisher,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		agendaRepository,
		appointmentRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getAgendaAppointments := getAgendaAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createAgenda := createAgendaHandler.NewHandler(agendasSvc, log)
	getAgenda := getAgendaHandler.NewHandler(agendasSvc, log)
	listAgendas := listAgendasHandler.NewHandler(agendasSvc, log)
	updateAgenda := updateAgendaHandler.NewHandler(agendasSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix: все маршруты требуют заголовки идентификации от шлюза
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(log))

	// --- Доступность ---
	// Свободные слоты агенды на дату
	api.HandleFunc("/agendas/{agendaId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Записи ---
	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	api.HandleFunc("/appointments/{appointmentId}/cancel",
		cancelAppointment.Handle).Methods(http.MethodPatch)

	// Смена статуса записи
	api.HandleFunc("/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// Записи агенды за период (календарь дашборда)
	api.HandleFunc("/agendas/{agendaId}/appointments",
		getAgendaAppointments.Handle).Methods(http.MethodGet)

	// --- Агенды (админка дашборда) ---
	api.HandleFunc("/agendas", createAgenda.Handle).Methods(http.MethodPost)
	api.HandleFunc("/agendas", listAgendas.Handle).Methods(http.MethodGet)
	api.HandleFunc("/agendas/{agendaId}", getAgenda.Handle).Methods(http.MethodGet)
	api.HandleFunc("/agendas/{agendaId}", updateAgenda.Handle).Methods(http.MethodPut)

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
