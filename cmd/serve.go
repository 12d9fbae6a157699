package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	adminLoginHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/admin_login"
	createReservationHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/create_reservation"
	exportCalendarHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/export_calendar"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/get_available_slots"
	getBusinessHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/get_business"
	getMonthCalendarHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/get_month_calendar"
	getReservationHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/get_reservation"
	getRichMenuHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/get_rich_menu"
	getStatsHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/get_stats"
	healthHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/health"
	lineWebhookHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/line_webhook"
	listBusinessesHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/list_businesses"
	listReservationsHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/list_reservations"
	updateStatusHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/update_reservation_status"
	validateCustomerHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/validate_customer"
	"github.com/m04kA/SMC-ReservationShowcase/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationShowcase/internal/catalog"
	"github.com/m04kA/SMC-ReservationShowcase/internal/config"
	"github.com/m04kA/SMC-ReservationShowcase/internal/infra/storage/memory"
	reservationRepo "github.com/m04kA/SMC-ReservationShowcase/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationShowcase/internal/integrations/line"
	authService "github.com/m04kA/SMC-ReservationShowcase/internal/service/auth"
	reservationsService "github.com/m04kA/SMC-ReservationShowcase/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-ReservationShowcase/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-ReservationShowcase/internal/usecase/get_available_slots"
	lineWebhookUC "github.com/m04kA/SMC-ReservationShowcase/internal/usecase/line_webhook"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/logger"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/metrics"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/mq"
)

// reservationStore общий набор методов postgres и in-memory хранилищ
type reservationStore interface {
	createReservationUC.ReservationRepository
	reservationsService.ReservationRepository
}

// eventPublisher публикация доменных событий
type eventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
	Close() error
}

func runServe(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting reservation-showcase...")
	log.Info("Configuration loaded from %s", configPath)

	// Коллектор создается всегда, наружу отдается только при metrics.enabled
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

	location := cfg.App.Location()

	businesses, err := catalog.New()
	if err != nil {
		return fmt.Errorf("failed to load business templates: %w", err)
	}

	// Хранилище: Postgres, если задано подключение, иначе in-memory
	var (
		store  reservationStore
		pinger healthHandler.Pinger
	)
	if cfg.Database.Configured() {
		db, err := openDatabase(cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			store = reservationRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			store = reservationRepo.NewRepository(db)
		}
		pinger = db
	} else {
		store = memory.NewRepository()
		log.Warn("Database is not configured, using in-memory storage with demo data fallback")
	}

	// Публикация событий в RabbitMQ (опционально)
	var publisher eventPublisher = mq.NoopPublisher{}
	if cfg.Events.Enabled {
		amqpPublisher, err := mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			return fmt.Errorf("failed to connect to message broker: %w", err)
		}
		publisher = amqpPublisher
		log.Info("Event publishing enabled (exchange=%s)", cfg.Events.Exchange)
	}
	defer publisher.Close()

	// Интеграция с LINE
	lineClient := line.NewClient(cfg.Line.APIBaseURL, time.Duration(cfg.Line.Timeout)*time.Second, log)
	for _, businessType := range config.LineBusinessTypes {
		if _, ok := cfg.Line.Channel(businessType); ok {
			log.Info("LINE channel configured: business=%s", businessType)
		}
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(store, businesses, publisher, metricsCollector, location, log)
	authSvc := authService.NewService(
		businesses,
		cfg.Admin.Username,
		cfg.Admin.Password,
		cfg.Admin.JWTSecret,
		time.Duration(cfg.Admin.TokenTTL)*time.Minute,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(store, businesses, publisher, metricsCollector, location, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(store, businesses, location, log)
	lineWebhookUseCase := lineWebhookUC.NewUseCase(businesses, lineClient, cfg.Line, cfg.App.BaseURL, metricsCollector, log)

	// Инициализируем handlers
	listBusinesses := listBusinessesHandler.NewHandler(businesses, log)
	getBusiness := getBusinessHandler.NewHandler(businesses, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	validateCustomer := validateCustomerHandler.NewHandler(createReservationUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	exportCalendar := exportCalendarHandler.NewHandler(reservationSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	updateStatus := updateStatusHandler.NewHandler(reservationSvc, log)
	getStats := getStatsHandler.NewHandler(reservationSvc, log)
	getMonthCalendar := getMonthCalendarHandler.NewHandler(reservationSvc, log)
	lineWebhook := lineWebhookHandler.NewHandler(lineWebhookUseCase, log)
	getRichMenu := getRichMenuHandler.NewHandler(lineWebhookUseCase)
	health := healthHandler.NewHandler(pinger, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// LINE WEBHOOK (подпись проверяется в use case)
	// ============================================================

	lineAPI := r.PathPrefix("/api/line/{businessType}").Subrouter()
	lineAPI.HandleFunc("/webhook", lineWebhook.Handle).Methods(http.MethodPost)
	lineAPI.HandleFunc("/webhook", lineWebhook.HandleStatus).Methods(http.MethodGet)
	lineAPI.HandleFunc("/richmenu", getRichMenu.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (форма бронирования)
	// ============================================================

	api.HandleFunc("/businesses", listBusinesses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessType}", getBusiness.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessType}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessType}/reservations/validate", validateCustomer.Handle).Methods(http.MethodPost)
	api.HandleFunc("/businesses/{businessType}/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/businesses/{businessType}/reservations/{reservationId}/calendar.ics", exportCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessType}/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен своего бизнеса)
	// ============================================================

	admin := api.PathPrefix("/businesses/{businessType}/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}/status", updateStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/calendar", getMonthCalendar.Handle).Methods(http.MethodGet)

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
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		close(stopMetricsCh)
		return fmt.Errorf("server failed to start: %w", err)
	}

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
	return nil
}

// openDatabase открывает пул соединений Postgres и проверяет подключение
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
