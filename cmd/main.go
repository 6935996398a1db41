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

	createBookingHandler "github.com/m04kA/SMC-ClinicBooking/internal/api/handlers/create_booking"
	formSessionHandler "github.com/m04kA/SMC-ClinicBooking/internal/api/handlers/form_session"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ClinicBooking/internal/api/handlers/get_available_slots"
	getBookedSlotsHandler "github.com/m04kA/SMC-ClinicBooking/internal/api/handlers/get_booked_slots"
	getCalendarHandler "github.com/m04kA/SMC-ClinicBooking/internal/api/handlers/get_calendar"
	getDoctorScheduleHandler "github.com/m04kA/SMC-ClinicBooking/internal/api/handlers/get_doctor_schedule"
	getDoctorsHandler "github.com/m04kA/SMC-ClinicBooking/internal/api/handlers/get_doctors"
	"github.com/m04kA/SMC-ClinicBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicBooking/internal/config"
	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ClinicBooking/internal/infra/storage/catalog"
	ledgerStorage "github.com/m04kA/SMC-ClinicBooking/internal/infra/storage/ledger"
	appointmentsClient "github.com/m04kA/SMC-ClinicBooking/internal/integrations/appointments"
	availabilityService "github.com/m04kA/SMC-ClinicBooking/internal/service/availability"
	calendarService "github.com/m04kA/SMC-ClinicBooking/internal/service/calendar"
	ledgerService "github.com/m04kA/SMC-ClinicBooking/internal/service/ledger"
	"github.com/m04kA/SMC-ClinicBooking/internal/session"
	createBookingUC "github.com/m04kA/SMC-ClinicBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-ClinicBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ClinicBooking/pkg/logger"
	"github.com/m04kA/SMC-ClinicBooking/pkg/metrics"
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

	log.Info("Starting SMC-ClinicBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем каталог расписаний (пустой путь - встроенный каталог)
	catalog, err := catalogRepo.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal("Failed to load schedule catalog: %v", err)
	}
	log.Info("Schedule catalog loaded: %d doctors", len(catalog.Doctors()))

	// Инициализируем хранилище журнала бронирований
	store, closeStore := newLedgerStore(cfg, log)
	defer closeStore()

	// Инициализируем клиента транспорта заявок; без URL работаем в офлайн-режиме
	var transport createBookingUC.Transport
	if cfg.Transport.URL != "" {
		transport = appointmentsClient.NewClient(cfg.Transport.URL, cfg.Transport.TransportTimeout(), log)
		log.Info("Appointments transport initialized (url=%s timeout=%ds)", cfg.Transport.URL, cfg.Transport.Timeout)
	} else {
		log.Warn("Appointments transport is not configured, bookings are recorded in the ledger only")
	}

	// Инициализируем сервисы
	ledgerSvc := ledgerService.NewService(store, metricsCollector, log)
	availabilitySvc := availabilityService.NewService(catalog, ledgerSvc)
	calendarSvc := calendarService.NewService(availabilitySvc, calendarService.Layout(cfg.Calendar.Layout))

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalog,
		availabilitySvc,
		metricsCollector,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		catalog,
		availabilitySvc,
		ledgerSvc,
		transport,
		metricsCollector,
		createBookingUC.Options{
			Mode:       domain.CommitMode(cfg.Booking.Mode),
			VerifySlot: cfg.Booking.ShouldVerifySlot(),
		},
		log,
	)
	log.Info("Booking committer: mode=%s, verify_slot=%t", cfg.Booking.Mode, cfg.Booking.ShouldVerifySlot())

	// Реестр сессий форм
	registry := session.NewRegistry(session.Deps{
		Catalog:  catalog,
		Resolver: availabilitySvc,
		Slots:    getAvailableSlotsUseCase,
		Booking:  createBookingUseCase,
		Calendar: calendarSvc,
		Renderer: session.LogRenderer{Log: log},
		Logger:   log,
	}, time.Duration(cfg.Session.IdleTTL)*time.Second)

	// Инициализируем handlers
	getDoctors := getDoctorsHandler.NewHandler(catalog)
	getDoctorSchedule := getDoctorScheduleHandler.NewHandler(catalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBookedSlots := getBookedSlotsHandler.NewHandler(ledgerSvc, catalog, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, catalog, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	formSession := formSessionHandler.NewHandler(registry, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог и доступность ---
	api.HandleFunc("/doctors", getDoctors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/schedule", getDoctorSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/bookings", getBookedSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Отправка заявки ---
	api.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)

	// --- Сессии форм ---
	api.HandleFunc("/sessions", formSession.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", formSession.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/doctor", formSession.SetDoctor).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/date", formSession.SetDate).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/time", formSession.SetTime).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/calendar/prev", formSession.PrevMonth).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/calendar/next", formSession.NextMonth).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/submit", formSession.Submit).Methods(http.MethodPost)

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

// newLedgerStore создает хранилище журнала по ledger.backend
func newLedgerStore(cfg *config.Config, log *logger.Logger) (ledgerService.Store, func()) {
	switch cfg.Ledger.Backend {
	case config.LedgerBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			// Журнал переживает недоступность хранилища: чтения пустые, записи логируются
			log.Warn("Redis is not reachable at %s, ledger will degrade: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		}

		return ledgerStorage.NewRedisStore(client), func() { _ = client.Close() }

	case config.LedgerBackendPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		return ledgerStorage.NewRepository(db), func() { _ = db.Close() }

	default:
		log.Info("Using in-memory booking ledger")
		return ledgerStorage.NewMemoryStore(), func() {}
	}
}
