package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	closeSessionHandler "github.com/m04kA/SMC-InteriorStudio/internal/api/handlers/close_booking_session"
	createSessionHandler "github.com/m04kA/SMC-InteriorStudio/internal/api/handlers/create_booking_session"
	estimatePriceHandler "github.com/m04kA/SMC-InteriorStudio/internal/api/handlers/estimate_price"
	getSessionHandler "github.com/m04kA/SMC-InteriorStudio/internal/api/handlers/get_booking_session"
	getCatalogHandler "github.com/m04kA/SMC-InteriorStudio/internal/api/handlers/get_catalog"
	getGalleryHandler "github.com/m04kA/SMC-InteriorStudio/internal/api/handlers/get_gallery"
	getServicesHandler "github.com/m04kA/SMC-InteriorStudio/internal/api/handlers/get_services"
	nextStepHandler "github.com/m04kA/SMC-InteriorStudio/internal/api/handlers/next_step"
	previousStepHandler "github.com/m04kA/SMC-InteriorStudio/internal/api/handlers/previous_step"
	streamHeadlineHandler "github.com/m04kA/SMC-InteriorStudio/internal/api/handlers/stream_headline"
	submitBookingHandler "github.com/m04kA/SMC-InteriorStudio/internal/api/handlers/submit_booking"
	submitContactHandler "github.com/m04kA/SMC-InteriorStudio/internal/api/handlers/submit_contact"
	toggleContactMethodHandler "github.com/m04kA/SMC-InteriorStudio/internal/api/handlers/toggle_contact_method"
	updateFormHandler "github.com/m04kA/SMC-InteriorStudio/internal/api/handlers/update_booking_form"
	"github.com/m04kA/SMC-InteriorStudio/internal/api/middleware"
	"github.com/m04kA/SMC-InteriorStudio/internal/config"
	bookingRepo "github.com/m04kA/SMC-InteriorStudio/internal/infra/storage/booking"
	contactRepo "github.com/m04kA/SMC-InteriorStudio/internal/infra/storage/contact"
	"github.com/m04kA/SMC-InteriorStudio/internal/infra/storage/migrations"
	sessionRepo "github.com/m04kA/SMC-InteriorStudio/internal/infra/storage/wizardsession"
	leadServiceClient "github.com/m04kA/SMC-InteriorStudio/internal/integrations/leadservice"
	bookingSessionService "github.com/m04kA/SMC-InteriorStudio/internal/service/bookingsession"
	catalogService "github.com/m04kA/SMC-InteriorStudio/internal/service/catalog"
	"github.com/m04kA/SMC-InteriorStudio/internal/service/submission"
	estimatePriceUC "github.com/m04kA/SMC-InteriorStudio/internal/usecase/estimate_price"
	submitContactUC "github.com/m04kA/SMC-InteriorStudio/internal/usecase/submit_contact"
	"github.com/m04kA/SMC-InteriorStudio/internal/wizard"
	"github.com/m04kA/SMC-InteriorStudio/pkg/dbmetrics"
	"github.com/m04kA/SMC-InteriorStudio/pkg/logger"
	"github.com/m04kA/SMC-InteriorStudio/pkg/metrics"
	"github.com/m04kA/SMC-InteriorStudio/pkg/txmanager"
)

// rateLimitIdle время, после которого клиент забывается ограничителем
const rateLimitIdle = 10 * time.Minute

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(rootFlags.configPath)
	},
}

func runServe(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.NewWithFormat(cfg.Logs.File, cfg.Logs.Level, cfg.Logs.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-InteriorStudio...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Backend приёма заявок
	backend, closeBackend, err := newSubmitter(cfg, metricsCollector, stopMetricsCh, log)
	if err != nil {
		return err
	}
	defer closeBackend()
	submitter := submission.NewObserved(backend, cfg.Submission.Mode, metricsCollector)

	// Инициализируем сервисы
	sessions := sessionRepo.NewRepository[*wizard.Wizard](
		time.Duration(cfg.Sessions.TTL)*time.Second,
		cfg.Sessions.MaxSessions,
	)
	sessionSvc := bookingSessionService.NewService(
		sessions,
		submitter,
		wizard.RealClock{},
		bookingSessionService.Config{ResetDelay: cfg.Wizard.ResetDelay()},
		metricsCollector,
		log,
	)
	catalogSvc := catalogService.NewService(log)

	// Инициализируем use cases
	estimatePriceUseCase := estimatePriceUC.NewUseCase(metricsCollector, log)
	submitContactUseCase := submitContactUC.NewUseCase(submitter, log)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	getGallery := getGalleryHandler.NewHandler(catalogSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	streamHeadline := streamHeadlineHandler.NewHandler(catalogSvc, log)
	estimatePrice := estimatePriceHandler.NewHandler(estimatePriceUseCase, log)
	submitContact := submitContactHandler.NewHandler(submitContactUseCase, log)
	createSession := createSessionHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	updateForm := updateFormHandler.NewHandler(sessionSvc, log)
	toggleContactMethod := toggleContactMethodHandler.NewHandler(sessionSvc, log)
	nextStep := nextStepHandler.NewHandler(sessionSvc, log)
	previousStep := previousStepHandler.NewHandler(sessionSvc, log)
	submitBooking := submitBookingHandler.NewHandler(sessionSvc, log)
	closeSession := closeSessionHandler.NewHandler(sessionSvc, log)

	// Ограничение частоты для маршрутов отправки
	limit := func(h http.HandlerFunc) http.Handler { return h }
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log)
		limit = func(h http.HandlerFunc) http.Handler { return limiter.Middleware(h) }
		log.Info("Rate limiting enabled (%d req/min, burst %d)", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Статические данные сайта ---
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/gallery", getGallery.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/estimate", estimatePrice.Handle).Methods(http.MethodGet)
	api.HandleFunc("/headlines/{headlineId}/stream", streamHeadline.Handle).Methods(http.MethodGet)

	// --- Мастер записи ---
	api.HandleFunc("/booking-sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking-sessions/{sessionId}", closeSession.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/booking-sessions/{sessionId}/form", updateForm.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/booking-sessions/{sessionId}/contact-methods/{method}/toggle", toggleContactMethod.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}/next", nextStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}/back", previousStep.Handle).Methods(http.MethodPost)
	api.Handle("/booking-sessions/{sessionId}/submit", limit(submitBooking.Handle)).Methods(http.MethodPost)

	// --- Контактная форма ---
	api.Handle("/contact-messages", limit(submitContact.Handle)).Methods(http.MethodPost)

	// Фоновая очистка сессий и ограничителя
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	janitorInterval := time.Duration(cfg.Sessions.JanitorInterval) * time.Second
	go sessionSvc.RunJanitor(bgCtx, janitorInterval)
	if limiter != nil {
		go runLimiterCleanup(bgCtx, limiter, janitorInterval)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := newHTTPServer(bgCtx, addr, cfg.Server, r)

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
		log.Error("Server failed: %v", err)
		stopBackground()
		sessionSvc.Shutdown()
		close(stopMetricsCh)
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info("Shutting down server...")
	stopBackground()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Закрываем мастера: отменяются незавершённые отправки и таймеры сброса
	sessionSvc.Shutdown()

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
	return nil
}

// newHTTPServer создает сервер, контексты запросов которого наследуют baseCtx.
// Отмена baseCtx завершает долгие ответы (SSE), иначе Shutdown ждал бы их до таймаута.
func newHTTPServer(baseCtx context.Context, addr string, cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
	}
}

// newSubmitter собирает backend по submission.mode. Возвращает функцию освобождения ресурсов.
func newSubmitter(
	cfg *config.Config,
	metricsCollector *metrics.Metrics,
	stopMetricsCh <-chan struct{},
	log *logger.Logger,
) (submission.Submitter, func(), error) {
	switch cfg.Submission.Mode {
	case config.SubmissionWebhook:
		client := leadServiceClient.NewClient(
			cfg.Webhook.URL,
			time.Duration(cfg.Webhook.Timeout)*time.Second,
			log,
		)
		log.Info("Submissions are forwarded to %s (timeout=%ds)", cfg.Webhook.URL, cfg.Webhook.Timeout)
		return client, func() {}, nil

	case config.SubmissionStorage:
		db, err := openDatabase(cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}

		var (
			bookings  *bookingRepo.Repository
			contacts  *contactRepo.Repository
			txManager *txmanager.TransactionManager
		)
		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")

			bookings = bookingRepo.NewRepository(wrappedDB)
			contacts = contactRepo.NewRepository(wrappedDB)
			txManager = txmanager.NewTransactionManager(wrappedDB)
		} else {
			bookings = bookingRepo.NewRepository(db)
			contacts = contactRepo.NewRepository(db)
			txManager = txmanager.NewTransactionManager(dbmetrics.SqlDBWrapper{DB: db})
		}

		log.Info("Submissions are stored in PostgreSQL")
		return submission.NewStorage(bookings, contacts, txManager, log), func() { _ = db.Close() }, nil

	default:
		log.Info("Submissions are simulated (latency=%s)", cfg.Wizard.SubmitLatency())
		return submission.NewSimulated(cfg.Wizard.SubmitLatency(), log), func() {}, nil
	}
}

func openDatabase(dbCfg config.DatabaseConfig, log *logger.Logger) (*sql.DB, error) {
	// Подключаемся к базе данных
	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(dbCfg.MaxOpenConns)
	db.SetMaxIdleConns(dbCfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(dbCfg.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		dbCfg.Host, dbCfg.Port, dbCfg.DBName)

	if dbCfg.MigrateOnStart {
		if err := migrations.Up(dbCfg.URL()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		log.Info("Database migrations applied")
	}

	return db, nil
}

func runLimiterCleanup(ctx context.Context, limiter *middleware.RateLimiter, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Cleanup(rateLimitIdle)
		}
	}
}
