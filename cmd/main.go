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

	businessHoursHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/business_hours"
	contactHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/contact"
	createAppointmentHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/get_available_slots"
	getConfigHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/get_config"
	getCurrentUserHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/get_current_user"
	listAppointmentsHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/list_appointments"
	loginHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/login"
	manageServicesHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/manage_services"
	manageStaffHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/manage_staff"
	manageUsersHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/manage_users"
	updateAppointmentHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/update_appointment"
	updateConfigHandler "github.com/lockenroll/LR-SalonService/internal/api/handlers/update_config"
	"github.com/lockenroll/LR-SalonService/internal/api/middleware"
	"github.com/lockenroll/LR-SalonService/internal/config"
	appointmentRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/appointment"
	salonConfigRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/salonconfig"
	userRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/user"
	"github.com/lockenroll/LR-SalonService/internal/integrations/mailer"
	appointmentsService "github.com/lockenroll/LR-SalonService/internal/service/appointments"
	authService "github.com/lockenroll/LR-SalonService/internal/service/auth"
	salonConfigService "github.com/lockenroll/LR-SalonService/internal/service/salonconfig"
	usersService "github.com/lockenroll/LR-SalonService/internal/service/users"
	createAppointmentUC "github.com/lockenroll/LR-SalonService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/lockenroll/LR-SalonService/internal/usecase/get_available_slots"
	"github.com/lockenroll/LR-SalonService/pkg/dbmetrics"
	"github.com/lockenroll/LR-SalonService/pkg/logger"
	"github.com/lockenroll/LR-SalonService/pkg/metrics"
	"github.com/lockenroll/LR-SalonService/pkg/simpletxmanager"
	"github.com/lockenroll/LR-SalonService/pkg/txmanager"
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

	log.Info("Starting LR-SalonService...")
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
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение. Недоступная база не останавливает запуск:
	// сервис поднимается и принимает вход по аварийным учетным данным.
	dbAvailable := true
	if err := db.Ping(); err != nil {
		dbAvailable = false
		log.Error("Failed to ping database: %v - continuing, fallback login only", err)
	} else {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	// Инициализируем почтовый клиент
	mailClient := mailer.NewClient(cfg.Email.Host, cfg.Email.Port, cfg.Email.From, cfg.Email.Enabled, log).
		WithContactAddress(cfg.Email.ContactAddress)
	if cfg.Metrics.Enabled {
		mailClient = mailClient.WithMetrics(metricsCollector)
	}
	if cfg.Email.Enabled {
		log.Info("Mailer enabled (host=%s, port=%d, from=%s)", cfg.Email.Host, cfg.Email.Port, cfg.Email.From)
	} else {
		log.Info("Mailer disabled, confirmations are logged only")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		salonConfigRepository *salonConfigRepo.Repository
		userRepository        *userRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		salonConfigRepository = salonConfigRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		salonConfigRepository = salonConfigRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, salonConfigRepository, log)
	salonConfigSvc := salonConfigService.NewService(salonConfigRepository, txMgr, log)
	userSvc := usersService.NewService(userRepository, log)
	authSvc := authService.NewService(
		userRepository,
		[]byte(cfg.Auth.JWTSecret),
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		authService.FallbackCredentials{
			Enabled:  cfg.Auth.FallbackEnabled,
			Username: cfg.Auth.FallbackUsername,
			Password: cfg.Auth.FallbackPassword,
		},
		log,
	)

	// Стартовые данные: конфигурация салона и первый администратор
	if dbAvailable {
		bootstrapCtx, cancelBootstrap := context.WithTimeout(context.Background(), 10*time.Second)
		if err := salonConfigSvc.EnsureDefault(bootstrapCtx); err != nil {
			log.Error("Failed to seed default salon config: %v", err)
		}
		if err := userSvc.EnsureInitialAdmin(bootstrapCtx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
			log.Error("Failed to create initial admin: %v", err)
		}
		cancelBootstrap()
	}

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		salonConfigRepository,
		mailClient,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		salonConfigRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getCurrentUser := getCurrentUserHandler.NewHandler(userSvc, log)
	manageUsers := manageUsersHandler.NewHandler(userSvc, log)
	getConfig := getConfigHandler.NewHandler(salonConfigSvc, log)
	updateConfig := updateConfigHandler.NewHandler(salonConfigSvc, log)
	businessHours := businessHoursHandler.NewHandler(salonConfigSvc, log)
	manageServices := manageServicesHandler.NewHandler(salonConfigSvc, log)
	manageStaff := manageStaffHandler.NewHandler(salonConfigSvc, log)
	contactForm := contactHandler.NewHandler(mailClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Онлайн-запись клиентов
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Вход персонала
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Форма обратной связи
	api.HandleFunc("/contact", contactForm.Handle).Methods(http.MethodPost)

	// Публичная информация о салоне
	api.HandleFunc("/config", getConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/config/business-hours", businessHours.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/config/services", manageServices.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/config/staff", manageStaff.HandleList).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	// --- Управление записями ---
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Текущий пользователь ---
	protected.HandleFunc("/auth/me", getCurrentUser.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/auth/users/{userId}", manageUsers.HandleUpdate).Methods(http.MethodPut)

	// ============================================================
	// ADMIN ROUTES (только для администраторов)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin(log))

	// --- Учетные записи персонала ---
	admin.HandleFunc("/auth/register", manageUsers.HandleRegister).Methods(http.MethodPost)
	admin.HandleFunc("/auth/users", manageUsers.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/auth/users/{userId}", manageUsers.HandleDelete).Methods(http.MethodDelete)

	// --- Настройки салона ---
	admin.HandleFunc("/config", updateConfig.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/config/business-hours", businessHours.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/config/services", manageServices.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/config/services/{serviceId}", manageServices.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/config/services/{serviceId}", manageServices.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/config/staff", manageStaff.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/config/staff/{staffId}", manageStaff.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/config/staff/{staffId}", manageStaff.HandleDelete).Methods(http.MethodDelete)

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
