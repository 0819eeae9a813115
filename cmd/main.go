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

	createAgendaHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/create_agenda"
	createFeriadoHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/create_feriado"
	createTurnoHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/create_turno"
	deleteAgendaHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/delete_agenda"
	deleteFeriadoHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/delete_feriado"
	deleteTurnoHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/delete_turno"
	deprovisionCuposHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/deprovision_cupos"
	getDisponibilidadHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/get_disponibilidad"
	getTurnoHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/get_turno"
	getWeeklyHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/get_weekly"
	listAgendasHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/list_agendas"
	listFeriadosHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/list_feriados"
	listTurnosHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/list_turnos"
	provisionCuposHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/provision_cupos"
	updateTurnoHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/update_turno"
	upsertWeeklyHandler "github.com/lab-agenda/turnero-service/internal/api/handlers/upsert_weekly"
	"github.com/lab-agenda/turnero-service/internal/api/middleware"
	"github.com/lab-agenda/turnero-service/internal/config"
	agendaRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/agenda"
	cupoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/cupo"
	feriadoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/feriado"
	medicoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/medico"
	pacienteRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/paciente"
	turnoRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/turno"
	weeklyRepo "github.com/lab-agenda/turnero-service/internal/infra/storage/weekly"
	agendasService "github.com/lab-agenda/turnero-service/internal/service/agendas"
	"github.com/lab-agenda/turnero-service/internal/service/capacidad"
	feriadosService "github.com/lab-agenda/turnero-service/internal/service/feriados"
	turnosService "github.com/lab-agenda/turnero-service/internal/service/turnos"
	createTurnoUC "github.com/lab-agenda/turnero-service/internal/usecase/create_turno"
	deprovisionCuposUC "github.com/lab-agenda/turnero-service/internal/usecase/deprovision_cupos"
	getDisponibilidadUC "github.com/lab-agenda/turnero-service/internal/usecase/get_disponibilidad"
	provisionCuposUC "github.com/lab-agenda/turnero-service/internal/usecase/provision_cupos"
	updateTurnoUC "github.com/lab-agenda/turnero-service/internal/usecase/update_turno"
	"github.com/lab-agenda/turnero-service/pkg/dbmetrics"
	"github.com/lab-agenda/turnero-service/pkg/logger"
	"github.com/lab-agenda/turnero-service/pkg/metrics"
	"github.com/lab-agenda/turnero-service/pkg/simpletxmanager"
	"github.com/lab-agenda/turnero-service/pkg/txmanager"
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

	log.Info("Starting turnero-service...")
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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s, lock_timeout=%dms)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, cfg.Database.LockTimeoutMS)

	// Инициализируем репозитории (с метриками или без)
	var (
		turnoRepository    *turnoRepo.Repository
		cupoRepository     *cupoRepo.Repository
		feriadoRepository  *feriadoRepo.Repository
		weeklyRepository   *weeklyRepo.Repository
		agendaRepository   *agendaRepo.Repository
		pacienteRepository *pacienteRepo.Repository
		medicoRepository   *medicoRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		turnoRepository = turnoRepo.NewRepository(wrappedDB)
		cupoRepository = cupoRepo.NewRepository(wrappedDB)
		feriadoRepository = feriadoRepo.NewRepository(wrappedDB)
		weeklyRepository = weeklyRepo.NewRepository(wrappedDB)
		agendaRepository = agendaRepo.NewRepository(wrappedDB)
		pacienteRepository = pacienteRepo.NewRepository(wrappedDB)
		medicoRepository = medicoRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		turnoRepository = turnoRepo.NewRepository(db)
		cupoRepository = cupoRepo.NewRepository(db)
		feriadoRepository = feriadoRepo.NewRepository(db)
		weeklyRepository = weeklyRepo.NewRepository(db)
		agendaRepository = agendaRepo.NewRepository(db)
		pacienteRepository = pacienteRepo.NewRepository(db)
		medicoRepository = medicoRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Резолвер емкости: один экземпляр обслуживает и снимки для UI,
	// и авторитативные проверки внутри booking-транзакций
	resolver := capacidad.NewResolver(
		cupoRepository,
		weeklyRepository,
		feriadoRepository,
		turnoRepository,
	)

	// Инициализируем сервисы
	turnoSvc := turnosService.NewService(
		turnoRepository,
		pacienteRepository,
		medicoRepository,
		agendaRepository,
		log,
	)
	agendaSvc := agendasService.NewService(agendaRepository, weeklyRepository, log)
	feriadoSvc := feriadosService.NewService(feriadoRepository, log)

	// Инициализируем use cases
	createTurnoUseCase := createTurnoUC.NewUseCase(
		turnoRepository,
		cupoRepository,
		feriadoRepository,
		agendaRepository,
		pacienteRepository,
		medicoRepository,
		resolver,
		txMgr,
		log,
	)

	updateTurnoUseCase := updateTurnoUC.NewUseCase(
		turnoRepository,
		cupoRepository,
		feriadoRepository,
		agendaRepository,
		medicoRepository,
		resolver,
		txMgr,
		log,
	)

	provisionCuposUseCase := provisionCuposUC.NewUseCase(
		cupoRepository,
		agendaRepository,
		txMgr,
		log,
	)

	deprovisionCuposUseCase := deprovisionCuposUC.NewUseCase(
		cupoRepository,
		agendaRepository,
		txMgr,
		log,
	)

	getDisponibilidadUseCase := getDisponibilidadUC.NewUseCase(
		resolver,
		agendaRepository,
		feriadoRepository,
		log,
	)

	// Инициализируем handlers
	createTurno := createTurnoHandler.NewHandler(createTurnoUseCase, log)
	getTurno := getTurnoHandler.NewHandler(turnoSvc, log)
	updateTurno := updateTurnoHandler.NewHandler(updateTurnoUseCase, log)
	deleteTurno := deleteTurnoHandler.NewHandler(turnoSvc, log)
	listTurnos := listTurnosHandler.NewHandler(turnoSvc, log)
	listAgendas := listAgendasHandler.NewHandler(agendaSvc, log)
	createAgenda := createAgendaHandler.NewHandler(agendaSvc, log)
	deleteAgenda := deleteAgendaHandler.NewHandler(agendaSvc, log)
	getWeekly := getWeeklyHandler.NewHandler(agendaSvc, log)
	upsertWeekly := upsertWeeklyHandler.NewHandler(agendaSvc, log)
	getDisponibilidad := getDisponibilidadHandler.NewHandler(getDisponibilidadUseCase, log)
	provisionCupos := provisionCuposHandler.NewHandler(provisionCuposUseCase, log)
	deprovisionCupos := deprovisionCuposHandler.NewHandler(deprovisionCuposUseCase, log)
	listFeriados := listFeriadosHandler.NewHandler(feriadoSvc, log)
	createFeriado := createFeriadoHandler.NewHandler(feriadoSvc, log)
	deleteFeriado := deleteFeriadoHandler.NewHandler(feriadoSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
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

	// Список агенд
	api.HandleFunc("/agendas", listAgendas.Handle).Methods(http.MethodGet)

	// Календарь доступности агенды
	api.HandleFunc("/agendas/{agendaId}/disponibilidad",
		getDisponibilidad.Handle).Methods(http.MethodGet)

	// Реестр feriados
	api.HandleFunc("/feriados", listFeriados.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Usuario header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Turnos ---
	protected.HandleFunc("/turnos", createTurno.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/turnos", listTurnos.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/turnos/{turnoId}", getTurno.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/turnos/{turnoId}", updateTurno.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/turnos/{turnoId}", deleteTurno.Handle).Methods(http.MethodDelete)

	// --- Администрирование агенд ---
	protected.HandleFunc("/agendas", createAgenda.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/agendas/{agendaId}", deleteAgenda.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/agendas/{agendaId}/semana", getWeekly.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/agendas/{agendaId}/semana", upsertWeekly.Handle).Methods(http.MethodPut)

	// --- Массовое управление cupos ---
	protected.HandleFunc("/agendas/{agendaId}/cupos", provisionCupos.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/agendas/{agendaId}/cupos", deprovisionCupos.Handle).Methods(http.MethodDelete)

	// --- Feriados ---
	protected.HandleFunc("/feriados", createFeriado.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/feriados/{feriadoId}", deleteFeriado.Handle).Methods(http.MethodDelete)

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
