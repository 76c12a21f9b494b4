package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/CampusHaven/internal/config"
	"github.com/stpnv0/CampusHaven/internal/handler"
	"github.com/stpnv0/CampusHaven/internal/middleware"
	"github.com/stpnv0/CampusHaven/internal/notification"
	"github.com/stpnv0/CampusHaven/internal/repository"
	"github.com/stpnv0/CampusHaven/internal/router"
	"github.com/stpnv0/CampusHaven/internal/scheduler"
	"github.com/stpnv0/CampusHaven/internal/seed"
	"github.com/stpnv0/CampusHaven/internal/service"
	"github.com/stpnv0/CampusHaven/internal/storage"
	"github.com/stpnv0/CampusHaven/internal/storage/memory"
	"github.com/stpnv0/CampusHaven/internal/storage/postgres"
	"github.com/stpnv0/CampusHaven/internal/storage/sqlite"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	store      storage.Store
	closers    []io.Closer
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"CampusHaven",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStorage(); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(); err != nil {
		_ = app.closeStorage()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() error {
	switch a.cfg.Storage.Backend {
	case config.BackendMemory:
		a.store = memory.New()
		a.log.Warn("using in-memory storage, data is lost on restart")

	case config.BackendSQLite:
		path := a.cfg.SQLite.Path
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create sqlite dir: %w", err)
		}
		st, err := sqlite.Open(path)
		if err != nil {
			return err
		}
		a.store = st
		a.closers = append(a.closers, st)
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "sqlite storage opened",
			logger.String("path", path),
		)

	case config.BackendPostgres:
		if err := a.runMigrations(); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		db, err := a.initDB()
		if err != nil {
			return err
		}
		a.store = postgres.New(db)
		a.closers = append(a.closers, db.Master)

	default:
		return fmt.Errorf("unknown storage backend %q", a.cfg.Storage.Backend)
	}

	return nil
}

func (a *App) initDB() (*dbpg.DB, error) {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	tunePool(db.Master, a.cfg.Postgres)

	if err := db.Master.PingContext(context.Background()); err != nil {
		_ = db.Master.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return db, nil
}

// tunePool applies the pool settings dbpg.Options does not carry.
func tunePool(db *sql.DB, cfg config.PostgresConfig) {
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
}

func (a *App) initServices() error {
	ns := a.cfg.Storage.Namespace
	userRepo := repository.NewUserRepo(a.store, ns)
	listingRepo := repository.NewListingRepo(a.store, ns)
	// sessions are process-local
	sessionRepo := repository.NewSessionRepo(memory.New(), ns)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	sessionService := service.NewSessionService(userRepo, sessionRepo, a.cfg.Auth.BcryptCost, a.log)
	listingService := service.NewListingService(listingRepo, userRepo, a.log)
	bookingService := service.NewBookingService(userRepo, listingRepo, sessionService, n, a.log)
	wishlistService := service.NewWishlistService(userRepo, listingRepo, sessionService, a.log)
	dashboardService := service.NewDashboardService(listingService, wishlistService, bookingService)

	if a.cfg.Seed.Enabled {
		if err := a.applySeed(sessionService, userRepo, listingService); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	a.scheduler = scheduler.New(
		sessionService,
		a.cfg.Session.SweepInterval,
		a.cfg.Session.TTL,
		a.log,
	)

	h := handler.NewHandler(sessionService, listingService, bookingService, wishlistService, dashboardService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) applySeed(sessions *service.SessionService, users *repository.UserRepository, listings *service.ListingService) error {
	fixture, err := seed.Load(a.cfg.Seed.Path)
	if err != nil {
		return err
	}
	return seed.NewSeeder(sessions, users, listings, a.log).Apply(context.Background(), fixture)
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Backend),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		_ = a.closeStorage()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.closeStorage(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "storage closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) closeStorage() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
