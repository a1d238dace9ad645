package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/trueqia/internal/config"
	"github.com/GlebRadaev/trueqia/internal/contractgen"
	"github.com/GlebRadaev/trueqia/internal/expiry"
	"github.com/GlebRadaev/trueqia/internal/handlers"
	"github.com/GlebRadaev/trueqia/internal/pg"
	"github.com/GlebRadaev/trueqia/internal/repo"
	"github.com/GlebRadaev/trueqia/internal/service"
	"github.com/GlebRadaev/trueqia/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	expiry *expiry.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New(cfg *config.Config) *Application {
	return &Application{
		cfg:   cfg,
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	err := logger.InitLogger(a.cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	a.repo, err = a.buildRepositories(ctx)
	if err != nil {
		return err
	}
	a.srv = service.New(a.repo, a.cfg)
	if pinger, ok := a.srv.ContractGenerator.(contractgen.Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			zap.L().Warn("contract service is not reachable, template contracts will be used", zap.Error(err))
		}
	}
	a.api = handlers.New(a.srv)
	a.expiry = expiry.New(a.cfg, a.repo.TradeRepo, a.srv.TradeService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.expiry.Start(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) buildRepositories(ctx context.Context) (*repo.Repositories, error) {
	if a.cfg.Database == config.MemoryDatabase {
		zap.L().Warn("using in-memory storage, state is lost on exit")
		return repo.NewInMemory(), nil
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		pool.Close()
	}()

	return repo.New(pg.New(pool), pg.NewTXManager(pool)), nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
