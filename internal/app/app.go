// Package app wires configuration, storage, collaborators and the HTTP
// router into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/careerforge/resume-assistant/internal/api"
	"github.com/careerforge/resume-assistant/internal/api/handler"
	"github.com/careerforge/resume-assistant/internal/core/ports"
	"github.com/careerforge/resume-assistant/internal/core/scorer"
	"github.com/careerforge/resume-assistant/internal/core/service"
	"github.com/careerforge/resume-assistant/internal/infrastructure/cache"
	mongostore "github.com/careerforge/resume-assistant/internal/infrastructure/db/mongo"
	rediscache "github.com/careerforge/resume-assistant/internal/infrastructure/db/redis"
	"github.com/careerforge/resume-assistant/internal/infrastructure/db/sqlite"
	"github.com/careerforge/resume-assistant/internal/infrastructure/document"
	"github.com/careerforge/resume-assistant/internal/infrastructure/jobsearch"
	"github.com/careerforge/resume-assistant/internal/infrastructure/llm"
	"github.com/careerforge/resume-assistant/internal/pkg/config"
	"github.com/careerforge/resume-assistant/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg     *config.Config
	log     zerolog.Logger
	echo    *echo.Echo
	closers []func(context.Context) error
}

type store struct {
	users   ports.UserRepository
	history ports.HistoryRepository
	pinger  handler.Pinger
}

// New opens every dependency and builds the router. On error, whatever was
// already opened is closed again.
func New(ctx context.Context, cfg *config.Config) (_ *App, err error) {
	a := &App{cfg: cfg, log: logger.Get()}
	defer func() {
		if err != nil {
			a.close(context.Background())
		}
	}()

	st, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	pingers := map[string]handler.Pinger{"store": st.pinger}

	jobCache, err := a.openJobCache(ctx, pingers)
	if err != nil {
		return nil, err
	}

	backend, err := llm.New(ctx, llm.Config{
		Provider:      cfg.Generation.Provider,
		OllamaURL:     cfg.Generation.OllamaURL,
		OpenAIBaseURL: cfg.Generation.OpenAIBaseURL,
		OpenAIAPIKey:  cfg.Generation.OpenAIAPIKey,
		GeminiAPIKey:  cfg.Generation.GeminiAPIKey,
		Timeout:       cfg.Generation.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("generation backend: %w", err)
	}
	if p, ok := backend.(handler.Pinger); ok {
		pingers["llm"] = p
	}

	searcher := jobsearch.NewClient(jobsearch.Config{
		APIKey:  cfg.JobSearch.APIKey,
		Host:    cfg.JobSearch.Host,
		Country: cfg.JobSearch.Country,
	})
	if cfg.JobSearch.APIKey == "" {
		a.log.Warn().Msg("RAPIDAPI_KEY is empty, job search requests will be rejected upstream")
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	a.echo = api.NewRouter(api.Deps{
		Log:  a.log,
		Auth: service.NewAuthService(st.users, tokens, cfg.BcryptCost),
		Generation: service.NewGenerationService(
			backend,
			scorer.NewTFIDF(),
			st.history,
			cfg.Generation.DefaultModel,
			cfg.Generation.Timeout,
			logger.Component("generation"),
		),
		History:     service.NewHistoryService(st.history),
		Jobs:        service.NewJobService(searcher, jobCache, cfg.JobSearch.CacheTTL, logger.Component("jobs")),
		Extractor:   document.NewExtractor(),
		Renderer:    document.NewRenderer(),
		ContentType: document.ContentType,
		Pingers:     pingers,
	})

	return a, nil
}

func (a *App) openStore(ctx context.Context) (*store, error) {
	log := logger.Component("store")

	switch a.cfg.Store.Driver {
	case config.StoreMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: a.cfg.Mongo.URI, Database: a.cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)

		users := mongostore.NewUserRepository(db)
		history := mongostore.NewHistoryRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		if err := history.EnsureIndexes(ctx); err != nil {
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		log.Info().Str("database", a.cfg.Mongo.Database).Msg("mongo store ready")
		return &store{users: users, history: history, pinger: mongostore.NewPinger(client)}, nil

	default:
		db, err := sqlite.Open(ctx, sqlite.Config{Path: a.cfg.Store.SQLitePath})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return db.Close() })

		if err := sqlite.Migrate(ctx, db); err != nil {
			return nil, err
		}
		users := sqlite.NewUserRepository(db)
		log.Info().Str("path", a.cfg.Store.SQLitePath).Msg("sqlite store ready")
		return &store{users: users, history: sqlite.NewHistoryRepository(db), pinger: users}, nil
	}
}

// openJobCache prefers Redis when an address is configured and falls back to
// a bounded in-process cache otherwise.
func (a *App) openJobCache(ctx context.Context, pingers map[string]handler.Pinger) (ports.JobCache, error) {
	if a.cfg.Redis.Addr == "" {
		return cache.NewMemoryJobCache(a.cfg.JobSearch.CacheSize, a.cfg.JobSearch.CacheTTL), nil
	}

	client, err := rediscache.Connect(ctx, rediscache.Config{Addr: a.cfg.Redis.Addr, DB: a.cfg.Redis.DB})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func(context.Context) error { return client.Close() })
	pingers["cache"] = rediscache.NewPinger(client)

	log := logger.Component("cache")
	log.Info().Str("addr", a.cfg.Redis.Addr).Msg("redis job cache ready")
	return rediscache.NewJobCache(client), nil
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler { return a.echo }

// Run serves until ctx is cancelled, then drains in-flight requests and
// releases every dependency.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("port", a.cfg.Port).Str("env", a.cfg.Env).Msg("http server starting")
		if err := a.echo.Start(":" + a.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close(context.Background())
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := a.echo.Shutdown(shutdownCtx)
	a.close(shutdownCtx)
	return err
}

func (a *App) close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.log.Warn().Err(err).Msg("close dependency")
		}
	}
	a.closers = nil
}
