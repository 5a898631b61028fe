// Package app wires configuration, adapters, services, and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/liam-m3/divorce-companion/internal/adapter/llm"
	"github.com/liam-m3/divorce-companion/internal/adapter/objstore"
	"github.com/liam-m3/divorce-companion/internal/adapter/postgres"
	documentrepo "github.com/liam-m3/divorce-companion/internal/adapter/postgres/document"
	financialrepo "github.com/liam-m3/divorce-companion/internal/adapter/postgres/financial"
	journalrepo "github.com/liam-m3/divorce-companion/internal/adapter/postgres/journal"
	profilerepo "github.com/liam-m3/divorce-companion/internal/adapter/postgres/profile"
	timelinerepo "github.com/liam-m3/divorce-companion/internal/adapter/postgres/timeline"
	tokenrepo "github.com/liam-m3/divorce-companion/internal/adapter/postgres/token"
	userrepo "github.com/liam-m3/divorce-companion/internal/adapter/postgres/user"
	jwtauth "github.com/liam-m3/divorce-companion/internal/auth"
	"github.com/liam-m3/divorce-companion/internal/config"
	"github.com/liam-m3/divorce-companion/internal/service/auth"
	"github.com/liam-m3/divorce-companion/internal/service/brief"
	"github.com/liam-m3/divorce-companion/internal/service/dashboard"
	"github.com/liam-m3/divorce-companion/internal/service/finance"
	"github.com/liam-m3/divorce-companion/internal/service/journal"
	"github.com/liam-m3/divorce-companion/internal/service/profile"
	"github.com/liam-m3/divorce-companion/internal/service/timeline"
	"github.com/liam-m3/divorce-companion/internal/service/vault"
	"github.com/liam-m3/divorce-companion/internal/transport/middleware"
	"github.com/liam-m3/divorce-companion/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// dependency graph, starts the HTTP server, and blocks until the context is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	store, err := objstore.NewGCS(ctx, cfg.Storage.Bucket)
	if err != nil {
		return fmt.Errorf("connect object store: %w", err)
	}
	defer store.Close()

	completions := llm.New(cfg.LLM.APIKey, cfg.LLM.Model)
	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	profiles := profilerepo.New(pool)
	tokens := tokenrepo.New(pool)
	journals := journalrepo.New(pool)
	documents := documentrepo.New(pool)
	financials := financialrepo.New(pool)
	timelines := timelinerepo.New(pool)

	authSvc := auth.NewService(logger, users, profiles, tokens, txManager, jwtManager, cfg.Auth)
	profileSvc := profile.NewService(logger, profiles)
	journalSvc := journal.NewService(logger, journals, completions, cfg.Brief)
	briefSvc := brief.NewService(logger, journals, documents, financials, timelines, profiles, completions, cfg.Brief)
	vaultSvc := vault.NewService(logger, documents, store, cfg.Storage)
	financeSvc := finance.NewService(logger, financials)
	timelineSvc := timeline.NewService(logger, timelines)
	dashboardSvc := dashboard.NewService(logger, profiles)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := newRouter(routerDeps{
		cfg:       cfg,
		logger:    logger,
		pool:      pool,
		limiter:   rateLimiter,
		auth:      authSvc,
		profile:   profileSvc,
		journal:   journalSvc,
		brief:     briefSvc,
		vault:     vaultSvc,
		finance:   financeSvc,
		timeline:  timelineSvc,
		dashboard: dashboardSvc,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

type routerDeps struct {
	cfg       *config.Config
	logger    *slog.Logger
	pool      dbPinger
	limiter   *middleware.RateLimiter
	auth      *auth.Service
	profile   *profile.Service
	journal   *journal.Service
	brief     *brief.Service
	vault     *vault.Service
	finance   *finance.Service
	timeline  *timeline.Service
	dashboard *dashboard.Service
}

type dbPinger interface {
	Ping(ctx context.Context) error
}

// newRouter assembles the route table. Public routes carry the base chain,
// everything under /api (except auth) additionally requires a bearer token.
func newRouter(d routerDeps) http.Handler {
	authHandler := rest.NewAuthHandler(d.auth, d.logger)
	profileHandler := rest.NewProfileHandler(d.profile, d.logger)
	journalHandler := rest.NewJournalHandler(d.journal, d.logger)
	briefHandler := rest.NewBriefHandler(d.brief, d.logger)
	vaultHandler := rest.NewVaultHandler(d.vault, d.logger)
	financeHandler := rest.NewFinanceHandler(d.finance, d.logger)
	timelineHandler := rest.NewTimelineHandler(d.timeline, d.logger)
	dashboardHandler := rest.NewDashboardHandler(d.dashboard, d.logger)
	healthHandler := rest.NewHealthHandler(d.pool, BuildVersion())

	protect := middleware.Auth(d.auth)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)

	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)

	protected := http.NewServeMux()
	protected.HandleFunc("GET /api/profile", profileHandler.Get)
	protected.HandleFunc("PATCH /api/profile", profileHandler.Update)
	protected.HandleFunc("POST /api/profile/onboarding", profileHandler.CompleteOnboarding)

	protected.HandleFunc("GET /api/dashboard", dashboardHandler.Get)

	protected.HandleFunc("GET /api/journal", journalHandler.List)
	protected.HandleFunc("POST /api/journal", journalHandler.Create)
	protected.HandleFunc("POST /api/journal/summarise", journalHandler.Summarise)
	protected.HandleFunc("GET /api/journal/{id}", journalHandler.Get)
	protected.HandleFunc("PATCH /api/journal/{id}", journalHandler.Update)
	protected.HandleFunc("DELETE /api/journal/{id}", journalHandler.Delete)

	protected.HandleFunc("POST /api/brief/generate", briefHandler.Generate)

	protected.HandleFunc("GET /api/vault", vaultHandler.List)
	protected.HandleFunc("POST /api/vault", vaultHandler.Upload)
	protected.HandleFunc("GET /api/vault/{id}", vaultHandler.Get)
	protected.HandleFunc("GET /api/vault/{id}/url", vaultHandler.DownloadURL)
	protected.HandleFunc("PATCH /api/vault/{id}", vaultHandler.Update)
	protected.HandleFunc("DELETE /api/vault/{id}", vaultHandler.Delete)

	protected.HandleFunc("GET /api/finances", financeHandler.List)
	protected.HandleFunc("POST /api/finances", financeHandler.Create)
	protected.HandleFunc("GET /api/finances/summary", financeHandler.Summary)
	protected.HandleFunc("GET /api/finances/{id}", financeHandler.Get)
	protected.HandleFunc("PATCH /api/finances/{id}", financeHandler.Update)
	protected.HandleFunc("DELETE /api/finances/{id}", financeHandler.Delete)

	protected.HandleFunc("GET /api/timeline", timelineHandler.List)
	protected.HandleFunc("POST /api/timeline", timelineHandler.Create)
	protected.HandleFunc("GET /api/timeline/{id}", timelineHandler.Get)
	protected.HandleFunc("PATCH /api/timeline/{id}", timelineHandler.Update)
	protected.HandleFunc("DELETE /api/timeline/{id}", timelineHandler.Delete)

	mux.Handle("/api/", protect(protected))

	base := middleware.Chain(
		middleware.Recovery(d.logger),
		middleware.RequestID,
		middleware.Logger(d.logger),
		middleware.CORS(d.cfg.CORS),
		d.limiter.Limit(d.cfg.Server.RateLimitPerMin),
	)

	return base(mux)
}
