package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"golang.org/x/time/rate"

	courseservice "github.com/greenside-labs/greenside/app/modules/course/application"
	coursehandlers "github.com/greenside-labs/greenside/app/modules/course/infrastructure/handlers"
	coursedb "github.com/greenside-labs/greenside/app/modules/course/infrastructure/repositories"
	courserouter "github.com/greenside-labs/greenside/app/modules/course/infrastructure/router"
	insightsservice "github.com/greenside-labs/greenside/app/modules/insights/application"
	geminiclient "github.com/greenside-labs/greenside/app/modules/insights/infrastructure/gemini"
	insightshandlers "github.com/greenside-labs/greenside/app/modules/insights/infrastructure/handlers"
	insightsrouter "github.com/greenside-labs/greenside/app/modules/insights/infrastructure/router"
	roundservice "github.com/greenside-labs/greenside/app/modules/round/application"
	roundhandlers "github.com/greenside-labs/greenside/app/modules/round/infrastructure/handlers"
	rounddb "github.com/greenside-labs/greenside/app/modules/round/infrastructure/repositories"
	roundrouter "github.com/greenside-labs/greenside/app/modules/round/infrastructure/router"
	userservice "github.com/greenside-labs/greenside/app/modules/user/application"
	userauth "github.com/greenside-labs/greenside/app/modules/user/infrastructure/auth"
	userhandlers "github.com/greenside-labs/greenside/app/modules/user/infrastructure/handlers"
	userdb "github.com/greenside-labs/greenside/app/modules/user/infrastructure/repositories"
	userrouter "github.com/greenside-labs/greenside/app/modules/user/infrastructure/router"
	"github.com/greenside-labs/greenside/app/shared/scorecardmetrics"
	"github.com/greenside-labs/greenside/config"
)

// App wires configuration, the database, and every module behind one HTTP
// server.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Router chi.Router

	db     *bun.DB
	server *http.Server
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := newLogger(cfg)

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(pgdb, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := scorecardmetrics.New(registry)

	courseSvc := courseservice.NewCourseService(coursedb.NewCourseDB(db), logger)
	userSvc := userservice.NewUserService(userdb.NewUserDB(db), logger)
	roundSvc := roundservice.NewRoundService(rounddb.NewRoundDB(db), courseSvc, logger, metrics)

	gemini := geminiclient.NewHTTPClient(cfg.Gemini.APIKey, cfg.Gemini.ScanTimeout)
	insightsSvc := insightsservice.NewInsightsService(gemini, roundSvc, logger, metrics, cfg.Gemini.ScanModel, cfg.Gemini.ChatModel)

	jwtProvider := userauth.NewProvider(cfg.JWT.Secret)
	authMiddleware := userauth.Middleware(jwtProvider, userSvc)
	rateLimiter := userauth.NewIPRateLimiter(rate.Limit(10), 20)

	courseH := coursehandlers.NewCourseHandlers(courseSvc, logger)
	userH := userhandlers.NewUserHandlers(userSvc, logger)
	roundH := roundhandlers.NewRoundHandlers(roundSvc, logger)
	insightsH := insightshandlers.NewInsightsHandlers(insightsSvc, logger)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(userauth.RateLimitMiddleware(rateLimiter))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	router.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Mount("/courses", courserouter.Routes(courseH))
		r.Mount("/teeboxes", courserouter.TeeBoxRoutes(courseH))
		r.Mount("/me", userrouter.Routes(userH))
		r.Mount("/rounds", roundrouter.Routes(roundH))
		r.Mount("/scan", insightsrouter.ScanRoutes(insightsH))
		r.Mount("/insights", insightsrouter.Routes(insightsH))
	})

	return &App{
		Config: cfg,
		Logger: logger,
		Router: router,
		db:     db,
		server: &http.Server{
			Addr:         cfg.HTTP.Addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
	}, nil
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("HTTP server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.db.Close()
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.Observability.Environment == "development" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
