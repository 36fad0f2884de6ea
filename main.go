package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/blogem/shopline-auth/authenticator"
	"github.com/blogem/shopline-auth/config"
	"github.com/blogem/shopline-auth/controllers"
	"github.com/blogem/shopline-auth/database"
	"github.com/blogem/shopline-auth/logger"
	"github.com/blogem/shopline-auth/metrics"
	authmiddleware "github.com/blogem/shopline-auth/middleware"
	"github.com/blogem/shopline-auth/repositories"
	"github.com/blogem/shopline-auth/services"
)

func main() {
	// Load environment variables from .env file
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{Env: cfg.LogEnv, Level: cfg.LogLevel, ServiceName: "shopline-auth"})
	defer log.Sync()

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}

	// Initialize database
	db, err := database.Open(cfg.DBPath + "?_busy_timeout=5000")
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err), zap.String("path", cfg.DBPath))
	}
	defer db.Close()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize services
	srvs := services.NewServices(repos)

	// Initialize login strategies
	registry, err := setupStrategies(context.Background(), cfg, srvs, log)
	if err != nil {
		log.Fatal("failed to initialize login strategies", zap.Error(err))
	}

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, registry, authmiddleware.ChiSession, log)

	// Set up router
	r, err := setupRouter(cfg, ctrl, repos, db, log)
	if err != nil {
		log.Fatal("failed to setup router", zap.Error(err))
	}

	log.Info("shopline-auth starting",
		zap.String("port", cfg.Port),
		zap.String("database", cfg.DBPath),
		zap.Strings("strategies", registry.Names()))

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// setupStrategies builds the Shopline strategy and, when configured, the OpenID one
func setupStrategies(ctx context.Context, cfg *config.Config, srvs *services.Services, log *zap.Logger) (*authenticator.Registry, error) {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	shopline := authenticator.NewShoplineStrategy(
		cfg.Shopline.Strategy(),
		services.Verifier(srvs.Auth.VerifyStaff),
		authenticator.WithHTTPClient(httpClient),
		authenticator.WithLogger(log),
		authenticator.WithResponder(controllers.NewSessionResponder(authenticator.ShoplineStrategyName, authmiddleware.ChiSession, authmiddleware.ChiRegenerateSession, log)),
	)
	registry := authenticator.NewRegistry(shopline)

	if cfg.OpenID.Enabled() {
		openid, err := authenticator.NewOpenIDStrategy(ctx,
			cfg.OpenID.Strategy(),
			services.Verifier(srvs.Auth.VerifyClaims),
			authenticator.WithHTTPClient(httpClient),
			authenticator.WithLogger(log),
			authenticator.WithResponder(controllers.NewSessionResponder(authenticator.OpenIDStrategyName, authmiddleware.ChiSession, authmiddleware.ChiRegenerateSession, log)),
		)
		if err != nil {
			return nil, fmt.Errorf("openid: %w", err)
		}
		registry.Register(openid)
	}

	return registry, nil
}

// setupRouter configures all routes
func setupRouter(cfg *config.Config, ctrl *controllers.Controllers, repos *repositories.Repositories, db *sql.DB, log *zap.Logger) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "shopline_auth_session",
		Secure:         cfg.UseHTTPS,
		Gclifetime:     3600, // Session lifetime in seconds
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)
	r.Use(authmiddleware.AuditLogger(repos.Audit, authmiddleware.ChiSession, log))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/", ctrl.Dashboard.Index)
	r.Get("/auth/{strategy}", ctrl.Auth.Authenticate)
	r.Get("/auth/{strategy}/callback", ctrl.Auth.Authenticate)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, `{"status": "unhealthy", "service": "shopline-auth"}`)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "shopline-auth"}`)
	})
	r.Handle("/metrics", promhttp.Handler())

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth(authmiddleware.ChiSession))

		r.Get("/me", ctrl.Dashboard.Me)
		r.Get("/audit", ctrl.Dashboard.Audit)
	})

	return r, nil
}
