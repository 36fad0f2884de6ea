package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/blogem/shopline-auth/authenticator"
	"github.com/blogem/shopline-auth/middleware"
)

// AuthController starts and completes logins through the registered strategies
type AuthController struct {
	registry *authenticator.Registry
	session  middleware.SessionLookup
	logger   *zap.Logger
}

func NewAuthController(registry *authenticator.Registry, lookup middleware.SessionLookup, logger *zap.Logger) *AuthController {
	return &AuthController{
		registry: registry,
		session:  lookup,
		logger:   logger,
	}
}

// Authenticate handles GET /auth/{strategy} and its callback
func (ac *AuthController) Authenticate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "strategy")
	strategy, ok := ac.registry.Strategy(name)
	if !ok {
		renderError(w, http.StatusNotFound, "unknown login strategy: "+name)
		return
	}

	ac.logger.Debug("authenticate",
		zap.String("strategy", name),
		zap.Bool("callback", r.URL.Query().Has("code")))

	strategy.Authenticate(w, r, nil)
}

// Logout clears the staff identity from the session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if sess := ac.session(r); sess != nil {
		staffID := middleware.SessionString(sess, middleware.SessionStaffID)
		for _, key := range []string{
			middleware.SessionStaffID,
			middleware.SessionStaffName,
			middleware.SessionMerchantID,
			middleware.SessionRedirectAfterLogin,
		} {
			if err := sess.Delete(key); err != nil {
				ac.logger.Warn("failed to clear session key", zap.String("key", key), zap.Error(err))
			}
		}
		if staffID != "" {
			ac.logger.Info("staff signed out", zap.String("staff_id", staffID))
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
