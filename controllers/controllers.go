package controllers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/shopline-auth/authenticator"
	"github.com/blogem/shopline-auth/middleware"
	"github.com/blogem/shopline-auth/services"
)

// renderJSON writes data as JSON with the given status code
func renderJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// renderError writes a JSON error body
func renderError(w http.ResponseWriter, statusCode int, message string) {
	_ = renderJSON(w, statusCode, map[string]string{"error": message})
}

// Controllers holds all controller instances
type Controllers struct {
	Auth      *AuthController
	Dashboard *DashboardController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, registry *authenticator.Registry, lookup middleware.SessionLookup, logger *zap.Logger) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(registry, lookup, logger),
		Dashboard: NewDashboardController(services, registry, lookup),
	}
}
