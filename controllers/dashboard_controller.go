package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blogem/shopline-auth/authenticator"
	"github.com/blogem/shopline-auth/middleware"
	"github.com/blogem/shopline-auth/models"
	"github.com/blogem/shopline-auth/repositories"
	"github.com/blogem/shopline-auth/services"
	"github.com/blogem/shopline-auth/userctx"
)

// DashboardController handles the landing page and the signed-in views
type DashboardController struct {
	services *services.Services
	registry *authenticator.Registry
	session  middleware.SessionLookup
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services, registry *authenticator.Registry, lookup middleware.SessionLookup) *DashboardController {
	return &DashboardController{
		services: services,
		registry: registry,
		session:  lookup,
	}
}

// Index handles GET /
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	count, err := c.services.Auth.StaffCount(r.Context())
	if err != nil {
		renderError(w, http.StatusInternalServerError, "Failed to load dashboard data: "+err.Error())
		return
	}

	sess := c.session(r)
	data := struct {
		Service    string   `json:"service"`
		Strategies []string `json:"strategies"`
		StaffCount int      `json:"staff_count"`
		SignedIn   bool     `json:"signed_in"`
		StaffName  string   `json:"staff_name,omitempty"`
	}{
		Service:    "shopline-auth",
		Strategies: c.registry.Names(),
		StaffCount: count,
		SignedIn:   middleware.SessionString(sess, middleware.SessionStaffID) != "",
		StaffName:  middleware.SessionString(sess, middleware.SessionStaffName),
	}

	renderJSON(w, http.StatusOK, data)
}

// Me handles GET /me
func (c *DashboardController) Me(w http.ResponseWriter, r *http.Request) {
	staff, err := c.services.Auth.GetStaff(r.Context(), userctx.GetStaffID(r.Context()))
	if errors.Is(err, repositories.ErrStaffNotFound) {
		renderError(w, http.StatusNotFound, "staff not found")
		return
	}
	if err != nil {
		renderError(w, http.StatusInternalServerError, "Failed to load staff: "+err.Error())
		return
	}

	// The stored merchant is the one from the latest login, which may be a
	// different session than this one.
	data := struct {
		*models.Staff
		CurrentMerchantID string `json:"current_merchant_id,omitempty"`
	}{
		Staff:             staff,
		CurrentMerchantID: userctx.GetMerchantID(r.Context()),
	}

	renderJSON(w, http.StatusOK, data)
}

// Audit handles GET /audit
func (c *DashboardController) Audit(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := c.services.Audit.Recent(r.Context(), limit)
	if err != nil {
		renderError(w, http.StatusInternalServerError, "Failed to load audit log: "+err.Error())
		return
	}

	renderJSON(w, http.StatusOK, entries)
}
