package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/blogem/shopline-auth/authenticator"
	"github.com/blogem/shopline-auth/metrics"
	"github.com/blogem/shopline-auth/middleware"
	"github.com/blogem/shopline-auth/models"
)

// SessionResponder finishes a strategy's callback by signing the staff member
// into the session.
type SessionResponder struct {
	strategy   string
	session    middleware.SessionLookup
	regenerate middleware.SessionRegenerator
	logger     *zap.Logger
}

var _ authenticator.Responder = (*SessionResponder)(nil)

// NewSessionResponder creates a responder for the named strategy. The session ID
// is regenerated before the staff identity is stored.
func NewSessionResponder(strategy string, lookup middleware.SessionLookup, regenerate middleware.SessionRegenerator, logger *zap.Logger) *SessionResponder {
	return &SessionResponder{
		strategy:   strategy,
		session:    lookup,
		regenerate: regenerate,
		logger:     logger.With(zap.String("strategy", strategy)),
	}
}

// Success stores the staff identity and redirects to the remembered destination
func (s *SessionResponder) Success(w http.ResponseWriter, r *http.Request, user any) {
	staff, ok := user.(*models.Staff)
	if !ok {
		s.Error(w, r, errors.New("unexpected user type"))
		return
	}

	sess := s.session(r)
	if sess == nil {
		s.Error(w, r, authenticator.ErrNoSession)
		return
	}
	target := safeRedirect(middleware.SessionString(sess, middleware.SessionRedirectAfterLogin))

	sess, err := s.regenerate(w, r)
	if err != nil {
		s.Error(w, r, fmt.Errorf("failed to regenerate session: %w", err))
		return
	}
	_ = sess.Delete(middleware.SessionRedirectAfterLogin)

	for key, value := range map[string]string{
		middleware.SessionStaffID:    staff.ID,
		middleware.SessionStaffName:  staff.DisplayName(),
		middleware.SessionMerchantID: staff.MerchantID,
	} {
		if err := sess.Set(key, value); err != nil {
			s.Error(w, r, err)
			return
		}
	}

	metrics.AuthAttempts.WithLabelValues(s.strategy, metrics.OutcomeSuccess).Inc()
	s.logger.Info("staff signed in",
		zap.String("staff_id", staff.ID),
		zap.String("merchant_id", staff.MerchantID),
		zap.Int("login_count", staff.LoginCount))

	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Fail rejects the login
func (s *SessionResponder) Fail(w http.ResponseWriter, r *http.Request, err error) {
	metrics.AuthAttempts.WithLabelValues(s.strategy, metrics.OutcomeFailure).Inc()
	s.logger.Warn("login rejected", zap.Error(err))

	message := "login failed"
	var authErr *authenticator.AuthorizationError
	if errors.As(err, &authErr) {
		message = authErr.Error()
	}
	renderError(w, http.StatusUnauthorized, message)
}

// Error reports a broken login flow
func (s *SessionResponder) Error(w http.ResponseWriter, r *http.Request, err error) {
	metrics.AuthAttempts.WithLabelValues(s.strategy, metrics.OutcomeError).Inc()
	s.logger.Error("login error", zap.Error(err))

	renderError(w, http.StatusInternalServerError, "login could not be completed")
}

// safeRedirect only allows local paths
func safeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
