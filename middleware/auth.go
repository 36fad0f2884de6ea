package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/shopline-auth/authenticator"
	"github.com/blogem/shopline-auth/userctx"
)

// Session keys shared by the login flow
const (
	SessionStaffID            = "staff_id"
	SessionStaffName          = "staff_name"
	SessionMerchantID         = "merchant_id"
	SessionRedirectAfterLogin = "redirect_after_login"
)

// LoginPath is where anonymous users are sent
const LoginPath = "/auth/shopline"

// SessionLookup returns the session attached to r, or nil
type SessionLookup func(r *http.Request) authenticator.SessionValues

// ChiSession looks the session up through the go-chi session middleware
func ChiSession(r *http.Request) authenticator.SessionValues {
	sess := session.GetSession(r)
	if sess == nil {
		return nil
	}
	return sess
}

// SessionRegenerator swaps the session ID while keeping its values and returns the new session
type SessionRegenerator func(w http.ResponseWriter, r *http.Request) (authenticator.SessionValues, error)

// ChiRegenerateSession regenerates the go-chi session ID
func ChiRegenerateSession(w http.ResponseWriter, r *http.Request) (authenticator.SessionValues, error) {
	sess, err := session.RegenerateSession(w, r)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// SessionString returns the string stored under key, or ""
func SessionString(sess authenticator.SessionValues, key string) string {
	if sess == nil {
		return ""
	}
	s, _ := sess.Get(key).(string)
	return s
}

// RequireAuth ensures the staff member is signed in.
// If not, redirects to LoginPath and stores the intended destination.
func RequireAuth(lookup SessionLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := lookup(r)
			staffID := SessionString(sess, SessionStaffID)

			if staffID == "" {
				if sess != nil {
					// Store the intended destination for redirect after login
					_ = sess.Set(SessionRedirectAfterLogin, r.URL.RequestURI())
				}
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			// Add staff and merchant to request context for use in handlers
			ctx := userctx.SetStaffID(r.Context(), staffID)
			ctx = userctx.SetMerchantID(ctx, SessionString(sess, SessionMerchantID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
