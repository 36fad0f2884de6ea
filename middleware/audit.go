package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blogem/shopline-auth/models"
	"github.com/blogem/shopline-auth/repositories"
)

const auditTimeout = 5 * time.Second

// Query parameters that must never reach the audit log
var sensitiveParams = []string{"code", "state"}

// AuditLogger middleware records every request to the /auth/ endpoints
func AuditLogger(auditRepo repositories.AuditRepository, lookup SessionLookup, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/auth/") {
				// Create audit log entry
				entry := &models.AuditLogEntry{
					EventID:   uuid.NewString(),
					Timestamp: time.Now().UTC(),
					StaffID:   SessionString(lookup(r), SessionStaffID),
					Method:    r.Method,
					Path:      r.URL.Path,
					Query:     sanitizeQuery(r.URL.Query()),
					UserAgent: r.UserAgent(),
					IPAddress: getIPAddress(r),
				}

				// Log asynchronously to avoid blocking request
				ctx := context.WithoutCancel(r.Context())
				go func() {
					ctx, cancel := context.WithTimeout(ctx, auditTimeout)
					defer cancel()
					if err := auditRepo.Create(ctx, entry); err != nil {
						logger.Error("failed to create audit log",
							zap.String("event_id", entry.EventID),
							zap.String("path", entry.Path),
							zap.Error(err))
					}
				}()
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	// Remove port if present
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// sanitizeQuery encodes the query without the authorization code and state
func sanitizeQuery(values url.Values) string {
	clean := make(url.Values, len(values))
	for key, v := range values {
		clean[key] = v
	}
	for _, key := range sensitiveParams {
		clean.Del(key)
	}
	return clean.Encode()
}
