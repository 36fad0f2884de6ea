package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/blogem/shopline-auth/authenticator"
	"github.com/blogem/shopline-auth/models"
	"github.com/blogem/shopline-auth/repositories/mocks"
	"github.com/blogem/shopline-auth/userctx"
)

type mapSession map[interface{}]interface{}

func (m mapSession) Set(key, value interface{}) error { m[key] = value; return nil }
func (m mapSession) Get(key interface{}) interface{} { return m[key] }
func (m mapSession) Delete(key interface{}) error { delete(m, key); return nil }

func lookupOf(sess mapSession) SessionLookup {
	return func(*http.Request) authenticator.SessionValues {
		if sess == nil {
			return nil
		}
		return sess
	}
}

func TestRequireAuth_Anonymous(t *testing.T) {
	sess := mapSession{}
	handler := RequireAuth(lookupOf(sess))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for anonymous requests")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me?tab=profile", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
	assert.Equal(t, "/me?tab=profile", sess[SessionRedirectAfterLogin])
}

func TestRequireAuth_NoSession(t *testing.T) {
	handler := RequireAuth(lookupOf(nil))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without a session")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestRequireAuth_SignedIn(t *testing.T) {
	sess := mapSession{SessionStaffID: "5f3c1a", SessionMerchantID: "m-1"}

	var gotStaff, gotMerchant string
	handler := RequireAuth(lookupOf(sess))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStaff = userctx.GetStaffID(r.Context())
		gotMerchant = userctx.GetMerchantID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "5f3c1a", gotStaff)
	assert.Equal(t, "m-1", gotMerchant)
}

func TestAuditLogger_RecordsAuthRequests(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	recorded := make(chan *models.AuditLogEntry, 1)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.AuditLogEntry")).
		Run(func(_ context.Context, entry *models.AuditLogEntry) { recorded <- entry }).
		Return(nil)

	sess := mapSession{SessionStaffID: "5f3c1a"}
	handler := AuditLogger(repo, lookupOf(sess), zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/auth/shopline/callback?code=secret&state=xyz&merchant_id=m-1", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)

	select {
	case entry := <-recorded:
		assert.NotEmpty(t, entry.EventID)
		assert.Equal(t, "5f3c1a", entry.StaffID)
		assert.Equal(t, http.MethodGet, entry.Method)
		assert.Equal(t, "/auth/shopline/callback", entry.Path)
		assert.Equal(t, "merchant_id=m-1", entry.Query)
		assert.Equal(t, "test-agent", entry.UserAgent)
		assert.Equal(t, "203.0.113.7", entry.IPAddress)
	case <-time.After(2 * time.Second):
		t.Fatal("audit entry was not recorded")
	}
}

func TestAuditLogger_IgnoresOtherPaths(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)

	called := false
	handler := AuditLogger(repo, lookupOf(nil), zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.True(t, called)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuditLogger_LogsFailures(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	repo := mocks.NewMockAuditRepository(t)
	done := make(chan struct{})
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.AuditLogEntry")).
		RunAndReturn(func(context.Context, *models.AuditLogEntry) error {
			defer close(done)
			return errors.New("disk full")
		})

	handler := AuditLogger(repo, lookupOf(nil), zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/auth/shopline", nil))

	<-done
	require.Eventually(t, func() bool { return logs.Len() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "failed to create audit log", logs.All()[0].Message)
}

func TestGetIPAddress(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", getIPAddress(req))

	req.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "198.51.100.2", getIPAddress(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", getIPAddress(req))
}

func TestSanitizeQuery(t *testing.T) {
	values := url.Values{
		"code":        {"secret"},
		"state":       {"xyz"},
		"merchant_id": {"m-1"},
		"scope":       {"shop"},
	}

	assert.Equal(t, "merchant_id=m-1&scope=shop", sanitizeQuery(values))
	assert.Equal(t, "secret", values.Get("code"), "input must not be modified")
	assert.Empty(t, sanitizeQuery(url.Values{}))
}
