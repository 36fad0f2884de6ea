package authenticator_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/shopline-auth/authenticator"
)

func TestHTTPRequester_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token":"` + r.Header.Get("Authorization") + `","n":1}`))
		case "/html":
			_, _ = w.Write([]byte("<html></html>"))
		case "/array":
			_, _ = w.Write([]byte(`[1,2]`))
		default:
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer srv.Close()

	requester := authenticator.NewHTTPRequester(srv.Client())
	get := func(path string) (*authenticator.Response, error) {
		return requester.Do(context.Background(), authenticator.Request{
			Method:  http.MethodGet,
			URL:     srv.URL + path,
			Headers: map[string]string{"Authorization": "Bearer t"},
		})
	}

	t.Run("decodes JSON objects", func(t *testing.T) {
		resp, err := get("/ok")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, map[string]interface{}{"token": "Bearer t", "n": float64(1)}, resp.Data)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		_, err := get("/forbidden")
		assert.ErrorIs(t, err, authenticator.ErrRequestFailed)
		assert.Contains(t, err.Error(), "status=403")
	})

	t.Run("non-JSON body", func(t *testing.T) {
		_, err := get("/html")
		assert.ErrorIs(t, err, authenticator.ErrDecodeFailed)
	})

	t.Run("JSON that is not an object", func(t *testing.T) {
		_, err := get("/array")
		assert.ErrorIs(t, err, authenticator.ErrDecodeFailed)
	})

	t.Run("transport failure", func(t *testing.T) {
		_, err := requester.Do(context.Background(), authenticator.Request{Method: http.MethodGet, URL: "http://127.0.0.1:0/unreachable"})
		assert.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := requester.Do(ctx, authenticator.Request{Method: http.MethodGet, URL: srv.URL + "/ok"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
