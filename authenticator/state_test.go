package authenticator_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/shopline-auth/authenticator"
)

type mapSession map[interface{}]interface{}

func (m mapSession) Set(key, value interface{}) error {
	m[key] = value
	return nil
}

func (m mapSession) Get(key interface{}) interface{} {
	return m[key]
}

func (m mapSession) Delete(key interface{}) error {
	delete(m, key)
	return nil
}

func TestSessionStateStore(t *testing.T) {
	sess := mapSession{}
	store := authenticator.NewSessionStateStoreWith("shopline", func(*http.Request) authenticator.SessionValues {
		return sess
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	t.Run("issued state verifies once", func(t *testing.T) {
		state, err := store.Issue(w, req)
		require.NoError(t, err)
		assert.NotEmpty(t, state)
		assert.Equal(t, state, sess["oauth2:shopline:state"])

		require.NoError(t, store.Verify(w, req, state))
		assert.ErrorIs(t, store.Verify(w, req, state), authenticator.ErrInvalidState)
	})

	t.Run("states differ", func(t *testing.T) {
		a, err := store.Issue(w, req)
		require.NoError(t, err)
		b, err := store.Issue(w, req)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("mismatch consumes the stored state", func(t *testing.T) {
		state, err := store.Issue(w, req)
		require.NoError(t, err)

		assert.ErrorIs(t, store.Verify(w, req, "forged"), authenticator.ErrInvalidState)
		assert.ErrorIs(t, store.Verify(w, req, state), authenticator.ErrInvalidState)
	})

	t.Run("empty state", func(t *testing.T) {
		_, err := store.Issue(w, req)
		require.NoError(t, err)
		assert.ErrorIs(t, store.Verify(w, req, ""), authenticator.ErrInvalidState)
	})
}

func TestSessionStateStore_NoSession(t *testing.T) {
	store := authenticator.NewSessionStateStoreWith("shopline", func(*http.Request) authenticator.SessionValues {
		return nil
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := store.Issue(httptest.NewRecorder(), req)
	assert.ErrorIs(t, err, authenticator.ErrNoSession)
	assert.ErrorIs(t, store.Verify(httptest.NewRecorder(), req, "x"), authenticator.ErrNoSession)
}
