package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, verifyPath, r.URL.Path)
		assert.Equal(t, "k-123", r.Header.Get("X-Api-Key"))

		var in verifyRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		assert.Equal(t, "Bearer "+in.Token, r.Header.Get("Authorization"))

		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestVerifier_OK(t *testing.T) {
	ts := newProvider(t, http.StatusOK, map[string]string{"user_id": " u-9 ", "email": "Ana@Example.com"})

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "k-123"})
	require.NoError(t, err)

	claims, err := NewVerifier(c).Verify(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u-9", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "remote", claims.Provider)
}

func TestVerifier_Unauthorized(t *testing.T) {
	ts := newProvider(t, http.StatusUnauthorized, nil)

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "k-123"})
	require.NoError(t, err)

	_, err = NewVerifier(c).Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifier_UpstreamErrors(t *testing.T) {
	cases := map[string]*httptest.Server{
		"5xx":         newProvider(t, http.StatusBadGateway, nil),
		"sin user_id":  newProvider(t, http.StatusOK, map[string]string{"email": "x@y.z"}),
	}
	for name, ts := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "k-123"})
			require.NoError(t, err)

			_, err = c.VerifyToken(context.Background(), "tok")
			assert.ErrorIs(t, err, ErrUpstream)
		})
	}
}

func TestNewClient_Optional(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.Nil(t, NewVerifier(c))

	_, err = c.VerifyToken(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestVerifyToken_EmptyToken(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)

	_, err = c.VerifyToken(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
