package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNylasSend(t *testing.T) {
	t.Parallel()

	var got nylasSendRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/send", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotAuth = r.Header.Get("Authorization")

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNylas(srv.URL, "test-token")
	err := n.Send(context.Background(), "user@example.com", "Welcome", "Hello there")
	require.NoError(t, err)

	require.Equal(t, "Bearer test-token", gotAuth)
	require.Len(t, got.To, 1)
	require.Equal(t, "user@example.com", got.To[0].Email)
	require.Equal(t, "Welcome", got.Subject)
	require.Equal(t, "Hello there", got.Body)
}

func TestNylasSendProviderFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	n := NewNylas(srv.URL, "test-token")
	err := n.Send(context.Background(), "user@example.com", "s", "b")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}
