package authz

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newVerifyServer(t *testing.T, status int, capture *verifyRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/verify_permission", r.URL.Path)
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		w.WriteHeader(status)
	}))
}

func TestCheckForwardsSessionAndPermission(t *testing.T) {
	t.Parallel()

	var got verifyRequest
	srv := newVerifyServer(t, http.StatusOK, &got)
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	decision, err := c.Check(context.Background(), "alice", "tok-123", "mailservice.create_credentials")
	require.NoError(t, err)
	require.Equal(t, Allow, decision)

	require.Equal(t, "alice", got.Username)
	require.Equal(t, "tok-123", got.Token)
	require.Equal(t, "mailservice.create_credentials", got.Permission)
}

func TestCheckMapsResponses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		status   int
		decision Decision
		wantErr  bool
	}{
		{"allow on 200", http.StatusOK, Allow, false},
		{"invalid token on 401", http.StatusUnauthorized, DenyInvalidToken, false},
		{"no permission on 403", http.StatusForbidden, DenyNoPermission, false},
		{"error on 500", http.StatusInternalServerError, DenyInvalidToken, true},
		{"error on 502", http.StatusBadGateway, DenyInvalidToken, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newVerifyServer(t, tc.status, nil)
			defer srv.Close()

			c := NewClient(srv.URL, 0)
			decision, err := c.Check(context.Background(), "alice", "tok", "node")
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.decision, decision)
		})
	}
}

func TestCheckTimesOut(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 20*time.Millisecond)
	_, err := c.Check(context.Background(), "alice", "tok", "node")
	require.Error(t, err)
}

func TestCheckUnreachableAuthorizer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the address refuses connections

	c := NewClient(srv.URL, 0)
	_, err := c.Check(context.Background(), "alice", "tok", "node")
	require.Error(t, err)
}
