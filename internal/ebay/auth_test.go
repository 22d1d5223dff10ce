package ebay_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clareta27/vinyl-backend/internal/ebay"
)

// tokenJSON returns a token endpoint response with the given lifetime.
func tokenJSON(token string, expiresIn int) []byte {
	return fmt.Appendf(nil,
		`{"access_token":%q,"expires_in":%d,"token_type":"User Access Token"}`,
		token, expiresIn,
	)
}

func newProvider(url string, opts ...ebay.AuthOption) *ebay.RefreshTokenProvider {
	opts = append([]ebay.AuthOption{ebay.WithTokenURL(url)}, opts...)
	return ebay.NewRefreshTokenProvider("client-id", "client-secret", "refresh-abc", opts...)
}

func TestRefreshTokenProvider_Token(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantErr    bool
		wantToken  string
		errContain string
	}{
		{
			name: "successful renewal",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write(tokenJSON("access-123", 7200))
			},
			wantToken: "access-123",
		},
		{
			name: "refresh token rejected",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(
					`{"error":"invalid_grant","error_description":"the provided authorization refresh token is invalid"}`,
				))
			},
			wantErr:    true,
			errContain: "invalid_grant",
		},
		{
			name: "server error without JSON body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("boom"))
			},
			wantErr:    true,
			errContain: "status 500",
		},
		{
			name: "invalid JSON",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			wantErr:    true,
			errContain: "parsing token response",
		},
		{
			name: "response without access token",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"expires_in":7200}`))
			},
			wantErr:    true,
			errContain: "missing access_token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			token, err := newProvider(srv.URL).Token(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ebay.ErrAuthFailure)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestRefreshTokenProvider_TokenCaching(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			callCount.Add(1)
			_, _ = w.Write(tokenJSON("cached-token", 7200))
		}),
	)
	defer srv.Close()

	provider := newProvider(srv.URL)

	token1, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cached-token", token1)

	token2, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cached-token", token2)
	assert.Equal(t, int32(1), callCount.Load())
}

func TestRefreshTokenProvider_RefreshBuffer(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			n := callCount.Add(1)
			_, _ = fmt.Fprintf(w, `{"access_token":"token-%d","expires_in":7200}`, n)
		}),
	)
	defer srv.Close()

	var mu sync.Mutex
	currentTime := now
	setTime := func(t time.Time) {
		mu.Lock()
		defer mu.Unlock()
		currentTime = t
	}

	provider := newProvider(srv.URL, ebay.WithNowFunc(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return currentTime
	}))

	token, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	// Still outside the 60s renewal window.
	setTime(now.Add(7139 * time.Second))
	token, err = provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	// Inside the window: renewed even though the token has not expired.
	setTime(now.Add(7141 * time.Second))
	token, err = provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)
	assert.Equal(t, int32(2), callCount.Load())
}

func TestRefreshTokenProvider_FailureKeepsNoToken(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	fail.Store(true)

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if fail.Load() {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write(tokenJSON("late-token", 7200))
		}),
	)
	defer srv.Close()

	provider := newProvider(srv.URL)

	_, err := provider.Token(context.Background())
	require.ErrorIs(t, err, ebay.ErrAuthFailure)

	fail.Store(false)
	token, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "late-token", token)
}

func TestRefreshTokenProvider_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			callCount.Add(1)
			time.Sleep(10 * time.Millisecond)
			_, _ = w.Write(tokenJSON("concurrent-token", 7200))
		}),
	)
	defer srv.Close()

	provider := newProvider(srv.URL)

	const goroutines = 10

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			token, err := provider.Token(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "concurrent-token", token)
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), callCount.Load())
}

func TestRefreshTokenProvider_RequestFormat(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t,
				"application/x-www-form-urlencoded",
				r.Header.Get("Content-Type"),
			)

			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "client-id", user)
			assert.Equal(t, "client-secret", pass)

			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.FormValue("grant_type"))
			assert.Equal(t, "refresh-abc", r.FormValue("refresh_token"))
			assert.Equal(t, "scope-a scope-b", r.FormValue("scope"))

			_, _ = w.Write(tokenJSON("format-test-token", 7200))
		}),
	)
	defer srv.Close()

	provider := newProvider(srv.URL, ebay.WithScopes("scope-a scope-b"))

	token, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "format-test-token", token)
}
