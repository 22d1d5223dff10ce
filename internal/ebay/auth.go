package ebay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/clareta27/vinyl-backend/internal/metrics"
)

const (
	defaultTokenURL = "https://api.ebay.com/identity/v1/oauth2/token" //nolint:gosec // not a credential
	defaultScopes   = "https://api.ebay.com/oauth/api_scope"
	refreshBuffer   = 60 * time.Second
)

// RefreshTokenProvider implements TokenProvider by exchanging a long-lived
// refresh token for short-lived access tokens. The current token is shared
// process-wide and renewed once it is within 60 seconds of expiry.
// Concurrent callers that find the token expired are serialized on the
// mutex so only one renewal request is in flight.
type RefreshTokenProvider struct {
	clientID     string
	clientSecret string
	refreshToken string
	tokenURL     string
	scopes       string
	client       *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
	nowFunc   func() time.Time // for testing
}

// AuthOption configures the RefreshTokenProvider.
type AuthOption func(*RefreshTokenProvider)

// WithTokenURL overrides the default eBay token endpoint.
func WithTokenURL(u string) AuthOption {
	return func(p *RefreshTokenProvider) {
		p.tokenURL = u
	}
}

// WithScopes overrides the space-separated OAuth scopes requested.
func WithScopes(s string) AuthOption {
	return func(p *RefreshTokenProvider) {
		p.scopes = s
	}
}

// WithAuthHTTPClient overrides the default HTTP client.
func WithAuthHTTPClient(c *http.Client) AuthOption {
	return func(p *RefreshTokenProvider) {
		p.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) AuthOption {
	return func(p *RefreshTokenProvider) {
		p.nowFunc = f
	}
}

// NewRefreshTokenProvider creates a token provider for the given
// application credentials and refresh token.
func NewRefreshTokenProvider(
	clientID, clientSecret, refreshToken string,
	opts ...AuthOption,
) *RefreshTokenProvider {
	p := &RefreshTokenProvider{
		clientID:     clientID,
		clientSecret: clientSecret,
		refreshToken: refreshToken,
		tokenURL:     defaultTokenURL,
		scopes:       defaultScopes,
		client:       &http.Client{Timeout: 10 * time.Second},
		nowFunc:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Token returns a valid access token, renewing it first if it is missing
// or close to expiry. Renewal failures wrap ErrAuthFailure.
func (p *RefreshTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.nowFunc().Before(p.expiresAt) {
		return p.token, nil
	}

	token, err := p.refreshLocked(ctx)
	if err != nil {
		metrics.TokenRefreshFailuresTotal.Inc()
		return "", err
	}
	metrics.TokenRefreshesTotal.Inc()
	return token, nil
}

func (p *RefreshTokenProvider) refreshLocked(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {p.refreshToken},
		"scope":         {p.scopes},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	creds := base64.StdEncoding.EncodeToString(
		[]byte(p.clientID + ":" + p.clientSecret),
	)
	req.Header.Set("Authorization", "Basic "+creds)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: executing token request: %w", ErrAuthFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading token response: %w", ErrAuthFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		if errResp.Error == "" {
			return "", fmt.Errorf(
				"%w: token request failed (status %d): %s",
				ErrAuthFailure, resp.StatusCode, string(body),
			)
		}
		return "", fmt.Errorf(
			"%w: token request failed (status %d): %s - %s",
			ErrAuthFailure,
			resp.StatusCode,
			errResp.Error,
			errResp.ErrorDescription,
		)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("%w: parsing token response: %w", ErrAuthFailure, err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("%w: token response missing access_token", ErrAuthFailure)
	}

	p.token = tokenResp.AccessToken
	p.expiresAt = p.nowFunc().
		Add(time.Duration(tokenResp.ExpiresIn) * time.Second).
		Add(-refreshBuffer)

	return p.token, nil
}
