package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/clareta27/vinyl-backend/internal/config"
	"github.com/clareta27/vinyl-backend/internal/ebay/ebaytest"
	"github.com/clareta27/vinyl-backend/pkg/logger"
)

// testConfig writes a config pointing at the fake upstream and loads it so
// the server is built from the same defaults as production.
func testConfig(t *testing.T, upstream string) *config.Config {
	t.Helper()

	yaml := `
ebay:
  client_id: test-client
  client_secret: test-secret
  refresh_token: test-refresh
  token_url: ` + upstream + ebaytest.TokenPath + `
  browse_url: ` + upstream + ebaytest.BrowsePath + `
  finding_url: ` + upstream + ebaytest.FindingPath + `
  rate_limit:
    per_second: 1000
    burst: 1000
    daily_limit: 1000
engine:
  trending_queries: ["pink floyd vinyl", "radiohead vinyl"]
logging:
  level: error
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	return cfg
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	upstream := ebaytest.NewServer(t, logger.Discard())
	cfg := testConfig(t, upstream.URL)
	return buildServer(cfg, logger.Discard(), noop.NewTracerProvider())
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestBuildServer_Probes(t *testing.T) {
	h := newTestServer(t)

	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = get(t, h, "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
}

func TestBuildServer_Search(t *testing.T) {
	h := newTestServer(t)

	rec := get(t, h, "/api/v1/search?q=pink+floyd")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Query       string `json:"query"`
		Marketplace string `json:"marketplace"`
		Total       int    `json:"total"`
		Items       []struct {
			ItemID string  `json:"item_id"`
			Artist *string `json:"artist"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pink floyd", body.Query)
	assert.Equal(t, "EBAY_US", body.Marketplace)
	assert.Equal(t, 2, body.Total)
	assert.Len(t, body.Items, 2)
}

func TestBuildServer_SearchRequiresQuery(t *testing.T) {
	h := newTestServer(t)

	rec := get(t, h, "/api/v1/search")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestBuildServer_PriceHistory(t *testing.T) {
	h := newTestServer(t)

	rec := get(t, h, "/api/v1/price-history?q=pink+floyd")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		TotalSold    int      `json:"total_sold"`
		LowestPrice  *float64 `json:"lowest_price"`
		HighestPrice *float64 `json:"highest_price"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 4, body.TotalSold)
	require.NotNil(t, body.LowestPrice)
	require.NotNil(t, body.HighestPrice)
	assert.InDelta(t, 9.99, *body.LowestPrice, 0.001)
	assert.InDelta(t, 65.0, *body.HighestPrice, 0.001)
}

func TestBuildServer_Quota(t *testing.T) {
	h := newTestServer(t)

	require.Equal(t, http.StatusOK, get(t, h, "/api/v1/search?q=radiohead").Code)

	rec := get(t, h, "/api/v1/quota")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		DailyLimit int64     `json:"daily_limit"`
		DailyUsed  int64     `json:"daily_used"`
		ResetAt    time.Time `json:"reset_at"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1000), body.DailyLimit)
	assert.Equal(t, int64(1), body.DailyUsed)
	assert.False(t, body.ResetAt.IsZero())
}

func TestBuildServer_OpenAPIAndMetrics(t *testing.T) {
	h := newTestServer(t)

	rec := get(t, h, "/openapi.json")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, path := range []string{
		"/api/v1/trending",
		"/api/v1/search",
		"/api/v1/lookup/{code}",
		"/api/v1/recommendations",
		"/api/v1/price-history",
		"/api/v1/chart-data",
		"/api/v1/quota",
	} {
		assert.Contains(t, rec.Body.String(), `"`+path+`"`)
	}

	require.Equal(t, http.StatusOK, get(t, h, "/healthz").Code)
	rec = get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "vinyl_healthz_up")
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := versionCommand()
	cmd.SetOut(&buf)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "vinyl-backend dev\n", buf.String())
}
