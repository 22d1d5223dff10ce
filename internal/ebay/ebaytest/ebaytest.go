// Package ebaytest serves a fake eBay upstream backed by canned fixtures.
// It implements just enough of the OAuth token endpoint, the Browse API and
// the Finding API's findCompletedItems call for local development and for
// end-to-end tests of the discovery service.
package ebaytest

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"
)

// Route prefixes served by the handler. Point the eBay client's base URLs
// at the server root joined with these.
const (
	TokenPath   = "/identity/v1/oauth2/token"
	BrowsePath  = "/buy/browse/v1"
	FindingPath = "/services/search/FindingService/v1"
)

// AccessToken is the bearer token issued for every successful refresh.
const AccessToken = "ebaytest-access-token"

//go:embed fixtures/*.json
var fixtureFS embed.FS

type summary struct {
	raw   json.RawMessage
	id    string
	title string
	gtin  string
}

type completed struct {
	ItemID       string `json:"itemId"`
	Title        string `json:"title"`
	Price        string `json:"price"`
	Currency     string `json:"currency"`
	Condition    string `json:"condition"`
	SellingState string `json:"sellingState"`
	DaysAgo      int    `json:"daysAgo"`
}

type fake struct {
	log       *slog.Logger
	nowFunc   func() time.Time
	summaries []summary
	completed []completed
}

// Option configures the fake upstream.
type Option func(*fake)

// WithNowFunc sets the clock used to stamp completed listing end times.
func WithNowFunc(fn func() time.Time) Option {
	return func(f *fake) {
		f.nowFunc = fn
	}
}

// NewHandler returns an http.Handler serving the fake eBay routes.
func NewHandler(log *slog.Logger, opts ...Option) (http.Handler, error) {
	f := &fake{log: log, nowFunc: time.Now}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.loadFixtures(); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+TokenPath, f.token)
	mux.HandleFunc("GET "+BrowsePath+"/item_summary/search", f.search)
	mux.HandleFunc("GET "+BrowsePath+"/item/{id}", f.item)
	mux.HandleFunc("GET "+FindingPath, f.finding)

	return f.logRequests(mux), nil
}

// NewServer starts an httptest.Server running the fake upstream and
// registers its shutdown with t.Cleanup.
func NewServer(t testing.TB, log *slog.Logger, opts ...Option) *httptest.Server {
	t.Helper()
	h, err := NewHandler(log, opts...)
	if err != nil {
		t.Fatalf("ebaytest: %v", err)
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func (f *fake) loadFixtures() error {
	data, err := fixtureFS.ReadFile("fixtures/item_summaries.json")
	if err != nil {
		return fmt.Errorf("reading item fixtures: %w", err)
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("parsing item fixtures: %w", err)
	}
	for _, raw := range raws {
		var s struct {
			ItemID string `json:"itemId"`
			Title  string `json:"title"`
			Gtin   string `json:"gtin"`
		}
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("parsing item fixture: %w", err)
		}
		f.summaries = append(f.summaries, summary{
			raw:   raw,
			id:    s.ItemID,
			title: strings.ToLower(s.Title),
			gtin:  s.Gtin,
		})
	}

	data, err = fixtureFS.ReadFile("fixtures/completed_items.json")
	if err != nil {
		return fmt.Errorf("reading completed fixtures: %w", err)
	}
	if err := json.Unmarshal(data, &f.completed); err != nil {
		return fmt.Errorf("parsing completed fixtures: %w", err)
	}
	return nil
}

func (f *fake) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.log.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func (f *fake) token(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := r.BasicAuth(); !ok {
		f.log.Warn("token request missing Basic Auth header")
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":             "invalid_client",
			"error_description": "client authentication failed",
		})
		return
	}
	if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "refresh_token" ||
		r.PostForm.Get("refresh_token") == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "invalid_grant",
			"error_description": "the provided authorization refresh token is invalid",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": AccessToken,
		"expires_in":   7200,
		"token_type":   "User Access Token",
	})
	f.log.Info("issued fake token")
}

func (f *fake) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := intParam(q.Get("limit"), 50)
	offset := intParam(q.Get("offset"), 0)
	words := strings.Fields(strings.ToLower(q.Get("q")))
	gtin := q.Get("gtin")

	matched := make([]json.RawMessage, 0)
	for _, s := range f.summaries {
		if gtin != "" && s.gtin != gtin {
			continue
		}
		if containsAll(s.title, words) {
			matched = append(matched, s.raw)
		}
	}

	total := len(matched)
	start := min(offset, total)
	end := min(start+limit, total)

	resp := map[string]any{
		"itemSummaries": matched[start:end],
		"total":         total,
		"offset":        offset,
		"limit":         limit,
	}
	if end < total {
		resp["next"] = fmt.Sprintf("%s/item_summary/search?offset=%d&limit=%d", BrowsePath, end, limit)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (f *fake) item(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	for _, s := range f.summaries {
		if s.id == id {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(s.raw)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{
		"errors": []map[string]any{{"errorId": 11001, "message": "The specified item Id was not found."}},
	})
}

func (f *fake) finding(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if op := q.Get("OPERATION-NAME"); op != "findCompletedItems" {
		writeJSON(w, http.StatusOK, findingFailure("Unsupported operation "+op))
		return
	}

	perPage := intParam(q.Get("paginationInput.entriesPerPage"), 100)
	page := intParam(q.Get("paginationInput.pageNumber"), 1)
	words := strings.Fields(strings.ToLower(q.Get("keywords")))
	soldOnly := q.Get("itemFilter(0).name") == "SoldItemsOnly" && q.Get("itemFilter(0).value") == "true"

	var matched []completed
	for _, c := range f.completed {
		if soldOnly && c.SellingState != "EndedWithSales" {
			continue
		}
		if containsAll(strings.ToLower(c.Title), words) {
			matched = append(matched, c)
		}
	}

	totalPages := (len(matched) + perPage - 1) / perPage
	start := min((page-1)*perPage, len(matched))
	end := min(start+perPage, len(matched))

	now := f.nowFunc().UTC()
	items := make([]map[string]any, 0, end-start)
	for _, c := range matched[start:end] {
		items = append(items, map[string]any{
			"itemId":      []string{c.ItemID},
			"title":       []string{c.Title},
			"viewItemURL": []string{"https://www.ebay.com/itm/" + c.ItemID},
			"galleryURL":  []string{"https://thumbs.ebaystatic.com/images/g/" + c.ItemID + "/s-l140.jpg"},
			"condition":   []map[string]any{{"conditionDisplayName": []string{c.Condition}}},
			"sellingStatus": []map[string]any{{
				"currentPrice": []map[string]string{{"@currencyId": c.Currency, "__value__": c.Price}},
				"sellingState": []string{c.SellingState},
			}},
			"listingInfo": []map[string]any{{
				"endTime": []string{now.AddDate(0, 0, -c.DaysAgo).Format(time.RFC3339)},
			}},
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"findCompletedItemsResponse": []map[string]any{{
			"ack":          []string{"Success"},
			"searchResult": []map[string]any{{"@count": strconv.Itoa(len(items)), "item": items}},
			"paginationOutput": []map[string]any{{
				"pageNumber":   []string{strconv.Itoa(page)},
				"totalPages":   []string{strconv.Itoa(totalPages)},
				"totalEntries": []string{strconv.Itoa(len(matched))},
			}},
		}},
	})
}

func findingFailure(msg string) map[string]any {
	return map[string]any{
		"findCompletedItemsResponse": []map[string]any{{
			"ack": []string{"Failure"},
			"errorMessage": []map[string]any{{
				"error": []map[string]any{{"message": []string{msg}}},
			}},
		}},
	}
}

func containsAll(title string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(title, w) {
			return false
		}
	}
	return true
}

func intParam(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return def
	}
	if v == 0 && def > 0 {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
