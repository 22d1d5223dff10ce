package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clareta27/vinyl-backend/internal/api/handlers"
	"github.com/clareta27/vinyl-backend/internal/ebay"
	"github.com/clareta27/vinyl-backend/internal/engine"
	engineMocks "github.com/clareta27/vinyl-backend/internal/engine/mocks"
	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

func TestDiscoveryHandler_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*engineMocks.MockDiscovery)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid request returns items",
			path: "/api/v1/search?q=kind+of+blue&country=us&limit=5&offset=10&sort=price",
			setupMock: func(m *engineMocks.MockDiscovery) {
				m.EXPECT().
					Search(mock.Anything, engine.SearchParams{
						Query:   "kind of blue",
						Country: "us",
						Limit:   5,
						Offset:  10,
						Sort:    "price",
					}).
					Return(&domain.SearchResult{
						Query:       "kind of blue",
						Marketplace: "EBAY_US",
						Total:       312,
						Offset:      10,
						Limit:       5,
						HasMore:     true,
						Items:       []domain.Item{{ItemID: "v1|9|0", Title: "Miles Davis Kind Of Blue LP"}},
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":312`,
		},
		{
			name:       "missing q returns 422",
			path:       "/api/v1/search",
			setupMock:  func(_ *engineMocks.MockDiscovery) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "negative offset returns 422",
			path:       "/api/v1/search?q=x&offset=-1",
			setupMock:  func(_ *engineMocks.MockDiscovery) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "unsupported sort returns 400",
			path: "/api/v1/search?q=x&sort=bestseller",
			setupMock: func(m *engineMocks.MockDiscovery) {
				m.EXPECT().Search(mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: unsupported sort %q", engine.ErrInvalidInput, "bestseller")).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `unsupported sort`,
		},
		{
			name: "daily limit returns 429",
			path: "/api/v1/search?q=x",
			setupMock: func(m *engineMocks.MockDiscovery) {
				m.EXPECT().Search(mock.Anything, mock.Anything).
					Return(nil, ebay.ErrDailyLimitReached).Once()
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name: "upstream error returns 502 with body",
			path: "/api/v1/search?q=x",
			setupMock: func(m *engineMocks.MockDiscovery) {
				m.EXPECT().Search(mock.Anything, mock.Anything).
					Return(nil, &ebay.UpstreamError{Endpoint: "browse", StatusCode: 400, Body: "bad filter"}).
					Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `bad filter`,
		},
		{
			name: "unexpected error returns 500",
			path: "/api/v1/search?q=x",
			setupMock: func(m *engineMocks.MockDiscovery) {
				m.EXPECT().Search(mock.Anything, mock.Anything).
					Return(nil, errors.New("decoder exploded")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `internal error`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := engineMocks.NewMockDiscovery(t)
			tt.setupMock(m)

			_, api := humatest.New(t)
			handlers.RegisterSearchRoutes(api, newDiscovery(m))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
			assert.NotContains(t, resp.Body.String(), "decoder exploded")
		})
	}
}

func TestDiscoveryHandler_Lookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*engineMocks.MockDiscovery)
		wantStatus int
		wantBody   string
	}{
		{
			name: "code search result",
			path: "/api/v1/lookup/0602547288226?country=DE",
			setupMock: func(m *engineMocks.MockDiscovery) {
				m.EXPECT().Lookup(mock.Anything, "0602547288226", "DE").
					Return(&domain.LookupResult{
						Code:        "0602547288226",
						Marketplace: "EBAY_DE",
						Source:      domain.LookupSourceCode,
						Items:       []domain.Item{{ItemID: "v1|3|0", Title: "Adele 25 LP"}},
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"source":"code"`,
		},
		{
			name: "keyword fallback result",
			path: "/api/v1/lookup/PL12345",
			setupMock: func(m *engineMocks.MockDiscovery) {
				m.EXPECT().Lookup(mock.Anything, "PL12345", "").
					Return(&domain.LookupResult{
						Code:        "PL12345",
						Marketplace: "EBAY_US",
						Source:      domain.LookupSourceKeyword,
						Items:       []domain.Item{},
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"source":"keyword"`,
		},
		{
			name: "auth failure returns 502",
			path: "/api/v1/lookup/123",
			setupMock: func(m *engineMocks.MockDiscovery) {
				m.EXPECT().Lookup(mock.Anything, "123", "").
					Return(nil, fmt.Errorf("gtin search: %w", ebay.ErrAuthFailure)).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := engineMocks.NewMockDiscovery(t)
			tt.setupMock(m)

			_, api := humatest.New(t)
			handlers.RegisterSearchRoutes(api, newDiscovery(m))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
