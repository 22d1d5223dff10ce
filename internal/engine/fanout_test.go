package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clareta27/vinyl-backend/internal/ebay"
	ebayMocks "github.com/clareta27/vinyl-backend/internal/ebay/mocks"
	"github.com/clareta27/vinyl-backend/internal/metrics"
	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

func searchFor(q string) any {
	return mock.MatchedBy(func(r ebay.SearchRequest) bool { return r.Query == q })
}

func TestAggregate_DedupesByTitleFirstSeen(t *testing.T) {
	t.Parallel()

	me := ebayMocks.NewMockEbayClient(t)
	me.EXPECT().Search(mock.Anything, searchFor("q1")).
		Return(searchResp(
			summary("a1", "Dummy - Dummy LP", "30.00"),
			summary("a2", "Portishead Third LP", "25.00"),
		), nil)
	me.EXPECT().Search(mock.Anything, searchFor("q2")).
		Return(searchResp(
			summary("b1", "Dummy - Dummy LP", "99.00"),
			summary("b2", "Massive Attack Mezzanine LP", "40.00"),
		), nil)

	eng := newTestEngine(me)
	items, err := eng.Aggregate(context.Background(), []string{"q1", "q2"}, "US")
	require.NoError(t, err)

	titles := make([]string, 0, len(items))
	for i := range items {
		titles = append(titles, items[i].Title)
	}
	assert.Equal(t, []string{
		"Dummy - Dummy LP",
		"Portishead Third LP",
		"Massive Attack Mezzanine LP",
	}, titles)
	assert.Equal(t, "a1", items[0].ItemID)
}

func TestAggregate_FiltersIrrelevant(t *testing.T) {
	t.Parallel()

	me := ebayMocks.NewMockEbayClient(t)
	me.EXPECT().Search(mock.Anything, mock.Anything).
		Return(searchResp(
			summary("1", "Joy Division - Unknown Pleasures LP", "28.00"),
			summary("2", "Joy Division Unknown Pleasures T-Shirt", "15.00"),
			summary("3", "", "1.00"),
		), nil)

	eng := newTestEngine(me)
	items, err := eng.Aggregate(context.Background(), []string{"joy division"}, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ItemID)
	assert.Equal(t, "Joy Division", items[0].ArtistName())
}

func TestAggregate_SkipsFailedQueries(t *testing.T) {
	// Not parallel: reads the global fan-out failure counter.
	me := ebayMocks.NewMockEbayClient(t)
	me.EXPECT().Search(mock.Anything, searchFor("broken")).
		Return(nil, &ebay.UpstreamError{Endpoint: "search", StatusCode: 500, Body: "oops"})
	me.EXPECT().Search(mock.Anything, searchFor("timeout")).
		Return(nil, errors.New("executing search request: i/o timeout"))
	me.EXPECT().Search(mock.Anything, searchFor("ok")).
		Return(searchResp(summary("1", "Slowdive Souvlaki LP", "35.00")), nil)

	before := ptestutil.ToFloat64(metrics.FanoutQueryFailuresTotal.WithLabelValues("aggregate"))

	eng := newTestEngine(me)
	items, err := eng.Aggregate(context.Background(), []string{"broken", "ok", "timeout"}, "US")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Slowdive Souvlaki LP", items[0].Title)

	after := ptestutil.ToFloat64(metrics.FanoutQueryFailuresTotal.WithLabelValues("aggregate"))
	assert.InDelta(t, 2, after-before, 0.001)
}

func TestAggregate_AllQueriesFail(t *testing.T) {
	t.Parallel()

	me := ebayMocks.NewMockEbayClient(t)
	me.EXPECT().Search(mock.Anything, mock.Anything).
		Return(nil, &ebay.UpstreamError{StatusCode: 503})

	eng := newTestEngine(me)
	items, err := eng.Aggregate(context.Background(), []string{"a", "b"}, "US")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAggregate_AuthFailureIsFatal(t *testing.T) {
	t.Parallel()

	me := ebayMocks.NewMockEbayClient(t)
	me.EXPECT().Search(mock.Anything, searchFor("a")).
		Return(searchResp(summary("1", "Ride Nowhere LP", "20.00")), nil)
	me.EXPECT().Search(mock.Anything, searchFor("b")).
		Return(nil, ebay.ErrAuthFailure)

	eng := newTestEngine(me)
	_, err := eng.Aggregate(context.Background(), []string{"a", "b"}, "US")
	require.ErrorIs(t, err, ebay.ErrAuthFailure)
}

func TestAggregate_RespectsFanoutLimit(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32

	me := ebayMocks.NewMockEbayClient(t)
	me.EXPECT().Search(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, ebay.SearchRequest) (*ebay.SearchResponse, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			return searchResp(), nil
		})

	eng := newTestEngine(me, WithFanoutLimit(2))
	_, err := eng.Aggregate(context.Background(), []string{"a", "b", "c", "d", "e", "f"}, "US")
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestAggregate_ContextCanceled(t *testing.T) {
	t.Parallel()

	me := ebayMocks.NewMockEbayClient(t)
	me.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, context.Canceled).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := newTestEngine(me)
	_, err := eng.Aggregate(ctx, []string{"a"}, "US")
	require.ErrorIs(t, err, context.Canceled)
}

func TestSaleKey(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	a := domain.SoldRecord{Price: 20, Timestamp: ts, Title: "a"}
	b := domain.SoldRecord{Price: 20, Timestamp: ts.In(time.FixedZone("X", 3600)), Title: "b"}
	c := domain.SoldRecord{Price: 20.5, Timestamp: ts}

	assert.Equal(t, SaleKey(&a), SaleKey(&b))
	assert.NotEqual(t, SaleKey(&a), SaleKey(&c))
}

func TestTitleKey(t *testing.T) {
	t.Parallel()

	a := domain.Item{Title: "Loveless LP"}
	b := domain.Item{Title: "Loveless  LP"}
	assert.NotEqual(t, TitleKey(&a), TitleKey(&b))
}
