package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clareta27/vinyl-backend/internal/ebay"
	ebayMocks "github.com/clareta27/vinyl-backend/internal/ebay/mocks"
)

func TestTrending(t *testing.T) {
	t.Parallel()

	me := ebayMocks.NewMockEbayClient(t)
	me.EXPECT().Search(mock.Anything, ebay.SearchRequest{Query: "new vinyl", Country: "DE", Limit: 50}).
		Return(searchResp(
			summary("1", "Can - Tago Mago LP", "30.00"),
			summary("2", "Neu! - Neu! LP", "45.00"),
		), nil)
	me.EXPECT().Search(mock.Anything, ebay.SearchRequest{Query: "krautrock lp", Country: "DE", Limit: 50}).
		Return(searchResp(
			summary("3", "Can - Tago Mago LP", "31.00"),
			summary("4", "Faust - IV LP", "60.00"),
			summary("5", "Cluster - Zuckerzeit LP", ""),
		), nil)

	eng := newTestEngine(me, WithTrendingQueries([]string{"new vinyl", "krautrock lp"}))

	res, err := eng.Trending(context.Background(), "de", 3)
	require.NoError(t, err)

	assert.Equal(t, "DE", res.Country)
	assert.Equal(t, "EBAY_DE", res.Marketplace)
	assert.Equal(t, 3, res.Count)
	require.Len(t, res.Items, 3)
	assert.Equal(t, "4", res.Items[0].ItemID)
	assert.Equal(t, "2", res.Items[1].ItemID)
	assert.Equal(t, "1", res.Items[2].ItemID)
	assert.InDelta(t, 60.0, res.Items[0].Score, 1e-9)
}

func TestTrending_DefaultsAndEmpty(t *testing.T) {
	t.Parallel()

	me := ebayMocks.NewMockEbayClient(t)
	me.EXPECT().Search(mock.Anything, mock.MatchedBy(func(r ebay.SearchRequest) bool {
		return r.Country == "US"
	})).Return(searchResp(), nil).Times(len(DefaultTrendingQueries))

	eng := newTestEngine(me)

	res, err := eng.Trending(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, "US", res.Country)
	assert.Equal(t, 0, res.Count)
	assert.Empty(t, res.Items)
}

func TestTrending_AuthFailure(t *testing.T) {
	t.Parallel()

	me := ebayMocks.NewMockEbayClient(t)
	me.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, ebay.ErrAuthFailure)

	eng := newTestEngine(me)

	_, err := eng.Trending(context.Background(), "US", 10)
	require.ErrorIs(t, err, ebay.ErrAuthFailure)
}
