package ebay_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clareta27/vinyl-backend/internal/ebay"
	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

func TestToItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []ebay.ItemSummary
		want  []domain.Item
	}{
		{
			name:  "empty input returns empty slice",
			items: nil,
			want:  []domain.Item{},
		},
		{
			name:  "complete item converts all fields",
			items: []ebay.ItemSummary{completeItem()},
			want: []domain.Item{
				{
					ItemID:    "v1|125551234567|0",
					Title:     "Pink Floyd - The Wall 2LP Vinyl",
					Artist:    domain.StringPtr("Pink Floyd"),
					Price:     domain.Float64Ptr(34.99),
					Image:     domain.StringPtr("https://i.ebayimg.com/images/wall.jpg"),
					URL:       "https://www.ebay.com/itm/125551234567",
					Condition: domain.StringPtr("Used"),
				},
			},
		},
		{
			name: "missing optional fields stay nil",
			items: []ebay.ItemSummary{
				{
					ItemID:     "v1|789|0",
					Title:      "Sealed record lot",
					ItemWebURL: "https://www.ebay.com/itm/789",
				},
			},
			want: []domain.Item{
				{
					ItemID: "v1|789|0",
					Title:  "Sealed record lot",
					URL:    "https://www.ebay.com/itm/789",
				},
			},
		},
		{
			name: "unparseable price is nil",
			items: []ebay.ItemSummary{
				{
					ItemID: "v1|1|0",
					Title:  "Odd price",
					Price:  &ebay.ItemPrice{Value: "N/A", Currency: "USD"},
				},
			},
			want: []domain.Item{
				{ItemID: "v1|1|0", Title: "Odd price"},
			},
		},
		{
			name: "image falls back to additional then thumbnail",
			items: []ebay.ItemSummary{
				{
					ItemID:          "v1|2|0",
					Title:           "Cassette",
					ThumbnailImages: []ebay.ItemImage{{ImageURL: "https://i.ebayimg.com/thumb.jpg"}},
				},
				{
					ItemID:           "v1|3|0",
					Title:            "CD",
					AdditionalImages: []ebay.ItemImage{{ImageURL: ""}, {ImageURL: "https://i.ebayimg.com/extra.jpg"}},
					ThumbnailImages:  []ebay.ItemImage{{ImageURL: "https://i.ebayimg.com/thumb.jpg"}},
				},
			},
			want: []domain.Item{
				{ItemID: "v1|2|0", Title: "Cassette", Image: domain.StringPtr("https://i.ebayimg.com/thumb.jpg")},
				{ItemID: "v1|3|0", Title: "CD", Image: domain.StringPtr("https://i.ebayimg.com/extra.jpg")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ebay.ToItems(tt.items))
		})
	}
}

func TestDeriveArtist(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		brand string
		title string
		want  *string
	}{
		{name: "brand wins", brand: "Radiohead", title: "Someone Else - OK Computer", want: domain.StringPtr("Radiohead")},
		{name: "text before first hyphen", title: "Miles Davis - Kind of Blue - LP", want: domain.StringPtr("Miles Davis")},
		{name: "blank brand ignored", brand: "  ", title: "Bjork - Post", want: domain.StringPtr("Bjork")},
		{name: "no hyphen", title: "Kind of Blue LP"},
		{name: "leading hyphen", title: "- Untitled"},
		{name: "whitespace before hyphen", title: "   - Untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ebay.DeriveArtist(tt.brand, tt.title))
		})
	}
}

func TestToSoldRecords(t *testing.T) {
	t.Parallel()

	items := []ebay.CompletedItem{
		{
			ItemID:       "1",
			Title:        "Nirvana - Nevermind LP",
			ViewItemURL:  "https://www.ebay.com/itm/1",
			GalleryURL:   "https://i.ebayimg.com/1.jpg",
			Condition:    "Used",
			Price:        "24.5",
			Currency:     "USD",
			SellingState: ebay.SellingStateEndedWithSales,
			EndTime:      "2026-09-01T18:04:11.000Z",
		},
		{
			ItemID:       "2",
			Title:        "Unsold copy",
			Price:        "99",
			SellingState: "EndedWithoutSales",
			EndTime:      "2026-09-02T10:00:00.000Z",
		},
		{
			ItemID:       "3",
			Title:        "Bad price",
			Price:        "",
			SellingState: ebay.SellingStateEndedWithSales,
			EndTime:      "2026-09-02T10:00:00.000Z",
		},
		{
			ItemID:       "4",
			Title:        "Bad time",
			Price:        "10",
			SellingState: ebay.SellingStateEndedWithSales,
			EndTime:      "yesterday",
		},
	}

	got := ebay.ToSoldRecords(items)
	require.Len(t, got, 1)
	assert.Equal(t, domain.SoldRecord{
		Price:     24.5,
		Timestamp: time.Date(2026, 9, 1, 18, 4, 11, 0, time.UTC),
		Title:     "Nirvana - Nevermind LP",
		URL:       "https://www.ebay.com/itm/1",
		Image:     domain.StringPtr("https://i.ebayimg.com/1.jpg"),
		Condition: domain.StringPtr("Used"),
	}, got[0])
}

func completeItem() ebay.ItemSummary {
	return ebay.ItemSummary{
		ItemID:     "v1|125551234567|0",
		Title:      "Pink Floyd - The Wall 2LP Vinyl",
		Price:      &ebay.ItemPrice{Value: "34.99", Currency: "USD"},
		ItemWebURL: "https://www.ebay.com/itm/125551234567",
		Image:      &ebay.ItemImage{ImageURL: "https://i.ebayimg.com/images/wall.jpg"},
		Condition:  "Used",
	}
}
