package ebay

import (
	"strconv"
	"strings"
	"time"

	domain "github.com/clareta27/vinyl-backend/pkg/types"
)

// ToItems converts Browse API item summaries into domain items.
func ToItems(items []ItemSummary) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for i := range items {
		out = append(out, ToItem(&items[i]))
	}
	return out
}

// ToItem converts one Browse API item into the canonical domain shape.
// Fields the marketplace omitted stay nil.
func ToItem(item *ItemSummary) domain.Item {
	it := domain.Item{
		ItemID:    item.ItemID,
		Title:     item.Title,
		URL:       item.ItemWebURL,
		Artist:    DeriveArtist(item.Brand, item.Title),
		Image:     domain.StringPtr(primaryImage(item)),
		Condition: domain.StringPtr(item.Condition),
	}

	if item.Price != nil {
		if p, err := strconv.ParseFloat(item.Price.Value, 64); err == nil {
			it.Price = &p
		}
	}

	return it
}

// DeriveArtist returns the brand when present, else the text before the
// first hyphen in the title, else nil.
func DeriveArtist(brand, title string) *string {
	if a := domain.StringPtr(brand); a != nil {
		return a
	}
	if idx := strings.Index(title, "-"); idx > 0 {
		return domain.StringPtr(title[:idx])
	}
	return nil
}

func primaryImage(item *ItemSummary) string {
	if item.Image != nil && item.Image.ImageURL != "" {
		return item.Image.ImageURL
	}
	for _, imgs := range [][]ItemImage{item.AdditionalImages, item.ThumbnailImages} {
		for _, img := range imgs {
			if img.ImageURL != "" {
				return img.ImageURL
			}
		}
	}
	return ""
}

// ToSoldRecords converts completed listings into sold records. Listings
// that ended without a sale, or whose price or end time cannot be parsed,
// are dropped.
func ToSoldRecords(items []CompletedItem) []domain.SoldRecord {
	out := make([]domain.SoldRecord, 0, len(items))
	for i := range items {
		ci := &items[i]
		if ci.SellingState != SellingStateEndedWithSales {
			continue
		}

		price, err := strconv.ParseFloat(ci.Price, 64)
		if err != nil {
			continue
		}
		ts, err := time.Parse(time.RFC3339, ci.EndTime)
		if err != nil {
			continue
		}

		out = append(out, domain.SoldRecord{
			Price:     price,
			Timestamp: ts.UTC(),
			Title:     ci.Title,
			URL:       ci.ViewItemURL,
			Image:     domain.StringPtr(ci.GalleryURL),
			Condition: domain.StringPtr(ci.Condition),
		})
	}
	return out
}
