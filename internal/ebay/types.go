package ebay

// ItemSummary represents a single item from the Browse API search or
// item-detail response.
type ItemSummary struct {
	ItemID           string      `json:"itemId"`
	Title            string      `json:"title"`
	Brand            string      `json:"brand,omitempty"`
	Price            *ItemPrice  `json:"price,omitempty"`
	ItemWebURL       string      `json:"itemWebUrl"`
	Image            *ItemImage  `json:"image,omitempty"`
	AdditionalImages []ItemImage `json:"additionalImages,omitempty"`
	ThumbnailImages  []ItemImage `json:"thumbnailImages,omitempty"`
	Condition        string      `json:"condition,omitempty"`
	ConditionID      string      `json:"conditionId,omitempty"`
	ItemCreationDate string      `json:"itemCreationDate,omitempty"`
	Gtin             string      `json:"gtin,omitempty"`
}

// ItemPrice holds eBay price information.
type ItemPrice struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// ItemImage holds eBay image information.
type ItemImage struct {
	ImageURL string `json:"imageUrl"`
}

// CompletedItem is a completed listing from the Finding API, flattened from
// its array-wrapped wire form. Price and EndTime are kept as sent.
type CompletedItem struct {
	ItemID       string
	Title        string
	ViewItemURL  string
	GalleryURL   string
	Condition    string
	Price        string
	Currency     string
	SellingState string
	EndTime      string
}

// SellingStateEndedWithSales marks a completed listing that sold.
const SellingStateEndedWithSales = "EndedWithSales"

type browseAPIResponse struct {
	ItemSummaries []ItemSummary `json:"itemSummaries"`
	Total         int           `json:"total"`
	Offset        int           `json:"offset"`
	Limit         int           `json:"limit"`
	Next          string        `json:"next"`
}

type findingResponse struct {
	FindCompletedItemsResponse []findingEnvelope `json:"findCompletedItemsResponse"`
}

type findingEnvelope struct {
	Ack              []string            `json:"ack"`
	ErrorMessage     []findingErrorList  `json:"errorMessage"`
	SearchResult     []findingResultPage `json:"searchResult"`
	PaginationOutput []findingPagination `json:"paginationOutput"`
}

type findingErrorList struct {
	Error []struct {
		Message []string `json:"message"`
	} `json:"error"`
}

type findingResultPage struct {
	Item []findingItem `json:"item"`
}

type findingPagination struct {
	PageNumber []string `json:"pageNumber"`
	TotalPages []string `json:"totalPages"`
}

type findingItem struct {
	ItemID      []string `json:"itemId"`
	Title       []string `json:"title"`
	GalleryURL  []string `json:"galleryURL"`
	ViewItemURL []string `json:"viewItemURL"`
	Condition   []struct {
		ConditionDisplayName []string `json:"conditionDisplayName"`
	} `json:"condition"`
	SellingStatus []struct {
		CurrentPrice          []findingAmount `json:"currentPrice"`
		ConvertedCurrentPrice []findingAmount `json:"convertedCurrentPrice"`
		SellingState          []string        `json:"sellingState"`
	} `json:"sellingStatus"`
	ListingInfo []struct {
		EndTime []string `json:"endTime"`
	} `json:"listingInfo"`
}

type findingAmount struct {
	CurrencyID string `json:"@currencyId"`
	Value      string `json:"__value__"`
}
