package ebay

import "strings"

// Marketplace identifies a regional eBay storefront. ID is the Browse API
// marketplace header value; GlobalID is the Finding API equivalent.
type Marketplace struct {
	ID       string
	GlobalID string
}

// DefaultMarketplace is used for empty or unrecognized country codes.
var DefaultMarketplace = Marketplace{ID: "EBAY_US", GlobalID: "EBAY-US"}

var marketplaces = map[string]Marketplace{
	"US": DefaultMarketplace,
	"GB": {ID: "EBAY_GB", GlobalID: "EBAY-GB"},
	"UK": {ID: "EBAY_GB", GlobalID: "EBAY-GB"},
	"DE": {ID: "EBAY_DE", GlobalID: "EBAY-DE"},
	"FR": {ID: "EBAY_FR", GlobalID: "EBAY-FR"},
	"IT": {ID: "EBAY_IT", GlobalID: "EBAY-IT"},
	"ES": {ID: "EBAY_ES", GlobalID: "EBAY-ES"},
	"CA": {ID: "EBAY_CA", GlobalID: "EBAY-ENCA"},
	"AU": {ID: "EBAY_AU", GlobalID: "EBAY-AU"},
	"AT": {ID: "EBAY_AT", GlobalID: "EBAY-AT"},
	"CH": {ID: "EBAY_CH", GlobalID: "EBAY-CH"},
	"IE": {ID: "EBAY_IE", GlobalID: "EBAY-IE"},
	"NL": {ID: "EBAY_NL", GlobalID: "EBAY-NL"},
	"BE": {ID: "EBAY_BE", GlobalID: "EBAY-FRBE"},
	"PL": {ID: "EBAY_PL", GlobalID: "EBAY-PL"},
}

// ResolveMarketplace maps a two-letter country code (case-insensitive) to
// its marketplace, falling back to DefaultMarketplace.
func ResolveMarketplace(country string) Marketplace {
	if m, ok := marketplaces[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return m
	}
	return DefaultMarketplace
}
