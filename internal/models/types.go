package models

import "fmt"

// RawListing is one scraped (or seeded) marketplace element before any
// parsing. Only Title is required; everything else is best-effort text.
type RawListing struct {
	Title        string `json:"title"`
	PriceText    string `json:"priceText,omitempty"`
	ReviewText   string `json:"reviewText,omitempty"`
	RankText     string `json:"rankText,omitempty"`
	CategoryHint string `json:"categoryHint,omitempty"`
	SourceURL    string `json:"sourceUrl,omitempty"`
}

// BrandingPotential buckets how easy it would be to build a third-party
// brand around a listing.
type BrandingPotential string

const (
	BrandingLow    BrandingPotential = "Low"
	BrandingMedium BrandingPotential = "Medium"
	BrandingHigh   BrandingPotential = "High"
)

// Listing is the canonical enriched record. Price, Reviews, Rank and Weight
// are always populated (synthesized when unparseable). ExpiryDate is set
// exactly when IsPerishable is true. Listings are never mutated after
// enrichment; filters build new slices.
type Listing struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    int     `json:"price"`
	Reviews  int     `json:"reviews"`
	Rank     int     `json:"rank"`
	Weight   float64 `json:"weight"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	URL      string  `json:"url"`

	IsPlatformBrand  bool   `json:"isPlatformBrand"`
	IsFragile        bool   `json:"isFragile"`
	IsPerishable     bool   `json:"isPerishable"`
	ExpiryDate       string `json:"expiryDate,omitempty"`
	IsElectronics    bool   `json:"isElectronics"`
	HasSizeAmbiguity bool   `json:"hasSizeAmbiguity"`

	BrandingPotential BrandingPotential `json:"brandingPotential"`
	OpportunityScore  int               `json:"opportunityScore"`
}

// FilterConfig is the caller-adjustable filter layer. Nil bounds impose no
// constraint on that axis; toggles remove listings whose flag is set.
type FilterConfig struct {
	MinPrice   *int     `json:"minPrice,omitempty"`
	MaxPrice   *int     `json:"maxPrice,omitempty"`
	MinRank    *int     `json:"minRank,omitempty"`
	MaxRank    *int     `json:"maxRank,omitempty"`
	MaxReviews *int     `json:"maxReviews,omitempty"`
	MaxWeight  *float64 `json:"maxWeight,omitempty"`

	ExcludePlatformBrand bool `json:"excludePlatformBrand,omitempty"`
	ExcludeFragile       bool `json:"excludeFragile,omitempty"`
	ExcludePerishable    bool `json:"excludePerishable,omitempty"`
	ExcludeElectronics   bool `json:"excludeElectronics,omitempty"`
	ExcludeSizeAmbiguity bool `json:"excludeSizeAmbiguity,omitempty"`

	Category          string `json:"category,omitempty"`
	BrandingPotential string `json:"brandingPotential,omitempty"`
}

// Validate rejects inverted ranges. A config that passes is safe to apply
// in any predicate order.
func (c *FilterConfig) Validate() error {
	if c.MinPrice != nil && c.MaxPrice != nil && *c.MinPrice > *c.MaxPrice {
		return fmt.Errorf("invalid filter: minPrice %d > maxPrice %d", *c.MinPrice, *c.MaxPrice)
	}
	if c.MinRank != nil && c.MaxRank != nil && *c.MinRank > *c.MaxRank {
		return fmt.Errorf("invalid filter: minRank %d > maxRank %d", *c.MinRank, *c.MaxRank)
	}
	if c.MaxReviews != nil && *c.MaxReviews < 0 {
		return fmt.Errorf("invalid filter: maxReviews %d < 0", *c.MaxReviews)
	}
	if c.MaxWeight != nil && *c.MaxWeight < 0 {
		return fmt.Errorf("invalid filter: maxWeight %v < 0", *c.MaxWeight)
	}
	return nil
}

// Counts reports batch observability numbers for a pipeline run.
type Counts struct {
	Total    int `json:"total"`
	Deduped  int `json:"deduped"`
	Filtered int `json:"filtered"`
}

// PipelineResult is what a full pipeline run hands back to the caller.
type PipelineResult struct {
	Results []Listing `json:"results"`
	Counts  Counts    `json:"counts"`
}
