// Package filter implements the two filter layers: the fixed sourcing
// baseline and the caller-adjustable layer on top of it. Both are pure
// predicates; applying them builds new slices and never mutates listings.
package filter

import (
	"time"

	"marketscout/internal/models"
)

// Core filter bounds. These are the non-negotiable sourcing criteria and
// are deliberately not configurable.
const (
	coreMinPrice   = 500
	coreMaxPrice   = 2000
	coreMaxReviews = 300 // exclusive: reviews must be < 300
	coreMinRank    = 200
	coreMaxRank    = 2000
	coreMaxWeight  = 1.0 // exclusive: weight must be < 1 kg
	expiryHorizon  = 6   // months
)

// Sourceable is the core baseline predicate for a single listing.
func Sourceable(l models.Listing, now time.Time) bool {
	if l.IsPlatformBrand || l.IsFragile || l.HasSizeAmbiguity {
		return false
	}
	if l.IsPerishable && l.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", l.ExpiryDate)
		if err == nil && expiry.Before(now.AddDate(0, expiryHorizon, 0)) {
			return false
		}
	}
	if l.Price < coreMinPrice || l.Price > coreMaxPrice {
		return false
	}
	if l.Reviews >= coreMaxReviews {
		return false
	}
	if l.Rank < coreMinRank || l.Rank > coreMaxRank {
		return false
	}
	if l.Weight >= coreMaxWeight {
		return false
	}
	return true
}

// ApplyCore returns the subset of the batch passing the fixed baseline.
func ApplyCore(batch []models.Listing, now time.Time) []models.Listing {
	out := make([]models.Listing, 0, len(batch))
	for _, l := range batch {
		if Sourceable(l, now) {
			out = append(out, l)
		}
	}
	return out
}

// ApplyUser applies each present bound and toggle of cfg independently.
// Absent bounds impose no constraint, so the predicates compose
// associatively and the application order cannot change the result.
func ApplyUser(batch []models.Listing, cfg models.FilterConfig) ([]models.Listing, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	out := make([]models.Listing, 0, len(batch))
	for _, l := range batch {
		if matches(l, cfg) {
			out = append(out, l)
		}
	}
	return out, nil
}

func matches(l models.Listing, cfg models.FilterConfig) bool {
	if cfg.MinPrice != nil && l.Price < *cfg.MinPrice {
		return false
	}
	if cfg.MaxPrice != nil && l.Price > *cfg.MaxPrice {
		return false
	}
	if cfg.MinRank != nil && l.Rank < *cfg.MinRank {
		return false
	}
	if cfg.MaxRank != nil && l.Rank > *cfg.MaxRank {
		return false
	}
	if cfg.MaxReviews != nil && l.Reviews > *cfg.MaxReviews {
		return false
	}
	if cfg.MaxWeight != nil && l.Weight > *cfg.MaxWeight {
		return false
	}
	if cfg.ExcludePlatformBrand && l.IsPlatformBrand {
		return false
	}
	if cfg.ExcludeFragile && l.IsFragile {
		return false
	}
	if cfg.ExcludePerishable && l.IsPerishable {
		return false
	}
	if cfg.ExcludeElectronics && l.IsElectronics {
		return false
	}
	if cfg.ExcludeSizeAmbiguity && l.HasSizeAmbiguity {
		return false
	}
	if cfg.Category != "" && cfg.Category != "All" && l.Category != cfg.Category {
		return false
	}
	if cfg.BrandingPotential != "" && cfg.BrandingPotential != "All" &&
		string(l.BrandingPotential) != cfg.BrandingPotential {
		return false
	}
	return true
}
