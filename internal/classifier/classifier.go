package classifier

import (
	"strings"

	"marketscout/internal/rules"
)

// Classifier answers the heuristic flag questions about a listing. All
// methods are pure, case-insensitive substring checks against the shared
// rules table.
type Classifier struct {
	rules *rules.Rules
}

func New(r *rules.Rules) *Classifier {
	if r == nil {
		r = rules.Default()
	}
	return &Classifier{rules: r}
}

func containsAny(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// IsPlatformBrand reports whether the title or brand carries one of the
// marketplace operator's house-brand markers.
func (c *Classifier) IsPlatformBrand(title, brand string) bool {
	return containsAny(title, c.rules.PlatformBrandTerms) ||
		containsAny(brand, c.rules.PlatformBrandTerms)
}

// IsFragile reports whether the title or category names a fragile material.
func (c *Classifier) IsFragile(title, category string) bool {
	return containsAny(title, c.rules.FragileTerms) ||
		containsAny(category, c.rules.FragileTerms)
}

// IsPerishable is keyed on category text only; titles mention food words too
// often to be trusted here.
func (c *Classifier) IsPerishable(category string) bool {
	return containsAny(category, c.rules.PerishableTerms)
}

// HasSizeAmbiguity reports whether the title suggests size/fit variants that
// make the listing hard to source in one SKU.
func (c *Classifier) HasSizeAmbiguity(title string) bool {
	return containsAny(title, c.rules.SizeTerms)
}

func (c *Classifier) IsElectronics(title, category string) bool {
	return containsAny(title, c.rules.ElectronicsTerms) ||
		containsAny(category, c.rules.ElectronicsTerms)
}

// IsGeneric reports whether the title reads like a commodity accessory
// (bottle, cable, holder, ...). Used by the generic-terms branding strategy.
func (c *Classifier) IsGeneric(title string) bool {
	return containsAny(title, c.rules.GenericTerms)
}

// IsValidListing rejects degenerate scrape artifacts: too-short titles,
// pagination/navigation text, and non-product promotional entries.
func (c *Classifier) IsValidListing(title string) bool {
	if len(title) < c.rules.MinTitleLength {
		return false
	}
	if strings.Contains(title, "See More") || strings.Contains(title, "Page") {
		return false
	}
	return !containsAny(title, c.rules.InvalidTerms)
}

// CategoryFromTitle is the fallback categorizer for records without a
// structured category. Groups are checked in table order; the first group
// with a matching keyword wins, else the default label.
func (c *Classifier) CategoryFromTitle(title string) string {
	lower := strings.ToLower(title)
	for _, g := range c.rules.CategoryGroups {
		for _, kw := range g.Keywords {
			if strings.Contains(lower, kw) {
				return g.Label
			}
		}
	}
	return c.rules.DefaultCategory
}
