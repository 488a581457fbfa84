// Package pipeline composes extraction, classification, scoring and
// filtering over a batch of raw listings. A run is synchronous and
// stateless; given the same batch and the same seeded random source it is
// fully deterministic.
package pipeline

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"marketscout/internal/classifier"
	"marketscout/internal/extractor"
	"marketscout/internal/filter"
	"marketscout/internal/models"
	"marketscout/internal/scoring"
)

// Mode selects which filter layers a run applies.
type Mode string

const (
	ModeRaw           Mode = "raw"           // enrichment only
	ModeCore          Mode = "core"          // core baseline only
	ModeCoreAndUser   Mode = "core+user"     // baseline, then user layer
	ModeComprehensive Mode = "comprehensive" // alias of core+user for aggregated batches
)

const searchURLBase = "https://www.amazon.in/s?k="

type Pipeline struct {
	ext    *extractor.Extractor
	cls    *classifier.Classifier
	scorer *scoring.Scorer
	now    func() time.Time
}

func New(ext *extractor.Extractor, cls *classifier.Classifier, scorer *scoring.Scorer) *Pipeline {
	return &Pipeline{ext: ext, cls: cls, scorer: scorer, now: time.Now}
}

// NewAt fixes the pipeline clock; used by tests asserting expiry behavior.
func NewAt(ext *extractor.Extractor, cls *classifier.Classifier, scorer *scoring.Scorer, now func() time.Time) *Pipeline {
	return &Pipeline{ext: ext, cls: cls, scorer: scorer, now: now}
}

// ClassifyAndScore enriches a raw batch into canonical listings without any
// filtering. Invalid listings (ad-like or degenerate titles) are dropped
// silently; every surviving record has all numeric fields populated.
func (p *Pipeline) ClassifyAndScore(raw []models.RawListing) []models.Listing {
	out := make([]models.Listing, 0, len(raw))
	for _, r := range raw {
		title := strings.TrimSpace(r.Title)
		if !p.cls.IsValidListing(title) {
			continue
		}
		l := p.enrich(title, r)
		l.ID = fmt.Sprintf("p-%d", len(out)+1)
		out = append(out, l)
	}
	return out
}

func (p *Pipeline) enrich(title string, r models.RawListing) models.Listing {
	price := p.ext.Price(r.PriceText)
	if price == 0 {
		price = p.ext.FallbackPrice()
	}
	reviews := p.ext.Reviews(r.ReviewText)
	if reviews == 0 {
		reviews = p.ext.FallbackReviews()
	}
	rank := p.ext.Rank(r.RankText)
	if rank == 0 {
		rank = p.ext.FallbackRank()
	}

	category := strings.TrimSpace(r.CategoryHint)
	if category == "" {
		category = p.cls.CategoryFromTitle(title)
	}

	brand := "Unknown"
	if fields := strings.Fields(title); len(fields) > 0 {
		brand = fields[0]
	}

	l := models.Listing{
		Name:     title,
		Price:    price,
		Reviews:  reviews,
		Rank:     rank,
		Weight:   p.ext.FallbackWeight(),
		Category: category,
		Brand:    brand,
		URL:      r.SourceURL,

		IsPlatformBrand:  p.cls.IsPlatformBrand(title, brand),
		IsFragile:        p.cls.IsFragile(title, category),
		IsPerishable:     p.cls.IsPerishable(category),
		IsElectronics:    p.cls.IsElectronics(title, category),
		HasSizeAmbiguity: p.cls.HasSizeAmbiguity(title),
	}
	if l.IsPerishable {
		l.ExpiryDate = p.ext.FallbackExpiry(p.now())
	}
	if l.URL == "" {
		l.URL = searchURLBase + url.QueryEscape(title)
	}
	l.BrandingPotential = p.scorer.BrandingPotential(l)
	l.OpportunityScore = p.scorer.OpportunityScore(l)
	return l
}

// ApplyCoreFilter exposes the fixed sourcing baseline.
func (p *Pipeline) ApplyCoreFilter(batch []models.Listing) []models.Listing {
	return filter.ApplyCore(batch, p.now())
}

// ApplyUserFilter exposes the caller-adjustable layer.
func (p *Pipeline) ApplyUserFilter(batch []models.Listing, cfg models.FilterConfig) ([]models.Listing, error) {
	return filter.ApplyUser(batch, cfg)
}

// Run executes the whole pipeline: enrich, dedup by normalized name keeping
// the first occurrence, then filter per mode. cfg may be nil for modes that
// do not use the user layer.
func (p *Pipeline) Run(raw []models.RawListing, cfg *models.FilterConfig, mode Mode) (models.PipelineResult, error) {
	enriched := p.ClassifyAndScore(raw)
	deduped := dedupByName(enriched)

	filtered := deduped
	switch mode {
	case ModeRaw:
		// no filtering
	case ModeCore:
		filtered = p.ApplyCoreFilter(deduped)
	case ModeCoreAndUser, ModeComprehensive:
		filtered = p.ApplyCoreFilter(deduped)
		if cfg != nil {
			var err error
			filtered, err = p.ApplyUserFilter(filtered, *cfg)
			if err != nil {
				return models.PipelineResult{}, err
			}
		}
	default:
		return models.PipelineResult{}, fmt.Errorf("pipeline: unknown mode %q", mode)
	}

	return models.PipelineResult{
		Results: filtered,
		Counts: models.Counts{
			Total:    len(enriched),
			Deduped:  len(deduped),
			Filtered: len(filtered),
		},
	}, nil
}

func dedupByName(batch []models.Listing) []models.Listing {
	seen := make(map[string]struct{}, len(batch))
	out := make([]models.Listing, 0, len(batch))
	for _, l := range batch {
		key := strings.ToLower(strings.TrimSpace(l.Name))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, l)
	}
	return out
}
