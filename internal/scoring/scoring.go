// Package scoring derives the two judgment fields of a listing: its
// branding potential bucket and its 0–100 opportunity score.
package scoring

import (
	"marketscout/internal/classifier"
	"marketscout/internal/models"
)

// Strategy selects which branding-potential definition applies. The two
// historical definitions disagree, so both stay available by name.
type Strategy string

const (
	// StrategyCompetitionBand: low competition inside the ideal price band
	// and not platform-branded means High potential. Canonical default.
	StrategyCompetitionBand Strategy = "competition-band"
	// StrategyGenericTerms: commodity-sounding titles and crowded listings
	// mean Low brandability; everything else is High.
	StrategyGenericTerms Strategy = "generic-terms"
)

type Scorer struct {
	strategy Strategy
	cls      *classifier.Classifier
}

func New(strategy Strategy, cls *classifier.Classifier) *Scorer {
	if strategy == "" {
		strategy = StrategyCompetitionBand
	}
	return &Scorer{strategy: strategy, cls: cls}
}

// BrandingPotential buckets the listing per the configured strategy.
func (s *Scorer) BrandingPotential(l models.Listing) models.BrandingPotential {
	if s.strategy == StrategyGenericTerms {
		if l.Reviews < 500 {
			return models.BrandingLow
		}
		if s.cls.IsGeneric(l.Name) {
			return models.BrandingLow
		}
		return models.BrandingHigh
	}
	if l.Reviews < 200 && l.Price >= 500 && l.Price <= 2000 && !l.IsPlatformBrand {
		return models.BrandingHigh
	}
	if l.Reviews < 500 && l.Price >= 300 && l.Price <= 2500 {
		return models.BrandingMedium
	}
	return models.BrandingLow
}

// Point table for the opportunity score. Each axis contributes
// independently and monotonically: the narrowest ideal band scores highest,
// wider bands progressively less, and every negative flag is a flat
// deduction.
const (
	pricePointsIdeal = 25 // 500–2000
	pricePointsWide  = 15 // 300–2500

	reviewPointsIdeal = 25 // < 200
	reviewPointsMid   = 15 // < 500
	reviewPointsWide  = 8  // < 1000

	rankPointsIdeal = 25 // 200–2000
	rankPointsWide  = 12 // 100–5000

	weightPointsIdeal = 15 // < 1.0 kg
	weightPointsWide  = 8  // < 2.0 kg

	penaltyPlatformBrand = 20
	penaltyFragile       = 15
	penaltyPerishable    = 10
	penaltyElectronics   = 10
	penaltySizeAmbiguity = 15
)

// OpportunityScore combines price, review, rank and weight desirability
// minus flag penalties, clamped to [0, 100].
func (s *Scorer) OpportunityScore(l models.Listing) int {
	score := 0

	switch {
	case l.Price >= 500 && l.Price <= 2000:
		score += pricePointsIdeal
	case l.Price >= 300 && l.Price <= 2500:
		score += pricePointsWide
	}

	switch {
	case l.Reviews < 200:
		score += reviewPointsIdeal
	case l.Reviews < 500:
		score += reviewPointsMid
	case l.Reviews < 1000:
		score += reviewPointsWide
	}

	switch {
	case l.Rank >= 200 && l.Rank <= 2000:
		score += rankPointsIdeal
	case l.Rank >= 100 && l.Rank <= 5000:
		score += rankPointsWide
	}

	switch {
	case l.Weight < 1.0:
		score += weightPointsIdeal
	case l.Weight < 2.0:
		score += weightPointsWide
	}

	if l.IsPlatformBrand {
		score -= penaltyPlatformBrand
	}
	if l.IsFragile {
		score -= penaltyFragile
	}
	if l.IsPerishable {
		score -= penaltyPerishable
	}
	if l.IsElectronics {
		score -= penaltyElectronics
	}
	if l.HasSizeAmbiguity {
		score -= penaltySizeAmbiguity
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
