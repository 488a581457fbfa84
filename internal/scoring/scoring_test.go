package scoring

import (
	"testing"

	"marketscout/internal/classifier"
	"marketscout/internal/models"
)

func newScorer(s Strategy) *Scorer {
	return New(s, classifier.New(nil))
}

func TestOpportunityScorePinnedExample(t *testing.T) {
	s := newScorer(StrategyCompetitionBand)
	l := models.Listing{Price: 1200, Reviews: 150, Rank: 300, Weight: 0.5}
	if got := s.OpportunityScore(l); got != 90 {
		t.Fatalf("want 90, got %d", got)
	}
}

func TestOpportunityScoreClamped(t *testing.T) {
	s := newScorer(StrategyCompetitionBand)
	l := models.Listing{
		Price: 50000, Reviews: 90000, Rank: 90000, Weight: 5,
		IsPlatformBrand: true, IsFragile: true, IsPerishable: true,
		IsElectronics: true, HasSizeAmbiguity: true,
	}
	if got := s.OpportunityScore(l); got != 0 {
		t.Fatalf("penalties should clamp to 0, got %d", got)
	}
}

func TestOpportunityScoreRange(t *testing.T) {
	s := newScorer(StrategyCompetitionBand)
	cases := []models.Listing{
		{Price: 700, Reviews: 50, Rank: 500, Weight: 0.2},
		{Price: 2400, Reviews: 800, Rank: 4000, Weight: 1.5, IsFragile: true},
		{Price: 100, Reviews: 100000, Rank: 1, Weight: 10},
	}
	for _, l := range cases {
		got := s.OpportunityScore(l)
		if got < 0 || got > 100 {
			t.Fatalf("score %d out of [0,100] for %+v", got, l)
		}
	}
}

// Tightening any single band cannot raise the score: a listing inside the
// narrow band earns at least as much as one only inside the wide band.
func TestAxisMonotonicity(t *testing.T) {
	s := newScorer(StrategyCompetitionBand)
	narrow := models.Listing{Price: 1000, Reviews: 150, Rank: 300, Weight: 0.5}
	widened := narrow
	widened.Price = 2300 // wide band only
	if s.OpportunityScore(widened) > s.OpportunityScore(narrow) {
		t.Fatal("wider price band scored higher than ideal band")
	}
	widened = narrow
	widened.Reviews = 450
	if s.OpportunityScore(widened) > s.OpportunityScore(narrow) {
		t.Fatal("more reviews scored higher")
	}
	widened = narrow
	widened.Rank = 4500
	if s.OpportunityScore(widened) > s.OpportunityScore(narrow) {
		t.Fatal("worse rank scored higher")
	}
	widened = narrow
	widened.Weight = 1.5
	if s.OpportunityScore(widened) > s.OpportunityScore(narrow) {
		t.Fatal("heavier listing scored higher")
	}
}

func TestBrandingPotentialCompetitionBand(t *testing.T) {
	s := newScorer(StrategyCompetitionBand)

	high := models.Listing{Name: "Handmade Jute Planter", Price: 900, Reviews: 120}
	if got := s.BrandingPotential(high); got != models.BrandingHigh {
		t.Fatalf("want High, got %s", got)
	}
	medium := models.Listing{Name: "Steel Tiffin Box", Price: 400, Reviews: 400}
	if got := s.BrandingPotential(medium); got != models.BrandingMedium {
		t.Fatalf("want Medium, got %s", got)
	}
	low := models.Listing{Name: "Anything Crowded", Price: 900, Reviews: 50000}
	if got := s.BrandingPotential(low); got != models.BrandingLow {
		t.Fatalf("want Low, got %s", got)
	}
	platform := models.Listing{Name: "Solimo Towels", Price: 900, Reviews: 120, IsPlatformBrand: true}
	if got := s.BrandingPotential(platform); got == models.BrandingHigh {
		t.Fatal("platform brand must not be High")
	}
}

func TestBrandingPotentialGenericTerms(t *testing.T) {
	s := newScorer(StrategyGenericTerms)

	if got := s.BrandingPotential(models.Listing{Name: "Handwoven Silk Stole", Reviews: 100}); got != models.BrandingLow {
		t.Fatalf("sparse reviews should be Low, got %s", got)
	}
	if got := s.BrandingPotential(models.Listing{Name: "Premium Water Bottle 1L", Reviews: 900}); got != models.BrandingLow {
		t.Fatalf("generic term should be Low, got %s", got)
	}
	if got := s.BrandingPotential(models.Listing{Name: "Handwoven Silk Stole", Reviews: 900}); got != models.BrandingHigh {
		t.Fatalf("distinctive listing should be High, got %s", got)
	}
}
