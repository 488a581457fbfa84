package extractor

import (
	"math/rand"
	"testing"
	"time"
)

func newTest() *Extractor {
	return New(rand.New(rand.NewSource(42)))
}

func TestPrice(t *testing.T) {
	e := newTest()
	cases := []struct {
		in   string
		want int
	}{
		{"₹1,299.00", 1299},
		{"₹1,299", 1299},
		{"1,299.00", 1299},
		{"₹ 1,299", 1299},
		{"₹26", 26},
		{"no price info", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := e.Price(c.in); got != c.want {
			t.Fatalf("Price(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestReviews(t *testing.T) {
	e := newTest()
	cases := []struct {
		in   string
		want int
	}{
		{"1,234 reviews", 1234},
		{"74,059 ratings", 74059},
		{"892 Ratings", 892},
		{"123", 123},
		{"no reviews yet", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := e.Reviews(c.in); got != c.want {
			t.Fatalf("Reviews(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestRank(t *testing.T) {
	e := newTest()
	if got := e.Rank("#15"); got != 15 {
		t.Fatalf("Rank(#15) = %d", got)
	}
	if got := e.Rank("Best Seller"); got != 0 {
		t.Fatalf("Rank without badge = %d, want 0", got)
	}
}

func TestFallbacksStayInRange(t *testing.T) {
	e := newTest()
	r := DefaultFallbackRanges()
	for i := 0; i < 200; i++ {
		if p := e.FallbackPrice(); p < r.PriceMin || p >= r.PriceMin+r.PriceSpan {
			t.Fatalf("fallback price %d out of range", p)
		}
		if v := e.FallbackReviews(); v < r.ReviewsMin || v >= r.ReviewsMin+r.ReviewsSpan {
			t.Fatalf("fallback reviews %d out of range", v)
		}
		if v := e.FallbackRank(); v < r.RankMin || v >= r.RankMin+r.RankSpan {
			t.Fatalf("fallback rank %d out of range", v)
		}
		if w := e.FallbackWeight(); w < r.WeightMin || w > r.WeightMin+r.WeightSpan {
			t.Fatalf("fallback weight %v out of range", w)
		}
	}
}

func TestFallbacksDeterministicUnderSeed(t *testing.T) {
	a := New(rand.New(rand.NewSource(7)))
	b := New(rand.New(rand.NewSource(7)))
	for i := 0; i < 50; i++ {
		if a.FallbackPrice() != b.FallbackPrice() {
			t.Fatal("same seed produced different fallback prices")
		}
	}
}

func TestFallbackExpiryWithinHorizon(t *testing.T) {
	e := newTest()
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		d, err := time.Parse("2006-01-02", e.FallbackExpiry(now))
		if err != nil {
			t.Fatalf("bad expiry format: %v", err)
		}
		if d.Before(now.AddDate(0, 0, -1)) || d.After(now.AddDate(0, 0, 365)) {
			t.Fatalf("expiry %v outside horizon", d)
		}
	}
}
