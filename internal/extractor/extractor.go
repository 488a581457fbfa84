// Package extractor turns the semi-structured text of a scraped listing
// into numbers. Marketplace markup is inconsistent, so every parse degrades
// to a synthetic-but-plausible fallback instead of failing the record.
package extractor

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Price patterns, most to least specific. First pattern yielding a strictly
// positive integer wins.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`₹[\d,]+(?:\.\d{2})?`),
	regexp.MustCompile(`₹[\d,]+`),
	regexp.MustCompile(`[\d,]+(?:\.\d{2})?`),
	regexp.MustCompile(`₹\s*[\d,]+`),
}

// Review patterns. Explicit "N reviews/ratings" phrasing beats bare numbers.
var reviewPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+(?:,\d+)*)\s*(?:reviews?|ratings?)`),
	regexp.MustCompile(`(?i)(\d+(?:,\d+)*)\s*out\s*of\s*5`),
	regexp.MustCompile(`(\d+(?:,\d+)*)`),
}

var rankPattern = regexp.MustCompile(`#(\d+)`)

var priceJunk = strings.NewReplacer("₹", "", ",", "", " ", "")

// FallbackRanges bounds the synthetic values used when a field cannot be
// parsed. Half-open: [Min, Min+Span).
type FallbackRanges struct {
	PriceMin, PriceSpan     int
	ReviewsMin, ReviewsSpan int
	RankMin, RankSpan       int
	WeightMin, WeightSpan   float64
	ExpiryDays              int
}

// DefaultFallbackRanges mirrors the historical synthesis bands: price
// ₹500–2499, reviews 10–1009, rank 100–5099, weight 0.10–0.90 kg, expiry
// within a year.
func DefaultFallbackRanges() FallbackRanges {
	return FallbackRanges{
		PriceMin: 500, PriceSpan: 2000,
		ReviewsMin: 10, ReviewsSpan: 1000,
		RankMin: 100, RankSpan: 5000,
		WeightMin: 0.1, WeightSpan: 0.8,
		ExpiryDays: 365,
	}
}

// Extractor parses listing text. The random source is injected so tests can
// pin the fallback values.
type Extractor struct {
	rng    *rand.Rand
	ranges FallbackRanges
}

func New(rng *rand.Rand) *Extractor {
	return &Extractor{rng: rng, ranges: DefaultFallbackRanges()}
}

func NewWithRanges(rng *rand.Rand, ranges FallbackRanges) *Extractor {
	return &Extractor{rng: rng, ranges: ranges}
}

// Price returns the integer rupee value found in text, or 0 when nothing
// parses. Zero means "unknown"; callers synthesize via FallbackPrice.
func (e *Extractor) Price(text string) int {
	if text == "" {
		return 0
	}
	for _, p := range pricePatterns {
		m := p.FindString(text)
		if m == "" {
			continue
		}
		n, err := strconv.Atoi(strings.SplitN(priceJunk.Replace(m), ".", 2)[0])
		if err == nil && n > 0 {
			return n
		}
	}
	return 0
}

// Reviews returns the review count found in text, or 0 when unknown.
func (e *Extractor) Reviews(text string) int {
	if text == "" {
		return 0
	}
	for _, p := range reviewPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err == nil && n > 0 {
			return n
		}
	}
	return 0
}

// Rank parses a leading "#N" bestseller badge, or returns 0 when absent.
func (e *Extractor) Rank(text string) int {
	m := rankPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func (e *Extractor) FallbackPrice() int {
	return e.rng.Intn(e.ranges.PriceSpan) + e.ranges.PriceMin
}

func (e *Extractor) FallbackReviews() int {
	return e.rng.Intn(e.ranges.ReviewsSpan) + e.ranges.ReviewsMin
}

func (e *Extractor) FallbackRank() int {
	return e.rng.Intn(e.ranges.RankSpan) + e.ranges.RankMin
}

// FallbackWeight synthesizes a weight in kg, rounded to two decimals.
// Weight never appears on bestseller pages, so it is always synthetic.
func (e *Extractor) FallbackWeight() float64 {
	w := e.rng.Float64()*e.ranges.WeightSpan + e.ranges.WeightMin
	return float64(int(w*100+0.5)) / 100
}

// FallbackExpiry synthesizes an expiry date for a perishable listing within
// the configured horizon from now.
func (e *Extractor) FallbackExpiry(now time.Time) string {
	d := e.rng.Intn(e.ranges.ExpiryDays)
	return now.AddDate(0, 0, d).Format("2006-01-02")
}
