// Package scraper is the upstream data-source collaborator: it fetches
// bestseller pages and yields raw listing records. It never produces a
// canonical listing itself; that is the pipeline's job.
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"marketscout/internal/models"
	"marketscout/internal/seed"
	"marketscout/pkg/logger"
)

const maxListingsPerPage = 50

var inlineReviewRe = regexp.MustCompile(`(?i)\d+(?:,\d+)*\s*(?:reviews?|ratings?)`)

type Scraper struct {
	client  *HTTPClient
	log     *logger.Logger
	baseURL string

	// comprehensive-mode pacing
	concurrency int
	delay       time.Duration
}

func New(client *HTTPClient, log *logger.Logger, baseURL string, concurrency int, delay time.Duration) *Scraper {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Scraper{
		client:      client,
		log:         log,
		baseURL:     strings.TrimRight(baseURL, "/"),
		concurrency: concurrency,
		delay:       delay,
	}
}

// BestsellerURL builds the page URL for a category slug.
func (s *Scraper) BestsellerURL(category string) string {
	if category == "" || category == "all" {
		return s.baseURL + "/gp/bestsellers"
	}
	return s.baseURL + "/gp/bestsellers/" + category
}

// Scrape fetches one category page and extracts raw listings. An error or
// an empty page is the caller's cue to use the seed batch.
func (s *Scraper) Scrape(ctx context.Context, category string) ([]models.RawListing, error) {
	body, err := s.client.Fetch(ctx, s.BestsellerURL(category))
	if err != nil {
		return nil, fmt.Errorf("scrape %s: %w", category, err)
	}
	defer body.Close()

	doc, err := parseHTML(body)
	if err != nil {
		return nil, fmt.Errorf("scrape %s: %w", category, err)
	}

	listings := s.extract(doc)
	s.log.Infof("scraped %d listings for category %s", len(listings), category)
	return listings, nil
}

// ScrapeAll aggregates every known category with bounded concurrency and a
// fixed inter-request delay, for comprehensive mode. Per-category failures
// are logged and skipped; only a fully empty aggregate is an error.
func (s *Scraper) ScrapeAll(ctx context.Context) ([]models.RawListing, error) {
	categories := seed.Slugs[1:] // skip "all"

	var mu sync.Mutex
	var out []models.RawListing

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup
	for _, cat := range categories {
		cat := cat
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer func() { <-sem; wg.Done() }()
			listings, err := s.Scrape(ctx, cat)
			if err != nil {
				s.log.Warnf("comprehensive: %v", err)
			} else {
				mu.Lock()
				out = append(out, listings...)
				mu.Unlock()
			}
			if s.delay > 0 {
				time.Sleep(s.delay)
			}
		}()
	}
	wg.Wait()

	if len(out) == 0 {
		return nil, fmt.Errorf("comprehensive scrape: no listings from any category")
	}
	return out, nil
}

func parseHTML(r io.Reader) (*goquery.Document, error) {
	buf := new(bytes.Buffer)
	_, _ = io.Copy(buf, r)
	data := buf.Bytes()

	enc, _, _ := charset.DetermineEncoding(data, "")
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if !utf8.Valid(data) {
			return nil, err
		}
		utf8data = data
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
}

// extract walks the selector fallback chains. Category sections are tried
// first so listings inherit a section heading as their category hint; then
// the generic card selectors; finally bare product links.
func (s *Scraper) extract(doc *goquery.Document) []models.RawListing {
	var listings []models.RawListing

	doc.Find(`div[data-testid="category-section"]`).Each(func(_ int, section *goquery.Selection) {
		hint := strings.TrimSpace(section.Find("h2").First().Text())
		if hint == "" {
			hint = strings.TrimSpace(section.Find(`[data-testid="category-title"]`).First().Text())
		}
		section.Find(`div[data-testid="grid-deals-container"] > div, .a-carousel-card, [data-testid="product-card"]`).
			Each(func(_ int, el *goquery.Selection) {
				if len(listings) >= maxListingsPerPage {
					return
				}
				if raw, ok := s.extractCard(el, hint); ok {
					listings = append(listings, raw)
				}
			})
	})
	if len(listings) > 0 {
		return listings
	}

	for _, selector := range []string{
		".zg-item-immersion", ".zg-item", `[data-testid="product-card"]`,
		".a-carousel-card", `div[data-testid="deal-card"]`,
	} {
		doc.Find(selector).Each(func(_ int, el *goquery.Selection) {
			if len(listings) >= maxListingsPerPage {
				return
			}
			if raw, ok := s.extractCard(el, ""); ok {
				listings = append(listings, raw)
			}
		})
		if len(listings) > 0 {
			return listings
		}
	}

	doc.Find(`a[href*="/dp/"]`).Each(func(_ int, link *goquery.Selection) {
		if len(listings) >= maxListingsPerPage {
			return
		}
		title := strings.TrimSpace(link.Find("span").First().Text())
		href, _ := link.Attr("href")
		if title == "" || href == "" {
			return
		}
		listings = append(listings, models.RawListing{Title: title, SourceURL: href})
	})
	return listings
}

func (s *Scraper) extractCard(el *goquery.Selection, hint string) (models.RawListing, bool) {
	title := firstText(el,
		`[data-testid="product-title"]`,
		"h3",
		`a[data-testid="deal-link"] span`,
		".a-link-normal span",
		"span",
	)
	if title == "" {
		title = strings.TrimSpace(el.Text())
	}
	if title == "" {
		return models.RawListing{}, false
	}

	priceText := firstText(el,
		".a-price-whole",
		".a-price .a-offscreen",
		`[data-testid="price"]`,
		".a-price",
	)
	reviewText := firstText(el,
		".a-size-small .a-size-base",
		`[data-testid="review-count"]`,
		".a-icon-alt",
	)
	if reviewText == "" {
		reviewText = inlineReviewRe.FindString(el.Text())
	}
	rankText := firstText(el, ".zg-badge-text", ".a-badge-text")

	href, _ := el.Find("a[href]").First().Attr("href")

	return models.RawListing{
		Title:        title,
		PriceText:    priceText,
		ReviewText:   reviewText,
		RankText:     rankText,
		CategoryHint: hint,
		SourceURL:    href,
	}, true
}

func firstText(el *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		if t := strings.TrimSpace(el.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}
