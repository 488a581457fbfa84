package main

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketscout/internal/classifier"
	"marketscout/internal/extractor"
	"marketscout/internal/models"
	"marketscout/internal/pipeline"
	"marketscout/internal/scoring"
	"marketscout/internal/scraper"
	"marketscout/internal/seed"
	"marketscout/pkg/logger"
)

func newTestApp(baseURL string) *app {
	l := logger.New()
	cls := classifier.New(nil)
	ext := extractor.New(rand.New(rand.NewSource(1)))
	pipe := pipeline.New(ext, cls, scoring.New(scoring.StrategyCompetitionBand, cls))
	client := scraper.NewHTTPClient(2*time.Second, time.Second, 1<<20)
	return &app{
		log:     l,
		pipe:    pipe,
		scraper: scraper.New(client, l, baseURL, 2, 0),
	}
}

type listingsResponse struct {
	Success  bool             `json:"success"`
	Source   string           `json:"source"`
	Counts   models.Counts    `json:"counts"`
	Products []models.Listing `json:"products"`
}

func TestAllProductsFallsBackToSeed(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	a := newTestApp(upstream.URL)
	rec := httptest.NewRecorder()
	a.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/all", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body listingsResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success {
		t.Fatal("want success=true")
	}
	if body.Source != "seed" {
		t.Fatalf("source = %q, want seed", body.Source)
	}
	if want := len(seed.Batch("all")); len(body.Products) != want {
		t.Fatalf("want the full %d-listing seed batch, got %d", want, len(body.Products))
	}
	for _, p := range body.Products {
		if p.Price <= 0 || p.OpportunityScore < 0 || p.OpportunityScore > 100 {
			t.Fatalf("unenriched product in seed response: %+v", p)
		}
	}
}

func TestScrapeFallsBackToSeedPerCategory(t *testing.T) {
	// Unroutable upstream: the connection fails immediately.
	a := newTestApp("http://127.0.0.1:1")
	rec := httptest.NewRecorder()
	a.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scrape?category=electronics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body listingsResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Source != "seed" {
		t.Fatalf("source = %q, want seed", body.Source)
	}
	if want := len(seed.Batch("electronics")); len(body.Products) != want {
		t.Fatalf("want %d electronics seed listings, got %d", want, len(body.Products))
	}
}

func TestFilterRejectsInvertedRange(t *testing.T) {
	a := newTestApp("http://127.0.0.1:1")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products/filter",
		strings.NewReader(`{"minPrice":2000,"maxPrice":500}`))
	a.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if success, _ := body["success"].(bool); success {
		t.Fatal("want success=false on inverted range")
	}
}

func TestFilterRejectsMalformedBody(t *testing.T) {
	a := newTestApp("http://127.0.0.1:1")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products/filter", strings.NewReader("not json"))
	a.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCategoriesListsClosedSlugSet(t *testing.T) {
	a := newTestApp("http://127.0.0.1:1")
	rec := httptest.NewRecorder()
	a.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Categories []string `json:"categories"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Categories) != len(seed.Slugs) {
		t.Fatalf("want %d slugs, got %d", len(seed.Slugs), len(body.Categories))
	}
}
