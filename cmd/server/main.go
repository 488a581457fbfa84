package main

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"marketscout/internal/classifier"
	"marketscout/internal/config"
	"marketscout/internal/extractor"
	"marketscout/internal/models"
	"marketscout/internal/pipeline"
	"marketscout/internal/rules"
	"marketscout/internal/scoring"
	"marketscout/internal/scraper"
	"marketscout/internal/seed"
	"marketscout/pkg/logger"
)

type app struct {
	log     *logger.Logger
	pipe    *pipeline.Pipeline
	scraper *scraper.Scraper
}

func main() {
	l := logger.New()
	cfg := config.Load()

	r := rules.Default()
	if cfg.RulesPath != "" {
		loaded, err := rules.Load(cfg.RulesPath)
		if err != nil {
			l.Errorf("rules: %v", err)
			os.Exit(1)
		}
		r = loaded
	}

	seedVal := cfg.RandSeed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedVal))

	cls := classifier.New(r)
	ext := extractor.New(rng)
	scorer := scoring.New(scoring.Strategy(cfg.Strategy), cls)
	pipe := pipeline.New(ext, cls, scorer)

	client := scraper.NewHTTPClient(
		time.Duration(cfg.FetchMs)*time.Millisecond,
		time.Duration(cfg.DialMs)*time.Millisecond,
		int64(cfg.SizeCapMB)<<20,
	)
	scr := scraper.New(client, l, cfg.BaseURL, cfg.Concurrency,
		time.Duration(cfg.RateLimitMs)*time.Millisecond)

	a := &app{log: l, pipe: pipe, scraper: scr}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      logRequest(l, a.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		l.Infof("server listening on %s", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			l.Errorf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	l.Infof("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Infof("bye")
}

func (a *app) routes() *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", a.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/scrape", a.handleScrape).Methods(http.MethodGet)
	api.HandleFunc("/categories", a.handleCategories).Methods(http.MethodGet)
	api.HandleFunc("/products/all", a.handleAllProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/filter", a.handleFilter).Methods(http.MethodPost)
	api.HandleFunc("/products/comprehensive", a.handleComprehensive).Methods(http.MethodPost)
	return router
}

// fetchOrSeed hides upstream failure from the pipeline: a failed or empty
// live fetch yields the fixed seed batch instead.
func (a *app) fetchOrSeed(ctx context.Context, category string) ([]models.RawListing, string) {
	raw, err := a.scraper.Scrape(ctx, category)
	if err != nil || len(raw) == 0 {
		if err != nil {
			a.log.Warnf("upstream fetch failed, using seed batch: %v", err)
		}
		return seed.Batch(category), "seed"
	}
	return raw, "scraped"
}

func (a *app) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *app) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": seed.Slugs,
	})
}

// GET /api/scrape?category=<slug> — enrichment only, no filtering.
func (a *app) handleScrape(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "all"
	}
	raw, source := a.fetchOrSeed(r.Context(), category)
	res, err := a.pipe.Run(raw, nil, pipeline.ModeRaw)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errBody(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"count":    len(res.Results),
		"category": category,
		"source":   source,
		"counts":   res.Counts,
		"products": res.Results,
	})
}

// GET /api/products/all — every enriched listing, unfiltered.
func (a *app) handleAllProducts(w http.ResponseWriter, r *http.Request) {
	raw, source := a.fetchOrSeed(r.Context(), "all")
	res, err := a.pipe.Run(raw, nil, pipeline.ModeRaw)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errBody(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"count":    len(res.Results),
		"source":   source,
		"counts":   res.Counts,
		"products": res.Results,
	})
}

// POST /api/products/filter — core baseline plus the caller's filter layer.
func (a *app) handleFilter(w http.ResponseWriter, r *http.Request) {
	var cfg models.FilterConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, errBody(errors.New("invalid payload")))
		return
	}
	if err := cfg.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errBody(err))
		return
	}
	raw, source := a.fetchOrSeed(r.Context(), "all")
	res, err := a.pipe.Run(raw, &cfg, pipeline.ModeCoreAndUser)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errBody(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"count":    len(res.Results),
		"source":   source,
		"counts":   res.Counts,
		"filters":  cfg,
		"products": res.Results,
	})
}

// POST /api/products/comprehensive — every category aggregated, deduped,
// then filtered like /filter.
func (a *app) handleComprehensive(w http.ResponseWriter, r *http.Request) {
	var cfg models.FilterConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, errBody(errors.New("invalid payload")))
		return
	}
	if err := cfg.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errBody(err))
		return
	}
	raw, err := a.scraper.ScrapeAll(r.Context())
	source := "scraped"
	if err != nil {
		a.log.Warnf("upstream fetch failed, using seed batch: %v", err)
		raw = seed.Batch("all")
		source = "seed"
	}
	res, err := a.pipe.Run(raw, &cfg, pipeline.ModeComprehensive)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errBody(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"count":    len(res.Results),
		"source":   source,
		"counts":   res.Counts,
		"filters":  cfg,
		"products": res.Results,
	})
}

func errBody(err error) map[string]any {
	return map[string]any{"success": false, "error": err.Error()}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func logRequest(l *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		l.Infof("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
