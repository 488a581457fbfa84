package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"marketscout/internal/classifier"
	"marketscout/internal/config"
	"marketscout/internal/extractor"
	"marketscout/internal/ioformats"
	"marketscout/internal/models"
	"marketscout/internal/pipeline"
	"marketscout/internal/rules"
	"marketscout/internal/scoring"
	"marketscout/internal/scraper"
	"marketscout/internal/seed"
	"marketscout/pkg/logger"
)

func main() {
	category := flag.String("category", "all", "bestseller category slug")
	mode := flag.String("mode", "core+user", "pipeline mode: raw, core, core+user, comprehensive")
	seedOnly := flag.Bool("seed-only", false, "skip the live fetch and use the seed batch")
	out := flag.String("output", "", "output file (default stdout)")
	format := flag.String("format", "csv", "output format: csv or ndjson")
	flag.Parse()

	l := logger.New()
	cfg := config.Load()

	r := rules.Default()
	if cfg.RulesPath != "" {
		loaded, err := rules.Load(cfg.RulesPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "rules:", err)
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
	pipe := pipeline.New(extractor.New(rng), cls, scoring.New(scoring.Strategy(cfg.Strategy), cls))

	var raw []models.RawListing
	if *seedOnly {
		raw = seed.Batch(*category)
	} else {
		client := scraper.NewHTTPClient(
			time.Duration(cfg.FetchMs)*time.Millisecond,
			time.Duration(cfg.DialMs)*time.Millisecond,
			int64(cfg.SizeCapMB)<<20,
		)
		scr := scraper.New(client, l, cfg.BaseURL, cfg.Concurrency,
			time.Duration(cfg.RateLimitMs)*time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		var err error
		if *mode == string(pipeline.ModeComprehensive) {
			raw, err = scr.ScrapeAll(ctx)
		} else {
			raw, err = scr.Scrape(ctx, *category)
		}
		if err != nil || len(raw) == 0 {
			l.Warnf("live fetch unavailable, using seed batch")
			raw = seed.Batch(*category)
		}
	}

	res, err := pipe.Run(raw, &models.FilterConfig{}, pipeline.Mode(*mode))
	if err != nil {
		fmt.Fprintln(os.Stderr, "pipeline:", err)
		os.Exit(1)
	}
	l.Infof("total=%d deduped=%d filtered=%d",
		res.Counts.Total, res.Counts.Deduped, res.Counts.Filtered)

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintln(os.Stderr, "create output:", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	switch *format {
	case "csv":
		err = ioformats.WriteCSV(w, res.Results)
	case "ndjson":
		err = ioformats.WriteNDJSON(w, res.Results)
	default:
		err = fmt.Errorf("unknown format %q", *format)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "write output:", err)
		os.Exit(1)
	}
}
