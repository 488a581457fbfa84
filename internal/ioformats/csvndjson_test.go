package ioformats

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"marketscout/internal/models"
)

func sample() []models.Listing {
	return []models.Listing{
		{
			ID: "p-1", Name: "JIALTO Adhesive Wall Hook", Price: 149, Reviews: 12179,
			Rank: 3, Weight: 0.1, Category: "Home & Kitchen", Brand: "JIALTO",
			BrandingPotential: models.BrandingLow, OpportunityScore: 40,
			URL: "https://www.amazon.in/s?k=JIALTO",
		},
		{
			ID: "p-2", Name: "Tata Salt 1 Kg", Price: 26, Reviews: 74059,
			Rank: 1, Weight: 1.0, Category: "Grocery & Gourmet Foods", Brand: "Tata",
			IsPerishable: true, ExpiryDate: "2026-06-15",
			BrandingPotential: models.BrandingLow, OpportunityScore: 15,
			URL: "https://www.amazon.in/s?k=Tata+Salt",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample()); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("want header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "id" || rows[1][1] != "JIALTO Adhesive Wall Hook" {
		t.Fatalf("unexpected rows: %v", rows[:2])
	}
	if rows[2][13] != "2026-06-15" {
		t.Fatalf("expiry column wrong: %v", rows[2])
	}
}

func TestWriteNDJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNDJSON(&buf, sample()); err != nil {
		t.Fatalf("write ndjson: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], `"id":"p-1"`) {
		t.Fatalf("bad first line: %s", lines[0])
	}
	// Non-perishable listings must not serialize an expiry date.
	if strings.Contains(lines[0], "expiryDate") {
		t.Fatalf("expiry leaked on non-perishable: %s", lines[0])
	}
}
