package ioformats

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"marketscout/internal/models"
)

var csvHeader = []string{
	"id", "name", "price", "reviews", "rank", "weight", "category", "brand",
	"branding_potential", "opportunity_score", "platform_brand", "fragile",
	"perishable", "expiry_date", "electronics", "size_ambiguity", "url",
}

// WriteCSV writes the listing table with a header row.
func WriteCSV(w io.Writer, listings []models.Listing) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, l := range listings {
		row := []string{
			l.ID,
			l.Name,
			strconv.Itoa(l.Price),
			strconv.Itoa(l.Reviews),
			strconv.Itoa(l.Rank),
			strconv.FormatFloat(l.Weight, 'f', 2, 64),
			l.Category,
			l.Brand,
			string(l.BrandingPotential),
			strconv.Itoa(l.OpportunityScore),
			strconv.FormatBool(l.IsPlatformBrand),
			strconv.FormatBool(l.IsFragile),
			strconv.FormatBool(l.IsPerishable),
			l.ExpiryDate,
			strconv.FormatBool(l.IsElectronics),
			strconv.FormatBool(l.HasSizeAmbiguity),
			l.URL,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteNDJSON writes one JSON object per line.
func WriteNDJSON(w io.Writer, listings []models.Listing) error {
	enc := json.NewEncoder(w)
	for _, l := range listings {
		if err := enc.Encode(l); err != nil {
			return err
		}
	}
	return nil
}
