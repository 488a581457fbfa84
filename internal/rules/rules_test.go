package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	r := Default()
	if r.MinTitleLength != 10 {
		t.Fatalf("min title length = %d", r.MinTitleLength)
	}
	if r.DefaultCategory != "General" {
		t.Fatalf("default category = %q", r.DefaultCategory)
	}
	found := false
	for _, term := range r.SizeTerms {
		if term == "medium" {
			found = true
		}
	}
	if !found {
		t.Fatal("size terms must contain 'medium'")
	}
	if len(r.CategoryGroups) == 0 || r.CategoryGroups[0].Label != "Sports & Fitness" {
		t.Fatal("sports group must come first")
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	yaml := "fragile_terms:\n  - porcelain\nmin_title_length: 5\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(r.FragileTerms) != 1 || r.FragileTerms[0] != "porcelain" {
		t.Fatalf("override not applied: %v", r.FragileTerms)
	}
	if r.MinTitleLength != 5 {
		t.Fatalf("min title length override not applied: %d", r.MinTitleLength)
	}
	// Untouched lists keep their defaults.
	if len(r.PlatformBrandTerms) == 0 || r.PlatformBrandTerms[0] != "amazon basics" {
		t.Fatal("defaults lost during merge")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/rules.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
