// Package rules holds the single keyword table every classifier function
// reads. Marketplace heuristics change more often than code, so the
// built-in defaults can be overridden from a YAML file.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// CategoryGroup is one entry of the ordered title→category fallback. Earlier
// groups win on keyword overlap, so sports terms are checked before
// electronics to keep fitness gear out of the electronics bucket.
type CategoryGroup struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

type Rules struct {
	PlatformBrandTerms []string `yaml:"platform_brand_terms"`
	FragileTerms       []string `yaml:"fragile_terms"`
	PerishableTerms    []string `yaml:"perishable_terms"`
	SizeTerms          []string `yaml:"size_terms"`
	ElectronicsTerms   []string `yaml:"electronics_terms"`
	InvalidTerms       []string `yaml:"invalid_terms"`
	GenericTerms       []string `yaml:"generic_terms"`

	MinTitleLength int `yaml:"min_title_length"`

	CategoryGroups  []CategoryGroup `yaml:"category_groups"`
	DefaultCategory string          `yaml:"default_category"`
}

// Default returns the built-in keyword table.
func Default() *Rules {
	return &Rules{
		PlatformBrandTerms: []string{
			"amazon basics", "amazon brand", "presto", "symbol", "solimo",
		},
		FragileTerms: []string{
			"glass", "ceramic", "crystal", "mirror", "vase",
		},
		PerishableTerms: []string{
			"grocery", "food", "beverage", "snacks",
		},
		SizeTerms: []string{
			"size", "small", "medium", "large", "xl", "xxl", "xxxl", "inch", "cm",
			"cargo", "polo", "t-shirt", "shirt", "pants", "shorts", "jeans",
			"available in", "combo", "pack", "variations", "sizes", "fit",
			"regular fit", "slim fit", "loose fit", "tight fit",
		},
		ElectronicsTerms: []string{
			"phone", "mobile", "laptop", "computer", "tablet", "headphone", "speaker",
			"camera", "tv", "monitor", "keyboard", "mouse", "charger", "cable", "usb",
			"bluetooth", "wifi", "led", "battery", "power bank", "extension board",
			"multi plug", "adapter", "juicer", "mixer", "grinder", "blender", "appliance",
			"electronic", "digital", "smart", "wireless", "electric", "power", "volt",
			"amp", "watt", "socket", "plug", "cord",
		},
		InvalidTerms: []string{
			"credit card", "bill", "payment", "service", "subscription", "gift card",
			"voucher", "coupon", "offer", "deal", "promotion", "advertisement",
			"sponsored", "banner", "click here", "learn more",
		},
		GenericTerms: []string{
			"bottle", "cable", "cover", "case", "adapter", "charger", "holder",
			"stand", "mount", "grip", "protector", "screen guard", "tempered glass",
			"wire", "cord", "plug", "socket", "extension", "splitter",
			"hub", "dock", "station", "base", "support", "bracket", "clamp",
			"strap", "band", "chain", "ring", "hook", "clip", "pin", "button",
		},
		MinTitleLength: 10,
		CategoryGroups: []CategoryGroup{
			{Label: "Sports & Fitness", Keywords: []string{
				"yoga", "gym", "dumbbell", "fitness", "exercise", "cricket", "football",
				"badminton", "cycling", "running shoes", "sports",
			}},
			{Label: "Electronics", Keywords: []string{
				"phone", "laptop", "earbuds", "headphone", "speaker", "charger",
				"camera", "tablet", "smartwatch", "bluetooth",
			}},
			{Label: "Home & Kitchen", Keywords: []string{
				"kitchen", "cookware", "storage", "organizer", "bedsheet", "curtain",
				"lamp", "mop", "utensil", "container", "hook",
			}},
			{Label: "Clothing & Accessories", Keywords: []string{
				"t-shirt", "shirt", "jeans", "kurta", "saree", "trousers", "jacket",
				"innerwear", "socks",
			}},
			{Label: "Beauty & Personal Care", Keywords: []string{
				"cream", "serum", "shampoo", "soap", "lotion", "lipstick", "sunscreen",
				"face wash", "trimmer",
			}},
			{Label: "Bags, Wallets and Luggage", Keywords: []string{
				"backpack", "trolley", "suitcase", "wallet", "handbag", "luggage",
				"duffel",
			}},
			{Label: "Shoes & Handbags", Keywords: []string{
				"shoes", "sandals", "flip-flop", "slippers", "sneakers", "heels",
			}},
			{Label: "Grocery & Gourmet Foods", Keywords: []string{
				"salt", "dal", "oil", "rice", "atta", "masala", "tea", "coffee",
				"biscuit", "chocolate",
			}},
			{Label: "Books", Keywords: []string{
				"book", "novel", "notebook", "diary",
			}},
			{Label: "Toys & Games", Keywords: []string{
				"toy", "puzzle", "board game", "building blocks", "doll",
			}},
			{Label: "Automotive", Keywords: []string{
				"car", "bike", "helmet", "tyre", "dashboard", "wiper",
			}},
		},
		DefaultCategory: "General",
	}
}

// Load reads a YAML override file. Fields left empty in the file keep their
// defaults, so an override only needs to name the lists it changes.
func Load(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: read %q: %w", path, err)
	}
	r := Default()
	var override Rules
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("rules: parse %q: %w", path, err)
	}
	r.merge(&override)
	return r, nil
}

func (r *Rules) merge(o *Rules) {
	if len(o.PlatformBrandTerms) > 0 {
		r.PlatformBrandTerms = o.PlatformBrandTerms
	}
	if len(o.FragileTerms) > 0 {
		r.FragileTerms = o.FragileTerms
	}
	if len(o.PerishableTerms) > 0 {
		r.PerishableTerms = o.PerishableTerms
	}
	if len(o.SizeTerms) > 0 {
		r.SizeTerms = o.SizeTerms
	}
	if len(o.ElectronicsTerms) > 0 {
		r.ElectronicsTerms = o.ElectronicsTerms
	}
	if len(o.InvalidTerms) > 0 {
		r.InvalidTerms = o.InvalidTerms
	}
	if len(o.GenericTerms) > 0 {
		r.GenericTerms = o.GenericTerms
	}
	if o.MinTitleLength > 0 {
		r.MinTitleLength = o.MinTitleLength
	}
	if len(o.CategoryGroups) > 0 {
		r.CategoryGroups = o.CategoryGroups
	}
	if o.DefaultCategory != "" {
		r.DefaultCategory = o.DefaultCategory
	}
}
