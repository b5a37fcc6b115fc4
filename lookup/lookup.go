// Package lookup serves the static reference tables behind filter dropdowns
// and search suggestions. Tables are embedded JSON, loaded once and read-only.
package lookup

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed data/*.json
var dataFS embed.FS

// Category is a service category used to populate filter dropdowns.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Country is a lookup entry for party locations.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var (
	loadOnce   sync.Once
	loadErr    error
	categories []Category
	countries  []Country
)

func load() error {
	loadOnce.Do(func() {
		raw, err := dataFS.ReadFile("data/categories.json")
		if err != nil {
			loadErr = fmt.Errorf("lookup: read categories: %w", err)
			return
		}
		if err := json.Unmarshal(raw, &categories); err != nil {
			loadErr = fmt.Errorf("lookup: parse categories: %w", err)
			return
		}

		raw, err = dataFS.ReadFile("data/countries.json")
		if err != nil {
			loadErr = fmt.Errorf("lookup: read countries: %w", err)
			return
		}
		if err := json.Unmarshal(raw, &countries); err != nil {
			loadErr = fmt.Errorf("lookup: parse countries: %w", err)
		}
	})
	return loadErr
}

// Categories returns all service categories in file order.
func Categories() ([]Category, error) {
	if err := load(); err != nil {
		return nil, err
	}
	out := make([]Category, len(categories))
	copy(out, categories)
	return out, nil
}

// CategoryByID looks a category up by its ID.
func CategoryByID(id string) (Category, bool) {
	if err := load(); err != nil {
		return Category{}, false
	}
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Countries returns the country table in file order.
func Countries() ([]Country, error) {
	if err := load(); err != nil {
		return nil, err
	}
	out := make([]Country, len(countries))
	copy(out, countries)
	return out, nil
}

// CountryName resolves a country code to its display name.
func CountryName(code string) (string, bool) {
	if err := load(); err != nil {
		return "", false
	}
	for _, c := range countries {
		if strings.EqualFold(c.Code, code) {
			return c.Name, true
		}
	}
	return "", false
}

// SuggestCategories returns category names matching the prefix,
// case-insensitively, for search-as-you-type suggestions. An empty prefix
// suggests nothing.
func SuggestCategories(prefix string) []string {
	if prefix == "" {
		return nil
	}
	if err := load(); err != nil {
		return nil
	}
	p := strings.ToLower(prefix)
	var out []string
	for _, c := range categories {
		if strings.HasPrefix(strings.ToLower(c.Name), p) {
			out = append(out, c.Name)
		}
	}
	return out
}
