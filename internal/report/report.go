// Package report reshapes builds payloads into the per-product summary and
// handles JSON output formatting.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/grayfold3/flashview/internal/flashstation"
)

// Entry is one summarized build within a product category. Description and
// Version serialize as null when the service did not provide them.
type Entry struct {
	Name             string  `json:"name"`
	Description      *string `json:"description"`
	LatestInCategory bool    `json:"latest_in_category"`
	Version          *string `json:"version"`
	URL              string  `json:"url"`
}

// Summary maps a product id to its builds, oldest first.
type Summary map[string][]Entry

// Products returns the summary's product ids in sorted order.
func (s Summary) Products() []string {
	products := make([]string, 0, len(s))
	for p := range s {
		products = append(products, p)
	}
	sort.Strings(products)
	return products
}

// Summarize reshapes the builds payload into the per-product summary: builds
// sorted by numeric build id ascending, grouped by product. When
// includeGeneric is false, device-agnostic (GSI) products are dropped.
func Summarize(builds []flashstation.Build, includeGeneric bool) Summary {
	sorted := append([]flashstation.Build(nil), builds...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Ordinal() < sorted[j].Ordinal()
	})

	summary := make(Summary)
	for _, b := range sorted {
		if !includeGeneric && flashstation.IsGenericProduct(b.Product) {
			continue
		}
		summary[b.Product] = append(summary[b.Product], newEntry(b))
	}
	return summary
}

func newEntry(b flashstation.Build) Entry {
	entry := Entry{
		Name:             b.ReleaseCandidateName,
		LatestInCategory: b.LatestInCategory(),
		URL:              b.FactoryImageDownloadURL,
	}
	if version, ok := b.VersionLabel(); ok {
		entry.Version = &version
	}
	if notes, ok := b.ReleaseNotes(); ok {
		entry.Description = &notes
	}
	return entry
}

// WriteJSON emits v as 4-space indented JSON followed by a newline. Passing a
// json.RawMessage relays a service payload untouched apart from indentation.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
