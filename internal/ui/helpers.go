package ui

import (
	"strings"

	"github.com/grayfold3/flashview/internal/report"
)

// flattenSummary turns the per-product summary into a flat, ordered row list:
// products sorted by name, builds kept in summary order (oldest first).
func flattenSummary(summary report.Summary) []row {
	var rows []row
	for _, product := range summary.Products() {
		for _, entry := range summary[product] {
			rows = append(rows, row{product: product, entry: entry})
		}
	}
	return rows
}

// matchesFilter reports whether a row matches the case-insensitive query.
// An empty query matches everything.
func matchesFilter(r row, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.product), q) {
		return true
	}
	if strings.Contains(strings.ToLower(r.entry.Name), q) {
		return true
	}
	if r.entry.Version != nil && strings.Contains(strings.ToLower(*r.entry.Version), q) {
		return true
	}
	return false
}

// truncate shortens s to at most width runes, ending with an ellipsis when
// anything was cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// wrap breaks text into lines no longer than width, on word boundaries where
// possible.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len([]rune(word)) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len([]rune(word))
	}
	return b.String()
}
