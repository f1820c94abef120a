package ui

import (
	"testing"

	"github.com/grayfold3/flashview/internal/report"
)

func strptr(s string) *string { return &s }

func testSummary() report.Summary {
	return report.Summary{
		"komodo": {
			{Name: "AP4A.250105.002", Version: strptr("15.0.0"), URL: "https://dl/1.zip"},
			{Name: "BP1A.250205.001", Version: strptr("16.0.0"), URL: "https://dl/2.zip", LatestInCategory: true},
		},
		"komodo_beta": {
			{Name: "ZP1A.250120.001", Version: strptr("Android 16 Beta - Beta 2"), URL: "https://dl/b.zip"},
		},
	}
}

func TestFlattenSummary_OrdersByProductThenBuild(t *testing.T) {
	t.Parallel()

	rows := flattenSummary(testSummary())
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0].product != "komodo" || rows[0].entry.Name != "AP4A.250105.002" {
		t.Fatalf("row 0 = %s/%s, want komodo/AP4A.250105.002", rows[0].product, rows[0].entry.Name)
	}
	if rows[2].product != "komodo_beta" {
		t.Fatalf("row 2 product = %s, want komodo_beta", rows[2].product)
	}
}

func TestMatchesFilter(t *testing.T) {
	t.Parallel()

	r := row{product: "komodo_beta", entry: report.Entry{
		Name:    "ZP1A.250120.001",
		Version: strptr("Android 16 Beta - Beta 2"),
	}}

	cases := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"  ", true},
		{"beta", true},
		{"KOMODO", true},
		{"zp1a", true},
		{"android 16", true},
		{"shiba", false},
	}
	for _, tc := range cases {
		if got := matchesFilter(r, tc.query); got != tc.want {
			t.Fatalf("matchesFilter(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := truncate("komodo", 10); got != "komodo" {
		t.Fatalf("truncate short = %q, want unchanged", got)
	}
	if got := truncate("komodo_fullmte", 7); got != "komodo…" {
		t.Fatalf("truncate = %q, want komodo…", got)
	}
	if got := truncate("komodo", 0); got != "" {
		t.Fatalf("truncate width 0 = %q, want empty", got)
	}
	if got := truncate("komodo", 1); got != "…" {
		t.Fatalf("truncate width 1 = %q, want ellipsis", got)
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	got := wrap("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Fatalf("wrap = %q, want %q", got, want)
	}

	if got := wrap("", 10); got != "" {
		t.Fatalf("wrap empty = %q, want empty", got)
	}
}

func TestApplyFilter_ClampsSelection(t *testing.T) {
	t.Parallel()

	m := New(Options{Device: "komodo", Summary: testSummary()})
	if len(m.visible) != 3 {
		t.Fatalf("visible = %d, want 3", len(m.visible))
	}

	m.selected = 2
	m.applyFilter("zp1a")
	if len(m.visible) != 1 {
		t.Fatalf("visible after filter = %d, want 1", len(m.visible))
	}
	if m.selected != 0 {
		t.Fatalf("selected = %d, want clamped to 0", m.selected)
	}

	r, ok := m.selectedRow()
	if !ok || r.entry.Name != "ZP1A.250120.001" {
		t.Fatalf("selectedRow = %v/%v, want the beta build", r, ok)
	}
}
