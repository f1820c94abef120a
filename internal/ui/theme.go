package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors for the browser.
type Theme struct {
	Name string

	Text          string
	Muted         string
	Accent        string
	Success       string
	Border        string
	SelectionBg   string
	SelectionText string
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Latest: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		Selection: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),
	}
}

// Styles bundles the lipgloss styles derived from a Theme.
type Styles struct {
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Title     lipgloss.Style
	Latest    lipgloss.Style
	Selection lipgloss.Style
	Pane      lipgloss.Style
}

var themes = []Theme{
	{
		Name:          "Dracula",
		Text:          "#f8f8f2",
		Muted:         "#6272a4",
		Accent:        "#bd93f9",
		Success:       "#50fa7b",
		Border:        "#44475a",
		SelectionBg:   "#44475a",
		SelectionText: "#f8f8f2",
	},
	{
		Name:          "Gruvbox",
		Text:          "#ebdbb2",
		Muted:         "#928374",
		Accent:        "#fabd2f",
		Success:       "#b8bb26",
		Border:        "#504945",
		SelectionBg:   "#504945",
		SelectionText: "#fbf1c7",
	},
	{
		Name:          "Plain",
		Text:          "7",
		Muted:         "8",
		Accent:        "12",
		Success:       "10",
		Border:        "8",
		SelectionBg:   "7",
		SelectionText: "0",
	},
}

// GetTheme returns the named theme, or the first theme when unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one, wrapping.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
