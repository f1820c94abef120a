package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n")
	b.WriteString(m.renderList(styles))
	b.WriteString("\n")
	b.WriteString(styles.Pane.Width(m.width - 2).Render(m.detail.View()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter(styles))

	return b.String()
}

func (m Model) renderHeader(styles Styles) string {
	title := styles.Title.Render("flashview")
	device := styles.Text.Render(m.device)
	count := styles.Muted.Render(fmt.Sprintf("%d builds", len(m.visible)))
	theme := styles.Muted.Render(m.theme.Name)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		title, "  ", device, "  ", count, "  ", theme)
}

func (m Model) renderList(styles Styles) string {
	height := m.listHeight()
	if height <= 0 {
		return ""
	}

	start := 0
	if m.selected >= height {
		start = m.selected - height + 1
	}

	lines := make([]string, 0, height)
	for i := start; i < len(m.visible) && len(lines) < height; i++ {
		r := m.rows[m.visible[i]]
		line := listLine(r, m.width)
		if i == m.selected {
			line = styles.Selection.Width(m.width).Render(line)
		} else {
			line = styles.Text.Render(line)
		}
		lines = append(lines, line)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderFooter(styles Styles) string {
	if m.filtering {
		return m.filter.View()
	}
	if m.query != "" {
		return styles.Muted.Render(
			fmt.Sprintf("filter: %s (esc clears)  ·  j/k move · / filter · T theme · q quit", m.query))
	}
	return styles.Muted.Render("j/k move · g/G top/bottom · / filter · T theme · q quit")
}

func (m Model) listHeight() int {
	// Header, detail pane with borders, and footer surround the list.
	h := m.height - m.detail.Height - 5
	if h < 1 {
		h = 1
	}
	return h
}

// listLine formats one list row: latest marker, product, version, build name.
func listLine(r row, width int) string {
	mark := " "
	if r.entry.LatestInCategory {
		mark = "*"
	}
	version := "-"
	if r.entry.Version != nil {
		version = *r.entry.Version
	}
	line := fmt.Sprintf("%s %-24s %-28s %s", mark, truncate(r.product, 24), truncate(version, 28), r.entry.Name)
	return truncate(line, width)
}

// renderDetail formats the detail pane for one build.
func renderDetail(r row, styles Styles, width int) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(r.entry.Name))
	b.WriteString("\n\n")

	writeField := func(label, value string) {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(styles.Text.Render(value))
		b.WriteString("\n")
	}

	writeField("product", r.product)
	if r.entry.Version != nil {
		writeField("version", *r.entry.Version)
	}
	if r.entry.LatestInCategory {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("%-10s", "status")))
		b.WriteString(styles.Latest.Render("latest in category"))
		b.WriteString("\n")
	}
	writeField("url", r.entry.URL)

	if r.entry.Description != nil {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(wrap(*r.entry.Description, width)))
		b.WriteString("\n")
	}

	return b.String()
}
