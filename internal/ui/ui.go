package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grayfold3/flashview/internal/prefs"
	"github.com/grayfold3/flashview/internal/report"
)

// Options configure the browser.
type Options struct {
	Device    string
	Summary   report.Summary
	ThemeName string
	PrefsPath string
}

// row is one selectable line: a build entry under its product.
type row struct {
	product string
	entry   report.Entry
}

// Model is the root Bubble Tea state for the browser.
type Model struct {
	device    string
	rows      []row
	visible   []int // indexes into rows surviving the filter
	selected  int   // index into visible
	prefsPath string
	devPrefs  prefs.Prefs

	theme Theme
	keys  keyMap

	width  int
	height int
	ready  bool

	detail viewport.Model

	filter    textinput.Model
	filtering bool
	query     string
}

// New creates a browser model over the summarized builds.
func New(opts Options) Model {
	rows := flattenSummary(opts.Summary)

	filter := textinput.New()
	filter.Placeholder = "product, version, or build name"
	filter.Prompt = "/"
	filter.CharLimit = 64

	m := Model{
		device:    opts.Device,
		rows:      rows,
		prefsPath: opts.PrefsPath,
		theme:     GetTheme(opts.ThemeName),
		keys:      defaultKeyMap(),
		filter:    filter,
	}
	m.applyFilter("")
	return m
}

// Run blocks until the user quits the browser.
func Run(opts Options) error {
	program := tea.NewProgram(New(opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detail = viewport.New(msg.Width-2, detailHeight(msg.Height))
			m.ready = true
		} else {
			m.detail.Width = msg.Width - 2
			m.detail.Height = detailHeight(msg.Height)
		}
		m.syncDetail()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.move(-1)

	case key.Matches(msg, m.keys.Down):
		m.move(1)

	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		m.syncDetail()

	case key.Matches(msg, m.keys.Bottom):
		if len(m.visible) > 0 {
			m.selected = len(m.visible) - 1
		}
		m.syncDetail()

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter.SetValue(m.query)
		m.filter.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Escape):
		m.applyFilter("")
		m.syncDetail()

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			saved, _ := prefs.Load(m.prefsPath)
			saved.Theme = m.theme.Name
			_ = prefs.Save(m.prefsPath, saved)
		}

	default:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.filtering = false
		m.filter.Blur()
		m.applyFilter(m.filter.Value())
		m.syncDetail()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m *Model) move(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	m.syncDetail()
}

// applyFilter recomputes the visible rows for the query and clamps the
// selection.
func (m *Model) applyFilter(query string) {
	m.query = query
	m.visible = m.visible[:0]
	for i, r := range m.rows {
		if matchesFilter(r, query) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

// selectedRow returns the currently selected row, if any.
func (m Model) selectedRow() (row, bool) {
	if len(m.visible) == 0 || m.selected >= len(m.visible) {
		return row{}, false
	}
	return m.rows[m.visible[m.selected]], true
}

func (m *Model) syncDetail() {
	if !m.ready {
		return
	}
	r, ok := m.selectedRow()
	if !ok {
		m.detail.SetContent(m.theme.Styles().Muted.Render("no builds match"))
		return
	}
	m.detail.SetContent(renderDetail(r, m.theme.Styles(), m.detail.Width))
	m.detail.GotoTop()
}

func detailHeight(total int) int {
	// Header, list, filter line, and footer take the rest.
	h := total/2 - 3
	if h < 3 {
		h = 3
	}
	return h
}
