package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/cardiagno/internal/emoji"
	"github.com/yildizm/cardiagno/internal/health"
)

// Sidebar is the navigation panel. It only reports which entry the user
// picked; the shell decides what gets mounted.
type Sidebar struct {
	entries []TabInfo
	cursor  int
	active  Tab
	score   health.HealthScore
	focused bool
	width   int
	height  int
	keys    KeyMap
}

// NewSidebar creates a navigation panel with the cursor on active
func NewSidebar(active Tab, keys KeyMap) Sidebar {
	s := Sidebar{
		entries: Tabs(),
		score:   health.Score(),
		keys:    keys,
		width:   30,
	}
	s.SetActive(active)
	return s
}

// SetActive marks the mounted tab and moves the cursor onto it
func (s *Sidebar) SetActive(tab Tab) {
	s.active = tab
	for i, e := range s.entries {
		if e.ID == tab {
			s.cursor = i
			return
		}
	}
}

// SetFocused toggles keyboard focus
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// SetSize sets the panel dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Cursor returns the highlighted entry
func (s Sidebar) Cursor() TabInfo {
	return s.entries[s.cursor]
}

// Update moves the highlight and emits a TabSelectedMsg on enter
func (s Sidebar) Update(msg tea.Msg) (Sidebar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, s.keys.Down):
		if s.cursor < len(s.entries)-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, s.keys.Select):
		return s, SelectTab(string(s.entries[s.cursor].ID))
	}
	return s, nil
}

// View renders the panel
func (s Sidebar) View() string {
	styles := GetStyles()
	inner := max(10, s.width-4)

	brand := lipgloss.JoinVertical(lipgloss.Left,
		styles.Brand.Render(emoji.GetEmoji("brand")+" CardiagnoAI"),
		styles.Muted.Render("Health Intelligence"),
	)

	items := make([]string, 0, len(s.entries))
	for i, e := range s.entries {
		label := fmt.Sprintf("%d %s %s", i+1, emoji.GetEmoji(e.Icon), e.Label)
		marker := "  "
		if e.ID == s.active {
			marker = "▌ "
		}

		style := styles.Body
		switch {
		case e.ID == s.active:
			style = styles.Selected
		case s.focused && i == s.cursor:
			style = styles.Highlight
		}
		if s.focused && i == s.cursor {
			marker = "▶ "
		}
		items = append(items, style.Width(inner).Render(marker+label))
	}

	footer := styles.Card.Width(inner - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.Muted.Render("Health Score"),
		styles.Success.Render(fmt.Sprintf("%d/%d", s.score.Score, s.score.Max)),
		styles.Muted.Render(s.score.Caption),
	))

	content := lipgloss.JoinVertical(lipgloss.Left,
		brand,
		"",
		strings.Join(items, "\n"),
		"",
		footer,
	)

	border := styles.Panel
	if s.focused {
		border = border.BorderForeground(styles.Theme.Primary)
	}
	panel := border.Width(s.width - 2)
	if s.height > 2 {
		panel = panel.Height(s.height - 2)
	}
	return panel.Render(content)
}
