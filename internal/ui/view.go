package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View is a page mounted in the content area. A view is built fresh each
// time its tab is selected and discarded when another tab is.
type View interface {
	Tab() Tab
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
	// CapturesInput reports whether the view is reading free text, in
	// which case global single-letter keys are delivered to it.
	CapturesInput() bool
}

// scrollView renders static content inside a viewport
type scrollView struct {
	tab      Tab
	viewport viewport.Model
	keys     KeyMap
	render   func(width int) string
	width    int
}

func newScrollView(tab Tab, keys KeyMap, render func(width int) string) *scrollView {
	v := &scrollView{
		tab:      tab,
		viewport: viewport.New(80, 20),
		keys:     keys,
		render:   render,
		width:    80,
	}
	v.viewport.SetContent(render(v.width))
	return v
}

func (v *scrollView) Tab() Tab { return v.tab }

func (v *scrollView) Init() tea.Cmd { return nil }

func (v *scrollView) CapturesInput() bool { return false }

func (v *scrollView) SetSize(width, height int) {
	v.width = max(20, width)
	v.viewport.Width = v.width
	v.viewport.Height = max(3, height)
	v.viewport.SetContent(v.render(v.width))
}

func (v *scrollView) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, v.keys.Up):
		v.viewport.ScrollUp(1)
	case key.Matches(keyMsg, v.keys.Down):
		v.viewport.ScrollDown(1)
	case key.Matches(keyMsg, v.keys.PageUp):
		v.viewport.HalfPageUp()
	case key.Matches(keyMsg, v.keys.PageDown):
		v.viewport.HalfPageDown()
	}
	return v, nil
}

func (v *scrollView) View() string {
	return v.viewport.View()
}

// pageHeader renders a title with its subtitle
func pageHeader(title, subtitle string) string {
	styles := GetStyles()
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Header.Render(title),
		styles.Muted.Render(subtitle),
	)
}

// section renders a titled block
func section(title, body string) string {
	styles := GetStyles()
	return lipgloss.JoinVertical(lipgloss.Left, styles.Subheader.Render(title), body)
}
