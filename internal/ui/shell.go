package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/cardiagno/internal/emoji"
	"github.com/yildizm/cardiagno/internal/logger"
	"github.com/yildizm/cardiagno/internal/upload"
)

// focus is the pane receiving navigation keys
type focus int

const (
	focusNav focus = iota
	focusContent
)

// Options configures the shell
type Options struct {
	DefaultTab   string
	SidebarWidth int
	Upload       UploadOptions
	Drops        <-chan upload.FileInfo
	Logger       *logger.Logger
}

// Shell is the root model. It owns the navigation panel and exactly one
// mounted view.
type Shell struct {
	opts     Options
	keys     KeyMap
	help     help.Model
	sidebar  Sidebar
	active   Tab
	view     View
	focus    focus
	width    int
	height   int
	quitting bool
	log      *logger.Logger
}

// NewShell creates the root model with the configured default tab mounted.
// An unknown default tab mounts the dashboard.
func NewShell(opts Options) *Shell {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.SidebarWidth <= 0 {
		opts.SidebarWidth = 30
	}
	if opts.Upload.Logger == nil {
		opts.Upload.Logger = opts.Logger
	}

	keys := DefaultKeyMap()
	s := &Shell{
		opts:   opts,
		keys:   keys,
		help:   help.New(),
		focus:  focusNav,
		width:  120,
		height: 40,
		log:    opts.Logger.WithComponent("shell"),
	}
	s.sidebar = NewSidebar(DefaultTab, keys)
	s.sidebar.SetFocused(true)
	s.SelectTab(opts.DefaultTab)
	return s
}

// Active returns the mounted tab
func (s *Shell) Active() Tab { return s.active }

// Current returns the mounted view
func (s *Shell) Current() View { return s.view }

// SelectTab mounts the view for id. Unknown ids mount the default tab.
// Selecting the tab that is already mounted keeps the current view.
func (s *Shell) SelectTab(id string) tea.Cmd {
	tab := ResolveTab(id)
	if id != "" && string(tab) != id {
		s.log.DebugWithFields("unknown tab, using default", []logger.Field{logger.F("tab", id)})
	}
	if s.view != nil && tab == s.active {
		return nil
	}

	s.active = tab
	s.view = s.buildView(tab)
	s.sidebar.SetActive(tab)
	s.layout()
	s.log.DebugWithFields("mounted view", []logger.Field{logger.F("tab", tab)})
	return s.view.Init()
}

func (s *Shell) buildView(tab Tab) View {
	switch tab {
	case TabUpload:
		return NewUploadView(s.keys, s.opts.Upload)
	case TabAnalysis:
		return NewAnalysisView(s.keys)
	case TabDashboard:
		return NewOverviewView(s.keys)
	default:
		return NewPlaceholderView(tab, s.keys)
	}
}

// Init starts the inbox subscription
func (s *Shell) Init() tea.Cmd {
	return tea.Batch(s.view.Init(), WaitForDrop(s.opts.Drops))
}

// Update routes messages to the sidebar, the mounted view or the shell itself
func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.layout()
		return s, nil

	case TabSelectedMsg:
		cmd := s.SelectTab(msg.ID)
		s.setFocus(focusContent)
		return s, cmd

	case DropMsg:
		cmds := []tea.Cmd{WaitForDrop(s.opts.Drops)}
		if s.active != TabUpload {
			cmds = append(cmds, s.SelectTab(string(TabUpload)))
		}
		var cmd tea.Cmd
		s.view, cmd = s.view.Update(msg)
		return s, tea.Batch(append(cmds, cmd)...)

	case dropsClosedMsg:
		s.log.Debug("inbox subscription closed")
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// ticks and anything else belong to the mounted view; a tick addressed
	// to a discarded view finds no record and stops
	var cmd tea.Cmd
	s.view, cmd = s.view.Update(msg)
	return s, cmd
}

func (s *Shell) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		s.quitting = true
		return s, tea.Quit
	}

	// pastes and text entry always go to the view
	if msg.Paste || s.view.CapturesInput() {
		var cmd tea.Cmd
		s.view, cmd = s.view.Update(msg)
		return s, cmd
	}

	switch {
	case key.Matches(msg, s.keys.Quit):
		s.quitting = true
		return s, tea.Quit
	case key.Matches(msg, s.keys.Help):
		s.help.ShowAll = !s.help.ShowAll
		s.layout()
		return s, nil
	case key.Matches(msg, s.keys.Focus):
		if s.focus == focusNav {
			s.setFocus(focusContent)
		} else {
			s.setFocus(focusNav)
		}
		return s, nil
	case key.Matches(msg, s.keys.Jump):
		if len(msg.Runes) == 0 {
			return s, nil
		}
		idx := int(msg.Runes[0] - '1')
		if entries := Tabs(); idx >= 0 && idx < len(entries) {
			return s, SelectTab(string(entries[idx].ID))
		}
		return s, nil
	}

	if s.focus == focusNav {
		var cmd tea.Cmd
		s.sidebar, cmd = s.sidebar.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.view, cmd = s.view.Update(msg)
	return s, cmd
}

func (s *Shell) setFocus(f focus) {
	s.focus = f
	s.sidebar.SetFocused(f == focusNav)
}

// NavFocused reports whether the navigation panel has focus
func (s *Shell) NavFocused() bool { return s.focus == focusNav }

func (s *Shell) layout() {
	helpHeight := 1
	if s.help.ShowAll {
		helpHeight = 6
	}
	bodyHeight := max(5, s.height-helpHeight-1)

	sidebarWidth := min(s.opts.SidebarWidth, max(20, s.width/3))
	s.sidebar.SetSize(sidebarWidth, bodyHeight)
	s.help.Width = s.width
	if s.view != nil {
		s.view.SetSize(max(20, s.width-sidebarWidth-3), bodyHeight)
	}
}

// View renders the shell
func (s *Shell) View() string {
	if s.quitting {
		return GetStyles().Muted.Render("Stay healthy! "+emoji.GetEmoji("heart")) + "\n"
	}

	contentWidth := max(20, s.width-s.sidebar.width-1)
	bodyHeight := max(5, s.height-2)
	if s.help.ShowAll {
		bodyHeight = max(5, s.height-7)
	}
	content := lipgloss.NewStyle().
		Width(contentWidth).
		MaxHeight(bodyHeight).
		PaddingLeft(1).
		Render(s.view.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, s.sidebar.View(), content)
	return lipgloss.JoinVertical(lipgloss.Left, body, s.help.View(s.keys))
}
