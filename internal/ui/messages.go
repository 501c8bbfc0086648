package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/yildizm/cardiagno/internal/upload"
)

// TabSelectedMsg asks the shell to mount a tab. ID is not validated;
// unknown ids mount the default tab.
type TabSelectedMsg struct {
	ID string
}

// SelectTab returns a command emitting a TabSelectedMsg
func SelectTab(id string) tea.Cmd {
	return func() tea.Msg {
		return TabSelectedMsg{ID: id}
	}
}

// DropMsg carries a file dropped into the inbox directory
type DropMsg struct {
	File upload.FileInfo
}

// dropsClosedMsg signals that the inbox subscription has ended
type dropsClosedMsg struct{}

// WaitForDrop blocks until the next inbox file arrives. The shell re-issues
// it after every delivery.
func WaitForDrop(drops <-chan upload.FileInfo) tea.Cmd {
	if drops == nil {
		return nil
	}
	return func() tea.Msg {
		f, ok := <-drops
		if !ok {
			return dropsClosedMsg{}
		}
		return DropMsg{File: f}
	}
}

// uploadTickMsg advances a single upload record
type uploadTickMsg struct {
	ID uuid.UUID
}

// scheduleTick fires one simulation step for id after interval
func scheduleTick(id uuid.UUID, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return uploadTickMsg{ID: id}
	})
}
