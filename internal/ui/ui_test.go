package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yildizm/cardiagno/internal/config"
	"github.com/yildizm/cardiagno/internal/health"
	"github.com/yildizm/cardiagno/internal/upload"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func paste(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

func fakeDescribe(path string) (upload.FileInfo, error) {
	if filepath.Base(path) == "missing.pdf" {
		return upload.FileInfo{}, errors.New("no such file")
	}
	return upload.FileInfo{Name: filepath.Base(path), MIMEType: "application/pdf", Size: 2048000, Path: path}, nil
}

func testUploadOptions() UploadOptions {
	return UploadOptions{Step: upload.FixedStepper(25), Describe: fakeDescribe}
}

func TestResolveTab(t *testing.T) {
	for _, name := range TabNames() {
		assert.Equal(t, Tab(name), ResolveTab(name))
	}
	assert.Equal(t, TabDashboard, ResolveTab("nope"))
	assert.Equal(t, TabDashboard, ResolveTab(""))
	assert.Len(t, Tabs(), 8)
}

func TestConfigThemesAreKnown(t *testing.T) {
	t.Cleanup(func() { SetThemeByName("default") })
	assert.Equal(t, config.ValidThemes, ThemeNames())
	for _, name := range config.ValidThemes {
		assert.True(t, SetThemeByName(name), name)
		assert.Equal(t, name, GetTheme().Name)
	}
	assert.False(t, SetThemeByName("neon"))
	assert.Equal(t, "minimal", GetTheme().Name)
}

func TestStatusColor(t *testing.T) {
	theme := GetTheme()
	assert.Equal(t, theme.Success, theme.StatusColor(upload.StatusCompleted))
	assert.Equal(t, theme.Error, theme.StatusColor(upload.StatusError))
	assert.Equal(t, theme.Progress, theme.StatusColor(upload.StatusUploading))
}

func TestShellUnknownDefaultTabFallsBack(t *testing.T) {
	s := NewShell(Options{DefaultTab: "does-not-exist"})
	assert.Equal(t, TabDashboard, s.Active())
	assert.Equal(t, TabDashboard, s.Current().Tab())

	s = NewShell(Options{DefaultTab: "analysis"})
	assert.Equal(t, TabAnalysis, s.Active())

	s.SelectTab("bogus")
	assert.Equal(t, TabDashboard, s.Active())
	assert.Equal(t, TabDashboard, s.Current().Tab())
}

func TestShellSelectTab(t *testing.T) {
	s := NewShell(Options{Upload: testUploadOptions()})

	s.Update(TabSelectedMsg{ID: "upload"})
	require.Equal(t, TabUpload, s.Active())
	first := s.Current()

	// re-selecting keeps the mounted view
	s.Update(TabSelectedMsg{ID: "upload"})
	assert.Same(t, first, s.Current())

	s.Update(TabSelectedMsg{ID: "trends"})
	assert.Equal(t, TabTrends, s.Active())

	// leaving and returning builds a fresh view
	s.Update(TabSelectedMsg{ID: "upload"})
	assert.NotSame(t, first, s.Current())

	s.Update(TabSelectedMsg{ID: "garbage"})
	assert.Equal(t, TabDashboard, s.Active())
}

func TestSidebarEnterSelectsHighlighted(t *testing.T) {
	sb := NewSidebar(TabDashboard, DefaultKeyMap())

	sb, _ = sb.Update(tea.KeyMsg{Type: tea.KeyDown})
	sb, _ = sb.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, TabAnalysis, sb.Cursor().ID)

	_, cmd := sb.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, TabSelectedMsg{ID: "analysis"}, cmd())

	// cursor stops at the ends
	sb, _ = sb.Update(tea.KeyMsg{Type: tea.KeyUp})
	sb, _ = sb.Update(tea.KeyMsg{Type: tea.KeyUp})
	sb, _ = sb.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, TabDashboard, sb.Cursor().ID)
}

func TestShellNumberKeys(t *testing.T) {
	s := NewShell(Options{})

	_, cmd := s.Update(runes("3"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, TabSelectedMsg{ID: "analysis"}, msg)

	s.Update(msg)
	assert.Equal(t, TabAnalysis, s.Active())
	assert.False(t, s.NavFocused())
}

func TestShellRendersEveryTab(t *testing.T) {
	s := NewShell(Options{Upload: testUploadOptions()})
	s.Update(tea.WindowSizeMsg{Width: 140, Height: 50})

	for _, name := range TabNames() {
		s.Update(TabSelectedMsg{ID: name})
		out := s.View()
		assert.Contains(t, out, "CardiagnoAI", name)
		assert.Contains(t, out, "87/100", name)
	}
}

func TestUploadViewSimulation(t *testing.T) {
	v := NewUploadView(DefaultKeyMap(), testUploadOptions())

	_, cmd := v.Update(paste("/reports/ecg.pdf"))
	require.NotNil(t, cmd)
	assert.False(t, v.DragActive())

	records := v.Tracker().Records()
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "ecg.pdf", rec.Name)
	assert.Equal(t, "1.95 MB", rec.SizeLabel)
	assert.Equal(t, upload.StatusUploading, rec.Status)
	assert.Equal(t, 0.0, rec.Progress)

	for i := 0; i < 3; i++ {
		_, cmd = v.Update(uploadTickMsg{ID: rec.ID})
		assert.NotNil(t, cmd, "tick %d should reschedule", i)
	}
	_, cmd = v.Update(uploadTickMsg{ID: rec.ID})
	assert.Nil(t, cmd, "completed record must not reschedule")

	got, ok := v.Tracker().Get(rec.ID)
	require.True(t, ok)
	assert.Equal(t, upload.StatusCompleted, got.Status)
	assert.Equal(t, 100.0, got.Progress)
	assert.Contains(t, v.View(), "Files uploaded successfully!")

	v.Update(runes("X"))
	assert.Equal(t, 0, v.Tracker().Len())
}

func TestUploadViewPicker(t *testing.T) {
	v := NewUploadView(DefaultKeyMap(), testUploadOptions())

	v.Update(runes("o"))
	assert.True(t, v.CapturesInput())
	assert.True(t, v.DragActive())

	v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, v.CapturesInput())
	assert.False(t, v.DragActive())
	assert.Equal(t, 0, v.Tracker().Len())

	v.Update(runes("o"))
	for _, r := range "a.pdf missing.pdf b.pdf" {
		v.Update(runes(string(r)))
	}
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.False(t, v.CapturesInput())
	assert.Equal(t, 2, v.Tracker().Len())
	assert.Contains(t, v.Status(), "missing.pdf")
}

func TestUploadViewPasteIntoOpenPicker(t *testing.T) {
	v := NewUploadView(DefaultKeyMap(), testUploadOptions())

	v.Update(runes("o"))
	for _, r := range "a.pdf" {
		v.Update(runes(string(r)))
	}
	v.Update(paste("b.pdf"))

	assert.True(t, v.CapturesInput(), "paste keeps the picker open")
	assert.Equal(t, "a.pdf b.pdf", v.input.Value())
	assert.Equal(t, 0, v.Tracker().Len())

	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	records := v.Tracker().Records()
	require.Len(t, records, 2)
	assert.Equal(t, "a.pdf", records[0].Name)
	assert.Equal(t, "b.pdf", records[1].Name)
}

func TestUploadViewRemoveVersusDismiss(t *testing.T) {
	v := NewUploadView(DefaultKeyMap(), testUploadOptions())
	v.Update(paste("a/report.pdf b/report.pdf other.pdf"))
	require.Equal(t, 3, v.Tracker().Len())

	// x removes only the highlighted record
	v.Update(runes("x"))
	records := v.Tracker().Records()
	require.Len(t, records, 2)
	assert.Equal(t, "report.pdf", records[0].Name)
	assert.Equal(t, "other.pdf", records[1].Name)

	v.Update(paste("c/report.pdf"))
	require.Equal(t, 3, v.Tracker().Len())

	// X removes every record sharing the highlighted name
	v.Update(runes("X"))
	records = v.Tracker().Records()
	require.Len(t, records, 1)
	assert.Equal(t, "other.pdf", records[0].Name)
}

func TestUploadViewTickAfterRemovalStops(t *testing.T) {
	v := NewUploadView(DefaultKeyMap(), testUploadOptions())
	v.Update(paste("ecg.pdf"))
	rec := v.Tracker().Records()[0]

	v.Update(runes("x"))
	_, cmd := v.Update(uploadTickMsg{ID: rec.ID})
	assert.Nil(t, cmd)
}

func TestShellDropSwitchesToUpload(t *testing.T) {
	drops := make(chan upload.FileInfo, 1)
	s := NewShell(Options{Drops: drops, Upload: testUploadOptions()})
	require.Equal(t, TabDashboard, s.Active())

	_, cmd := s.Update(DropMsg{File: upload.FileInfo{Name: "holter.pdf", Size: 1536}})
	assert.NotNil(t, cmd)
	require.Equal(t, TabUpload, s.Active())

	view, ok := s.Current().(*UploadView)
	require.True(t, ok)
	records := view.Tracker().Records()
	require.Len(t, records, 1)
	assert.Equal(t, "1.5 KB", records[0].SizeLabel)
}

func TestWaitForDrop(t *testing.T) {
	assert.Nil(t, WaitForDrop(nil))

	drops := make(chan upload.FileInfo, 1)
	drops <- upload.FileInfo{Name: "a.pdf"}
	assert.Equal(t, DropMsg{File: upload.FileInfo{Name: "a.pdf"}}, WaitForDrop(drops)())

	close(drops)
	assert.Equal(t, dropsClosedMsg{}, WaitForDrop(drops)())
}

func TestShellIgnoresStaleTicks(t *testing.T) {
	s := NewShell(Options{})
	_, cmd := s.Update(uploadTickMsg{ID: uuid.New()})
	assert.Nil(t, cmd)
}

func TestShellQuit(t *testing.T) {
	s := NewShell(Options{})
	_, cmd := s.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRiskTableKeepsColumnsAligned(t *testing.T) {
	factors := []health.RiskFactor{
		{Factor: "Age", Value: "45 years", Risk: health.RiskModerate},
		{Factor: "Physical Activity", Value: "Less than 30 minutes of exercise per week", Risk: health.RiskHigh},
		{Factor: "Smoking", Value: "Never", Risk: health.RiskLow},
	}

	out := renderRiskTable(GetStyles(), factors)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)

	col := strings.Index(lines[0], "Risk")
	require.Positive(t, col)
	for i, f := range factors {
		assert.Equal(t, col, strings.Index(lines[i+1], string(f.Risk)), f.Factor)
	}
	assert.Contains(t, out, "Less than 30 minutes of exercise per week")
	assert.Contains(t, lines[len(lines)-1], "High 1")
}
