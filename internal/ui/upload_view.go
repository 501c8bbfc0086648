package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/cardiagno/internal/emoji"
	"github.com/yildizm/cardiagno/internal/health"
	"github.com/yildizm/cardiagno/internal/logger"
	"github.com/yildizm/cardiagno/internal/upload"
	"github.com/yildizm/cardiagno/internal/ui/components"
)

// UploadOptions configures the upload page
type UploadOptions struct {
	Interval   time.Duration
	Step       upload.Stepper
	NewTracker func() *upload.Tracker
	Describe   func(path string) (upload.FileInfo, error)
	Logger     *logger.Logger
}

func (o UploadOptions) withDefaults() UploadOptions {
	if o.Interval <= 0 {
		o.Interval = upload.DefaultTickInterval
	}
	if o.Step == nil {
		o.Step = upload.UniformStepper(upload.DefaultMaxIncrement)
	}
	if o.NewTracker == nil {
		o.NewTracker = func() *upload.Tracker { return upload.NewTracker() }
	}
	if o.Describe == nil {
		o.Describe = upload.Describe
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	return o
}

// UploadView is the upload page. Each record in flight owns one pending
// tick; the tick is rescheduled only while the tracker reports the record
// as still uploading.
type UploadView struct {
	opts     UploadOptions
	tracker  *upload.Tracker
	zone     upload.DropZone
	input    textinput.Model
	picking  bool
	selected int
	status   string
	failed   bool
	keys     KeyMap
	width    int
	height   int
	log      *logger.Logger
}

// NewUploadView builds the upload page with an empty file list
func NewUploadView(keys KeyMap, opts UploadOptions) *UploadView {
	opts = opts.withDefaults()

	input := textinput.New()
	input.Prompt = emoji.GetEmoji("file") + " "
	input.Placeholder = "paths to reports, separated by spaces or commas"
	input.CharLimit = 4096

	return &UploadView{
		opts:    opts,
		tracker: opts.NewTracker(),
		input:   input,
		keys:    keys,
		width:   80,
		log:     opts.Logger.WithComponent("upload"),
	}
}

func (v *UploadView) Tab() Tab { return TabUpload }

func (v *UploadView) Init() tea.Cmd { return nil }

// CapturesInput reports whether the path picker is open
func (v *UploadView) CapturesInput() bool { return v.picking }

func (v *UploadView) SetSize(width, height int) {
	v.width = max(30, width)
	v.height = height
	v.input.Width = max(10, v.width-8)
}

// Tracker exposes the record list
func (v *UploadView) Tracker() *upload.Tracker { return v.tracker }

// DragActive reports whether the drop zone is highlighted
func (v *UploadView) DragActive() bool { return v.zone.Active() }

// Selected returns the highlighted record, if any
func (v *UploadView) Selected() (upload.Record, bool) {
	records := v.tracker.Records()
	if len(records) == 0 {
		return upload.Record{}, false
	}
	return records[min(v.selected, len(records)-1)], true
}

// Status returns the last status line
func (v *UploadView) Status() string { return v.status }

func (v *UploadView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadTickMsg:
		return v, v.advance(msg)
	case DropMsg:
		v.zone.Enter()
		v.zone.Drop()
		return v, v.ingest([]upload.FileInfo{msg.File}, nil)
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *UploadView) advance(msg uploadTickMsg) tea.Cmd {
	rec, more := v.tracker.Advance(msg.ID, v.opts.Step())
	if !more {
		if rec.Status == upload.StatusCompleted {
			v.log.DebugWithFields("upload complete", []logger.Field{logger.F("name", rec.Name)})
		}
		return nil
	}
	return scheduleTick(msg.ID, v.opts.Interval)
}

func (v *UploadView) handleKey(msg tea.KeyMsg) tea.Cmd {
	// terminals deliver a dragged file as a bracketed paste of its path
	if msg.Paste {
		if v.picking {
			v.appendInput(string(msg.Runes))
			v.zone.Over()
			return nil
		}
		v.zone.Enter()
		return v.drop(string(msg.Runes))
	}

	if v.picking {
		switch {
		case key.Matches(msg, v.keys.Close):
			v.closePicker()
			v.zone.Leave()
			return nil
		case key.Matches(msg, v.keys.Select):
			return v.drop(v.input.Value())
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		v.zone.Over()
		return cmd
	}

	switch {
	case key.Matches(msg, v.keys.Open):
		v.picking = true
		v.zone.Enter()
		v.status = ""
		return v.input.Focus()
	case key.Matches(msg, v.keys.Up):
		if v.selected > 0 {
			v.selected--
		}
	case key.Matches(msg, v.keys.Down):
		if v.selected < v.tracker.Len()-1 {
			v.selected++
		}
	case key.Matches(msg, v.keys.Remove):
		if rec, ok := v.Selected(); ok && v.tracker.Remove(rec.ID) {
			v.setStatus(fmt.Sprintf("Removed %s", rec.Name), false)
		}
		v.clampSelection()
	case key.Matches(msg, v.keys.Dismiss):
		if rec, ok := v.Selected(); ok {
			n := v.tracker.Dismiss(rec.Name)
			v.setStatus(fmt.Sprintf("Dismissed %d × %s", n, rec.Name), false)
		}
		v.clampSelection()
	}
	return nil
}

// appendInput adds pasted paths to what was already typed in the picker
func (v *UploadView) appendInput(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	current := v.input.Value()
	if current != "" && !strings.HasSuffix(current, " ") && !strings.HasSuffix(current, ",") {
		current += " "
	}
	v.input.SetValue(current + text)
	v.input.CursorEnd()
}

// drop ingests every path in input and closes the picker
func (v *UploadView) drop(input string) tea.Cmd {
	v.closePicker()
	v.zone.Drop()

	paths := upload.SplitPaths(input)
	if len(paths) == 0 {
		v.setStatus("No files selected", true)
		return nil
	}

	files := make([]upload.FileInfo, 0, len(paths))
	var skipped []string
	for _, p := range paths {
		f, err := v.opts.Describe(p)
		if err != nil {
			v.log.WarnWithFields("skipping path", []logger.Field{logger.F("path", p), logger.Error(err)})
			skipped = append(skipped, p)
			continue
		}
		files = append(files, f)
	}
	return v.ingest(files, skipped)
}

func (v *UploadView) ingest(files []upload.FileInfo, skipped []string) tea.Cmd {
	added := v.tracker.Ingest(files)

	cmds := make([]tea.Cmd, 0, len(added))
	rejected := 0
	for _, rec := range added {
		if rec.Uploading() {
			cmds = append(cmds, scheduleTick(rec.ID, v.opts.Interval))
		} else {
			rejected++
		}
	}

	parts := make([]string, 0, 3)
	if n := len(added) - rejected; n > 0 {
		parts = append(parts, fmt.Sprintf("Uploading %d file(s)", n))
	}
	if rejected > 0 {
		parts = append(parts, fmt.Sprintf("%d rejected", rejected))
	}
	if len(skipped) > 0 {
		parts = append(parts, "could not read: "+strings.Join(skipped, ", "))
	}
	v.setStatus(strings.Join(parts, " · "), rejected > 0 || len(skipped) > 0)

	return tea.Batch(cmds...)
}

func (v *UploadView) closePicker() {
	v.picking = false
	v.input.Blur()
	v.input.Reset()
}

func (v *UploadView) clampSelection() {
	v.selected = max(0, min(v.selected, v.tracker.Len()-1))
}

func (v *UploadView) setStatus(s string, failed bool) {
	v.status = s
	v.failed = failed
}

func (v *UploadView) View() string {
	styles := GetStyles()
	inner := max(30, v.width-4)

	zoneStyle := styles.DropZone
	if v.zone.Active() {
		zoneStyle = styles.DropZoneActive
	}
	zoneLines := []string{
		styles.Header.Render(emoji.GetEmoji("drop") + " Drag and drop your files here"),
		styles.Muted.Render("or press o to browse your computer"),
	}
	if v.picking {
		zoneLines = append(zoneLines, "", v.input.View())
	}
	zoneLines = append(zoneLines, "", styles.Muted.Render("Supported formats: PDF, JPG, PNG, DOC, DOCX (Max 10MB each)"))
	zone := zoneStyle.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Center, zoneLines...))

	blocks := []string{
		pageHeader("Upload Medical Reports", "Upload your medical reports for AI-powered analysis"),
		"",
		zone,
	}

	if v.status != "" {
		style := styles.Info
		if v.failed {
			style = styles.Warning
		}
		blocks = append(blocks, style.Render(v.status))
	}

	blocks = append(blocks, "", section("Report Type", v.renderChips(inner)))

	if v.tracker.Len() > 0 {
		blocks = append(blocks, "", section("Uploaded Files", v.renderRecords(inner)))
	}

	if v.tracker.HasCompleted() {
		banner := styles.Banner.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.Success.Render(emoji.GetEmoji("success")+" Files uploaded successfully!"),
			styles.Body.Render("Your reports are being processed by our AI system. Analysis results will be available shortly."),
		))
		blocks = append(blocks, "", banner)
	}

	stats := v.tracker.Stats()
	blocks = append(blocks, "", styles.Muted.Render(fmt.Sprintf(
		"%s ingested %d · completed %d · rejected %d · dismissed %d · active %d",
		emoji.GetEmoji("statistic"), stats.Ingested, stats.Completed, stats.Rejected, stats.Dismissed, stats.Active,
	)))

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (v *UploadView) renderChips(width int) string {
	styles := GetStyles()
	types := health.ReportTypes()

	columns := 4
	if width < 100 {
		columns = 2
	}
	chipWidth := max(16, width/columns-2)

	rows := make([]string, 0, (len(types)+columns-1)/columns)
	for i := 0; i < len(types); i += columns {
		end := min(i+columns, len(types))
		chips := make([]string, 0, end-i)
		for _, t := range types[i:end] {
			chips = append(chips, styles.Chip.Width(chipWidth).Render(t))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *UploadView) renderRecords(width int) string {
	styles := GetStyles()
	theme := styles.Theme
	records := v.tracker.Records()

	lines := make([]string, 0, len(records))
	for i, rec := range records {
		color := theme.StatusColor(rec.Status)
		var state string
		switch rec.Status {
		case upload.StatusUploading:
			state = components.NewProgressBar(20).
				SetPercent(rec.Progress).
				SetColors(color, theme.Muted).
				Render()
		case upload.StatusCompleted:
			state = lipgloss.NewStyle().Foreground(color).Bold(true).
				Render(emoji.GetEmoji("success") + " Complete")
		default:
			reason := "Error"
			if rec.Reason != "" {
				reason = "Error: " + rec.Reason
			}
			state = lipgloss.NewStyle().Foreground(color).Bold(true).
				Render(emoji.GetEmoji("error") + " " + reason)
		}

		name := fmt.Sprintf("%s %s  %s", emoji.GetEmoji("file"), rec.Name, styles.Muted.Render(rec.SizeLabel))
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(max(20, width-34)).Render(name),
			state,
		)

		style := styles.ListItem
		if i == v.selected && !v.picking {
			style = styles.ListSelected
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}
