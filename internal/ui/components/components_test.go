package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestProgressBarClampsAndFills(t *testing.T) {
	bar := NewProgressBar(10)

	bar.SetPercent(-5)
	assert.Equal(t, 0.0, bar.Percent)
	assert.Equal(t, 0, bar.Filled())

	bar.SetPercent(55)
	assert.Equal(t, 5, bar.Filled())

	bar.SetPercent(140)
	assert.Equal(t, 100.0, bar.Percent)
	assert.Equal(t, 10, bar.Filled())
	assert.Contains(t, bar.Render(), "100%")
}

func TestProgressBarRoundsPercent(t *testing.T) {
	bar := NewProgressBar(20).SetPercent(42.6)
	assert.Contains(t, bar.Render(), " 43%")

	bar.ShowPercent = false
	assert.NotContains(t, bar.Render(), "%")
}

func TestStatsCardRender(t *testing.T) {
	card := NewStatsCard("Heart Rate", "68 BPM", "Good").SetTrend("+1%").SetIcon("<3")
	out := card.Render()

	for _, want := range []string{"Heart Rate", "68 BPM", "Good", "+1%", "<3"} {
		assert.Contains(t, out, want)
	}
}

func TestCardGridRows(t *testing.T) {
	grid := NewCardGrid(2)
	assert.Empty(t, grid.Render())

	for _, title := range []string{"A", "B", "C"} {
		grid.AddCard(NewStatsCard(title, "1", "x").SetWidth(10))
	}
	out := grid.Render()

	// two rows of bordered cards, each card three content lines high plus borders
	assert.Equal(t, 10, lipgloss.Height(out))
	assert.True(t, strings.Contains(out, "C"))
}
