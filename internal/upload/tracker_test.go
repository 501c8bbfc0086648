package upload

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yildizm/cardiagno/internal/monitor"
)

func pdf(name string, size int64) FileInfo {
	return FileInfo{Name: name, MIMEType: "application/pdf", Size: size}
}

func TestIngestInitialState(t *testing.T) {
	tr := NewTracker()

	added := tr.Ingest([]FileInfo{pdf("a.pdf", 1536), pdf("b.pdf", 0)})
	require.Len(t, added, 2)

	records := tr.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "a.pdf", records[0].Name)
	assert.Equal(t, "b.pdf", records[1].Name)

	for _, r := range records {
		assert.Equal(t, StatusUploading, r.Status)
		assert.Zero(t, r.Progress)
		assert.NotEqual(t, uuid.Nil, r.ID)
	}
	assert.Equal(t, "1.5 KB", records[0].SizeLabel)
	assert.Equal(t, "0 Bytes", records[1].SizeLabel)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestAdvanceMonotonicAndCompletesAtHundred(t *testing.T) {
	tr := NewTracker()
	rec := tr.Ingest([]FileInfo{pdf("scan.pdf", 10)})[0]

	steps := []float64{30, 0, 30, 30}
	last := 0.0
	for i, step := range steps {
		got, more := tr.Advance(rec.ID, step)
		assert.GreaterOrEqual(t, got.Progress, last, "tick %d", i)
		assert.True(t, more, "tick %d", i)
		assert.Equal(t, StatusUploading, got.Status, "tick %d", i)
		last = got.Progress
	}
	assert.InDelta(t, 90.0, last, 1e-9)

	got, more := tr.Advance(rec.ID, 30)
	assert.False(t, more)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, ProgressComplete, got.Progress)

	// further ticks are no-ops
	got, more = tr.Advance(rec.ID, 50)
	assert.False(t, more)
	assert.Equal(t, ProgressComplete, got.Progress)
}

func TestAdvanceExactlyHundred(t *testing.T) {
	tr := NewTracker()
	rec := tr.Ingest([]FileInfo{pdf("x.pdf", 1)})[0]

	for i := 0; i < 3; i++ {
		_, more := tr.Advance(rec.ID, 25)
		require.True(t, more)
	}
	got, more := tr.Advance(rec.ID, 25)
	assert.False(t, more)
	assert.Equal(t, StatusCompleted, got.Status)
}

func TestAdvanceIgnoresNegativeDelta(t *testing.T) {
	tr := NewTracker()
	rec := tr.Ingest([]FileInfo{pdf("x.pdf", 1)})[0]

	tr.Advance(rec.ID, 10)
	got, more := tr.Advance(rec.ID, -5)
	assert.True(t, more)
	assert.InDelta(t, 10.0, got.Progress, 1e-9)
}

func TestAdvanceUnknownRecord(t *testing.T) {
	tr := NewTracker()
	_, more := tr.Advance(uuid.New(), 10)
	assert.False(t, more)
}

func TestDismissRemovesAllWithName(t *testing.T) {
	tr := NewTracker()
	tr.Ingest([]FileInfo{pdf("dup.pdf", 1), pdf("keep.pdf", 2), pdf("dup.pdf", 3), pdf("dup.pdf.bak", 4)})

	removed := tr.Dismiss("dup.pdf")
	assert.Equal(t, 2, removed)

	records := tr.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "keep.pdf", records[0].Name)
	assert.Equal(t, "dup.pdf.bak", records[1].Name)

	assert.Zero(t, tr.Dismiss("missing.pdf"))
}

func TestRemoveByID(t *testing.T) {
	tr := NewTracker()
	added := tr.Ingest([]FileInfo{pdf("dup.pdf", 1), pdf("dup.pdf", 2)})

	require.True(t, tr.Remove(added[0].ID))
	assert.False(t, tr.Remove(added[0].ID))

	records := tr.Records()
	require.Len(t, records, 1)
	assert.Equal(t, added[1].ID, records[0].ID)

	// the removed record's pending tick is a no-op and stops its timer
	_, more := tr.Advance(added[0].ID, 10)
	assert.False(t, more)
}

func TestValidatorRejectsIntoErrorStatus(t *testing.T) {
	metrics := monitor.NewUploadMetrics()
	tr := NewTracker(WithValidator(NewValidator(0, nil)), WithMetrics(metrics))

	added := tr.Ingest([]FileInfo{
		pdf("ok.pdf", 1024),
		pdf("huge.pdf", DefaultMaxFileSize+1),
		{Name: "notes.txt", Size: 10},
	})
	require.Len(t, added, 3)

	assert.Equal(t, StatusUploading, added[0].Status)
	assert.Equal(t, StatusError, added[1].Status)
	assert.Contains(t, added[1].Reason, "exceeds maximum size")
	assert.Equal(t, StatusError, added[2].Status)
	assert.Contains(t, added[2].Reason, "unsupported file type")

	_, more := tr.Advance(added[1].ID, 50)
	assert.False(t, more)

	snap := tr.Stats()
	assert.Equal(t, int64(3), snap.Ingested)
	assert.Equal(t, int64(2), snap.Rejected)
	assert.Equal(t, 1, snap.Active)
	assert.Equal(t, 1, tr.InFlight())
}

func TestMetricsFollowLifecycle(t *testing.T) {
	clock := time.Date(2025, 1, 15, 9, 45, 0, 0, time.UTC)
	metrics := monitor.NewUploadMetrics()
	tr := NewTracker(WithMetrics(metrics), WithClock(func() time.Time { return clock }))

	added := tr.Ingest([]FileInfo{pdf("a.pdf", 1), pdf("b.pdf", 1)})
	clock = clock.Add(time.Second)
	tr.Advance(added[0].ID, 100)
	tr.Remove(added[1].ID)

	snap := tr.Stats()
	assert.Equal(t, int64(1), snap.Completed)
	assert.Equal(t, int64(1), snap.Dismissed)
	assert.Equal(t, 0, snap.Active)
	assert.Equal(t, time.Second, snap.AvgDuration)
	assert.True(t, tr.HasCompleted())
}

func TestECGScenario(t *testing.T) {
	tr := NewTracker()
	step := UniformStepper(DefaultMaxIncrement)

	added := tr.Ingest([]FileInfo{pdf("ecg.pdf", 2048000)})
	require.Len(t, added, 1)
	assert.Equal(t, "1.95 MB", added[0].SizeLabel)
	assert.Equal(t, StatusUploading, added[0].Status)

	id := added[0].ID
	last := 0.0
	more := true
	for ticks := 0; more; ticks++ {
		require.Less(t, ticks, 100000, "simulation never completed")
		var rec Record
		rec, more = tr.Advance(id, step())
		require.GreaterOrEqual(t, rec.Progress, last)
		if more {
			require.Less(t, rec.Progress, ProgressComplete)
			require.Equal(t, StatusUploading, rec.Status)
		}
		last = rec.Progress
	}

	rec, ok := tr.Get(id)
	require.True(t, ok)
	assert.Equal(t, StatusCompleted, rec.Status)
	assert.Equal(t, 100.0, rec.Progress)

	assert.Equal(t, 1, tr.Dismiss("ecg.pdf"))
	assert.Empty(t, tr.Records())
}
