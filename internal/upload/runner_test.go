package upload

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerCompletesAll(t *testing.T) {
	tr := NewTracker()
	var updates atomic.Int64
	r := NewRunner(tr, time.Millisecond, FixedStepper(40), func(Record) { updates.Add(1) })

	r.Ingest(context.Background(), []FileInfo{pdf("a.pdf", 1), pdf("b.pdf", 2)})
	r.Wait()

	for _, rec := range tr.Records() {
		assert.Equal(t, StatusCompleted, rec.Status, rec.Name)
		assert.Equal(t, ProgressComplete, rec.Progress)
	}
	// 40, 80, 100 for each record
	assert.Equal(t, int64(6), updates.Load())
	assert.Zero(t, r.Running())
}

func TestRunnerRemoveCancelsTimer(t *testing.T) {
	tr := NewTracker()
	r := NewRunner(tr, time.Hour, FixedStepper(1), nil)

	added := r.Ingest(context.Background(), []FileInfo{pdf("slow.pdf", 1), pdf("slow.pdf", 1), pdf("other.pdf", 1)})
	require.Equal(t, 3, r.Running())

	require.True(t, r.Remove(added[2].ID))
	assert.Equal(t, 2, r.Running())

	assert.Equal(t, 2, r.Dismiss("slow.pdf"))

	done := make(chan struct{})
	go func() {
		r.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timers were not cancelled")
	}
	assert.Zero(t, r.Running())
	assert.Zero(t, tr.Len())
}

func TestRunnerContextCancel(t *testing.T) {
	tr := NewTracker()
	r := NewRunner(tr, time.Hour, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	r.Ingest(ctx, []FileInfo{pdf("a.pdf", 1)})
	cancel()
	r.Wait()

	assert.Zero(t, r.Running())
	assert.Equal(t, 1, tr.InFlight())
}

func TestRunnerSkipsRejected(t *testing.T) {
	tr := NewTracker(WithValidator(NewValidator(0, nil)))
	r := NewRunner(tr, time.Hour, nil, nil)

	r.Ingest(context.Background(), []FileInfo{{Name: "virus.exe", Size: 1}})
	assert.Zero(t, r.Running())
	r.Wait()
}
