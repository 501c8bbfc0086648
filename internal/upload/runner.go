package upload

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Runner drives simulations outside the TUI: one goroutine and ticker per
// in-flight record, each cancellable on its own. Removing a record through
// the runner stops its timer immediately.
type Runner struct {
	tracker  *Tracker
	interval time.Duration
	step     Stepper
	onUpdate func(Record)

	mu      sync.Mutex
	cancels map[uuid.UUID]context.CancelFunc
	wg      sync.WaitGroup
}

// NewRunner creates a runner over tracker. onUpdate, if set, is called from
// the simulation goroutines after every tick and must be safe for
// concurrent use.
func NewRunner(tracker *Tracker, interval time.Duration, step Stepper, onUpdate func(Record)) *Runner {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if step == nil {
		step = UniformStepper(DefaultMaxIncrement)
	}
	return &Runner{
		tracker:  tracker,
		interval: interval,
		step:     step,
		onUpdate: onUpdate,
		cancels:  make(map[uuid.UUID]context.CancelFunc),
	}
}

// Ingest hands files to the tracker and starts a simulation for every
// accepted record
func (r *Runner) Ingest(ctx context.Context, files []FileInfo) []Record {
	added := r.tracker.Ingest(files)
	for _, rec := range added {
		if rec.Uploading() {
			r.start(ctx, rec.ID)
		}
	}
	return added
}

func (r *Runner) start(parent context.Context, id uuid.UUID) {
	ctx, cancel := context.WithCancel(parent)

	r.mu.Lock()
	r.cancels[id] = cancel
	r.mu.Unlock()

	r.wg.Add(1)
	go r.run(ctx, id)
}

func (r *Runner) run(ctx context.Context, id uuid.UUID) {
	defer r.wg.Done()
	defer r.stop(id)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rec, more := r.tracker.Advance(id, r.step())
			if r.onUpdate != nil && rec.ID != uuid.Nil {
				r.onUpdate(rec)
			}
			if !more {
				return
			}
		}
	}
}

func (r *Runner) stop(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cancel, ok := r.cancels[id]; ok {
		cancel()
		delete(r.cancels, id)
	}
}

// Remove cancels the record's timer and deletes the record
func (r *Runner) Remove(id uuid.UUID) bool {
	r.stop(id)
	return r.tracker.Remove(id)
}

// Dismiss cancels the timers of every record with the name and deletes them
func (r *Runner) Dismiss(name string) int {
	for _, rec := range r.tracker.Records() {
		if rec.Name == name {
			r.stop(rec.ID)
		}
	}
	return r.tracker.Dismiss(name)
}

// Running returns the number of live timers
func (r *Runner) Running() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cancels)
}

// Wait blocks until every simulation goroutine has returned
func (r *Runner) Wait() {
	r.wg.Wait()
}
