package upload

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yildizm/cardiagno/internal/logger"
	"github.com/yildizm/cardiagno/internal/monitor"
)

// DefaultTickInterval and DefaultMaxIncrement drive the progress simulation
const (
	DefaultTickInterval = 100 * time.Millisecond
	DefaultMaxIncrement = 20.0
)

// Stepper yields the progress increment for one simulation tick
type Stepper func() float64

// UniformStepper returns increments uniformly distributed in [0, limit)
func UniformStepper(limit float64) Stepper {
	return func() float64 {
		return rand.Float64() * limit // #nosec G404 - cosmetic simulation
	}
}

// FixedStepper always returns the same increment, useful in tests and demos
func FixedStepper(step float64) Stepper {
	return func() float64 { return step }
}

// Option configures a Tracker
type Option func(*Tracker)

// WithValidator enables rejection of files; rejected files are kept with
// StatusError and never simulated
func WithValidator(v *Validator) Option {
	return func(t *Tracker) { t.validator = v }
}

// WithMetrics records session counters into m
func WithMetrics(m *monitor.UploadMetrics) Option {
	return func(t *Tracker) { t.metrics = m }
}

// WithLogger sets the tracker logger
func WithLogger(l *logger.Logger) Option {
	return func(t *Tracker) { t.log = l.WithComponent("upload") }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// Tracker owns the ordered list of upload records. It is safe for
// concurrent use; the TUI drives it from one goroutine, the headless
// runner from one goroutine per record.
type Tracker struct {
	mu        sync.Mutex
	records   []Record
	validator *Validator
	metrics   *monitor.UploadMetrics
	log       *logger.Logger
	now       func() time.Time
}

// NewTracker creates an empty tracker
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		metrics: monitor.NewUploadMetrics(),
		log:     logger.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Ingest appends one record per file in arrival order and returns copies
// of the new records. Records with StatusUploading need a simulation
// started for them.
func (t *Tracker) Ingest(files []FileInfo) []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	added := make([]Record, 0, len(files))
	for _, f := range files {
		rec := Record{
			ID:        uuid.New(),
			Name:      f.Name,
			MIMEType:  f.MIMEType,
			Size:      f.Size,
			SizeLabel: FormatSize(f.Size),
			Status:    StatusUploading,
			Progress:  0,
			AddedAt:   t.now(),
		}

		if t.validator != nil {
			if err := t.validator.Validate(f); err != nil {
				rec.Status = StatusError
				rec.Reason = err.Error()
				t.metrics.Rejected.Inc()
				t.log.WarnWithFields("rejected file", []logger.Field{logger.F("name", f.Name), logger.Error(err)})
			}
		}

		if rec.Status == StatusUploading {
			t.metrics.Active.Inc()
		}
		t.metrics.Ingested.Inc()
		t.records = append(t.records, rec)
		added = append(added, rec)

		t.log.DebugWithFields("ingested file", []logger.Field{
			logger.F("id", rec.ID),
			logger.F("name", rec.Name),
			logger.F("size", rec.SizeLabel),
			logger.F("status", rec.Status),
		})
	}
	return added
}

// Advance applies one simulation tick to the record with the given ID.
// Progress never decreases; once it reaches 100 it is clamped and the
// record completes. The boolean result says whether the record's timer
// must keep firing: false for completed, failed or removed records.
func (t *Tracker) Advance(id uuid.UUID, delta float64) (Record, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return Record{}, false
	}

	rec := &t.records[i]
	if rec.Status != StatusUploading {
		return *rec, false
	}

	if delta > 0 {
		rec.Progress += delta
	}
	if rec.Progress >= ProgressComplete {
		rec.Progress = ProgressComplete
		rec.Status = StatusCompleted
		t.metrics.Completed.Inc()
		t.metrics.Active.Dec()
		t.metrics.Duration.Record(t.now().Sub(rec.AddedAt))
		t.log.DebugWithFields("upload completed", []logger.Field{logger.F("name", rec.Name)})
		return *rec, false
	}
	return *rec, true
}

// Dismiss removes every record whose name matches exactly and returns how
// many were removed. Duplicate names are all removed together.
func (t *Tracker) Dismiss(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.removeWhere(func(r *Record) bool { return r.Name == name })
}

// Remove deletes the single record with the given ID
func (t *Tracker) Remove(id uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.removeWhere(func(r *Record) bool { return r.ID == id }) == 1
}

func (t *Tracker) removeWhere(match func(*Record) bool) int {
	kept := t.records[:0]
	removed := 0
	for i := range t.records {
		rec := t.records[i]
		if match(&rec) {
			removed++
			if rec.Status == StatusUploading {
				t.metrics.Active.Dec()
			}
			continue
		}
		kept = append(kept, rec)
	}
	// clear the tail so removed records are not retained by the backing array
	for i := len(kept); i < len(t.records); i++ {
		t.records[i] = Record{}
	}
	t.records = kept
	t.metrics.Dismissed.Add(int64(removed))
	return removed
}

// Get returns a copy of the record with the given ID
func (t *Tracker) Get(id uuid.UUID) (Record, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if i := t.indexOf(id); i >= 0 {
		return t.records[i], true
	}
	return Record{}, false
}

// Records returns a copy of all records in arrival order
func (t *Tracker) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Len returns the number of records
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

// HasCompleted reports whether any record finished uploading
func (t *Tracker) HasCompleted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range t.records {
		if r.Status == StatusCompleted {
			return true
		}
	}
	return false
}

// InFlight counts records still uploading
func (t *Tracker) InFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, r := range t.records {
		if r.Status == StatusUploading {
			n++
		}
	}
	return n
}

// Stats returns the session counters
func (t *Tracker) Stats() monitor.UploadSnapshot {
	return t.metrics.Snapshot()
}

func (t *Tracker) indexOf(id uuid.UUID) int {
	for i := range t.records {
		if t.records[i].ID == id {
			return i
		}
	}
	return -1
}
