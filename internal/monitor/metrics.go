package monitor

import (
	"math"
	"sync/atomic"
	"time"
)

// Counter is a thread-safe counter metric
type Counter struct {
	value int64
	name  string
}

// NewCounter creates a new counter metric
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Inc increments the counter by 1
func (c *Counter) Inc() {
	atomic.AddInt64(&c.value, 1)
}

// Add adds the given value to the counter
func (c *Counter) Add(value int64) {
	atomic.AddInt64(&c.value, value)
}

// Get returns the current counter value
func (c *Counter) Get() int64 {
	return atomic.LoadInt64(&c.value)
}

// Reset resets the counter to 0
func (c *Counter) Reset() {
	atomic.StoreInt64(&c.value, 0)
}

// Name returns the counter name
func (c *Counter) Name() string {
	return c.name
}

// Gauge is a thread-safe gauge metric that can go up and down
type Gauge struct {
	value uint64 // float64 bits
	name  string
}

// NewGauge creates a new gauge metric
func NewGauge(name string) *Gauge {
	return &Gauge{name: name}
}

// Set sets the gauge to the given value
func (g *Gauge) Set(value float64) {
	atomic.StoreUint64(&g.value, math.Float64bits(value))
}

// Get returns the current gauge value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(atomic.LoadUint64(&g.value))
}

// Inc increments the gauge by 1
func (g *Gauge) Inc() {
	g.Add(1)
}

// Dec decrements the gauge by 1
func (g *Gauge) Dec() {
	g.Add(-1)
}

// Add adds the given value to the gauge
func (g *Gauge) Add(value float64) {
	for {
		old := atomic.LoadUint64(&g.value)
		next := math.Float64bits(math.Float64frombits(old) + value)
		if atomic.CompareAndSwapUint64(&g.value, old, next) {
			return
		}
	}
}

// Name returns the gauge name
func (g *Gauge) Name() string {
	return g.name
}

// Timer accumulates durations, used for simulated upload completion times
type Timer struct {
	count     int64
	totalTime int64
	maxTime   int64
	name      string
}

// NewTimer creates a new timer metric
func NewTimer(name string) *Timer {
	return &Timer{name: name}
}

// Record records a duration measurement
func (t *Timer) Record(duration time.Duration) {
	nanos := duration.Nanoseconds()
	atomic.AddInt64(&t.count, 1)
	atomic.AddInt64(&t.totalTime, nanos)

	for {
		current := atomic.LoadInt64(&t.maxTime)
		if nanos <= current || atomic.CompareAndSwapInt64(&t.maxTime, current, nanos) {
			return
		}
	}
}

// Count returns the number of recorded measurements
func (t *Timer) Count() int64 {
	return atomic.LoadInt64(&t.count)
}

// MaxTime returns the maximum recorded time
func (t *Timer) MaxTime() time.Duration {
	return time.Duration(atomic.LoadInt64(&t.maxTime))
}

// AvgTime returns the average time of all measurements
func (t *Timer) AvgTime() time.Duration {
	count := atomic.LoadInt64(&t.count)
	if count == 0 {
		return 0
	}
	return time.Duration(atomic.LoadInt64(&t.totalTime) / count)
}

// Name returns the timer name
func (t *Timer) Name() string {
	return t.name
}

// UploadMetrics groups the per-session counters of the upload tracker.
// Active is a gauge because records leave the in-flight set both by
// completing and by being removed.
type UploadMetrics struct {
	Ingested  *Counter
	Completed *Counter
	Rejected  *Counter
	Dismissed *Counter
	Active    *Gauge
	Duration  *Timer
}

// NewUploadMetrics creates a zeroed metric set
func NewUploadMetrics() *UploadMetrics {
	return &UploadMetrics{
		Ingested:  NewCounter("uploads_ingested"),
		Completed: NewCounter("uploads_completed"),
		Rejected:  NewCounter("uploads_rejected"),
		Dismissed: NewCounter("uploads_dismissed"),
		Active:    NewGauge("uploads_active"),
		Duration:  NewTimer("upload_duration"),
	}
}

// UploadSnapshot is a point-in-time copy of UploadMetrics
type UploadSnapshot struct {
	Timestamp   time.Time     `json:"timestamp"`
	Ingested    int64         `json:"ingested"`
	Completed   int64         `json:"completed"`
	Rejected    int64         `json:"rejected"`
	Dismissed   int64         `json:"dismissed"`
	Active      int           `json:"active"`
	AvgDuration time.Duration `json:"avg_duration_ns"`
	MaxDuration time.Duration `json:"max_duration_ns"`
}

// Snapshot captures the current values
func (m *UploadMetrics) Snapshot() UploadSnapshot {
	return UploadSnapshot{
		Timestamp:   time.Now(),
		Ingested:    m.Ingested.Get(),
		Completed:   m.Completed.Get(),
		Rejected:    m.Rejected.Get(),
		Dismissed:   m.Dismissed.Get(),
		Active:      int(m.Active.Get()),
		AvgDuration: m.Duration.AvgTime(),
		MaxDuration: m.Duration.MaxTime(),
	}
}
