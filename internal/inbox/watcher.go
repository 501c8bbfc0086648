package inbox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yildizm/cardiagno/internal/logger"
	"github.com/yildizm/cardiagno/internal/upload"
)

// ErrNotDirectory is returned when the inbox path is not a directory
var ErrNotDirectory = errors.New("inbox path is not a directory")

// DefaultSettle is how long a file must stay quiet before it is delivered
const DefaultSettle = 250 * time.Millisecond

// Watcher turns files landing in a directory into drops. A created (or
// moved in) file is delivered once no write has touched it for the settle
// period, so copies in progress are not reported half-written. Writes to a
// file that was already delivered are ignored.
type Watcher struct {
	dir    string
	settle time.Duration
	fs     *fsnotify.Watcher
	log    *logger.Logger

	drops chan upload.FileInfo
	done  chan struct{}

	mu       sync.Mutex
	pending  map[string]*time.Timer
	closed   bool
	once     sync.Once
	wg       sync.WaitGroup
	inflight sync.WaitGroup
}

// New creates a watcher for dir. Call Start to begin delivering drops.
func New(dir string, settle time.Duration, log *logger.Logger) (*Watcher, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("empty inbox path")
	}
	clean := filepath.Clean(dir)

	info, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("cannot access inbox: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, clean)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(clean); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch inbox: %w", err)
	}

	if settle <= 0 {
		settle = DefaultSettle
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Watcher{
		dir:     clean,
		settle:  settle,
		fs:      fsw,
		log:     log.WithComponent("inbox"),
		drops:   make(chan upload.FileInfo, 16),
		done:    make(chan struct{}),
		pending: make(map[string]*time.Timer),
	}, nil
}

// Dir returns the watched directory
func (w *Watcher) Dir() string {
	return w.dir
}

// Drops delivers files as they settle. The channel is closed after Close.
func (w *Watcher) Drops() <-chan upload.FileInfo {
	return w.drops
}

// Start runs the event loop until ctx is cancelled or Close is called
func (w *Watcher) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.loop(ctx)
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if timer, ok := w.pending[event.Name]; ok {
		timer.Reset(w.settle)
		return
	}
	if !event.Has(fsnotify.Create) {
		return
	}

	path := event.Name
	w.pending[path] = time.AfterFunc(w.settle, func() { w.deliver(path) })
}

func (w *Watcher) deliver(path string) {
	w.mu.Lock()
	delete(w.pending, path)
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.inflight.Add(1)
	w.mu.Unlock()
	defer w.inflight.Done()

	info, err := upload.Describe(path)
	if err != nil {
		// directories and files removed before settling end up here
		w.log.Debug("skipping %s: %v", path, err)
		return
	}

	w.log.InfoWithFields("file dropped", []logger.Field{logger.F("name", info.Name), logger.F("size", info.Size)})
	select {
	case w.drops <- info:
	case <-w.done:
	}
}

// Close stops the watcher, discards files that have not settled yet and
// closes the Drops channel
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		for path, timer := range w.pending {
			timer.Stop()
			delete(w.pending, path)
		}
		w.mu.Unlock()

		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
		w.inflight.Wait()
		close(w.drops)
	})
	return err
}
