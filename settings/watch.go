package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reports edits made to a settings file by other programs.
//
// It never touches a Store. Receivers get the digest of the new contents
// and pass it to Store.ReloadIfChanged on the goroutine that owns the store,
// which skips files the store itself just wrote.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher

	changes chan Digest
	errors  chan error
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// NewWatcher watches the directory holding path, creating it if needed.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		path:     path,
		debounce: debounce,
		fsw:      fsw,
		changes:  make(chan Digest, 1),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}, nil
}

// Start begins processing events until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Changes delivers the digest of the file after each settled edit.
func (w *Watcher) Changes() <-chan Digest {
	return w.changes
}

// Errors delivers watch and read failures. Errors are dropped when nobody reads them.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()

	var (
		timer   *time.Timer
		settled <-chan time.Time
		last    Digest
		seen    bool
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			settled = timer.C

		case <-settled:
			settled = nil
			data, err := os.ReadFile(w.path)
			if err != nil {
				w.report(fmt.Errorf("failed to read %s: %w", w.path, err))
				continue
			}
			d := Sum(data)
			if seen && d == last {
				continue
			}
			last, seen = d, true
			log.Debugw("settings file changed on disk", "path", w.path, "digest", d)

			select {
			case w.changes <- d:
			case <-ctx.Done():
				return
			case <-w.done:
				return
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *Watcher) report(err error) {
	log.Warnw("settings watcher error", "path", w.path, "error", err)
	select {
	case w.errors <- err:
	default:
	}
}
