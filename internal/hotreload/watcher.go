package hotreload

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config selects what is watched.
type Config struct {
	Dirs     []string      // watched recursively
	Exts     []string      // e.g. ".html"; empty matches every file
	Debounce time.Duration // burst window, defaults to 200ms
}

// Watcher calls onChange once per burst of writes to matching files.
type Watcher struct {
	cfg      Config
	logger   *slog.Logger
	watcher  *fsnotify.Watcher
	onChange func(path string)

	mu      sync.Mutex
	timer   *time.Timer
	running bool
	done    chan struct{}
}

func NewWatcher(cfg Config, logger *slog.Logger, onChange func(path string)) (*Watcher, error) {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 200 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &Watcher{cfg: cfg, logger: logger, watcher: fw, onChange: onChange, done: make(chan struct{})}, nil
}

// Start adds the configured directories and runs the event loop until ctx ends or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher is already running")
	}
	w.running = true
	w.mu.Unlock()

	for _, dir := range w.cfg.Dirs {
		if err := w.addDir(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	go w.loop(ctx)
	w.logger.Info("template watcher started", "dirs", w.cfg.Dirs)
	return nil
}

// Stop closes the underlying watcher. Safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	if w.timer != nil {
		w.timer.Stop()
	}
	return w.watcher.Close()
}

func (w *Watcher) addDir(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			_ = w.Stop()
			return
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			if err := w.addDir(ev.Name); err != nil {
				w.logger.Error("watch new directory", "dir", ev.Name, "error", err)
			}
			return
		}
	}
	if !w.matches(ev.Name) {
		return
	}
	w.logger.Debug("file event", "event", ev.Op.String(), "file", ev.Name)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	path := ev.Name
	w.timer = time.AfterFunc(w.cfg.Debounce, func() { w.onChange(path) })
}

func (w *Watcher) matches(path string) bool {
	if len(w.cfg.Exts) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, e := range w.cfg.Exts {
		if e == ext {
			return true
		}
	}
	return false
}
