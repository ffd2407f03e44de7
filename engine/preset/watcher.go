package preset

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-control/engine/camera"
	"github.com/fsnotify/fsnotify"
)

// Configurable is anything that accepts controller options at runtime.
// Controller, Controller2d and Controller3d all satisfy it.
type Configurable interface {
	Configure(options ...camera.ControllerOption)
}

// Binding ties a controller to the preset it should be configured from.
type Binding struct {
	Preset     string
	Controller Configurable
}

// Apply configures every bound controller from set. Bindings that name an
// unknown preset are skipped and reported in the joined error.
//
// Parameters:
//   - set: the presets to apply
//   - bindings: controllers and the preset names they use
//
// Returns:
//   - error: joined ErrUnknownPreset errors, or nil
func Apply(set *Set, bindings ...Binding) error {
	var errs []error
	for _, b := range bindings {
		p, err := set.Get(b.Preset)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		b.Controller.Configure(p.Options()...)
	}
	return errors.Join(errs...)
}

// Watcher reloads a presets file whenever it changes on disk and hands the
// new set to a callback. A file that fails to parse is logged and the
// previous set stays current.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	timer    *time.Timer
	current  *Set
	onReload func(*Set)
	logger   *slog.Logger
	done     chan struct{}
	once     sync.Once
}

// WatcherOption configures a Watcher.
type WatcherOption func(w *Watcher)

// WithDebounce sets how long the watcher waits after the last change event
// before reloading. Editors often write a file in several steps.
//
// Parameters:
//   - d: debounce duration
//
// Returns:
//   - WatcherOption: option function to apply
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatcherLogger sets the logger used for reload failures.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - WatcherOption: option function to apply
func WithWatcherLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher loads path once and starts watching it. onReload is called with
// the initial set and again after every successful reload.
//
// Parameters:
//   - path: the presets file
//   - onReload: callback receiving each parsed set
//   - options: functional options
//
// Returns:
//   - *Watcher: the running watcher
//   - error: initial load or watch setup error
func NewWatcher(path string, onReload func(*Set), options ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("preset: resolve path %s: %w", path, err)
	}
	w := &Watcher{
		path:     abs,
		debounce: 100 * time.Millisecond,
		onReload: onReload,
		logger:   slog.Default(),
		done:     make(chan struct{}),
	}
	for _, option := range options {
		option(w)
	}

	set, err := Load(abs)
	if err != nil {
		return nil, err
	}
	w.current = set

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("preset: create watcher: %w", err)
	}
	// Watch the directory: saving through a rename replaces the file's inode.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("preset: watch %s: %w", abs, err)
	}
	w.watcher = fw

	if onReload != nil {
		onReload(set)
	}
	go w.loop()
	return w, nil
}

// Current returns the most recently loaded set.
func (w *Watcher) Current() *Set {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.schedule()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("preset watcher error", "path", w.path, "err", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	set, err := Load(w.path)
	if err != nil {
		w.logger.Warn("preset reload failed, keeping previous presets", "path", w.path, "err", err)
		return
	}
	w.mu.Lock()
	w.current = set
	cb := w.onReload
	w.mu.Unlock()

	w.logger.Info("presets reloaded", "path", w.path, "presets", set.Names())
	if cb != nil {
		cb(set)
	}
}

// Close stops watching. Pending reloads are cancelled.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
