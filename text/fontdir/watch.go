package fontdir

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/canvas2d/text"
)

// DefaultDebounce is how long a Watcher waits after the last change
// before reloading.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads a SharedFontConfig when font files are added, changed
// or removed in the watched directories. Every reload bumps the shared
// config version, so contexts using it rebuild their font systems on
// their next text operation.
type Watcher struct {
	watcher  *fsnotify.Watcher
	shared   *text.SharedFontConfig
	base     text.FontConfig
	debounce time.Duration
	onError  func(error)

	stopCh    chan struct{}
	stoppedCh chan struct{}
	mu        sync.Mutex
	running   bool
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the reload delay. Non-positive values select
// DefaultDebounce.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler receives watch errors. By default they are logged.
func WithErrorHandler(fn func(error)) WatchOption {
	return func(w *Watcher) { w.onError = fn }
}

// NewWatcher loads base into shared and prepares to watch Dirs(base).
// Directories that do not exist are skipped. Call Start to begin
// watching and Stop to release the watcher.
func NewWatcher(shared *text.SharedFontConfig, base text.FontConfig, opts ...WatchOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fontdir: watcher: %w", err)
	}
	w := &Watcher{
		watcher:  fw,
		shared:   shared,
		base:     base.Clone(),
		debounce: DefaultDebounce,
		onError: func(err error) {
			text.Logger().Warn("fontdir: watch error", "err", err)
		},
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, dir := range Dirs(base) {
		if err := fw.Add(dir); err != nil {
			text.Logger().Warn("fontdir: not watching directory", "dir", dir, "err", err)
		}
	}
	w.Reload()
	return w, nil
}

// Watched returns the directories being watched.
func (w *Watcher) Watched() []string {
	return w.watcher.WatchList()
}

// Reload reads the font directories again and publishes the result to
// the shared config. It returns the new config version.
func (w *Watcher) Reload() uint64 {
	cfg := Load(w.base)
	v := w.shared.Set(cfg)
	text.Logger().Info("fontdir: fonts reloaded", "version", v, "custom_fonts", len(cfg.CustomFonts))
	return v
}

// Start begins watching in a goroutine.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	go w.loop()
}

// Stop stops watching and waits for the goroutine to exit. A Watcher
// that was never started is closed directly.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Watcher) loop() {
	defer close(w.stoppedCh)
	defer func() { _ = w.watcher.Close() }()

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Create) && isDir(ev.Name) {
				// Fonts in new subdirectories are read on reload, and
				// the directory itself is watched from now on.
				_ = w.watcher.Add(ev.Name)
			} else if !IsFontFile(ev.Name) {
				continue
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			timerCh = timer.C

		case <-timerCh:
			w.Reload()
			timer, timerCh = nil, nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}
