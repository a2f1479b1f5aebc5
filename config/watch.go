package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher reloads a YAML override file whenever it changes on disk.
// Reloaded tunings are delivered on Updates; the consumer decides when to Apply them.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan Tuning
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	base    Tuning
}

// NewWatcher watches the directory holding path, so editors that replace the file still trigger.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Updates: make(chan Tuning, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		base:    Current(),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll returns the most recent reloaded tuning, if any, without blocking.
func (w *Watcher) Poll() (Tuning, bool) {
	var (
		latest Tuning
		ok     bool
	)
	for {
		select {
		case t := <-w.Updates:
			latest, ok = t, true
		default:
			return latest, ok
		}
	}
}

func (w *Watcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		log.Warn().Err(err).Str("path", w.path).Msg("config reload failed")
		return
	}
	t, err := Parse(data, w.base)
	if err != nil {
		log.Warn().Err(err).Str("path", w.path).Msg("config reload rejected")
		return
	}
	log.Info().Str("path", w.path).Msg("config reloaded")
	select {
	case w.Updates <- t:
	default:
		log.Warn().Str("path", w.path).Msg("config reload dropped, consumer is behind")
	}
}
