package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const settleDelay = 100 * time.Millisecond

// TuningWatcher reloads a tuning file whenever it changes on disk. Reloaded
// values are delivered on Updates; the receiver decides when to apply them.
type TuningWatcher struct {
	path    string
	base    Tuning
	watcher *fsnotify.Watcher
	updates chan Tuning
	closeCh chan struct{}
	once    sync.Once
}

// WatchTuning starts watching path. Each reload is parsed on top of base.
func WatchTuning(path string, base Tuning) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("tuning: create watcher: %w", err)
	}

	// Editors often replace the file, so watch the directory.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("tuning: watch %s: %w", dir, err)
	}

	tw := &TuningWatcher{
		path:    filepath.Clean(path),
		base:    base,
		watcher: w,
		updates: make(chan Tuning, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

// Updates delivers the most recent successfully parsed tuning.
func (tw *TuningWatcher) Updates() <-chan Tuning {
	return tw.updates
}

func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
	})
	return err
}

func (tw *TuningWatcher) run() {
	// Writes often arrive as several events; reload once they settle.
	var settle <-chan time.Time
	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			settle = time.After(settleDelay)
		case <-settle:
			settle = nil
			t, err := LoadTuning(tw.path, tw.base)
			if err != nil {
				log.Printf("[tuning] reload failed: %v", err)
				continue
			}
			tw.publish(t)
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[tuning] watcher error: %v", err)
		case <-tw.closeCh:
			return
		}
	}
}

// publish keeps only the newest value in the buffer.
func (tw *TuningWatcher) publish(t Tuning) {
	select {
	case <-tw.updates:
	default:
	}
	tw.updates <- t
}
