package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent is emitted by Calendar.Watch when the calendar file
// changes on disk, typically because another almanac process saved.
type ChangeEvent struct {
	Path string
}

// Watch streams change notifications until ctx is cancelled. Callers
// should drain the returned channel; notifications are dropped rather
// than blocking the watcher when the consumer is slow, since a reload
// picks up all accumulated changes anyway. The channel is closed once
// ctx is done or the watcher fails.
func (c *calendarFile) Watch(ctx context.Context) (<-chan ChangeEvent, error) {
	dir := filepath.Dir(c.path)
	if dir == "" {
		return nil, errors.New("store: calendar path unknown")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure calendar directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan ChangeEvent, 8)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		send := func() {
			select {
			case events <- ChangeEvent{Path: c.path}:
			default:
				// Consumer not ready; the next reload covers it.
			}
		}

		throttle := newChangeThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Classifying the failure is not worth it; nudge the
				// consumer into a reload and keep watching.
				throttle.Enqueue(send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				// Saves land as a rename of the temp file onto the
				// calendar path, so match on the final name only.
				if filepath.Clean(evt.Name) != filepath.Clean(c.path) {
					continue
				}
				throttle.Enqueue(send)
			}
		}
	}()

	return events, nil
}

// changeThrottle coalesces bursts of filesystem activity so consumers
// reload once per save instead of once per syscall.
type changeThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	delay   time.Duration
}

func newChangeThrottle(delay time.Duration) *changeThrottle {
	return &changeThrottle{delay: delay}
}

func (t *changeThrottle) Enqueue(send func()) {
	t.mu.Lock()
	t.pending = true
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *changeThrottle) flush(send func()) {
	t.mu.Lock()
	fire := t.pending
	t.pending = false
	t.timer = nil
	t.mu.Unlock()

	if fire {
		send()
	}
}

func (t *changeThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
