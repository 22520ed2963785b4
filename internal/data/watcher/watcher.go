package watcher

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-entparser/internal/util"
)

// FileEvent is a change to a chat log file in the watched directory.
type FileEvent struct {
	Path      string
	Operation string
}

// FileWatcher reports creations, writes and renames of log files in a single
// directory. Subdirectories are not watched.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	dir       string
	extension string
	events    chan FileEvent
	done      chan struct{}
}

// NewFileWatcher starts watching dir for files with the ".log" extension.
func NewFileWatcher(dir string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	fw := &FileWatcher{
		watcher:   watcher,
		dir:       dir,
		extension: ".log",
		events:    make(chan FileEvent, 100),
		done:      make(chan struct{}),
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.events)

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.relevant(event) {
				continue
			}
			select {
			case fw.events <- FileEvent{Path: event.Name, Operation: event.Op.String()}:
			case <-fw.done:
				return
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue running
			util.LogError("File monitoring error: " + err.Error())

		case <-fw.done:
			return
		}
	}
}

func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return false
	}
	if filepath.Dir(event.Name) != filepath.Clean(fw.dir) {
		return false
	}
	return strings.EqualFold(filepath.Ext(event.Name), fw.extension)
}

// Events delivers log file changes. The channel is closed after Close.
func (fw *FileWatcher) Events() <-chan FileEvent {
	return fw.events
}

// Close stops watching.
func (fw *FileWatcher) Close() error {
	select {
	case <-fw.done:
		return nil
	default:
		close(fw.done)
	}
	return fw.watcher.Close()
}

// Debounce calls fn with each batch of events once no new event has arrived
// for quiet. Calls happen on the caller's goroutine, one at a time; events
// arriving while fn runs are gathered into the next batch. Debounce returns
// when ctx is done or events is closed, flushing a pending batch in the
// latter case.
func Debounce(ctx context.Context, events <-chan FileEvent, quiet time.Duration, fn func([]FileEvent)) {
	var (
		pending []FileEvent
		timer   *time.Timer
		fire    <-chan time.Time
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

		case ev, ok := <-events:
			if !ok {
				if len(pending) > 0 {
					fn(pending)
				}
				return
			}
			pending = append(pending, ev)
			if timer == nil {
				timer = time.NewTimer(quiet)
			} else {
				timer.Reset(quiet)
			}
			fire = timer.C

		case <-fire:
			batch := pending
			pending = nil
			fire = nil
			fn(batch)
		}
	}
}
