// Package fswatcher polls a set of files for changes.
package fswatcher

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/afero"
)

type fileInfo struct {
	modTime time.Time
	size    int64
	mode    fs.FileMode
}

// Watcher reports changes of the metadata of a fixed list of files.
// Removing or creating a watched file counts as a change.
type Watcher struct {
	filesystem afero.Fs
	paths      []string
	interval   time.Duration
	state      map[string]fileInfo
}

// Result of a single poll.
type Result struct {
	HasChanged bool
	Err        error
}

// New returns a Watcher polling paths every interval.
func New(filesystem afero.Fs, paths []string, interval time.Duration) *Watcher {
	return &Watcher{
		filesystem: filesystem,
		paths:      paths,
		interval:   interval,
		state:      make(map[string]fileInfo, len(paths)),
	}
}

func (w *Watcher) collectState(state map[string]fileInfo) error {
	for _, path := range w.paths {
		info, err := w.filesystem.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
		state[path] = fileInfo{
			modTime: info.ModTime(),
			size:    info.Size(),
			mode:    info.Mode(),
		}
	}

	return nil
}

// Changed compares the current metadata of the watched files against the last poll.
// The first call reports a change if any of the files exists.
func (w *Watcher) Changed() (bool, error) {
	state := make(map[string]fileInfo, len(w.paths))
	err := w.collectState(state)
	if err != nil {
		return false, err
	}
	defer func() {
		w.state = state
	}()

	if len(state) != len(w.state) {
		return true, nil
	}
	for path, info := range state {
		last, ok := w.state[path]
		if !ok {
			return true, nil
		}
		if !info.modTime.Equal(last.modTime) ||
			info.size != last.size ||
			info.mode != last.mode {
			return true, nil
		}
	}

	return false, nil
}

// Watch polls until ctx is done and sends a result for every change or error.
// The channel is closed once ctx is done or after the first error.
func (w *Watcher) Watch(ctx context.Context) <-chan Result {
	resultCh := make(chan Result)
	go func() {
		defer close(resultCh)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				hasChanged, err := w.Changed()
				if err == nil && !hasChanged {
					continue
				}
				select {
				case resultCh <- Result{HasChanged: hasChanged, Err: err}:
				case <-ctx.Done():
					return
				}
				if err != nil {
					return
				}
			}
		}
	}()

	return resultCh
}
