package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces editor save bursts into one reload.
const debounceWindow = 250 * time.Millisecond

// WatchBoardConfig watches the board file and sends the re-parsed config on
// the returned channel after each change. Watching the parent directory
// survives rename-and-replace saves. Close stop to tear the watcher down.
func WatchBoardConfig(path string, stop <-chan struct{}) (<-chan BoardConfig, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	out := make(chan BoardConfig, 1)
	go func() {
		defer w.Close()
		defer close(out)
		var pending *time.Timer
		fire := make(chan struct{}, 1)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != filepath.Base(path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if pending != nil {
					pending.Stop()
				}
				pending = time.AfterFunc(debounceWindow, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			case <-fire:
				cfg, err := LoadBoardConfig(path)
				if err != nil {
					continue
				}
				select {
				case out <- cfg:
				case <-stop:
					return
				}
			case <-w.Errors:
				// watcher errors are non-fatal for a wall display
			case <-stop:
				return
			}
		}
	}()
	return out, nil
}
