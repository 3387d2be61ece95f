package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// fileChangedMsg reports a change to a watched input.
type fileChangedMsg struct {
	path string
}

// watchErrMsg reports a watcher failure; watching stops.
type watchErrMsg struct {
	err error
}

// Watcher observes input files for live reload. Directories are watched
// rather than files so editors that replace files on save are still seen.
type Watcher struct {
	fs    *fsnotify.Watcher
	files map[string]bool
}

// NewWatcher watches paths. Paths that are not files on disk (such as "-")
// are skipped.
func NewWatcher(paths []string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{fs: fw, files: map[string]bool{}}
	dirs := map[string]bool{}
	for _, p := range paths {
		if p == "-" {
			continue
		}
		abs, absErr := filepath.Abs(p)
		if absErr != nil {
			_ = fw.Close()
			return nil, absErr
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if addErr := fw.Add(dir); addErr != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, addErr)
		}
		dirs[dir] = true
	}
	return w, nil
}

// Next returns a command that blocks until a watched file is written,
// created, renamed or removed.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.fs.Events:
				if !ok {
					return nil
				}
				if !w.files[ev.Name] {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove) {
					return fileChangedMsg{path: ev.Name}
				}
			case err, ok := <-w.fs.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
