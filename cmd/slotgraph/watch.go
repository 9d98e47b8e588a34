package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// watchFiles calls reload once per burst of writes to any of paths, after
// debounce of quiet. Parent directories are watched so editors that replace
// files by rename are seen too. It returns when ctx is done.
func (a *app) watchFiles(ctx context.Context, paths []string, debounce time.Duration, reload func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	wanted := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		wanted[abs] = true
		if err = w.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !wanted[filepath.Clean(ev.Name)] || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watch error", "err", err)
		case <-timer.C:
			if err := reload(); err != nil {
				a.log.Error("reload failed", "err", err)
				continue
			}
			a.log.Info("graph reloaded")
		}
	}
}
