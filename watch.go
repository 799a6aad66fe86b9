// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wtk

import (
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"
)

// WatchTheme reloads the theme from path whenever the file is rewritten
// and delivers it to apply on the event goroutine. The reload starts
// from the current theme, so fields absent from the file keep their
// values. The returned function stops watching.
func (a *Application) WatchTheme(path string, apply func(*Theme)) (stop func() error, err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err = w.Add(path); err != nil {
		w.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}

				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					break
				}

				t := *a.theme
				if err := readTheme(path, &t); err != nil {
					glog.Errorf("theme reload %s: %v", path, err)
					break
				}

				glog.V(1).Infof("theme reloaded from %s", path)
				a.Post(func() { apply(&t) })
			case err, ok := <-w.Errors:
				if !ok {
					return
				}

				glog.Errorf("theme watcher: %v", err)
			}
		}
	}()
	return w.Close, nil
}

func readTheme(path string, t *Theme) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()
	return t.ReadFrom(f)
}

// SetTheme replaces the application theme. Existing widgets keep their
// styles until re-themed with ApplyTheme.
func (a *Application) SetTheme(t *Theme) {
	theme := *t
	a.theme = &theme
}
