// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/creachadair/jsonfg"
	"github.com/creachadair/jsonfg/diag"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// debounce is how long a file must be quiet after a change before it is
// checked again.
const debounce = 100 * time.Millisecond

func newWatchCmd(st *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "watch file.json ...",
		Short: "Check documents again whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.checker()
			if err != nil {
				return err
			}
			w := &watcher{
				c:      c,
				log:    st.logger,
				out:    cmd.OutOrStdout(),
				color:  st.color,
				files:  make(map[string]*watchedFile),
				timers: make(map[string]*time.Timer),
			}
			return w.run(cmd.Context(), args)
		},
	}
}

// A watcher checks a set of files each time they change.
type watcher struct {
	c     *jsonfg.Checker
	log   *zap.Logger
	color bool

	outMu sync.Mutex
	out   io.Writer

	files  map[string]*watchedFile // by absolute path
	timers map[string]*time.Timer  // pending debounced updates
}

// A watchedFile is a file being checked by a session.
type watchedFile struct {
	path    string // as given by the user
	session *jsonfg.Session
}

func (w *watcher) run(ctx context.Context, paths []string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	// Watch the directory of each file, since editors often replace a file
	// rather than writing it in place.
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		f := &watchedFile{path: path}
		f.session = w.c.NewSession(func(r *jsonfg.Result) { w.show(f, r) })
		defer f.session.Close()
		w.files[abs] = f

		if dir := filepath.Dir(abs); !dirs[dir] {
			if err := fw.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			dirs[dir] = true
		}
		w.update(abs)
	}

	var mu sync.Mutex // protects w.timers
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch error", zap.Error(err))
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || w.files[abs] == nil {
				continue
			}
			mu.Lock()
			if t, ok := w.timers[abs]; ok {
				t.Reset(debounce)
			} else {
				w.timers[abs] = time.AfterFunc(debounce, func() {
					mu.Lock()
					delete(w.timers, abs)
					mu.Unlock()
					w.update(abs)
				})
			}
			mu.Unlock()
		}
	}
}

// update reads the current contents of the file at abs and submits them to
// its session.
func (w *watcher) update(abs string) {
	f := w.files[abs]
	src, err := os.ReadFile(abs)
	if err != nil {
		w.log.Warn("read failed", zap.String("path", f.path), zap.Error(err))
		return
	}
	f.session.Update(src)
}

// show prints the result of a pass for f.
func (w *watcher) show(f *watchedFile, r *jsonfg.Result) {
	w.outMu.Lock()
	defer w.outMu.Unlock()
	fmt.Fprintf(w.out, "== %s (%s) ==\n", f.path, time.Now().Format(time.TimeOnly))
	switch {
	case r.Err != nil:
		fmt.Fprintf(w.out, "not checked: %v\n", r.Err)
	case len(r.Diagnostics) == 0:
		fmt.Fprintln(w.out, "no problems found")
	default:
		err := diag.Format(w.out, r.Source, r.Diagnostics, diag.FormatOptions{Filename: f.path, Color: w.color})
		if err != nil {
			w.log.Error("write failed", zap.Error(err))
		}
	}
}
