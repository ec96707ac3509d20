// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonfg

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// A Session checks successive versions of a document, such as one being
// edited, and publishes the result of the latest version.
//
// Each call to Update starts a pass for a new version in a separate
// goroutine, and cancels the pass for the previous version if it is still
// running. A result is published only if its version is still the latest
// when the pass completes. Results are published one at a time, in order of
// increasing generation.
type Session struct {
	c       *Checker
	publish func(*Result)

	mu     sync.Mutex
	gen    uint64             // the latest generation
	cancel context.CancelFunc // cancels the pass for gen, or nil
	closed bool
	wg     sync.WaitGroup
}

// NewSession creates a new Session that calls publish with the result of each
// pass that is current when it completes. The publish function is called
// while the session is locked, and must not call methods of the session.
func (c *Checker) NewSession(publish func(*Result)) *Session {
	return &Session{c: c, publish: publish}
}

// Update starts a pass for src, which supersedes any earlier version. It
// returns the generation assigned to src. Update does not wait for the pass
// to complete. After Close, Update does nothing and returns 0.
//
// The session retains src until the pass completes; the caller must not
// modify it.
func (s *Session) Update(src []byte) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		res, err := s.c.check(ctx, src, gen)
		if err != nil {
			s.c.log.Debug("pass abandoned", zap.Uint64("gen", gen), zap.Error(err))
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || s.gen != gen {
			s.c.log.Debug("pass superseded", zap.Stringer("pass", res.ID), zap.Uint64("gen", gen))
			return
		}
		s.publish(res)
	}()
	return gen
}

// Wait blocks until all passes started so far have completed or been
// abandoned.
func (s *Session) Wait() { s.wg.Wait() }

// Close cancels any pass in progress and waits for it to finish. No results
// are published after Close returns. Close is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
	s.wg.Wait()
}
