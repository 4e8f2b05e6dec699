package tickloop

import (
	"io"

	"github.com/comalice/tickloop/video"
)

// TickFunc is invoked once per tick. Returning a non-nil error stops the
// loop after the current tick; the error is handed back to the RunWith
// caller verbatim.
type TickFunc func(*Runtime) error

// Runtime owns the application loop and the video backend's lifetime. Build
// one with a Builder; the zero value is a valid video-less runtime.
//
// A Runtime is strictly single-threaded: the loop only advances inside a
// RunWith call on the owning goroutine, and each tick runs to completion
// before the next begins.
type Runtime struct {
	running bool
	closed  bool
	driver  video.Driver
}

var _ io.Closer = (*Runtime)(nil)

// RunWith drives the tick loop with the given callback until Shutdown is
// called or the callback returns an error.
//
// The first invocation runs before any frame boundary is opened, so a
// callback that shuts the loop down immediately never triggers a frame hook.
// Every later invocation is bracketed by BeginFrame and EndFrame when a
// video driver is present; a tick's EndFrame always completes before the
// loop condition is rechecked, so a failing or shutting-down tick still
// closes its frame.
//
// RunWith blocks until the loop exits and returns the last callback result.
// It may be called again on the same Runtime after a clean exit.
func (r *Runtime) RunWith(fn TickFunc) error {
	r.running = true
	err := fn(r)

	for r.running && err == nil {
		if r.driver != nil {
			r.driver.BeginFrame()
		}

		err = fn(r)

		if r.driver != nil {
			r.driver.EndFrame()
		}
	}

	r.running = false
	return err
}

// Shutdown schedules the loop for termination. The current tick finishes,
// including its trailing frame hook; no further tick begins. Outside a
// running loop it is a no-op.
func (r *Runtime) Shutdown() {
	r.running = false
}

// Running reports whether the tick loop is active.
func (r *Runtime) Running() bool {
	return r.running
}

// Driver returns the owned video backend, or nil when video was not enabled
// at build time. Callbacks use it for drawing and input queries; they must
// not Init or Close it — the Runtime owns the lifecycle.
func (r *Runtime) Driver() video.Driver {
	return r.driver
}

// Close releases the video backend. It runs the teardown exactly once per
// Runtime regardless of how (or whether) the loop exited, and is a no-op
// when video was never enabled or the backend is already down.
func (r *Runtime) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if r.driver != nil && r.driver.IsReady() {
		r.driver.Close()
	}
	return nil
}
