// Package tickloop provides a minimal cooperative application runtime: a
// configurable Runtime that owns a video backend's lifecycle and drives a
// per-tick callback loop until told to stop.
//
// # Example Usage
//
//	rt, err := tickloop.New().
//		Title("orbit").
//		EnableVideo().
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer rt.Close()
//
//	err = rt.RunWith(func(rt *tickloop.Runtime) error {
//		if rt.Driver().IsKeyPressed(video.KeyEscape) {
//			rt.Shutdown()
//		}
//		return nil
//	})
//
// # Execution Model
//
// The loop is strictly single-threaded and cooperative. Each tick runs to
// completion before the next begins, and with video enabled every tick after
// the first is bracketed by the driver's BeginFrame/EndFrame hooks in strict
// alternation. The only ways out of the loop are a Shutdown call (effective
// at the next loop-condition check) and a callback error (returned to the
// RunWith caller verbatim).
//
// # Drivers
//
// The video backend is an injected capability (video.Driver). Two
// implementations ship with the module: video/raylib opens a real window,
// video/headless runs entirely in memory and is the default, so the core
// stays testable without a display.
package tickloop
