package video

// Driver is the capability surface the runtime requires from a presentation
// backend. The runtime owns exactly one Driver for its lifetime and is the
// only caller of the lifecycle methods; it never invokes Close without first
// observing IsReady() == true.
type Driver interface {
	// Init brings the backend up. Best-effort: failures are not reported
	// here, the caller checks IsReady separately. A width/height of 0
	// means "use the backend default".
	Init(width, height int32, title string)

	// IsReady reports whether the backend is live. Callable at any time,
	// including before Init (false) and after Close (false).
	IsReady() bool

	// Close tears the backend down. Callers guard with IsReady.
	Close()

	// BeginFrame and EndFrame bracket one tick's drawing work. They are
	// called in strict alternation, never nested or skipped within a tick.
	BeginFrame()
	EndFrame()

	Canvas
	Input
}

// Canvas is the drawing surface a Driver exposes. Every method is a direct
// pass-through to the backend with no state of its own.
type Canvas interface {
	ClearBackground(c Color)
	DrawLine(x1, y1, x2, y2 int32, c Color)
	DrawCircle(x, y int32, radius float32, c Color)
	DrawRectangle(x, y, width, height int32, c Color)
	DrawText(text string, x, y, size int32, c Color)
}

// Input exposes stateless keyboard queries. Pressed/released are edge
// observations scoped to the current frame; down/up are level queries.
type Input interface {
	IsKeyPressed(k Key) bool
	IsKeyReleased(k Key) bool
	IsKeyDown(k Key) bool
	IsKeyUp(k Key) bool

	// KeyPressed pops the next queued key press, or KeyNull when the
	// queue is empty.
	KeyPressed() Key
}

// PollKeys drains the driver's key-press queue and returns the presses in
// arrival order. Returns nil when no keys are queued.
func PollKeys(d Driver) []Key {
	var keys []Key
	for k := d.KeyPressed(); k != KeyNull; k = d.KeyPressed() {
		keys = append(keys, k)
	}
	return keys
}
