// Package headless provides an in-memory video driver with no window and no
// native dependencies. It is the default driver when none is injected, which
// keeps builds and CI runs free of windowing requirements, and its frame
// accounting makes loop behavior observable in tests.
package headless

import (
	"fmt"

	"github.com/comalice/tickloop/video"
)

// Driver is an in-memory implementation of video.Driver. The zero value is
// usable; New is provided for symmetry with the other drivers.
type Driver struct {
	// InitFails forces Init to leave the driver unready, for exercising
	// initialization-failure paths.
	InitFails bool

	ready   bool
	inFrame bool
	frames  int
	draws   int

	width  int32
	height int32
	title  string

	down     map[video.Key]bool
	pressed  map[video.Key]bool
	released map[video.Key]bool
	queue    []video.Key
}

var _ video.Driver = (*Driver)(nil)

// New creates a headless driver.
func New() *Driver {
	return &Driver{}
}

func (d *Driver) Init(width, height int32, title string) {
	if d.InitFails {
		return
	}
	d.ready = true
	d.width, d.height = width, height
	d.title = title
	video.Logger().Debug("headless driver initialized",
		"width", width, "height", height, "title", title)
}

func (d *Driver) IsReady() bool {
	return d.ready
}

func (d *Driver) Close() {
	d.ready = false
	d.inFrame = false
	video.Logger().Debug("headless driver closed", "frames", d.frames)
}

// BeginFrame opens a frame. Panics on nested frames: strict alternation with
// EndFrame is a contract violation worth failing loudly over, and this driver
// exists to catch exactly that kind of bug.
func (d *Driver) BeginFrame() {
	if d.inFrame {
		panic("headless: BeginFrame inside an open frame")
	}
	d.inFrame = true
}

// EndFrame closes the current frame and expires this frame's key edges.
func (d *Driver) EndFrame() {
	if !d.inFrame {
		panic("headless: EndFrame without BeginFrame")
	}
	d.inFrame = false
	d.frames++
	d.pressed = nil
	d.released = nil
}

// Frames reports how many begin/end pairs have completed.
func (d *Driver) Frames() int {
	return d.frames
}

// Draws reports how many draw calls have been issued since Init.
func (d *Driver) Draws() int {
	return d.draws
}

// Size returns the dimensions passed to Init.
func (d *Driver) Size() (int32, int32) {
	return d.width, d.height
}

// Title returns the title passed to Init.
func (d *Driver) Title() string {
	return d.title
}

//
// Canvas
//

func (d *Driver) ClearBackground(c video.Color)                   { d.draws++ }
func (d *Driver) DrawLine(x1, y1, x2, y2 int32, c video.Color)    { d.draws++ }
func (d *Driver) DrawCircle(x, y int32, r float32, c video.Color) { d.draws++ }
func (d *Driver) DrawRectangle(x, y, w, h int32, c video.Color)   { d.draws++ }
func (d *Driver) DrawText(t string, x, y, s int32, c video.Color) { d.draws++ }

//
// Input scripting
//

// Press records a key going down. The press edge stays observable until the
// current frame ends.
func (d *Driver) Press(k video.Key) {
	if d.down == nil {
		d.down = map[video.Key]bool{}
	}
	if d.pressed == nil {
		d.pressed = map[video.Key]bool{}
	}
	d.down[k] = true
	d.pressed[k] = true
	d.queue = append(d.queue, k)
}

// Release records a key going up. The release edge stays observable until
// the current frame ends.
func (d *Driver) Release(k video.Key) {
	if d.released == nil {
		d.released = map[video.Key]bool{}
	}
	delete(d.down, k)
	d.released[k] = true
}

func (d *Driver) IsKeyPressed(k video.Key) bool  { return d.pressed[k] }
func (d *Driver) IsKeyReleased(k video.Key) bool { return d.released[k] }
func (d *Driver) IsKeyDown(k video.Key) bool     { return d.down[k] }
func (d *Driver) IsKeyUp(k video.Key) bool       { return !d.down[k] }

func (d *Driver) KeyPressed() video.Key {
	if len(d.queue) == 0 {
		return video.KeyNull
	}
	k := d.queue[0]
	d.queue = d.queue[1:]
	return k
}

// String aids test failure output.
func (d *Driver) String() string {
	return fmt.Sprintf("headless{ready=%v frames=%d draws=%d}", d.ready, d.frames, d.draws)
}
