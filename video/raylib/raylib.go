// Package raylib provides the windowed video driver, backed by the raylib
// bindings. It is a thin pass-through: the only state it carries is the
// optional target framerate, everything else lives in the native library.
//
// The driver is kept out of the core's dependency surface on purpose — only
// binaries that actually open a window import this package (and with it the
// native toolchain requirements of the bindings).
package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/comalice/tickloop/video"
)

// Driver implements video.Driver on top of a native raylib window.
// At most one Driver may be live per process; raylib owns a single window.
type Driver struct {
	targetFPS int32
}

var _ video.Driver = (*Driver)(nil)

// Option configures a Driver.
type Option func(*Driver)

// WithTargetFPS caps the framerate via the backend's frame pacing. Zero
// leaves pacing uncapped.
func WithTargetFPS(fps int32) Option {
	return func(d *Driver) {
		d.targetFPS = fps
	}
}

// New creates a windowed driver. The window itself is not opened until Init.
func New(opts ...Option) *Driver {
	d := &Driver{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) Init(width, height int32, title string) {
	rl.InitWindow(width, height, title)
	if d.targetFPS > 0 {
		rl.SetTargetFPS(d.targetFPS)
	}
	video.Logger().Debug("raylib driver initialized",
		"width", width, "height", height, "title", title)
}

func (d *Driver) IsReady() bool {
	return rl.IsWindowReady()
}

func (d *Driver) Close() {
	rl.CloseWindow()
	video.Logger().Debug("raylib driver closed")
}

func (d *Driver) BeginFrame() {
	rl.BeginDrawing()
}

func (d *Driver) EndFrame() {
	rl.EndDrawing()
}

// ShouldClose reports whether the user asked the window to close. Not part
// of video.Driver; callbacks that want native close handling can reach it by
// type assertion or by keeping the concrete driver around.
func (d *Driver) ShouldClose() bool {
	return rl.WindowShouldClose()
}

//
// Canvas
//

func (d *Driver) ClearBackground(c video.Color) {
	rl.ClearBackground(toNative(c))
}

func (d *Driver) DrawLine(x1, y1, x2, y2 int32, c video.Color) {
	rl.DrawLine(x1, y1, x2, y2, toNative(c))
}

func (d *Driver) DrawCircle(x, y int32, radius float32, c video.Color) {
	rl.DrawCircle(x, y, radius, toNative(c))
}

func (d *Driver) DrawRectangle(x, y, width, height int32, c video.Color) {
	rl.DrawRectangle(x, y, width, height, toNative(c))
}

func (d *Driver) DrawText(text string, x, y, size int32, c video.Color) {
	rl.DrawText(text, x, y, size, toNative(c))
}

//
// Input
//

func (d *Driver) IsKeyPressed(k video.Key) bool  { return rl.IsKeyPressed(int32(k)) }
func (d *Driver) IsKeyReleased(k video.Key) bool { return rl.IsKeyReleased(int32(k)) }
func (d *Driver) IsKeyDown(k video.Key) bool     { return rl.IsKeyDown(int32(k)) }
func (d *Driver) IsKeyUp(k video.Key) bool       { return rl.IsKeyUp(int32(k)) }

func (d *Driver) KeyPressed() video.Key {
	return video.Key(rl.GetKeyPressed())
}

func toNative(c video.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
