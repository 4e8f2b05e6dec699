// Package testutil provides test doubles shared by the runtime's test
// suites.
package testutil

import (
	"fmt"

	"github.com/comalice/tickloop/video"
)

// RecordingDriver is a scripted video.Driver that journals every call in
// order. Tests assert hook sequencing against the journal; callbacks can
// interleave their own markers with Mark so a single journal shows the full
// begin/tick/end ordering.
type RecordingDriver struct {
	// ReadyAfterInit controls whether Init brings the driver up. Defaults
	// to true via NewRecordingDriver; leave false to script an
	// initialization failure.
	ReadyAfterInit bool

	// Down and Queue script the input queries.
	Down  map[video.Key]bool
	Queue []video.Key

	Calls []string

	ready bool
}

var _ video.Driver = (*RecordingDriver)(nil)

// NewRecordingDriver creates a driver whose Init succeeds.
func NewRecordingDriver() *RecordingDriver {
	return &RecordingDriver{ReadyAfterInit: true}
}

// Mark appends an arbitrary marker to the journal.
func (d *RecordingDriver) Mark(s string) {
	d.Calls = append(d.Calls, s)
}

// CallCount returns how many times the named call was journaled.
func (d *RecordingDriver) CallCount(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (d *RecordingDriver) Init(width, height int32, title string) {
	d.Mark(fmt.Sprintf("init(%d,%d,%q)", width, height, title))
	d.ready = d.ReadyAfterInit
}

// IsReady is deliberately not journaled; liveness probes are not part of the
// orderings the journal exists to verify.
func (d *RecordingDriver) IsReady() bool {
	return d.ready
}

func (d *RecordingDriver) Close() {
	d.Mark("close")
	d.ready = false
}

func (d *RecordingDriver) BeginFrame() { d.Mark("begin") }
func (d *RecordingDriver) EndFrame()   { d.Mark("end") }

func (d *RecordingDriver) ClearBackground(c video.Color) {
	d.Mark("clear")
}

func (d *RecordingDriver) DrawLine(x1, y1, x2, y2 int32, c video.Color) {
	d.Mark("line")
}

func (d *RecordingDriver) DrawCircle(x, y int32, radius float32, c video.Color) {
	d.Mark("circle")
}

func (d *RecordingDriver) DrawRectangle(x, y, width, height int32, c video.Color) {
	d.Mark("rect")
}

func (d *RecordingDriver) DrawText(text string, x, y, size int32, c video.Color) {
	d.Mark("text")
}

func (d *RecordingDriver) IsKeyPressed(k video.Key) bool  { return d.Down[k] }
func (d *RecordingDriver) IsKeyReleased(k video.Key) bool { return false }
func (d *RecordingDriver) IsKeyDown(k video.Key) bool     { return d.Down[k] }
func (d *RecordingDriver) IsKeyUp(k video.Key) bool       { return !d.Down[k] }

func (d *RecordingDriver) KeyPressed() video.Key {
	if len(d.Queue) == 0 {
		return video.KeyNull
	}
	k := d.Queue[0]
	d.Queue = d.Queue[1:]
	return k
}
