package tickloop_test

import (
	"errors"
	"reflect"
	"testing"

	. "github.com/comalice/tickloop"
	"github.com/comalice/tickloop/testutil"
)

// journalDelegate records its phases into a shared journal and shuts down
// after a fixed number of ticks.
type journalDelegate struct {
	drv       *testutil.RecordingDriver
	ticks     int
	updateErr error
	renderErr error
}

func (d *journalDelegate) Update(rt *Runtime) error {
	d.drv.Mark("update")
	if d.updateErr != nil {
		return d.updateErr
	}
	d.ticks--
	if d.ticks == 0 {
		rt.Shutdown()
	}
	return nil
}

func (d *journalDelegate) Render(rt *Runtime) error {
	d.drv.Mark("render")
	return d.renderErr
}

func TestRunDelegatePhaseOrdering(t *testing.T) {
	drv := testutil.NewRecordingDriver()
	rt, err := New().EnableVideo().Driver(drv).Build()
	if err != nil {
		t.Fatal(err)
	}

	if err := rt.Run(&journalDelegate{drv: drv, ticks: 2}); err != nil {
		t.Fatal(err)
	}

	// Update and Render are two sequential sub-calls of one tick, both
	// inside the tick's frame brackets.
	want := []string{
		`init(0,0,"")`,
		"update", "render",
		"begin", "update", "render", "end",
	}
	if !reflect.DeepEqual(drv.Calls, want) {
		t.Errorf("phase ordering mismatch:\nwant %v\ngot  %v", want, drv.Calls)
	}
}

func TestRunDelegateUpdateErrorSkipsRender(t *testing.T) {
	drv := testutil.NewRecordingDriver()
	rt, _ := New().EnableVideo().Driver(drv).Build()

	errUpdate := errors.New("update failed")
	err := rt.Run(&journalDelegate{drv: drv, ticks: 10, updateErr: errUpdate})

	if err != errUpdate {
		t.Fatalf("want the update failure, got %v", err)
	}
	if drv.CallCount("render") != 0 {
		t.Errorf("a failing update must skip render, got %v", drv.Calls)
	}
}

func TestRunDelegateRenderErrorStopsLoop(t *testing.T) {
	rt, _ := New().Build()

	errRender := errors.New("render failed")
	d := &journalDelegate{drv: testutil.NewRecordingDriver(), ticks: 10, renderErr: errRender}

	if err := rt.Run(d); err != errRender {
		t.Fatalf("want the render failure, got %v", err)
	}
	if d.drv.CallCount("update") != 1 {
		t.Errorf("loop must stop after the failing tick, got %v", d.drv.Calls)
	}
}
