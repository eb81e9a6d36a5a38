package subframe

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestDiagnosticsInterval(t *testing.T) {
	var buf bytes.Buffer
	d := &Diagnostics{Out: &buf, FPS: func() float64 { return 59.5 }}

	reported := 0
	for tick := uint64(0); tick < 250; tick++ {
		if d.Tick(tick, 16*time.Millisecond) {
			reported++
		}
	}
	// Ticks 0, 100 and 200.
	if reported != 3 {
		t.Errorf("reports = %d, want 3", reported)
	}
	out := buf.String()
	if !strings.Contains(out, "[subframe] delta frame time: 16ms") {
		t.Errorf("missing delta line in %q", out)
	}
	if !strings.Contains(out, "[subframe] average FPS: 59.5") {
		t.Errorf("missing FPS line in %q", out)
	}
}

func TestDiagnosticsCustomInterval(t *testing.T) {
	var buf bytes.Buffer
	d := &Diagnostics{Out: &buf, Interval: 7, FPS: func() float64 { return 60 }}
	if d.Tick(6, time.Millisecond) {
		t.Error("tick 6 should not report with interval 7")
	}
	if !d.Tick(14, time.Millisecond) {
		t.Error("tick 14 should report with interval 7")
	}
	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Errorf("lines = %d, want 2", n)
	}
}

func TestDiagnosticsNil(t *testing.T) {
	var d *Diagnostics
	if d.Tick(0, time.Millisecond) {
		t.Error("nil Diagnostics should never report")
	}
}

func TestFPSOverlayUpdate(t *testing.T) {
	o := newFPSOverlay()
	// Should not panic.
	o.update(0.1)
	o.update(0.6)
	if o.lastUpdate != 0 {
		t.Errorf("lastUpdate = %v, want reset to 0 after refresh", o.lastUpdate)
	}
}
