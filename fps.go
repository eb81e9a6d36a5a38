package subframe

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DefaultDiagnosticsInterval is the number of ticks between timing lines.
const DefaultDiagnosticsInterval = 100

// Diagnostics prints frame timing every Interval ticks. It is not part of the
// rendering path; a nil *Diagnostics is valid and does nothing.
type Diagnostics struct {
	// Out receives the lines. Nil means os.Stderr.
	Out io.Writer
	// Interval is the tick period. Zero means DefaultDiagnosticsInterval.
	Interval uint64
	// FPS returns the average frame rate. Nil means ebiten.ActualFPS.
	FPS func() float64
}

// Tick reports the timing for tick number ticks if it falls on the interval.
// Returns true when a report was written.
func (d *Diagnostics) Tick(ticks uint64, delta time.Duration) bool {
	if d == nil {
		return false
	}
	interval := d.Interval
	if interval == 0 {
		interval = DefaultDiagnosticsInterval
	}
	if ticks%interval != 0 {
		return false
	}
	out := d.Out
	if out == nil {
		out = os.Stderr
	}
	fps := d.FPS
	if fps == nil {
		fps = ebiten.ActualFPS
	}
	_, _ = fmt.Fprintf(out, "[subframe] delta frame time: %v\n", delta)
	_, _ = fmt.Fprintf(out, "[subframe] average FPS: %.1f\n", fps())
	return true
}

// fpsOverlay draws the current FPS and TPS in the top-left corner. The text
// is refreshed every ~0.5 seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32), lastUpdate: 0.5}
}

func (o *fpsOverlay) update(dt float64) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
