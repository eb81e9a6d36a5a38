package subframe

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Target selects the surface an Engine call draws to.
type Target uint8

const (
	TargetScreen Target = iota // the visible frame
	TargetCanvas               // the offscreen canvas
)

func (t Target) String() string {
	switch t {
	case TargetScreen:
		return "screen"
	case TargetCanvas:
		return "canvas"
	default:
		return fmt.Sprintf("target(%d)", uint8(t))
	}
}

// Engine is the rendering engine as seen from one frame. Every drawing call
// is synchronous; a returned error is fatal for the frame.
type Engine interface {
	// Clear fills a target with c.
	Clear(t Target, c Color) error
	// SubmitBatch draws every placement of b into t, transformed by param.
	SubmitBatch(t Target, b *SpriteBatch, param DrawTransform) error
	// DrawSubframe draws the part of the canvas described by view onto the
	// screen.
	DrawSubframe(view SubframeView) error
	// Present finishes the frame.
	Present() error
	// DrawableSize returns the screen size in pixels.
	DrawableSize() (w, h int)
	// CanvasSize returns the canvas size in pixels.
	CanvasSize() (w, h int)
	// Ticks returns the number of completed updates.
	Ticks() uint64
	// Elapsed returns the game time since the loop started.
	Elapsed() time.Duration
}

// Engine failure causes.
var (
	ErrNoFrame        = errors.New("no frame bound")
	ErrCanvasDisposed = errors.New("canvas disposed")
	ErrNoImage        = errors.New("batch has no image")
	ErrUnknownTarget  = errors.New("unknown target")
)

// EngineError reports a failed engine operation. It is the only error kind
// produced while rendering a frame.
type EngineError struct {
	Op     string
	Target Target
	Err    error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine %s %s: %v", e.Op, e.Target, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// ebitenEngine implements Engine on top of Ebitengine. The screen is bound
// for the duration of one Draw call.
type ebitenEngine struct {
	screen  *ebiten.Image
	canvas  *Canvas
	width   int
	height  int
	ticks   uint64
	elapsed time.Duration
	outline bool
}

func newEbitenEngine(w, h int) *ebitenEngine {
	return &ebitenEngine{
		canvas: NewCanvas(w, h),
		width:  w,
		height: h,
	}
}

// bind attaches the frame's screen image. The canvas follows the screen
// size.
func (e *ebitenEngine) bind(screen *ebiten.Image) {
	e.screen = screen
	if screen == nil {
		return
	}
	b := screen.Bounds()
	e.width, e.height = b.Dx(), b.Dy()
	if !e.canvas.Disposed() {
		e.canvas.Resize(e.width, e.height)
	}
}

func (e *ebitenEngine) unbind() {
	e.screen = nil
}

// tick records one completed update of length dt.
func (e *ebitenEngine) tick(dt time.Duration) {
	e.ticks++
	e.elapsed += dt
}

func (e *ebitenEngine) target(op string, t Target) (*ebiten.Image, error) {
	switch t {
	case TargetScreen:
		if e.screen == nil {
			return nil, &EngineError{Op: op, Target: t, Err: ErrNoFrame}
		}
		return e.screen, nil
	case TargetCanvas:
		if e.canvas.Disposed() {
			return nil, &EngineError{Op: op, Target: t, Err: ErrCanvasDisposed}
		}
		return e.canvas.Image(), nil
	default:
		return nil, &EngineError{Op: op, Target: t, Err: ErrUnknownTarget}
	}
}

func (e *ebitenEngine) Clear(t Target, c Color) error {
	img, err := e.target("clear", t)
	if err != nil {
		return err
	}
	img.Fill(c.RGBA())
	return nil
}

func (e *ebitenEngine) SubmitBatch(t Target, b *SpriteBatch, param DrawTransform) error {
	img, err := e.target("submit batch", t)
	if err != nil {
		return err
	}
	if b == nil || b.Image() == nil {
		return &EngineError{Op: "submit batch", Target: t, Err: ErrNoImage}
	}
	b.Draw(img, param)
	return nil
}

func (e *ebitenEngine) DrawSubframe(view SubframeView) error {
	screen, err := e.target("draw subframe", TargetScreen)
	if err != nil {
		return err
	}
	if e.canvas.Disposed() {
		return &EngineError{Op: "draw subframe", Target: TargetCanvas, Err: ErrCanvasDisposed}
	}
	if e.canvas.DrawSubframe(screen, view) && e.outline {
		src := view.SourceRect(e.canvas.Image().Bounds())
		vector.StrokeRect(screen,
			float32(view.Dest.X), float32(view.Dest.Y),
			float32(src.Dx()), float32(src.Dy()),
			2, ColorWhite.RGBA(), false)
	}
	return nil
}

func (e *ebitenEngine) Present() error {
	if e.screen == nil {
		return &EngineError{Op: "present", Target: TargetScreen, Err: ErrNoFrame}
	}
	// Ebitengine presents the screen once Draw returns.
	return nil
}

func (e *ebitenEngine) DrawableSize() (int, int) {
	return e.width, e.height
}

func (e *ebitenEngine) CanvasSize() (int, int) {
	return e.canvas.Width(), e.canvas.Height()
}

func (e *ebitenEngine) Ticks() uint64 {
	return e.ticks
}

func (e *ebitenEngine) Elapsed() time.Duration {
	return e.elapsed
}
