package subframe

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DemoConfig configures the canvas subframe demo.
type DemoConfig struct {
	// Cycle is the animation period in milliseconds.
	Cycle uint32
	// GridCols and GridRows size the sprite field.
	GridCols, GridRows int
	// FrozenMillis is the instant shown while the clock is frozen.
	FrozenMillis uint32
	// Live starts the clock running instead of frozen.
	Live bool
	// ScreenWidth and ScreenHeight are the bounce bounds until the first
	// frame reports the real drawable size.
	ScreenWidth, ScreenHeight int
	// ClearColor fills the screen, CanvasColor the canvas, every frame.
	ClearColor  Color
	CanvasColor Color
	// ToggleKey switches the clock between frozen and live.
	ToggleKey ebiten.Key
	// ToggleDuration is how long the clock eases after a toggle.
	ToggleDuration time.Duration
}

// DefaultDemoConfig returns the configuration of the reference frame.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Cycle:          DefaultCycle,
		GridCols:       DefaultGridCols,
		GridRows:       DefaultGridRows,
		FrozenMillis:   DefaultFrozenMillis,
		ScreenWidth:    800,
		ScreenHeight:   600,
		ClearColor:     ColorSlate,
		CanvasColor:    ColorWhite,
		ToggleKey:      ebiten.KeySpace,
		ToggleDuration: 750 * time.Millisecond,
	}
}

func (c DemoConfig) validate() error {
	if c.Cycle == 0 {
		return errors.New("demo config: cycle must be positive")
	}
	if c.GridCols <= 0 || c.GridRows <= 0 {
		return fmt.Errorf("demo config: grid %dx%d must be positive", c.GridCols, c.GridRows)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("demo config: screen %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	}
	return nil
}

// Demo draws a grid of sprites into the canvas each frame and shows a
// bouncing quarter of it on screen.
type Demo struct {
	cfg   DemoConfig
	batch *SpriteBatch
	grid  []DrawTransform
	clock *Clock

	screenW, screenH int

	// justPressed reports a key press this tick.
	justPressed func(ebiten.Key) bool
}

// NewDemo creates a demo that batches img.
func NewDemo(img *ebiten.Image, cfg DemoConfig) (*Demo, error) {
	if img == nil {
		return nil, errors.New("new demo: nil image")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	clock := NewFrozenClock(cfg.FrozenMillis)
	if cfg.Live {
		clock = NewLiveClock(cfg.FrozenMillis)
	}
	return &Demo{
		cfg:         cfg,
		batch:       NewSpriteBatch(img),
		grid:        make([]DrawTransform, 0, cfg.GridCols*cfg.GridRows),
		clock:       clock,
		screenW:     cfg.ScreenWidth,
		screenH:     cfg.ScreenHeight,
		justPressed: inpututil.IsKeyJustPressed,
	}, nil
}

// Clock returns the demo's animation clock.
func (d *Demo) Clock() *Clock {
	return d.clock
}

// Update advances the clock and bounces the subframe position within the
// last known screen size.
func (d *Demo) Update(s AnimationState, dt time.Duration) AnimationState {
	if d.justPressed != nil && d.justPressed(d.cfg.ToggleKey) {
		d.clock.Toggle(d.cfg.ToggleDuration)
	}
	d.clock.Update(dt)
	return s.Advance(float64(d.screenW), float64(d.screenH))
}

// Draw renders one frame through eng: clear the screen and canvas, draw the
// sprite grid into the canvas under the focus transform, then composite the
// subframe at s.Pos. The first failing engine call ends the frame.
func (d *Demo) Draw(s AnimationState, eng Engine) error {
	d.screenW, d.screenH = eng.DrawableSize()

	if err := eng.Clear(TargetScreen, d.cfg.ClearColor); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	if err := eng.Clear(TargetCanvas, d.cfg.CanvasColor); err != nil {
		return fmt.Errorf("clear canvas: %w", err)
	}

	ms := d.clock.Millis()
	d.grid = AppendGrid(d.grid[:0], ms, d.cfg.Cycle, d.cfg.GridCols, d.cfg.GridRows)
	d.batch.AddAll(d.grid)
	err := eng.SubmitBatch(TargetCanvas, d.batch, FocusTransform(ms, d.cfg.Cycle))
	d.batch.Clear()
	if err != nil {
		return fmt.Errorf("submit batch: %w", err)
	}

	cw, ch := eng.CanvasSize()
	if err := eng.DrawSubframe(Composite(s.Pos, float64(cw), float64(ch))); err != nil {
		return fmt.Errorf("draw subframe: %w", err)
	}
	if err := eng.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}
