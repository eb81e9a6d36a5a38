package subframe

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// UpdateFunc advances the animation state by one tick of length dt.
type UpdateFunc func(s AnimationState, dt time.Duration) AnimationState

// DrawFunc renders one frame of s through the engine.
type DrawFunc func(s AnimationState, eng Engine) error

// RunConfig holds optional parameters for Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height set the window size in device-independent pixels.
	Width, Height int
	// ShowFPS draws an FPS/TPS widget in the top-left corner.
	ShowFPS bool
	// Outline strokes the border of the composited subframe.
	Outline bool
	// Diagnostics, if set, prints frame timing periodically.
	Diagnostics *Diagnostics
	// ScreenshotDir and ScreenshotFrame capture frame number ScreenshotFrame
	// (counting from 1) into ScreenshotDir, then end the loop. Disabled when
	// ScreenshotDir is empty.
	ScreenshotDir   string
	ScreenshotFrame uint64
}

func (c RunConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("run config: window %dx%d must be positive", c.Width, c.Height)
	}
	if c.ScreenshotDir != "" && c.ScreenshotFrame == 0 {
		return errors.New("run config: screenshot frame must be at least 1")
	}
	return nil
}

// Run opens a window and drives update then draw once per frame until the
// window closes, draw fails, or a requested screenshot has been taken. A draw
// error ends the loop and is returned.
func Run(cfg RunConfig, initial AnimationState, update UpdateFunc, draw DrawFunc) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := newGame(cfg, initial, update, draw)
	defer g.engine.canvas.Dispose()
	return ebiten.RunGame(g)
}

// game adapts an update/draw pair to ebiten.Game.
type game struct {
	cfg    RunConfig
	state  AnimationState
	update UpdateFunc
	draw   DrawFunc
	engine *ebitenEngine
	fps    *fpsOverlay

	// capture writes the screenshot frame. Defaults to screenshot.
	capture func(screen *ebiten.Image, dir, label string) (string, error)

	frames uint64
	err    error
	done   bool
}

func newGame(cfg RunConfig, initial AnimationState, update UpdateFunc, draw DrawFunc) *game {
	g := &game{
		cfg:     cfg,
		state:   initial,
		update:  update,
		draw:    draw,
		engine:  newEbitenEngine(cfg.Width, cfg.Height),
		capture: screenshot,
	}
	g.engine.outline = cfg.Outline
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

// tickDuration returns the fixed update step.
func tickDuration() time.Duration {
	return time.Duration(float64(time.Second) / float64(ebiten.TPS()))
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.done {
		return ebiten.Termination
	}

	dt := tickDuration()
	g.cfg.Diagnostics.Tick(g.engine.Ticks(), dt)
	if g.update != nil {
		g.state = g.update(g.state, dt)
	}
	g.engine.tick(dt)
	if g.fps != nil {
		g.fps.update(dt.Seconds())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.err != nil || g.done {
		return
	}
	g.engine.bind(screen)
	defer g.engine.unbind()

	if g.draw != nil {
		if err := g.draw(g.state, g.engine); err != nil {
			g.err = err
			return
		}
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}

	g.frames++
	if g.cfg.ScreenshotDir != "" && g.frames == g.cfg.ScreenshotFrame {
		path, err := g.capture(screen, g.cfg.ScreenshotDir, g.cfg.Title)
		if err != nil {
			g.err = err
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "[subframe] screenshot: %s\n", path)
		g.done = true
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
