// Package subframe renders a sprite batch into an offscreen canvas and
// composites a bouncing, cropped region of that canvas onto the screen, on
// top of [Ebitengine].
//
// # Quick start
//
// [Run] creates the window and game loop. It takes an explicit update
// function and draw function; [Demo] provides both:
//
//	demo, err := subframe.NewDemo(tile, subframe.DefaultDemoConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = subframe.Run(subframe.RunConfig{
//		Title: "Canvas Subframe", Width: 800, Height: 600,
//	}, subframe.NewAnimationState(), demo.Update, demo.Draw)
//
// # Engine-free math
//
// [AnimationState.Advance], [GenerateGrid], [FocusTransform] and [Composite]
// are pure functions of their arguments and need no rendering backend.
// Drawing goes through the [Engine] interface, so a frame can be exercised
// with a fake engine.
//
// # Subframe clipping
//
// [Composite] does not clamp or wrap. [SubframeView.SourceRect] clips the
// crop to the canvas: a crop origin at (1, 1) or past it draws nothing.
//
// [Ebitengine]: https://ebitengine.org
package subframe
