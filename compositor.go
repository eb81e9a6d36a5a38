package subframe

import (
	"image"
	"math"
)

// Grid and timing constants for the sprite field.
const (
	DefaultCycle        = 10_000 // ms per animation cycle
	DefaultFrozenMillis = 2000   // frozen frame time
	DefaultGridCols     = 150
	DefaultGridRows     = 150

	// GridSpacing is the distance in pixels between neighbouring sprites.
	GridSpacing = 10.0
	// GridScale is the peak sprite scale.
	GridScale = 0.0625

	// Turn is the angle of one full cycle. It is 6.28, not 2*math.Pi; the
	// frozen frame values depend on it.
	Turn = 6.28

	focusRadius = 50.0
)

// FocusCenter is the point the focus transform orbits around.
var FocusCenter = Vec2{150, 250}

// SubframeSize is the fraction of the canvas sampled each frame.
var SubframeSize = Vec2{0.5, 0.5}

// cycleFraction returns (ms % cycle) / cycle in [0, 1).
func cycleFraction(ms, cycle uint32) float64 {
	return float64(ms%cycle) / float64(cycle)
}

// gridScale returns the per-sprite scale for time ms: the doubled cycle
// fraction drives a cosine so sprites pulse twice per cycle.
func gridScale(ms, cycle uint32) float64 {
	phase := float64(ms%cycle) * 2 / float64(cycle) * Turn
	return math.Abs(math.Cos(phase)) * GridScale
}

// gridRotation returns the per-sprite rotation for time ms, in (-2*Turn, 0].
func gridRotation(ms, cycle uint32) float64 {
	return -2 * cycleFraction(ms, cycle) * Turn
}

// GenerateGrid returns one transform per cell of a cols x rows grid for time
// ms. Every sprite shares the same scale and rotation; destinations are
// GridSpacing apart. Output is x-major. The result depends only on its
// arguments. cycle must be positive.
func GenerateGrid(ms, cycle uint32, cols, rows int) []DrawTransform {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	return AppendGrid(make([]DrawTransform, 0, cols*rows), ms, cycle, cols, rows)
}

// AppendGrid is GenerateGrid appending into dst, so a frame loop can reuse
// one backing array.
func AppendGrid(dst []DrawTransform, ms, cycle uint32, cols, rows int) []DrawTransform {
	s := gridScale(ms, cycle)
	r := gridRotation(ms, cycle)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			dst = append(dst, DrawTransform{
				Dest:     Vec2{float64(x) * GridSpacing, float64(y) * GridSpacing},
				Scale:    Vec2{s, s},
				Rotation: r,
			})
		}
	}
	return dst
}

// FocusTransform returns the transform applied to the whole batch when it is
// drawn into the canvas: it orbits FocusCenter at radius 50, scales between
// 1 and 3, rotates once per cycle and is anchored at the batch center.
//
// The center anchor means the batch bounds must be computed on every draw;
// see SpriteBatch.Draw.
func FocusTransform(ms, cycle uint32) DrawTransform {
	p := cycleFraction(ms, cycle) * Turn
	sin, cos := math.Sincos(p)
	s := math.Abs(sin)*2 + 1
	return DrawTransform{
		Dest: Vec2{
			cos*focusRadius + FocusCenter.X,
			sin*focusRadius + FocusCenter.Y,
		},
		Scale:    Vec2{s, s},
		Rotation: p,
		Offset:   Vec2{0.5, 0.5},
	}
}

// SubframeView describes which part of the canvas is shown and where.
// Origin and Size are fractions of the canvas; Dest is in screen pixels.
type SubframeView struct {
	Origin Vec2
	Size   Vec2
	Dest   Vec2
}

// Composite returns the view for a subframe positioned at pos on a canvas of
// targetW x targetH pixels: the crop origin is pos normalized by the canvas
// size and the crop is always half the canvas in each direction.
// No clamping or wrapping is done here; see SourceRect.
func Composite(pos Vec2, targetW, targetH float64) SubframeView {
	var origin Vec2
	if targetW > 0 {
		origin.X = pos.X / targetW
	}
	if targetH > 0 {
		origin.Y = pos.Y / targetH
	}
	return SubframeView{Origin: origin, Size: SubframeSize, Dest: pos}
}

// SourceRect converts the view into a pixel rectangle within bounds. Parts of
// the crop that fall outside bounds are clipped, so an origin at (1, 1) or
// beyond yields an empty rectangle.
func (v SubframeView) SourceRect(bounds image.Rectangle) image.Rectangle {
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	x0 := bounds.Min.X + int(math.Floor(v.Origin.X*w))
	y0 := bounds.Min.Y + int(math.Floor(v.Origin.Y*h))
	x1 := bounds.Min.X + int(math.Floor((v.Origin.X+v.Size.X)*w))
	y1 := bounds.Min.Y + int(math.Floor((v.Origin.Y+v.Size.Y)*h))
	return image.Rect(x0, y0, x1, y1).Intersect(bounds)
}
