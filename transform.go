package subframe

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// DrawTransform places an image: destination, scale, rotation (radians,
// clockwise in screen space) and an anchor offset. The offset is a fraction
// of the drawn item's size; (0.5, 0.5) rotates and scales around the center
// and puts that center on Dest.
type DrawTransform struct {
	Dest     Vec2
	Scale    Vec2
	Rotation float64
	Offset   Vec2
}

// NewDrawTransform returns a transform at dest with unit scale.
func NewDrawTransform(dest Vec2) DrawTransform {
	return DrawTransform{Dest: dest, Scale: Vec2{1, 1}}
}

// matrix computes the affine matrix [a, b, c, d, tx, ty] for the transform,
// with the anchor given in the item's local pixels.
//
// Composition order:
//
//	Translate(-anchor) -> Scale -> Rotate -> Translate(Dest)
func (t DrawTransform) matrix(anchor Vec2) [6]float64 {
	sx, sy := t.Scale.X, t.Scale.Y
	sin, cos := math.Sincos(t.Rotation)

	// After Scale * Translate(-anchor):
	//   a=sx, b=0, c=0, d=sy, tx=-ax*sx, ty=-ay*sy
	preTx := -anchor.X * sx
	preTy := -anchor.Y * sy

	// After Rotate:
	ra := cos * sx
	rb := sin * sx
	rc := -sin * sy
	rd := cos * sy
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return [6]float64{ra, rb, rc, rd, rtx + t.Dest.X, rty + t.Dest.Y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// worldAABB returns the axis-aligned bounds of a w x h quad at the origin
// after applying m.
func worldAABB(m [6]float64, w, h float64) Rect {
	x0, y0 := transformPoint(m, 0, 0)
	x1, y1 := transformPoint(m, w, 0)
	x2, y2 := transformPoint(m, 0, h)
	x3, y3 := transformPoint(m, w, h)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// geoM converts a [6]float64 affine matrix into an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// GeoM returns the transform as an ebiten.GeoM for an item of size w x h.
func (t DrawTransform) GeoM(w, h float64) ebiten.GeoM {
	return geoM(t.matrix(Vec2{t.Offset.X * w, t.Offset.Y * h}))
}
