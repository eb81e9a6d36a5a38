package subframe

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteBatch collects transforms of a single image so they can be drawn in
// one DrawTriangles32 call.
type SpriteBatch struct {
	image      *ebiten.Image
	transforms []DrawTransform

	verts []ebiten.Vertex
	inds  []uint32
}

// NewSpriteBatch creates an empty batch drawing img.
func NewSpriteBatch(img *ebiten.Image) *SpriteBatch {
	return &SpriteBatch{image: img}
}

// Image returns the batched image.
func (b *SpriteBatch) Image() *ebiten.Image {
	return b.image
}

// Add appends one sprite placement.
func (b *SpriteBatch) Add(t DrawTransform) {
	b.transforms = append(b.transforms, t)
}

// AddAll appends every placement in ts.
func (b *SpriteBatch) AddAll(ts []DrawTransform) {
	b.transforms = append(b.transforms, ts...)
}

// Clear removes all placements. Capacity is kept for the next frame.
func (b *SpriteBatch) Clear() {
	b.transforms = b.transforms[:0]
}

// Len returns the number of placements.
func (b *SpriteBatch) Len() int {
	return len(b.transforms)
}

// Transforms returns the pending placements. The returned slice MUST NOT be
// mutated.
func (b *SpriteBatch) Transforms() []DrawTransform {
	return b.transforms
}

// imageSize returns the batched image size in pixels, or zero when there is
// no image.
func (b *SpriteBatch) imageSize() (float64, float64) {
	if b.image == nil {
		return 0, 0
	}
	bounds := b.image.Bounds()
	return float64(bounds.Dx()), float64(bounds.Dy())
}

// spriteMatrix returns the batch-space matrix of one placement.
func spriteMatrix(t DrawTransform, w, h float64) [6]float64 {
	return t.matrix(Vec2{t.Offset.X * w, t.Offset.Y * h})
}

// Dimensions returns the union of every placement's bounds in batch space.
// It walks all placements, so its cost grows with Len. An empty batch
// returns the zero Rect.
func (b *SpriteBatch) Dimensions() Rect {
	w, h := b.imageSize()
	var r Rect
	for i, t := range b.transforms {
		aabb := worldAABB(spriteMatrix(t, w, h), w, h)
		if i == 0 {
			r = aabb
		} else {
			r = rectUnion(r, aabb)
		}
	}
	return r
}

// paramMatrix returns the matrix applied to the batch as a whole. A non-zero
// offset anchors the param at that fraction of Dimensions.
func (b *SpriteBatch) paramMatrix(param DrawTransform) [6]float64 {
	var anchor Vec2
	if !param.Offset.IsZero() {
		d := b.Dimensions()
		anchor = Vec2{
			d.X + param.Offset.X*d.Width,
			d.Y + param.Offset.Y*d.Height,
		}
	}
	return param.matrix(anchor)
}

// Draw renders every placement onto target, transformed by param.
//
// A non-zero param.Offset requires the batch bounds, which is a full pass
// over the placements before drawing. Prefer a zero offset for large
// batches.
func (b *SpriteBatch) Draw(target *ebiten.Image, param DrawTransform) {
	if b.image == nil || len(b.transforms) == 0 {
		return
	}
	b.buildQuads(b.paramMatrix(param))

	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles32(b.verts, b.inds, b.image, &triOp)
}

// buildQuads fills verts and inds with one quad per placement.
func (b *SpriteBatch) buildQuads(param [6]float64) {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]

	w, h := b.imageSize()
	bounds := b.image.Bounds()
	su0, sv0 := float32(bounds.Min.X), float32(bounds.Min.Y)
	su1, sv1 := float32(bounds.Max.X), float32(bounds.Max.Y)

	// 4 local positions: TL, TR, BL, BR
	lx := [4]float64{0, w, 0, w}
	ly := [4]float64{0, 0, h, h}
	sx := [4]float32{su0, su1, su0, su1}
	sy := [4]float32{sv0, sv0, sv1, sv1}

	for _, t := range b.transforms {
		m := multiplyAffine(param, spriteMatrix(t, w, h))
		a, bb, c, d, tx, ty := m[0], m[1], m[2], m[3], m[4], m[5]

		base := uint32(len(b.verts))
		for i := 0; i < 4; i++ {
			b.verts = append(b.verts, ebiten.Vertex{
				DstX:   float32(a*lx[i] + c*ly[i] + tx),
				DstY:   float32(bb*lx[i] + d*ly[i] + ty),
				SrcX:   sx[i],
				SrcY:   sy[i],
				ColorR: 1,
				ColorG: 1,
				ColorB: 1,
				ColorA: 1,
			})
		}

		// Two triangles: TL-TR-BL, TR-BR-BL
		b.inds = append(b.inds,
			base+0, base+1, base+2,
			base+1, base+3, base+2,
		)
	}
}
