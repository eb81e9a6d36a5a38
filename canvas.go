package subframe

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is a persistent offscreen render target. It is owned by the caller
// and is fully overwritten every frame: cleared, drawn into, then sampled.
type Canvas struct {
	image *ebiten.Image
	w, h  int
}

// NewCanvas creates an offscreen canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image, or nil after Dispose.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.w
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.h
}

// Disposed reports whether Dispose has been called.
func (c *Canvas) Disposed() bool {
	return c.image == nil
}

// Clear fills the canvas with transparent black.
func (c *Canvas) Clear() {
	c.image.Clear()
}

// Fill fills the entire canvas with the given color.
func (c *Canvas) Fill(col Color) {
	c.image.Fill(col.RGBA())
}

// DrawBatch draws every placement of b into the canvas, transformed by param.
func (c *Canvas) DrawBatch(b *SpriteBatch, param DrawTransform) {
	b.Draw(c.image, param)
}

// DrawSubframe samples the part of the canvas described by view and draws it
// onto dst at view.Dest. Returns false when the clipped crop is empty and
// nothing was drawn.
func (c *Canvas) DrawSubframe(dst *ebiten.Image, view SubframeView) bool {
	src := view.SourceRect(c.image.Bounds())
	if src.Empty() {
		return false
	}
	var op ebiten.DrawImageOptions
	op.GeoM = subframeGeoM(view, src)
	dst.DrawImage(c.image.SubImage(src).(*ebiten.Image), &op)
	return true
}

// subframeGeoM places the sampled rectangle src, unscaled, at view.Dest.
func subframeGeoM(view SubframeView, src image.Rectangle) ebiten.GeoM {
	return NewDrawTransform(view.Dest).GeoM(float64(src.Dx()), float64(src.Dy()))
}

// Resize deallocates the old image and creates a new one at the given
// dimensions. A canvas that already has that size is left untouched.
func (c *Canvas) Resize(width, height int) {
	if c.image != nil && c.w == width && c.h == height {
		return
	}
	if c.image != nil {
		c.image.Deallocate()
	}
	c.image = ebiten.NewImage(width, height)
	c.w = width
	c.h = height
}

// Dispose deallocates the underlying image. The Canvas should not be drawn
// into after calling Dispose.
func (c *Canvas) Dispose() {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
}
