package worldui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderTexture is a persistent offscreen canvas a surface's UI renders
// into. It is owned by the caller; register it with a TextureStore (or pass
// it in SurfaceConfig) so the translator can resolve its pixel size.
type RenderTexture struct {
	image *ebiten.Image
	w, h  int
}

// NewRenderTexture creates a persistent offscreen canvas of the given size.
func NewRenderTexture(w, h int) *RenderTexture {
	return &RenderTexture{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image for direct manipulation.
func (rt *RenderTexture) Image() *ebiten.Image {
	return rt.image
}

// Width returns the texture width in pixels.
func (rt *RenderTexture) Width() int {
	return rt.w
}

// Height returns the texture height in pixels.
func (rt *RenderTexture) Height() int {
	return rt.h
}

// Bounds implements PixelBuffer.
func (rt *RenderTexture) Bounds() image.Rectangle {
	return image.Rect(0, 0, rt.w, rt.h)
}

// Clear fills the texture with transparent black.
func (rt *RenderTexture) Clear() {
	rt.image.Clear()
}

// Fill fills the entire texture with the given color.
func (rt *RenderTexture) Fill(c color.Color) {
	rt.image.Fill(c)
}

// DrawImage draws src onto this texture using the provided options.
func (rt *RenderTexture) DrawImage(src *ebiten.Image, op *ebiten.DrawImageOptions) {
	rt.image.DrawImage(src, op)
}

// DrawImageAt draws src with its top-left corner at the given pixel.
func (rt *RenderTexture) DrawImageAt(src *ebiten.Image, x, y float64) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	rt.image.DrawImage(src, &op)
}

// Resize replaces the backing image with a new one of the given size. The
// old contents are discarded. No-op if the size is unchanged.
func (rt *RenderTexture) Resize(w, h int) {
	if w == rt.w && h == rt.h {
		return
	}
	if rt.image != nil {
		rt.image.Deallocate()
	}
	rt.image = ebiten.NewImage(w, h)
	rt.w = w
	rt.h = h
}

// Dispose deallocates the underlying image. The RenderTexture should not be
// used after calling Dispose.
func (rt *RenderTexture) Dispose() {
	if rt.image != nil {
		rt.image.Deallocate()
		rt.image = nil
	}
	rt.w = 0
	rt.h = 0
}
