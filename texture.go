package worldui

import "image"

// TextureHandle refers to a pixel buffer registered in a TextureStore.
// The zero handle never refers to a buffer.
type TextureHandle uint32

// PixelBuffer is a 2D pixel buffer a UI renders into. *ebiten.Image,
// *RenderTexture and *image.RGBA all satisfy it.
type PixelBuffer interface {
	Bounds() image.Rectangle
}

// TextureResolver looks up the live pixel buffer behind a handle.
type TextureResolver interface {
	PixelBuffer(h TextureHandle) (PixelBuffer, bool)
}

// TextureStore owns the mapping from handles to pixel buffers. It is the
// asset store surfaces point into.
type TextureStore struct {
	buffers map[TextureHandle]PixelBuffer
	nextID  TextureHandle
}

// NewTextureStore creates an empty store.
func NewTextureStore() *TextureStore {
	return &TextureStore{buffers: make(map[TextureHandle]PixelBuffer)}
}

// Add registers buf and returns its new handle. It panics if buf is nil.
func (ts *TextureStore) Add(buf PixelBuffer) TextureHandle {
	if buf == nil {
		panic("worldui: cannot add nil pixel buffer")
	}
	ts.nextID++
	ts.buffers[ts.nextID] = buf
	return ts.nextID
}

// Set replaces the buffer behind an existing handle, e.g. after the UI
// resized its render target. It panics if the handle was never issued.
func (ts *TextureStore) Set(h TextureHandle, buf PixelBuffer) {
	if h == 0 || h > ts.nextID {
		panic("worldui: unknown texture handle")
	}
	if buf == nil {
		panic("worldui: cannot set nil pixel buffer")
	}
	ts.buffers[h] = buf
}

// Get returns the buffer for h.
func (ts *TextureStore) Get(h TextureHandle) (PixelBuffer, bool) {
	buf, ok := ts.buffers[h]
	return buf, ok
}

// PixelBuffer implements TextureResolver.
func (ts *TextureStore) PixelBuffer(h TextureHandle) (PixelBuffer, bool) {
	return ts.Get(h)
}

// Remove drops the buffer for h. Surfaces still pointing at h will trip the
// translator's missing-buffer check, so remove a texture only after its
// surfaces are despawned.
func (ts *TextureStore) Remove(h TextureHandle) {
	delete(ts.buffers, h)
}

// Len returns the number of registered buffers.
func (ts *TextureStore) Len() int {
	return len(ts.buffers)
}

// bufferSize returns the pixel dimensions of buf.
func bufferSize(buf PixelBuffer) (w, h int) {
	b := buf.Bounds()
	return b.Dx(), b.Dy()
}
