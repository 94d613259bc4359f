package worldui

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultScreenshotDir is where captures are written unless the scene's
// ScreenshotDir is changed.
const DefaultScreenshotDir = "screenshots"

// capture is one pending PNG. A zero texture means the whole drawn frame.
type capture struct {
	label   string
	texture TextureHandle
}

// Screenshot queues a labeled capture of the next frame drawn by Scene.Draw.
func (s *Scene) Screenshot(label string) {
	s.captures = append(s.captures, capture{label: label})
}

// ScreenshotSurface queues a capture of the texture behind surface id, taken
// at the next Scene.Draw. Unknown ids are ignored.
func (s *Scene) ScreenshotSurface(id EntityID, label string) {
	e := s.surfaces[id]
	if e == nil {
		return
	}
	s.captures = append(s.captures, capture{label: label, texture: e.Texture})
}

// flushScreenshots writes every queued capture. The frame is read back at
// most once. Failures are logged since Draw has no error path.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.captures) == 0 {
		return
	}
	pending := s.captures
	s.captures = s.captures[:0]

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("worldui: screenshot dir", "dir", s.ScreenshotDir, "err", err)
		return
	}

	stamp := time.Now().Format("20060102_150405")
	var frame *image.NRGBA
	for _, c := range pending {
		var img *image.NRGBA
		if c.texture == 0 {
			if frame == nil {
				frame = snapshotImage(screen)
			}
			img = frame
		} else {
			var err error
			if img, err = s.SnapshotTexture(c.texture); err != nil {
				Logger().Warn("worldui: screenshot", "label", c.label, "err", err)
				continue
			}
		}
		path := filepath.Join(s.ScreenshotDir, stamp+"_"+sanitizeLabel(c.label)+".png")
		if err := writePNG(path, img); err != nil {
			Logger().Warn("worldui: screenshot", "label", c.label, "err", err)
			continue
		}
		Logger().Debug("worldui: screenshot written", "path", path, "surfaces", len(s.drawBuf))
	}
}

// SnapshotTexture copies a registered pixel buffer into straight-alpha
// NRGBA. Ebitengine-backed buffers are read back from the GPU, which is only
// valid once the game loop is running; any image.Image is converted
// directly.
func (s *Scene) SnapshotTexture(h TextureHandle) (*image.NRGBA, error) {
	buf, ok := s.textures.PixelBuffer(h)
	if !ok || buf == nil {
		return nil, fmt.Errorf("snapshot texture %d: %w", h, ErrMissingPixelBuffer)
	}
	switch b := buf.(type) {
	case *ebiten.Image:
		return snapshotImage(b), nil
	case imageSource:
		return snapshotImage(b.Image()), nil
	case image.Image:
		dst := image.NewNRGBA(image.Rect(0, 0, b.Bounds().Dx(), b.Bounds().Dy()))
		draw.Draw(dst, dst.Bounds(), b, b.Bounds().Min, draw.Src)
		return dst, nil
	}
	return nil, errors.New("snapshot texture: pixel buffer has no readable pixels")
}

func snapshotImage(img *ebiten.Image) *image.NRGBA {
	b := img.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	img.ReadPixels(pixels)
	return unpremultiply(pixels, b.Dx(), b.Dy())
}

// unpremultiply converts ebiten's premultiplied RGBA bytes to straight alpha.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := int(img.Pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := i; c < i+3; c++ {
			img.Pix[c] = uint8(min(int(img.Pix[c])*255/a, 255))
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.'; every other rune
// becomes '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (r == '-' || r == '.' ||
			'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9') {
			return r
		}
		return '_'
	}, label)
}
