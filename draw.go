package worldui

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// imageSource is implemented by pixel buffers that can be drawn directly,
// such as *RenderTexture.
type imageSource interface {
	Image() *ebiten.Image
}

// surfaceImage returns the ebiten image backing a surface texture, or nil
// when the buffer is not drawable (for example a plain *image.RGBA).
func (s *Scene) surfaceImage(h TextureHandle) *ebiten.Image {
	buf, ok := s.textures.PixelBuffer(h)
	if !ok {
		return nil
	}
	switch b := buf.(type) {
	case *ebiten.Image:
		return b
	case imageSource:
		return b.Image()
	}
	return nil
}

type drawItem struct {
	e     *SurfaceEntity
	img   *ebiten.Image
	dist  float32
	verts [4]ebiten.Vertex
}

var quadIndices = []uint16{0, 1, 2, 1, 3, 2}

// Draw renders every surface with a drawable texture onto screen through the
// scene camera, farthest first. A surface with any corner behind the camera
// is skipped; there is no clipping. Textures are mapped per triangle without
// perspective correction. Queued screenshots are captured afterwards.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.camera != nil {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		items := s.drawBuf[:0]
		for _, e := range s.order {
			img := s.surfaceImage(e.Texture)
			if img == nil {
				continue
			}
			it := drawItem{e: e, img: img}
			if !s.projectSurface(e, img, w, h, &it.verts) {
				continue
			}
			it.dist = e.Transform.Translation.Sub(s.camera.Position).Len()
			items = append(items, it)
		}
		sort.SliceStable(items, func(i, j int) bool { return items[i].dist > items[j].dist })

		op := &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}
		for i := range items {
			screen.DrawTriangles(items[i].verts[:], quadIndices, items[i].img, op)
		}
		s.drawBuf = items
	}
	s.flushScreenshots(screen)
}

// projectSurface fills verts with the screen positions of the surface
// corners in UV order (0,0) (1,0) (0,1) (1,1).
func (s *Scene) projectSurface(e *SurfaceEntity, img *ebiten.Image, w, h int, verts *[4]ebiten.Vertex) bool {
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return false
	}
	corners := [4]mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, uv := range corners {
		lx, lz := UVToLocal(e.Surface, uv)
		world := e.Transform.LocalToWorld(mgl32.Vec3{lx, 0, lz})
		x, y, visible := s.camera.WorldToScreen(world, w, h)
		if !visible {
			return false
		}
		verts[i] = ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   uv.X() * float32(iw),
			SrcY:   uv.Y() * float32(ih),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	return true
}
