package worldui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ClearColor fills the screen before surfaces are drawn. Nil leaves
	// Ebitengine's default.
	ClearColor color.Color
	// ShowFPS prints FPS and TPS in the top-left corner.
	ShowFPS bool
	// Update, if set, runs before Scene.Update each tick. A non-nil error
	// stops the game loop.
	Update func() error
	// Draw, if set, runs before the scene draws. Use it to paint surface
	// textures from their drained input queues.
	Draw func()
}

// Run opens a window and drives scene with mouse input enabled until the
// window closes or Update returns an error. The scene's viewport follows
// the window size; a scene without a camera gets a default one at (0,0,5)
// looking at the origin.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("worldui: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if scene.Camera() == nil {
		scene.SetCamera(NewCamera([3]float32{0, 0, 5}, [3]float32{}), cfg.Width, cfg.Height)
	}
	scene.EnableMouseInput(true)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}

type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != nil {
		screen.Fill(g.cfg.ClearColor)
	}
	if g.cfg.Draw != nil {
		g.cfg.Draw()
	}
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.SetCamera(g.scene.Camera(), outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
