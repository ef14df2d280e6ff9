package game

import (
	"fmt"
	"image/color"
	"log"

	"chosenoffset.com/lightbox/internal/geom"
	"chosenoffset.com/lightbox/internal/raycast"
	"chosenoffset.com/lightbox/internal/render"
	"chosenoffset.com/lightbox/internal/scene"
)

// ErrQuit signals a user-requested exit back to the engine loop.
var ErrQuit = fmt.Errorf("quit requested")

// Game runs the per-frame pipeline: poll the light origin, sweep the scene,
// rasterize beams and wall outlines into the frame buffer, present. All of
// it happens on the engine's single update/draw thread.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Scene        *scene.Scene
	Caster       *raycast.Caster
	Frame        *render.FrameBuffer
	Renderer     render.Renderer
	InputMgr     render.InputManager

	origin   geom.Point
	scratch  []byte
	raysLast int
}

// New creates the game with its owned frame buffer
func New(sc *scene.Scene, caster *raycast.Caster, renderer render.Renderer, input render.InputManager, screenWidth, screenHeight int) *Game {
	return &Game{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		Scene:        sc,
		Caster:       caster,
		Frame:        render.NewFrameBuffer(screenWidth, screenHeight),
		Renderer:     renderer,
		InputMgr:     input,
		origin:       geom.Point{X: float64(screenWidth) / 2, Y: float64(screenHeight) / 2},
	}
}

// Update polls input. The light origin follows the cursor; the cursor is
// untrusted and may be off screen, the rasterizer's bounds checks cover that.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyPressed(render.KeyEscape) {
		return ErrQuit
	}

	x, y := g.InputMgr.CursorPosition()
	g.origin = geom.Point{X: float64(x), Y: float64(y)}

	return nil
}

// Draw renders one frame: beams first, wall outlines on top, then the
// origin marker and HUD over the presented pixels.
func (g *Game) Draw(screen render.Image) {
	if err := g.Frame.Begin(); err != nil {
		// Frame buffer unavailable: skip this frame's draw and
		// presentation, the loop carries on.
		log.Printf("skipping frame: %v", err)
		return
	}

	g.raysLast = g.Caster.Sweep(g.Frame, g.origin)
	raycast.DrawWalls(g.Frame, g.Scene)

	g.scratch = render.AppendRGBA(g.scratch, g.Frame.End())
	screen.WritePixels(g.scratch)

	g.Renderer.FillCircle(screen,
		float32(g.origin.X), float32(g.origin.Y), 4,
		color.RGBA{255, 255, 100, 255})

	hud := fmt.Sprintf("origin: (%.0f, %.0f)  rays: %d  walls: %d",
		g.origin.X, g.origin.Y, g.raysLast, len(g.Scene.Walls()))
	g.Renderer.DrawText(screen, hud, 8, 8)
}

// Layout reports the fixed render size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
