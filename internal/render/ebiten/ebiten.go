package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/lightbox/internal/render"
)

// EbitenRenderer implements the render.Renderer interface using Ebiten.
type EbitenRenderer struct{}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// NewImage creates a new image with the given dimensions.
func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledCircle(ebitenImg, x, y, radius, clr, true)
}

// StrokeCircle draws a circle outline on the destination image.
func (r *EbitenRenderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.StrokeCircle(ebitenImg, x, y, radius, strokeWidth, clr, true)
}

// DrawText draws text on the destination image using the debug font.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int) {
	ebitenImg := dst.(*EbitenImage).img
	ebitenutil.DebugPrintAt(ebitenImg, str, x, y)
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the image dimensions in pixels.
func (i *EbitenImage) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// WritePixels replaces the image's pixels with RGBA bytes.
func (i *EbitenImage) WritePixels(pix []byte) {
	i.img.WritePixels(pix)
}

// GetEbitenImage returns the underlying ebiten.Image.
// This is useful for interop with ebiten-specific code.
func (i *EbitenImage) GetEbitenImage() *ebiten.Image {
	return i.img
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Image.
func WrapEbitenImage(img *ebiten.Image) render.Image {
	return &EbitenImage{img: img}
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	return ebiten.IsKeyPressed(keyToEbitenKey(key))
}

// CursorPosition returns the current cursor position.
func (m *EbitenInputManager) CursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyEscape:
		return ebiten.KeyEscape
	case render.KeySpace:
		return ebiten.KeySpace
	default:
		return 0
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	return a.game.Update()
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
