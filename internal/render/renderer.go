package render

import (
	"image"
	"image/color"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// the frame loop.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int)
}

// Image represents a renderable image surface.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)

	// WritePixels replaces the image's pixels with RGBA bytes,
	// 4 bytes per pixel in row-major order.
	WritePixels(pix []byte)
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the frame loop cares about.
const (
	KeyEscape Key = iota
	KeySpace
)

// InputManager abstracts input polling.
type InputManager interface {
	// IsKeyPressed returns whether the specified key is currently pressed.
	IsKeyPressed(key Key) bool

	// CursorPosition returns the current cursor position in display coordinates.
	CursorPosition() (x, y int)
}

// Game is the frame loop contract, mirroring the engine's update/draw split.
type Game interface {
	Update() error
	Draw(screen Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// Engine abstracts window setup and the game loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	RunGame(game Game) error
}
