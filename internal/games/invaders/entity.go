// Package invaders implements the fixed-shooter game logic: a ship at the
// bottom of the playfield firing at an X-shaped alien fleet that marches
// side-to-side and drops toward the ship.
package invaders

import (
	"math"

	"github.com/pkovalev/tui-invaders/internal/core"
)

// Body is a positioned rectangular entity shared by bullets and fleet
// members. The float position is the source of truth; the integer rect
// used for collision and rendering is derived from it on every read, so
// the two can never drift apart.
type Body struct {
	X, Y  float64   // Top-left corner, sub-cell precision
	W, H  int       // Size in cells
	Field core.Rect // Playfield bounds the body lives in
}

// NewBody creates a body at the given position.
func NewBody(x, y float64, w, h int, field core.Rect) Body {
	return Body{X: x, Y: y, W: w, H: h, Field: field}
}

// Advance adds a delta to the float position.
func (b *Body) Advance(dx, dy float64) {
	b.X += dx
	b.Y += dy
}

// Rect returns the integer bounding rectangle derived from the float
// position by truncation toward negative infinity.
func (b *Body) Rect() core.Rect {
	return core.NewRect(int(math.Floor(b.X)), int(math.Floor(b.Y)), b.W, b.H)
}
