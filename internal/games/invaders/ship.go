package invaders

import "github.com/pkovalev/tui-invaders/internal/core"

// Ship is the player-controlled entity: horizontal-only motion, clamped
// to the playfield, anchored to the bottom row. It owns an Arsenal and
// converts movement intent into bounded motion each tick.
type Ship struct {
	Body
	arsenal *Arsenal
	speed   float64

	movingLeft  bool
	movingRight bool
}

// NewShip creates a ship centered at the bottom of the playfield.
func NewShip(field core.Rect, w, h int, arsenal *Arsenal) *Ship {
	s := &Ship{
		Body:    NewBody(0, 0, w, h, field),
		arsenal: arsenal,
	}
	s.Center()
	return s
}

// Configure sets the per-level ship speed.
func (s *Ship) Configure(t Tuning) {
	s.speed = t.ShipSpeed
}

// Center moves the ship to its default spawn position: horizontally
// centered, bottom edge on the playfield bottom.
func (s *Ship) Center() {
	s.X = float64(s.Field.X) + float64(s.Field.W-s.W)/2
	s.Y = float64(s.Field.Bottom() - s.H)
}

// SetIntent records the movement intent for the next Update. Both flags
// may be true; motion then resolves deterministically in Update.
func (s *Ship) SetIntent(left, right bool) {
	s.movingLeft = left
	s.movingRight = right
}

// Update applies horizontal motion per the active intent flags, then
// advances the arsenal. The rightward delta is applied first, then the
// leftward one, each clamped against the bounds independently, so
// simultaneous presses cancel to near-zero net motion instead of
// stalling at a wall.
func (s *Ship) Update() {
	minX := float64(s.Field.X)
	maxX := float64(s.Field.Right() - s.W)

	if s.movingRight {
		s.X = core.ClampF(s.X+s.speed, minX, maxX)
	}
	if s.movingLeft {
		s.X = core.ClampF(s.X-s.speed, minX, maxX)
	}

	s.arsenal.Update()
}

// Fire attempts to launch a bullet from the ship's top-center.
// Returns false when the arsenal cap is reached.
func (s *Ship) Fire() bool {
	return s.arsenal.Fire(s.X+float64(s.W)/2, s.Y)
}

// HitBy reports whether the ship intersects any live fleet member.
// On a hit the ship recenters to its spawn position before returning;
// the check is side-effecting by contract, not a pure query.
func (s *Ship) HitBy(fleet *Fleet) bool {
	r := s.Rect()
	for _, a := range fleet.Aliens() {
		if r.Intersects(a.Rect()) {
			s.Center()
			return true
		}
	}
	return false
}

// Arsenal returns the ship's bullet set.
func (s *Ship) Arsenal() *Arsenal {
	return s.arsenal
}
