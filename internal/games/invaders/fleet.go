package invaders

import "github.com/pkovalev/tui-invaders/internal/core"

// Alien is a single fleet member. It has no horizontal velocity of its
// own: direction and speed are dictated by the owning Fleet so the whole
// formation moves in lockstep.
type Alien struct {
	Body
}

// Fleet owns all live aliens and the shared group motion state. Members
// are created in bulk by Reset and removed only through collision
// resolution or a full reset.
type Fleet struct {
	aliens    []*Alien
	direction int     // +1 right, -1 left, shared by all members
	speed     float64 // Horizontal cells per tick
	drop      float64 // Vertical cells per edge reversal

	field        core.Rect
	alienW       int
	alienH       int
	defaultDir   int
	minGrid      int
	fillFraction float64
}

// NewFleet creates an empty fleet for the given playfield. The grid and
// members are built by Reset.
func NewFleet(field core.Rect, alienW, alienH, defaultDir, minGrid int, fill float64) *Fleet {
	return &Fleet{
		field:        field,
		alienW:       alienW,
		alienH:       alienH,
		defaultDir:   defaultDir,
		minGrid:      minGrid,
		fillFraction: fill,
	}
}

// GridSize computes the square formation dimension for the current
// playfield: the target fraction of the screen's alien capacity on each
// axis, coerced to the nearest odd number for symmetry, with a hard
// floor. The vertical capacity considers only the upper half of the
// field, where the formation spawns.
func (f *Fleet) GridSize() int {
	maxW := f.field.W / f.alienW
	maxH := (f.field.H / 2) / f.alienH

	targetW := int(float64(maxW) * f.fillFraction)
	targetH := int(float64(maxH) * f.fillFraction)

	size := core.Min(targetW, targetH)
	if size%2 == 0 {
		size--
	}
	return core.Max(f.minGrid, size)
}

// Reset clears all members and rebuilds the X-pattern formation with the
// given tuning: an alien exists at grid cell (row, col) iff the cell lies
// on either diagonal. Direction returns to the configured default.
func (f *Fleet) Reset(t Tuning) {
	for i := range f.aliens {
		f.aliens[i] = nil
	}
	f.aliens = f.aliens[:0]
	f.direction = f.defaultDir
	f.speed = t.FleetSpeed
	f.drop = t.DropDistance

	n := f.GridSize()
	fleetW := n * f.alienW
	fleetH := n * f.alienH
	xOffset := f.field.X + (f.field.W-fleetW)/2
	yOffset := f.field.Y + (f.field.H/2-fleetH)/2

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if col != row && col != n-1-row {
				continue
			}
			x := float64(xOffset + col*f.alienW)
			y := float64(yOffset + row*f.alienH)
			f.aliens = append(f.aliens, &Alien{
				Body: NewBody(x, y, f.alienW, f.alienH, f.field),
			})
		}
	}
}

// Update moves the whole formation one tick. Edge detection runs first:
// if any member touches or crosses a horizontal boundary the shared
// direction is inverted and every member drops, exactly once regardless
// of how many members are at the edge. Horizontal motion then uses the
// possibly-inverted direction, so the frame after a reversal already
// moves away from the wall.
func (f *Fleet) Update() {
	f.checkEdges()
	dx := f.speed * float64(f.direction)
	for _, a := range f.aliens {
		a.Advance(dx, 0)
	}
}

// checkEdges triggers at most one reversal-and-drop per frame. The scan
// short-circuits on the first offending member; reversal and drop are
// applied together as an atomic pair.
func (f *Fleet) checkEdges() {
	for _, a := range f.aliens {
		r := a.Rect()
		if r.Right() >= f.field.Right() || r.X <= f.field.X {
			f.dropAll()
			f.direction = -f.direction
			return
		}
	}
}

// dropAll lowers every member by the drop distance.
func (f *Fleet) dropAll() {
	for _, a := range f.aliens {
		a.Advance(0, f.drop)
	}
}

// ResolveCollisions destroys every (alien, bullet) pair whose rectangles
// intersect, removing both from their owning sets. Each alien and each
// bullet participates in at most one destruction per call: pairs are
// marked during iteration and removed in bulk afterwards, so iteration
// never races its own removals. Returns the number of destroyed aliens.
func (f *Fleet) ResolveCollisions(arsenal *Arsenal) int {
	bullets := arsenal.Bullets()

	hitAliens := make([]bool, len(f.aliens))
	hitBullets := make([]bool, len(bullets))

	for ai, a := range f.aliens {
		ar := a.Rect()
		for bi, b := range bullets {
			if hitBullets[bi] {
				continue
			}
			if ar.Intersects(b.Rect()) {
				hitAliens[ai] = true
				hitBullets[bi] = true
				break
			}
		}
	}

	destroyed := 0
	kept := f.aliens[:0]
	for i, a := range f.aliens {
		if hitAliens[i] {
			destroyed++
			continue
		}
		kept = append(kept, a)
	}
	for i := len(kept); i < len(f.aliens); i++ {
		f.aliens[i] = nil
	}
	f.aliens = kept

	arsenal.removeMarked(hitBullets)

	return destroyed
}

// IsCleared reports whether no aliens remain.
func (f *Fleet) IsCleared() bool {
	return len(f.aliens) == 0
}

// ReachedBottom reports whether any member's bottom edge is at or past
// the playfield bottom.
func (f *Fleet) ReachedBottom() bool {
	for _, a := range f.aliens {
		if a.Rect().Bottom() >= f.field.Bottom() {
			return true
		}
	}
	return false
}

// Aliens returns a read-only view of the live members. The slice is
// owned by the fleet; callers must not retain it across frames.
func (f *Fleet) Aliens() []*Alien {
	return f.aliens
}

// Count returns the number of live members.
func (f *Fleet) Count() int {
	return len(f.aliens)
}

// Direction returns the shared horizontal direction.
func (f *Fleet) Direction() int {
	return f.direction
}
