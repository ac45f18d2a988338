package invaders

import "github.com/pkovalev/tui-invaders/internal/core"

// Bullet is a player-fired projectile moving toward the top of the
// playfield at a constant speed.
type Bullet struct {
	Body
}

// Arsenal owns all live player bullets. It is the sole admission point
// for bullet creation: Fire enforces the concurrency cap and callers
// must check its return value.
type Arsenal struct {
	bullets []*Bullet

	field   core.Rect
	speed   float64
	maxLive int
	w, h    int
}

// NewArsenal creates an empty arsenal for the given playfield.
func NewArsenal(field core.Rect, w, h int) *Arsenal {
	return &Arsenal{
		field: field,
		w:     w,
		h:     h,
	}
}

// Configure sets the per-level bullet speed and concurrency cap.
func (a *Arsenal) Configure(t Tuning) {
	a.speed = t.BulletSpeed
	a.maxLive = t.BulletCap
}

// Fire creates a bullet whose bottom-center sits at (x, y) if the live
// count is below the cap. Returns false (and creates nothing) at the
// cap; running out of bullets is not an error.
func (a *Arsenal) Fire(x, y float64) bool {
	if len(a.bullets) >= a.maxLive {
		return false
	}
	a.bullets = append(a.bullets, &Bullet{
		Body: NewBody(x-float64(a.w)/2, y-float64(a.h), a.w, a.h, a.field),
	})
	return true
}

// Update advances every live bullet upward, then culls bullets whose
// bottom edge has passed the playfield top. Culling runs in the same
// pass so an off-field bullet never survives into collision checks.
func (a *Arsenal) Update() {
	for _, b := range a.bullets {
		b.Advance(0, -a.speed)
	}
	a.cullOffscreen()
}

// cullOffscreen drops bullets that have fully left the playfield top.
func (a *Arsenal) cullOffscreen() {
	kept := a.bullets[:0]
	for _, b := range a.bullets {
		if b.Rect().Bottom() > a.field.Y {
			kept = append(kept, b)
		}
	}
	// Release the tail so removed bullets can be collected.
	for i := len(kept); i < len(a.bullets); i++ {
		a.bullets[i] = nil
	}
	a.bullets = kept
}

// Bullets returns a read-only view of the live bullets. The slice is
// owned by the arsenal; callers must not retain it across frames.
func (a *Arsenal) Bullets() []*Bullet {
	return a.bullets
}

// Count returns the number of live bullets.
func (a *Arsenal) Count() int {
	return len(a.bullets)
}

// Clear removes all live bullets, used on level reset.
func (a *Arsenal) Clear() {
	for i := range a.bullets {
		a.bullets[i] = nil
	}
	a.bullets = a.bullets[:0]
}

// removeMarked deletes every bullet whose index is marked. Only the
// fleet's collision resolution calls this, after its mark pass, so
// removal never happens mid-iteration.
func (a *Arsenal) removeMarked(hit []bool) {
	kept := a.bullets[:0]
	for i, b := range a.bullets {
		if i < len(hit) && hit[i] {
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(a.bullets); i++ {
		a.bullets[i] = nil
	}
	a.bullets = kept
}
