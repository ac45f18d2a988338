package invaders

import (
	"math"
	"testing"

	"github.com/pkovalev/tui-invaders/internal/core"
)

func testShip(field core.Rect) *Ship {
	a := NewArsenal(field, 1, 1)
	a.Configure(testTuning())
	s := NewShip(field, 5, 1, a)
	s.Configure(testTuning())
	return s
}

func TestShipCenterSpawn(t *testing.T) {
	field := core.NewRect(0, 2, 80, 22)
	s := testShip(field)

	if s.X != 37.5 {
		t.Errorf("spawn x = %f, expected 37.5", s.X)
	}
	if s.Y != float64(field.Bottom()-1) {
		t.Errorf("spawn y = %f, expected %d", s.Y, field.Bottom()-1)
	}
}

func TestShipLeftBoundaryClamp(t *testing.T) {
	field := core.NewRect(0, 0, 80, 24)
	s := testShip(field)
	s.SetIntent(true, false)

	// Far more frames than needed to reach the wall; position must pin
	// at the boundary, never cross it.
	for i := 0; i < 100; i++ {
		s.Update()
	}
	if s.X != float64(field.X) {
		t.Errorf("x after 100 left frames = %f, expected clamp at %d", s.X, field.X)
	}
	if s.Rect().X < field.X {
		t.Errorf("ship rect crossed the left boundary: %d", s.Rect().X)
	}
}

func TestShipRightBoundaryClamp(t *testing.T) {
	field := core.NewRect(0, 0, 80, 24)
	s := testShip(field)
	s.SetIntent(false, true)

	for i := 0; i < 200; i++ {
		s.Update()
	}
	want := float64(field.Right() - s.W)
	if s.X != want {
		t.Errorf("x after 200 right frames = %f, expected clamp at %f", s.X, want)
	}
}

func TestShipBothIntentsCancel(t *testing.T) {
	field := core.NewRect(0, 0, 80, 24)
	s := testShip(field)
	start := s.X

	s.SetIntent(true, true)
	for i := 0; i < 50; i++ {
		s.Update()
	}
	// Right then left with equal speed: net zero away from walls.
	if math.Abs(s.X-start) > 1e-9 {
		t.Errorf("x drifted to %f with both intents held, started at %f", s.X, start)
	}
}

func TestShipBothIntentsAtWall(t *testing.T) {
	field := core.NewRect(0, 0, 80, 24)
	s := testShip(field)
	s.X = float64(field.X)

	// At the left wall the rightward delta applies but the leftward one
	// clamps, so the ship peels off the wall by at most one step and
	// never sticks below the boundary.
	s.SetIntent(true, true)
	s.Update()
	if s.X < float64(field.X) {
		t.Errorf("x = %f, crossed the left boundary", s.X)
	}
	if s.X > float64(field.X)+testTuning().ShipSpeed {
		t.Errorf("x = %f, moved more than one step off the wall", s.X)
	}
}

func TestShipFireOrigin(t *testing.T) {
	field := core.NewRect(0, 0, 80, 24)
	s := testShip(field)

	if !s.Fire() {
		t.Fatal("first shot rejected")
	}
	b := s.Arsenal().Bullets()[0]
	wantX := s.X + float64(s.W)/2 - float64(b.W)/2
	if math.Abs(b.X-wantX) > 1e-9 {
		t.Errorf("bullet x = %f, expected centered on ship at %f", b.X, wantX)
	}
	if b.Y+float64(b.H) != s.Y {
		t.Errorf("bullet bottom = %f, expected flush with ship top %f", b.Y+float64(b.H), s.Y)
	}
}

func TestShipHitByRecenters(t *testing.T) {
	field := core.NewRect(0, 0, 80, 24)
	s := testShip(field)
	f := testFleet(field)
	f.Reset(testTuning())

	// No overlap: pure query, no motion.
	s.X = float64(field.X)
	if s.HitBy(f) {
		t.Fatal("hit reported with fleet in the upper half")
	}
	if s.X != float64(field.X) {
		t.Error("ship moved on a miss")
	}

	// Drop one alien onto the ship: hit reported and ship recentered.
	f.Aliens()[0].X = s.X
	f.Aliens()[0].Y = s.Y
	if !s.HitBy(f) {
		t.Fatal("overlapping alien not detected")
	}
	if s.X != float64(field.X)+float64(field.W-s.W)/2 {
		t.Errorf("ship x = %f after hit, expected recentered", s.X)
	}
}
