package invaders

import (
	"testing"

	"github.com/pkovalev/tui-invaders/internal/core"
)

func testTuning() Tuning {
	return Tuning{
		ShipSpeed:    0.6,
		BulletSpeed:  0.5,
		FleetSpeed:   0.12,
		BulletCap:    5,
		DropDistance: 1.0,
		AlienPoints:  50,
	}
}

func TestArsenalCapEnforcement(t *testing.T) {
	field := core.NewRect(0, 0, 80, 24)
	a := NewArsenal(field, 1, 1)
	tun := testTuning()
	a.Configure(tun)

	// cap+1 fire attempts in one frame succeed exactly cap times
	fired := 0
	for i := 0; i < tun.BulletCap+1; i++ {
		if a.Fire(40, 22) {
			fired++
		}
	}
	if fired != tun.BulletCap {
		t.Errorf("fired %d bullets, expected cap %d", fired, tun.BulletCap)
	}
	if a.Count() != tun.BulletCap {
		t.Errorf("live count = %d, expected %d", a.Count(), tun.BulletCap)
	}
}

func TestArsenalCapFreedByCull(t *testing.T) {
	field := core.NewRect(0, 0, 80, 24)
	a := NewArsenal(field, 1, 1)
	a.Configure(Tuning{BulletSpeed: 30, BulletCap: 1})

	if !a.Fire(40, 22) {
		t.Fatal("first fire should succeed")
	}
	if a.Fire(40, 22) {
		t.Fatal("second fire should hit the cap")
	}

	a.Update() // Bullet flies past the top and is culled in the same pass
	if a.Count() != 0 {
		t.Fatalf("bullet not culled, count = %d", a.Count())
	}
	if !a.Fire(40, 22) {
		t.Error("fire should succeed again after cull frees the slot")
	}
}

func TestArsenalCullFrameCount(t *testing.T) {
	// A bullet fired with its bottom edge at y=770 moving up 7 cells per
	// tick leaves the field after exactly ceil(770/7) = 110 frames.
	field := core.NewRect(0, 0, 100, 800)
	a := NewArsenal(field, 1, 1)
	a.Configure(Tuning{BulletSpeed: 7, BulletCap: 1})

	if !a.Fire(50, 770) {
		t.Fatal("fire failed")
	}

	for frame := 1; frame <= 109; frame++ {
		a.Update()
		if a.Count() != 1 {
			t.Fatalf("bullet culled early at frame %d", frame)
		}
	}
	a.Update()
	if a.Count() != 0 {
		t.Error("bullet still live after frame 110")
	}
}

func TestArsenalFireSpawnPosition(t *testing.T) {
	field := core.NewRect(0, 0, 80, 24)
	a := NewArsenal(field, 1, 2)
	a.Configure(testTuning())

	a.Fire(40, 22)
	r := a.Bullets()[0].Rect()
	if r.Bottom() != 22 {
		t.Errorf("bullet bottom = %d, expected 22 (fire origin)", r.Bottom())
	}
	if r.X != 39 && r.X != 40 {
		t.Errorf("bullet not centered on origin: X = %d", r.X)
	}
}

func TestArsenalClear(t *testing.T) {
	field := core.NewRect(0, 0, 80, 24)
	a := NewArsenal(field, 1, 1)
	a.Configure(testTuning())

	a.Fire(10, 20)
	a.Fire(20, 20)
	a.Clear()
	if a.Count() != 0 {
		t.Errorf("Clear left %d bullets", a.Count())
	}
}
