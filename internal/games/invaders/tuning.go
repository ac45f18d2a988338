package invaders

import "github.com/pkovalev/tui-invaders/internal/config"

// Tuning is the per-level speed and limit bundle. It is immutable within
// a level: on level advance the game replaces the whole struct via Scaled
// rather than mutating fields in place, which keeps the compounding
// invariant (speed_k = speed_0 * scale^k) trivially true.
type Tuning struct {
	ShipSpeed    float64
	BulletSpeed  float64
	FleetSpeed   float64
	BulletCap    int
	DropDistance float64
	AlienPoints  int
}

// TuningFromConfig builds the level-1 tuning from a normalized config.
func TuningFromConfig(cfg config.InvadersConfig) Tuning {
	return Tuning{
		ShipSpeed:    cfg.Ship.Speed,
		BulletSpeed:  cfg.Bullets.Speed,
		FleetSpeed:   cfg.Fleet.Speed,
		BulletCap:    cfg.Bullets.MaxLive,
		DropDistance: cfg.Fleet.Drop,
		AlienPoints:  cfg.Gameplay.AlienPoints,
	}
}

// Scaled returns a new Tuning with all three speeds multiplied by factor.
// Caps, drop distance and point values are carried over unchanged.
func (t Tuning) Scaled(factor float64) Tuning {
	t.ShipSpeed *= factor
	t.BulletSpeed *= factor
	t.FleetSpeed *= factor
	return t
}
