// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders platform.
package config

// InvadersConfig contains all tunable parameters for the game.
type InvadersConfig struct {
	Ship       ShipConfig     `yaml:"ship"`
	Bullets    BulletConfig   `yaml:"bullets"`
	Fleet      FleetConfig    `yaml:"fleet"`
	Gameplay   GameplayConfig `yaml:"gameplay"`
	Difficulty Difficulty     `yaml:"difficulty"`
}

// ShipConfig defines the player ship parameters.
type ShipConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Cells per tick
}

// BulletConfig defines the player bullet parameters.
type BulletConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Speed   float64 `yaml:"speed"`    // Cells per tick, applied upward
	MaxLive int     `yaml:"max_live"` // Concurrent on-screen bullet cap
}

// FleetConfig defines the alien fleet parameters.
type FleetConfig struct {
	AlienWidth  int     `yaml:"alien_width"`
	AlienHeight int     `yaml:"alien_height"`
	Speed       float64 `yaml:"speed"`     // Horizontal cells per tick
	Drop        float64 `yaml:"drop"`      // Vertical cells per edge reversal
	Direction   int     `yaml:"direction"` // Starting direction: 1 right, -1 left
	MinGrid     int     `yaml:"min_grid"`  // Smallest allowed grid dimension
	Fill        float64 `yaml:"fill"`      // Fraction of screen capacity the grid targets
}

// GameplayConfig defines scoring and life-cycle parameters.
type GameplayConfig struct {
	StartingLives     int `yaml:"starting_lives"`
	AlienPoints       int `yaml:"alien_points"`
	RespawnDelayTicks int `yaml:"respawn_delay_ticks"`
}

// Difficulty defines the per-level compounding speed scale.
type Difficulty struct {
	Scale float64 `yaml:"scale"` // Multiplier applied to all speeds on level advance
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// hardGridFloor is the smallest fleet grid the game is allowed to build.
const hardGridFloor = 7

// Normalize clamps invalid values to playable defaults. Configuration
// errors are resolved here, at load time; the simulation core assumes
// its inputs are already sane.
func (c *InvadersConfig) Normalize() {
	def := DefaultInvadersConfig()

	if c.Ship.Width <= 0 {
		c.Ship.Width = def.Ship.Width
	}
	if c.Ship.Height <= 0 {
		c.Ship.Height = def.Ship.Height
	}
	if c.Ship.Speed <= 0 {
		c.Ship.Speed = def.Ship.Speed
	}

	if c.Bullets.Width <= 0 {
		c.Bullets.Width = def.Bullets.Width
	}
	if c.Bullets.Height <= 0 {
		c.Bullets.Height = def.Bullets.Height
	}
	if c.Bullets.Speed <= 0 {
		c.Bullets.Speed = def.Bullets.Speed
	}
	if c.Bullets.MaxLive <= 0 {
		c.Bullets.MaxLive = def.Bullets.MaxLive
	}

	if c.Fleet.AlienWidth <= 0 {
		c.Fleet.AlienWidth = def.Fleet.AlienWidth
	}
	if c.Fleet.AlienHeight <= 0 {
		c.Fleet.AlienHeight = def.Fleet.AlienHeight
	}
	if c.Fleet.Speed <= 0 {
		c.Fleet.Speed = def.Fleet.Speed
	}
	if c.Fleet.Drop <= 0 {
		c.Fleet.Drop = def.Fleet.Drop
	}
	if c.Fleet.Direction != 1 && c.Fleet.Direction != -1 {
		c.Fleet.Direction = def.Fleet.Direction
	}
	if c.Fleet.MinGrid < hardGridFloor {
		c.Fleet.MinGrid = hardGridFloor
	}
	if c.Fleet.Fill <= 0 || c.Fleet.Fill > 1 {
		c.Fleet.Fill = def.Fleet.Fill
	}

	if c.Gameplay.StartingLives <= 0 {
		c.Gameplay.StartingLives = def.Gameplay.StartingLives
	}
	if c.Gameplay.AlienPoints <= 0 {
		c.Gameplay.AlienPoints = def.Gameplay.AlienPoints
	}
	if c.Gameplay.RespawnDelayTicks < 0 {
		c.Gameplay.RespawnDelayTicks = def.Gameplay.RespawnDelayTicks
	}

	if c.Difficulty.Scale <= 1 {
		c.Difficulty.Scale = def.Difficulty.Scale
	}
}
