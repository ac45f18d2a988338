package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the hardcoded default configuration.
// Kept in sync with defaults/invaders.yaml; used as the last-resort
// fallback if the embedded YAML cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Ship: ShipConfig{
			Width:  5,
			Height: 1,
			Speed:  0.6,
		},
		Bullets: BulletConfig{
			Width:   1,
			Height:  1,
			Speed:   0.5,
			MaxLive: 5,
		},
		Fleet: FleetConfig{
			AlienWidth:  3,
			AlienHeight: 1,
			Speed:       0.12,
			Drop:        1.0,
			Direction:   1,
			MinGrid:     7,
			Fill:        0.5,
		},
		Gameplay: GameplayConfig{
			StartingLives:     3,
			AlienPoints:       50,
			RespawnDelayTicks: 30,
		},
		Difficulty: Difficulty{
			Scale: 1.1,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `config dump`-style
// tooling and tests.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
