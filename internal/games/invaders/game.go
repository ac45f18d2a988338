package invaders

import (
	"github.com/pkovalev/tui-invaders/internal/config"
	"github.com/pkovalev/tui-invaders/internal/core"
)

// Game state constants.
const (
	StateMenu     = "menu"     // Idle at the start screen, waiting for a restart command
	StatePlaying  = "playing"  // Gameplay running
	StatePaused   = "paused"   // Suspended by the player
	StateGameOver = "gameover" // No lives left, waiting for a restart command
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 2

// Game orchestrates the per-frame simulation: ship and fleet advance,
// collision resolution, scoring, and level/difficulty progression.
// It is pure logic; the platform layer drives Step and pulls snapshots.
type Game struct {
	ship    *Ship
	fleet   *Fleet
	arsenal *Arsenal
	stats   *Stats

	state        string
	tuning       Tuning
	respawnDelay int // Ticks of non-interactive pause after a life loss
	tickCount    int

	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	field   core.Rect

	configPath       string
	difficultyPreset config.DifficultyPreset

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// Option customizes a game at construction time.
type Option func(*Game)

// WithConfigPath makes Reset load the YAML config from an explicit path
// instead of walking the default lookup chain.
func WithConfigPath(path string) Option {
	return func(g *Game) { g.configPath = path }
}

// WithDifficulty applies a named preset on top of the loaded config.
func WithDifficulty(preset config.DifficultyPreset) Option {
	return func(g *Game) { g.difficultyPreset = preset }
}

// New creates an unstarted game; Reset must run before Step.
func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the identifier used for CLI commands and score storage.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset initializes or restarts the whole session: loads config, builds
// the playfield, ship, arsenal and fleet, and lands on the start screen.
// The persisted high score survives because the platform re-applies it
// via SetHighScore after Reset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvaders(g.configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if g.difficultyPreset != "" {
		config.ApplyPreset(&cfg, g.difficultyPreset)
	}
	g.cfg = cfg

	g.minScreenW = cfg.Fleet.AlienWidth*cfg.Fleet.MinGrid + 4
	g.minScreenH = hudRows + cfg.Fleet.MinGrid*cfg.Fleet.AlienHeight*2 + 4
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.field = core.NewRect(0, hudRows, runtime.ScreenW, runtime.ScreenH-hudRows)
	g.tuning = TuningFromConfig(cfg)
	g.tickCount = 0
	g.respawnDelay = 0

	g.arsenal = NewArsenal(g.field, cfg.Bullets.Width, cfg.Bullets.Height)
	g.ship = NewShip(g.field, cfg.Ship.Width, cfg.Ship.Height, g.arsenal)
	g.fleet = NewFleet(g.field, cfg.Fleet.AlienWidth, cfg.Fleet.AlienHeight,
		cfg.Fleet.Direction, cfg.Fleet.MinGrid, cfg.Fleet.Fill)

	g.applyTuning()
	g.fleet.Reset(g.tuning)

	// A session rebuild (first start or terminal resize) must not wipe
	// the session stats: both highs survive across Reset.
	hi, maxScore := 0, 0
	if g.stats != nil {
		hi = g.stats.HiScore
		maxScore = g.stats.MaxScore
	}
	g.stats = NewStats(cfg.Gameplay.StartingLives)
	g.stats.HiScore = hi
	g.stats.MaxScore = maxScore

	g.state = StateMenu
}

// applyTuning pushes the current tuning bundle into the leaf components.
func (g *Game) applyTuning() {
	g.ship.Configure(g.tuning)
	g.arsenal.Configure(g.tuning)
}

// SetHighScore seeds the persisted all-time high score. Called by the
// platform after Reset; the core never reads storage itself.
func (g *Game) SetHighScore(hi int) {
	if hi > g.stats.HiScore {
		g.stats.HiScore = hi
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.handleTransitions(in)

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Cosmetic pause after a life loss: gameplay-state mutation and
	// movement stay suspended, only the delay counts down.
	if g.respawnDelay > 0 {
		g.respawnDelay--
		return core.StepResult{State: g.State()}
	}

	// Input intent -> leaf advances.
	g.ship.SetIntent(in.Has(core.ActionLeft), in.Has(core.ActionRight))
	if in.Has(core.ActionFire) {
		g.ship.Fire() // A full arsenal is a silent no-op.
	}
	g.ship.Update()
	g.fleet.Update()

	// Controller pass: collisions, scoring, progression.
	g.checkCollisions()

	return core.StepResult{State: g.State()}
}

// handleTransitions applies the menu/pause/restart state machine edges.
func (g *Game) handleTransitions(in core.InputFrame) {
	switch g.state {
	case StateMenu, StateGameOver:
		if in.Has(core.ActionRestart) {
			g.startRun()
		}
	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.state = StatePaused
		}
	case StatePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionRestart) {
			g.state = StatePlaying
		}
	}
}

// startRun begins a fresh run: per-run stats and tuning reset to level-1
// values, fleet rebuilt, bullets cleared, ship recentered. MaxScore and
// HiScore are preserved.
func (g *Game) startRun() {
	g.tuning = TuningFromConfig(g.cfg)
	g.applyTuning()
	g.stats.ResetRun(g.cfg.Gameplay.StartingLives)
	g.resetLevel()
	g.ship.Center()
	g.respawnDelay = 0
	g.state = StatePlaying
}

// resetLevel clears all bullets and rebuilds the fleet at the current
// tuning. Used for both life-loss retries and level advances.
func (g *Game) resetLevel() {
	g.arsenal.Clear()
	g.fleet.Reset(g.tuning)
}

// checkCollisions runs the per-frame controller sequence: ship/fleet
// contact first, then bullet/alien resolution with scoring, then
// clearance and difficulty progression.
func (g *Game) checkCollisions() {
	if g.ship.HitBy(g.fleet) || g.fleet.ReachedBottom() {
		g.handleShipHit()
		return
	}

	if destroyed := g.fleet.ResolveCollisions(g.arsenal); destroyed > 0 {
		g.stats.AddKills(destroyed, g.tuning.AlienPoints)
	}

	if g.fleet.IsCleared() {
		g.handleLevelClear()
	}
}

// handleShipHit processes a life loss: retry the level after a brief
// pause, or end the run when no lives remain.
func (g *Game) handleShipHit() {
	if g.stats.LoseLife() {
		g.resetLevel()
		g.ship.Center()
		g.respawnDelay = g.cfg.Gameplay.RespawnDelayTicks
		return
	}
	g.state = StateGameOver
}

// handleLevelClear rebuilds the fleet at scaled difficulty. The tuning
// bundle is replaced wholesale so speeds compound multiplicatively
// across levels.
func (g *Game) handleLevelClear() {
	g.tuning = g.tuning.Scaled(g.cfg.Difficulty.Scale)
	g.applyTuning()
	g.resetLevel()
	g.stats.AdvanceLevel()
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.Score,
		MaxScore: g.stats.MaxScore,
		Level:    g.stats.Level,
		Lives:    g.stats.Lives,
		HiScore:  g.stats.HiScore,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused || g.state == StateMenu,
	}
}

// Tuning returns the active per-level tuning bundle.
func (g *Game) Tuning() Tuning {
	return g.tuning
}
