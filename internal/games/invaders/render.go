package invaders

import (
	"fmt"

	"github.com/pkovalev/tui-invaders/internal/core"
)

// Visual glyphs.
const (
	ShipChar   = '▲'
	BulletChar = '│'
	AlienChar  = '▼'
	LifeChar   = '♥'
)

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	g.renderHUD(dst)
	g.renderFleet(dst)
	g.renderBullets(dst)
	g.renderShip(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, session max, high score, level and lives on
// the top rows.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Max: %d", g.stats.Score, g.stats.MaxScore))
	dst.DrawTextCentered(0, fmt.Sprintf("Hi: %d", g.stats.HiScore))

	levelText := fmt.Sprintf("Level: %d", g.stats.Level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	for i := 0; i < g.stats.Lives; i++ {
		dst.SetColored(1+i*2, 1, LifeChar, core.ColorBrightRed)
	}
	dst.DrawHLine(0, hudRows-1, dst.Width(), '─')
}

// renderFleet draws every live alien as a run of alien glyphs.
func (g *Game) renderFleet(dst *core.Screen) {
	for _, a := range g.fleet.Aliens() {
		r := a.Rect()
		for dy := 0; dy < r.H; dy++ {
			for dx := 0; dx < r.W; dx++ {
				dst.SetColored(r.X+dx, r.Y+dy, AlienChar, core.ColorBrightGreen)
			}
		}
	}
}

// renderBullets draws the live bullets.
func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.arsenal.Bullets() {
		r := b.Rect()
		for dy := 0; dy < r.H; dy++ {
			for dx := 0; dx < r.W; dx++ {
				dst.SetColored(r.X+dx, r.Y+dy, BulletChar, core.ColorBrightYellow)
			}
		}
	}
}

// renderShip draws the player ship.
func (g *Game) renderShip(dst *core.Screen) {
	r := g.ship.Rect()
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			dst.SetColored(r.X+dx, r.Y+dy, ShipChar, core.ColorBrightWhite)
		}
	}
}

// renderOverlay draws state-dependent message boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateMenu:
		g.drawCenteredBox(dst, "INVADERS", "A/D move | Space/W/Up fire | R play | Q quit")
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.stats.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	case StatePlaying:
		if g.respawnDelay > 0 {
			dst.DrawTextCentered(dst.Height()-1, "Get ready...")
		}
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
