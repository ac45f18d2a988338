package invaders

// posScale converts float positions to integers for stable snapshots.
const posScale = 1000

// Snapshot contains the complete game state using primitive types only,
// for determinism testing and debugging.
type Snapshot struct {
	Tick         uint64
	State        string
	Score        int
	MaxScore     int
	HiScore      int
	Level        int
	Lives        int
	RespawnDelay int

	ShipX int // Scaled by posScale
	ShipY int

	FleetDirection int
	AlienCount     int
	AlienData      []int // Per alien: X, Y (scaled)

	BulletCount int
	BulletData  []int // Per bullet: X, Y (scaled)
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	aliens := g.fleet.Aliens()
	alienData := make([]int, 0, len(aliens)*2)
	for _, a := range aliens {
		alienData = append(alienData, int(a.X*posScale), int(a.Y*posScale))
	}

	bullets := g.arsenal.Bullets()
	bulletData := make([]int, 0, len(bullets)*2)
	for _, b := range bullets {
		bulletData = append(bulletData, int(b.X*posScale), int(b.Y*posScale))
	}

	return Snapshot{
		Tick:         uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:        g.state,
		Score:        g.stats.Score,
		MaxScore:     g.stats.MaxScore,
		HiScore:      g.stats.HiScore,
		Level:        g.stats.Level,
		Lives:        g.stats.Lives,
		RespawnDelay: g.respawnDelay,

		ShipX: int(g.ship.X * posScale),
		ShipY: int(g.ship.Y * posScale),

		FleetDirection: g.fleet.Direction(),
		AlienCount:     len(aliens),
		AlienData:      alienData,

		BulletCount: len(bullets),
		BulletData:  bulletData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Score)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RespawnDelay)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipX)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipY)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FleetDirection+2)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AlienCount)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount)        //#nosec G115 -- hash computation

	for _, v := range snap.AlienData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
