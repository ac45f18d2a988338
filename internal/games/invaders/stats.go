package invaders

// Stats tracks the session bookkeeping: current run score, session max,
// persist-backed high score, level and remaining lives. Only the Game
// mutates it.
type Stats struct {
	Score    int
	MaxScore int // Session high, survives restarts within a process
	HiScore  int // All-time high, seeded from storage by the platform
	Level    int
	Lives    int
}

// NewStats creates stats for a fresh session.
func NewStats(startingLives int) *Stats {
	return &Stats{
		Level: 1,
		Lives: startingLives,
	}
}

// ResetRun clears the per-run fields for a new game while preserving
// MaxScore and HiScore.
func (s *Stats) ResetRun(startingLives int) {
	s.Score = 0
	s.Level = 1
	s.Lives = startingLives
}

// AddKills credits destroyed aliens and ratchets the max and high
// scores. Both are monotonic non-decreasing.
func (s *Stats) AddKills(count, pointsEach int) {
	s.Score += count * pointsEach
	if s.Score > s.MaxScore {
		s.MaxScore = s.Score
	}
	if s.Score > s.HiScore {
		s.HiScore = s.Score
	}
}

// AdvanceLevel increments the level counter.
func (s *Stats) AdvanceLevel() {
	s.Level++
}

// LoseLife decrements the life counter and reports whether any lives
// remain.
func (s *Stats) LoseLife() bool {
	s.Lives--
	return s.Lives > 0
}
