package game

import (
	"time"

	"github.com/google/uuid"
)

// GameRecord holds the outcome of one finished game.
type GameRecord struct {
	ID       string
	Score    int
	Started  time.Time
	Ended    time.Time
	Duration time.Duration
}

// SessionStats accumulates results for the lifetime of the process.
// Nothing is written to disk; a new session starts from zero.
type SessionStats struct {
	games     []GameRecord
	highScore int

	currentID    string
	currentStart time.Time
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		games: make([]GameRecord, 0),
	}
}

// StartGame stamps the beginning of a new game.
func (s *SessionStats) StartGame() {
	s.currentID = uuid.NewString()
	s.currentStart = time.Now()
}

// EndGame records the finished game and updates the high score.
func (s *SessionStats) EndGame(score int) {
	now := time.Now()
	s.games = append(s.games, GameRecord{
		ID:       s.currentID,
		Score:    score,
		Started:  s.currentStart,
		Ended:    now,
		Duration: now.Sub(s.currentStart),
	})
	if score > s.highScore {
		s.highScore = score
	}
}

func (s *SessionStats) GamesPlayed() int {
	return len(s.games)
}

func (s *SessionStats) HighScore() int {
	return s.highScore
}

// AverageScore is the mean score over finished games, 0 with no games.
func (s *SessionStats) AverageScore() float64 {
	if len(s.games) == 0 {
		return 0
	}
	total := 0
	for _, g := range s.games {
		total += g.Score
	}
	return float64(total) / float64(len(s.games))
}

// AverageDuration is the mean length of finished games, 0 with no games.
func (s *SessionStats) AverageDuration() time.Duration {
	if len(s.games) == 0 {
		return 0
	}
	var total time.Duration
	for _, g := range s.games {
		total += g.Duration
	}
	return total / time.Duration(len(s.games))
}

// Games returns a copy of the per-game records, oldest first.
func (s *SessionStats) Games() []GameRecord {
	out := make([]GameRecord, len(s.games))
	copy(out, s.games)
	return out
}
