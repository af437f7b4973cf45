package model

// Tier is a watchability label derived from banding a matchup score.
type Tier string

// Default tier labels, highest first.
const (
	TierMustWatch     Tier = "Must Watch"
	TierWorthWatching Tier = "Worth Watching"
	TierDecent        Tier = "Decent"
	TierSkip          Tier = "Skip"
)

// MatchupScore is the scored view of one game.
type MatchupScore struct {
	Quality     float64
	Competitive float64
	Matchup     float64
	Tier        Tier
}

// Side is one team's rating context inside a scored game.
type Side struct {
	TeamID string
	Rank   int
	Power  float64
	Ranked bool // false when the neutral default was substituted
}

// ScoredGame joins a game with its score and both teams' ratings.
type ScoredGame struct {
	Game  Game
	Away  Side
	Home  Side
	Score MatchupScore
}
