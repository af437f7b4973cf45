// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Game is a scheduled or concluded fixture as reported by a schedule provider.
// Scores are set only once the game has concluded.
type Game struct {
	ID         string    // unique id; duplicates are dropped keep-first
	Date       time.Time // scheduled start
	AwayTeamID string
	HomeTeamID string
	AwayScore  *int
	HomeScore  *int
	Status     string // display text, e.g. "7:30 PM ET" or "Final"
	Week       int    // 0 when the sport has no weeks
}

// Completed reports whether both final scores are present.
func (g Game) Completed() bool {
	return g.AwayScore != nil && g.HomeScore != nil
}

// Validate rejects records that cannot be aggregated or scored.
func (g Game) Validate() error {
	switch {
	case strings.TrimSpace(g.ID) == "":
		return fmt.Errorf("%w: missing game id", ErrInvalidGame)
	case strings.TrimSpace(g.AwayTeamID) == "":
		return fmt.Errorf("%w: game %s: missing away team", ErrInvalidGame, g.ID)
	case strings.TrimSpace(g.HomeTeamID) == "":
		return fmt.Errorf("%w: game %s: missing home team", ErrInvalidGame, g.ID)
	case g.AwayTeamID == g.HomeTeamID:
		return fmt.Errorf("%w: game %s: team %s on both sides", ErrInvalidGame, g.ID, g.HomeTeamID)
	case (g.AwayScore == nil) != (g.HomeScore == nil):
		return fmt.Errorf("%w: game %s: only one final score present", ErrInvalidGame, g.ID)
	case g.AwayScore != nil && (*g.AwayScore < 0 || *g.HomeScore < 0):
		return fmt.Errorf("%w: game %s: negative score", ErrInvalidGame, g.ID)
	}
	return nil
}

// Score returns a pointer to v, used to fill the optional score fields.
func Score(v int) *int { return &v }
