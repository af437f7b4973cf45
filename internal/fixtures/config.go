package fixtures

import (
	"fmt"
	"time"
)

// Config holds configuration for a synthetic league.
type Config struct {
	Sport        string    // "nba" or "nfl" pick score scales; anything else uses nba's
	Teams        int       // number of teams, at least 2
	SeasonStart  time.Time // date of the first round
	Now          time.Time // rounds before Now are played, later ones scheduled
	UpcomingDays int       // how far past Now to schedule
	RoundEvery   int       // days between rounds
	Duplicates   int       // played games repeated at the end, to exercise dedupe
	Seed         uint64    // same seed, same league
}

type scale struct {
	mean, spread, strength float64
	week                   bool
}

var scales = map[string]scale{
	"nba": {mean: 112, spread: 11, strength: 9},
	"nfl": {mean: 22, spread: 9, strength: 7, week: true},
}

func (c Config) scale() scale {
	if s, ok := scales[c.Sport]; ok {
		return s
	}
	return scales["nba"]
}

// DefaultConfig returns a 30 team basketball league whose season opened
// 90 days before now.
func DefaultConfig(now time.Time) Config {
	return Config{
		Sport:        "nba",
		Teams:        30,
		SeasonStart:  now.AddDate(0, 0, -90),
		Now:          now,
		UpcomingDays: 7,
		RoundEvery:   2,
		Seed:         1,
	}
}

// Validate checks generator settings.
func (c Config) Validate() error {
	switch {
	case c.Teams < 2:
		return fmt.Errorf("%w: need at least 2 teams, got %d", ErrInvalidConfig, c.Teams)
	case c.RoundEvery < 1:
		return fmt.Errorf("%w: round_every must be positive", ErrInvalidConfig)
	case c.UpcomingDays < 0 || c.Duplicates < 0:
		return fmt.Errorf("%w: negative counts", ErrInvalidConfig)
	case c.SeasonStart.IsZero() || c.Now.IsZero():
		return fmt.Errorf("%w: season start and now are required", ErrInvalidConfig)
	case c.Now.Before(c.SeasonStart):
		return fmt.Errorf("%w: now precedes the season start", ErrInvalidConfig)
	}
	return nil
}
