// Package rating converts season counters into a ranked 0..100 power table.
package rating

import (
	"math"
	"sort"

	"github.com/okian/slate/internal/domain/model"
)

// Differential modes.
const (
	ModePythagorean = "pythagorean"
	ModeNetPoints   = "net_points"
)

// Default calculator configuration constants.
const (
	defaultExponent       = 2.37
	defaultNetPointsBound = 15.0
	defaultScoringFloor   = 14.0
	defaultScoringCeiling = 32.0
	maxScoreValue         = 100
	weightTolerance       = 1e-9
)

// Weights is the convex combination applied to the four components.
type Weights struct {
	WinRate      float64
	Differential float64
	Offense      float64
	Defense      float64
}

// DefaultWeights returns the 35/30/20/15 split.
func DefaultWeights() Weights {
	return Weights{WinRate: 0.35, Differential: 0.30, Offense: 0.20, Defense: 0.15}
}

// Valid reports whether all weights are non-negative and sum to 1.
func (w Weights) Valid() bool {
	if w.WinRate < 0 || w.Differential < 0 || w.Offense < 0 || w.Defense < 0 {
		return false
	}
	return math.Abs(w.WinRate+w.Differential+w.Offense+w.Defense-1) <= weightTolerance
}

// Calculator computes power ratings. It holds configuration only and is safe
// for concurrent use.
type Calculator struct {
	weights        Weights
	mode           string
	exponent       float64
	netPointsBound float64
	scoringFloor   float64
	scoringCeiling float64
}

// NewCalculator creates a calculator with NFL-like defaults adjusted by opts.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		weights:        DefaultWeights(),
		mode:           ModePythagorean,
		exponent:       defaultExponent,
		netPointsBound: defaultNetPointsBound,
		scoringFloor:   defaultScoringFloor,
		scoringCeiling: defaultScoringCeiling,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Weights returns the configured component weights.
func (c *Calculator) Weights() Weights { return c.weights }

// Mode returns the differential mode in use.
func (c *Calculator) Mode() string { return c.mode }

// Exponent returns the Pythagorean exponent.
func (c *Calculator) Exponent() float64 { return c.exponent }

// Compute rates every team with at least one game and ranks them by power
// score descending, breaking exact ties by team id ascending. An empty input
// yields an empty table.
func (c *Calculator) Compute(rows []model.TeamStat) *Table {
	ratings := make([]model.PowerRating, 0, len(rows))
	for _, s := range rows {
		if s.GamesPlayed <= 0 {
			continue
		}
		comp := c.Components(s)
		ratings = append(ratings, model.PowerRating{
			TeamID:     s.TeamID,
			PowerScore: c.combine(comp),
			Components: comp,
			Stat:       s,
		})
	}

	sort.SliceStable(ratings, func(i, j int) bool {
		if ratings[i].PowerScore != ratings[j].PowerScore {
			return ratings[i].PowerScore > ratings[j].PowerScore
		}
		return ratings[i].TeamID < ratings[j].TeamID
	})
	for i := range ratings {
		ratings[i].Rank = i + 1
	}

	return newTable(ratings)
}

// Components returns the clamped sub-scores for one team.
func (c *Calculator) Components(s model.TeamStat) model.Components {
	if s.GamesPlayed <= 0 {
		return model.Components{}
	}
	span := c.scoringCeiling - c.scoringFloor
	return model.Components{
		WinRate:      clamp01(float64(s.Wins) / float64(s.GamesPlayed)),
		Differential: clamp01(c.differential(s)),
		Offense:      clamp01((s.PointsPerGame() - c.scoringFloor) / span),
		Defense:      clamp01((c.scoringCeiling - s.PointsAllowedPerGame()) / span),
	}
}

func (c *Calculator) combine(comp model.Components) float64 {
	w := c.weights
	return maxScoreValue * (w.WinRate*comp.WinRate +
		w.Differential*comp.Differential +
		w.Offense*comp.Offense +
		w.Defense*comp.Defense)
}

func (c *Calculator) differential(s model.TeamStat) float64 {
	if c.mode == ModeNetPoints {
		net := float64(s.PointDiff()) / float64(s.GamesPlayed)
		return (net + c.netPointsBound) / (2 * c.netPointsBound)
	}
	return Pythagorean(s.PointsScored, s.PointsAllowed, c.exponent)
}

// Pythagorean returns scored^k / (scored^k + allowed^k). A team that has
// allowed nothing gets 1.0; a team that has scored nothing (but allowed
// points) gets 0.
func Pythagorean(scored, allowed int, k float64) float64 {
	if allowed <= 0 {
		return 1.0
	}
	if scored <= 0 {
		return 0
	}
	// Ratio form keeps large season totals from overflowing.
	return 1 / (1 + math.Pow(float64(allowed)/float64(scored), k))
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Max(0, math.Min(1, x))
}
