// Package scoring rates how watchable an upcoming game is from the power
// ratings of the two teams.
package scoring

import (
	"context"
	"math"

	"github.com/okian/slate/internal/domain/dedupe"
	"github.com/okian/slate/internal/domain/model"
	"github.com/okian/slate/internal/domain/rating"
)

// Default scoring configuration constants.
const (
	defaultQualityWeight     = 0.6
	defaultCompetitiveWeight = 0.4
	defaultDecay             = 15.0
	defaultNeutralPower      = 50.0
	maxScoreValue            = 100
)

// Scorer computes matchup scores against a power table. It holds
// configuration only and is safe for concurrent use.
type Scorer struct {
	qualityWeight     float64
	competitiveWeight float64
	decay             float64
	neutralPower      float64
	tiers             Tiers
}

// NewScorer creates a scorer with a 60/40 quality/competitive blend.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		qualityWeight:     defaultQualityWeight,
		competitiveWeight: defaultCompetitiveWeight,
		decay:             defaultDecay,
		neutralPower:      defaultNeutralPower,
		tiers:             DefaultTiers(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Tiers returns the tier bands in use.
func (s *Scorer) Tiers() Tiers { return s.tiers }

// Blend returns the quality and competitive weights.
func (s *Scorer) Blend() (quality, competitive float64) {
	return s.qualityWeight, s.competitiveWeight
}

// Score rates a single game. A team missing from the table is scored with
// the neutral power and the table's unranked rank, and its Side is marked
// Ranked=false so callers can count it.
func (s *Scorer) Score(table *rating.Table, g model.Game) model.ScoredGame {
	away := s.side(table, g.AwayTeamID)
	home := s.side(table, g.HomeTeamID)

	quality := (away.Power + home.Power) / 2
	competitive := s.Competitive(away.Power - home.Power)
	matchup := s.qualityWeight*quality + s.competitiveWeight*competitive

	return model.ScoredGame{
		Game: g,
		Away: away,
		Home: home,
		Score: model.MatchupScore{
			Quality:     quality,
			Competitive: competitive,
			Matchup:     matchup,
			Tier:        s.tiers.Classify(matchup),
		},
	}
}

// ScoreAll scores games in input order, dropping any game whose id was
// already seen earlier in the slice.
func (s *Scorer) ScoreAll(ctx context.Context, table *rating.Table, games []model.Game) []model.ScoredGame {
	kept, _ := dedupe.Games(ctx, games)

	out := make([]model.ScoredGame, 0, len(kept))
	for _, g := range kept {
		out = append(out, s.Score(table, g))
	}
	return out
}

// Competitive maps a power gap to 0..100, 100 for evenly matched teams and
// decaying exponentially with the absolute gap.
func (s *Scorer) Competitive(gap float64) float64 {
	return maxScoreValue * math.Exp(-math.Abs(gap)/s.decay)
}

func (s *Scorer) side(table *rating.Table, teamID string) model.Side {
	if r, ok := table.Lookup(teamID); ok {
		return model.Side{TeamID: teamID, Rank: r.Rank, Power: r.PowerScore, Ranked: true}
	}
	return model.Side{TeamID: teamID, Rank: table.UnrankedRank(), Power: s.neutralPower}
}
