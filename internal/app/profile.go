package service

import (
	"github.com/okian/slate/internal/config"
	"github.com/okian/slate/internal/domain/model"
	"github.com/okian/slate/internal/domain/rating"
	"github.com/okian/slate/internal/domain/scoring"
)

// RatingOptions translates a sport profile into calculator options.
func RatingOptions(p config.Profile) []rating.Option {
	opts := []rating.Option{
		rating.WithWeights(rating.Weights{
			WinRate:      p.Weights.WinRate,
			Differential: p.Weights.Differential,
			Offense:      p.Weights.Offense,
			Defense:      p.Weights.Defense,
		}),
		rating.WithScoringBounds(p.ScoringFloor, p.ScoringCeiling),
	}
	if p.DifferentialMode == config.ModeNetPoints {
		return append(opts, rating.WithNetPoints(p.NetPointsBound))
	}
	return append(opts, rating.WithPythagorean(p.Exponent))
}

// ScoringOptions translates a sport profile into scorer options.
func ScoringOptions(p config.Profile) []scoring.Option {
	return []scoring.Option{
		scoring.WithBlend(p.QualityWeight, p.CompetitiveWeight),
		scoring.WithDecay(p.Decay),
		scoring.WithNeutralPower(p.NeutralPower),
		scoring.WithTiers(ProfileTiers(p)),
	}
}

// ProfileTiers builds the tier step function of a profile.
func ProfileTiers(p config.Profile) scoring.Tiers {
	t := scoring.Tiers{Floor: model.Tier(p.FloorTier)}
	for _, b := range p.Tiers {
		t.Bands = append(t.Bands, scoring.Band{Min: b.Min, Tier: model.Tier(b.Label)})
	}
	return t
}
