package scoring

import (
	"math"

	"github.com/okian/slate/internal/domain/model"
)

// Band assigns Tier to matchup scores at or above Min.
type Band struct {
	Min  float64
	Tier model.Tier
}

// Tiers is a step function over matchup scores. Bands are ordered by Min
// descending; scores below every band (and NaN) map to Floor.
type Tiers struct {
	Bands []Band
	Floor model.Tier
}

// DefaultTiers returns the 70/60/50 bands.
func DefaultTiers() Tiers {
	return Tiers{
		Bands: []Band{
			{Min: 70, Tier: model.TierMustWatch},
			{Min: 60, Tier: model.TierWorthWatching},
			{Min: 50, Tier: model.TierDecent},
		},
		Floor: model.TierSkip,
	}
}

// Valid reports whether the bands are strictly descending and every label is
// set.
func (t Tiers) Valid() bool {
	if t.Floor == "" {
		return false
	}
	for i, b := range t.Bands {
		if b.Tier == "" || math.IsNaN(b.Min) {
			return false
		}
		if i > 0 && b.Min >= t.Bands[i-1].Min {
			return false
		}
	}
	return true
}

// reportedDecimals is the precision matchup scores are published at.
const reportedDecimals = 1

// Classify returns the first band whose threshold the score reaches. The
// score is compared at its published precision, so a 69.96 shown as 70.0 is
// never labelled below the 70 band.
func (t Tiers) Classify(score float64) model.Tier {
	if math.IsNaN(score) {
		return t.Floor
	}
	scale := math.Pow10(reportedDecimals)
	score = math.Round(score*scale) / scale
	for _, b := range t.Bands {
		if score >= b.Min {
			return b.Tier
		}
	}
	return t.Floor
}

// Labels returns every tier label from best to worst.
func (t Tiers) Labels() []model.Tier {
	out := make([]model.Tier, 0, len(t.Bands)+1)
	for _, b := range t.Bands {
		out = append(out, b.Tier)
	}
	return append(out, t.Floor)
}

// Rank returns the position of label in Labels, or -1 when unknown.
func (t Tiers) Rank(label model.Tier) int {
	for i, l := range t.Labels() {
		if l == label {
			return i
		}
	}
	return -1
}
