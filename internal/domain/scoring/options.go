package scoring

import "math"

const blendTolerance = 1e-9

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithBlend sets the quality and competitive weights. Pairs that are
// negative or do not sum to 1 are ignored.
func WithBlend(quality, competitive float64) Option {
	return func(s *Scorer) {
		if quality < 0 || competitive < 0 || math.Abs(quality+competitive-1) > blendTolerance {
			return
		}
		s.qualityWeight = quality
		s.competitiveWeight = competitive
	}
}

// WithDecay sets the power gap scale of the competitive balance curve.
func WithDecay(decay float64) Option {
	return func(s *Scorer) {
		if decay > 0 && !math.IsInf(decay, 0) {
			s.decay = decay
		}
	}
}

// WithNeutralPower sets the power assumed for teams missing from the table.
func WithNeutralPower(power float64) Option {
	return func(s *Scorer) {
		if power >= 0 && power <= maxScoreValue {
			s.neutralPower = power
		}
	}
}

// WithTiers replaces the tier bands.
func WithTiers(t Tiers) Option {
	return func(s *Scorer) {
		if t.Valid() {
			s.tiers = Tiers{Bands: append([]Band(nil), t.Bands...), Floor: t.Floor}
		}
	}
}
