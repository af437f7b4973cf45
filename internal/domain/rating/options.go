package rating

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithWeights sets the component weights. Weights that are negative or do not
// sum to 1 are ignored.
func WithWeights(w Weights) Option {
	return func(c *Calculator) {
		if w.Valid() {
			c.weights = w
		}
	}
}

// WithPythagorean selects the Pythagorean expectation with exponent k.
func WithPythagorean(k float64) Option {
	return func(c *Calculator) {
		if k > 0 {
			c.mode = ModePythagorean
			c.exponent = k
		}
	}
}

// WithNetPoints selects net points per game normalized over [-bound, bound].
func WithNetPoints(bound float64) Option {
	return func(c *Calculator) {
		if bound > 0 {
			c.mode = ModeNetPoints
			c.netPointsBound = bound
		}
	}
}

// WithScoringBounds sets the plausible per-game scoring range used for the
// offensive and defensive efficiency components.
func WithScoringBounds(floor, ceiling float64) Option {
	return func(c *Calculator) {
		if ceiling > floor {
			c.scoringFloor = floor
			c.scoringCeiling = ceiling
		}
	}
}
