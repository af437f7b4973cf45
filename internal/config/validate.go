package config

import (
	"fmt"
	"math"
	"strings"
)

const sumTolerance = 1e-6

// Validate checks that every value is usable. Failures wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return invalidf("addr must not be empty")
	}
	switch c.Source {
	case SourceESPN:
		if c.ESPNBaseURL == "" {
			return invalidf("espn_base_url must not be empty")
		}
	case SourceFile:
		if c.FixturePath == "" {
			return invalidf("fixture_path is required when source is %q", SourceFile)
		}
	default:
		return invalidf("unknown source %q", c.Source)
	}
	if c.DaysAhead < 1 {
		return invalidf("days_ahead must be at least 1, got %d", c.DaysAhead)
	}
	if c.FetchDelayMS < 0 {
		return invalidf("fetch_delay_ms must not be negative")
	}
	if c.HTTPTimeoutMS <= 0 {
		return invalidf("http_timeout_ms must be positive")
	}
	if c.ResultsWindowDays < 1 {
		return invalidf("results_window_days must be at least 1")
	}
	if c.ScoreboardLimit < 1 {
		return invalidf("scoreboard_limit must be at least 1")
	}
	if c.MaxRankingsLimit < 1 {
		return invalidf("max_rankings_limit must be at least 1")
	}
	if c.RefreshIntervalSec < 1 {
		return invalidf("refresh_interval_sec must be at least 1")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	for name, p := range c.Profiles {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}
	if _, err := c.Profile(); err != nil {
		return err
	}
	return nil
}

// Validate checks a single sport profile.
func (p Profile) Validate() error {
	switch p.DifferentialMode {
	case ModePythagorean:
		if p.Exponent <= 0 {
			return invalidf("exponent must be positive")
		}
	case ModeNetPoints:
		if p.NetPointsBound <= 0 {
			return invalidf("net_points_bound must be positive")
		}
	default:
		return invalidf("unknown differential_mode %q", p.DifferentialMode)
	}
	if p.ScoringCeiling <= p.ScoringFloor {
		return invalidf("scoring_ceiling must exceed scoring_floor")
	}
	w := p.Weights
	if w.WinRate < 0 || w.Differential < 0 || w.Offense < 0 || w.Defense < 0 {
		return invalidf("weights must not be negative")
	}
	if math.Abs(w.WinRate+w.Differential+w.Offense+w.Defense-1) > sumTolerance {
		return invalidf("weights must sum to 1")
	}
	if p.QualityWeight < 0 || p.CompetitiveWeight < 0 ||
		math.Abs(p.QualityWeight+p.CompetitiveWeight-1) > sumTolerance {
		return invalidf("quality_weight and competitive_weight must be non-negative and sum to 1")
	}
	if p.Decay <= 0 {
		return invalidf("decay must be positive")
	}
	if p.NeutralPower < 0 || p.NeutralPower > 100 {
		return invalidf("neutral_power must be within [0, 100]")
	}
	if p.FloorTier == "" {
		return invalidf("floor_tier must not be empty")
	}
	for i, t := range p.Tiers {
		if t.Label == "" {
			return invalidf("tier %d has no label", i)
		}
		if i > 0 && t.Min >= p.Tiers[i-1].Min {
			return invalidf("tiers must be ordered by min descending")
		}
	}
	if p.SeasonStartMonth < 1 || p.SeasonStartMonth > 12 {
		return invalidf("season_start_month must be within 1..12")
	}
	return nil
}

// Validate checks the namespace is a legal metric name prefix and the
// buckets strictly increase.
func (m Metrics) Validate() error {
	if !metricName(m.Namespace) {
		return invalidf("metrics.namespace %q is not a valid metric name", m.Namespace)
	}
	for name := range m.Labels {
		if !metricName(name) || strings.HasPrefix(name, "__") {
			return invalidf("metrics.labels: %q is not a valid label name", name)
		}
	}
	for i := 1; i < len(m.BucketsMS); i++ {
		if m.BucketsMS[i] <= m.BucketsMS[i-1] {
			return invalidf("metrics.buckets_ms must strictly increase")
		}
	}
	return nil
}

func metricName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
