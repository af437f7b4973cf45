// Package config defines service configuration structures and loading hooks.
//
// Conventions:
//   - New builds a Config with defaults; Load layers a YAML file and env vars
//     on top of it.
//   - Per-sport tunables live in Profiles keyed by sport name.
//   - Validation failures wrap ErrInvalidConfig.
package config

import (
	"context"
	"time"
	_ "time/tzdata" // report grouping must not depend on the host zoneinfo
)

// Data sources.
const (
	SourceESPN = "espn"
	SourceFile = "file"
)

// Differential modes understood by the rating calculator.
const (
	ModePythagorean = "pythagorean"
	ModeNetPoints   = "net_points"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address for serve mode.
	Addr string `koanf:"addr"`

	// Sport selects the profile, e.g. "nba" or "nfl".
	Sport string `koanf:"sport"`
	// Source is "espn" or "file".
	Source string `koanf:"source"`
	// FixturePath is the YAML league file used when Source is "file".
	FixturePath string `koanf:"fixture_path"`

	// DaysAhead is how many days of upcoming schedule to score, today included.
	DaysAhead int `koanf:"days_ahead"`

	ESPNBaseURL       string `koanf:"espn_base_url"`
	FetchDelayMS      int    `koanf:"fetch_delay_ms"`
	HTTPTimeoutMS     int    `koanf:"http_timeout_ms"`
	ResultsWindowDays int    `koanf:"results_window_days"`
	ScoreboardLimit   int    `koanf:"scoreboard_limit"`

	// ReportDir receives the three text reports; empty disables writing.
	ReportDir string `koanf:"report_dir"`
	// Timezone groups games by calendar day in reports.
	Timezone string `koanf:"timezone"`
	// ConsoleTop limits the console summary.
	ConsoleTop int `koanf:"console_top"`

	// RefreshIntervalSec is the serve-mode pipeline period.
	RefreshIntervalSec int `koanf:"refresh_interval_sec"`
	// MaxRankingsLimit caps GET /rankings?limit and /matchups?limit.
	MaxRankingsLimit int `koanf:"max_rankings_limit"`

	// TeamOverrides maps team ids to display labels ahead of the provider's.
	TeamOverrides map[string]string `koanf:"team_overrides"`

	// Metrics configures the Prometheus collectors.
	Metrics Metrics `koanf:"metrics"`

	// Profiles are decoded entry by entry on top of the built-in defaults.
	Profiles map[string]Profile `koanf:"-"`
}

// Profile holds every rating and scoring tunable for one sport.
type Profile struct {
	DifferentialMode string  `koanf:"differential_mode"`
	Exponent         float64 `koanf:"exponent"`
	NetPointsBound   float64 `koanf:"net_points_bound"`
	ScoringFloor     float64 `koanf:"scoring_floor"`
	ScoringCeiling   float64 `koanf:"scoring_ceiling"`
	Weights          Weights `koanf:"weights"`

	QualityWeight     float64    `koanf:"quality_weight"`
	CompetitiveWeight float64    `koanf:"competitive_weight"`
	Decay             float64    `koanf:"decay"`
	NeutralPower      float64    `koanf:"neutral_power"`
	Tiers             []TierBand `koanf:"tiers"`
	FloorTier         string     `koanf:"floor_tier"`

	// SeasonStartMonth is the calendar month the season opens (1-12).
	SeasonStartMonth int    `koanf:"season_start_month"`
	ESPNPath         string `koanf:"espn_path"`
}

// Metrics selects how collectors are named and whether they record.
type Metrics struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
	// Labels are constant labels added to every series.
	Labels map[string]string `koanf:"labels"`
	// BucketsMS overrides the latency histogram buckets; empty keeps the built-in ones.
	BucketsMS []float64 `koanf:"buckets_ms"`
}

// Weights are the power rating component weights.
type Weights struct {
	WinRate      float64 `koanf:"win_rate"`
	Differential float64 `koanf:"differential"`
	Offense      float64 `koanf:"offense"`
	Defense      float64 `koanf:"defense"`
}

// TierBand labels matchup scores at or above Min.
type TierBand struct {
	Label string  `koanf:"label"`
	Min   float64 `koanf:"min"`
}

func defaultWeights() Weights {
	return Weights{WinRate: 0.35, Differential: 0.30, Offense: 0.20, Defense: 0.15}
}

func defaultTiers() []TierBand {
	return []TierBand{
		{Label: "Must Watch", Min: 70},
		{Label: "Worth Watching", Min: 60},
		{Label: "Decent", Min: 50},
	}
}

// DefaultProfiles returns the built-in nba and nfl profiles.
func DefaultProfiles() map[string]Profile {
	return map[string]Profile{
		"nba": {
			DifferentialMode:  ModePythagorean,
			Exponent:          13.91,
			NetPointsBound:    15,
			ScoringFloor:      100,
			ScoringCeiling:    125,
			Weights:           defaultWeights(),
			QualityWeight:     0.6,
			CompetitiveWeight: 0.4,
			Decay:             15,
			NeutralPower:      50,
			Tiers:             defaultTiers(),
			FloorTier:         "Skip",
			SeasonStartMonth:  10,
			ESPNPath:          "basketball/nba",
		},
		"nfl": {
			DifferentialMode:  ModePythagorean,
			Exponent:          2.37,
			NetPointsBound:    10,
			ScoringFloor:      14,
			ScoringCeiling:    32,
			Weights:           defaultWeights(),
			QualityWeight:     0.6,
			CompetitiveWeight: 0.4,
			Decay:             15,
			NeutralPower:      50,
			Tiers:             defaultTiers(),
			FloorTier:         "Skip",
			SeasonStartMonth:  9,
			ESPNPath:          "football/nfl",
		},
	}
}

// New creates a Config with defaults. Context is accepted first to follow
// the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		Sport:              "nba",
		Source:             SourceESPN,
		DaysAhead:          7,
		ESPNBaseURL:        "https://site.api.espn.com/apis/site/v2/sports",
		FetchDelayMS:       600,
		HTTPTimeoutMS:      10_000,
		ResultsWindowDays:  14,
		ScoreboardLimit:    1000,
		ReportDir:          "reports",
		Timezone:           "America/New_York",
		ConsoleTop:         10,
		RefreshIntervalSec: 900,
		MaxRankingsLimit:   100,
		TeamOverrides:      map[string]string{},
		Metrics: Metrics{
			Enabled:   true,
			Namespace: "slate",
			Labels:    map[string]string{},
		},
		Profiles: DefaultProfiles(),
	}
}

// Profile returns the profile for the configured sport.
func (c *Config) Profile() (Profile, error) {
	p, ok := c.Profiles[c.Sport]
	if !ok {
		return Profile{}, invalidf("unknown sport %q", c.Sport)
	}
	return p, nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, invalidf("timezone %q: %v", c.Timezone, err)
	}
	return loc, nil
}

// FetchDelay is the pacing delay between consecutive upstream requests.
func (c *Config) FetchDelay() time.Duration {
	return time.Duration(c.FetchDelayMS) * time.Millisecond
}

// HTTPTimeout bounds a single upstream request.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutMS) * time.Millisecond
}

// RefreshInterval is the serve-mode pipeline period.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalSec) * time.Second
}
