package service

import (
	"io"
	"time"

	"github.com/okian/slate/internal/adapters/provider"
	"github.com/okian/slate/internal/adapters/repository"
	"github.com/okian/slate/internal/config"
	"github.com/okian/slate/internal/domain/rating"
	"github.com/okian/slate/internal/domain/scoring"
	"github.com/okian/slate/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithProvider sets the league data source.
func WithProvider(p provider.Provider) Option {
	return func(s *Service) {
		if p != nil {
			s.provider = p
		}
	}
}

// WithStore sets where snapshots are published.
func WithStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithCalculator sets the power rating calculator.
func WithCalculator(c *rating.Calculator) Option {
	return func(s *Service) {
		if c != nil {
			s.calculator = c
		}
	}
}

// WithScorer sets the matchup scorer.
func WithScorer(sc *scoring.Scorer) Option {
	return func(s *Service) {
		if sc != nil {
			s.scorer = sc
		}
	}
}

// WithProfile configures the calculator, scorer and season start from a
// sport profile. The profile is expected to be validated.
func WithProfile(sport string, p config.Profile) Option {
	return func(s *Service) {
		s.sport = sport
		s.calculator = rating.NewCalculator(RatingOptions(p)...)
		s.scorer = scoring.NewScorer(ScoringOptions(p)...)
		if p.SeasonStartMonth >= 1 && p.SeasonStartMonth <= 12 {
			s.seasonStartMonth = p.SeasonStartMonth
		}
	}
}

// WithDaysAhead sets how many days of schedule are scored, today included.
func WithDaysAhead(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.daysAhead = days
		}
	}
}

// WithLocation sets the time zone used for "today" and report dates.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithTeamOverrides replaces provider labels for the given team ids.
func WithTeamOverrides(overrides map[string]string) Option {
	return func(s *Service) {
		s.overrides = overrides
	}
}

// WithReportDir enables writing the text reports to dir.
func WithReportDir(dir string) Option {
	return func(s *Service) {
		s.reportDir = dir
	}
}

// WithConsole prints a summary of each run to w, limited to top rows.
func WithConsole(w io.Writer, top int) Option {
	return func(s *Service) {
		s.console = w
		s.consoleTop = top
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
