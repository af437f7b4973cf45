// Package service runs the rating pipeline: fetch, aggregate, rate, score,
// report and publish.
package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/slate/internal/adapters/provider"
	"github.com/okian/slate/internal/adapters/repository"
	"github.com/okian/slate/internal/domain/dedupe"
	"github.com/okian/slate/internal/domain/model"
	"github.com/okian/slate/internal/domain/rating"
	"github.com/okian/slate/internal/domain/scoring"
	"github.com/okian/slate/internal/domain/stats"
	"github.com/okian/slate/internal/report"
	"github.com/okian/slate/pkg/logger"
	"github.com/okian/slate/pkg/metrics"
)

// Outcome classifies a finished run. Neither non-ok outcome is an error.
type Outcome string

// Run outcomes.
const (
	OutcomeOK        Outcome = "ok"
	OutcomeNoRatings Outcome = "no_ratings"
	OutcomeNoGames   Outcome = "no_games"
	outcomeError             = "error"
)

// Result summarizes one pipeline run.
type Result struct {
	RunID              string
	Outcome            Outcome
	Season             string
	UsedPreviousSeason bool
	ResultsFrom        time.Time
	ResultsTo          time.Time

	GamesRated        int
	DuplicatesDropped int
	InvalidDropped    int
	TeamsRated        int
	Scheduled         int
	Unranked          int

	Report     *report.Report
	Files      []string
	StartedAt  time.Time
	FinishedAt time.Time
	Duration   time.Duration
}

// Service wires a provider, the domain pipeline and the snapshot store.
type Service struct {
	provider   provider.Provider
	store      repository.Store
	calculator *rating.Calculator
	scorer     *scoring.Scorer

	sport            string
	seasonStartMonth int
	daysAhead        int
	location         *time.Location
	overrides        map[string]string
	reportDir        string
	console          io.Writer
	consoleTop       int
	now              func() time.Time

	mu   sync.RWMutex
	runs int
	last *Result

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		calculator:       rating.NewCalculator(),
		scorer:           scoring.NewScorer(),
		sport:            "nba",
		seasonStartMonth: 10,
		daysAhead:        7,
		location:         time.UTC,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("app")
	}
	if s.store == nil {
		s.store = repository.NewSnapshotStore(repository.WithLogger(s.logger))
	}
	return s
}

// Store returns the snapshot store runs publish to.
func (s *Service) Store() repository.Store { return s.store }

// Run executes the pipeline once. Fetch and write failures are errors; an
// empty season or an empty schedule are reported through Result.Outcome.
func (s *Service) Run(ctx context.Context) (Result, error) {
	res := Result{RunID: uuid.NewString(), StartedAt: s.now().In(s.location)}
	log := s.logger.With(logger.String("run_id", res.RunID), logger.String("sport", s.sport))

	if s.provider == nil {
		return res, ErrNoProvider
	}

	res, err := s.run(ctx, log, res)
	res.FinishedAt = s.now().In(s.location)
	res.Duration = res.FinishedAt.Sub(res.StartedAt)

	outcome := string(res.Outcome)
	if err != nil {
		outcome = outcomeError
	}
	metrics.RecordPipelineRun(outcome, float64(res.Duration.Milliseconds()), res.FinishedAt.Unix())
	if err != nil {
		log.Error(ctx, "pipeline run failed", logger.Error(err))
		return res, err
	}

	s.mu.Lock()
	s.runs++
	s.last = &res
	s.mu.Unlock()

	log.Info(ctx, "pipeline run finished",
		logger.String("outcome", outcome),
		logger.String("season", res.Season),
		logger.Int("teams", res.TeamsRated),
		logger.Int("matchups", res.Scheduled),
		logger.Duration("duration", res.Duration),
	)
	return res, nil
}

func (s *Service) run(ctx context.Context, log logger.Logger, res Result) (Result, error) {
	season := SeasonStart(res.StartedAt, s.seasonStartMonth)
	res.Season = SeasonLabel(season)
	res.ResultsFrom, res.ResultsTo = season, res.StartedAt

	games, err := s.results(ctx, &res)
	if err != nil {
		return res, err
	}
	if len(games) == 0 {
		prev := season.AddDate(-1, 0, 0)
		log.Info(ctx, "no completed games this season, rating the previous one",
			logger.String("season", SeasonLabel(prev)))
		res.Season = SeasonLabel(prev)
		res.ResultsFrom, res.ResultsTo = prev, season
		res.UsedPreviousSeason = true
		if games, err = s.results(ctx, &res); err != nil {
			return res, err
		}
	}

	rows, rejected := stats.Aggregate(games)
	for _, r := range rejected {
		metrics.RecordInvalidRecord()
		log.Warn(ctx, "skipping invalid result",
			logger.String("game_id", r.Game.ID),
			logger.Error(r.Err),
		)
	}
	table := s.calculator.Compute(rows)
	res.GamesRated = len(games) - len(rejected)
	res.InvalidDropped = len(rejected)
	res.TeamsRated = table.Len()
	metrics.UpdateTeamsRated(table.Len())

	if table.Len() == 0 {
		res.Outcome = OutcomeNoRatings
		log.Warn(ctx, "no completed games in either season; nothing to rate")
		return res, nil
	}

	upcoming, err := s.upcoming(ctx, &res)
	if err != nil {
		return res, err
	}

	scored := s.scorer.ScoreAll(ctx, table, upcoming)
	res.Scheduled = len(scored)
	s.countTiers(scored, &res)

	res.Outcome = OutcomeOK
	if len(scored) == 0 {
		res.Outcome = OutcomeNoGames
		log.Warn(ctx, "no upcoming games in the window", logger.Int("days_ahead", s.daysAhead))
	}

	dir := s.directory(ctx, log)
	res.Report = report.Build(s.meta(res), table, scored, dir)

	if err := s.emit(ctx, &res); err != nil {
		return res, err
	}
	return res, nil
}

// results fetches, deduplicates and filters the completed games of
// [res.ResultsFrom, res.ResultsTo).
func (s *Service) results(ctx context.Context, res *Result) ([]model.Game, error) {
	games, err := s.provider.Results(ctx, res.ResultsFrom, res.ResultsTo)
	if err != nil {
		return nil, fmt.Errorf("fetch results: %w", err)
	}
	games, dropped := dedupe.Games(ctx, games)
	res.DuplicatesDropped += dropped
	metrics.RecordDuplicates(dropped)
	return stats.Completed(games), nil
}

// upcoming fetches the not yet played games from today through daysAhead.
func (s *Service) upcoming(ctx context.Context, res *Result) ([]model.Game, error) {
	y, m, d := res.StartedAt.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, s.location)
	to := from.AddDate(0, 0, s.daysAhead)

	games, err := s.provider.Schedule(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}
	games, dropped := dedupe.Games(ctx, games)
	res.DuplicatesDropped += dropped
	metrics.RecordDuplicates(dropped)

	out := make([]model.Game, 0, len(games))
	for _, g := range games {
		if !g.Completed() {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *Service) countTiers(scored []model.ScoredGame, res *Result) {
	counts := make(map[string]int)
	for _, label := range s.scorer.Tiers().Labels() {
		counts[string(label)] = 0
	}
	for _, sg := range scored {
		counts[string(sg.Score.Tier)]++
		for _, side := range []model.Side{sg.Away, sg.Home} {
			if !side.Ranked {
				res.Unranked++
				metrics.RecordUnrankedLookup()
			}
		}
	}
	metrics.UpdateMatchupsByTier(counts)
}

// directory fetches team labels. A failure only degrades labels to raw ids.
func (s *Service) directory(ctx context.Context, log logger.Logger) *provider.Directory {
	dir, err := s.provider.Teams(ctx)
	if err != nil {
		log.Warn(ctx, "team directory unavailable, showing raw ids", logger.Error(err))
		dir = nil
	}
	if len(s.overrides) > 0 {
		dir = dir.WithOverrides(s.overrides)
	}
	return dir
}

func (s *Service) meta(res Result) report.Meta {
	w := s.calculator.Weights()
	q, c := s.scorer.Blend()
	return report.Meta{
		RunID:             res.RunID,
		Sport:             s.sport,
		Season:            res.Season,
		GeneratedAt:       res.StartedAt,
		Location:          s.location,
		DaysAhead:         s.daysAhead,
		Weights:           w,
		DifferentialMode:  s.calculator.Mode(),
		QualityWeight:     q,
		CompetitiveWeight: c,
		Tiers:             s.scorer.Tiers(),
	}
}

// emit publishes the snapshot and writes the configured outputs.
func (s *Service) emit(ctx context.Context, res *Result) error {
	rep := res.Report
	snap := &repository.Snapshot{
		RunID:       res.RunID,
		Sport:       s.sport,
		GeneratedAt: res.StartedAt,
		Rankings:    rep.Rankings,
		Matchups:    rep.Matchups,
	}
	if err := s.store.Publish(ctx, snap); err != nil {
		return fmt.Errorf("publish snapshot: %w", err)
	}

	if s.reportDir != "" {
		files, err := report.WriteFiles(s.reportDir, rep)
		res.Files = files
		if err != nil {
			return fmt.Errorf("write reports: %w", err)
		}
	}
	if s.console != nil {
		if err := report.Console(s.console, rep, s.consoleTop); err != nil {
			return fmt.Errorf("console report: %w", err)
		}
	}
	return nil
}

// Loop runs the pipeline now and then every interval until ctx is done.
// Failed runs are logged and retried on the next tick.
func (s *Service) Loop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := s.Run(ctx); err != nil && ctx.Err() != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := map[string]any{
		"sport":      s.sport,
		"runs":       s.runs,
		"days_ahead": s.daysAhead,
		"teams":      s.store.Count(context.Background()),
	}
	if s.last != nil {
		out["last_run_id"] = s.last.RunID
		out["last_outcome"] = string(s.last.Outcome)
		out["last_run_at"] = s.last.FinishedAt
		out["last_duration_ms"] = s.last.Duration.Milliseconds()
		out["season"] = s.last.Season
		out["previous_season"] = s.last.UsedPreviousSeason
		out["games_rated"] = s.last.GamesRated
		out["matchups"] = s.last.Scheduled
		out["unranked_sides"] = s.last.Unranked
		out["duplicates_dropped"] = s.last.DuplicatesDropped
		out["invalid_dropped"] = s.last.InvalidDropped
	}
	return out
}
