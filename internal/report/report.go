// Package report assembles a pipeline run into ranked views and renders them
// as text documents and a console summary.
package report

import (
	"sort"
	"time"

	"github.com/okian/slate/internal/domain/model"
	"github.com/okian/slate/internal/domain/rating"
	"github.com/okian/slate/internal/domain/scoring"
	"github.com/okian/slate/internal/domain/types"
)

// Labeler maps team ids to display labels.
type Labeler interface {
	Label(teamID string) string
}

// Meta describes the run a report was built from.
type Meta struct {
	RunID       string
	Sport       string
	Season      string
	GeneratedAt time.Time
	Location    *time.Location
	DaysAhead   int

	Weights           rating.Weights
	DifferentialMode  string
	QualityWeight     float64
	CompetitiveWeight float64
	Tiers             scoring.Tiers
}

// Day groups the matchups played on one calendar date.
type Day struct {
	Date     time.Time // midnight in Meta.Location
	Matchups []types.MatchupEntry
}

// Report is the assembled output of one pipeline run.
type Report struct {
	Meta     Meta
	Rankings []types.RankingEntry
	Matchups []types.MatchupEntry
	Days     []Day
}

// Build orders the power table by rank and the scored games by matchup score
// (ties by date, then game id), then groups the games by local date.
func Build(meta Meta, table *rating.Table, scored []model.ScoredGame, dir Labeler) *Report {
	if meta.Location == nil {
		meta.Location = time.UTC
	}
	var name types.NameFunc
	if dir != nil {
		name = dir.Label
	}

	r := &Report{Meta: meta}

	ratings := table.Ratings()
	r.Rankings = make([]types.RankingEntry, 0, len(ratings))
	for _, pr := range ratings {
		r.Rankings = append(r.Rankings, types.NewRankingEntry(pr, name))
	}

	ordered := append([]model.ScoredGame(nil), scored...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return matchupLess(ordered[i], ordered[j])
	})
	r.Matchups = make([]types.MatchupEntry, 0, len(ordered))
	for i, sg := range ordered {
		r.Matchups = append(r.Matchups, types.NewMatchupEntry(i+1, sg, name))
	}

	r.Days = groupByDay(r.Matchups, meta.Location)
	return r
}

func matchupLess(a, b model.ScoredGame) bool {
	if a.Score.Matchup != b.Score.Matchup {
		return a.Score.Matchup > b.Score.Matchup
	}
	if !a.Game.Date.Equal(b.Game.Date) {
		return a.Game.Date.Before(b.Game.Date)
	}
	return a.Game.ID < b.Game.ID
}

// groupByDay keeps the input order inside each day, so days inherit the
// matchup ordering.
func groupByDay(matchups []types.MatchupEntry, loc *time.Location) []Day {
	index := make(map[string]int)
	var days []Day
	for _, m := range matchups {
		local := m.Date.In(loc)
		key := local.Format(time.DateOnly)
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			y, mo, d := local.Date()
			days = append(days, Day{Date: time.Date(y, mo, d, 0, 0, 0, 0, loc)})
		}
		days[i].Matchups = append(days[i].Matchups, m)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}
