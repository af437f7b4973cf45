// Package stats reduces completed games into per-team season counters.
package stats

import (
	"sort"

	"github.com/okian/slate/internal/domain/model"
)

// Rejected is a record Aggregate left out, with the validation error.
type Rejected struct {
	Game model.Game
	Err  error
}

// Aggregate builds one TeamStat per team that appears in a completed game.
//
// Scheduled games are skipped. Records failing validation are left out and
// returned as rejected; the remaining games are still counted. Callers
// deduplicate by game id beforehand. The result is ordered by team id.
func Aggregate(games []model.Game) ([]model.TeamStat, []Rejected) {
	var rejected []Rejected
	byTeam := make(map[string]*model.TeamStat)
	entry := func(id string) *model.TeamStat {
		s, ok := byTeam[id]
		if !ok {
			s = &model.TeamStat{TeamID: id}
			byTeam[id] = s
		}
		return s
	}

	for _, g := range games {
		if err := g.Validate(); err != nil {
			rejected = append(rejected, Rejected{Game: g, Err: err})
			continue
		}
		if !g.Completed() {
			continue
		}
		away, home := entry(g.AwayTeamID), entry(g.HomeTeamID)
		record(away, *g.AwayScore, *g.HomeScore)
		record(home, *g.HomeScore, *g.AwayScore)
	}

	out := make([]model.TeamStat, 0, len(byTeam))
	for _, s := range byTeam {
		if s.GamesPlayed == 0 {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out, rejected
}

// record credits one game to s from its own perspective.
func record(s *model.TeamStat, own, opponent int) {
	s.GamesPlayed++
	s.PointsScored += own
	s.PointsAllowed += opponent
	switch {
	case own > opponent:
		s.Wins++
	case own < opponent:
		s.Losses++
	default:
		s.Ties++
	}
}

// Completed returns the games that carry final scores, preserving order.
func Completed(games []model.Game) []model.Game {
	out := make([]model.Game, 0, len(games))
	for _, g := range games {
		if g.Completed() {
			out = append(out, g)
		}
	}
	return out
}
