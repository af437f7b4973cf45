// Package types contains the read-model entries served by the HTTP API.
package types

import (
	"math"
	"time"

	"github.com/okian/slate/internal/domain/model"
)

// RankingEntry represents one row of the power table.
type RankingEntry struct {
	Rank         int     `json:"rank"`
	TeamID       string  `json:"team_id"`
	Team         string  `json:"team"`
	Power        float64 `json:"power"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	Ties         int     `json:"ties,omitempty"`
	GamesPlayed  int     `json:"games_played"`
	PPG          float64 `json:"ppg"`
	PAPG         float64 `json:"papg"`
	WinRate      float64 `json:"win_rate"`
	Differential float64 `json:"differential"`
	Offense      float64 `json:"offense"`
	Defense      float64 `json:"defense"`
}

// SideEntry is one team of a matchup.
type SideEntry struct {
	TeamID string  `json:"team_id"`
	Team   string  `json:"team"`
	Rank   int     `json:"rank"`
	Power  float64 `json:"power"`
	Ranked bool    `json:"ranked"`
}

// MatchupEntry represents one scored upcoming game.
type MatchupEntry struct {
	Rank        int       `json:"rank"`
	GameID      string    `json:"game_id"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status,omitempty"`
	Away        SideEntry `json:"away"`
	Home        SideEntry `json:"home"`
	Quality     float64   `json:"quality"`
	Competitive float64   `json:"competitive"`
	Matchup     float64   `json:"matchup"`
	Tier        string    `json:"tier"`
}

// NameFunc resolves a team id to a display label.
type NameFunc func(teamID string) string

func (f NameFunc) name(id string) string {
	if f == nil {
		return id
	}
	return f(id)
}

// NewRankingEntry builds a ranking row from a power rating.
func NewRankingEntry(r model.PowerRating, name NameFunc) RankingEntry {
	return RankingEntry{
		Rank:         r.Rank,
		TeamID:       r.TeamID,
		Team:         name.name(r.TeamID),
		Power:        Round(r.PowerScore, 1),
		Wins:         r.Stat.Wins,
		Losses:       r.Stat.Losses,
		Ties:         r.Stat.Ties,
		GamesPlayed:  r.Stat.GamesPlayed,
		PPG:          Round(r.Stat.PointsPerGame(), 1),
		PAPG:         Round(r.Stat.PointsAllowedPerGame(), 1),
		WinRate:      Round(r.Components.WinRate, 3),
		Differential: Round(r.Components.Differential, 3),
		Offense:      Round(r.Components.Offense, 3),
		Defense:      Round(r.Components.Defense, 3),
	}
}

// NewMatchupEntry builds a matchup row; rank is its position in the
// matchup ordering.
func NewMatchupEntry(rank int, sg model.ScoredGame, name NameFunc) MatchupEntry {
	return MatchupEntry{
		Rank:        rank,
		GameID:      sg.Game.ID,
		Date:        sg.Game.Date,
		Status:      sg.Game.Status,
		Away:        newSide(sg.Away, name),
		Home:        newSide(sg.Home, name),
		Quality:     Round(sg.Score.Quality, 1),
		Competitive: Round(sg.Score.Competitive, 1),
		Matchup:     Round(sg.Score.Matchup, 1),
		Tier:        string(sg.Score.Tier),
	}
}

func newSide(s model.Side, name NameFunc) SideEntry {
	return SideEntry{
		TeamID: s.TeamID,
		Team:   name.name(s.TeamID),
		Rank:   s.Rank,
		Power:  Round(s.Power, 1),
		Ranked: s.Ranked,
	}
}

// Round rounds x half away from zero to the given number of decimals.
func Round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}
