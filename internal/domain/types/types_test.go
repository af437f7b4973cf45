package types_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/okian/slate/internal/domain/model"
	"github.com/okian/slate/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRankingEntry(t *testing.T) {
	Convey("Given a power rating", t, func() {
		r := model.PowerRating{
			TeamID:     "13",
			PowerScore: 71.9649,
			Rank:       1,
			Components: model.Components{WinRate: 0.83333, Differential: 0.926631, Defense: 1},
			Stat:       model.TeamStat{TeamID: "13", GamesPlayed: 12, Wins: 10, Losses: 2},
		}

		Convey("When building an entry with a directory lookup", func() {
			entry := types.NewRankingEntry(r, func(id string) string { return "LAL" })

			Convey("Then values are rounded and labelled", func() {
				So(entry.Rank, ShouldEqual, 1)
				So(entry.Team, ShouldEqual, "LAL")
				So(entry.Power, ShouldEqual, 72.0)
				So(entry.WinRate, ShouldEqual, 0.833)
				So(entry.Differential, ShouldEqual, 0.927)
				So(entry.Wins, ShouldEqual, 10)
			})

			Convey("And zero ties are omitted from JSON", func() {
				b, err := json.Marshal(entry)
				So(err, ShouldBeNil)
				So(strings.Contains(string(b), `"ties"`), ShouldBeFalse)
				So(strings.Contains(string(b), `"team_id":"13"`), ShouldBeTrue)
			})
		})

		Convey("When no lookup is given", func() {
			entry := types.NewRankingEntry(r, nil)

			Convey("Then the raw id is shown", func() {
				So(entry.Team, ShouldEqual, "13")
			})
		})
	})
}

func TestMatchupEntry(t *testing.T) {
	Convey("Given a scored game with an unranked side", t, func() {
		sg := model.ScoredGame{
			Game: model.Game{
				ID:         "401",
				Date:       time.Date(2024, 1, 15, 19, 30, 0, 0, time.UTC),
				AwayTeamID: "A",
				HomeTeamID: "B",
				Status:     "7:30 PM ET",
			},
			Away:  model.Side{TeamID: "A", Rank: 1, Power: 71.96, Ranked: true},
			Home:  model.Side{TeamID: "B", Rank: 3, Power: 50},
			Score: model.MatchupScore{Quality: 60.98, Competitive: 23.06, Matchup: 45.81, Tier: model.TierSkip},
		}

		Convey("When building the entry", func() {
			entry := types.NewMatchupEntry(4, sg, nil)

			Convey("Then both sides and the score are carried over", func() {
				So(entry.Rank, ShouldEqual, 4)
				So(entry.GameID, ShouldEqual, "401")
				So(entry.Away.Ranked, ShouldBeTrue)
				So(entry.Home.Ranked, ShouldBeFalse)
				So(entry.Home.Rank, ShouldEqual, 3)
				So(entry.Matchup, ShouldEqual, 45.8)
				So(entry.Tier, ShouldEqual, "Skip")
			})
		})
	})
}

func TestRound(t *testing.T) {
	Convey("Round", t, func() {
		So(types.Round(29.54, 1), ShouldEqual, 29.5)
		So(types.Round(2.5, 0), ShouldEqual, 3.0)
		So(types.Round(-2.5, 0), ShouldEqual, -3.0)
		So(types.Round(0.12345, 3), ShouldEqual, 0.123)
	})
}
