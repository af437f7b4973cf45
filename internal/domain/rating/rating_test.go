package rating_test

import (
	"math"
	"testing"

	"github.com/okian/slate/internal/domain/model"
	"github.com/okian/slate/internal/domain/rating"
	. "github.com/smartystreets/goconvey/convey"
)

func nbaCalculator() *rating.Calculator {
	return rating.NewCalculator(
		rating.WithPythagorean(13.91),
		rating.WithScoringBounds(100, 125),
	)
}

func TestCalculator_Compute(t *testing.T) {
	Convey("Given an NBA-profile calculator", t, func() {
		calc := nbaCalculator()

		Convey("When rating a strong and a weak team", func() {
			table := calc.Compute([]model.TeamStat{
				{TeamID: "B", GamesPlayed: 12, Wins: 2, Losses: 10, PointsScored: 900, PointsAllowed: 1150},
				{TeamID: "A", GamesPlayed: 12, Wins: 10, Losses: 2, PointsScored: 1200, PointsAllowed: 1000},
			})

			Convey("Then the strong team is ranked first with the expected power", func() {
				So(table.Len(), ShouldEqual, 2)
				a, ok := table.Lookup("A")
				So(ok, ShouldBeTrue)
				So(a.Rank, ShouldEqual, 1)
				So(a.PowerScore, ShouldAlmostEqual, 71.96, 0.05)
				So(a.Components.Offense, ShouldEqual, 0.0)
				So(a.Components.Defense, ShouldEqual, 1.0)

				b, ok := table.Lookup("B")
				So(ok, ShouldBeTrue)
				So(b.Rank, ShouldEqual, 2)
				So(b.PowerScore, ShouldAlmostEqual, 21.79, 0.05)
			})

			Convey("And the unranked rank is one past the last team", func() {
				So(table.UnrankedRank(), ShouldEqual, 3)
				_, ok := table.Lookup("ZZZ")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When a team has allowed no points", func() {
			table := calc.Compute([]model.TeamStat{
				{TeamID: "WALL", GamesPlayed: 1, Wins: 1, PointsScored: 110},
			})

			Convey("Then its differential is exactly 1", func() {
				r, ok := table.Lookup("WALL")
				So(ok, ShouldBeTrue)
				So(r.Components.Differential, ShouldEqual, 1.0)
				So(math.IsNaN(r.PowerScore), ShouldBeFalse)
			})
		})

		Convey("When the input is empty", func() {
			table := calc.Compute(nil)

			Convey("Then the table is empty", func() {
				So(table.Len(), ShouldEqual, 0)
				So(table.Ratings(), ShouldBeEmpty)
				So(table.UnrankedRank(), ShouldEqual, 1)
			})
		})

		Convey("When a record has zero games", func() {
			table := calc.Compute([]model.TeamStat{{TeamID: "IDLE"}})

			Convey("Then it is omitted", func() {
				So(table.Len(), ShouldEqual, 0)
			})
		})
	})
}

func TestCalculator_Invariants(t *testing.T) {
	Convey("Given a default calculator", t, func() {
		calc := rating.NewCalculator()

		Convey("When only the win count differs", func() {
			prev := -1.0
			monotonic := true
			for wins := 0; wins <= 10; wins++ {
				r := calc.Compute([]model.TeamStat{{
					TeamID: "T", GamesPlayed: 10, Wins: wins, Losses: 10 - wins,
					PointsScored: 220, PointsAllowed: 220,
				}}).Ratings()[0]
				if r.PowerScore < prev {
					monotonic = false
				}
				prev = r.PowerScore
			}

			Convey("Then power never decreases as win rate grows", func() {
				So(monotonic, ShouldBeTrue)
			})
		})

		Convey("When rating a league with ties in power", func() {
			same := model.TeamStat{GamesPlayed: 4, Wins: 2, Losses: 2, PointsScored: 80, PointsAllowed: 80}
			rows := make([]model.TeamStat, 0, 5)
			for _, id := range []string{"MIA", "BUF", "NYJ", "NE"} {
				s := same
				s.TeamID = id
				rows = append(rows, s)
			}
			rows = append(rows, model.TeamStat{TeamID: "KC", GamesPlayed: 4, Wins: 4, PointsScored: 120, PointsAllowed: 60})
			ratings := calc.Compute(rows).Ratings()

			Convey("Then ranks form a permutation of 1..N", func() {
				So(len(ratings), ShouldEqual, 5)
				for i, r := range ratings {
					So(r.Rank, ShouldEqual, i+1)
				}
			})

			Convey("And equal powers are ordered by team id", func() {
				ids := make([]string, 0, len(ratings))
				for _, r := range ratings {
					ids = append(ids, r.TeamID)
				}
				So(ids, ShouldResemble, []string{"KC", "BUF", "MIA", "NE", "NYJ"})
			})
		})

		Convey("When stats are far outside the scoring bounds", func() {
			r := calc.Compute([]model.TeamStat{{
				TeamID: "X", GamesPlayed: 2, Wins: 2, PointsScored: 200, PointsAllowed: 0,
			}}).Ratings()[0]

			Convey("Then every component is clamped and power is 100", func() {
				So(r.Components.Offense, ShouldEqual, 1.0)
				So(r.Components.Defense, ShouldEqual, 1.0)
				So(r.PowerScore, ShouldAlmostEqual, 100, 1e-9)
			})
		})
	})
}

func TestCalculator_NetPoints(t *testing.T) {
	Convey("Given a net-points calculator with bound 15", t, func() {
		calc := rating.NewCalculator(rating.WithNetPoints(15), rating.WithScoringBounds(95, 125))

		Convey("When net points per game is +15 or beyond", func() {
			c := calc.Components(model.TeamStat{TeamID: "A", GamesPlayed: 2, Wins: 2, PointsScored: 240, PointsAllowed: 200})

			Convey("Then the differential saturates at 1", func() {
				So(c.Differential, ShouldEqual, 1.0)
			})
		})

		Convey("When net points per game is zero", func() {
			c := calc.Components(model.TeamStat{TeamID: "A", GamesPlayed: 2, Wins: 1, Losses: 1, PointsScored: 220, PointsAllowed: 220})

			Convey("Then the differential is one half", func() {
				So(c.Differential, ShouldAlmostEqual, 0.5, 1e-9)
			})
		})

		So(calc.Mode(), ShouldEqual, rating.ModeNetPoints)
	})
}

func TestOptions(t *testing.T) {
	Convey("Given invalid option values", t, func() {
		calc := rating.NewCalculator(
			rating.WithWeights(rating.Weights{WinRate: 0.5, Differential: 0.5, Offense: 0.5}),
			rating.WithPythagorean(-1),
			rating.WithNetPoints(0),
			rating.WithScoringBounds(30, 10),
		)

		Convey("Then the defaults are kept", func() {
			So(calc.Weights(), ShouldResemble, rating.DefaultWeights())
			So(calc.Mode(), ShouldEqual, rating.ModePythagorean)
			So(calc.Exponent(), ShouldEqual, 2.37)
		})
	})

	Convey("Given custom weights that sum to one", t, func() {
		w := rating.Weights{WinRate: 1}
		calc := rating.NewCalculator(rating.WithWeights(w))

		Convey("Then power equals win rate times 100", func() {
			r := calc.Compute([]model.TeamStat{{TeamID: "A", GamesPlayed: 4, Wins: 3, Losses: 1, PointsScored: 90, PointsAllowed: 80}}).Ratings()[0]
			So(r.PowerScore, ShouldAlmostEqual, 75, 1e-9)
		})
	})
}

func TestPythagorean(t *testing.T) {
	Convey("Pythagorean expectation", t, func() {
		So(rating.Pythagorean(100, 0, 2.37), ShouldEqual, 1.0)
		So(rating.Pythagorean(0, 0, 2.37), ShouldEqual, 1.0)
		So(rating.Pythagorean(0, 50, 2.37), ShouldEqual, 0.0)
		So(rating.Pythagorean(300, 300, 13.91), ShouldAlmostEqual, 0.5, 1e-12)
		So(rating.Pythagorean(9000, 8000, 13.91), ShouldBeGreaterThan, 0.5)
	})
}
