package fixtures_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/slate/internal/adapters/provider"
	"github.com/okian/slate/internal/fixtures"
	. "github.com/smartystreets/goconvey/convey"
)

var now = time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC)

func smallLeague(teams int) fixtures.Config {
	cfg := fixtures.DefaultConfig(now)
	cfg.Teams = teams
	cfg.SeasonStart = now.AddDate(0, 0, -20)
	return cfg
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	Convey("Given a small basketball league", t, func() {
		cfg := smallLeague(6)
		fx, err := fixtures.Generate(ctx, cfg)
		So(err, ShouldBeNil)

		Convey("Then every team is listed", func() {
			So(len(fx.Teams), ShouldEqual, 6)
			So(fx.Teams[0].Abbreviation, ShouldEqual, "T01")
			So(fx.Sport, ShouldEqual, "nba")
		})

		Convey("Then past games are final and future games are not", func() {
			var played, scheduled int
			for _, g := range fx.Games {
				if g.Date.Before(now) {
					So(g.AwayScore, ShouldNotBeNil)
					So(g.HomeScore, ShouldNotBeNil)
					So(*g.AwayScore, ShouldNotEqual, *g.HomeScore)
					So(g.Status, ShouldEqual, "Final")
					played++
					continue
				}
				So(g.AwayScore, ShouldBeNil)
				So(g.HomeScore, ShouldBeNil)
				scheduled++
			}
			So(played, ShouldBeGreaterThan, 0)
			So(scheduled, ShouldBeGreaterThan, 0)
		})

		Convey("Then no team plays twice in one day and ids are unique", func() {
			ids := map[string]bool{}
			busy := map[string]bool{}
			for _, g := range fx.Games {
				So(ids[g.ID], ShouldBeFalse)
				ids[g.ID] = true
				for _, team := range []string{g.Away, g.Home} {
					key := team + g.Date.Format("2006-01-02")
					So(busy[key], ShouldBeFalse)
					busy[key] = true
				}
			}
		})

		Convey("Then the same seed gives the same league", func() {
			again, err := fixtures.Generate(ctx, cfg)
			So(err, ShouldBeNil)
			So(again.Games, ShouldResemble, fx.Games)

			cfg.Seed = 2
			other, err := fixtures.Generate(ctx, cfg)
			So(err, ShouldBeNil)
			So(other.Games, ShouldNotResemble, fx.Games)
		})

		Convey("Then the fixture survives a YAML round trip", func() {
			var buf bytes.Buffer
			So(fx.Encode(&buf), ShouldBeNil)
			decoded, err := provider.DecodeFixture(&buf)
			So(err, ShouldBeNil)
			So(len(decoded.Games), ShouldEqual, len(fx.Games))
			So(decoded.Games[0].ID, ShouldEqual, fx.Games[0].ID)
		})
	})

	Convey("Given a round robin over four teams", t, func() {
		cfg := smallLeague(4)
		cfg.SeasonStart = now.AddDate(0, 0, -5)
		cfg.UpcomingDays = 0
		fx, err := fixtures.Generate(ctx, cfg)
		So(err, ShouldBeNil)

		Convey("Then three rounds pair every team with every other once", func() {
			So(len(fx.Games), ShouldEqual, 6)
			pairs := map[string]bool{}
			for _, g := range fx.Games {
				a, b := g.Away, g.Home
				if a > b {
					a, b = b, a
				}
				pairs[a+"-"+b] = true
			}
			So(len(pairs), ShouldEqual, 6)
		})
	})

	Convey("Given an odd team count", t, func() {
		cfg := smallLeague(5)
		cfg.SeasonStart = now.AddDate(0, 0, -1)
		cfg.UpcomingDays = 0
		fx, err := fixtures.Generate(ctx, cfg)
		So(err, ShouldBeNil)

		Convey("Then one team rests each round", func() {
			So(len(fx.Games), ShouldEqual, 2)
		})
	})

	Convey("Given a football league with duplicates", t, func() {
		cfg := smallLeague(4)
		cfg.Sport = "nfl"
		cfg.RoundEvery = 7
		cfg.SeasonStart = now.AddDate(0, 0, -28)
		cfg.Duplicates = 3
		fx, err := fixtures.Generate(ctx, cfg)
		So(err, ShouldBeNil)

		Convey("Then played games are repeated at the end", func() {
			ids := map[string]int{}
			for _, g := range fx.Games {
				ids[g.ID]++
			}
			So(len(fx.Games)-len(ids), ShouldEqual, 3)
		})

		Convey("Then games carry week numbers", func() {
			So(fx.Games[0].Week, ShouldEqual, 1)
		})
	})

	Convey("Given invalid settings", t, func() {
		for _, mutate := range []func(*fixtures.Config){
			func(c *fixtures.Config) { c.Teams = 1 },
			func(c *fixtures.Config) { c.RoundEvery = 0 },
			func(c *fixtures.Config) { c.Duplicates = -1 },
			func(c *fixtures.Config) { c.SeasonStart = time.Time{} },
			func(c *fixtures.Config) { c.SeasonStart = now.AddDate(0, 0, 1) },
		} {
			cfg := smallLeague(4)
			mutate(&cfg)
			_, err := fixtures.Generate(ctx, cfg)
			So(errors.Is(err, fixtures.ErrInvalidConfig), ShouldBeTrue)
		}
	})
}
