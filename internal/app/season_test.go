package service_test

import (
	"testing"
	"time"

	service "github.com/okian/slate/internal/app"
	"github.com/okian/slate/internal/config"
	"github.com/okian/slate/internal/domain/rating"
	"github.com/okian/slate/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeason(t *testing.T) {
	Convey("Given a season opening in October", t, func() {
		Convey("Dates from October on belong to the new season", func() {
			start := service.SeasonStart(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), 10)
			So(start.Equal(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)), ShouldBeTrue)
			So(service.SeasonLabel(start), ShouldEqual, "2024-25")
		})

		Convey("Dates before October belong to the previous one", func() {
			start := service.SeasonStart(time.Date(2025, 9, 30, 23, 0, 0, 0, time.UTC), 10)
			So(start.Year(), ShouldEqual, 2024)
		})

		Convey("The 1999 season label wraps the century", func() {
			So(service.SeasonLabel(time.Date(1999, 10, 1, 0, 0, 0, 0, time.UTC)), ShouldEqual, "1999-00")
		})
	})

	Convey("Given a calendar-year season", t, func() {
		start := service.SeasonStart(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 1)
		So(service.SeasonLabel(start), ShouldEqual, "2025")
	})
}

func TestProfileOptions(t *testing.T) {
	Convey("Given the built-in profiles", t, func() {
		profiles := config.DefaultProfiles()

		Convey("The nba profile rates with the basketball exponent", func() {
			c := rating.NewCalculator(service.RatingOptions(profiles["nba"])...)
			So(c.Mode(), ShouldEqual, rating.ModePythagorean)
			So(c.Exponent(), ShouldEqual, 13.91)
			So(c.Weights(), ShouldResemble, rating.DefaultWeights())
		})

		Convey("A net points profile switches the differential mode", func() {
			p := profiles["nba"]
			p.DifferentialMode = config.ModeNetPoints
			c := rating.NewCalculator(service.RatingOptions(p)...)
			So(c.Mode(), ShouldEqual, rating.ModeNetPoints)
		})

		Convey("The scorer carries the profile blend and tiers", func() {
			p := profiles["nfl"]
			p.QualityWeight, p.CompetitiveWeight = 0.7, 0.3
			s := scoring.NewScorer(service.ScoringOptions(p)...)
			q, c := s.Blend()
			So(q, ShouldEqual, 0.7)
			So(c, ShouldEqual, 0.3)
			So(s.Tiers(), ShouldResemble, scoring.DefaultTiers())
		})
	})
}
