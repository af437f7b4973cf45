package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating a manager with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithHistogramBuckets([]float64{1, 10}),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the settings are applied", func() {
				So(manager.namespace, ShouldEqual, "test")
				So(manager.histogramBuckets, ShouldResemble, []float64{1, 10})
			})

			Convey("And metric names carry the namespace and constant labels", func() {
				manager.RecordUnrankedLookup()
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				var found bool
				for _, f := range families {
					if f.GetName() != "test_pipeline_unranked_lookups_total" {
						continue
					}
					found = true
					labels := f.GetMetric()[0].GetLabel()
					So(labels, ShouldHaveLength, 1)
					So(labels[0].GetName(), ShouldEqual, "env")
					So(labels[0].GetValue(), ShouldEqual, "test")
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When options carry empty values", func() {
			manager := NewManager(
				WithNamespace(""),
				WithHistogramBuckets(nil),
				WithCustomLabels(nil),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then the defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "slate")
				So(manager.histogramBuckets, ShouldNotBeEmpty)
				So(manager.customLabels, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerRecording(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		manager := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("When recording data quality events", func() {
			manager.RecordDuplicates(3)
			manager.RecordDuplicates(0)
			manager.RecordInvalidRecord()
			manager.RecordUnrankedLookup()
			manager.RecordUnrankedLookup()

			Convey("Then the counters reflect them", func() {
				So(testutil.ToFloat64(manager.duplicatesDropped), ShouldEqual, 3.0)
				So(testutil.ToFloat64(manager.invalidRecords), ShouldEqual, 1.0)
				So(testutil.ToFloat64(manager.unrankedLookups), ShouldEqual, 2.0)
			})
		})

		Convey("When recording provider traffic", func() {
			manager.RecordFetch("espn", "scoreboard", 120)
			manager.RecordFetch("espn", "scoreboard", 80)
			manager.RecordFetchError("espn", "status")
			manager.RecordGamesFetched("espn", "results", 14)

			Convey("Then the labelled series are populated", func() {
				So(testutil.ToFloat64(manager.fetchRequests.WithLabelValues("espn", "scoreboard")), ShouldEqual, 2.0)
				So(testutil.ToFloat64(manager.fetchErrors.WithLabelValues("espn", "status")), ShouldEqual, 1.0)
				So(testutil.ToFloat64(manager.gamesFetched.WithLabelValues("espn", "results")), ShouldEqual, 14.0)
			})
		})

		Convey("When updating per-tier gauges twice", func() {
			manager.UpdateMatchupsByTier(map[string]int{"Must Watch": 2, "Skip": 5})
			manager.UpdateMatchupsByTier(map[string]int{"Decent": 1})

			Convey("Then only the latest tiers remain", func() {
				So(testutil.CollectAndCount(manager.matchupsByTier), ShouldEqual, 1)
				So(testutil.ToFloat64(manager.matchupsByTier.WithLabelValues("Decent")), ShouldEqual, 1.0)
			})
		})

		Convey("When recording pipeline runs", func() {
			manager.UpdateTeamsRated(30)
			manager.RecordPipelineRun("ok", 42, 1700000000)

			Convey("Then run gauges are set", func() {
				So(testutil.ToFloat64(manager.teamsRated), ShouldEqual, 30.0)
				So(testutil.ToFloat64(manager.pipelineRuns.WithLabelValues("ok")), ShouldEqual, 1.0)
				So(testutil.ToFloat64(manager.lastRunUnix), ShouldEqual, 1700000000.0)
			})
		})
	})

	Convey("Given a disabled manager", t, func() {
		manager := NewManager(
			WithMetricsEnabled(false),
			WithPrometheusRegistry(prometheus.NewRegistry()),
		)

		Convey("When recording", func() {
			manager.RecordUnrankedLookup()
			manager.RecordDuplicates(4)

			Convey("Then nothing is counted", func() {
				So(testutil.ToFloat64(manager.unrankedLookups), ShouldEqual, 0.0)
				So(testutil.ToFloat64(manager.duplicatesDropped), ShouldEqual, 0.0)
			})
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then the package-level recorders do not panic", func() {
			So(func() {
				RecordFetch("file", "fixture", 1)
				RecordFetchError("espn", "decode")
				RecordGamesFetched("file", "schedule", 3)
				RecordDuplicates(1)
				RecordInvalidRecord()
				RecordUnrankedLookup()
				UpdateTeamsRated(2)
				UpdateMatchupsByTier(map[string]int{"Skip": 1})
				RecordPipelineRun("no_games", 5, 0)
				RecordHTTPRequest("/rankings", "GET", "200", 1.5)
			}, ShouldNotPanic)
		})

		Convey("And the custom registry exposes them", func() {
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}

func TestInit(t *testing.T) {
	Convey("Given the global manager rebuilt with a namespace", t, func() {
		before := GetRegistry()
		Init(WithNamespace("league"), WithCustomLabels(map[string]string{"sport": "nfl"}))
		defer Init()

		Convey("Then a fresh registry carries the renamed collectors", func() {
			So(GetRegistry(), ShouldNotPointTo, before)
			RecordDuplicates(2)
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			names := make([]string, 0, len(families))
			for _, f := range families {
				names = append(names, f.GetName())
			}
			So(names, ShouldContain, "league_pipeline_duplicate_games_total")
			So(names, ShouldNotContain, "slate_pipeline_duplicate_games_total")
			So(testutil.ToFloat64(globalManager.duplicatesDropped), ShouldEqual, 2.0)
		})
	})
}
