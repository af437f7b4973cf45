package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/okian/slate/internal/adapters/provider"
	service "github.com/okian/slate/internal/app"
	"github.com/okian/slate/internal/config"
	"github.com/okian/slate/pkg/logger"
	"github.com/okian/slate/pkg/metrics"
)

// flags overriding loaded configuration. Only flags the user set apply.
type flags struct {
	sport    string
	source   string
	fixture  string
	out      string
	days     int
	top      int
	logLevel string
	addr     string
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "slate",
		Short: "Power ratings and watchability rankings for upcoming games",
		Long: `slate derives a 0-100 power rating for every team from season results and
scores each upcoming game by combining team quality with competitive balance.

Configuration is layered: built-in defaults, then the YAML file named by
SLATE_CONFIG, then SLATE_* environment variables, then flags.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.sport, "sport", "", "Sport profile (nba|nfl or a configured profile)")
	pf.StringVar(&f.source, "source", "", "Data source (espn|file)")
	pf.StringVar(&f.fixture, "fixture", "", "Fixture file for --source file")
	pf.StringVar(&f.out, "out", "", "Directory for the text reports (empty string disables)")
	pf.IntVar(&f.days, "days", 0, "Days of upcoming schedule to score, today included")
	pf.IntVar(&f.top, "top", 0, "Rows in the console summary")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level (debug|info|warn|error)")

	root.AddCommand(newRunCmd(&f), newServeCmd(&f))
	return root
}

// loadConfig loads configuration, applies set flags, validates the result
// and initializes the global logger from it.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, err
	}

	set := cmd.Flags().Changed
	if set("sport") {
		cfg.Sport = f.sport
	}
	if set("source") {
		cfg.Source = f.source
	}
	if set("fixture") {
		cfg.FixturePath = f.fixture
		if !set("source") {
			cfg.Source = config.SourceFile
		}
	}
	if set("out") {
		cfg.ReportDir = f.out
	}
	if set("days") {
		cfg.DaysAhead = f.days
	}
	if set("top") {
		cfg.ConsoleTop = f.top
	}
	if set("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if set("addr") {
		cfg.Addr = f.addr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat), logger.WithWriter(cmd.ErrOrStderr())); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return nil, err
	}
	metrics.Init(
		metrics.WithMetricsEnabled(cfg.Metrics.Enabled),
		metrics.WithNamespace(cfg.Metrics.Namespace),
		metrics.WithCustomLabels(cfg.Metrics.Labels),
		metrics.WithHistogramBuckets(cfg.Metrics.BucketsMS),
	)
	return cfg, nil
}

// buildService wires the configured provider and profile into a pipeline
// service.
func buildService(ctx context.Context, cfg *config.Config, console io.Writer) (*service.Service, error) {
	profile, err := cfg.Profile()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	log := logger.Get()

	var p provider.Provider
	switch cfg.Source {
	case config.SourceFile:
		p = provider.NewFile(cfg.FixturePath)
	default:
		p = provider.NewESPN(profile.ESPNPath,
			provider.WithBaseURL(cfg.ESPNBaseURL),
			provider.WithFetchDelay(cfg.FetchDelay()),
			provider.WithTimeout(cfg.HTTPTimeout()),
			provider.WithWindowDays(cfg.ResultsWindowDays),
			provider.WithLimit(cfg.ScoreboardLimit),
			provider.WithLogger(log.Named("espn")),
		)
	}

	log.Debug(ctx, "pipeline configured",
		logger.String("sport", cfg.Sport),
		logger.String("source", cfg.Source),
		logger.String("timezone", loc.String()),
	)

	return service.New(
		service.WithProvider(p),
		service.WithProfile(cfg.Sport, profile),
		service.WithDaysAhead(cfg.DaysAhead),
		service.WithLocation(loc),
		service.WithTeamOverrides(cfg.TeamOverrides),
		service.WithReportDir(cfg.ReportDir),
		service.WithConsole(console, cfg.ConsoleTop),
		service.WithLogger(log.Named("app")),
	), nil
}
