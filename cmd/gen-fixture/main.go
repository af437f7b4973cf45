// Command gen-fixture writes a synthetic league file for offline runs of
// slate (source "file").
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/okian/slate/internal/fixtures"
	"github.com/okian/slate/pkg/logger"
)

// Default configuration constants.
const (
	defaultTeams       = 30
	defaultSeasonDays  = 90
	defaultUpcoming    = 7
	defaultRoundEvery  = 2
	defaultGenTimeout  = 30 * time.Second
	outputFilePerm     = 0o644
	defaultOutputLabel = "stdout"
)

func main() {
	var (
		sport      = flag.String("sport", "nba", "Score scale: nba or nfl")
		teams      = flag.Int("teams", defaultTeams, "Number of teams")
		seasonDays = flag.Int("season-days", defaultSeasonDays, "Days since the season opened")
		upcoming   = flag.Int("upcoming", defaultUpcoming, "Days of schedule after now")
		roundEvery = flag.Int("round-every", defaultRoundEvery, "Days between rounds")
		duplicates = flag.Int("duplicates", 0, "Played games to repeat, to exercise deduplication")
		seed       = flag.Uint64("seed", 1, "Random seed; the same seed gives the same league")
		output     = flag.String("out", "", "Output file (default: "+defaultOutputLabel+")")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultGenTimeout)
	defer cancel()

	now := time.Now().UTC()
	cfg := fixtures.Config{
		Sport:        *sport,
		Teams:        *teams,
		SeasonStart:  now.AddDate(0, 0, -*seasonDays),
		Now:          now,
		UpcomingDays: *upcoming,
		RoundEvery:   *roundEvery,
		Duplicates:   *duplicates,
		Seed:         *seed,
	}

	if err := run(ctx, cfg, *output); err != nil {
		logger.Get().Error(ctx, "fixture generation failed", logger.Error(err))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg fixtures.Config, output string) error {
	fx, err := fixtures.Generate(ctx, cfg)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePerm)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer f.Close()
		w = f
	}
	return fx.Encode(w)
}
