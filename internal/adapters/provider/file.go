package provider

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/okian/slate/internal/domain/model"
	"github.com/okian/slate/pkg/metrics"
)

const fileProviderName = "file"

// File serves league data from a fixture file. The file is re-read on every
// call so a long-running process sees edits.
type File struct {
	path string
}

// NewFile creates a provider reading path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Results returns concluded fixture games in [from, to).
func (f *File) Results(ctx context.Context, from, to time.Time) ([]model.Game, error) {
	games, err := f.games(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := games[:0]
	for _, g := range games {
		if g.Completed() {
			out = append(out, g)
		}
	}
	metrics.RecordGamesFetched(fileProviderName, "results", len(out))
	return out, nil
}

// Schedule returns every fixture game in [from, to).
func (f *File) Schedule(ctx context.Context, from, to time.Time) ([]model.Game, error) {
	games, err := f.games(ctx, from, to)
	if err != nil {
		return nil, err
	}
	metrics.RecordGamesFetched(fileProviderName, "schedule", len(games))
	return games, nil
}

// Teams returns the fixture's team list.
func (f *File) Teams(ctx context.Context) (*Directory, error) {
	fx, err := f.load(ctx)
	if err != nil {
		return nil, err
	}
	return NewDirectory(fx.Teams), nil
}

func (f *File) games(ctx context.Context, from, to time.Time) ([]model.Game, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("%w: %s is not before %s", ErrInvalidRange, from, to)
	}
	fx, err := f.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Game
	for _, row := range fx.Games {
		g := row.Game()
		if inRange(g.Date, from, to) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *File) load(ctx context.Context) (*Fixture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	fh, err := os.Open(f.path)
	if err != nil {
		metrics.RecordFetchError(fileProviderName, "open")
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer func() { _ = fh.Close() }()

	fx, err := DecodeFixture(fh)
	metrics.RecordFetch(fileProviderName, "fixture", float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordFetchError(fileProviderName, "decode")
		return nil, err
	}
	return fx, nil
}
