// Package provider fetches game results, schedules and team directories
// from upstream sources.
package provider

import (
	"context"
	"time"

	"github.com/okian/slate/internal/domain/model"
)

// Provider is a source of league data. Ranges are half-open: a game is in
// [from, to) when from <= game.Date < to.
type Provider interface {
	// Results returns concluded games dated in the range.
	Results(ctx context.Context, from, to time.Time) ([]model.Game, error)
	// Schedule returns every game dated in the range, concluded or not.
	Schedule(ctx context.Context, from, to time.Time) ([]model.Game, error)
	// Teams returns the id -> label directory.
	Teams(ctx context.Context) (*Directory, error)
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}
