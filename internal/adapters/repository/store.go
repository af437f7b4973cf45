// Package repository holds the latest published pipeline snapshot for reads.
package repository

import (
	"context"
	"time"

	"github.com/okian/slate/internal/domain/types"
)

// Snapshot is the immutable result of one pipeline run. Rankings are in
// rank order; Matchups are in matchup order with Rank set to position.
type Snapshot struct {
	RunID       string
	Sport       string
	GeneratedAt time.Time
	Rankings    []types.RankingEntry
	Matchups    []types.MatchupEntry
}

// Store provides read/write access to the published snapshot.
type Store interface {
	// Publish atomically replaces the current snapshot.
	Publish(ctx context.Context, s *Snapshot) error

	// Latest returns the current snapshot or ErrNoSnapshot.
	Latest(ctx context.Context) (*Snapshot, error)

	// TopN returns the first n rankings.
	TopN(ctx context.Context, n int) ([]types.RankingEntry, error)

	// Rank returns the ranking row for a team. Returns ErrNotFound if the
	// team is not rated.
	Rank(ctx context.Context, teamID string) (types.RankingEntry, error)

	// Matchups returns up to n matchups, optionally restricted to one tier.
	Matchups(ctx context.Context, n int, tier string) ([]types.MatchupEntry, error)

	// Count returns the number of rated teams.
	Count(ctx context.Context) int
}
