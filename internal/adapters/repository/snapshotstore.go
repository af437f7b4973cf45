package repository

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/okian/slate/internal/domain/types"
	"github.com/okian/slate/pkg/logger"
)

type indexed struct {
	*Snapshot
	rankByTeam map[string]int // index into Rankings
}

// SnapshotStore serves reads from an atomically swapped snapshot. Readers
// never block writers.
type SnapshotStore struct {
	current atomic.Pointer[indexed]
	log     logger.Logger
}

var _ Store = (*SnapshotStore)(nil)

// NewSnapshotStore creates an empty store.
func NewSnapshotStore(opts ...Option) *SnapshotStore {
	s := &SnapshotStore{}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get().Named("repository")
	}
	return s
}

// Publish indexes and installs snap. The store keeps a reference, so the
// caller must not modify snap afterwards.
func (s *SnapshotStore) Publish(ctx context.Context, snap *Snapshot) error {
	if snap == nil {
		return errors.New("publish: nil snapshot")
	}
	idx := &indexed{
		Snapshot:   snap,
		rankByTeam: make(map[string]int, len(snap.Rankings)),
	}
	for i, r := range snap.Rankings {
		idx.rankByTeam[r.TeamID] = i
	}
	s.current.Store(idx)

	s.log.Debug(ctx, "snapshot published",
		logger.String("run_id", snap.RunID),
		logger.Int("teams", len(snap.Rankings)),
		logger.Int("matchups", len(snap.Matchups)),
	)
	return nil
}

// Latest returns the current snapshot.
func (s *SnapshotStore) Latest(_ context.Context) (*Snapshot, error) {
	cur := s.current.Load()
	if cur == nil {
		return nil, ErrNoSnapshot
	}
	return cur.Snapshot, nil
}

// TopN returns the first n rankings (fewer when fewer teams are rated).
func (s *SnapshotStore) TopN(_ context.Context, n int) ([]types.RankingEntry, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}
	cur := s.current.Load()
	if cur == nil {
		return nil, ErrNoSnapshot
	}
	n = min(n, len(cur.Rankings))
	return append([]types.RankingEntry(nil), cur.Rankings[:n]...), nil
}

// Rank returns the ranking row for teamID.
func (s *SnapshotStore) Rank(_ context.Context, teamID string) (types.RankingEntry, error) {
	cur := s.current.Load()
	if cur == nil {
		return types.RankingEntry{}, ErrNoSnapshot
	}
	i, ok := cur.rankByTeam[teamID]
	if !ok {
		return types.RankingEntry{}, ErrNotFound
	}
	return cur.Rankings[i], nil
}

// Matchups returns up to n matchups in matchup order. A non-empty tier
// keeps only that tier (case-insensitive); positions keep their overall rank.
func (s *SnapshotStore) Matchups(_ context.Context, n int, tier string) ([]types.MatchupEntry, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}
	cur := s.current.Load()
	if cur == nil {
		return nil, ErrNoSnapshot
	}
	out := make([]types.MatchupEntry, 0, min(n, len(cur.Matchups)))
	for _, m := range cur.Matchups {
		if len(out) == n {
			break
		}
		if tier != "" && !strings.EqualFold(m.Tier, tier) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// Count returns the number of rated teams, 0 before the first publish.
func (s *SnapshotStore) Count(_ context.Context) int {
	cur := s.current.Load()
	if cur == nil {
		return 0
	}
	return len(cur.Rankings)
}
