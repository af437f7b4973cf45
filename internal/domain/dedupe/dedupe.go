// Package dedupe provides keep-first deduplication of games by id.
package dedupe

import (
	"context"

	"github.com/okian/slate/internal/domain/model"
)

// Deduper records seen game IDs so each id is processed at most once.
// Implementations are not safe for concurrent use.
type Deduper interface {
	// SeenAndRecord reports whether id was seen and records it if not.
	SeenAndRecord(ctx context.Context, id string) bool

	// Size is the number of distinct ids recorded.
	Size() int
}

// inMemoryDeduper implements Deduper with a plain set.
// There is no eviction: forgetting an id would let a duplicate through.
type inMemoryDeduper struct {
	seen map[string]struct{}
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	cfg := options{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &inMemoryDeduper{
		seen: make(map[string]struct{}, cfg.capacity),
	}
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	if _, exists := d.seen[id]; exists {
		return true
	}
	d.seen[id] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Size() int {
	return len(d.seen)
}

// Games returns games with repeated IDs removed, keeping the first occurrence
// and preserving input order. dropped counts the removed entries.
func Games(ctx context.Context, games []model.Game) (kept []model.Game, dropped int) {
	d := NewInMemoryDeduper(WithCapacity(len(games)))
	kept = make([]model.Game, 0, len(games))
	for _, g := range games {
		if !d.SeenAndRecord(ctx, g.ID) {
			kept = append(kept, g)
		}
	}
	return kept, len(games) - d.Size()
}
