package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/okian/slate/internal/domain/types"
	"github.com/okian/slate/pkg/logger"
)

func sampleSnapshot(run string, teams int) *Snapshot {
	snap := &Snapshot{RunID: run, Sport: "nba", GeneratedAt: time.Now()}
	for i := 0; i < teams; i++ {
		snap.Rankings = append(snap.Rankings, types.RankingEntry{
			Rank:   i + 1,
			TeamID: fmt.Sprintf("t%02d", i),
			Power:  float64(90 - i),
		})
	}
	tiers := []string{"Must Watch", "Decent", "Skip", "Decent"}
	for i, tier := range tiers {
		snap.Matchups = append(snap.Matchups, types.MatchupEntry{
			Rank:   i + 1,
			GameID: fmt.Sprintf("g%d", i),
			Tier:   tier,
		})
	}
	return snap
}

func TestSnapshotStore_Empty(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore(WithLogger(logger.Nop()))

	if count := store.Count(ctx); count != 0 {
		t.Errorf("expected count 0, got %d", count)
	}
	if _, err := store.Latest(ctx); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("expected ErrNoSnapshot, got %v", err)
	}
	if _, err := store.TopN(ctx, 5); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("expected ErrNoSnapshot, got %v", err)
	}
	if _, err := store.Rank(ctx, "t00"); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("expected ErrNoSnapshot, got %v", err)
	}
	if err := store.Publish(ctx, nil); err == nil {
		t.Error("expected error publishing nil snapshot")
	}
}

func TestSnapshotStore_Reads(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore(WithLogger(logger.Nop()))
	if err := store.Publish(ctx, sampleSnapshot("run-1", 5)); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if count := store.Count(ctx); count != 5 {
		t.Errorf("expected count 5, got %d", count)
	}

	top, err := store.TopN(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 3 || top[0].TeamID != "t00" || top[2].Rank != 3 {
		t.Errorf("unexpected top3: %+v", top)
	}

	all, err := store.TopN(ctx, 100)
	if err != nil || len(all) != 5 {
		t.Errorf("expected all 5 teams, got %d (%v)", len(all), err)
	}

	if _, err := store.TopN(ctx, 0); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("expected ErrInvalidLimit, got %v", err)
	}

	entry, err := store.Rank(ctx, "t03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Rank != 4 || entry.Power != 87 {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if _, err := store.Rank(ctx, "expansion"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSnapshotStore_Matchups(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore(WithLogger(logger.Nop()))
	_ = store.Publish(ctx, sampleSnapshot("run-1", 2))

	got, err := store.Matchups(ctx, 10, "")
	if err != nil || len(got) != 4 {
		t.Fatalf("expected 4 matchups, got %d (%v)", len(got), err)
	}

	decent, err := store.Matchups(ctx, 10, "decent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decent) != 2 || decent[0].Rank != 2 || decent[1].Rank != 4 {
		t.Errorf("tier filter should keep overall ranks, got %+v", decent)
	}

	one, _ := store.Matchups(ctx, 1, "Decent")
	if len(one) != 1 {
		t.Errorf("expected limit to apply after filtering, got %d", len(one))
	}

	if _, err := store.Matchups(ctx, -1, ""); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("expected ErrInvalidLimit, got %v", err)
	}
}

func TestSnapshotStore_TopNIsACopy(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore(WithLogger(logger.Nop()))
	_ = store.Publish(ctx, sampleSnapshot("run-1", 3))

	top, _ := store.TopN(ctx, 3)
	top[0].TeamID = "mutated"

	again, _ := store.TopN(ctx, 1)
	if again[0].TeamID != "t00" {
		t.Errorf("caller mutation leaked into the store: %+v", again[0])
	}
}

func TestSnapshotStore_ConcurrentPublishAndRead(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore(WithLogger(logger.Nop()))
	_ = store.Publish(ctx, sampleSnapshot("run-0", 4))

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				_ = store.Publish(ctx, sampleSnapshot(fmt.Sprintf("run-%d-%d", w, i), 4+i%3))
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				snap, err := store.Latest(ctx)
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				if n := len(snap.Rankings); n < 4 || n > 6 {
					t.Errorf("torn snapshot with %d teams", n)
					return
				}
				if _, err := store.Rank(ctx, "t00"); err != nil {
					t.Errorf("t00 should always be ranked: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
