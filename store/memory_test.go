package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stylekit/stylerec/core"
)

func TestMemoryTrackerStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTrackerStore()

	if _, ok, err := s.Tracker(ctx, "u1"); err != nil || ok {
		t.Fatalf("unknown user: ok=%v err=%v, want absent", ok, err)
	}

	in := core.NewInteraction("p1", []float64{1, 0}, core.RatingFromSymbol("love"))
	if err := s.Record(ctx, "u1", in); err != nil {
		t.Fatal(err)
	}

	tr, ok, err := s.Tracker(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("after record: ok=%v err=%v", ok, err)
	}
	if tr.Len() != 1 || !tr.HasRated("p1") {
		t.Errorf("tracker state: len=%d rated=%v", tr.Len(), tr.HasRated("p1"))
	}

	// 用户之间互不影响
	if _, ok, _ := s.Tracker(ctx, "u2"); ok {
		t.Error("u2 should not exist")
	}
}

func TestMemoryTrackerStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTrackerStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in := core.NewInteraction("p", []float64{1}, core.RatingFromSymbol("like"))
			if err := s.Record(ctx, "same-user", in); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	tr, ok, _ := s.Tracker(ctx, "same-user")
	if !ok || tr.Len() != 20 {
		t.Errorf("ok=%v len=%d, want 20 interactions", ok, tr.Len())
	}
}
