package core

import (
	"math"
	"sync"
	"testing"
)

func approxEqual(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestPreferenceVectorEmpty(t *testing.T) {
	tr := NewPreferenceTracker()
	if v, ok := tr.PreferenceVector(); ok || v != nil {
		t.Fatalf("empty tracker should have no preference, got %v", v)
	}
}

func TestPreferenceVectorLoveAndHate(t *testing.T) {
	// love A + hate B，权重 +1 和 -1，偏好应为 normalize(e_A - e_B)
	tr := NewPreferenceTracker()
	tr.Add(NewInteraction("a", []float64{1, 0, 0}, RatingFromSymbol("love")))
	tr.Add(NewInteraction("b", []float64{0, 1, 0}, RatingFromSymbol("hate")))

	v, ok := tr.PreferenceVector()
	if !ok {
		t.Fatal("expected a preference vector")
	}
	inv := 1 / math.Sqrt2
	if !approxEqual(v, []float64{inv, -inv, 0}, 1e-9) {
		t.Errorf("preference = %v, want [%v %v 0]", v, inv, -inv)
	}
}

func TestPreferenceVectorIsUnitLength(t *testing.T) {
	tr := NewPreferenceTracker()
	tr.Add(NewInteraction("a", []float64{0.6, 0.8, 0}, RatingFromSymbol("like")))
	tr.Add(NewInteraction("b", []float64{0, 0.6, 0.8}, RatingFromSymbol("love")))

	v, ok := tr.PreferenceVector()
	if !ok {
		t.Fatal("expected a preference vector")
	}
	var norm float64
	for _, x := range v {
		norm += x * x
	}
	if math.Abs(math.Sqrt(norm)-1) > 1e-9 {
		t.Errorf("preference norm = %v, want 1", math.Sqrt(norm))
	}
}

func TestPreferenceVectorStrongSignalDominates(t *testing.T) {
	// love(权重 1.0) 应比 like(权重 0.5) 更多地牵引偏好向量
	tr := NewPreferenceTracker()
	tr.Add(NewInteraction("a", []float64{1, 0}, RatingFromSymbol("love")))
	tr.Add(NewInteraction("b", []float64{0, 1}, RatingFromSymbol("like")))

	v, ok := tr.PreferenceVector()
	if !ok {
		t.Fatal("expected a preference vector")
	}
	if v[0] <= v[1] {
		t.Errorf("love component %v should exceed like component %v", v[0], v[1])
	}
}

func TestPreferenceVectorNeutralOnly(t *testing.T) {
	// 中性评分不贡献偏好，但商品仍被标记为已评分
	tr := NewPreferenceTracker()
	tr.Add(NewInteraction("a", []float64{1, 0, 0}, RatingFromStars(3)))

	if _, ok := tr.PreferenceVector(); ok {
		t.Error("neutral-only interactions should yield no preference")
	}
	if !tr.HasRated("a") {
		t.Error("neutral rating should still mark the product as rated")
	}
}

func TestPreferenceVectorCancellation(t *testing.T) {
	// love 与 hate 同一向量，加权和为零范数，视为无偏好
	tr := NewPreferenceTracker()
	tr.Add(NewInteraction("a", []float64{1, 0}, RatingFromSymbol("love")))
	tr.Add(NewInteraction("b", []float64{1, 0}, RatingFromSymbol("hate")))

	if _, ok := tr.PreferenceVector(); ok {
		t.Error("cancelling interactions should yield no preference")
	}
}

func TestRepeatRatingAccumulates(t *testing.T) {
	tr := NewPreferenceTracker()
	tr.Add(NewInteraction("a", []float64{1, 0}, RatingFromSymbol("like")))
	tr.Add(NewInteraction("a", []float64{1, 0}, RatingFromSymbol("like")))

	if tr.Len() != 2 {
		t.Errorf("Len = %d, want 2", tr.Len())
	}
	v, ok := tr.PreferenceVector()
	if !ok {
		t.Fatal("expected a preference vector")
	}
	if !approxEqual(v, []float64{1, 0}, 1e-9) {
		t.Errorf("preference = %v, want [1 0]", v)
	}
}

func TestRatedSetIsCopy(t *testing.T) {
	tr := NewPreferenceTracker()
	tr.Add(NewInteraction("a", []float64{1}, RatingFromSymbol("love")))

	set := tr.RatedSet()
	delete(set, "a")
	if !tr.HasRated("a") {
		t.Error("mutating the returned set should not affect the tracker")
	}
}

func TestTrackerConcurrentAdd(t *testing.T) {
	tr := NewPreferenceTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Add(NewInteraction("a", []float64{1, 0}, RatingFromSymbol("like")))
			tr.PreferenceVector()
		}()
	}
	wg.Wait()

	if tr.Len() != 50 {
		t.Errorf("Len = %d, want 50", tr.Len())
	}
	v, ok := tr.PreferenceVector()
	if !ok || !approxEqual(v, []float64{1, 0}, 1e-9) {
		t.Errorf("preference = %v, want [1 0]", v)
	}
}
