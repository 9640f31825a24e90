package rerank

import (
	"testing"

	"github.com/stylekit/stylerec/core"
)

func candidate(id string, emb []float64, score float64) *core.Candidate {
	return &core.Candidate{
		Product:   core.Product{ID: id},
		Embedding: emb,
		Score:     score,
	}
}

func ids(selected []*core.Candidate) []string {
	out := make([]string, len(selected))
	for i, c := range selected {
		out[i] = c.Product.ID
	}
	return out
}

func TestMMREmptyInput(t *testing.T) {
	m := &MMR{}
	if got := m.Rerank(nil, []float64{1, 0}, 5); got != nil {
		t.Errorf("empty candidates: got %v, want nil", got)
	}
	if got := m.Rerank([]*core.Candidate{candidate("a", []float64{1, 0}, 1)}, []float64{1, 0}, 0); got != nil {
		t.Errorf("count=0: got %v, want nil", got)
	}
}

func TestMMRFirstPickIsMostRelevant(t *testing.T) {
	query := []float64{1, 0, 0}
	candidates := []*core.Candidate{
		candidate("low", []float64{0, 1, 0}, 0.5),
		candidate("high", []float64{1, 0, 0}, 1.0),
		candidate("mid", []float64{0.6, 0.8, 0}, 0.8),
	}

	m := &MMR{}
	got := m.Rerank(candidates, query, 1)
	if len(got) != 1 || got[0].Product.ID != "high" {
		t.Errorf("first pick = %v, want [high]", ids(got))
	}
}

func TestMMRPureRelevance(t *testing.T) {
	// λ=1 退化为纯相关性排序
	query := []float64{1, 0, 0}
	candidates := []*core.Candidate{
		candidate("a", []float64{1, 0, 0}, 1.0),
		candidate("b", []float64{0.9, 0.435, 0}, 0.95),
		candidate("c", []float64{0, 1, 0}, 0.5),
	}

	m := &MMR{Lambda: 1.0}
	got := ids(m.Rerank(candidates, query, 3))
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestMMRDiversityPenalty(t *testing.T) {
	// b 与已选的 a 几乎重合；低 λ 下多样性惩罚应让 c 先于 b 入选
	query := []float64{1, 0, 0}
	candidates := []*core.Candidate{
		candidate("a", []float64{1, 0, 0}, 1.0),
		candidate("b", []float64{0.9, 0.435, 0}, 0.95),
		candidate("c", []float64{0, 1, 0}, 0.5),
	}

	m := &MMR{Lambda: 0.3}
	got := ids(m.Rerank(candidates, query, 3))
	want := []string{"a", "c", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestMMRTieKeepsInputOrder(t *testing.T) {
	query := []float64{1, 0}
	candidates := []*core.Candidate{
		candidate("first", []float64{1, 0}, 0.9),
		candidate("second", []float64{1, 0}, 0.9),
	}

	m := &MMR{}
	got := ids(m.Rerank(candidates, query, 2))
	if got[0] != "first" || got[1] != "second" {
		t.Errorf("order = %v, tie must keep input order", got)
	}
}

func TestMMRDeterministic(t *testing.T) {
	query := []float64{0.6, 0.8, 0}
	candidates := []*core.Candidate{
		candidate("a", []float64{1, 0, 0}, 0.8),
		candidate("b", []float64{0, 1, 0}, 0.9),
		candidate("c", []float64{0, 0, 1}, 0.5),
		candidate("d", []float64{0.6, 0.8, 0}, 1.0),
	}

	m := &MMR{}
	first := ids(m.Rerank(candidates, query, 4))
	for i := 0; i < 5; i++ {
		again := ids(m.Rerank(candidates, query, 4))
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: %v != %v", i, again, first)
			}
		}
	}
}

func TestMMRCountExceedsCandidates(t *testing.T) {
	query := []float64{1, 0}
	candidates := []*core.Candidate{
		candidate("a", []float64{1, 0}, 1.0),
		candidate("b", []float64{0, 1}, 0.5),
	}

	m := &MMR{}
	got := m.Rerank(candidates, query, 10)
	if len(got) != 2 {
		t.Errorf("len = %d, want all candidates", len(got))
	}
}
