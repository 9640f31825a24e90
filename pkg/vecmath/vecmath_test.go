package vecmath

import (
	"errors"
	"math"
	"testing"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"parallel", []float64{1, 2, 3}, []float64{1, 2, 3}, 14},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dot(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Dot: %v", err)
			}
			if got != tt.want {
				t.Errorf("Dot = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDotDimensionMismatch(t *testing.T) {
	if _, err := Dot([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("err = %v, want ErrDimensionMismatch", err)
	}
}

func TestNormalize(t *testing.T) {
	v := []float64{3, 0, 4}
	if !Normalize(v) {
		t.Fatal("Normalize returned false")
	}
	want := []float64{0.6, 0, 0.8}
	for i := range v {
		if math.Abs(v[i]-want[i]) > 1e-12 {
			t.Errorf("v[%d] = %v, want %v", i, v[i], want[i])
		}
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	v := []float64{0, 0, 0}
	if Normalize(v) {
		t.Error("zero vector should not normalize")
	}
	for i, x := range v {
		if x != 0 {
			t.Errorf("v[%d] = %v, input should be untouched", i, x)
		}
	}
}

func TestNormalizedCopy(t *testing.T) {
	v := []float64{2, 0}
	got, ok := NormalizedCopy(v)
	if !ok {
		t.Fatal("NormalizedCopy returned false")
	}
	if got[0] != 1 || got[1] != 0 {
		t.Errorf("copy = %v, want [1 0]", got)
	}
	if v[0] != 2 {
		t.Error("input must not be modified")
	}

	if _, ok := NormalizedCopy([]float64{0, 0}); ok {
		t.Error("zero vector copy should report false")
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2}, []float64{1, 2}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-2, 0}, -1},
		{"zero vector", []float64{0, 0}, []float64{1, 0}, 0},
		{"dimension mismatch", []float64{1}, []float64{1, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CosineSimilarity(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("CosineSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}
