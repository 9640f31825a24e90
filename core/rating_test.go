package core

import "testing"

func TestParseRating(t *testing.T) {
	tests := []struct {
		name       string
		input      any
		wantStars  int
		wantWeight float64
	}{
		{"five stars", 5, 5, 1.0},
		{"four stars", 4, 4, 0.5},
		{"neutral", 3, 3, 0},
		{"two stars", 2, 2, -0.5},
		{"one star", 1, 1, -1.0},
		{"json number decodes as float64", float64(4), 4, 0.5},
		{"love", "love", 5, 1.0},
		{"like", "like", 4, 0.5},
		{"dislike", "dislike", 2, -0.5},
		{"hate", "hate", 1, -1.0},
		{"symbol is case insensitive", "LOVE", 5, 1.0},
		{"symbol with whitespace", " like ", 4, 0.5},
		{"unknown symbol falls back to neutral", "meh", 3, 0},
		{"out of range falls back to neutral", 9, 3, 0},
		{"zero falls back to neutral", 0, 3, 0},
		{"nil falls back to neutral", nil, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseRating(tt.input)
			if r.Stars != tt.wantStars {
				t.Errorf("Stars = %d, want %d", r.Stars, tt.wantStars)
			}
			if r.Weight() != tt.wantWeight {
				t.Errorf("Weight() = %v, want %v", r.Weight(), tt.wantWeight)
			}
		})
	}
}

func TestRatingNeutral(t *testing.T) {
	if !RatingFromStars(3).Neutral() {
		t.Error("3 stars should be neutral")
	}
	if RatingFromStars(4).Neutral() {
		t.Error("4 stars should not be neutral")
	}
	if !RatingFromSymbol("whatever").Neutral() {
		t.Error("unknown symbol should normalize to neutral")
	}
}
