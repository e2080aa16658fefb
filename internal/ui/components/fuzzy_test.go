// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		query   string
		target  string
		matched bool
	}{
		{"", "anything", true},
		{"su", "ScrollUp", true},
		{"zin", "ZoomIn", true},
		{"ZOOMIN", "ZoomIn", true},
		{"xyz", "ScrollUp", false},
		{"pu", "ScrollUp", false},
		{"longer than target", "short", false},
		{"ｓｕ", "ScrollUp", true}, // full-width folds under NFKC
	}

	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.target, func(t *testing.T) {
			_, matched := FuzzyMatch(tt.query, tt.target)
			if matched != tt.matched {
				t.Errorf("FuzzyMatch(%q, %q) matched = %v, want %v", tt.query, tt.target, matched, tt.matched)
			}
		})
	}
}

func TestFuzzyMatchScore(t *testing.T) {
	score, ok := FuzzyMatch("su", "ScrollUp")
	if !ok || score != 24 {
		t.Errorf("FuzzyMatch(su, ScrollUp) = %d, %v; want 24, true", score, ok)
	}

	exact, _ := FuzzyMatch("Su", "ScrollUp")
	if exact <= score {
		t.Errorf("exact case should score higher: %d <= %d", exact, score)
	}
}

func TestFuzzyFilterPrefersWordBoundaries(t *testing.T) {
	got := FuzzyFilter("up", []string{"Setup", "Scroll Up", "Download"})
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(got), got)
	}
	if got[0].Target != "Scroll Up" || got[0].Index != 1 {
		t.Errorf("best match = %+v, want Scroll Up at index 1", got[0])
	}
	if got[1].Target != "Setup" {
		t.Errorf("second match = %q, want Setup", got[1].Target)
	}
}

func TestFuzzyFilterStableTies(t *testing.T) {
	got := FuzzyFilter("", []string{"b", "a", "c"})
	var order []string
	for _, m := range got {
		order = append(order, m.Target)
	}
	if diff := cmp.Diff([]string{"b", "a", "c"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestHighlightMatch(t *testing.T) {
	if diff := cmp.Diff([]int{0, 6}, HighlightMatch("su", "ScrollUp")); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	if got := HighlightMatch("xyz", "ScrollUp"); got != nil {
		t.Errorf("HighlightMatch(xyz) = %v, want nil", got)
	}
	if got := HighlightMatch("", "ScrollUp"); got != nil {
		t.Errorf("HighlightMatch(empty) = %v, want nil", got)
	}
}

func TestIsWordBoundary(t *testing.T) {
	runes := []rune("Go to-page_2:Next/lastPage")
	for _, pos := range []int{0, 3, 6, 11, 13, 18, 22} {
		if !isWordBoundary(runes, pos) {
			t.Errorf("position %d (%q) should be a boundary", pos, runes[pos])
		}
	}
	for _, pos := range []int{1, 4, 8, 19} {
		if isWordBoundary(runes, pos) {
			t.Errorf("position %d (%q) should not be a boundary", pos, runes[pos])
		}
	}
	if isWordBoundary(runes, len(runes)) {
		t.Error("past the end is not a boundary")
	}
}
