// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"sort"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// FUZZY MATCHING
// =============================================================================

// Score bonuses for one matched character.
const (
	matchBase        = 1
	bonusConsecutive = 5
	bonusStart       = 10
	bonusBoundary    = 7
	bonusExactCase   = 2
)

// fold normalizes s to NFKC so that full-width and compatibility forms
// match their plain equivalents.
func fold(s string) []rune {
	return []rune(norm.NFKC.String(s))
}

// FuzzyMatch reports whether every rune of query appears in target in
// order, ignoring case, and scores the match (higher is better).
//
// Bonuses go to consecutive runs, the first character, word boundaries
// (after space, '-', '_', ':' or a camelCase hump) and exact case. Longer
// targets lose a little.
//
//	FuzzyMatch("su", "ScrollUp")     // matched, both at boundaries
//	FuzzyMatch("zin", "ZoomIn")      // matched
//	FuzzyMatch("xyz", "ScrollUp")    // not matched
func FuzzyMatch(query, target string) (score int, matched bool) {
	if query == "" {
		return 0, true
	}

	q := fold(query)
	orig := fold(target)
	if len(q) > len(orig) {
		return 0, false
	}

	qi := 0
	last := -1
	for ti := 0; ti < len(orig) && qi < len(q); ti++ {
		if unicode.ToLower(orig[ti]) != unicode.ToLower(q[qi]) {
			continue
		}
		s := matchBase
		if last == ti-1 {
			s += bonusConsecutive
		}
		if ti == 0 {
			s += bonusStart
		}
		if isWordBoundary(orig, ti) {
			s += bonusBoundary
		}
		if orig[ti] == q[qi] {
			s += bonusExactCase
		}
		score += s
		last = ti
		qi++
	}

	if qi != len(q) {
		return 0, false
	}
	return score - len(orig)/4, true
}

// isWordBoundary reports whether runes[pos] starts a word.
func isWordBoundary(runes []rune, pos int) bool {
	if pos == 0 {
		return true
	}
	if pos >= len(runes) {
		return false
	}
	prev := runes[pos-1]
	switch prev {
	case ' ', '-', '_', ':', '/':
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(runes[pos])
}

// =============================================================================
// SCORED MATCH
// =============================================================================

// ScoredMatch is one target that matched, with its index in the input.
type ScoredMatch struct {
	Target string
	Index  int
	Score  int
}

// FuzzyFilter returns the targets matching query, best first. Ties keep
// input order.
func FuzzyFilter(query string, targets []string) []ScoredMatch {
	var matches []ScoredMatch
	for i, target := range targets {
		if score, ok := FuzzyMatch(query, target); ok {
			matches = append(matches, ScoredMatch{Target: target, Index: i, Score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// =============================================================================
// HIGHLIGHTING
// =============================================================================

// HighlightMatch returns the rune positions in the normalized target that
// FuzzyMatch would match, for styling.
func HighlightMatch(query, target string) []int {
	if query == "" {
		return nil
	}
	q := fold(query)
	t := fold(target)

	var positions []int
	qi := 0
	for ti := 0; ti < len(t) && qi < len(q); ti++ {
		if unicode.ToLower(t[ti]) == unicode.ToLower(q[qi]) {
			positions = append(positions, ti)
			qi++
		}
	}
	if qi != len(q) {
		return nil
	}
	return positions
}
