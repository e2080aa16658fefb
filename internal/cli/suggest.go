// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - "did you mean" for subcommands and command names.
package cli

import (
	"strings"

	"github.com/jeranaias/cmdbind/internal/commands"
)

// validCommands are the subcommands and their aliases.
var validCommands = []string{
	"parse",
	"list",
	"check",
	"palette",
	"repl",
	"watch",
	"init",
	"version",
	"help",
	// Aliases
	"p",  // parse
	"ls", // list
}

// SuggestCommand returns the subcommand closest to input, or "" when none is
// close enough.
func SuggestCommand(input string) string {
	return closest(strings.ToLower(input), validCommands, false)
}

// SuggestCommandName returns the catalog command name closest to input,
// compared case-insensitively.
func SuggestCommandName(input string) string {
	catalog := commands.Catalog()
	names := make([]string, len(catalog))
	for i, c := range catalog {
		names[i] = c.Name
	}
	return closest(input, names, true)
}

// closest returns the candidate within the edit threshold for len(input):
// 1 edit up to 3 runes, 2 up to 8, 3 beyond.
func closest(input string, candidates []string, fold bool) string {
	if len(input) < 2 {
		return ""
	}

	maxDistance := 1
	if len(input) >= 4 {
		maxDistance = 2
	}
	if len(input) > 8 {
		maxDistance = 3
	}

	needle := input
	if fold {
		needle = strings.ToLower(input)
	}

	bestMatch := ""
	bestDistance := -1
	for _, cand := range candidates {
		hay := cand
		if fold {
			hay = strings.ToLower(cand)
		}
		distance := levenshteinDistance(needle, hay)
		if distance == 0 {
			return ""
		}
		if distance <= maxDistance && (bestDistance == -1 || distance < bestDistance) {
			bestDistance = distance
			bestMatch = cand
		}
	}
	return bestMatch
}

// levenshteinDistance is the number of single-rune insertions, deletions
// or substitutions that turn s1 into s2.
func levenshteinDistance(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(r2)]
}
