// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sort"
	"strings"

	"github.com/jeranaias/cmdbind/internal/util"
)

// =============================================================================
// COMPLETER
// =============================================================================

// Completion is one candidate for the word being typed.
type Completion struct {
	// Value replaces the partial word
	Value string

	// Description is shown next to the candidate
	Description string

	// Score ranks candidates, higher first
	Score int
}

// Complete returns candidates for the last word of a partially typed
// definition: command names for the first word, argument names of the
// command's group afterwards.
func Complete(input string) []Completion {
	name, rest, hasRest := strings.Cut(strings.TrimLeft(input, " "), " ")
	if !hasRest {
		return completeCommands(name)
	}
	id := IDByName(name)
	if id == InvalidID {
		return nil
	}
	partial := rest
	if i := strings.LastIndexByte(rest, ' '); i >= 0 {
		partial = rest[i+1:]
	}
	return completeArgs(AcceptedArgs(id), rest, partial)
}

// CompleteLine returns whole-line candidates for input, as line editors
// expect them.
func CompleteLine(input string) []string {
	completions := Complete(input)
	if len(completions) == 0 {
		return nil
	}
	head := ""
	if i := strings.LastIndexByte(input, ' '); i >= 0 {
		head = input[:i+1]
	}
	lines := make([]string, 0, len(completions))
	for _, c := range completions {
		lines = append(lines, head+c.Value)
	}
	return lines
}

func completeCommands(partial string) []Completion {
	var completions []Completion
	for _, cmd := range catalog {
		if !util.HasPrefixFold(cmd.Name, partial) {
			continue
		}
		completions = append(completions, Completion{
			Value:       cmd.Name,
			Description: cmd.Description,
			Score:       calculateScore(cmd.Name, partial),
		})
	}
	sortCompletions(completions)
	return completions
}

// completeArgs offers the group's argument names that were not given yet.
// Bool names complete bare, others with a trailing '='.
func completeArgs(specs []ArgSpec, rest, partial string) []Completion {
	var completions []Completion
	for _, spec := range specs {
		if !util.HasPrefixFold(spec.Name, partial) {
			continue
		}
		if argGiven(rest, partial, spec.Name) {
			continue
		}
		value := spec.Name
		if spec.Type != ArgBool {
			value += "="
		}
		completions = append(completions, Completion{
			Value:       value,
			Description: spec.Type.String(),
			Score:       calculateScore(spec.Name, partial),
		})
	}
	sortCompletions(completions)
	return completions
}

// argGiven reports whether name already appears as a word of rest,
// ignoring the word still being typed.
func argGiven(rest, partial, name string) bool {
	done := strings.TrimSuffix(rest, partial)
	for _, word := range strings.Fields(done) {
		if util.HasPrefixFold(word, name) {
			return true
		}
	}
	return false
}

// calculateScore calculates a match score for completion ranking.
// Higher score = better match.
func calculateScore(value, partial string) int {
	value = strings.ToLower(value)
	partial = strings.ToLower(partial)

	score := 100
	if value == partial {
		return score + 100
	}
	if strings.HasPrefix(value, partial) {
		score += 50
		score += 20 - len(value)
	}
	score -= len(value) / 2
	return score
}

// sortCompletions sorts completions by score (descending), then alphabetically.
func sortCompletions(completions []Completion) {
	sort.Slice(completions, func(i, j int) bool {
		if completions[i].Score != completions[j].Score {
			return completions[i].Score > completions[j].Score
		}
		return completions[i].Value < completions[j].Value
	})
}
