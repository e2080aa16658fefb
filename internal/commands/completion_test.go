// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func completionValues(cs []Completion) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Value)
	}
	return out
}

func TestComplete_CommandNames(t *testing.T) {
	got := completionValues(Complete("Scroll"))
	want := []string{"ScrollUp", "ScrollDown", "ScrollLeft", "ScrollRight", "ScrollUpPage", "ScrollDownPage"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Complete(Scroll) mismatch (-want +got):\n%s", diff)
	}

	got = completionValues(Complete("scrollup"))
	if len(got) == 0 || got[0] != "ScrollUp" {
		t.Errorf("exact match should rank first, got %v", got)
	}

	if got := Complete("zzz"); len(got) != 0 {
		t.Errorf("Complete(zzz) = %v", got)
	}
}

func TestComplete_ArgNames(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"CreateAnnotText ", []string{"color=", "openedit", "setcontent", "copytoclipboard"}},
		{"CreateAnnotText color=red op", []string{"openedit"}},
		{"CreateAnnotText openedit ", []string{"color=", "setcontent", "copytoclipboard"}},
		{"ScrollDown ", []string{"n="}},
		{"Exec filter=*.pdf ", []string{"cmdline="}},
		{"Exit ", []string{}},
		{"Bogus ", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := completionValues(Complete(tc.input))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Complete(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestCompleteLine(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"ZoomFitW", []string{"ZoomFitWidth"}},
		{"CreateAnnotText color=red op", []string{"CreateAnnotText color=red openedit"}},
		{"Exit ", nil},
	}

	for _, tc := range tests {
		got := CompleteLine(tc.input)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("CompleteLine(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}
