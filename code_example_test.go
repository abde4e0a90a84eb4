// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"slices"
	"testing"
)

func TestOrderExamplesCanonicalOrder(t *testing.T) {
	t.Parallel()

	in := []CodeExample{
		{Language: "php", Code: "<?php"},
		{Language: "bash", Code: "curl"},
		{Language: "python", Code: "import requests"},
		{Language: "javascript", Code: "fetch()"},
	}

	got := exampleLanguages(OrderExamples(in))
	want := []string{"bash", "python", "javascript", "php"}
	if !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}

	if in[0].Language != "php" {
		t.Fatalf("input slice was modified: %v", exampleLanguages(in))
	}
}

func TestOrderExamplesUnknownLabelsLastStable(t *testing.T) {
	t.Parallel()

	in := []CodeExample{
		{Language: "ruby", Code: "1"},
		{Language: "php", Code: "2"},
		{Language: "go", Code: "3"},
		{Language: "bash", Code: "4"},
		{Language: "ruby", Code: "5"},
	}

	got := OrderExamples(in)
	codes := make([]string, 0, len(got))
	for _, example := range got {
		codes = append(codes, example.Code)
	}

	want := []string{"4", "2", "1", "3", "5"}
	if !slices.Equal(codes, want) {
		t.Fatalf("order = %v, want %v", codes, want)
	}
}

func TestOrderExamplesExplicitLabelWins(t *testing.T) {
	t.Parallel()

	in := []CodeExample{
		{Language: "shell", Label: "PHP", Code: "a"},
		{Language: "bash", Label: "Shell", Code: "b"},
		{Language: "node", Label: "JavaScript", Code: "c"},
	}

	got := OrderExamples(in)
	codes := []string{got[0].Code, got[1].Code, got[2].Code}
	want := []string{"c", "a", "b"}
	if !slices.Equal(codes, want) {
		t.Fatalf("order = %v, want %v", codes, want)
	}
}

func TestOrderExamplesEmpty(t *testing.T) {
	t.Parallel()

	got := OrderExamples(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("OrderExamples(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestResolveLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		example CodeExample
		want    string
	}{
		{example: CodeExample{Language: "bash"}, want: "cURL"},
		{example: CodeExample{Language: "Python"}, want: "Python"},
		{example: CodeExample{Language: "javascript"}, want: "JavaScript"},
		{example: CodeExample{Language: "php"}, want: "PHP"},
		{example: CodeExample{Language: "ruby"}, want: "ruby"},
		{example: CodeExample{Language: "bash", Label: "HTTPie"}, want: "HTTPie"},
		{example: CodeExample{}, want: ""},
	}

	for _, tc := range cases {
		if got := ResolveLabel(tc.example); got != tc.want {
			t.Fatalf("ResolveLabel(%+v) = %q, want %q", tc.example, got, tc.want)
		}
	}
}

func exampleLanguages(examples []CodeExample) []string {
	out := make([]string, 0, len(examples))
	for _, example := range examples {
		out = append(out, example.Language)
	}

	return out
}
