// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"slices"
	"strings"
)

// CodeExample is one client-language demonstration attached to an endpoint.
type CodeExample struct {
	Language string `json:"language" yaml:"language"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Code     string `json:"code" yaml:"code"`
}

// CanonicalLabels is the preferred display order of client-language examples.
var CanonicalLabels = []string{"cURL", "Python", "JavaScript", "PHP"}

// languageLabels maps language tags to canonical display labels.
var languageLabels = map[string]string{
	"bash":       "cURL",
	"python":     "Python",
	"javascript": "JavaScript",
	"php":        "PHP",
}

// ResolveLabel returns display label: explicit label, canonical tag label, or raw tag.
func ResolveLabel(example CodeExample) string {
	if label := strings.TrimSpace(example.Label); label != "" {
		return label
	}

	tag := strings.TrimSpace(example.Language)
	if label, ok := languageLabels[strings.ToLower(tag)]; ok {
		return label
	}

	return tag
}

// OrderExamples returns examples sorted by canonical label order.
//
// Examples with unrecognized labels follow all canonical ones in their input
// order. Nothing is dropped and input slice is not modified.
func OrderExamples(examples []CodeExample) []CodeExample {
	out := slices.Clone(examples)
	if out == nil {
		out = []CodeExample{}
	}

	slices.SortStableFunc(out, func(left, right CodeExample) int {
		return labelRank(ResolveLabel(left)) - labelRank(ResolveLabel(right))
	})

	return out
}

// labelRank returns label position in CanonicalLabels or len(CanonicalLabels) when unknown.
func labelRank(label string) int {
	if index := slices.Index(CanonicalLabels, label); index >= 0 {
		return index
	}

	return len(CanonicalLabels)
}
