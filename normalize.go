// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import "strings"

// undefinedMarker is the literal value upstream descriptor loaders emit for missing header values.
const undefinedMarker = "undefined"

// Verb is one HTTP method token recognized in code fragments.
type Verb string

const (
	VerbGet     Verb = "GET"
	VerbPost    Verb = "POST"
	VerbPut     Verb = "PUT"
	VerbDelete  Verb = "DELETE"
	VerbPatch   Verb = "PATCH"
	VerbOptions Verb = "OPTIONS"
	VerbHead    Verb = "HEAD"
)

// httpVerbs is the closed verb vocabulary shared by normalizer and highlighter.
var httpVerbs = []Verb{
	VerbGet,
	VerbPost,
	VerbPut,
	VerbDelete,
	VerbPatch,
	VerbOptions,
	VerbHead,
}

// CodeFragment is one raw block of example text tagged with its language.
type CodeFragment struct {
	Text     string `json:"text" yaml:"text"`
	Language string `json:"language" yaml:"language"`
}

// NormalizedFragment is a code fragment whose text went through Normalize.
type NormalizedFragment struct {
	CodeFragment
}

// NormalizeFragment repairs fragment text and keeps its language tag.
func NormalizeFragment(fragment CodeFragment) NormalizedFragment {
	fragment.Text = Normalize(fragment.Text)
	return NormalizedFragment{CodeFragment: fragment}
}

// Normalize repairs malformed fragment text.
//
// A verb repeated at line start is collapsed to one occurrence and repeated
// "<name>: undefined" lines are dropped after the first one for each name.
// All other lines are kept verbatim and in order.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	seen := make(map[string]struct{})

	for _, line := range lines {
		line = collapseRepeatedVerb(line)

		if name, ok := placeholderHeaderName(line); ok {
			if _, exists := seen[name]; exists {
				continue
			}

			seen[name] = struct{}{}
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// collapseRepeatedVerb turns "GET GET /x" into "GET /x" for a verb at line start.
func collapseRepeatedVerb(line string) string {
	verb, ok := leadingVerb(line)
	if !ok {
		return line
	}

	end := len(verb)
	for {
		tail := line[end:]
		rest := strings.TrimLeft(tail, " \t")
		if len(rest) == len(tail) || !hasVerbToken(rest, verb) {
			break
		}

		end = len(line) - len(rest) + len(verb)
	}

	if end == len(verb) {
		return line
	}

	return string(verb) + line[end:]
}

// leadingVerb returns verb token placed at the very start of line.
func leadingVerb(line string) (Verb, bool) {
	for _, verb := range httpVerbs {
		if hasVerbToken(line, verb) {
			return verb, true
		}
	}

	return "", false
}

// hasVerbToken reports whether text starts with verb as a whole token.
func hasVerbToken(text string, verb Verb) bool {
	if !strings.HasPrefix(text, string(verb)) {
		return false
	}

	return len(text) == len(verb) || !isWordByte(text[len(verb)])
}

// isWordByte reports whether b belongs to an identifier-like token.
func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '_':
		return true
	default:
		return false
	}
}

// placeholderHeaderName extracts name from a "<name>: undefined" line.
func placeholderHeaderName(line string) (string, bool) {
	name, value, ok := strings.Cut(line, ":")
	if !ok || strings.Contains(value, ":") {
		return "", false
	}

	if strings.TrimSpace(value) != undefinedMarker {
		return "", false
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}

	return name, true
}
