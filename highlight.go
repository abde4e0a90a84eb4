// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"regexp"
	"strings"
)

// TokenClass is the semantic class attached to one highlighted token.
type TokenClass string

const (
	ClassGet       TokenClass = "http-get"
	ClassPost      TokenClass = "http-post"
	ClassPut       TokenClass = "http-put"
	ClassDelete    TokenClass = "http-delete"
	ClassPatch     TokenClass = "http-patch"
	ClassOtherVerb TokenClass = "http-other"

	ClassProperty TokenClass = "json-property"
	ClassString   TokenClass = "json-string"
	ClassNumber   TokenClass = "json-number"
	ClassBoolean  TokenClass = "json-boolean"
	ClassNull     TokenClass = "json-null"
)

// Language tags that enable highlight passes.
const (
	LanguageHTTP = "http"
	LanguageBash = "bash"
	LanguageJSON = "json"
)

// verbClasses maps verbs with a dedicated class; other verbs use ClassOtherVerb.
var verbClasses = map[Verb]TokenClass{
	VerbGet:    ClassGet,
	VerbPost:   ClassPost,
	VerbPut:    ClassPut,
	VerbDelete: ClassDelete,
	VerbPatch:  ClassPatch,
}

// verbPattern matches any vocabulary verb as a whole token.
var verbPattern = regexp.MustCompile(`\b(?:` + joinVerbs(httpVerbs) + `)\b`)

// highlightRule wraps the second capture group of pattern into a class span.
type highlightRule struct {
	pattern *regexp.Regexp
	class   TokenClass
}

// jsonRules are applied in order; each pass skips spans inserted by earlier passes.
var jsonRules = []highlightRule{
	{pattern: regexp.MustCompile(`()("(?:[^"\\\n]|\\.)*")(:)`), class: ClassProperty},
	{pattern: regexp.MustCompile(`(:[ \t]*)("(?:[^"\\\n]|\\.)*")()`), class: ClassString},
	{pattern: regexp.MustCompile(`(:[ \t]*)(-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)()`), class: ClassNumber},
	{pattern: regexp.MustCompile(`(:[ \t]*)(true|false)\b()`), class: ClassBoolean},
	{pattern: regexp.MustCompile(`(:[ \t]*)(null)\b()`), class: ClassNull},
}

// highlightSpanPattern finds spans inserted by highlight passes.
var highlightSpanPattern = regexp.MustCompile(`<span class="[a-z-]+">.*?</span>`)

// HighlightedFragment is a normalized fragment with markup spans around recognized tokens.
type HighlightedFragment struct {
	NormalizedFragment
	Markup string
}

// HighlightFragment highlights normalized fragment text for its language tag.
func HighlightFragment(fragment NormalizedFragment) HighlightedFragment {
	return HighlightedFragment{
		NormalizedFragment: fragment,
		Markup:             Highlight(fragment.Text, fragment.Language),
	}
}

// Highlight wraps recognized tokens of normalized text into class spans.
//
// Verb rules run only for "http" and "bash" tags, JSON rules only for "json".
// Any other tag returns text unchanged. Markup is purely additive:
// PlainText(Highlight(text, tag)) == text for text without markup of its own.
func Highlight(text, language string) string {
	if text == "" {
		return ""
	}

	switch language {
	case LanguageHTTP, LanguageBash:
		text = highlightVerbs(text)
	}

	if language == LanguageJSON {
		for _, rule := range jsonRules {
			text = rule.applyOutsideSpans(text)
		}
	}

	return text
}

// VerbClass returns semantic class used for verb.
func VerbClass(verb Verb) TokenClass {
	if class, ok := verbClasses[verb]; ok {
		return class
	}

	return ClassOtherVerb
}

// PlainText removes highlight spans from markup and returns the text between them.
//
// Only the exact tags emitted by Highlight are removed; every other byte,
// including a bare "<" of the original text, is kept.
func PlainText(markup string) string {
	if markup == "" {
		return ""
	}

	return spanTagStripper.Replace(markup)
}

// tokenClasses lists every class Highlight may emit.
var tokenClasses = []TokenClass{
	ClassGet, ClassPost, ClassPut, ClassDelete, ClassPatch, ClassOtherVerb,
	ClassProperty, ClassString, ClassNumber, ClassBoolean, ClassNull,
}

// spanTagStripper replaces opening tags of every class and the closing tag with nothing.
var spanTagStripper = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(tokenClasses)+2)
	for _, class := range tokenClasses {
		open, _ := spanTags(class)
		pairs = append(pairs, open, "")
	}

	_, closing := spanTags(ClassGet)
	return strings.NewReplacer(append(pairs, closing, "")...)
}()

// highlightVerbs wraps every whole-token verb into its class span.
func highlightVerbs(text string) string {
	return verbPattern.ReplaceAllStringFunc(text, func(token string) string {
		return wrapToken(VerbClass(Verb(token)), token)
	})
}

// applyOutsideSpans runs rule over text segments not yet wrapped into spans.
func (rule highlightRule) applyOutsideSpans(text string) string {
	spans := highlightSpanPattern.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return rule.apply(text)
	}

	var out strings.Builder
	out.Grow(len(text) + len(spans)*32)

	last := 0
	for _, span := range spans {
		out.WriteString(rule.apply(text[last:span[0]]))
		out.WriteString(text[span[0]:span[1]])
		last = span[1]
	}

	out.WriteString(rule.apply(text[last:]))
	return out.String()
}

// apply wraps the token group of every rule match in segment.
func (rule highlightRule) apply(segment string) string {
	if segment == "" {
		return ""
	}

	open, closing := spanTags(rule.class)
	return rule.pattern.ReplaceAllString(segment, "${1}"+open+"${2}"+closing+"${3}")
}

// wrapToken returns token wrapped into one class span.
func wrapToken(class TokenClass, token string) string {
	open, closing := spanTags(class)
	return open + token + closing
}

// spanTags returns opening and closing markup for class.
func spanTags(class TokenClass) (string, string) {
	return `<span class="` + string(class) + `">`, "</span>"
}

// joinVerbs builds regexp alternation from verb vocabulary.
func joinVerbs(verbs []Verb) string {
	parts := make([]string, 0, len(verbs))
	for _, verb := range verbs {
		parts = append(parts, regexp.QuoteMeta(string(verb)))
	}

	return strings.Join(parts, "|")
}
