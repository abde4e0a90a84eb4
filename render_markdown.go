// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"strings"
	"unicode/utf8"
)

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}

// normalizeWrapWidth validates wrap width and falls back to default.
func normalizeWrapWidth(value int) int {
	if value <= 0 {
		return defaultWrapWidth
	}

	return value
}

// normalizeListMarker validates list marker and falls back to default.
func normalizeListMarker(value string) string {
	switch strings.TrimSpace(value) {
	case "*":
		return "*"
	case "-":
		return "-"
	default:
		return defaultListMarker
	}
}

// inlineCode wraps value into a code span with a fence longer than any backtick run inside.
func inlineCode(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	fence := strings.Repeat("`", longestRun(value, '`')+1)
	if strings.HasPrefix(value, "`") || strings.HasSuffix(value, "`") {
		return fence + " " + value + " " + fence
	}

	return fence + value + fence
}

// codeFence returns a backtick fence longer than any backtick run in code, at least three.
func codeFence(code string) string {
	return strings.Repeat("`", max(3, longestRun(code, '`')+1))
}

// longestRun returns the longest run of char in value.
func longestRun(value string, char byte) int {
	longest, current := 0, 0
	for index := 0; index < len(value); index++ {
		if value[index] != char {
			current = 0
			continue
		}

		current++
		longest = max(longest, current)
	}

	return longest
}

// escapeTableCell keeps cell text on one line and escapes pipe separators.
func escapeTableCell(value string) string {
	value = normalizeLineEndings(value)
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "|", `\|`)
	return strings.TrimSpace(value)
}

// markdownTextEscaper backslash-escapes inline markdown syntax in literal text.
var markdownTextEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"<", `\<`,
	">", `\>`,
	"[", `\[`,
	"]", `\]`,
)

// escapeMarkdownText keeps literal cell text such as "Bearer <token>" from being read as markup.
func escapeMarkdownText(value string) string {
	return markdownTextEscaper.Replace(value)
}

// formatDescriptionMarkdown wraps plain paragraphs and preserves markdown structures.
func formatDescriptionMarkdown(text string, wrapWidth int, listMarker string) string {
	text = strings.TrimSpace(normalizeLineEndings(text))
	if text == "" {
		return ""
	}

	listMarker = normalizeListMarker(listMarker)

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	paragraph := make([]string, 0, 4)
	fence := ""

	flushParagraph := func() {
		if len(paragraph) == 0 {
			return
		}

		out = append(out, wrapParagraph(strings.Join(paragraph, " "), wrapWidth)...)
		paragraph = paragraph[:0]
	}

	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		if next, toggled := toggleFence(fence, trimmed); toggled {
			flushParagraph()
			out = append(out, line)
			fence = next
			continue
		}

		if fence != "" {
			out = append(out, line)
			continue
		}

		switch {
		case trimmed == "":
			flushParagraph()
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}

		case isMarkdownStructuredLine(line):
			flushParagraph()
			normalized := normalizeListLine(line, listMarker)
			if needsBlankBeforeList(normalized, out) {
				out = append(out, "")
			}

			out = append(out, normalized)

		default:
			paragraph = append(paragraph, trimmed)
		}
	}

	flushParagraph()
	return strings.Join(out, "\n")
}

// toggleFence tracks fenced block state for one trimmed line.
//
// An open fence is closed only by a backtick run at least as long as its opener.
func toggleFence(open, trimmed string) (string, bool) {
	if !strings.HasPrefix(trimmed, "```") {
		return open, false
	}

	run := trimmed[:longestPrefixRun(trimmed, '`')]
	if open == "" {
		return run, true
	}

	if len(run) >= len(open) && strings.TrimSpace(trimmed[len(run):]) == "" {
		return "", true
	}

	return open, false
}

// longestPrefixRun counts leading char bytes of value.
func longestPrefixRun(value string, char byte) int {
	count := 0
	for count < len(value) && value[count] == char {
		count++
	}

	return count
}

// needsBlankBeforeList reports whether list line needs a blank separator from previous paragraph line.
func needsBlankBeforeList(line string, out []string) bool {
	if !isListLine(line) || len(out) == 0 {
		return false
	}

	previous := out[len(out)-1]
	if strings.TrimSpace(previous) == "" || isListLine(previous) {
		return false
	}

	return !isMarkdownStructuredLine(previous)
}

// isListLine reports whether line is unordered or ordered markdown list item.
func isListLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if unorderedMarker(trimmed) {
		return true
	}

	return orderedMarkerEnd(trimmed) > 0
}

// isMarkdownStructuredLine reports whether line must bypass normal paragraph wrapping.
func isMarkdownStructuredLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	if isIndentedCodeLine(line) || isListLine(line) {
		return true
	}

	for _, prefix := range []string{"#", ">", "|", "---", "***", "___"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return false
}

// isIndentedCodeLine reports whether line starts with markdown code indentation.
func isIndentedCodeLine(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

// unorderedMarker reports whether trimmed line starts with "-", "*" or "+" and a blank.
func unorderedMarker(trimmed string) bool {
	if len(trimmed) < 2 {
		return false
	}

	switch trimmed[0] {
	case '-', '*', '+':
		return trimmed[1] == ' ' || trimmed[1] == '\t'
	default:
		return false
	}
}

// orderedMarkerEnd returns length of "12." or "3)" marker, or zero when line is not ordered item.
func orderedMarkerEnd(trimmed string) int {
	digits := longestDigitPrefix(trimmed)
	if digits == 0 || digits+1 >= len(trimmed) {
		return 0
	}

	if trimmed[digits] != '.' && trimmed[digits] != ')' {
		return 0
	}

	if trimmed[digits+1] != ' ' && trimmed[digits+1] != '\t' {
		return 0
	}

	return digits + 1
}

// longestDigitPrefix counts leading ASCII digits.
func longestDigitPrefix(value string) int {
	count := 0
	for count < len(value) && value[count] >= '0' && value[count] <= '9' {
		count++
	}

	return count
}

// normalizeListLine rewrites list markers and indentation; other lines pass through.
func normalizeListLine(line, listMarker string) string {
	if isIndentedCodeLine(line) && !isListLine(line) {
		return line
	}

	trimmed := strings.TrimSpace(line)
	indent := strings.Repeat("  ", listIndentLevel(leadingIndentColumns(line)))

	if unorderedMarker(trimmed) {
		return indent + listMarker + " " + strings.TrimSpace(trimmed[1:])
	}

	if end := orderedMarkerEnd(trimmed); end > 0 {
		return indent + trimmed[:end] + " " + strings.TrimSpace(trimmed[end:])
	}

	return line
}

// leadingIndentColumns returns visual indentation width for leading spaces and tabs.
func leadingIndentColumns(line string) int {
	columns := 0
	for _, r := range line {
		switch r {
		case ' ':
			columns++
		case '\t':
			columns += 4
		default:
			return columns
		}
	}

	return columns
}

// listIndentLevel maps raw indentation width to normalized markdown list nesting level.
func listIndentLevel(columns int) int {
	if columns <= 1 {
		return 0
	}

	return columns / 2
}

// wrapParagraph wraps one plain paragraph to max rune width.
func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	out := make([]string, 0, 2)
	current := words[0]
	currentLen := utf8.RuneCountInString(current)

	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}

		out = append(out, current)
		current = word
		currentLen = wordLen
	}

	return append(out, current)
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// normalizeMarkdownOutput collapses extra blank lines outside fenced blocks.
func normalizeMarkdownOutput(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	out := make([]string, 0, len(lines))

	fence := ""
	blank := false
	for _, rawLine := range lines {
		line := rawLine
		if fence == "" {
			line = strings.TrimRight(rawLine, " \t")
		}

		trimmed := strings.TrimSpace(line)
		if next, toggled := toggleFence(fence, trimmed); toggled {
			fence = next
			out = append(out, line)
			blank = false
			continue
		}

		if fence == "" && trimmed == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}

			blank = true
			continue
		}

		blank = false
		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	return strings.TrimRight(value, "\n") + "\n"
}
