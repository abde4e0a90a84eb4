// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// defaultTitle is used when neither caller nor descriptor provide a title.
	defaultTitle = "API reference"
	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName = templatePageName
	// defaultWrapWidth wraps plain description paragraphs at this width.
	defaultWrapWidth = 80
	// defaultListMarker is used when caller does not provide list marker style.
	defaultListMarker = "*"
)

const (
	templatePageName    = "page"
	templateCompactName = "compact"
)

const (
	// FormatMarkdown renders deterministic CommonMark with GFM tables.
	FormatMarkdown OutputFormat = "markdown"
	// FormatHTML renders HTML with highlighted code blocks and striped table rows.
	FormatHTML OutputFormat = "html"
	// FormatTerminal renders ANSI-styled text for terminal output.
	FormatTerminal OutputFormat = "terminal"
)

// OutputFormat selects final document representation.
type OutputFormat string

// Options configures documentation rendering.
type Options struct {
	// Title overrides document title.
	Title string
	// SourcePath is shown as descriptor origin; RenderFile fills it from path.
	SourcePath string
	// TemplateName selects built-in template: "page" or "compact".
	TemplateName string
	// TemplateText is custom text/template source and wins over TemplateName.
	TemplateText string
	// ListMarker is "*" or "-" for unordered lists in descriptions.
	ListMarker string
	// Format selects output representation; empty means markdown.
	Format OutputFormat
	// PayloadFormat selects generated payload encoding; empty means JSON.
	PayloadFormat PayloadFormat
	// SectionOrder overrides section order name of every endpoint when set.
	SectionOrder string
	// WrapWidth wraps description paragraphs and terminal output.
	WrapWidth int
	// GeneratePayloads fills missing response examples from response parameters.
	GeneratePayloads bool
}

// RenderFile reads descriptor from file and renders documentation.
func RenderFile(path string, opt Options) (string, error) {
	doc, err := LoadDocumentFile(path)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(opt.SourcePath) == "" {
		opt.SourcePath = path
	}

	return RenderDocument(doc, opt)
}

// Render converts descriptor bytes into documentation in requested format.
func Render(descriptor []byte, opt Options) (string, error) {
	doc, err := ParseDocument(descriptor)
	if err != nil {
		return "", err
	}

	return RenderDocument(doc, opt)
}

// RenderDocument renders already loaded descriptor document.
func RenderDocument(doc Document, opt Options) (string, error) {
	format, err := normalizeFormat(opt.Format)
	if err != nil {
		return "", err
	}

	markdown, err := renderMarkdown(doc, opt)
	if err != nil {
		return "", err
	}

	switch format {
	case FormatHTML:
		return renderHTML(markdown)
	case FormatTerminal:
		return renderTerminal(markdown, normalizeWrapWidth(opt.WrapWidth))
	default:
		return markdown, nil
	}
}

// renderMarkdown executes selected template over document view.
func renderMarkdown(doc Document, opt Options) (string, error) {
	view, err := buildRenderView(doc, opt)
	if err != nil {
		return "", err
	}

	markdownTemplate, err := resolveTemplate(opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := markdownTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// normalizeFormat validates output format and falls back to markdown.
func normalizeFormat(format OutputFormat) (OutputFormat, error) {
	normalized := OutputFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case "", "md":
		return FormatMarkdown, nil
	case FormatMarkdown, FormatHTML, FormatTerminal:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownOutputFormat, format)
	}
}

// OutputFormatNames returns all accepted output format names.
func OutputFormatNames() []string {
	return []string{string(FormatHTML), string(FormatMarkdown), string(FormatTerminal)}
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}
