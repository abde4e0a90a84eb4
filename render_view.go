// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"strings"
)

// renderView is the root view model passed to markdown templates.
type renderView struct {
	Title       string
	Description string
	SourcePath  string
	ListMarker  string
	Endpoints   []endpointView
}

// endpointView represents one endpoint section in markdown output.
type endpointView struct {
	Title       string
	Signature   string
	Method      string
	URL         string
	Description string
	Request     *fragmentView
	Response    *fragmentView
	Examples    []exampleView
	Headers     *parameterTableView
	Parameters  *parameterTableView
	Fields      *parameterTableView
}

// fragmentView is one fenced code block with normalized text.
type fragmentView struct {
	Language string
	Fence    string
	Code     string
}

// exampleView is one client example in canonical order.
type exampleView struct {
	Label string
	fragmentView
}

// parameterTableView is one variant table split into section tables.
type parameterTableView struct {
	Variant  string
	Headings []string
	Sections []sectionView
}

// sectionView is one section table with optional heading.
type sectionView struct {
	Name       string
	ShowHeader bool
	Rows       []rowView
}

// rowView is one projected table row.
type rowView struct {
	Stripe string
	Cells  []string
}

// buildRenderView prepares data for markdown template rendering.
func buildRenderView(doc Document, opt Options) (renderView, error) {
	if err := doc.Validate(); err != nil {
		return renderView{}, err
	}

	title := sanitizeText(opt.Title)
	if title == "" {
		title = sanitizeText(doc.Title)
	}

	if title == "" {
		title = defaultTitle
	}

	wrapWidth := normalizeWrapWidth(opt.WrapWidth)
	listMarker := normalizeListMarker(opt.ListMarker)

	view := renderView{
		Title:       title,
		Description: formatDescriptionMarkdown(doc.Description, wrapWidth, listMarker),
		SourcePath:  strings.TrimSpace(opt.SourcePath),
		ListMarker:  listMarker,
		Endpoints:   make([]endpointView, 0, len(doc.Endpoints)),
	}

	for _, endpoint := range doc.Endpoints {
		item, err := buildEndpointView(endpoint, opt, wrapWidth, listMarker)
		if err != nil {
			return renderView{}, err
		}

		view.Endpoints = append(view.Endpoints, item)
	}

	return view, nil
}

// buildEndpointView runs one endpoint through normalize, order, section and project stages.
func buildEndpointView(endpoint Endpoint, opt Options, wrapWidth int, listMarker string) (endpointView, error) {
	orderName := endpoint.SectionOrder
	if strings.TrimSpace(opt.SectionOrder) != "" {
		orderName = opt.SectionOrder
	}

	priority, err := SectionPriorityByName(orderName)
	if err != nil {
		return endpointView{}, err
	}

	view := endpointView{
		Title:       endpoint.DisplayTitle(),
		Signature:   endpoint.Signature(),
		Method:      strings.ToUpper(strings.TrimSpace(endpoint.Method)),
		URL:         strings.TrimSpace(endpoint.URL),
		Description: formatDescriptionMarkdown(endpoint.Description, wrapWidth, listMarker),
		Headers:     buildParameterTable(endpoint.Headers, VariantHeader, priority),
		Parameters:  buildParameterTable(endpoint.RequestParameters, VariantRequest, priority),
		Fields:      buildParameterTable(endpoint.ResponseParameters, VariantResponse, priority),
	}

	if request, ok := endpoint.RequestFragment(); ok {
		view.Request = buildFragmentView(request)
	}

	response, err := responseFragment(endpoint, opt)
	if err != nil {
		return endpointView{}, err
	}

	view.Response = response

	for _, example := range OrderExamples(endpoint.Examples) {
		fragment := buildFragmentView(CodeFragment{Text: example.Code, Language: example.Language})
		if fragment == nil {
			continue
		}

		view.Examples = append(view.Examples, exampleView{
			Label:        sanitizeText(ResolveLabel(example)),
			fragmentView: *fragment,
		})
	}

	return view, nil
}

// responseFragment returns explicit response or generated payload when enabled.
func responseFragment(endpoint Endpoint, opt Options) (*fragmentView, error) {
	if strings.TrimSpace(endpoint.Response.Text) != "" {
		fragment := endpoint.Response
		if strings.TrimSpace(fragment.Language) == "" {
			fragment.Language = LanguageJSON
		}

		return buildFragmentView(fragment), nil
	}

	if !opt.GeneratePayloads || len(endpoint.ResponseParameters) == 0 {
		return nil, nil
	}

	format, err := normalizePayloadFormat(opt.PayloadFormat)
	if err != nil {
		return nil, err
	}

	payload, err := GeneratePayload(endpoint.ResponseParameters, format)
	if err != nil {
		return nil, err
	}

	return buildFragmentView(CodeFragment{Text: string(payload), Language: string(format)}), nil
}

// buildFragmentView normalizes fragment and picks a safe fence; nil for blank text.
func buildFragmentView(fragment CodeFragment) *fragmentView {
	normalized := NormalizeFragment(CodeFragment{
		Text:     strings.TrimRight(normalizeLineEndings(fragment.Text), "\n"),
		Language: fragment.Language,
	})

	if strings.TrimSpace(normalized.Text) == "" {
		return nil
	}

	return &fragmentView{
		Language: fenceLanguage(normalized.Language),
		Fence:    codeFence(normalized.Text),
		Code:     normalized.Text,
	}
}

// fenceLanguage keeps first word of language tag for code fence info string.
func fenceLanguage(language string) string {
	fields := strings.Fields(language)
	if len(fields) == 0 {
		return ""
	}

	return strings.ReplaceAll(fields[0], "`", "")
}

// buildParameterTable groups and projects entries into section tables; nil for empty list.
func buildParameterTable(entries []ParameterEntry, variant Variant, priority SectionPriority) *parameterTableView {
	if len(entries) == 0 {
		return nil
	}

	columns := DefaultColumns(variant)
	sectioned := HasSections(entries)
	sections := SectionParameters(entries, priority)

	headings := TableHeadings(variant, columns...)
	table := &parameterTableView{
		Variant:  string(variant),
		Headings: headings,
		Sections: make([]sectionView, 0, len(sections)),
	}

	for _, section := range sections {
		current := sectionView{
			Name:       sanitizeText(section.Name),
			ShowHeader: ShowSectionHeader(variant, sectioned, section.Name),
			Rows:       make([]rowView, 0, len(section.Entries)),
		}

		for index, entry := range section.Entries {
			current.Rows = append(current.Rows, rowView{
				Stripe: RowStripe(index),
				Cells:  tableCells(headings, ProjectRow(entry, variant, columns...)),
			})
		}

		table.Sections = append(table.Sections, current)
	}

	return table
}

// literalCellHeadings lists columns whose cells are plain literals rather than markdown.
var literalCellHeadings = map[string]bool{
	"Type":     true,
	"Required": true,
	"Value":    true,
}

// tableCells escapes projected cells for one GFM table row.
func tableCells(headings, cells []string) []string {
	out := make([]string, len(cells))
	for index, cell := range cells {
		if index < len(headings) && literalCellHeadings[headings[index]] {
			cell = escapeMarkdownText(cell)
		}

		out[index] = escapeTableCell(cell)
	}

	return out
}
