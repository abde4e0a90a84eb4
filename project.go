// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"slices"
	"strings"
)

// Column is an optional parameter table column.
type Column string

const (
	ColumnRequired Column = "required"
	ColumnValue    Column = "value"
	ColumnExample  Column = "example"
)

// placeholderCell fills cells without a displayable value.
const placeholderCell = "-"

// columnOrder is the fixed display order of optional columns.
var columnOrder = []Column{ColumnRequired, ColumnValue, ColumnExample}

// columnHeadings maps optional columns to table headings.
var columnHeadings = map[Column]string{
	ColumnRequired: "Required",
	ColumnValue:    "Value",
	ColumnExample:  "Example",
}

// variantColumns lists default optional columns per table variant.
var variantColumns = map[Variant][]Column{
	VariantHeader:   {ColumnRequired, ColumnValue},
	VariantRequest:  {ColumnRequired, ColumnExample},
	VariantResponse: {ColumnExample},
}

// DefaultColumns returns optional columns rendered by default for variant.
func DefaultColumns(variant Variant) []Column {
	return append([]Column(nil), variantColumns[variant]...)
}

// TableHeadings returns headings matching ProjectRow cells for the same arguments.
func TableHeadings(variant Variant, columns ...Column) []string {
	active := activeColumns(variant, columns)
	out := make([]string, 0, len(active)+3)
	out = append(out, "Name", "Type")
	for _, column := range active {
		out = append(out, columnHeadings[column])
	}

	return append(out, "Description")
}

// ProjectRow maps one entry to display cells: name, type, requested optional
// columns in fixed order, then description.
//
// Value applies to header tables only, example to request and response tables
// only; requested columns that do not apply to variant are omitted.
func ProjectRow(entry ParameterEntry, variant Variant, columns ...Column) []string {
	active := activeColumns(variant, columns)
	out := make([]string, 0, len(active)+3)
	out = append(out, inlineCode(entry.Name), orPlaceholder(entry.Type))

	for _, column := range active {
		switch column {
		case ColumnRequired:
			out = append(out, requiredCell(entry, variant))
		case ColumnValue:
			out = append(out, orPlaceholder(entry.Value))
		case ColumnExample:
			if strings.TrimSpace(entry.Example) == "" {
				out = append(out, placeholderCell)
				continue
			}

			out = append(out, inlineCode(entry.Example))
		}
	}

	return append(out, entry.Description)
}

// RowStripe returns "even" or "odd" for zero-based row index within one table.
func RowStripe(index int) string {
	if index%2 == 0 {
		return "even"
	}

	return "odd"
}

// requiredCell renders required marker by variant.
func requiredCell(entry ParameterEntry, variant Variant) string {
	switch variant {
	case VariantHeader:
		if !entry.Required.Set || strings.TrimSpace(entry.Required.Text) == "" {
			return placeholderCell
		}

		return entry.Required.Text
	case VariantRequest:
		return yesNo(entry.Required.Bool())
	default:
		return placeholderCell
	}
}

// activeColumns filters requested columns by variant and orders them.
func activeColumns(variant Variant, columns []Column) []Column {
	out := make([]Column, 0, len(columnOrder))
	for _, column := range columnOrder {
		if !slices.Contains(columns, column) || !columnApplies(variant, column) {
			continue
		}

		out = append(out, column)
	}

	return out
}

// columnApplies reports whether column is meaningful for variant.
func columnApplies(variant Variant, column Column) bool {
	switch column {
	case ColumnRequired:
		return true
	case ColumnValue:
		return variant == VariantHeader
	case ColumnExample:
		return variant == VariantRequest || variant == VariantResponse
	default:
		return false
	}
}

// orPlaceholder returns trimmed value or placeholder cell when empty.
func orPlaceholder(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return placeholderCell
	}

	return value
}

// yesNo renders bool as "Yes" or "No".
func yesNo(value bool) string {
	if value {
		return "Yes"
	}

	return "No"
}
