// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// DefaultSectionName is the bucket for entries without a section tag.
const DefaultSectionName = "Default"

// Named section priority maps accepted by SectionPriorityByName.
const (
	SectionOrderFirstSeen = ""
	SectionOrderHotel     = "hotel"
	SectionOrderGroups    = "groups"
)

// SectionPriority maps section names to ascending sort priority.
type SectionPriority map[string]int

// Section is one named group of parameter entries in input order.
type Section struct {
	Name    string
	Entries []ParameterEntry
}

// hotelSectionPriority orders sections of hotel-domain response objects.
var hotelSectionPriority = SectionPriority{
	DefaultSectionName: 0,
	"Hotel":            1,
	"Location":         2,
	"Contacts":         3,
	"Rooms":            4,
	"Rates":            5,
	"Amenities":        6,
	"Policies":         7,
	"Images":           8,
}

// groupsSectionPriority orders generic root/images groupings.
var groupsSectionPriority = SectionPriority{
	"root":   1,
	"images": 2,
}

// SectionPriorityByName returns a copy of a registered priority map.
// Empty name selects first-seen order and returns nil map.
func SectionPriorityByName(name string) (SectionPriority, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case SectionOrderFirstSeen:
		return nil, nil
	case SectionOrderHotel:
		return maps.Clone(hotelSectionPriority), nil
	case SectionOrderGroups:
		return maps.Clone(groupsSectionPriority), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownSectionOrder, name)
	}
}

// SectionOrderNames returns all accepted non-empty section order names.
func SectionOrderNames() []string {
	return []string{SectionOrderGroups, SectionOrderHotel}
}

// HasSections reports whether any entry carries a section tag.
func HasSections(entries []ParameterEntry) bool {
	return slices.ContainsFunc(entries, func(entry ParameterEntry) bool {
		return strings.TrimSpace(entry.Section) != ""
	})
}

// SectionParameters groups entries by section.
//
// Without priority, sections follow first appearance in entries. With
// priority, sections sort by ascending priority, unmapped names go last and
// ties keep first-seen order. Entries keep input order inside each section.
func SectionParameters(entries []ParameterEntry, priority SectionPriority) []Section {
	if len(entries) == 0 {
		return nil
	}

	positions := make(map[string]int)
	sections := make([]Section, 0, 4)

	for _, entry := range entries {
		name := entrySectionName(entry)
		position, ok := positions[name]
		if !ok {
			position = len(sections)
			positions[name] = position
			sections = append(sections, Section{Name: name})
		}

		sections[position].Entries = append(sections[position].Entries, entry)
	}

	if len(priority) > 0 {
		slices.SortStableFunc(sections, func(left, right Section) int {
			return cmp.Compare(priority.rank(left.Name), priority.rank(right.Name))
		})
	}

	return sections
}

// ShowSectionHeader reports whether section heading is rendered above its table.
func ShowSectionHeader(variant Variant, sectioned bool, name string) bool {
	if !sectioned {
		return false
	}

	return variant != VariantResponse || name != DefaultSectionName
}

// rank returns section priority or max int for unmapped names.
func (priority SectionPriority) rank(name string) int {
	if value, ok := priority[name]; ok {
		return value
	}

	return math.MaxInt
}

// entrySectionName returns section tag or DefaultSectionName for blank tags.
func entrySectionName(entry ParameterEntry) string {
	if strings.TrimSpace(entry.Section) != "" {
		return entry.Section
	}

	return DefaultSectionName
}
