// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"errors"
	"slices"
	"testing"
)

func TestSectionParametersFirstSeenOrder(t *testing.T) {
	t.Parallel()

	entries := []ParameterEntry{
		{Name: "b1", Section: "B"},
		{Name: "a1", Section: "A"},
		{Name: "b2", Section: "B"},
	}

	sections := SectionParameters(entries, nil)
	if got := sectionNames(sections); !slices.Equal(got, []string{"B", "A"}) {
		t.Fatalf("sections = %v, want [B A]", got)
	}

	if got := entryNames(sections[0].Entries); !slices.Equal(got, []string{"b1", "b2"}) {
		t.Fatalf("B entries = %v, want [b1 b2]", got)
	}
}

func TestSectionParametersDefaultBucket(t *testing.T) {
	t.Parallel()

	entries := []ParameterEntry{
		{Name: "id"},
		{Name: "name", Section: "Hotel"},
		{Name: "slug", Section: "   "},
	}

	sections := SectionParameters(entries, nil)
	if got := sectionNames(sections); !slices.Equal(got, []string{DefaultSectionName, "Hotel"}) {
		t.Fatalf("sections = %v", got)
	}

	if got := entryNames(sections[0].Entries); !slices.Equal(got, []string{"id", "slug"}) {
		t.Fatalf("default entries = %v", got)
	}
}

func TestSectionParametersPriorityOrder(t *testing.T) {
	t.Parallel()

	priority, err := SectionPriorityByName(SectionOrderHotel)
	if err != nil {
		t.Fatalf("SectionPriorityByName: %v", err)
	}

	entries := []ParameterEntry{
		{Name: "photo", Section: "Images"},
		{Name: "extra", Section: "Misc"},
		{Name: "city", Section: "Location"},
		{Name: "id"},
		{Name: "other", Section: "Zeta"},
		{Name: "name", Section: "Hotel"},
	}

	got := sectionNames(SectionParameters(entries, priority))
	want := []string{DefaultSectionName, "Hotel", "Location", "Images", "Misc", "Zeta"}
	if !slices.Equal(got, want) {
		t.Fatalf("sections = %v, want %v", got, want)
	}
}

func TestSectionParametersGroupsPriority(t *testing.T) {
	t.Parallel()

	priority, err := SectionPriorityByName("GROUPS")
	if err != nil {
		t.Fatalf("SectionPriorityByName: %v", err)
	}

	entries := []ParameterEntry{
		{Name: "url", Section: "images"},
		{Name: "id", Section: "root"},
	}

	got := sectionNames(SectionParameters(entries, priority))
	if !slices.Equal(got, []string{"root", "images"}) {
		t.Fatalf("sections = %v", got)
	}
}

func TestSectionParametersPreservesEntries(t *testing.T) {
	t.Parallel()

	priority, _ := SectionPriorityByName(SectionOrderHotel)
	entries := []ParameterEntry{
		{Name: "a", Section: "Rooms"},
		{Name: "b"},
		{Name: "c", Section: "Rooms"},
		{Name: "d", Section: "Rates"},
		{Name: "e"},
		{Name: "f", Section: "Unknown"},
	}

	for _, currentPriority := range []SectionPriority{nil, priority} {
		sections := SectionParameters(entries, currentPriority)

		total := 0
		seen := make(map[string]int)
		for _, section := range sections {
			for _, entry := range section.Entries {
				total++
				seen[entry.Name]++
				if entrySectionName(entry) != section.Name {
					t.Fatalf("entry %q in bucket %q", entry.Name, section.Name)
				}
			}
		}

		if total != len(entries) {
			t.Fatalf("total entries = %d, want %d", total, len(entries))
		}

		for _, entry := range entries {
			if seen[entry.Name] != 1 {
				t.Fatalf("entry %q seen %d times", entry.Name, seen[entry.Name])
			}
		}
	}
}

func TestSectionParametersEmpty(t *testing.T) {
	t.Parallel()

	if got := SectionParameters(nil, nil); len(got) != 0 {
		t.Fatalf("SectionParameters(nil) = %v, want empty", got)
	}
}

func TestSectionPriorityByNameReturnsCopy(t *testing.T) {
	t.Parallel()

	first, err := SectionPriorityByName(SectionOrderHotel)
	if err != nil {
		t.Fatalf("SectionPriorityByName: %v", err)
	}

	first["Hotel"] = 100

	second, _ := SectionPriorityByName(SectionOrderHotel)
	if second["Hotel"] != 1 {
		t.Fatalf("registered priority map was modified: Hotel=%d", second["Hotel"])
	}
}

func TestSectionPriorityByNameUnknown(t *testing.T) {
	t.Parallel()

	_, err := SectionPriorityByName("alphabetic")
	if !errors.Is(err, ErrUnknownSectionOrder) {
		t.Fatalf("error = %v, want ErrUnknownSectionOrder", err)
	}

	priority, err := SectionPriorityByName("")
	if err != nil || priority != nil {
		t.Fatalf("empty name = %v, %v; want nil, nil", priority, err)
	}
}

func TestShowSectionHeader(t *testing.T) {
	t.Parallel()

	cases := []struct {
		variant   Variant
		sectioned bool
		name      string
		want      bool
	}{
		{variant: VariantRequest, sectioned: false, name: DefaultSectionName, want: false},
		{variant: VariantRequest, sectioned: true, name: DefaultSectionName, want: true},
		{variant: VariantResponse, sectioned: true, name: DefaultSectionName, want: false},
		{variant: VariantResponse, sectioned: true, name: "Hotel", want: true},
		{variant: VariantHeader, sectioned: true, name: "Auth", want: true},
	}

	for _, tc := range cases {
		if got := ShowSectionHeader(tc.variant, tc.sectioned, tc.name); got != tc.want {
			t.Fatalf("ShowSectionHeader(%s, %v, %q) = %v, want %v", tc.variant, tc.sectioned, tc.name, got, tc.want)
		}
	}
}

func TestHasSections(t *testing.T) {
	t.Parallel()

	if HasSections([]ParameterEntry{{Name: "a"}, {Name: "b", Section: " "}}) {
		t.Fatal("blank section tags must not count")
	}

	if !HasSections([]ParameterEntry{{Name: "a"}, {Name: "b", Section: "Rooms"}}) {
		t.Fatal("expected sections")
	}
}

func sectionNames(sections []Section) []string {
	out := make([]string, 0, len(sections))
	for _, section := range sections {
		out = append(out, section.Name)
	}

	return out
}

func entryNames(entries []ParameterEntry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Name)
	}

	return out
}
