// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Variant selects how a parameter table interprets its entries.
type Variant string

const (
	// VariantRequest renders request parameters with strict boolean required flag.
	VariantRequest Variant = "request"
	// VariantResponse renders response fields; required flag is never displayed.
	VariantResponse Variant = "response"
	// VariantHeader renders headers with tri-state required text and literal value.
	VariantHeader Variant = "header"
)

// ParameterEntry is one row of a parameter, response field, or header table.
//
// The table variant is chosen by the caller; Required is interpreted per variant.
type ParameterEntry struct {
	Name        string      `json:"name" yaml:"name"`
	Type        string      `json:"type" yaml:"type"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Section     string      `json:"section,omitempty" yaml:"section,omitempty"`
	Required    Requirement `json:"required,omitzero" yaml:"required,omitempty"`
	Example     string      `json:"example,omitempty" yaml:"example,omitempty"`
	Value       string      `json:"value,omitempty" yaml:"value,omitempty"`
	Nullable    bool        `json:"nullable,omitempty" yaml:"nullable,omitempty"`
}

// Requirement keeps the "required" marker exactly as written in descriptor.
type Requirement struct {
	Text string
	Set  bool
}

// RequiredFlag builds requirement from strict boolean.
func RequiredFlag(required bool) Requirement {
	return Requirement{Text: strconv.FormatBool(required), Set: true}
}

// RequiredText builds requirement from display text such as "Yes" or "Optional".
func RequiredText(text string) Requirement {
	return Requirement{Text: text, Set: true}
}

// Bool interprets requirement as strict boolean; unknown text is false.
func (requirement Requirement) Bool() bool {
	switch strings.ToLower(strings.TrimSpace(requirement.Text)) {
	case "true", "yes", "y", "1", "required":
		return true
	default:
		return false
	}
}

// IsZero reports whether requirement was never set, for omitempty encoding.
func (requirement Requirement) IsZero() bool {
	return !requirement.Set
}

// UnmarshalYAML accepts any scalar; null leaves requirement unset.
func (requirement *Requirement) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("required: expected scalar at line %d", node.Line)
	}

	if node.Tag == "!!null" {
		*requirement = Requirement{}
		return nil
	}

	*requirement = Requirement{Text: node.Value, Set: true}
	return nil
}

// MarshalYAML writes requirement back as boolean when possible.
func (requirement Requirement) MarshalYAML() (any, error) {
	if !requirement.Set {
		return nil, nil
	}

	if value, err := strconv.ParseBool(requirement.Text); err == nil {
		return value, nil
	}

	return requirement.Text, nil
}

// UnmarshalJSON accepts boolean, string, or null.
func (requirement *Requirement) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*requirement = Requirement{}
		return nil
	}

	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*requirement = RequiredFlag(flag)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("required: expected boolean or string: %w", err)
	}

	*requirement = RequiredText(text)
	return nil
}

// MarshalJSON writes requirement back as boolean when possible.
func (requirement Requirement) MarshalJSON() ([]byte, error) {
	value, err := requirement.MarshalYAML()
	if err != nil {
		return nil, err
	}

	return json.Marshal(value)
}
