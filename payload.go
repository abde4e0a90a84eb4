// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// PayloadFormatJSON encodes generated payload as indented JSON.
	PayloadFormatJSON PayloadFormat = "json"
	// PayloadFormatYAML encodes generated payload as YAML with description comments.
	PayloadFormatYAML PayloadFormat = "yaml"
)

// PayloadFormat configures output format for generated example payload.
type PayloadFormat string

// payloadPlaceholders provides fallback values for parameter types without example.
var payloadPlaceholders = map[string]any{
	"string":  "<string>",
	"integer": 0,
	"int":     0,
	"number":  0,
	"float":   0,
	"boolean": false,
	"bool":    false,
	"object":  map[string]any{},
	"array":   []any{},
}

// GeneratePayload builds an example body from parameter entries.
//
// Entries are applied in input order; dotted names nest into objects and the
// first entry wins for duplicate paths. Values come from entry examples
// (decoded as JSON when valid) or from type placeholders.
func GeneratePayload(entries []ParameterEntry, format PayloadFormat) ([]byte, error) {
	format, err := normalizePayloadFormat(format)
	if err != nil {
		return nil, err
	}

	root, err := buildPayloadNode(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", payloadEncodeError(format), err)
	}

	switch format {
	case PayloadFormatYAML:
		data, err := marshalPayloadYAMLNode(root)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodePayloadYAML, err)
		}

		return data, nil
	default:
		var out bytes.Buffer
		if err := writePayloadJSON(&out, root, 0); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodePayloadJSON, err)
		}

		out.WriteByte('\n')
		return out.Bytes(), nil
	}
}

// normalizePayloadFormat validates and normalizes caller format value.
func normalizePayloadFormat(format PayloadFormat) (PayloadFormat, error) {
	normalized := PayloadFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case "":
		return PayloadFormatJSON, nil
	case PayloadFormatJSON, PayloadFormatYAML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownPayloadFormat, format)
	}
}

// payloadEncodeError selects encode sentinel for format.
func payloadEncodeError(format PayloadFormat) error {
	if format == PayloadFormatYAML {
		return ErrEncodePayloadYAML
	}

	return ErrEncodePayloadJSON
}

// buildPayloadNode materializes ordered mapping node from entries.
func buildPayloadNode(entries []ParameterEntry) (*yaml.Node, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, entry := range entries {
		path := payloadPath(entry.Name)
		if len(path) == 0 {
			continue
		}

		parent, ok := ensurePayloadParent(root, path[:len(path)-1])
		if !ok {
			continue
		}

		key := path[len(path)-1]
		if mappingValue(parent, key) != nil {
			continue
		}

		value, err := yamlNodeForValue(payloadValue(entry))
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", entry.Name, err)
		}

		keyNode := yamlScalarNode("!!str", key)
		keyNode.HeadComment = normalizeYAMLComment(entry.Description)
		parent.Content = append(parent.Content, keyNode, value)
	}

	return root, nil
}

// payloadPath splits dotted parameter name into non-empty segments.
func payloadPath(name string) []string {
	parts := strings.Split(strings.TrimSpace(name), ".")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		out = append(out, part)
	}

	return out
}

// ensurePayloadParent walks or creates nested mappings for path.
func ensurePayloadParent(root *yaml.Node, path []string) (*yaml.Node, bool) {
	current := root
	for _, key := range path {
		next := mappingValue(current, key)
		if next == nil {
			next = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			current.Content = append(current.Content, yamlScalarNode("!!str", key), next)
		}

		if next.Kind != yaml.MappingNode {
			return nil, false
		}

		current = next
	}

	return current, true
}

// mappingValue returns value node stored under key in mapping node.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for index := 0; index+1 < len(node.Content); index += 2 {
		if node.Content[index].Value == key {
			return node.Content[index+1]
		}
	}

	return nil
}

// payloadValue returns decoded example value or type placeholder.
func payloadValue(entry ParameterEntry) any {
	example := strings.TrimSpace(entry.Example)
	if example != "" {
		decoder := json.NewDecoder(strings.NewReader(example))
		decoder.UseNumber()

		var value any
		if err := decoder.Decode(&value); err == nil && !decoder.More() {
			return value
		}

		return example
	}

	value, _ := scalarPlaceholder(entry.Type)
	return value
}

// scalarPlaceholder returns placeholder for type name such as "string" or "array[string]".
func scalarPlaceholder(typeName string) (any, bool) {
	typeName = strings.ToLower(strings.TrimSpace(typeName))
	if cut := strings.IndexAny(typeName, "[<( "); cut > 0 {
		typeName = typeName[:cut]
	}

	value, ok := payloadPlaceholders[typeName]
	return value, ok
}

// normalizeYAMLComment converts multi-line description into YAML head comment text.
func normalizeYAMLComment(comment string) string {
	comment = normalizeLineEndings(strings.TrimSpace(comment))
	if comment == "" {
		return ""
	}

	lines := strings.Split(comment, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n")
}

// marshalPayloadYAMLNode encodes node as YAML document with two-space indent.
func marshalPayloadYAMLNode(node *yaml.Node) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// writePayloadJSON writes node as indented JSON preserving mapping key order.
func writePayloadJSON(out *bytes.Buffer, node *yaml.Node, depth int) error {
	switch node.Kind {
	case yaml.MappingNode:
		if len(node.Content) == 0 {
			out.WriteString("{}")
			return nil
		}

		out.WriteString("{\n")
		for index := 0; index+1 < len(node.Content); index += 2 {
			if index > 0 {
				out.WriteString(",\n")
			}

			writeJSONIndent(out, depth+1)
			key, err := marshalJSONString(node.Content[index].Value)
			if err != nil {
				return err
			}

			out.WriteString(key)
			out.WriteString(": ")
			if err := writePayloadJSON(out, node.Content[index+1], depth+1); err != nil {
				return err
			}
		}

		out.WriteByte('\n')
		writeJSONIndent(out, depth)
		out.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			out.WriteString("[]")
			return nil
		}

		out.WriteString("[\n")
		for index, item := range node.Content {
			if index > 0 {
				out.WriteString(",\n")
			}

			writeJSONIndent(out, depth+1)
			if err := writePayloadJSON(out, item, depth+1); err != nil {
				return err
			}
		}

		out.WriteByte('\n')
		writeJSONIndent(out, depth)
		out.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			out.WriteString("null")
		case "!!bool", "!!int", "!!float":
			out.WriteString(node.Value)
		default:
			value, err := marshalJSONString(node.Value)
			if err != nil {
				return err
			}

			out.WriteString(value)
		}

		return nil

	default:
		return fmt.Errorf("unsupported yaml node kind %d", node.Kind)
	}
}

// writeJSONIndent writes two spaces per depth level.
func writeJSONIndent(out *bytes.Buffer, depth int) {
	out.WriteString(strings.Repeat("  ", depth))
}

// marshalJSONString encodes string without HTML escaping.
func marshalJSONString(value string) (string, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(value); err != nil {
		return "", err
	}

	return strings.TrimRight(out.String(), "\n"), nil
}

// yamlNodeForValue converts decoded JSON-like value into YAML node tree.
func yamlNodeForValue(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil

	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil

	case string:
		return yamlScalarNode("!!str", typed), nil

	case json.Number:
		if int64Value, err := typed.Int64(); err == nil {
			return yamlScalarNode("!!int", strconv.FormatInt(int64Value, 10)), nil
		}

		float64Value, err := typed.Float64()
		if err != nil {
			return nil, err
		}

		return yamlScalarNode("!!float", strconv.FormatFloat(float64Value, 'g', -1, 64)), nil

	case int:
		return yamlScalarNode("!!int", strconv.Itoa(typed)), nil

	case float64:
		return yamlScalarNode("!!float", strconv.FormatFloat(typed, 'g', -1, 64)), nil

	case map[string]any:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range sortedKeys(typed) {
			valueNode, err := yamlNodeForValue(typed[key])
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, yamlScalarNode("!!str", key), valueNode)
		}

		return node, nil

	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			valueNode, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, valueNode)
		}

		return node, nil

	default:
		return nil, fmt.Errorf("unsupported example value type %T", value)
	}
}

// yamlScalarNode builds one tagged scalar node.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}

// sortedKeys returns deterministic sorted keys of decoded JSON object.
func sortedKeys(values map[string]any) []string {
	out := make([]string, 0, len(values))
	for key := range values {
		out = append(out, key)
	}

	sort.Strings(out)
	return out
}
