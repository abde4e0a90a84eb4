// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a descriptor root with one or more endpoints.
type Document struct {
	Title       string     `json:"title,omitempty" yaml:"title,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Endpoints   []Endpoint `json:"endpoints" yaml:"endpoints"`
}

// Endpoint describes one API operation as supplied by descriptor authors.
type Endpoint struct {
	Title              string           `json:"title,omitempty" yaml:"title,omitempty"`
	Description        string           `json:"description,omitempty" yaml:"description,omitempty"`
	Method             string           `json:"method" yaml:"method"`
	URL                string           `json:"url" yaml:"url"`
	SectionOrder       string           `json:"section_order,omitempty" yaml:"section_order,omitempty"`
	Headers            []ParameterEntry `json:"headers,omitempty" yaml:"headers,omitempty"`
	RequestParameters  []ParameterEntry `json:"request_parameters,omitempty" yaml:"request_parameters,omitempty"`
	ResponseParameters []ParameterEntry `json:"response_parameters,omitempty" yaml:"response_parameters,omitempty"`
	Request            CodeFragment     `json:"request,omitzero" yaml:"request,omitempty"`
	Response           CodeFragment     `json:"response,omitzero" yaml:"response,omitempty"`
	Examples           []CodeExample    `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// UnmarshalYAML accepts fragment as plain text scalar or as {text, language} mapping.
func (fragment *CodeFragment) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		if node.Tag == "!!null" {
			*fragment = CodeFragment{}
			return nil
		}

		*fragment = CodeFragment{Text: node.Value}
		return nil
	}

	type plain CodeFragment
	var decoded plain
	if err := node.Decode(&decoded); err != nil {
		return err
	}

	*fragment = CodeFragment(decoded)
	return nil
}

// LoadDocumentFile reads and parses descriptor file.
func LoadDocumentFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrReadDescriptorFile, err)
	}

	return ParseDocument(data)
}

// ParseDocument decodes YAML or JSON descriptor and validates its shape.
//
// A root without "endpoints" is accepted as a single endpoint object.
func ParseDocument(data []byte) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, ErrEmptyDescriptor
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrDecodeDescriptor, err)
	}

	if len(doc.Endpoints) == 0 {
		var endpoint Endpoint
		if err := yaml.Unmarshal(data, &endpoint); err != nil {
			return Document{}, fmt.Errorf("%w: %w", ErrDecodeDescriptor, err)
		}

		if strings.TrimSpace(endpoint.Method) != "" || strings.TrimSpace(endpoint.URL) != "" {
			doc.Endpoints = []Endpoint{endpoint}
			doc.Title = ""
			doc.Description = ""
		}
	}

	if err := doc.Validate(); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Validate checks descriptor shape required by the rendering pipeline.
func (doc Document) Validate() error {
	if len(doc.Endpoints) == 0 {
		return ErrEmptyDescriptor
	}

	for index, endpoint := range doc.Endpoints {
		if err := endpoint.Validate(); err != nil {
			return fmt.Errorf("endpoint %d: %w", index, err)
		}
	}

	return nil
}

// Validate checks endpoint parameter lists and section order name.
func (endpoint Endpoint) Validate() error {
	if _, err := SectionPriorityByName(endpoint.SectionOrder); err != nil {
		return fmt.Errorf("%s: %w", endpoint.DisplayTitle(), err)
	}

	lists := []struct {
		name    string
		entries []ParameterEntry
	}{
		{name: "headers", entries: endpoint.Headers},
		{name: "request_parameters", entries: endpoint.RequestParameters},
		{name: "response_parameters", entries: endpoint.ResponseParameters},
	}

	for _, list := range lists {
		for index, entry := range list.entries {
			if strings.TrimSpace(entry.Name) == "" && strings.TrimSpace(entry.Type) == "" {
				return fmt.Errorf("%w: %s %s[%d]", ErrMalformedParameter, endpoint.DisplayTitle(), list.name, index)
			}
		}
	}

	return nil
}

// DisplayTitle returns endpoint title or "METHOD URL" when title is empty.
func (endpoint Endpoint) DisplayTitle() string {
	if title := sanitizeText(endpoint.Title); title != "" {
		return title
	}

	return endpoint.Signature()
}

// Signature returns upper-cased method and URL joined by space.
func (endpoint Endpoint) Signature() string {
	method := strings.ToUpper(strings.TrimSpace(endpoint.Method))
	url := strings.TrimSpace(endpoint.URL)
	return strings.TrimSpace(method + " " + url)
}

// RequestFragment returns explicit request example or one composed from method, URL and headers.
//
// Headers without value or example are written with the undefined marker, the
// way upstream descriptor loaders emit them; Normalize drops repeated ones.
func (endpoint Endpoint) RequestFragment() (CodeFragment, bool) {
	if strings.TrimSpace(endpoint.Request.Text) != "" {
		fragment := endpoint.Request
		if strings.TrimSpace(fragment.Language) == "" {
			fragment.Language = LanguageHTTP
		}

		return fragment, true
	}

	method := strings.ToUpper(strings.TrimSpace(endpoint.Method))
	url := strings.TrimSpace(endpoint.URL)
	if method == "" || url == "" {
		return CodeFragment{}, false
	}

	lines := make([]string, 0, len(endpoint.Headers)+1)
	lines = append(lines, method+" "+url+" HTTP/1.1")
	for _, header := range endpoint.Headers {
		name := strings.TrimSpace(header.Name)
		if name == "" {
			continue
		}

		value := strings.TrimSpace(header.Value)
		if value == "" {
			value = strings.TrimSpace(header.Example)
		}

		if value == "" {
			value = undefinedMarker
		}

		lines = append(lines, name+": "+value)
	}

	return CodeFragment{Text: strings.Join(lines, "\n"), Language: LanguageHTTP}, true
}
