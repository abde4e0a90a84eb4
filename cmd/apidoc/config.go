// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// envPrefix is prepended to config keys for environment overrides (APIDOC_WRAP).
const envPrefix = "apidoc"

// configOption is one config key with its default value and meaning.
type configOption struct {
	Key     string
	Default any
	Comment string
}

// configOptions returns render defaults shared by config file and environment.
func configOptions() []configOption {
	return []configOption{
		{Key: "title", Default: "", Comment: "Document title; descriptor title is used when empty"},
		{Key: "template", Default: "page", Comment: "Built-in template name: page or compact"},
		{Key: "template_file", Default: "", Comment: "Path to custom markdown template"},
		{Key: "format", Default: "markdown", Comment: "Output format: markdown, html or terminal"},
		{Key: "wrap", Default: 80, Comment: "Wrap width for descriptions and terminal output"},
		{Key: "list_marker", Default: "*", Comment: "Unordered list marker in descriptions"},
		{Key: "payloads", Default: false, Comment: "Generate response payloads from response parameters"},
		{Key: "payload_format", Default: "json", Comment: "Generated payload format: json or yaml"},
		{Key: "section_order", Default: "", Comment: "Section priority map for all endpoints: hotel or groups"},
	}
}

// loadConfig resolves settings with precedence: defaults < file < env.
//
// A .env file in working directory is loaded into process environment first.
// Unreadable config file is reported as warning and defaults stay in effect.
func loadConfig(path string, stderr io.Writer) *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	for _, option := range configOptions() {
		v.SetDefault(option.Key, option.Default)
	}

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			_, _ = fmt.Fprintf(stderr, "warning: read config %q: %v\n", path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// defaultConfigYAML renders config keys with defaults and comments as YAML document.
func defaultConfigYAML() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, option := range configOptions() {
		var value yaml.Node
		if err := value.Encode(option.Default); err != nil {
			return nil, fmt.Errorf("encode config default %q: %w", option.Key, err)
		}

		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: option.Key, HeadComment: option.Comment},
			&value,
		)
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)
	if err := encoder.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return out.Bytes(), nil
}

// firstNonEmpty returns flag value when set, otherwise config value.
func firstNonEmpty(flagValue, configValue string) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}

	return configValue
}
