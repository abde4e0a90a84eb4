// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// BenchmarkParseDocument measures descriptor decoding and validation cost.
func BenchmarkParseDocument(b *testing.B) {
	descriptor := readBenchmarkFile(b, filepath.Join("testdata", "hotels.yaml"))

	b.ReportAllocs()
	b.SetBytes(int64(len(descriptor)))

	for i := 0; i < b.N; i++ {
		if _, err := ParseDocument(descriptor); err != nil {
			b.Fatalf("ParseDocument: %v", err)
		}
	}
}

// BenchmarkRenderPageTemplate measures full in-memory render flow for page template.
func BenchmarkRenderPageTemplate(b *testing.B) {
	benchmarkRender(b, Options{TemplateName: "page"})
}

// BenchmarkRenderCompactTemplate measures full in-memory render flow for compact template.
func BenchmarkRenderCompactTemplate(b *testing.B) {
	benchmarkRender(b, Options{TemplateName: "compact"})
}

// BenchmarkRenderHTML measures markdown render plus HTML conversion with highlighting.
func BenchmarkRenderHTML(b *testing.B) {
	benchmarkRender(b, Options{Format: FormatHTML, GeneratePayloads: true})
}

// BenchmarkHighlightJSON measures JSON highlight passes over a generated payload.
func BenchmarkHighlightJSON(b *testing.B) {
	doc, err := ParseDocument(readBenchmarkFile(b, filepath.Join("testdata", "hotels.yaml")))
	if err != nil {
		b.Fatalf("ParseDocument: %v", err)
	}

	payload, err := GeneratePayload(doc.Endpoints[0].ResponseParameters, PayloadFormatJSON)
	if err != nil {
		b.Fatalf("GeneratePayload: %v", err)
	}

	text := strings.Repeat(string(payload), 16)

	b.ReportAllocs()
	b.SetBytes(int64(len(text)))

	for i := 0; i < b.N; i++ {
		_ = Highlight(text, LanguageJSON)
	}
}

// BenchmarkNormalize measures verb collapse and undefined header dedup over a large request.
func BenchmarkNormalize(b *testing.B) {
	var builder strings.Builder
	for i := 0; i < 256; i++ {
		builder.WriteString("GET GET /hotels HTTP/1.1\nX-Api-Key: undefined\nAccept: application/json\n")
	}

	text := builder.String()

	b.ReportAllocs()
	b.SetBytes(int64(len(text)))

	for i := 0; i < b.N; i++ {
		_ = Normalize(text)
	}
}

// benchmarkRender runs common in-memory benchmark with selected options.
func benchmarkRender(b *testing.B, options Options) {
	descriptor := readBenchmarkFile(b, filepath.Join("testdata", "hotels.yaml"))

	b.ReportAllocs()
	b.SetBytes(int64(len(descriptor)))

	for i := 0; i < b.N; i++ {
		if _, err := Render(descriptor, options); err != nil {
			b.Fatalf("Render: %v", err)
		}
	}
}

// readBenchmarkFile loads benchmark fixture file and fails benchmark on read errors.
func readBenchmarkFile(b *testing.B, path string) []byte {
	b.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read benchmark file %q: %v", path, err)
	}

	if len(data) == 0 {
		b.Fatalf("empty benchmark file: %s", path)
	}

	return data
}
