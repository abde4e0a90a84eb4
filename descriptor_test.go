// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseDocumentYAML(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument(hotelDescriptorBytes())
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	if doc.Title != "Hotels API" || len(doc.Endpoints) != 2 {
		t.Fatalf("doc = %q with %d endpoints", doc.Title, len(doc.Endpoints))
	}

	endpoint := doc.Endpoints[0]
	if endpoint.Method != "GET" || endpoint.URL != "/hotels/{id}" {
		t.Fatalf("endpoint = %s %s", endpoint.Method, endpoint.URL)
	}

	if len(endpoint.Headers) != 2 || len(endpoint.RequestParameters) != 2 || len(endpoint.ResponseParameters) != 5 {
		t.Fatalf("parameter lists = %d/%d/%d", len(endpoint.Headers), len(endpoint.RequestParameters), len(endpoint.ResponseParameters))
	}

	if endpoint.Headers[0].Required.Text != "Yes" {
		t.Fatalf("header required = %+v", endpoint.Headers[0].Required)
	}

	if len(endpoint.Examples) != 3 || endpoint.Examples[0].Language != "php" {
		t.Fatalf("examples = %+v", endpoint.Examples)
	}

	if doc.Endpoints[1].Request.Text == "" || doc.Endpoints[1].Request.Language != "" {
		t.Fatalf("scalar request fragment = %+v", doc.Endpoints[1].Request)
	}
}

func TestParseDocumentJSON(t *testing.T) {
	t.Parallel()

	data := []byte(`{
  "title": "Pets",
  "endpoints": [
    {
      "method": "post",
      "url": "/pets",
      "request": {"text": "POST /pets HTTP/1.1", "language": "http"},
      "request_parameters": [{"name": "name", "type": "string", "required": true}]
    }
  ]
}`)

	doc, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	endpoint := doc.Endpoints[0]
	if endpoint.Signature() != "POST /pets" {
		t.Fatalf("signature = %q", endpoint.Signature())
	}

	if endpoint.Request.Language != LanguageHTTP {
		t.Fatalf("request language = %q", endpoint.Request.Language)
	}

	if !endpoint.RequestParameters[0].Required.Bool() {
		t.Fatalf("required = %+v", endpoint.RequestParameters[0].Required)
	}
}

func TestParseDocumentSingleEndpoint(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte("method: DELETE\nurl: /hotels/1\ntitle: Remove hotel\n"))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	if len(doc.Endpoints) != 1 || doc.Endpoints[0].DisplayTitle() != "Remove hotel" {
		t.Fatalf("doc = %+v", doc)
	}

	if doc.Title != "" {
		t.Fatalf("single endpoint title leaked into document title: %q", doc.Title)
	}
}

func TestParseDocumentErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
		want error
	}{
		{name: "empty", data: "  \n", want: ErrEmptyDescriptor},
		{name: "no endpoints", data: "title: nothing\n", want: ErrEmptyDescriptor},
		{name: "bad yaml", data: "endpoints: [\n", want: ErrDecodeDescriptor},
		{name: "sequence root", data: "- a\n- b\n", want: ErrDecodeDescriptor},
		{
			name: "malformed parameter",
			data: "endpoints:\n  - method: GET\n    url: /x\n    response_parameters:\n      - description: lost\n",
			want: ErrMalformedParameter,
		},
		{
			name: "unknown section order",
			data: "endpoints:\n  - method: GET\n    url: /x\n    section_order: alphabet\n",
			want: ErrUnknownSectionOrder,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseDocument([]byte(tc.data))
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestMalformedParameterErrorHasContext(t *testing.T) {
	t.Parallel()

	data := "endpoints:\n  - method: GET\n    url: /x\n    headers:\n      - name: A\n      - description: lost\n"
	_, err := ParseDocument([]byte(data))
	if err == nil {
		t.Fatal("expected error")
	}

	assertContains(t, err.Error(), "endpoint 0")
	assertContains(t, err.Error(), "GET /x headers[1]")
}

func TestLoadDocumentFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hotels.yaml")
	if err := os.WriteFile(path, hotelDescriptorBytes(), 0o600); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}

	doc, err := LoadDocumentFile(path)
	if err != nil {
		t.Fatalf("LoadDocumentFile: %v", err)
	}

	if len(doc.Endpoints) != 2 {
		t.Fatalf("endpoints = %d", len(doc.Endpoints))
	}

	_, err = LoadDocumentFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrReadDescriptorFile) {
		t.Fatalf("missing file error = %v", err)
	}
}

func TestRequestFragmentComposedFromHeaders(t *testing.T) {
	t.Parallel()

	endpoint := Endpoint{
		Method: "get",
		URL:    "/hotels",
		Headers: []ParameterEntry{
			{Name: "Accept", Value: "application/json"},
			{Name: "X-Api-Key"},
			{Name: "X-Trace", Example: "abc"},
			{Name: "X-Api-Key"},
		},
	}

	fragment, ok := endpoint.RequestFragment()
	if !ok {
		t.Fatal("expected composed request fragment")
	}

	want := "GET /hotels HTTP/1.1\nAccept: application/json\nX-Api-Key: undefined\nX-Trace: abc\nX-Api-Key: undefined"
	if fragment.Text != want || fragment.Language != LanguageHTTP {
		t.Fatalf("fragment = %+v", fragment)
	}

	if got := Normalize(fragment.Text); got != "GET /hotels HTTP/1.1\nAccept: application/json\nX-Api-Key: undefined\nX-Trace: abc" {
		t.Fatalf("normalized = %q", got)
	}
}

func TestRequestFragmentExplicitAndMissing(t *testing.T) {
	t.Parallel()

	explicit := Endpoint{Method: "GET", URL: "/x", Request: CodeFragment{Text: "GET GET /x"}}
	fragment, ok := explicit.RequestFragment()
	if !ok || fragment.Text != "GET GET /x" || fragment.Language != LanguageHTTP {
		t.Fatalf("explicit fragment = %+v, %v", fragment, ok)
	}

	if _, ok := (Endpoint{Title: "Only title"}).RequestFragment(); ok {
		t.Fatal("endpoint without method and url must not compose request")
	}
}

func hotelDescriptorBytes() []byte {
	return []byte(`title: Hotels API
description: |
  Search and manage hotels.

  Supported clients:
   - partners
   - internal tools
endpoints:
  - title: Get hotel
    method: GET
    url: /hotels/{id}
    description: Returns one hotel with location and rooms.
    section_order: hotel
    headers:
      - name: Authorization
        type: string
        required: "Yes"
        value: Bearer <token>
        description: Partner token.
      - name: X-Request-Id
        type: string
        description: Trace identifier.
    request_parameters:
      - name: id
        type: integer
        required: true
        example: "42"
        description: Hotel identifier.
      - name: lang
        type: string
        example: en
        description: Response language | ISO 639-1.
    response_parameters:
      - name: rooms
        type: array
        section: Rooms
        description: Available rooms.
      - name: id
        type: integer
        example: "42"
        description: Hotel identifier.
      - name: hotel.name
        type: string
        section: Hotel
        example: '"Grand"'
        description: Hotel name.
      - name: hotel.stars
        type: integer
        section: Hotel
        description: Star rating.
      - name: location.city
        type: string
        section: Location
        example: '"Riga"'
        description: City name.
    examples:
      - language: php
        code: |
          <?php echo file_get_contents("https://api.example.com/hotels/42");
      - language: ruby
        code: |
          Net::HTTP.get(URI("https://api.example.com/hotels/42"))
      - language: bash
        code: |
          curl -X GET https://api.example.com/hotels/42
  - method: POST
    url: /hotels
    request: |
      POST POST /hotels HTTP/1.1
      Content-Type: application/json
      X-Api-Key: undefined
      X-Api-Key: undefined
    response:
      language: json
      text: '{"id": 43, "created": true}'
`)
}
