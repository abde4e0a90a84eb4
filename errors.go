// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import "errors"

var (
	// ErrReadDescriptorFile is returned when descriptor file loading fails.
	ErrReadDescriptorFile = errors.New("read descriptor file")
	// ErrDecodeDescriptor is returned when descriptor YAML/JSON decoding fails.
	ErrDecodeDescriptor = errors.New("decode descriptor")
	// ErrEmptyDescriptor is returned when descriptor has no endpoints to render.
	ErrEmptyDescriptor = errors.New("descriptor has no endpoints")
	// ErrMalformedParameter is returned when parameter entry carries neither name nor type.
	ErrMalformedParameter = errors.New("malformed parameter entry")
	// ErrUnknownSectionOrder is returned when requested section priority map is not registered.
	ErrUnknownSectionOrder = errors.New("unknown section order")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrParseCustomTemplate is returned when caller template text parsing fails.
	ErrParseCustomTemplate = errors.New("parse custom template")
	// ErrUnknownOutputFormat is returned when requested output format is not supported.
	ErrUnknownOutputFormat = errors.New("unknown output format")
	// ErrRenderHTML is returned when markdown to HTML conversion fails.
	ErrRenderHTML = errors.New("render html")
	// ErrRenderTerminal is returned when markdown to terminal conversion fails.
	ErrRenderTerminal = errors.New("render terminal")
	// ErrUnknownPayloadFormat is returned when payload example format is not supported.
	ErrUnknownPayloadFormat = errors.New("unknown payload format")
	// ErrEncodePayloadJSON is returned when generated payload JSON encoding fails.
	ErrEncodePayloadJSON = errors.New("encode payload json")
	// ErrEncodePayloadYAML is returned when generated payload YAML encoding fails.
	ErrEncodePayloadYAML = errors.New("encode payload yaml")
)
