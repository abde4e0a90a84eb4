// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// terminalStyle is the glamour standard style used for terminal output.
const terminalStyle = "dracula"

// renderTerminal converts rendered markdown into ANSI-styled text.
func renderTerminal(markdown string, wrapWidth int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(terminalStyle),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderTerminal, err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderTerminal, err)
	}

	return out, nil
}
