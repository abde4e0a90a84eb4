// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

package apidoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// htmlRendererPriority places fragment renderer before goldmark defaults.
const htmlRendererPriority = 100

// codeTextEscaper escapes markup-significant characters of code text.
// Quotes stay literal so JSON rules still see string delimiters.
var codeTextEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// fragmentHTMLRenderer renders fenced fragments with highlight spans and striped table rows.
type fragmentHTMLRenderer struct{}

// renderHTML converts rendered markdown into HTML.
func renderHTML(markdown string) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(util.Prioritized(fragmentHTMLRenderer{}, htmlRendererPriority)),
		),
	)

	var out bytes.Buffer
	if err := md.Convert([]byte(markdown), &out); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderHTML, err)
	}

	return ensureTrailingNewline(out.String()), nil
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r fragmentHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
	reg.Register(east.KindTableRow, r.renderTableRow)
}

// renderFencedCodeBlock writes normalized and highlighted fragment text.
func (r fragmentHTMLRenderer) renderFencedCodeBlock(
	w util.BufWriter,
	source []byte,
	node ast.Node,
	entering bool,
) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	block, ok := node.(*ast.FencedCodeBlock)
	if !ok {
		return ast.WalkContinue, nil
	}

	language := string(block.Language(source))

	var code strings.Builder
	lines := block.Lines()
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		code.Write(segment.Value(source))
	}

	fragment := NormalizeFragment(CodeFragment{
		Text:     codeTextEscaper.Replace(code.String()),
		Language: language,
	})

	_, _ = w.WriteString("<pre><code")
	if language != "" {
		_, _ = w.WriteString(` class="language-`)
		_, _ = w.Write(util.EscapeHTML([]byte(language)))
		_, _ = w.WriteString(`"`)
	}

	_, _ = w.WriteString(">")
	_, _ = w.WriteString(HighlightFragment(fragment).Markup)
	_, _ = w.WriteString("</code></pre>\n")

	return ast.WalkSkipChildren, nil
}

// renderTableRow writes body row with even/odd class by index within its table.
func (r fragmentHTMLRenderer) renderTableRow(
	w util.BufWriter,
	_ []byte,
	node ast.Node,
	entering bool,
) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</tr>\n")
		if node.Parent() != nil && node.Parent().LastChild() == node {
			_, _ = w.WriteString("</tbody>\n")
		}

		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<tr class="`)
	_, _ = w.WriteString(RowStripe(tableRowIndex(node)))
	_, _ = w.WriteString("\">\n")

	return ast.WalkContinue, nil
}

// tableRowIndex counts body rows preceding node in the same table.
func tableRowIndex(node ast.Node) int {
	index := 0
	for sibling := node.PreviousSibling(); sibling != nil; sibling = sibling.PreviousSibling() {
		if sibling.Kind() == east.KindTableRow {
			index++
		}
	}

	return index
}
