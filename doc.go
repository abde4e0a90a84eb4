// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apidoc

/*
Package apidoc renders API endpoint documentation from YAML or JSON descriptors.

Every endpoint passes the same pipeline: example fragments are normalized and
highlighted, client examples are put into canonical order, parameter lists are
split into sections, and each entry is projected into table cells for its
variant (header, request or response). Output is deterministic CommonMark by
default, with HTML and terminal renderings on top of it.

Normalize and highlight one fragment:

	text := apidoc.Normalize("GET GET /hotels HTTP/1.1\nX-Key: undefined\nX-Key: undefined")
	markup := apidoc.Highlight(text, apidoc.LanguageHTTP)
	fmt.Println(markup)
	fmt.Println(apidoc.PlainText(markup) == text)

Order client examples:

	examples := apidoc.OrderExamples([]apidoc.CodeExample{
		{Language: "php", Code: "<?php ..."},
		{Language: "bash", Code: "curl ..."},
	})
	for _, example := range examples {
		fmt.Println(apidoc.ResolveLabel(example))
	}

Section and project parameter rows:

	priority, err := apidoc.SectionPriorityByName("hotel")
	if err != nil {
		return err
	}

	for _, section := range apidoc.SectionParameters(entries, priority) {
		for index, entry := range section.Entries {
			cells := apidoc.ProjectRow(entry, apidoc.VariantResponse, apidoc.ColumnExample)
			fmt.Println(apidoc.RowStripe(index), strings.Join(cells, " | "))
		}
	}

Render descriptor file:

	md, err := apidoc.RenderFile("hotels.yaml", apidoc.Options{
		TemplateName:     "page",
		GeneratePayloads: true,
		PayloadFormat:    apidoc.PayloadFormatJSON,
	})
	if err != nil {
		return err
	}

	fmt.Println(md)

Render HTML with highlighted code blocks and striped rows:

	page, err := apidoc.Render(descriptorBytes, apidoc.Options{
		Format: apidoc.FormatHTML,
	})
	if err != nil {
		return err
	}

	fmt.Println(page)
*/
package apidoc
