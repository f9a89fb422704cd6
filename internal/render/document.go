// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render assembles generated website artifacts into single,
// self-contained HTML documents for preview and download.
package render

import (
	"html"
	"strings"
)

// Document builds the self-contained HTML document for a generated website:
// a fixed HTML5 shell with the stylesheet inlined in a <style> block, the
// body content as-is, and a <script> block appended only when JS is present.
// The title is the only escaped field; html/css/js are trusted artifact
// content and embedded verbatim.
func Document(title, htmlContent, cssContent, jsContent string) []byte {
	var b strings.Builder
	b.Grow(len(htmlContent) + len(cssContent) + len(jsContent) + 512)

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	b.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("    <title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n")
	b.WriteString("    <style>\n")
	b.WriteString(cssContent)
	b.WriteString("\n    </style>\n</head>\n<body>\n")
	b.WriteString(htmlContent)
	if jsContent != "" {
		b.WriteString("\n<script>\n")
		b.WriteString(jsContent)
		b.WriteString("\n</script>")
	}
	b.WriteString("\n</body>\n</html>")

	return []byte(b.String())
}
