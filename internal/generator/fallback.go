// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"fmt"
	"html"
)

// fallbackCSS is the stylesheet of the placeholder site returned when the
// model output cannot be used.
const fallbackCSS = `body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    line-height: 1.6;
    margin: 0;
    padding: 20px;
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    min-height: 100vh;
}
.container {
    max-width: 800px;
    margin: 0 auto;
    background: white;
    padding: 40px;
    border-radius: 10px;
    box-shadow: 0 10px 30px rgba(0,0,0,0.2);
}
h1 {
    color: #333;
    text-align: center;
}`

// fallbackArtifact builds the deterministic placeholder site embedding the
// submitted prompt. The prompt is HTML-escaped so arbitrary input cannot
// inject markup into the placeholder.
func fallbackArtifact(prompt string) *Artifact {
	return &Artifact{
		Title:       "Generated Website",
		Description: "A website generated from your prompt",
		HTML: fmt.Sprintf(`<div class="container">
    <h1>Your Website</h1>
    <p>Based on your prompt: "%s"</p>
    <p>We're working on generating a more detailed website. Please try again!</p>
</div>`, html.EscapeString(prompt)),
		CSS: fallbackCSS,
		JS:  "",
	}
}
