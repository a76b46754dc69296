// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown renders blog post bodies to HTML. Posts may mix Markdown
// with raw HTML; the rendered output is always passed through an allow-list
// sanitizer before it leaves this package.
package markdown

import (
	"bytes"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,         // tables, strikethrough, autolinks, task lists
		extension.Typographer, // smart quotes and dashes
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(), // raw HTML is kept here and filtered by the sanitizer
	),
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// sanitizer returns the shared policy: user-generated content rules plus
// what the renderer itself emits (heading ids, highlighted code, task
// list checkboxes).
func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
		policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
		policy.AllowAttrs("style").OnElements("pre", "span")
		policy.AllowAttrs("class").OnElements("code", "pre", "span")
		policy.AllowAttrs("type", "checked", "disabled").OnElements("input")
		policy.AllowElements("input", "del", "mark", "sub", "sup")
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
	})
	return policy
}

// ToHTML converts Markdown source into sanitized HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return Sanitize(buf.String()), nil
}

// Sanitize strips scripts, event handlers and other unsafe markup from
// html.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return sanitizer().Sanitize(html)
}
