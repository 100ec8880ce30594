// Package rewrite converts Hugo figure shortcodes embedded in Markdown into
// plain Markdown image syntax and normalizes absolute image paths under a
// static/ prefix, producing documents a Pandoc-class converter can consume.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-hugoprep/pkg/interfaces"
)

var (
	// (?s) lets the attribute body span newlines; Hugo authors routinely wrap
	// long figure tags.
	figurePattern = regexp.MustCompile(`(?s)\{\{<\s*figure\b(.*?)>\}\}`)
	// Markdown image links rooted at "/". RE2 has no lookahead, so the
	// already-static exclusion lives in the replacement callback.
	absImagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(/([^)]+)\)`)
)

// Rewriter applies the figure shortcode and absolute image path passes. The
// zero value is ready to use; a single instance is safe for reuse since it
// holds no per-call state.
type Rewriter struct{}

// New returns a rewriter instance.
func New() *Rewriter {
	return &Rewriter{}
}

// Rewrite transforms the supplied Markdown text. It never fails: shortcode
// syntax that does not match the figure pattern passes through untouched.
func (r *Rewriter) Rewrite(content string) interfaces.RewriteResult {
	result := interfaces.RewriteResult{}

	content = figurePattern.ReplaceAllStringFunc(content, func(match string) string {
		attrs := parseAttributes(figurePattern.FindStringSubmatch(match)[1])

		// Figures without src are code-sample placeholders; drop them.
		src := attrs["src"]
		if src == "" {
			result.FiguresRemoved++
			return ""
		}

		if strings.HasPrefix(src, "/") && !strings.HasPrefix(src, "/static/") {
			src = "static" + src
		}

		alt := attrs["caption"]
		if alt == "" {
			alt = attrs["title"]
		}

		result.FiguresConverted++
		return fmt.Sprintf("![%s](%s)", escapeAltText(alt), src)
	})

	content = absImagePattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := absImagePattern.FindStringSubmatch(match)
		alt, path := parts[1], parts[2]
		if strings.HasPrefix(path, "static/") {
			return match
		}
		result.PathsRewritten++
		return fmt.Sprintf("![%s](static/%s)", alt, path)
	})

	result.Content = content
	return result
}

// escapeAltText escapes "]" so alt text cannot terminate the image span early.
func escapeAltText(text string) string {
	return strings.ReplaceAll(text, "]", `\]`)
}

var _ interfaces.Rewriter = (*Rewriter)(nil)
