package rewrite

import "regexp"

var attrPattern = regexp.MustCompile(`([\w-]+)="([^"]*)"`)

// parseAttributes extracts key="value" pairs from a shortcode attribute body.
// Keys are unique; when an author repeats a key the last occurrence wins,
// matching how Hugo resolves duplicates.
func parseAttributes(raw string) map[string]string {
	matches := attrPattern.FindAllStringSubmatch(raw, -1)
	attrs := make(map[string]string, len(matches))
	for _, m := range matches {
		attrs[m[1]] = m[2]
	}
	return attrs
}
