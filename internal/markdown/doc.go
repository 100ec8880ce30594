// Package markdown provides document metadata extraction and post-rewrite
// verification. Metadata comes from YAML frontmatter and feeds reporting
// only; the rewriter operates on the raw source so frontmatter bytes pass
// through the pipeline untouched.
package markdown
