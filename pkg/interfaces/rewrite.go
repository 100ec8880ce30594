package interfaces

import "context"

// RewriteResult carries a transformed Markdown document along with counters
// describing what the rewriter changed.
type RewriteResult struct {
	// Content is the transformed document text.
	Content string
	// FiguresConverted counts figure shortcodes replaced with image syntax.
	FiguresConverted int
	// FiguresRemoved counts figure shortcodes deleted because they carried no src.
	FiguresRemoved int
	// PathsRewritten counts pre-existing image links moved under static/.
	PathsRewritten int
}

// Rewriter transforms Hugo-flavoured Markdown into plain Markdown image
// syntax. Implementations must be pure: no I/O, deterministic, and total over
// well-formed UTF-8 text. Shortcode syntax that does not match the figure
// pattern is left untouched.
type Rewriter interface {
	Rewrite(content string) RewriteResult
}

// VerifyReport inventories the image references found in a transformed
// document. AbsolutePaths lists destinations still rooted at "/", which a
// downstream converter would fail to resolve.
type VerifyReport struct {
	Images        int
	AbsolutePaths []string
}

// FileReport describes the outcome of processing a single Markdown file.
type FileReport struct {
	Input  string
	Output string
	// Title is the frontmatter title when the document carries one.
	Title  string
	Result RewriteResult
	// Verification is populated only when the processor runs with a verifier.
	Verification *VerifyReport
}

// BatchReport aggregates the outcome of a directory run.
type BatchReport struct {
	Files     []FileReport
	Processed int
}

// Processor drives the read/transform/write cycle. Command handlers depend on
// this contract rather than the pipeline implementation directly.
type Processor interface {
	ProcessFile(ctx context.Context, inputPath, outputPath string) (*FileReport, error)
	ProcessDirectory(ctx context.Context, inputDir, outputDir string) (*BatchReport, error)
}
