// Package pipeline implements the file and directory driver around the
// shortcode rewriter: read, transform, write, report.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-hugoprep/internal/logging"
	"github.com/goliatone/go-hugoprep/internal/markdown"
	"github.com/goliatone/go-hugoprep/pkg/interfaces"
)

// Config captures the dependencies a Processor needs. Rewriter is required;
// everything else has a working default.
type Config struct {
	Rewriter interfaces.Rewriter
	Logger   interfaces.Logger
	// Stdout receives the per-file and summary report lines. Defaults to os.Stdout.
	Stdout io.Writer
	// Verifier, when set, parses every transformed document and records an
	// image inventory on the file report.
	Verifier *markdown.Verifier
}

// Processor drives the read/transform/write cycle for files and directories.
// Processing is strictly sequential; each file is independent of the next.
type Processor struct {
	rewriter interfaces.Rewriter
	logger   interfaces.Logger
	stdout   io.Writer
	verifier *markdown.Verifier
}

// New constructs a Processor from the supplied configuration.
func New(cfg Config) (*Processor, error) {
	if cfg.Rewriter == nil {
		return nil, fmt.Errorf("pipeline: rewriter is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &Processor{
		rewriter: cfg.Rewriter,
		logger:   logger,
		stdout:   stdout,
		verifier: cfg.Verifier,
	}, nil
}

// ProcessFile reads inputPath, applies the rewriter, ensures the output
// parent directory exists, and writes the result to outputPath. The action is
// reported on the configured stdout writer as an observable side effect.
func (p *Processor) ProcessFile(ctx context.Context, inputPath, outputPath string) (*interfaces.FileReport, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	source, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read %s: %w", inputPath, err)
	}

	meta, err := markdown.ParseMeta(source)
	if err != nil {
		// Metadata feeds reporting only; a broken frontmatter block must not
		// stop the rewrite.
		logging.WithFileContext(p.logger, inputPath, outputPath).
			Warn("pipeline.frontmatter.unparsable", "error", err)
		meta = markdown.Meta{}
	}

	result := p.rewriter.Rewrite(string(source))

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("pipeline: create output dir %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(outputPath, []byte(result.Content), 0o644); err != nil {
		return nil, fmt.Errorf("pipeline: write %s: %w", outputPath, err)
	}

	report := &interfaces.FileReport{
		Input:  inputPath,
		Output: outputPath,
		Title:  meta.Title,
		Result: result,
	}

	if p.verifier != nil {
		verification := p.verifier.Verify([]byte(result.Content))
		report.Verification = &verification
		if len(verification.AbsolutePaths) > 0 {
			logging.WithFileContext(p.logger, inputPath, outputPath).
				Warn("pipeline.verify.absolute_paths_remain",
					"paths", strings.Join(verification.AbsolutePaths, ", "))
		}
	}

	fmt.Fprintf(p.stdout, "Processed: %s -> %s\n", inputPath, outputPath)

	logging.WithFields(logging.WithFileContext(p.logger, inputPath, outputPath), map[string]any{
		"figures_converted": result.FiguresConverted,
		"figures_removed":   result.FiguresRemoved,
		"paths_rewritten":   result.PathsRewritten,
	}).Debug("pipeline.file.processed")

	return report, nil
}

// ProcessDirectory enumerates the *.md files directly inside inputDir in
// lexicographic order and processes each into outputDir under the same base
// filename. Sub-directories are not traversed. The first failing file aborts
// the remainder of the batch.
func (p *Processor) ProcessDirectory(ctx context.Context, inputDir, outputDir string) (*interfaces.BatchReport, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read dir %s: %w", inputDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		// Dot-prefixed entries (editor droppings, ".draft.md") are not batch
		// input; a *.md glob would never match them either.
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".md") {
			continue
		}
		names = append(names, name)
	}
	// os.ReadDir already sorts by filename; keep the sort explicit so the
	// batch order does not silently depend on that detail.
	sort.Strings(names)

	batch := &interfaces.BatchReport{}
	for _, name := range names {
		report, err := p.ProcessFile(ctx, filepath.Join(inputDir, name), filepath.Join(outputDir, name))
		if err != nil {
			return nil, err
		}
		batch.Files = append(batch.Files, *report)
		batch.Processed++
	}

	fmt.Fprintf(p.stdout, "\nTotal processed: %d files\n", batch.Processed)

	p.logger.Info("pipeline.directory.processed",
		"input_dir", inputDir,
		"output_dir", outputDir,
		"count", batch.Processed,
	)

	return batch, nil
}
