package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-hugoprep/internal/markdown"
	"github.com/goliatone/go-hugoprep/internal/rewrite"
)

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.md")
	output := filepath.Join(dir, "nested", "out.md")
	writeFile(t, input, `See {{< figure src="/fig/x.png" caption="Fig 1" >}} and ![y](/z.png).`)

	var stdout bytes.Buffer
	p := newProcessor(t, &stdout, false)

	report, err := p.ProcessFile(context.Background(), input, output)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}

	got := readFile(t, output)
	want := `See ![Fig 1](static/fig/x.png) and ![y](static/z.png).`
	if got != want {
		t.Fatalf("output mismatch\n got: %q\nwant: %q", got, want)
	}

	if report.Result.FiguresConverted != 1 || report.Result.PathsRewritten != 1 {
		t.Fatalf("unexpected counters: %#v", report.Result)
	}

	line := "Processed: " + input + " -> " + output + "\n"
	if stdout.String() != line {
		t.Fatalf("stdout mismatch, got %q", stdout.String())
	}
}

func TestProcessFile_InPlace(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	writeFile(t, input, `{{< figure src="/a.png" >}}`)

	p := newProcessor(t, &bytes.Buffer{}, false)

	if _, err := p.ProcessFile(context.Background(), input, input); err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if got := readFile(t, input); got != "![](static/a.png)" {
		t.Fatalf("in-place rewrite mismatch, got %q", got)
	}
}

func TestProcessFile_ReportsFrontmatterTitle(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	writeFile(t, input, "---\ntitle: Chapter Two\n---\n\nBody ![m](/map.png)\n")

	p := newProcessor(t, &bytes.Buffer{}, false)

	report, err := p.ProcessFile(context.Background(), input, input)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if report.Title != "Chapter Two" {
		t.Fatalf("expected frontmatter title, got %q", report.Title)
	}

	// Frontmatter bytes must survive the rewrite untouched.
	if got := readFile(t, input); !strings.HasPrefix(got, "---\ntitle: Chapter Two\n---\n") {
		t.Fatalf("frontmatter altered: %q", got)
	}
}

func TestProcessFile_MissingInput(t *testing.T) {
	p := newProcessor(t, &bytes.Buffer{}, false)

	if _, err := p.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "absent.md"), "out.md"); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestProcessFile_Verification(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	// Paths already under /static/ are left alone by the rewriter; the
	// verifier is the layer that surfaces anything still rooted at "/".
	writeFile(t, input, "![ok](/good.png)\n\n![odd](/static/kept.png)\n")

	p := newProcessor(t, &bytes.Buffer{}, true)

	report, err := p.ProcessFile(context.Background(), input, input)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if report.Verification == nil {
		t.Fatal("expected verification report")
	}
	if report.Verification.Images != 2 {
		t.Fatalf("expected 2 images, got %d", report.Verification.Images)
	}
	if len(report.Verification.AbsolutePaths) != 1 || report.Verification.AbsolutePaths[0] != "/static/kept.png" {
		t.Fatalf("unexpected absolute paths: %#v", report.Verification.AbsolutePaths)
	}
}

func TestProcessDirectory(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	writeFile(t, filepath.Join(inputDir, "b.md"), `![x](/b.png)`)
	writeFile(t, filepath.Join(inputDir, "a.md"), `![x](/a.png)`)
	writeFile(t, filepath.Join(inputDir, "note.txt"), "not markdown")

	var stdout bytes.Buffer
	p := newProcessor(t, &stdout, false)

	batch, err := p.ProcessDirectory(context.Background(), inputDir, outputDir)
	if err != nil {
		t.Fatalf("ProcessDirectory: %v", err)
	}

	if batch.Processed != 2 {
		t.Fatalf("expected 2 files processed, got %d", batch.Processed)
	}
	if batch.Files[0].Input != filepath.Join(inputDir, "a.md") {
		t.Fatalf("expected lexicographic order, got %q first", batch.Files[0].Input)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "note.txt")); !os.IsNotExist(err) {
		t.Fatal("non-markdown file must be ignored")
	}
	if !strings.HasSuffix(stdout.String(), "Total processed: 2 files\n") {
		t.Fatalf("summary line missing, got %q", stdout.String())
	}
}

func TestProcessDirectory_SkipsDotPrefixedEntries(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	writeFile(t, filepath.Join(inputDir, "chapter.md"), `![x](/c.png)`)
	writeFile(t, filepath.Join(inputDir, ".draft.md"), `![x](/d.png)`)
	writeFile(t, filepath.Join(inputDir, ".md"), `![x](/e.png)`)

	p := newProcessor(t, &bytes.Buffer{}, false)

	batch, err := p.ProcessDirectory(context.Background(), inputDir, outputDir)
	if err != nil {
		t.Fatalf("ProcessDirectory: %v", err)
	}

	if batch.Processed != 1 {
		t.Fatalf("expected only chapter.md processed, got %d files", batch.Processed)
	}
	if _, err := os.Stat(filepath.Join(outputDir, ".draft.md")); !os.IsNotExist(err) {
		t.Fatal("dot-prefixed file must be ignored")
	}
}

func TestProcessDirectory_MissingDir(t *testing.T) {
	p := newProcessor(t, &bytes.Buffer{}, false)

	if _, err := p.ProcessDirectory(context.Background(), filepath.Join(t.TempDir(), "absent"), "out"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestProcessFile_CanceledContext(t *testing.T) {
	p := newProcessor(t, &bytes.Buffer{}, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.ProcessFile(ctx, "in.md", "out.md"); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func newProcessor(t *testing.T, stdout *bytes.Buffer, verify bool) *Processor {
	t.Helper()

	cfg := Config{
		Rewriter: rewrite.New(),
		Stdout:   stdout,
	}
	if verify {
		cfg.Verifier = markdown.NewVerifier()
	}

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
