package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-hugoprep/pkg/interfaces"
)

// Verifier inspects transformed Markdown with the goldmark parser and
// inventories image references. It is a QA pass over rewriter output, not a
// renderer: destinations still rooted at "/" indicate a link the downstream
// converter cannot resolve.
//
// The verifier is intentionally stateless so callers can reuse a single
// instance across documents without additional locking.
type Verifier struct {
	engine goldmark.Markdown
}

// NewVerifier constructs a verifier. GFM is enabled so tables and other
// common extensions do not confuse the image walk.
func NewVerifier() *Verifier {
	return &Verifier{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Verify parses the document and reports every image reference found.
func (v *Verifier) Verify(source []byte) interfaces.VerifyReport {
	report := interfaces.VerifyReport{}

	doc := v.engine.Parser().Parse(text.NewReader(source))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		img, ok := n.(*ast.Image)
		if !ok {
			return ast.WalkContinue, nil
		}

		report.Images++
		if dest := string(img.Destination); strings.HasPrefix(dest, "/") {
			report.AbsolutePaths = append(report.AbsolutePaths, dest)
		}
		return ast.WalkContinue, nil
	})

	return report
}
