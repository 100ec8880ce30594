package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// Meta holds the frontmatter fields hugoprep reports on. Unknown keys are
// ignored rather than preserved; the pipeline never rewrites frontmatter.
type Meta struct {
	Title  string `yaml:"title"`
	Draft  bool   `yaml:"draft"`
	Weight int    `yaml:"weight"`
}

// ParseMeta extracts frontmatter metadata from the provided source bytes.
// Documents without a frontmatter block yield a zero Meta and no error.
func ParseMeta(source []byte) (Meta, error) {
	var meta Meta

	reader := bytes.NewReader(source)
	if _, err := frontmatter.Parse(reader, &meta); err != nil {
		return Meta{}, fmt.Errorf("parse frontmatter: %w", err)
	}

	return meta, nil
}
