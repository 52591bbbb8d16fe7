package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/futig/resignation-backend/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(checklist entity.ContractChecklist) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n", baseTitle)

	for _, s := range buildSections(checklist) {
		fmt.Fprintf(&buf, "\n## %s\n\n", s.title)
		for _, l := range s.lines {
			if l.depth == 0 {
				fmt.Fprintf(&buf, "%s\n", l.text)
				continue
			}
			fmt.Fprintf(&buf, "%s- %s\n", strings.Repeat("  ", l.depth-1), l.text)
		}
	}

	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
