package extract

import (
	"strings"

	"github.com/docfaq/docfaq/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// extractMarkdown renders a markdown document to plain text by walking
// the goldmark AST and keeping only text content. Block boundaries
// become blank lines so the fallback segmenter still sees paragraphs.
func extractMarkdown(data []byte) (string, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(data))

	var b strings.Builder
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if isBlock(n) {
				b.WriteString("\n\n")
			}
			return ast.WalkContinue, nil
		}

		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(data))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteString("\n")
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(data))
			}
		case *ast.AutoLink:
			b.Write(t.URL(data))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", domain.NewDomainErrorWithCause(domain.ErrCodeExtractionFailed, "failed to walk markdown", err)
	}

	return b.String(), nil
}

func isBlock(n ast.Node) bool {
	switch n.(type) {
	case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.Blockquote,
		*ast.FencedCodeBlock, *ast.CodeBlock, *ast.ThematicBreak:
		return true
	}
	return false
}
