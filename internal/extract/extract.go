// Package extract turns raw document bytes into plain text. The rest
// of the engine only ever sees the extracted string; every format
// quirk stays behind this package.
package extract

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/docfaq/docfaq/internal/domain"
)

// Extractor dispatches text extraction on the document's file
// extension. Unknown extensions are treated as plain UTF-8 text.
type Extractor struct{}

// New creates a new Extractor.
func New() *Extractor {
	return &Extractor{}
}

// ExtractText extracts the plain text of the named document. An
// unreadable or unsupported document yields an EXTRACTION_FAILED
// domain error; an empty result is not an error here, the engine
// treats it as "no knowledge available".
func (e *Extractor) ExtractText(name string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	case ".md", ".markdown":
		return extractMarkdown(data)
	default:
		return extractPlainText(data)
	}
}

func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", domain.NewDomainError(domain.ErrCodeExtractionFailed, "document is not valid UTF-8 text")
	}
	return string(data), nil
}
