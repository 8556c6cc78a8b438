package extract

import (
	"bytes"

	"github.com/docfaq/docfaq/internal/domain"
	"github.com/ledongthuc/pdf"
)

// extractPDF extracts plain text from a PDF, page by page. Pages that
// fail to decode are skipped rather than failing the whole document.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", domain.NewDomainErrorWithCause(domain.ErrCodeExtractionFailed, "failed to open PDF", err)
	}

	var buf bytes.Buffer
	totalPage := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}

	return buf.String(), nil
}
