package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/docfaq/docfaq/internal/domain"
)

// extractDocx extracts plain text from a DOCX document. DOCX files are
// ZIP archives; the document text lives in word/document.xml as runs of
// <w:t> elements grouped into <w:p> paragraphs.
func extractDocx(data []byte) (string, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", domain.NewDomainErrorWithCause(domain.ErrCodeExtractionFailed, "failed to open DOCX as ZIP", err)
	}

	var docXML []byte
	for _, file := range zipReader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", domain.NewDomainErrorWithCause(domain.ErrCodeExtractionFailed, "failed to open DOCX document.xml", err)
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", domain.NewDomainErrorWithCause(domain.ErrCodeExtractionFailed, "failed to read DOCX document.xml", err)
		}
		break
	}
	if docXML == nil {
		return "", domain.NewDomainError(domain.ErrCodeExtractionFailed, "DOCX has no word/document.xml")
	}

	return docxTextFromXML(docXML)
}

// docxTextFromXML walks the WordprocessingML token stream, collecting
// the character data of <w:t> runs and breaking lines at paragraph
// ends. Each paragraph becomes its own line; a blank line between
// paragraphs keeps the downstream fallback segmentation meaningful.
func docxTextFromXML(docXML []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(docXML))

	var b strings.Builder
	inText := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", domain.NewDomainErrorWithCause(domain.ErrCodeExtractionFailed, "malformed DOCX XML", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n\n")
			case "br":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return b.String(), nil
}
