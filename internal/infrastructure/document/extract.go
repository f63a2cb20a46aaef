// Package document converts uploaded resumes to text and renders generated
// text as downloadable PDF or DOCX files.
package document

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

var (
	paragraphEnd = regexp.MustCompile(`</w:p>|<w:p\s*/>`)
	lineBreak    = regexp.MustCompile(`<w:br[^>]*/>`)
	tabMark      = regexp.MustCompile(`<w:tab[^>]*/>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

// Extractor reads .pdf, .docx and .txt uploads.
type Extractor struct{}

func NewExtractor() *Extractor { return &Extractor{} }

// ExtractText picks the parser by file extension.
func (Extractor) ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return strings.TrimSpace(string(data)), nil
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedDocument, filepath.Ext(filename))
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: read pdf: %v", domain.ErrUnsupportedDocument, err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: read docx: %v", domain.ErrUnsupportedDocument, err)
	}
	defer doc.Close()

	return docxPlainText(doc.Editable().GetContent()), nil
}

// docxPlainText reduces document.xml to one line per paragraph.
func docxPlainText(content string) string {
	content = paragraphEnd.ReplaceAllString(content, "\n")
	content = lineBreak.ReplaceAllString(content, "\n")
	content = tabMark.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return strings.TrimSpace(html.UnescapeString(content))
}
