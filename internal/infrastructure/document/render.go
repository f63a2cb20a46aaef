package document

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/careerforge/resume-assistant/internal/core/ports"
)

//go:embed assets/template.docx
var docxTemplate []byte

const (
	maxTokenRunes  = 60
	pdfLineHeight  = 6
	pdfBlankHeight = 5
	pdfFontSize    = 11
	pdfMargin      = 12
)

// Renderer writes text as PDF or DOCX.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

func (Renderer) Render(w io.Writer, format ports.DocumentFormat, text string) error {
	switch format {
	case ports.FormatPDF:
		return renderPDF(w, text)
	case ports.FormatDOCX:
		return renderDOCX(w, text)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// ContentType returns the MIME type for format.
func ContentType(format ports.DocumentFormat) string {
	if format == ports.FormatDOCX {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/pdf"
}

// renderPDF uses the core Helvetica font, which only covers Latin-1, so text
// is folded to printable ASCII first.
func renderPDF(w io.Writer, text string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", pdfFontSize)

	for _, line := range strings.Split(pdfSafe(text), "\n") {
		if strings.TrimSpace(line) == "" {
			pdf.Ln(pdfBlankHeight)
			continue
		}
		pdf.MultiCell(0, pdfLineHeight, line, "", "", false)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

// pdfSafe expands tabs, replaces non-ASCII runes with spaces and splits
// tokens longer than maxTokenRunes so MultiCell can wrap them.
func pdfSafe(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")

	var b strings.Builder
	for _, r := range text {
		if r == '\n' || (r >= 0x20 && r < 0x7f) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		words := strings.Split(line, " ")
		for j, word := range words {
			words[j] = splitLong(word, maxTokenRunes)
		}
		lines[i] = strings.Join(words, " ")
	}
	return strings.Join(lines, "\n")
}

func splitLong(word string, n int) string {
	if len(word) <= n {
		return word
	}
	var parts []string
	for len(word) > n {
		parts = append(parts, word[:n])
		word = word[n:]
	}
	parts = append(parts, word)
	return strings.Join(parts, " ")
}

// renderDOCX fills the embedded template with one paragraph per line.
func renderDOCX(w io.Writer, text string) error {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(docxTemplate), int64(len(docxTemplate)))
	if err != nil {
		return fmt.Errorf("render docx: load template: %w", err)
	}
	defer doc.Close()

	editable := doc.Editable()
	editable.SetContent(documentXML(text))
	if err := editable.Write(w); err != nil {
		return fmt.Errorf("render docx: %w", err)
	}
	return nil
}

func documentXML(text string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line == "" {
			b.WriteString(`<w:p/>`)
			continue
		}
		b.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		b.WriteString(html.EscapeString(line))
		b.WriteString(`</w:t></w:r></w:p>`)
	}
	b.WriteString(`<w:sectPr/></w:body></w:document>`)
	return b.String()
}
