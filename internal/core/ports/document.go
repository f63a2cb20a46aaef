package ports

import "io"

// DocumentFormat names a supported export format.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
)

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	ExtractText(filename string, data []byte) (string, error)
}

// DocumentRenderer writes plain text out as a downloadable document.
type DocumentRenderer interface {
	Render(w io.Writer, format DocumentFormat, text string) error
}
