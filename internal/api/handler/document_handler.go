package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/careerforge/resume-assistant/internal/core/ports"
)

// MaxUploadBytes caps the size of an uploaded resume.
const MaxUploadBytes = 10 << 20

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// DocumentHandler converts uploads to text and text to downloads.
type DocumentHandler struct {
	extractor   ports.TextExtractor
	renderer    ports.DocumentRenderer
	contentType func(ports.DocumentFormat) string
}

func NewDocumentHandler(extractor ports.TextExtractor, renderer ports.DocumentRenderer, contentType func(ports.DocumentFormat) string) *DocumentHandler {
	return &DocumentHandler{extractor: extractor, renderer: renderer, contentType: contentType}
}

// Extract reads an uploaded .pdf, .docx or .txt resume and returns its text.
//
// @Summary      Extract resume text
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Resume file"
// @Success      200   {object}  extractResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /documents/extract [post]
func (h *DocumentHandler) Extract(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return invalid("file is required")
	}
	if fh.Size > MaxUploadBytes {
		return invalid(fmt.Sprintf("file must be at most %d bytes", MaxUploadBytes))
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}

	text, err := h.extractor.ExtractText(fh.Filename, data)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, extractResponse{Text: text})
}

// Export renders text as a PDF or DOCX download.
//
// @Summary      Export document
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        body  body  exportRequest  true  "Text and format"
// @Success      200
// @Failure      422   {object}  map[string]string
// @Router       /documents/export [post]
func (h *DocumentHandler) Export(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	var req exportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	format := ports.DocumentFormat(req.Format)

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, format, req.Text); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, exportFilename(req.Filename, format)))
	return c.Blob(http.StatusOK, h.contentType(format), buf.Bytes())
}

func exportFilename(name string, format ports.DocumentFormat) string {
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	name = strings.Trim(unsafeFilename.ReplaceAllString(name, "_"), "._")
	if name == "" {
		name = "document"
	}
	return name + "." + string(format)
}
