// Package pdf extracts raw text from driver-application PDF documents.
package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// ExtractionError means no strategy could recover any text from the document.
// It is the only fatal outcome of text extraction; everything downstream
// degrades per-field instead of failing.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no text extractable from %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("no text extractable from %s", e.Path)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Extractor reads PDF files and produces raw text with line structure intact.
// Downstream field patterns anchor on line boundaries, so both strategies
// emit one line per visual row; collapsing rows would make field resolution
// fail silently.
type Extractor struct {
	maxFileSize int64
}

// NewExtractor creates an extractor that rejects files larger than
// maxFileSize bytes.
func NewExtractor(maxFileSize int64) *Extractor {
	return &Extractor{maxFileSize: maxFileSize}
}

// ExtractFile extracts text from the PDF at path. The row-ordered strategy
// runs first because it handles the form/table layout of the application
// template; if it yields nothing the plain-text strategy runs as a fallback.
// Both coming back empty is an *ExtractionError.
func (e *Extractor) ExtractFile(path string) (string, error) {
	if err := e.validateFile(path); err != nil {
		return "", err
	}

	// Structural sanity check. A document pdfcpu rejects is often still
	// readable by the lenient extractors, so this only warns.
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		zap.L().Warn("pdf validation failed, attempting extraction anyway",
			zap.String("path", path),
			zap.Error(err),
		)
	}

	text, err := e.extractByRows(path)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			zap.L().Warn("row extraction failed, falling back to plain text",
				zap.String("path", path),
				zap.Error(err),
			)
		}
		text, err = e.extractPlain(path)
		if err != nil {
			return "", &ExtractionError{Path: path, Err: err}
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{Path: path}
	}
	return text, nil
}

// validateFile performs basic checks before any parsing starts.
func (e *Extractor) validateFile(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}
	if fileInfo.Size() > e.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), e.maxFileSize)
	}
	return nil
}

// extractByRows walks each page row by row, which keeps label/value pairs of
// the form layout on their own lines.
func (e *Extractor) extractByRows(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			// A single bad page should not sink the document.
			continue
		}
		for _, row := range rows {
			var line strings.Builder
			for _, word := range row.Content {
				if line.Len() > 0 {
					line.WriteString(" ")
				}
				line.WriteString(word.S)
			}
			if strings.TrimSpace(line.String()) == "" {
				continue
			}
			builder.WriteString(line.String())
			builder.WriteString("\n")
		}
	}
	return builder.String(), nil
}

// extractPlain is the fallback strategy: per-page plain text concatenation
// with a newline after each page, the way documents without row structure
// come out cleanest.
func (e *Extractor) extractPlain(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(content)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}
