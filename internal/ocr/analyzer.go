// Package ocr turns uploaded files into cv.ExtractedDocument values, either
// through the Azure Document Intelligence layout model or in-process.
package ocr

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"recruit-kit/internal/cv"
)

var (
	// ErrUnsupportedFormat is returned for file types an analyzer cannot read.
	ErrUnsupportedFormat = errors.New("ocr: unsupported file format")
	// ErrAnalysisFailed is returned when the OCR service reports a failed run.
	ErrAnalysisFailed = errors.New("ocr: analysis failed")
	// ErrEmptyDocument is returned when no text could be recovered.
	ErrEmptyDocument = errors.New("ocr: no text found")
)

// Analyzer extracts text and layout from a document.
type Analyzer interface {
	Analyze(ctx context.Context, data []byte, fileName string) (*cv.ExtractedDocument, error)
}

func extension(fileName string) string {
	return strings.ToLower(filepath.Ext(fileName))
}
