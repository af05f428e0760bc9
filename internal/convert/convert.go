// Package convert turns Word documents into PDF before analysis.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrDisabled is returned when no office converter is configured.
var ErrDisabled = errors.New("convert: office conversion is disabled")

type Converter interface {
	ToPDF(ctx context.Context, data []byte, fileName string) ([]byte, error)
}

// IsWordDocument reports whether fileName has a Word extension.
func IsWordDocument(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".doc", ".docx":
		return true
	}
	return false
}

// SofficeConverter shells out to LibreOffice in headless mode.
type SofficeConverter struct {
	Path string
}

func NewSofficeConverter(path string) *SofficeConverter {
	return &SofficeConverter{Path: path}
}

func (c *SofficeConverter) ToPDF(ctx context.Context, data []byte, fileName string) ([]byte, error) {
	if c == nil || c.Path == "" {
		return nil, ErrDisabled
	}

	dir, err := os.MkdirTemp("", "convert-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	base := filepath.Base(fileName)
	in := filepath.Join(dir, base)
	if err := os.WriteFile(in, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write input: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.Path, "--headless", "--convert-to", "pdf", "--outdir", dir, in)
	// soffice refuses to run concurrently against a shared profile.
	cmd.Env = append(os.Environ(), "HOME="+dir)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("soffice failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	pdfPath := filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".pdf")
	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("soffice produced no PDF: %w", err)
	}
	log.Printf("[Convert] %s -> PDF (%d bytes)", base, len(pdf))
	return pdf, nil
}
