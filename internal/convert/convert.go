// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns transcript PDFs into raw text with pluggable
// backends. The calculation core trusts this text and never touches the
// PDF itself; a conversion failure is the one terminal error of a run.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshunov/usyd-eihwam-calculator/internal/container"
	"github.com/joshunov/usyd-eihwam-calculator/pkg/types"
)

// Converter extracts the raw text of a transcript PDF. Backends differ in
// how the extraction runs: a local binary or a container image.
type Converter interface {
	// Convert reads the PDF at pdfPath and returns its text.
	Convert(pdfPath string) (string, error)
}

// New builds the converter selected by cfg. An empty backend means
// pdftotext.
func New(cfg types.ConversionConfig) (Converter, error) {
	switch cfg.Backend {
	case types.BackendPdftotext, "":
		return NewPdftotextConverter(cfg.PdftotextPath), nil
	case types.BackendContainer:
		rt, err := container.Detect()
		if err != nil {
			return nil, err
		}
		return NewContainerConverter(rt, cfg.Image)
	default:
		return nil, fmt.Errorf("unknown conversion backend %q", cfg.Backend)
	}
}

// ReadTranscript returns the raw text for a transcript file. PDFs go
// through the converter; anything else is read as already-extracted text.
func ReadTranscript(c Converter, path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := c.Convert(path)
		if err != nil {
			return "", fmt.Errorf("reading transcript PDF: %w", err)
		}
		return text, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading transcript text %s: %w", path, err)
	}
	return string(data), nil
}
