// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

const pdftotextBin = "pdftotext"

// PdftotextConverter shells out to the pdftotext binary in layout mode,
// which keeps the transcript's tabular columns on one line per unit,
// the shape both extraction strategies expect.
type PdftotextConverter struct {
	bin string
}

// NewPdftotextConverter builds a converter around the pdftotext binary.
// An empty bin means PATH lookup.
func NewPdftotextConverter(bin string) *PdftotextConverter {
	if bin == "" {
		bin = pdftotextBin
	}
	return &PdftotextConverter{bin: bin}
}

// Convert runs pdftotext -layout over the PDF and returns its stdout.
func (p *PdftotextConverter) Convert(pdfPath string) (string, error) {
	if _, err := exec.LookPath(p.bin); err != nil {
		return "", fmt.Errorf("pdftotext not available: %w", err)
	}

	var out, stderr bytes.Buffer
	cmd := exec.Command(p.bin, "-layout", pdfPath, "-")
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("converting %s with pdftotext: %w (%s)", pdfPath, err, msg)
		}
		return "", fmt.Errorf("converting %s with pdftotext: %w", pdfPath, err)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("pdftotext produced empty output for %s", pdfPath)
	}

	return out.String(), nil
}
