// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionBackend identifies the PDF-to-text tool.
type ConversionBackend string

const (
	BackendPdftotext ConversionBackend = "pdftotext"
	BackendContainer ConversionBackend = "container"
)

// ConversionConfig holds settings for the transcript conversion stage.
type ConversionConfig struct {
	// Backend selects the conversion tool: pdftotext or container.
	// Empty means pdftotext.
	Backend ConversionBackend `json:"backend" yaml:"backend"`

	// PdftotextPath overrides the pdftotext binary location. Empty means
	// PATH lookup.
	PdftotextPath string `json:"pdftotext_path,omitempty" yaml:"pdftotext_path,omitempty"`

	// Image is the container image used by the container backend.
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

// CalculationConfig holds settings for the calculation stage.
type CalculationConfig struct {
	// ThesisCodesFile is the YAML artifact listing thesis unit codes.
	ThesisCodesFile string `json:"thesis_codes_file" yaml:"thesis_codes_file"`
}
