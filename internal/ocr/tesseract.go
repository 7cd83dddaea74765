package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguage is the Tesseract language code used when none is
// configured.
const DefaultLanguage = "eng"

// Engine performs text recognition on decoded images using Tesseract.
type Engine struct {
	language string
}

// NewEngine creates an Engine for the given Tesseract language code.
// An empty language falls back to DefaultLanguage.
func NewEngine(language string) *Engine {
	if language == "" {
		language = DefaultLanguage
	}
	return &Engine{language: language}
}

// Recognize runs OCR on a decoded image and returns the recognized text
// with Tesseract's original spacing and newlines.
//
// Tesseract ingests encoded bytes, so the image is re-encoded to PNG in
// memory first. The gosseract client is created and closed within the
// call.
func (e *Engine) Recognize(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return text, nil
}

// Version returns the version of the linked Tesseract library.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}
