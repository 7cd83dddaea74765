package ocr

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawText draws text on an image using basicfont
func drawText(img *image.RGBA, x, y int, text string, col color.Color) {
	point := fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  point,
	}
	d.DrawString(text)
}

// createImageWithText creates an in-memory image with rendered text for
// OCR testing.
func createImageWithText(t *testing.T, text string) image.Image {
	t.Helper()

	width := len(text)*7 + 40
	height := 40

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	drawText(img, 20, 25, text, color.Black)

	return img
}

// skipIfNoTesseract skips the test when the Tesseract library or its
// language data is not installed.
func skipIfNoTesseract(t *testing.T, err error) {
	t.Helper()
	if strings.Contains(err.Error(), "tesseract") ||
		strings.Contains(err.Error(), "library") ||
		strings.Contains(err.Error(), "language") {
		t.Skip("Tesseract not available")
	}
}

func TestNewEngine_DefaultLanguage(t *testing.T) {
	e := NewEngine("")
	if e.language != DefaultLanguage {
		t.Errorf("language: got %q, want %q", e.language, DefaultLanguage)
	}

	e = NewEngine("deu")
	if e.language != "deu" {
		t.Errorf("language: got %q, want %q", e.language, "deu")
	}
}

func TestRecognize(t *testing.T) {
	img := createImageWithText(t, "HELLO")

	e := NewEngine("eng")
	text, err := e.Recognize(img)
	if err != nil {
		skipIfNoTesseract(t, err)
		t.Fatalf("Recognize failed: %v", err)
	}

	// Recognition quality on a basicfont render varies; just verify the
	// call produced a result without error.
	t.Logf("recognized: %q", text)
}

func TestRecognize_InvalidLanguage(t *testing.T) {
	img := createImageWithText(t, "HELLO")

	e := NewEngine("definitely-not-a-language")
	_, err := e.Recognize(img)
	if err == nil {
		t.Error("Recognize should fail for an unknown language code")
	}
}
