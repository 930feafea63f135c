package service

import (
	"fmt"
	"strings"

	"doc-summarizer/internal/domain"

	"github.com/otiai10/gosseract/v2"
)

// OCRLanguage is the fixed Tesseract recognition language.
const OCRLanguage = "eng"

// OCRProcessor recognizes text in PNG and JPEG images with Tesseract.
type OCRProcessor struct {
	logger        domain.Logger
	clientFactory func() *gosseract.Client
}

// NewOCRProcessor constructs a Tesseract-backed OCR engine.
func NewOCRProcessor(logger domain.Logger) *OCRProcessor {
	return &OCRProcessor{
		logger:        logger,
		clientFactory: gosseract.NewClient,
	}
}

// Recognize runs OCR on a single encoded image. Each call owns its own client,
// so concurrent requests never share Tesseract state.
func (o *OCRProcessor) Recognize(imageBytes []byte, language string) (string, error) {
	if len(imageBytes) == 0 {
		return "", domain.ErrEmptyDocument
	}

	c := o.clientFactory()
	defer c.Close()

	if err := c.SetLanguage(language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	if err := c.SetImageFromBytes(imageBytes); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}

	o.logger.Debug("OCR finished", "language", language, "chars", len(text))
	return strings.TrimSpace(text), nil
}
