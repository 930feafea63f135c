package service

import (
	"context"

	"doc-summarizer/internal/domain"
	apperrors "doc-summarizer/pkg/errors"
)

// TextExtractor dispatches uploads to the PDF or OCR delegate by media type.
type TextExtractor struct {
	pdf    domain.PDFTextExtractor
	ocr    domain.OCREngine
	logger domain.Logger
}

// NewTextExtractor creates a new text extractor
func NewTextExtractor(pdf domain.PDFTextExtractor, ocr domain.OCREngine, logger domain.Logger) *TextExtractor {
	return &TextExtractor{
		pdf:    pdf,
		ocr:    ocr,
		logger: logger,
	}
}

// Extract returns the plain text of fileBytes. Unsupported media types are rejected
// before any delegate runs; delegate failures surface as extraction errors.
func (e *TextExtractor) Extract(ctx context.Context, fileBytes []byte, mediaType domain.MediaType) (domain.ExtractionResult, error) {
	e.logger.Debug("Extracting text", "media_type", mediaType, "bytes", len(fileBytes))

	switch mediaType {
	case domain.MediaTypePDF:
		text, err := e.pdf.ExtractText(fileBytes)
		if err != nil {
			return domain.ExtractionResult{}, apperrors.NewExtractionError("pdf", err)
		}
		return domain.ExtractionResult{Text: text}, nil

	case domain.MediaTypePNG, domain.MediaTypeJPEG:
		text, err := e.ocr.Recognize(fileBytes, OCRLanguage)
		if err != nil {
			return domain.ExtractionResult{}, apperrors.NewExtractionError("ocr", err)
		}
		return domain.ExtractionResult{Text: text}, nil

	default:
		return domain.ExtractionResult{}, apperrors.NewUnsupportedMediaTypeError(string(mediaType))
	}
}
