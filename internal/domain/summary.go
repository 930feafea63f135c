package domain

import (
	"context"
	"mime"
	"strings"
)

// MediaType is the declared content type of an uploaded file.
type MediaType string

const (
	MediaTypePDF   MediaType = "application/pdf"
	MediaTypePNG   MediaType = "image/png"
	MediaTypeJPEG  MediaType = "image/jpeg"
	MediaTypeOther MediaType = "other"
)

// ParseMediaType normalizes a Content-Type header value into a MediaType.
// Parameters such as charset are dropped; unknown or malformed values map to MediaTypeOther.
func ParseMediaType(contentType string) MediaType {
	mt, _, err := mime.ParseMediaType(strings.TrimSpace(contentType))
	if err != nil {
		return MediaTypeOther
	}
	switch MediaType(strings.ToLower(mt)) {
	case MediaTypePDF:
		return MediaTypePDF
	case MediaTypePNG:
		return MediaTypePNG
	case MediaTypeJPEG:
		return MediaTypeJPEG
	default:
		return MediaTypeOther
	}
}

// IsImage reports whether the media type goes through OCR.
func (m MediaType) IsImage() bool {
	return m == MediaTypePNG || m == MediaTypeJPEG
}

// SummaryLength is the coarse length hint passed through to the model.
type SummaryLength string

const (
	SummaryLengthShort  SummaryLength = "short"
	SummaryLengthMedium SummaryLength = "medium"
	SummaryLengthLong   SummaryLength = "long"

	DefaultSummaryLength = SummaryLengthMedium
)

// ParseSummaryLength maps a form value onto a SummaryLength.
// Empty input yields the default; ok is false only for non-empty unknown values.
func ParseSummaryLength(value string) (SummaryLength, bool) {
	switch SummaryLength(strings.ToLower(strings.TrimSpace(value))) {
	case "":
		return DefaultSummaryLength, true
	case SummaryLengthShort:
		return SummaryLengthShort, true
	case SummaryLengthMedium:
		return SummaryLengthMedium, true
	case SummaryLengthLong:
		return SummaryLengthLong, true
	default:
		return DefaultSummaryLength, false
	}
}

// UploadRequest is one file submitted for summarization.
type UploadRequest struct {
	Filename      string
	FileBytes     []byte
	MediaType     MediaType
	SummaryLength SummaryLength
}

// ExtractionResult holds the plain text pulled out of an upload. Text may be empty.
type ExtractionResult struct {
	Text string
}

// SummaryResponse is the model output for a single prompt.
type SummaryResponse struct {
	SummaryText string
}

// TextExtractor turns file bytes into plain text based on the declared media type.
type TextExtractor interface {
	Extract(ctx context.Context, fileBytes []byte, mediaType MediaType) (ExtractionResult, error)
}

// PDFTextExtractor extracts text from a PDF held in memory.
type PDFTextExtractor interface {
	ExtractText(pdfBytes []byte) (string, error)
}

// OCREngine recognizes text in an encoded image.
type OCREngine interface {
	Recognize(imageBytes []byte, language string) (string, error)
}

// SummaryClient sends a prompt to the generative-text service.
type SummaryClient interface {
	Summarize(ctx context.Context, prompt string) (SummaryResponse, error)
}

// SummaryService runs the extract, prompt and summarize pipeline for one upload.
type SummaryService interface {
	Summarize(ctx context.Context, req UploadRequest) (SummaryResponse, error)
}
