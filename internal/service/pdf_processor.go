package service

import (
	"fmt"
	"strings"

	"doc-summarizer/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// PDFProcessor extracts text from PDF documents using MuPDF.
type PDFProcessor struct {
	logger domain.Logger
}

// NewPDFProcessor creates a new PDF processor
func NewPDFProcessor(logger domain.Logger) *PDFProcessor {
	return &PDFProcessor{
		logger: logger,
	}
}

// ExtractText returns the text of every page, in order, separated by blank lines.
// Pages that cannot be read contribute nothing; a document that cannot be opened is an error.
func (p *PDFProcessor) ExtractText(pdfBytes []byte) (string, error) {
	if len(pdfBytes) == 0 {
		return "", domain.ErrEmptyDocument
	}

	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)

	for pageNum := 0; pageNum < numPages; pageNum++ {
		p.logger.Debug("PDF processing page", "page", pageNum+1, "total", numPages)

		text, err := doc.Text(pageNum)
		if err != nil {
			p.logger.Warn("Failed to extract text from page", "page_num", pageNum+1, "total", numPages, "error", err)
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n\n"), nil
}
