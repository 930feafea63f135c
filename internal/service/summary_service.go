package service

import (
	"context"

	"doc-summarizer/internal/domain"
	apperrors "doc-summarizer/pkg/errors"
)

// SummaryService runs one upload through extraction, prompt building and generation.
type SummaryService struct {
	extractor domain.TextExtractor
	client    domain.SummaryClient
	logger    domain.Logger
}

// NewSummaryService creates a new summary service
func NewSummaryService(extractor domain.TextExtractor, client domain.SummaryClient, logger domain.Logger) *SummaryService {
	return &SummaryService{
		extractor: extractor,
		client:    client,
		logger:    logger,
	}
}

// Summarize executes the pipeline exactly once. There are no retries and nothing is cached:
// every call that gets past extraction makes one request to the generative service.
func (s *SummaryService) Summarize(ctx context.Context, req domain.UploadRequest) (domain.SummaryResponse, error) {
	extracted, err := s.extractor.Extract(ctx, req.FileBytes, req.MediaType)
	if err != nil {
		return domain.SummaryResponse{}, err
	}
	s.logger.Debug("Text extracted", "filename", req.Filename, "media_type", req.MediaType, "chars", len(extracted.Text))

	prompt := BuildSummaryPrompt(extracted.Text, req.SummaryLength)

	resp, err := s.client.Summarize(ctx, prompt)
	if err != nil {
		return domain.SummaryResponse{}, apperrors.NewGenerationError(err)
	}

	return resp, nil
}
