package config

import (
	"context"
	"fmt"

	"doc-summarizer/internal/domain"
	"doc-summarizer/internal/infra/gemini"
	"doc-summarizer/internal/service"
	"doc-summarizer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	TextExtractor  domain.TextExtractor
	SummaryClient  domain.SummaryClient
	SummaryService domain.SummaryService
}

// NewContainer creates a new dependency injection container.
// It fails when the generative service credential is missing.
func NewContainer(ctx context.Context) (*Container, error) {
	config, err := NewConfig()
	if err != nil {
		return nil, err
	}
	appLogger := logger.NewLogger(config.GetLogLevel())

	extractor := service.NewTextExtractor(
		service.NewPDFProcessor(appLogger),
		service.NewOCRProcessor(appLogger),
		appLogger,
	)

	summaryClient, err := gemini.NewClient(ctx, config.GetGeminiAPIKey(), appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize summary client: %w", err)
	}
	appLogger.Info("Gemini client initialized", "model", gemini.Model)

	return &Container{
		Config:         config,
		Logger:         appLogger,
		TextExtractor:  extractor,
		SummaryClient:  summaryClient,
		SummaryService: service.NewSummaryService(extractor, summaryClient, appLogger),
	}, nil
}
