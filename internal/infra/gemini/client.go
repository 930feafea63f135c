// Package gemini adapts Google's Gemini API to domain.SummaryClient.
package gemini

import (
	"context"
	"fmt"

	"doc-summarizer/internal/domain"

	"google.golang.org/genai"
)

// Model is the fixed generative model used for every summary.
const Model = "gemini-2.0-flash-001"

// Client implements domain.SummaryClient on top of the genai SDK.
// It is created once at startup and is safe for concurrent use.
type Client struct {
	genaiClient *genai.Client
	model       string
	logger      domain.Logger
}

// NewClient creates a Gemini API client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string, logger domain.Logger) (*Client, error) {
	return newClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, logger)
}

func newClient(ctx context.Context, cfg *genai.ClientConfig, logger domain.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrMissingCredential
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		genaiClient: client,
		model:       Model,
		logger:      logger,
	}, nil
}

// Summarize sends prompt in a single GenerateContent call. Failures are returned as-is; there is no retry.
func (c *Client) Summarize(ctx context.Context, prompt string) (domain.SummaryResponse, error) {
	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return domain.SummaryResponse{}, fmt.Errorf("gemini call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return domain.SummaryResponse{}, domain.ErrEmptyResponse
	}

	if resp.UsageMetadata != nil {
		c.logger.Debug("Gemini usage",
			"model", c.model,
			"prompt_tokens", resp.UsageMetadata.PromptTokenCount,
			"candidate_tokens", resp.UsageMetadata.CandidatesTokenCount,
		)
	}

	return domain.SummaryResponse{SummaryText: resp.Text()}, nil
}
