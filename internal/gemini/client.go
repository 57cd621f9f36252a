// Package gemini wraps the google.golang.org/genai SDK behind the small
// generation contract the dispatch engine needs, and classifies backend
// failures into user-facing messages.
package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"codegem/internal/config"
	"codegem/internal/logging"
)

// Generator is the generation backend contract. The dispatch engine only
// ever sees this interface; tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// Options carries the per-call generation parameters.
type Options struct {
	Temperature float64
	Fast        bool  // use the flash model instead of pro
	MaxTokens   int32 // 0 means the configured default
}

// Client calls the Gemini API. One pro and one flash model are configured
// at construction; per call the fast flag selects between them.
type Client struct {
	client           *genai.Client
	proModel         string
	fastModel        string
	defaultMaxTokens int32
}

// NewClient builds a Gemini client from config. The API key must already
// be present; its absence is handled earlier by the bootstrap.
func NewClient(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:           client,
		proModel:         cfg.ProModel,
		fastModel:        cfg.FastModel,
		defaultMaxTokens: cfg.MaxOutputTokens,
	}, nil
}

// Generate sends one prompt and returns the completion text. The call is
// synchronous and carries no internal retry; callers surface the
// classified error text instead.
func (c *Client) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	model := c.proModel
	if opts.Fast {
		model = c.fastModel
	}
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.defaultMaxTokens
	}

	start := time.Now()
	logging.APIDebug("generate model=%s temp=%.2f max_tokens=%d prompt_len=%d",
		model, opts.Temperature, maxTokens, len(prompt))

	resp, err := c.client.Models.GenerateContent(ctx, model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(opts.Temperature)),
			MaxOutputTokens: maxTokens,
		},
	)
	if err != nil {
		logging.APIError("generate failed after %v: %v", time.Since(start), err)
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no completion returned")
	}

	logging.API("generate completed in %v response_len=%d", time.Since(start), len(text))
	return text, nil
}

var _ Generator = (*Client)(nil)
