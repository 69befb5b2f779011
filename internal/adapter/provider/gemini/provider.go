// Package gemini generates search-grounded text with the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/heartmarshall/carecompanion-backend/internal/provider"
)

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("gemini: empty response")

// Config configures the Provider.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the API endpoint. Used in tests.
	BaseURL string
}

// Provider calls Gemini with the Google Search tool enabled.
type Provider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *slog.Logger
}

// NewProvider builds the client once. Share the Provider, do not rebuild it
// per request.
func NewProvider(ctx context.Context, cfg Config, logger *slog.Logger) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("gemini: model is required")
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Provider{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     logger.With("adapter", "gemini"),
	}, nil
}

// Generate answers prompt, grounding the answer with Google Search.
func (p *Provider) Generate(ctx context.Context, prompt string) (provider.GeneratedText, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		p.log.ErrorContext(ctx, "gemini request failed",
			slog.String("model", p.model),
			slog.String("error", err.Error()),
		)
		return provider.GeneratedText{}, fmt.Errorf("gemini: generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return provider.GeneratedText{}, ErrEmptyResponse
	}

	out := provider.GeneratedText{Text: text, Citations: citations(resp)}

	p.log.DebugContext(ctx, "gemini answered",
		slog.String("model", p.model),
		slog.Int("citations", len(out.Citations)),
		slog.Duration("duration", time.Since(start)),
	)
	return out, nil
}

// citations collects web grounding chunks, deduplicated by URI.
func citations(resp *genai.GenerateContentResponse) []provider.Citation {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	seen := make(map[string]bool)
	var out []provider.Citation
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" || seen[chunk.Web.URI] {
			continue
		}
		seen[chunk.Web.URI] = true
		title := chunk.Web.Title
		if title == "" {
			title = chunk.Web.URI
		}
		out = append(out, provider.Citation{Title: title, URI: chunk.Web.URI})
	}
	return out
}
