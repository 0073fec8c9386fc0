package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sony/gobreaker"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

const geminiModel = "gemini-2.5-flash"

// GeminiClient is the single-attempt generation provider. No retries; the
// credit-gated flow owns the compensation story. A circuit breaker keeps a
// flapping provider from burning every caller's latency budget.
type GeminiClient struct {
	apiKey  string
	breaker *gobreaker.CircuitBreaker
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey: apiKey,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "gemini",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// Generate returns the full text for prompt in one shot.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", entities.NotConfiguredError("GOOGLE_API_KEY")
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
		if err != nil {
			return nil, err
		}
		defer client.Close()

		resp, err := client.GenerativeModel(geminiModel).GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return nil, err
		}
		return responseText(resp), nil
	})
	if err != nil {
		return "", entities.GenerationError(err)
	}
	return result.(string), nil
}

// GenerateStream relays chunks to onChunk as they arrive and returns the
// accumulated text once the provider stream ends. An onChunk error aborts
// the stream (the caller disconnected) and is returned as-is.
func (c *GeminiClient) GenerateStream(ctx context.Context, prompt string, onChunk func(string) error) (string, error) {
	if c.apiKey == "" {
		return "", entities.NotConfiguredError("GOOGLE_API_KEY")
	}

	var callerErr error
	result, err := c.breaker.Execute(func() (interface{}, error) {
		client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
		if err != nil {
			return nil, err
		}
		defer client.Close()

		iter := client.GenerativeModel(geminiModel).GenerateContentStream(ctx, genai.Text(prompt))
		var full string
		for {
			resp, err := iter.Next()
			if errors.Is(err, iterator.Done) {
				break
			}
			if err != nil {
				return nil, err
			}
			chunk := responseText(resp)
			if chunk == "" {
				continue
			}
			full += chunk
			if err := onChunk(chunk); err != nil {
				callerErr = err
				return full, nil
			}
		}
		return full, nil
	})
	if err != nil {
		return "", entities.GenerationError(err)
	}
	if callerErr != nil {
		return result.(string), callerErr
	}
	return result.(string), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	return out
}
