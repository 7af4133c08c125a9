package gemini

import (
	"Agri-Assist-Backend/domain"
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

type genAICompleter struct {
	client *genai.Client
	model  string
}

// NewGenAICompleter sends the instruction through the Google GenAI SDK. With
// an empty API key no client is built and Complete reports the missing key.
func NewGenAICompleter(ctx context.Context, httpClient *http.Client, config Config) (Completer, error) {
	config = config.withDefaults()
	if config.APIKey == "" {
		return &genAICompleter{model: config.Model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     config.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: config.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &genAICompleter{
		client: client,
		model:  config.Model,
	}, nil
}

func (c *genAICompleter) Complete(ctx context.Context, instruction string) (string, error) {
	if c.client == nil {
		return "", domain.ErrGeminiNotConfigured
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(instruction), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: %d %s", domain.ErrGeminiBadStatus, apiErr.Code, apiErr.Message)
		}
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiRequestFailed, err)
	}

	if len(result.Candidates) == 0 {
		return "", domain.ErrGeminiEmptyResponse
	}
	content := result.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil || content.Parts[0].Text == "" {
		return "", domain.ErrGeminiEmptyResponse
	}
	return content.Parts[0].Text, nil
}
