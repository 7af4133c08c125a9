package gemini

import (
	"Agri-Assist-Backend/domain"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash-preview-05-20"
)

type (
	// Completer sends one instruction to a text-generation backend and returns
	// the first candidate's text.
	Completer interface {
		Complete(ctx context.Context, instruction string) (string, error)
	}

	Config struct {
		APIKey  string
		Model   string
		BaseURL string
	}

	restCompleter struct {
		httpClient *http.Client
		config     Config
	}
)

func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	return c
}

// NewRESTCompleter calls the generateContent endpoint directly over HTTP.
// A nil httpClient uses a client with transport defaults and no timeout.
func NewRESTCompleter(httpClient *http.Client, config Config) Completer {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &restCompleter{
		httpClient: httpClient,
		config:     config.withDefaults(),
	}
}

func (c *restCompleter) Complete(ctx context.Context, instruction string) (string, error) {
	if c.config.APIKey == "" {
		return "", domain.ErrGeminiNotConfigured
	}

	geminiURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(c.config.BaseURL, "/"), c.config.Model, url.QueryEscape(c.config.APIKey))

	requestBody := domain.GenerateContentRequest{
		Contents: []domain.GeminiContent{
			{Parts: []domain.GeminiPart{{Text: instruction}}},
		},
	}
	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: %s - %s", domain.ErrGeminiBadStatus, resp.Status, string(bodyBytes))
	}

	var geminiResp domain.GenerateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrGeminiRequestFailed, err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiEmptyResponse
	}

	text := geminiResp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", domain.ErrGeminiEmptyResponse
	}
	return text, nil
}
