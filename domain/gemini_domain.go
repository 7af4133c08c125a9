package domain

import (
	"errors"
)

var (
	MessagePromptRequired = "Prompt is required"

	// Fallback answers returned in place of AI text. They are part of the
	// response body, never an HTTP error.
	MessageGeminiNotConfigured = "Sorry, the AI service is not configured correctly."
	MessageGeminiBadStatus     = "Sorry, I could not get a response from the AI in %s."
	MessageGeminiRequestFailed = "There was a problem contacting the AI service."
	MessageGeminiNoText        = "No response text found."

	ErrGeminiNotConfigured = errors.New("gemini API key is not configured")
	ErrGeminiBadStatus     = errors.New("gemini API returned a non-success status")
	ErrGeminiRequestFailed = errors.New("gemini request failed")
	ErrGeminiEmptyResponse = errors.New("gemini response has no text")
)

type (
	GeminiRequest struct {
		Prompt   string `json:"prompt" validate:"required"`
		Language string `json:"language,omitempty"`
	}

	GeminiResponse struct {
		Response string `json:"response"`
	}

	// GenerateContentRequest is the wire body of models/{model}:generateContent.
	GenerateContentRequest struct {
		Contents []GeminiContent `json:"contents"`
	}

	GenerateContentResponse struct {
		Candidates []struct {
			Content GeminiContent `json:"content"`
		} `json:"candidates"`
	}

	GeminiContent struct {
		Parts []GeminiPart `json:"parts"`
	}

	GeminiPart struct {
		Text string `json:"text"`
	}
)
