package gemini

import (
	"Agri-Assist-Backend/domain"
	"Agri-Assist-Backend/internal/metrics"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type (
	GeminiService interface {
		// Generate never fails: any problem is reported as a fallback answer.
		Generate(ctx context.Context, prompt string, language string) string
	}

	geminiService struct {
		completer Completer
		logger    *zap.Logger
		metrics   *metrics.Metrics
	}
)

func NewGeminiService(completer Completer, logger *zap.Logger, m *metrics.Metrics) GeminiService {
	return &geminiService{
		completer: completer,
		logger:    logger,
		metrics:   m,
	}
}

// BuildInstruction appends the answer-language request to the user prompt.
func BuildInstruction(prompt string, language string) string {
	if language == "" {
		language = domain.DefaultLanguage
	}
	return fmt.Sprintf("%s. Provide the response in simple, easy-to-understand %s.", prompt, language)
}

func (s *geminiService) Generate(ctx context.Context, prompt string, language string) string {
	if language == "" {
		language = domain.DefaultLanguage
	}

	text, err := s.completer.Complete(ctx, BuildInstruction(prompt, language))
	switch {
	case err == nil:
		s.observe(metrics.OutcomeSuccess)
		return text
	case errors.Is(err, domain.ErrGeminiNotConfigured):
		s.observe(metrics.OutcomeNotConfigured)
		s.logger.Error("Gemini API key is missing")
		return domain.MessageGeminiNotConfigured
	case errors.Is(err, domain.ErrGeminiBadStatus):
		s.observe(metrics.OutcomeBadStatus)
		s.logger.Warn("gemini returned an error status", zap.String("language", language), zap.Error(err))
		return fmt.Sprintf(domain.MessageGeminiBadStatus, language)
	case errors.Is(err, domain.ErrGeminiEmptyResponse):
		s.observe(metrics.OutcomeNoText)
		s.logger.Warn("gemini response had no text")
		return domain.MessageGeminiNoText
	default:
		s.observe(metrics.OutcomeRequestFailed)
		s.logger.Error("gemini request failed", zap.Error(err))
		return domain.MessageGeminiRequestFailed
	}
}

func (s *geminiService) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.GeminiRequests.WithLabelValues(outcome).Inc()
	}
}
