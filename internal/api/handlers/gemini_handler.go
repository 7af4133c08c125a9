package handlers

import (
	"Agri-Assist-Backend/domain"
	"Agri-Assist-Backend/internal/api/presenters"
	"Agri-Assist-Backend/pkg/formatter"
	"Agri-Assist-Backend/pkg/gemini"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GeminiHandler interface {
		Ask(c *fiber.Ctx) error
	}

	geminiHandler struct {
		geminiService gemini.GeminiService
		validator     *validator.Validate
	}
)

func NewGeminiHandler(geminiService gemini.GeminiService, validator *validator.Validate) GeminiHandler {
	return &geminiHandler{
		geminiService: geminiService,
		validator:     validator,
	}
}

func (h *geminiHandler) Ask(c *fiber.Ctx) error {
	req := new(domain.GeminiRequest)

	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessagePromptRequired)
	}

	answer := h.geminiService.Generate(c.UserContext(), req.Prompt, req.Language)

	return presenters.SuccessResponse(c, domain.GeminiResponse{
		Response: formatter.Format(answer),
	}, fiber.StatusOK)
}
