package handlers

import (
	"Agri-Assist-Backend/domain"
	"Agri-Assist-Backend/internal/api/presenters"
	"Agri-Assist-Backend/pkg/scan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScanHandler interface {
		SaveScan(c *fiber.Ctx) error
		GetFarms(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService scan.ScanService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		validator:   validator,
	}
}

func (h *scanHandler) SaveScan(c *fiber.Ctx) error {
	req := new(domain.SaveScanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageScanFieldsRequired)
	}

	res, err := h.scanService.SaveScan(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveScan)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *scanHandler) GetFarms(c *fiber.Ctx) error {
	farms, err := h.scanService.ListFarmers(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFarms)
	}

	return presenters.SuccessResponse(c, farms, fiber.StatusOK)
}
