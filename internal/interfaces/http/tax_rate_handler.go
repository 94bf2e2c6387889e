package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-minimarket/internal/application/dto"
	"github.com/tu-usuario/pos-minimarket/internal/application/usecase"
	"github.com/tu-usuario/pos-minimarket/internal/domain"
)

// TaxRateHandler maneja la tasa de IVA configurable (protegido).
type TaxRateHandler struct {
	uc *usecase.TaxRateUseCase
}

// NewTaxRateHandler construye el handler.
func NewTaxRateHandler(uc *usecase.TaxRateUseCase) *TaxRateHandler {
	return &TaxRateHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener la tasa de IVA vigente
// @Tags         tax-rate
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TaxRateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tax-rate [get]
func (h *TaxRateHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		if errors.Is(err, domain.ErrTaxRateNotConfigured) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_CONFIGURED", Message: "la tasa de IVA no está configurada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar la tasa de IVA
// @Tags         tax-rate
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateTaxRateRequest  true  "rate (fracción: 0.19 = 19%)"
// @Success      200   {object}  dto.TaxRateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax-rate [put]
func (h *TaxRateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaxRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rate no puede ser negativa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
