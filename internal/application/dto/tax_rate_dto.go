package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateTaxRateRequest nueva tasa de IVA (admin). Fracción: 0.19 = 19%.
type UpdateTaxRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// TaxRateResponse tasa vigente.
type TaxRateResponse struct {
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CategoryRequest alta de categoría.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse categoría del catálogo.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
