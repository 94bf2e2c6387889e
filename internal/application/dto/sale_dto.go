package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea (producto, cantidad) del carro.
type SaleItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"` // > 0, admite fracciones
}

// CommitSaleRequest petición de venta completa del POS.
type CommitSaleRequest struct {
	CashierID string            `json:"cashier_id"`
	Items     []SaleItemRequest `json:"items"`
}

// SaleDetailResponse línea persistida de una venta.
type SaleDetailResponse struct {
	ID                  string          `json:"id"`
	LineNo              int             `json:"line_no"`
	ProductID           string          `json:"product_id"`
	Quantity            decimal.Decimal `json:"quantity"`
	PriceAtSale         decimal.Decimal `json:"price_at_sale"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	IVAPercentageAtSale decimal.Decimal `json:"iva_percentage_at_sale"`
	IVAAmount           decimal.Decimal `json:"iva_amount"`
}

// SaleResponse venta completada con su detalle.
type SaleResponse struct {
	ID          string               `json:"id"`
	SaleDate    time.Time            `json:"sale_date"`
	CashierID   string               `json:"cashier_id"`
	NetAmount   decimal.Decimal      `json:"net_amount"`
	IVATotal    decimal.Decimal      `json:"iva_total"`
	TotalAmount decimal.Decimal      `json:"total_amount"`
	IsCompleted bool                 `json:"is_completed"`
	Details     []SaleDetailResponse `json:"details"`
}
