package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto (admin).
type CreateProductRequest struct {
	Barcode     string          `json:"barcode"`
	Name        string          `json:"name"`
	CategoryID  string          `json:"category_id"`
	Description string          `json:"description"`
	Brand       string          `json:"brand"`
	Stock       decimal.Decimal `json:"stock"`
	MinStock    decimal.Decimal `json:"min_stock"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	IVAExempt   bool            `json:"iva_exempt"`
}

// UpdateProductRequest modificación de producto (admin). Campos nil no se tocan.
type UpdateProductRequest struct {
	Barcode     *string          `json:"barcode"`
	Name        *string          `json:"name"`
	CategoryID  *string          `json:"category_id"`
	Description *string          `json:"description"`
	Brand       *string          `json:"brand"`
	Stock       *decimal.Decimal `json:"stock"`
	MinStock    *decimal.Decimal `json:"min_stock"`
	Price       *decimal.Decimal `json:"price"`
	Discount    *decimal.Decimal `json:"discount"`
	IVAExempt   *bool            `json:"iva_exempt"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID          string          `json:"id"`
	Barcode     string          `json:"barcode,omitempty"`
	Name        string          `json:"name"`
	CategoryID  string          `json:"category_id"`
	Description string          `json:"description,omitempty"`
	Brand       string          `json:"brand,omitempty"`
	Stock       decimal.Decimal `json:"stock"`
	MinStock    decimal.Decimal `json:"min_stock"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	IVAExempt   bool            `json:"iva_exempt"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items  []ProductResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
