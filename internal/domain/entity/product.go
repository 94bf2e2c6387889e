package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo del minimarket.
// Stock es decimal para soportar productos pesables (kg de carne, fiambres).
// MinStock es solo un umbral de reporte; el motor de ventas NO lo aplica como piso.
type Product struct {
	ID          string
	Barcode     string // opcional
	Name        string
	CategoryID  string
	Description string
	Brand       string
	Stock       decimal.Decimal // nunca negativo después de un commit
	MinStock    decimal.Decimal
	Price       decimal.Decimal // precio unitario de venta, >= 0
	Discount    decimal.Decimal // opcional, informativo
	IVAExempt   bool            // producto exento: sus líneas siempre llevan IVA 0
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
