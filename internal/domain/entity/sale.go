package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta completada.
// Invariante: TotalAmount == NetAmount + IVATotal, y ambos igualan las sumas
// de los campos por línea de sus detalles. Se crea una sola vez, de forma
// atómica, por el motor de ventas; nunca se muta después de IsCompleted.
type Sale struct {
	ID          string
	SaleDate    time.Time
	CashierID   string
	NetAmount   decimal.Decimal // suma de subtotales (antes de IVA)
	IVATotal    decimal.Decimal // suma de IVA por línea (redondeado a 2 decimales por línea)
	TotalAmount decimal.Decimal // NetAmount + IVATotal
	IsCompleted bool
}
