package entity

import "github.com/shopspring/decimal"

// SaleDetail representa una línea de una venta. Su ciclo de vida está atado a la venta.
// PriceAtSale e IVAPercentageAtSale son copias tomadas al momento del commit:
// cambios posteriores de precio o tasa nunca reescriben ventas históricas.
// Invariantes: Subtotal == round(Quantity × PriceAtSale, 2);
// IVAAmount == round(Subtotal × IVAPercentageAtSale, 2).
type SaleDetail struct {
	ID                  string
	SaleID              string
	LineNo              int // 1..n, orden de entrada del carro
	ProductID           string
	Quantity            decimal.Decimal // > 0, admite fracciones (pesables)
	PriceAtSale         decimal.Decimal
	Subtotal            decimal.Decimal
	IVAPercentageAtSale decimal.Decimal // 0 si el producto es exento
	IVAAmount           decimal.Decimal
}
