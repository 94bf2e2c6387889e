package repository

import "github.com/tu-usuario/pos-minimarket/internal/domain/entity"

// TaxRateRepository define el puerto de persistencia para la tasa de IVA singleton.
type TaxRateRepository interface {
	// GetActive lee la fila IVA_ESTANDAR. Devuelve (nil, nil) si no está
	// configurada; el motor de ventas interpreta eso como "usar tasa por defecto".
	GetActive() (*entity.TaxRate, error)
	// Upsert sobreescribe la tasa y toca UpdatedAt. No se conserva historial.
	Upsert(rate *entity.TaxRate) error
}
