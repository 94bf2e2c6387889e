package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxRateStandardName nombre fijo de la fila singleton de configuración de IVA.
const TaxRateStandardName = "IVA_ESTANDAR"

// TaxRate configuración singleton de la tasa de IVA, identificada por nombre.
// Una actualización es sobreescritura destructiva: no se guarda historial.
// Las ventas conservan su tasa histórica porque SaleDetail la copia al commit.
type TaxRate struct {
	Name      string
	Rate      decimal.Decimal // 0.0 <= rate, fracción (0.19 = 19%)
	UpdatedAt time.Time       // tocado en cada escritura
}
