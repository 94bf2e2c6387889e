package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesTotals agregados de ventas completadas de un día.
type DailySalesTotals struct {
	SalesCount  int
	NetAmount   decimal.Decimal
	IVAAmount   decimal.Decimal
	GrossAmount decimal.Decimal
}

// CashierBreakdownRow desglose por cajero para el reporte diario.
type CashierBreakdownRow struct {
	CashierID   string
	CashierName string
	SalesCount  int
	GrossTotal  decimal.Decimal
}

// ReportRepository consultas de solo lectura sobre ventas y catálogo.
// Nunca escribe; solo observa ventas completamente confirmadas.
type ReportRepository interface {
	// GetDailySalesTotals agrega las ventas completadas en [from, to).
	GetDailySalesTotals(ctx context.Context, from, to time.Time) (*DailySalesTotals, error)
	// GetCashierBreakdown agrupa conteo y total bruto por cajero en [from, to).
	GetCashierBreakdown(ctx context.Context, from, to time.Time) ([]CashierBreakdownRow, error)
}
