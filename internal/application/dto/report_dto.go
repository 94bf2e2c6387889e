package dto

import "github.com/shopspring/decimal"

// CashierBreakdown conteo y total bruto de un cajero en el día.
type CashierBreakdown struct {
	CashierID   string          `json:"cashier_id"`
	CashierName string          `json:"cashier_name"`
	Count       int             `json:"count"`
	GrossTotal  decimal.Decimal `json:"gross_total"`
}

// DailySalesReportResponse resumen de ventas de un día.
type DailySalesReportResponse struct {
	Date             string             `json:"date"` // AAAA-MM-DD
	TotalSalesCount  int                `json:"total_sales_count"`
	TotalNetAmount   decimal.Decimal    `json:"total_net_amount"`
	TotalIVAAmount   decimal.Decimal    `json:"total_iva_amount"`
	TotalGrossAmount decimal.Decimal    `json:"total_gross_amount"`
	CashierBreakdown []CashierBreakdown `json:"cashier_breakdown"`
}

// LowStockProduct producto bajo o igual a su umbral mínimo.
type LowStockProduct struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Stock    decimal.Decimal `json:"stock"`
	MinStock decimal.Decimal `json:"min_stock"`
}
