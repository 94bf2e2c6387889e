package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/pos-minimarket/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para reportes.
// Trabaja siempre sobre el pool: los reportes nunca participan de una tx
// y solo ven ventas con is_completed = true.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetDailySalesTotals agrega las ventas completadas en [from, to).
func (r *ReportRepo) GetDailySalesTotals(ctx context.Context, from, to time.Time) (*repository.DailySalesTotals, error) {
	var t repository.DailySalesTotals
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(net_amount), 0),
		        COALESCE(SUM(iva_total), 0),
		        COALESCE(SUM(total_amount), 0)
		 FROM sales
		 WHERE is_completed AND sale_date >= $1 AND sale_date < $2`,
		from, to,
	).Scan(&t.SalesCount, &t.NetAmount, &t.IVAAmount, &t.GrossAmount)
	if err != nil {
		return nil, fmt.Errorf("daily sales totals: %w", err)
	}
	return &t, nil
}

// GetCashierBreakdown agrupa conteo y total bruto por cajero en [from, to).
func (r *ReportRepo) GetCashierBreakdown(ctx context.Context, from, to time.Time) ([]repository.CashierBreakdownRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.cashier_id, c.name, COUNT(*), COALESCE(SUM(s.total_amount), 0)
		 FROM sales s
		 JOIN cashiers c ON c.id = s.cashier_id
		 WHERE s.is_completed AND s.sale_date >= $1 AND s.sale_date < $2
		 GROUP BY s.cashier_id, c.name
		 ORDER BY SUM(s.total_amount) DESC`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("cashier breakdown: %w", err)
	}
	defer rows.Close()
	var breakdown []repository.CashierBreakdownRow
	for rows.Next() {
		var row repository.CashierBreakdownRow
		if err := rows.Scan(&row.CashierID, &row.CashierName, &row.SalesCount, &row.GrossTotal); err != nil {
			return nil, fmt.Errorf("scan breakdown row: %w", err)
		}
		breakdown = append(breakdown, row)
	}
	return breakdown, rows.Err()
}
