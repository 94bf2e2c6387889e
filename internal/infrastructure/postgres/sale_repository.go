package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-minimarket/internal/domain/entity"
	"github.com/tu-usuario/pos-minimarket/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository. En el camino de escritura el
// motor de ventas lo construye sobre la tx; para lecturas sirve el pool.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO sales (id, sale_date, cashier_id, net_amount, iva_total, total_amount, is_completed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sale.ID, sale.SaleDate, sale.CashierID,
		sale.NetAmount, sale.IVATotal, sale.TotalAmount, sale.IsCompleted,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de la venta.
func (r *SaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO sale_details (id, sale_id, line_no, product_id, quantity, price_at_sale, subtotal, iva_percentage_at_sale, iva_amount)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		detail.ID, detail.SaleID, detail.LineNo, detail.ProductID, detail.Quantity,
		detail.PriceAtSale, detail.Subtotal, detail.IVAPercentageAtSale, detail.IVAAmount,
	)
	if err != nil {
		return fmt.Errorf("insert sale detail: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta. (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(),
		`SELECT id, sale_date, cashier_id, net_amount, iva_total, total_amount, is_completed
		 FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.SaleDate, &s.CashierID, &s.NetAmount, &s.IVATotal, &s.TotalAmount, &s.IsCompleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetDetailsBySaleID lista las líneas de una venta en el orden del carro
// (line_no asignado por el motor al confirmar).
func (r *SaleRepo) GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, sale_id, line_no, product_id, quantity, price_at_sale, subtotal, iva_percentage_at_sale, iva_amount
		 FROM sale_details WHERE sale_id = $1 ORDER BY line_no`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale details: %w", err)
	}
	defer rows.Close()
	var details []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(&d.ID, &d.SaleID, &d.LineNo, &d.ProductID, &d.Quantity,
			&d.PriceAtSale, &d.Subtotal, &d.IVAPercentageAtSale, &d.IVAAmount); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		details = append(details, &d)
	}
	return details, rows.Err()
}
