package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-minimarket/internal/domain/entity"
	"github.com/tu-usuario/pos-minimarket/internal/domain/repository"
)

var _ repository.TaxRateRepository = (*TaxRateRepo)(nil)

// TaxRateRepo implementación de TaxRateRepository sobre la fila singleton
// IVA_ESTANDAR de tax_rates.
type TaxRateRepo struct {
	q Querier
}

// NewTaxRateRepository construye el adaptador.
func NewTaxRateRepository(q Querier) *TaxRateRepo {
	return &TaxRateRepo{q: q}
}

// GetActive lee la tasa vigente. (nil, nil) si nunca se configuró.
func (r *TaxRateRepo) GetActive() (*entity.TaxRate, error) {
	var t entity.TaxRate
	err := r.q.QueryRow(context.Background(),
		`SELECT name, rate, updated_at FROM tax_rates WHERE name = $1`,
		entity.TaxRateStandardName,
	).Scan(&t.Name, &t.Rate, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tax rate: %w", err)
	}
	return &t, nil
}

// Upsert sobreescribe la tasa vigente. Sin historial: una sola fila por nombre.
func (r *TaxRateRepo) Upsert(rate *entity.TaxRate) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO tax_rates (name, rate, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO UPDATE SET rate = EXCLUDED.rate, updated_at = EXCLUDED.updated_at`,
		rate.Name, rate.Rate, rate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert tax rate: %w", err)
	}
	return nil
}
