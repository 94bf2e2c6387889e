package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-minimarket/internal/domain"
	"github.com/tu-usuario/pos-minimarket/internal/domain/entity"
	"github.com/tu-usuario/pos-minimarket/internal/domain/repository"
)

var _ repository.CashierRepository = (*CashierRepo)(nil)

// CashierRepo implementación de CashierRepository (usable con pool o tx).
// El RUT ya llega canónico desde la capa de aplicación.
type CashierRepo struct {
	q Querier
}

// NewCashierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCashierRepository(q Querier) *CashierRepo {
	return &CashierRepo{q: q}
}

// Create persiste un nuevo cajero.
func (r *CashierRepo) Create(cashier *entity.Cashier) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO cashiers (id, name, rut, active) VALUES ($1, $2, $3, $4)`,
		cashier.ID, cashier.Name, cashier.RUT, cashier.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cashier: %w", err)
	}
	return nil
}

// GetByID obtiene un cajero por ID.
func (r *CashierRepo) GetByID(id string) (*entity.Cashier, error) {
	return r.getOne(`SELECT id, name, rut, active FROM cashiers WHERE id = $1`, id)
}

// GetByRUT busca por RUT canónico.
func (r *CashierRepo) GetByRUT(rut string) (*entity.Cashier, error) {
	return r.getOne(`SELECT id, name, rut, active FROM cashiers WHERE rut = $1`, rut)
}

func (r *CashierRepo) getOne(query, arg string) (*entity.Cashier, error) {
	var c entity.Cashier
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&c.ID, &c.Name, &c.RUT, &c.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cashier: %w", err)
	}
	return &c, nil
}

// Update actualiza nombre, RUT y actividad.
func (r *CashierRepo) Update(cashier *entity.Cashier) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cashiers SET name = $2, rut = $3, active = $4 WHERE id = $1`,
		cashier.ID, cashier.Name, cashier.RUT, cashier.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cashier: %w", err)
	}
	return nil
}

// List lista todos los cajeros.
func (r *CashierRepo) List() ([]*entity.Cashier, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, rut, active FROM cashiers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list cashiers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cashier
	for rows.Next() {
		var c entity.Cashier
		if err := rows.Scan(&c.ID, &c.Name, &c.RUT, &c.Active); err != nil {
			return nil, fmt.Errorf("scan cashier: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cajero por ID.
func (r *CashierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cashiers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cashier: %w", err)
	}
	return nil
}
