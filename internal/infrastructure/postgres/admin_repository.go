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

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación de AdminRepository.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador.
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// Create persiste el administrador. El hash ya viene calculado (bcrypt).
func (r *AdminRepo) Create(admin *entity.Admin) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO admins (id, username, name, password_hash, active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		admin.ID, admin.Username, admin.Name, admin.PasswordHash, admin.Active, admin.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByUsername obtiene un administrador por username. (nil, nil) si no existe.
func (r *AdminRepo) GetByUsername(username string) (*entity.Admin, error) {
	var a entity.Admin
	err := r.q.QueryRow(context.Background(),
		`SELECT id, username, name, password_hash, active, created_at
		 FROM admins WHERE username = $1`, username,
	).Scan(&a.ID, &a.Username, &a.Name, &a.PasswordHash, &a.Active, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

// Count cuenta los administradores existentes.
func (r *AdminRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM admins`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}
