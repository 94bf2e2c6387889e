package repository

import "github.com/tu-usuario/pos-minimarket/internal/domain/entity"

// CashierRepository define el puerto de persistencia para Cashier (DIP).
type CashierRepository interface {
	Create(cashier *entity.Cashier) error
	GetByID(id string) (*entity.Cashier, error)
	// GetByRUT busca por RUT canónico. Devuelve (nil, nil) si no existe.
	GetByRUT(rut string) (*entity.Cashier, error)
	Update(cashier *entity.Cashier) error
	List() ([]*entity.Cashier, error)
	Delete(id string) error
}
