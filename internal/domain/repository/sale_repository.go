package repository

import "github.com/tu-usuario/pos-minimarket/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus detalles.
// Append-only desde la perspectiva del motor: no hay Update ni Delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateDetail(detail *entity.SaleDetail) error
	GetByID(id string) (*entity.Sale, error)
	GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error)
}
