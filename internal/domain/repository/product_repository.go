package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-minimarket/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate obtiene el producto bloqueando su fila (SELECT ... FOR UPDATE)
	// para la secuencia check-stock-luego-descontar del motor de ventas.
	// Devuelve (nil, nil) si no existe.
	GetByIDForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// DecrementStock descuenta quantity del stock. Solo el motor de ventas lo
	// invoca, dentro de la transacción de la venta.
	DecrementStock(productID string, quantity decimal.Decimal) error
	List(limit, offset int) ([]*entity.Product, error)
	Search(query string, limit int) ([]*entity.Product, error)
	// ListLowStock lista productos con stock <= min_stock (solo reportes).
	ListLowStock() ([]*entity.Product, error)
	Delete(id string) error
}
