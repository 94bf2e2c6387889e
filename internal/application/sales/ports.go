package sales

import (
	"context"

	"github.com/tu-usuario/pos-minimarket/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una unidad de trabajo atómica: los repos que
// recibe fn están atados a la misma transacción. Si fn retorna error, todo se
// revierte; el commit ocurre en un único punto al final.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
