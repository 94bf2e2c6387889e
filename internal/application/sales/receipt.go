package sales

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-minimarket/internal/domain"
	"github.com/tu-usuario/pos-minimarket/internal/domain/entity"
	"github.com/tu-usuario/pos-minimarket/internal/domain/repository"
)

// ReceiptLine línea ya resuelta (con nombre de producto) lista para imprimir.
type ReceiptLine struct {
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	IVARate     decimal.Decimal
	Subtotal    decimal.Decimal
	IVAAmount   decimal.Decimal
}

// ReceiptPDFGenerator puerto de generación del comprobante en PDF.
// La implementación vive en internal/infrastructure/pdf.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, cashier *entity.Cashier, lines []ReceiptLine) ([]byte, error)
}

// ReceiptUseCase arma el comprobante de una venta ya confirmada.
type ReceiptUseCase struct {
	saleRepo    repository.SaleRepository
	cashierRepo repository.CashierRepository
	productRepo repository.ProductRepository
	generator   ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	cashierRepo repository.CashierRepository,
	productRepo repository.ProductRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:    saleRepo,
		cashierRepo: cashierRepo,
		productRepo: productRepo,
		generator:   generator,
	}
}

// GetReceiptPDF genera el PDF del comprobante de la venta dada.
func (uc *ReceiptUseCase) GetReceiptPDF(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	cashier, err := uc.cashierRepo.GetByID(sale.CashierID)
	if err != nil {
		return nil, fmt.Errorf("obtener cajero: %w", err)
	}
	if cashier == nil {
		// El cajero pudo ser eliminado después de la venta; el comprobante
		// sigue siendo generable con un marcador.
		cashier = &entity.Cashier{ID: sale.CashierID, Name: "(cajero eliminado)"}
	}

	details, err := uc.saleRepo.GetDetailsBySaleID(saleID)
	if err != nil {
		return nil, fmt.Errorf("obtener detalles: %w", err)
	}

	lines := make([]ReceiptLine, 0, len(details))
	for _, d := range details {
		name := d.ProductID
		product, err := uc.productRepo.GetByID(d.ProductID)
		if err != nil {
			return nil, fmt.Errorf("obtener producto %s: %w", d.ProductID, err)
		}
		if product != nil {
			name = product.Name
		}
		lines = append(lines, ReceiptLine{
			ProductName: name,
			Quantity:    d.Quantity,
			UnitPrice:   d.PriceAtSale,
			IVARate:     d.IVAPercentageAtSale,
			Subtotal:    d.Subtotal,
			IVAAmount:   d.IVAAmount,
		})
	}

	return uc.generator.GenerateReceiptPDF(ctx, sale, cashier, lines)
}
