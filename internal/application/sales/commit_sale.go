package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-minimarket/internal/application/dto"
	"github.com/tu-usuario/pos-minimarket/internal/domain"
	"github.com/tu-usuario/pos-minimarket/internal/domain/entity"
	"github.com/tu-usuario/pos-minimarket/internal/domain/repository"
	"github.com/tu-usuario/pos-minimarket/pkg/logger"
)

// CommitSaleUseCase registra una venta: valida stock, calcula totales con la
// tasa de IVA vigente, descuenta inventario y persiste cabecera y detalles en
// una sola transacción. Sin modo de éxito parcial: o todo o nada.
type CommitSaleUseCase struct {
	txRunner    TxRunner
	cashierRepo repository.CashierRepository
	taxRateRepo repository.TaxRateRepository
	saleRepo    repository.SaleRepository
	defaultIVA  decimal.Decimal
	log         *logger.Logger
}

// NewCommitSaleUseCase construye el motor de ventas. defaultIVA es la tasa
// aplicada cuando la fila IVA_ESTANDAR no existe.
func NewCommitSaleUseCase(
	txRunner TxRunner,
	cashierRepo repository.CashierRepository,
	taxRateRepo repository.TaxRateRepository,
	saleRepo repository.SaleRepository,
	defaultIVA decimal.Decimal,
	log *logger.Logger,
) *CommitSaleUseCase {
	return &CommitSaleUseCase{
		txRunner:    txRunner,
		cashierRepo: cashierRepo,
		taxRateRepo: taxRateRepo,
		saleRepo:    saleRepo,
		defaultIVA:  defaultIVA,
		log:         log,
	}
}

// normalizeRate acepta la tasa como fracción (0.19) o porcentaje (19) y
// devuelve siempre la fracción.
func normalizeRate(rate decimal.Decimal) decimal.Decimal {
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return rate.Div(decimal.NewFromInt(100))
	}
	return rate
}

// activeIVARate lee la tasa vigente una sola vez; es el snapshot para toda la
// venta. Si no hay fila configurada se usa la tasa por defecto (disponibilidad
// sobre estrictez) dejando constancia en el log.
func (uc *CommitSaleUseCase) activeIVARate() (decimal.Decimal, error) {
	cfg, err := uc.taxRateRepo.GetActive()
	if err != nil {
		return decimal.Zero, err
	}
	if cfg == nil {
		uc.log.Warn().
			Str("default_rate", uc.defaultIVA.String()).
			Msg("tasa de IVA no configurada, aplicando tasa por defecto")
		return uc.defaultIVA, nil
	}
	return normalizeRate(cfg.Rate), nil
}

// CommitSale ejecuta la venta completa.
//
// Validaciones previas (sin mutación): carro no vacío, cantidades > 0,
// cajero existente (su actividad la valida el flujo de login, no este motor).
// Dentro de la transacción, por cada línea en orden de entrada: resolver el
// producto con bloqueo de fila, verificar stock, calcular subtotal e IVA de la
// línea (ambos redondeados a 2 decimales por línea), descontar stock y preparar
// el detalle, numerado en orden de entrada, con precio y tasa copiados al
// momento de la venta. Cualquier fallo
// revierte todo: ni descuentos de stock parciales ni filas huérfanas.
func (uc *CommitSaleUseCase) CommitSale(ctx context.Context, in dto.CommitSaleRequest) (*dto.SaleResponse, error) {
	if in.CashierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	cashier, err := uc.cashierRepo.GetByID(in.CashierID)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, domain.ErrCashierNotFound
	}

	ivaRate, err := uc.activeIVARate()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		SaleDate:  now,
		CashierID: cashier.ID,
	}
	var details []*entity.SaleDetail

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		netAmount := decimal.Zero
		ivaTotal := decimal.Zero

		for i, item := range in.Items {
			// FOR UPDATE: serializa check-then-decrement frente a ventas concurrentes
			product, err := productRepo.GetByIDForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.ProductNotFoundError{ProductID: item.ProductID}
			}
			if product.Stock.LessThan(item.Quantity) {
				return &domain.InsufficientStockError{
					ProductID: product.ID,
					Available: product.Stock,
					Requested: item.Quantity,
				}
			}

			// Redondeado a 2 decimales al igual que en la tabla (NUMERIC(14,2)):
			// los agregados se acumulan sobre los mismos valores que se persisten.
			subtotal := item.Quantity.Mul(product.Price).Round(2)
			appliedRate := ivaRate
			if product.IVAExempt {
				appliedRate = decimal.Zero
			}
			lineIVA := subtotal.Mul(appliedRate).Round(2)

			netAmount = netAmount.Add(subtotal)
			ivaTotal = ivaTotal.Add(lineIVA)

			if err := productRepo.DecrementStock(product.ID, item.Quantity); err != nil {
				return err
			}

			details = append(details, &entity.SaleDetail{
				ID:                  uuid.New().String(),
				SaleID:              sale.ID,
				LineNo:              i + 1,
				ProductID:           product.ID,
				Quantity:            item.Quantity,
				PriceAtSale:         product.Price,
				Subtotal:            subtotal,
				IVAPercentageAtSale: appliedRate,
				IVAAmount:           lineIVA,
			})
		}

		sale.NetAmount = netAmount
		sale.IVATotal = ivaTotal
		sale.TotalAmount = netAmount.Add(ivaTotal)
		sale.IsCompleted = true

		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, d := range details {
			if err := saleRepo.CreateDetail(d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// rollback ya ocurrió; los detalles preparados se descartan
		details = nil
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("cashier_id", sale.CashierID).
		Str("total", sale.TotalAmount.String()).
		Int("lines", len(details)).
		Msg("venta registrada")

	return toSaleResponse(sale, details), nil
}

// GetSale obtiene una venta completada con su detalle.
func (uc *CommitSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.saleRepo.GetDetailsBySaleID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, details), nil
}

func toSaleResponse(sale *entity.Sale, details []*entity.SaleDetail) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:          sale.ID,
		SaleDate:    sale.SaleDate,
		CashierID:   sale.CashierID,
		NetAmount:   sale.NetAmount,
		IVATotal:    sale.IVATotal,
		TotalAmount: sale.TotalAmount,
		IsCompleted: sale.IsCompleted,
		Details:     make([]dto.SaleDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.SaleDetailResponse{
			ID:                  d.ID,
			LineNo:              d.LineNo,
			ProductID:           d.ProductID,
			Quantity:            d.Quantity,
			PriceAtSale:         d.PriceAtSale,
			Subtotal:            d.Subtotal,
			IVAPercentageAtSale: d.IVAPercentageAtSale,
			IVAAmount:           d.IVAAmount,
		})
	}
	return resp
}
