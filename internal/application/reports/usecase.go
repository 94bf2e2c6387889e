package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/pos-minimarket/internal/application/dto"
	"github.com/tu-usuario/pos-minimarket/internal/domain"
	"github.com/tu-usuario/pos-minimarket/internal/domain/repository"
	"github.com/tu-usuario/pos-minimarket/pkg/logger"
)

// ReportUseCase proyecciones de solo lectura sobre ventas y catálogo.
// Nunca escribe en el dominio; gracias a la atomicidad del motor de ventas
// jamás observa una venta a medio confirmar.
type ReportUseCase struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
	cache       ReportCache
	cacheTTL    time.Duration
	log         *logger.Logger
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	productRepo repository.ProductRepository,
	cache ReportCache,
	cacheTTL time.Duration,
	log *logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:  reportRepo,
		productRepo: productRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		log:         log,
	}
}

// DailySales genera el resumen de ventas de un día (AAAA-MM-DD): conteo,
// sumas neto/IVA/bruto y desglose por cajero. El rango es [from, to) para
// aprovechar el índice sobre sale_date.
func (uc *ReportUseCase) DailySales(ctx context.Context, date string) (*dto.DailySalesReportResponse, error) {
	// sale_date se registra con el reloj local del servidor, así que el día
	// del reporte se interpreta en la misma zona horaria.
	from, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha esperada AAAA-MM-DD", domain.ErrInvalidInput)
	}
	to := from.AddDate(0, 0, 1)

	cacheKey := "reports:daily:" + date
	if cached, ok, err := uc.cache.Get(ctx, cacheKey); err == nil && ok {
		return cached, nil
	} else if err != nil {
		// el cache nunca bloquea el reporte
		uc.log.Warn().Err(err).Str("key", cacheKey).Msg("cache de reportes no disponible")
	}

	totals, err := uc.reportRepo.GetDailySalesTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	breakdown, err := uc.reportRepo.GetCashierBreakdown(ctx, from, to)
	if err != nil {
		return nil, err
	}

	resp := &dto.DailySalesReportResponse{
		Date:             date,
		TotalSalesCount:  totals.SalesCount,
		TotalNetAmount:   totals.NetAmount,
		TotalIVAAmount:   totals.IVAAmount,
		TotalGrossAmount: totals.GrossAmount,
		CashierBreakdown: make([]dto.CashierBreakdown, 0, len(breakdown)),
	}
	for _, row := range breakdown {
		resp.CashierBreakdown = append(resp.CashierBreakdown, dto.CashierBreakdown{
			CashierID:   row.CashierID,
			CashierName: row.CashierName,
			Count:       row.SalesCount,
			GrossTotal:  row.GrossTotal,
		})
	}

	if err := uc.cache.Set(ctx, cacheKey, resp, uc.cacheTTL); err != nil {
		uc.log.Warn().Err(err).Str("key", cacheKey).Msg("no se pudo guardar el reporte en cache")
	}
	return resp, nil
}

// LowStock lista productos con stock <= min_stock (alerta de reabastecimiento).
// min_stock es solo umbral de reporte; el motor de ventas no lo aplica.
func (uc *ReportUseCase) LowStock(ctx context.Context) ([]dto.LowStockProduct, error) {
	products, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockProduct, 0, len(products))
	for _, p := range products {
		out = append(out, dto.LowStockProduct{
			ID:       p.ID,
			Name:     p.Name,
			Stock:    p.Stock,
			MinStock: p.MinStock,
		})
	}
	return out, nil
}
