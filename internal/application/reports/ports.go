package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-minimarket/internal/application/dto"
)

// ReportCache cache opcional del reporte diario. Las implementaciones viven en
// internal/infrastructure/cache (Redis y noop).
type ReportCache interface {
	Get(ctx context.Context, key string) (*dto.DailySalesReportResponse, bool, error)
	Set(ctx context.Context, key string, value *dto.DailySalesReportResponse, ttl time.Duration) error
}
