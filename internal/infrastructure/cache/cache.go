package cache

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-minimarket/internal/application/dto"
	"github.com/tu-usuario/pos-minimarket/internal/application/reports"
)

var _ reports.ReportCache = (*NoopReportCache)(nil)

// NoopReportCache implementación nula: todo Get es un miss y Set no hace nada.
// Se usa cuando no hay Redis configurado; los reportes siguen funcionando,
// solo que cada consulta va directo a la base.
type NoopReportCache struct{}

// NewNoopReportCache construye la implementación nula.
func NewNoopReportCache() *NoopReportCache {
	return &NoopReportCache{}
}

func (NoopReportCache) Get(ctx context.Context, key string) (*dto.DailySalesReportResponse, bool, error) {
	return nil, false, nil
}

func (NoopReportCache) Set(ctx context.Context, key string, value *dto.DailySalesReportResponse, ttl time.Duration) error {
	return nil
}
