package usecase

import (
	"time"

	"github.com/tu-usuario/pos-minimarket/internal/application/dto"
	"github.com/tu-usuario/pos-minimarket/internal/domain"
	"github.com/tu-usuario/pos-minimarket/internal/domain/entity"
	"github.com/tu-usuario/pos-minimarket/internal/domain/repository"
)

// TaxRateUseCase lectura y actualización de la tasa de IVA singleton (admin).
// La actualización es una sobreescritura destructiva: las ventas pasadas
// conservan su tasa solo porque SaleDetail la copió al momento del commit.
type TaxRateUseCase struct {
	repo repository.TaxRateRepository
}

// NewTaxRateUseCase construye el caso de uso.
func NewTaxRateUseCase(repo repository.TaxRateRepository) *TaxRateUseCase {
	return &TaxRateUseCase{repo: repo}
}

// Get devuelve la tasa vigente o ErrTaxRateNotConfigured si no hay fila.
func (uc *TaxRateUseCase) Get() (*dto.TaxRateResponse, error) {
	rate, err := uc.repo.GetActive()
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, domain.ErrTaxRateNotConfigured
	}
	return &dto.TaxRateResponse{Name: rate.Name, Rate: rate.Rate, UpdatedAt: rate.UpdatedAt}, nil
}

// Update sobreescribe la tasa y toca UpdatedAt.
func (uc *TaxRateUseCase) Update(in dto.UpdateTaxRateRequest) (*dto.TaxRateResponse, error) {
	if in.Rate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	rate := &entity.TaxRate{
		Name:      entity.TaxRateStandardName,
		Rate:      in.Rate,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Upsert(rate); err != nil {
		return nil, err
	}
	return &dto.TaxRateResponse{Name: rate.Name, Rate: rate.Rate, UpdatedAt: rate.UpdatedAt}, nil
}
