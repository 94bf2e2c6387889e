package usecase

import (
	"github.com/google/uuid"
	"github.com/tu-usuario/pos-minimarket/internal/application/dto"
	"github.com/tu-usuario/pos-minimarket/internal/domain"
	"github.com/tu-usuario/pos-minimarket/internal/domain/entity"
	"github.com/tu-usuario/pos-minimarket/internal/domain/repository"
	"github.com/tu-usuario/pos-minimarket/pkg/rut"
)

// CashierUseCase administración de cajeros (admin).
// El RUT siempre se normaliza y valida (módulo 11) antes de persistirse.
type CashierUseCase struct {
	repo repository.CashierRepository
}

// NewCashierUseCase construye el caso de uso.
func NewCashierUseCase(repo repository.CashierRepository) *CashierUseCase {
	return &CashierUseCase{repo: repo}
}

// Create registra un nuevo cajero con RUT validado y canónico.
func (uc *CashierUseCase) Create(in dto.CreateCashierRequest) (*dto.CashierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	canonical, err := rut.Validate(in.RUT)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByRUT(canonical)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	cashier := &entity.Cashier{
		ID:     uuid.New().String(),
		Name:   in.Name,
		RUT:    canonical,
		Active: true,
	}
	if err := uc.repo.Create(cashier); err != nil {
		return nil, err
	}
	return toCashierResponse(cashier), nil
}

// Update modifica nombre, RUT o actividad de un cajero.
func (uc *CashierUseCase) Update(id string, in dto.UpdateCashierRequest) (*dto.CashierResponse, error) {
	cashier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, nil
	}
	if in.Name != nil {
		cashier.Name = *in.Name
	}
	if in.RUT != nil {
		canonical, err := rut.Validate(*in.RUT)
		if err != nil {
			return nil, err
		}
		cashier.RUT = canonical
	}
	if in.Active != nil {
		cashier.Active = *in.Active
	}
	if err := uc.repo.Update(cashier); err != nil {
		return nil, err
	}
	return toCashierResponse(cashier), nil
}

// List lista todos los cajeros.
func (uc *CashierUseCase) List() ([]dto.CashierResponse, error) {
	cashiers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CashierResponse, 0, len(cashiers))
	for _, c := range cashiers {
		out = append(out, *toCashierResponse(c))
	}
	return out, nil
}

// Delete elimina un cajero por ID.
func (uc *CashierUseCase) Delete(id string) error {
	cashier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cashier == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCashierResponse(c *entity.Cashier) *dto.CashierResponse {
	return &dto.CashierResponse{ID: c.ID, Name: c.Name, RUT: c.RUT, Active: c.Active}
}
