package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pos-minimarket/internal/application/dto"
	"github.com/tu-usuario/pos-minimarket/internal/domain"
	"github.com/tu-usuario/pos-minimarket/internal/domain/entity"
	"github.com/tu-usuario/pos-minimarket/internal/domain/repository"
	"github.com/tu-usuario/pos-minimarket/pkg/jwt"
	"github.com/tu-usuario/pos-minimarket/pkg/rut"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens de administrador.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación: bootstrap del admin, login de admin y login de cajero por RUT.
type AuthUseCase struct {
	adminRepo   repository.AdminRepository
	cashierRepo repository.CashierRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, cashierRepo repository.CashierRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, cashierRepo: cashierRepo, jwtCfg: jwtCfg}
}

// BootstrapAdmin crea el administrador inicial. Operación de setup: rehúsa
// correr si ya existe cualquier administrador.
func (uc *AuthUseCase) BootstrapAdmin(in dto.BootstrapAdminRequest) (*dto.AdminResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	count, err := uc.adminRepo.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, domain.ErrAdminAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Username
	}
	admin := &entity.Admin{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Name:         name,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	return toAdminResponse(admin), nil
}

// AdminLogin verifica username/password, genera JWT y retorna token + admin.
func (uc *AuthUseCase) AdminLogin(in dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	admin, err := uc.adminRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !admin.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, admin.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AdminLoginResponse{Token: token, Admin: *toAdminResponse(admin)}, nil
}

// CashierLogin valida el RUT (módulo 11), busca el cajero y exige que esté
// activo. No genera token: la sesión POS del cajero es responsabilidad del
// front; este motor solo confirma identidad.
func (uc *AuthUseCase) CashierLogin(in dto.CashierLoginRequest) (*dto.CashierResponse, error) {
	canonical, err := rut.Validate(in.RUT)
	if err != nil {
		return nil, err
	}
	cashier, err := uc.cashierRepo.GetByRUT(canonical)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, domain.ErrCashierNotFound
	}
	if !cashier.Active {
		return nil, domain.ErrCashierInactive
	}
	return &dto.CashierResponse{ID: cashier.ID, Name: cashier.Name, RUT: cashier.RUT, Active: cashier.Active}, nil
}

func toAdminResponse(a *entity.Admin) *dto.AdminResponse {
	return &dto.AdminResponse{
		ID:       a.ID,
		Username: a.Username,
		Name:     a.Name,
		Active:   a.Active,
	}
}
