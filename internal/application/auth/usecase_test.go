package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/pos-minimarket/internal/application/auth"
	"github.com/tu-usuario/pos-minimarket/internal/application/dto"
	"github.com/tu-usuario/pos-minimarket/internal/domain"
	"github.com/tu-usuario/pos-minimarket/internal/domain/entity"
	"github.com/tu-usuario/pos-minimarket/pkg/rut"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeAdminRepo struct {
	byUsername map[string]*entity.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byUsername: map[string]*entity.Admin{}}
}

func (r *fakeAdminRepo) Create(a *entity.Admin) error {
	if _, ok := r.byUsername[a.Username]; ok {
		return domain.ErrDuplicate
	}
	r.byUsername[a.Username] = a
	return nil
}

func (r *fakeAdminRepo) GetByUsername(username string) (*entity.Admin, error) {
	a, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (r *fakeAdminRepo) Count() (int, error) { return len(r.byUsername), nil }

type fakeCashierRepo struct {
	byRUT map[string]*entity.Cashier
}

func (r *fakeCashierRepo) Create(c *entity.Cashier) error { r.byRUT[c.RUT] = c; return nil }
func (r *fakeCashierRepo) GetByID(id string) (*entity.Cashier, error) { return nil, nil }
func (r *fakeCashierRepo) GetByRUT(rutCanonico string) (*entity.Cashier, error) {
	c, ok := r.byRUT[rutCanonico]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeCashierRepo) Update(c *entity.Cashier) error   { return nil }
func (r *fakeCashierRepo) List() ([]*entity.Cashier, error) { return nil, nil }
func (r *fakeCashierRepo) Delete(id string) error           { return nil }

func newUseCase(admins *fakeAdminRepo, cashiers *fakeCashierRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(admins, cashiers, auth.JWTConfig{
		Secret:     "secreto-de-test",
		ExpMinutes: 60,
		Issuer:     "pos-test",
	})
}

// ── bootstrap ─────────────────────────────────────────────────────────────────

func TestBootstrapAdmin_PrimeraVez(t *testing.T) {
	uc := newUseCase(newFakeAdminRepo(), &fakeCashierRepo{byRUT: map[string]*entity.Cashier{}})

	resp, err := uc.BootstrapAdmin(dto.BootstrapAdminRequest{
		Username: "admin", Name: "Don Pedro", Password: "s3gura!",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Username)
	assert.True(t, resp.Active)
	assert.NotEmpty(t, resp.ID)
}

// TestBootstrapAdmin_RehusaSegundaVez la operación de setup es de una sola vez:
// con cualquier administrador existente debe fallar.
func TestBootstrapAdmin_RehusaSegundaVez(t *testing.T) {
	admins := newFakeAdminRepo()
	uc := newUseCase(admins, &fakeCashierRepo{byRUT: map[string]*entity.Cashier{}})

	_, err := uc.BootstrapAdmin(dto.BootstrapAdminRequest{Username: "admin", Password: "x1"})
	require.NoError(t, err)

	_, err = uc.BootstrapAdmin(dto.BootstrapAdminRequest{Username: "otro", Password: "x2"})
	assert.ErrorIs(t, err, domain.ErrAdminAlreadyExists)
	assert.Len(t, admins.byUsername, 1)
}

func TestBootstrapAdmin_EntradaInvalida(t *testing.T) {
	uc := newUseCase(newFakeAdminRepo(), &fakeCashierRepo{byRUT: map[string]*entity.Cashier{}})

	_, err := uc.BootstrapAdmin(dto.BootstrapAdminRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.BootstrapAdmin(dto.BootstrapAdminRequest{Username: "admin", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── login de admin ────────────────────────────────────────────────────────────

func seedAdmin(t *testing.T, admins *fakeAdminRepo, username, password string, active bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	admins.byUsername[username] = &entity.Admin{
		ID: "admin-1", Username: username, Name: username,
		PasswordHash: string(hash), Active: active,
	}
}

func TestAdminLogin_OK(t *testing.T) {
	admins := newFakeAdminRepo()
	seedAdmin(t, admins, "admin", "clave123", true)
	uc := newUseCase(admins, &fakeCashierRepo{byRUT: map[string]*entity.Cashier{}})

	resp, err := uc.AdminLogin(dto.AdminLoginRequest{Username: "admin", Password: "clave123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Admin.Username)
}

func TestAdminLogin_PasswordIncorrecta(t *testing.T) {
	admins := newFakeAdminRepo()
	seedAdmin(t, admins, "admin", "clave123", true)
	uc := newUseCase(admins, &fakeCashierRepo{byRUT: map[string]*entity.Cashier{}})

	_, err := uc.AdminLogin(dto.AdminLoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAdminLogin_UsuarioInexistente(t *testing.T) {
	uc := newUseCase(newFakeAdminRepo(), &fakeCashierRepo{byRUT: map[string]*entity.Cashier{}})

	_, err := uc.AdminLogin(dto.AdminLoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAdminLogin_Inactivo(t *testing.T) {
	admins := newFakeAdminRepo()
	seedAdmin(t, admins, "admin", "clave123", false)
	uc := newUseCase(admins, &fakeCashierRepo{byRUT: map[string]*entity.Cashier{}})

	_, err := uc.AdminLogin(dto.AdminLoginRequest{Username: "admin", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ── login de cajero por RUT ───────────────────────────────────────────────────

func TestCashierLogin_OK(t *testing.T) {
	cashiers := &fakeCashierRepo{byRUT: map[string]*entity.Cashier{
		"12345678-5": {ID: "c1", Name: "María", RUT: "12345678-5", Active: true},
	}}
	uc := newUseCase(newFakeAdminRepo(), cashiers)

	// con puntos y sin guion: debe normalizarse antes de buscar
	resp, err := uc.CashierLogin(dto.CashierLoginRequest{RUT: "12.345.6785"})
	require.NoError(t, err)
	assert.Equal(t, "c1", resp.ID)
	assert.Equal(t, "12345678-5", resp.RUT)
}

func TestCashierLogin_RUTInvalido(t *testing.T) {
	uc := newUseCase(newFakeAdminRepo(), &fakeCashierRepo{byRUT: map[string]*entity.Cashier{}})

	_, err := uc.CashierLogin(dto.CashierLoginRequest{RUT: "12345678-4"})
	assert.ErrorIs(t, err, rut.ErrInvalidCheckDigit)
}

func TestCashierLogin_Inactivo(t *testing.T) {
	cashiers := &fakeCashierRepo{byRUT: map[string]*entity.Cashier{
		"12345678-5": {ID: "c1", Name: "María", RUT: "12345678-5", Active: false},
	}}
	uc := newUseCase(newFakeAdminRepo(), cashiers)

	_, err := uc.CashierLogin(dto.CashierLoginRequest{RUT: "12345678-5"})
	assert.ErrorIs(t, err, domain.ErrCashierInactive)
}

func TestCashierLogin_NoRegistrado(t *testing.T) {
	uc := newUseCase(newFakeAdminRepo(), &fakeCashierRepo{byRUT: map[string]*entity.Cashier{}})

	_, err := uc.CashierLogin(dto.CashierLoginRequest{RUT: "11111111-1"})
	assert.ErrorIs(t, err, domain.ErrCashierNotFound)
}
