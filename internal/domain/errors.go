package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrCashierNotFound      = errors.New("cajero no encontrado")
	ErrCashierInactive      = errors.New("cajero inactivo")
	ErrAdminAlreadyExists   = errors.New("ya existe un administrador registrado")
	ErrTaxRateNotConfigured = errors.New("tasa de IVA no configurada")
)

// ProductNotFoundError indica que una línea de venta referencia un producto inexistente.
// Aborta la venta completa.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("producto %s no encontrado", e.ProductID)
}

// Is permite errors.Is(err, domain.ErrNotFound) sobre este error tipado.
func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InsufficientStockError indica stock insuficiente para una línea de venta.
// Lleva el disponible y lo solicitado para que el caller pueda reaccionar.
type InsufficientStockError struct {
	ProductID string
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s: disponible %s, solicitado %s",
		e.ProductID, e.Available.String(), e.Requested.String())
}
