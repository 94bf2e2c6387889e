package repository

import "github.com/tu-usuario/pos-minimarket/internal/domain/entity"

// AdminRepository define el puerto de persistencia para Admin (DIP).
// No hay Update ni Delete: el administrador se crea una sola vez vía bootstrap.
type AdminRepository interface {
	Create(admin *entity.Admin) error
	GetByUsername(username string) (*entity.Admin, error)
	// Count devuelve el número de administradores; el bootstrap rehúsa correr si > 0.
	Count() (int, error)
}
