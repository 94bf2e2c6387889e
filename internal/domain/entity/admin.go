package entity

import "time"

// Admin representa al administrador del sistema.
// Se crea una sola vez vía bootstrap; no hay CRUD de administradores.
type Admin struct {
	ID           string
	Username     string // único
	Name         string
	PasswordHash string // bcrypt
	Active       bool
	CreatedAt    time.Time
}
