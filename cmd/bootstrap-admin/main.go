// bootstrap-admin crea el administrador inicial del sistema. Se rehúsa a
// correr si ya existe uno: el alta de administradores es un evento único.
//
// Uso: go run ./cmd/bootstrap-admin -username admin -name "Administrador" -password <secreto>
// La conexión a la base se toma de la misma configuración que el servidor (env vars / .env).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/tu-usuario/pos-minimarket/internal/application/auth"
	"github.com/tu-usuario/pos-minimarket/internal/application/dto"
	"github.com/tu-usuario/pos-minimarket/internal/domain"
	"github.com/tu-usuario/pos-minimarket/internal/infrastructure/postgres"
	"github.com/tu-usuario/pos-minimarket/pkg/config"
)

func main() {
	username := flag.String("username", "", "username del administrador (requerido)")
	name := flag.String("name", "", "nombre visible (por defecto, el username)")
	password := flag.String("password", "", "contraseña (requerido)")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "username y password son requeridos")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	adminRepo := postgres.NewAdminRepository(pool)
	cashierRepo := postgres.NewCashierRepository(pool)
	authUC := auth.NewAuthUseCase(adminRepo, cashierRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	admin, err := authUC.BootstrapAdmin(dto.BootstrapAdminRequest{
		Username: *username,
		Name:     *name,
		Password: *password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAdminAlreadyExists) {
			fmt.Fprintln(os.Stderr, "Ya existe un administrador; no se crea otro")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Crear administrador: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Administrador creado: %s (%s)\n", admin.Username, admin.ID)
}
