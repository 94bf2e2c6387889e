package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-minimarket/internal/domain"
	"github.com/tu-usuario/pos-minimarket/internal/domain/entity"
	"github.com/tu-usuario/pos-minimarket/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, barcode, name, category_id, description, brand, stock, min_stock, price, discount, iva_exempt, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, barcode, name, category_id, description, brand, stock, min_stock, price, discount, iva_exempt, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, nullIfEmpty(product.Barcode), product.Name, product.CategoryID,
		product.Description, product.Brand, product.Stock, product.MinStock,
		product.Price, product.Discount, product.IVAExempt,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) getByID(id string, forUpdate bool) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var (
		p       entity.Product
		barcode *string
	)
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &barcode, &p.Name, &p.CategoryID, &p.Description, &p.Brand,
		&p.Stock, &p.MinStock, &p.Price, &p.Discount, &p.IVAExempt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if barcode != nil {
		p.Barcode = *barcode
	}
	return &p, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getByID(id, false)
}

// GetByIDForUpdate obtiene el producto bloqueando su fila (SELECT ... FOR UPDATE).
// Usar solo dentro de una transacción; el lock se libera al Commit/Rollback.
func (r *ProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.getByID(id, true)
}

// Update actualiza un producto existente. No toca el stock vía este camino
// salvo ajuste explícito del admin.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET barcode = $2, name = $3, category_id = $4, description = $5, brand = $6,
		    stock = $7, min_stock = $8, price = $9, discount = $10, iva_exempt = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, nullIfEmpty(product.Barcode), product.Name, product.CategoryID,
		product.Description, product.Brand, product.Stock, product.MinStock,
		product.Price, product.Discount, product.IVAExempt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DecrementStock descuenta quantity del stock. El CHECK stock >= 0 de la tabla
// es la última línea de defensa; el motor ya validó con la fila bloqueada.
func (r *ProductRepo) DecrementStock(productID string, quantity decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock - $2, updated_at = now() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.ProductNotFoundError{ProductID: productID}
	}
	return nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Search búsqueda rápida por nombre, marca o código de barras (POS).
func (r *ProductRepo) Search(query string, limit int) ([]*entity.Product, error) {
	sql := `SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE '%' || $1 || '%' OR brand ILIKE '%' || $1 || '%' OR barcode = $1
		ORDER BY name LIMIT $2`
	rows, err := r.q.Query(context.Background(), sql, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListLowStock lista productos con stock <= min_stock (reporte de reabastecimiento).
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE stock <= min_stock ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var (
			p       entity.Product
			barcode *string
		)
		if err := rows.Scan(
			&p.ID, &barcode, &p.Name, &p.CategoryID, &p.Description, &p.Brand,
			&p.Stock, &p.MinStock, &p.Price, &p.Discount, &p.IVAExempt,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if barcode != nil {
			p.Barcode = *barcode
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
