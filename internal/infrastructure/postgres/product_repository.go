package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
	"github.com/rahulxkr/storekart-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements the ProductRepository port on PostgreSQL. Price and
// discount are NUMERIC columns scanned into shopspring decimals through the
// codec registered on the pool.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository builds the persistence adapter for products.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `
	id, name, description, category_id, admin_id, delivery_mode, quantity,
	price, discount, image, COALESCE(gallery_images, '{}'), status, is_deleted, created_at, updated_at`

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.AdminID, &p.DeliveryMode, &p.Quantity,
		&p.Price, &p.Discount, &p.Image, &p.GalleryImages, &p.Status, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persists a new product.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (
			id, name, description, category_id, admin_id, delivery_mode, quantity,
			price, discount, image, gallery_images, status, is_deleted, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.CategoryID, product.AdminID,
		product.DeliveryMode, product.Quantity, product.Price, product.Discount,
		product.Image, product.GalleryImages, product.Status, product.IsDeleted,
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

// GetByID returns one visible product, (nil, nil) when missing or deleted.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE id = $1 AND ` + notDeleted
	product, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return product, nil
}

// List returns visible products, newest first.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE ` + notDeleted + `
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.listQuery(ctx, query, limit, offset)
}

// ListActive returns visible products with status Active.
func (r *ProductRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE ` + notDeleted + ` AND status = 'Active'
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.listQuery(ctx, query, limit, offset)
}

// ListByAdmin returns the visible products owned by one account.
func (r *ProductRepo) ListByAdmin(ctx context.Context, adminID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE ` + notDeleted + ` AND admin_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.listQuery(ctx, query, adminID, limit, offset)
}

func (r *ProductRepo) listQuery(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, product)
	}
	return list, rows.Err()
}

// Update writes the product fields.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET
			name = $2, description = $3, category_id = $4, delivery_mode = $5, quantity = $6,
			price = $7, discount = $8, image = $9, gallery_images = $10, status = $11, updated_at = $12
		WHERE id = $1 AND ` + notDeleted
	tag, err := r.pool.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.CategoryID, product.DeliveryMode,
		product.Quantity, product.Price, product.Discount, product.Image, product.GalleryImages,
		product.Status, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete flags the product deleted.
func (r *ProductRepo) SoftDelete(ctx context.Context, id string) error {
	return softDeleteRow(ctx, r.pool, "products", id)
}
