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

var _ repository.StoreCategoryRepository = (*StoreCategoryRepo)(nil)

// StoreCategoryRepo implements the StoreCategoryRepository port on PostgreSQL.
type StoreCategoryRepo struct {
	pool *pgxpool.Pool
}

// NewStoreCategoryRepository builds the persistence adapter for store categories.
func NewStoreCategoryRepository(pool *pgxpool.Pool) *StoreCategoryRepo {
	return &StoreCategoryRepo{pool: pool}
}

const storeCategoryColumns = `id, title, added_by, updated_by, status, is_deleted, created_at, updated_at`

func scanStoreCategory(row rowScanner) (*entity.StoreCategory, error) {
	var c entity.StoreCategory
	err := row.Scan(&c.ID, &c.Title, &c.AddedBy, &c.UpdatedBy, &c.Status, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persists a new store category.
func (r *StoreCategoryRepo) Create(ctx context.Context, category *entity.StoreCategory) error {
	query := `
		INSERT INTO store_categories (id, title, added_by, updated_by, status, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		category.ID, category.Title, category.AddedBy, category.UpdatedBy,
		category.Status, category.IsDeleted, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert store category: %w", err)
	}
	return nil
}

// GetByID returns one visible store category, (nil, nil) when missing.
func (r *StoreCategoryRepo) GetByID(ctx context.Context, id string) (*entity.StoreCategory, error) {
	query := `SELECT ` + storeCategoryColumns + ` FROM store_categories WHERE id = $1 AND ` + notDeleted
	category, err := scanStoreCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store category by id: %w", err)
	}
	return category, nil
}

// GetByTitle returns one visible store category by its normalized title.
func (r *StoreCategoryRepo) GetByTitle(ctx context.Context, title string) (*entity.StoreCategory, error) {
	query := `SELECT ` + storeCategoryColumns + ` FROM store_categories WHERE title = $1 AND ` + notDeleted + ` LIMIT 1`
	category, err := scanStoreCategory(r.pool.QueryRow(ctx, query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store category by title: %w", err)
	}
	return category, nil
}

// List returns visible store categories, newest first.
func (r *StoreCategoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.StoreCategory, error) {
	query := `SELECT ` + storeCategoryColumns + ` FROM store_categories WHERE ` + notDeleted + `
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.listQuery(ctx, query, limit, offset)
}

// ListActive returns visible store categories with status Active.
func (r *StoreCategoryRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.StoreCategory, error) {
	query := `SELECT ` + storeCategoryColumns + ` FROM store_categories WHERE ` + notDeleted + ` AND status = 'Active'
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.listQuery(ctx, query, limit, offset)
}

func (r *StoreCategoryRepo) listQuery(ctx context.Context, query string, args ...any) ([]*entity.StoreCategory, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list store categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.StoreCategory
	for rows.Next() {
		category, err := scanStoreCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store category: %w", err)
		}
		list = append(list, category)
	}
	return list, rows.Err()
}

// Update writes the store category fields.
func (r *StoreCategoryRepo) Update(ctx context.Context, category *entity.StoreCategory) error {
	query := `
		UPDATE store_categories SET title = $2, updated_by = $3, status = $4, updated_at = $5
		WHERE id = $1 AND ` + notDeleted
	tag, err := r.pool.Exec(ctx, query,
		category.ID, category.Title, category.UpdatedBy, category.Status, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update store category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete flags the store category deleted.
func (r *StoreCategoryRepo) SoftDelete(ctx context.Context, id string) error {
	return softDeleteRow(ctx, r.pool, "store_categories", id)
}
