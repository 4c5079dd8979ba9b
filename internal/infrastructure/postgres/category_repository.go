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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implements the CategoryRepository port on PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository builds the persistence adapter for product categories.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

const categoryColumns = `id, title, image, added_by, updated_by, status, is_deleted, created_at, updated_at`

func scanCategory(row rowScanner) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Title, &c.Image, &c.AddedBy, &c.UpdatedBy, &c.Status, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persists a new category.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, title, image, added_by, updated_by, status, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		category.ID, category.Title, category.Image, category.AddedBy, category.UpdatedBy,
		category.Status, category.IsDeleted, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID returns one visible category, (nil, nil) when missing or deleted.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND ` + notDeleted
	category, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return category, nil
}

// GetByTitle returns one visible category by its normalized title.
func (r *CategoryRepo) GetByTitle(ctx context.Context, title string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE title = $1 AND ` + notDeleted + ` LIMIT 1`
	category, err := scanCategory(r.pool.QueryRow(ctx, query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by title: %w", err)
	}
	return category, nil
}

// List returns visible categories, newest first.
func (r *CategoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE ` + notDeleted + `
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.listQuery(ctx, query, limit, offset)
}

// ListActive returns visible categories with status Active.
func (r *CategoryRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE ` + notDeleted + ` AND status = 'Active'
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.listQuery(ctx, query, limit, offset)
}

func (r *CategoryRepo) listQuery(ctx context.Context, query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, category)
	}
	return list, rows.Err()
}

// Update writes the category fields.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories SET title = $2, image = $3, updated_by = $4, status = $5, updated_at = $6
		WHERE id = $1 AND ` + notDeleted
	tag, err := r.pool.Exec(ctx, query,
		category.ID, category.Title, category.Image, category.UpdatedBy, category.Status, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete flags the category deleted, freeing its title for reuse.
func (r *CategoryRepo) SoftDelete(ctx context.Context, id string) error {
	return softDeleteRow(ctx, r.pool, "categories", id)
}
