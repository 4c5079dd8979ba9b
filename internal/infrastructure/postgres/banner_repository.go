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

var _ repository.BannerRepository = (*BannerRepo)(nil)

// BannerRepo implements the BannerRepository port on PostgreSQL.
type BannerRepo struct {
	pool *pgxpool.Pool
}

// NewBannerRepository builds the persistence adapter for banners.
func NewBannerRepository(pool *pgxpool.Pool) *BannerRepo {
	return &BannerRepo{pool: pool}
}

const bannerColumns = `id, image, store_id, product_id, redirect_to, status, is_deleted, created_at, updated_at`

func scanBanner(row rowScanner) (*entity.Banner, error) {
	var b entity.Banner
	err := row.Scan(&b.ID, &b.Image, &b.StoreID, &b.ProductID, &b.RedirectTo, &b.Status, &b.IsDeleted, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persists a new banner.
func (r *BannerRepo) Create(ctx context.Context, banner *entity.Banner) error {
	query := `
		INSERT INTO banners (id, image, store_id, product_id, redirect_to, status, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		banner.ID, banner.Image, banner.StoreID, banner.ProductID, banner.RedirectTo,
		banner.Status, banner.IsDeleted, banner.CreatedAt, banner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	return nil
}

// GetByID returns one visible banner, (nil, nil) when missing or deleted.
func (r *BannerRepo) GetByID(ctx context.Context, id string) (*entity.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners WHERE id = $1 AND ` + notDeleted
	banner, err := scanBanner(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner by id: %w", err)
	}
	return banner, nil
}

// List returns visible banners, newest first.
func (r *BannerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners WHERE ` + notDeleted + `
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.listQuery(ctx, query, limit, offset)
}

// ListActive returns visible banners with status Active.
func (r *BannerRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners WHERE ` + notDeleted + ` AND status = 'Active'
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.listQuery(ctx, query, limit, offset)
}

func (r *BannerRepo) listQuery(ctx context.Context, query string, args ...any) ([]*entity.Banner, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Banner
	for rows.Next() {
		banner, err := scanBanner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		list = append(list, banner)
	}
	return list, rows.Err()
}

// Update writes the banner fields.
func (r *BannerRepo) Update(ctx context.Context, banner *entity.Banner) error {
	query := `
		UPDATE banners SET image = $2, store_id = $3, product_id = $4, redirect_to = $5, status = $6, updated_at = $7
		WHERE id = $1 AND ` + notDeleted
	tag, err := r.pool.Exec(ctx, query,
		banner.ID, banner.Image, banner.StoreID, banner.ProductID, banner.RedirectTo,
		banner.Status, banner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update banner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete flags the banner deleted.
func (r *BannerRepo) SoftDelete(ctx context.Context, id string) error {
	return softDeleteRow(ctx, r.pool, "banners", id)
}
