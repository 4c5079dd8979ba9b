package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
	"github.com/rahulxkr/storekart-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implements the StoreRepository port on PostgreSQL. Reads join the
// owner account so responses can carry the sanitized owner projection.
type StoreRepo struct {
	pool *pgxpool.Pool
}

// NewStoreRepository builds the persistence adapter for stores.
func NewStoreRepository(pool *pgxpool.Pool) *StoreRepo {
	return &StoreRepo{pool: pool}
}

const storeColumns = `
	s.id, s.title, s.image, s.street, s.city, s.state, s.zip_code,
	s.latitude, s.longitude, COALESCE(s.category_ids, '{}'), s.store_category_id, s.admin_id,
	s.is_open, s.average_rating, s.status, s.is_deleted, s.created_at, s.updated_at,
	o.id, o.name, o.email, o.phone, o.avatar, o.status, o.role_id, o.created_at, o.updated_at`

const storeFrom = ` FROM stores s LEFT JOIN admins o ON o.id = s.admin_id AND o.is_deleted = FALSE`

func scanStore(row rowScanner) (*entity.Store, error) {
	var s entity.Store
	var ownerID, ownerName, ownerEmail, ownerPhone, ownerAvatar, ownerStatus, ownerRoleID *string
	var ownerCreatedAt, ownerUpdatedAt *time.Time
	err := row.Scan(
		&s.ID, &s.Title, &s.Image, &s.Street, &s.City, &s.State, &s.ZipCode,
		&s.Latitude, &s.Longitude, &s.CategoryIDs, &s.StoreCategoryID, &s.AdminID,
		&s.IsOpen, &s.AverageRating, &s.Status, &s.IsDeleted, &s.CreatedAt, &s.UpdatedAt,
		&ownerID, &ownerName, &ownerEmail, &ownerPhone, &ownerAvatar, &ownerStatus, &ownerRoleID,
		&ownerCreatedAt, &ownerUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if ownerID != nil {
		s.Owner = &entity.Admin{
			ID:        *ownerID,
			Name:      *ownerName,
			Email:     *ownerEmail,
			Phone:     *ownerPhone,
			Avatar:    *ownerAvatar,
			Status:    *ownerStatus,
			RoleID:    *ownerRoleID,
			CreatedAt: *ownerCreatedAt,
			UpdatedAt: *ownerUpdatedAt,
		}
	}
	return &s, nil
}

// Create persists a new store row.
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (
			id, title, image, street, city, state, zip_code,
			latitude, longitude, category_ids, store_category_id, admin_id,
			is_open, average_rating, status, is_deleted, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.pool.Exec(ctx, query,
		store.ID, store.Title, store.Image, store.Street, store.City, store.State, store.ZipCode,
		store.Latitude, store.Longitude, store.CategoryIDs, store.StoreCategoryID, store.AdminID,
		store.IsOpen, store.AverageRating, store.Status, store.IsDeleted, store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID returns one visible store with its owner joined.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	query := `SELECT` + storeColumns + storeFrom + ` WHERE s.id = $1 AND s.` + notDeleted
	store, err := scanStore(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store by id: %w", err)
	}
	return store, nil
}

// List returns visible stores, newest first.
func (r *StoreRepo) List(ctx context.Context, limit, offset int) ([]*entity.Store, error) {
	query := `SELECT` + storeColumns + storeFrom + ` WHERE s.` + notDeleted + `
		ORDER BY s.created_at DESC LIMIT $1 OFFSET $2`
	return r.listQuery(ctx, query, limit, offset)
}

// ListActive returns visible stores with status Active.
func (r *StoreRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Store, error) {
	query := `SELECT` + storeColumns + storeFrom + ` WHERE s.` + notDeleted + ` AND s.status = 'Active'
		ORDER BY s.created_at DESC LIMIT $1 OFFSET $2`
	return r.listQuery(ctx, query, limit, offset)
}

func (r *StoreRepo) listQuery(ctx context.Context, query string, args ...any) ([]*entity.Store, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, store)
	}
	return list, rows.Err()
}

// Update writes the store profile fields.
func (r *StoreRepo) Update(ctx context.Context, store *entity.Store) error {
	query := `
		UPDATE stores SET
			title = $2, image = $3, street = $4, city = $5, state = $6, zip_code = $7,
			latitude = $8, longitude = $9, category_ids = $10, store_category_id = $11,
			is_open = $12, average_rating = $13, status = $14, updated_at = $15
		WHERE id = $1 AND ` + notDeleted
	tag, err := r.pool.Exec(ctx, query,
		store.ID, store.Title, store.Image, store.Street, store.City, store.State, store.ZipCode,
		store.Latitude, store.Longitude, store.CategoryIDs, store.StoreCategoryID,
		store.IsOpen, store.AverageRating, store.Status, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete flags the store deleted. The owner account is untouched.
func (r *StoreRepo) SoftDelete(ctx context.Context, id string) error {
	return softDeleteRow(ctx, r.pool, "stores", id)
}
