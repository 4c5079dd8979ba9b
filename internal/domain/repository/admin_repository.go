package repository

import (
	"context"

	"github.com/rahulxkr/storekart-api/internal/domain/entity"
)

// AdminRepository is the persistence port for principal accounts.
//
// Every find/list method is gated by the soft-delete policy: rows with
// is_deleted = true never come back. Lookups return (nil, nil) when no row
// matches. Password hash and refresh token are written only through their
// dedicated methods so a general Update can never re-hash or drop a session.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Admin, error)
	ListActive(ctx context.Context, limit, offset int) ([]*entity.Admin, error)
	Update(ctx context.Context, admin *entity.Admin) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateRefreshToken(ctx context.Context, id, refreshToken string) error
	SoftDelete(ctx context.Context, id string) error

	// HardDelete removes the row outright. Only the compensating delete in
	// store creation uses it; soft delete is the rule everywhere else.
	HardDelete(ctx context.Context, id string) error

	// Existence checks for uniqueness validation. excludeID skips the row
	// being updated; activeOnly scopes the check to non-deleted rows.
	EmailExists(ctx context.Context, email, excludeID string, activeOnly bool) (bool, error)
	PhoneExists(ctx context.Context, phone, excludeID string, activeOnly bool) (bool, error)
	PANExists(ctx context.Context, panNumber, excludeID string, activeOnly bool) (bool, error)
}
