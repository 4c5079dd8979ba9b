package repository

import (
	"context"

	"github.com/rahulxkr/storekart-api/internal/domain/entity"
)

// StoreRepository persistence port for stores.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Store, error)
	ListActive(ctx context.Context, limit, offset int) ([]*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	SoftDelete(ctx context.Context, id string) error
}
