package repository

import (
	"context"

	"github.com/rahulxkr/storekart-api/internal/domain/entity"
)

// CategoryRepository persistence port for product categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByTitle(ctx context.Context, title string) (*entity.Category, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	ListActive(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	SoftDelete(ctx context.Context, id string) error
}

// StoreCategoryRepository persistence port for store categories.
type StoreCategoryRepository interface {
	Create(ctx context.Context, category *entity.StoreCategory) error
	GetByID(ctx context.Context, id string) (*entity.StoreCategory, error)
	GetByTitle(ctx context.Context, title string) (*entity.StoreCategory, error)
	List(ctx context.Context, limit, offset int) ([]*entity.StoreCategory, error)
	ListActive(ctx context.Context, limit, offset int) ([]*entity.StoreCategory, error)
	Update(ctx context.Context, category *entity.StoreCategory) error
	SoftDelete(ctx context.Context, id string) error
}
