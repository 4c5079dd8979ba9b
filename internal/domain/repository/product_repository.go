package repository

import (
	"context"

	"github.com/rahulxkr/storekart-api/internal/domain/entity"
)

// ProductRepository persistence port for products.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListActive(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListByAdmin(ctx context.Context, adminID string, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id string) error
}
