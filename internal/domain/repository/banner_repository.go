package repository

import (
	"context"

	"github.com/rahulxkr/storekart-api/internal/domain/entity"
)

// BannerRepository persistence port for banners.
type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	GetByID(ctx context.Context, id string) (*entity.Banner, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Banner, error)
	ListActive(ctx context.Context, limit, offset int) ([]*entity.Banner, error)
	Update(ctx context.Context, banner *entity.Banner) error
	SoftDelete(ctx context.Context, id string) error
}
