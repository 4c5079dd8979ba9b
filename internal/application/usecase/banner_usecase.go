package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/application/ports"
	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
	"github.com/rahulxkr/storekart-api/internal/domain/repository"
)

// BannerUseCase promotional banner management.
type BannerUseCase struct {
	banners  repository.BannerRepository
	uploader ports.AssetUploader
}

// NewBannerUseCase builds the banner use case.
func NewBannerUseCase(banners repository.BannerRepository, uploader ports.AssetUploader) *BannerUseCase {
	return &BannerUseCase{banners: banners, uploader: uploader}
}

// Create creates a banner. The image is required; the target must name a
// store or a product, not both.
func (uc *BannerUseCase) Create(ctx context.Context, in dto.CreateBannerRequest) (*dto.BannerResponse, error) {
	if in.ImagePath == "" || in.RedirectTo == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StoreID != "" && in.ProductID != "" {
		return nil, domain.ErrInvalidInput
	}

	image, err := uploadIfPresent(ctx, uc.uploader, in.ImagePath)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	now := time.Now()
	banner := &entity.Banner{
		ID:         uuid.New().String(),
		Image:      image,
		StoreID:    in.StoreID,
		ProductID:  in.ProductID,
		RedirectTo: in.RedirectTo,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.banners.Create(ctx, banner); err != nil {
		return nil, err
	}
	return toBannerResponse(banner), nil
}

// GetByID returns one banner or ErrNotFound.
func (uc *BannerUseCase) GetByID(ctx context.Context, id string) (*dto.BannerResponse, error) {
	banner, err := uc.banners.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, domain.ErrNotFound
	}
	return toBannerResponse(banner), nil
}

// List returns banners page by page.
func (uc *BannerUseCase) List(ctx context.Context, limit, offset int) (*dto.BannerListResponse, error) {
	list, err := uc.banners.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toBannerList(list, limit, offset), nil
}

// ListActive returns banners with status Active.
func (uc *BannerUseCase) ListActive(ctx context.Context, limit, offset int) (*dto.BannerListResponse, error) {
	list, err := uc.banners.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toBannerList(list, limit, offset), nil
}

// Update applies the provided fields. Switching the target clears the other
// side so a banner never points two ways.
func (uc *BannerUseCase) Update(ctx context.Context, id string, in dto.UpdateBannerRequest) (*dto.BannerResponse, error) {
	banner, err := uc.banners.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, domain.ErrNotFound
	}
	if in.StoreID != "" && in.ProductID != "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StoreID != "" {
		banner.StoreID = in.StoreID
		banner.ProductID = ""
	}
	if in.ProductID != "" {
		banner.ProductID = in.ProductID
		banner.StoreID = ""
	}
	if in.RedirectTo != "" {
		banner.RedirectTo = in.RedirectTo
	}
	if in.ImagePath != "" {
		image, err := uploadIfPresent(ctx, uc.uploader, in.ImagePath)
		if err != nil {
			return nil, err
		}
		banner.Image = image
	}
	if in.Status != "" {
		banner.Status = in.Status
	}
	banner.UpdatedAt = time.Now()

	if err := uc.banners.Update(ctx, banner); err != nil {
		return nil, err
	}
	return toBannerResponse(banner), nil
}

// SoftDelete flags the banner deleted.
func (uc *BannerUseCase) SoftDelete(ctx context.Context, id string) error {
	return uc.banners.SoftDelete(ctx, id)
}

func toBannerList(list []*entity.Banner, limit, offset int) *dto.BannerListResponse {
	items := make([]dto.BannerResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBannerResponse(b))
	}
	return &dto.BannerListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toBannerResponse(b *entity.Banner) *dto.BannerResponse {
	if b == nil {
		return nil
	}
	return &dto.BannerResponse{
		ID:         b.ID,
		Image:      b.Image,
		StoreID:    b.StoreID,
		ProductID:  b.ProductID,
		RedirectTo: b.RedirectTo,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
