package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
	"github.com/rahulxkr/storekart-api/internal/domain/repository"
)

// StoreCategoryUseCase store category management. Same title rules as
// product categories, without images.
type StoreCategoryUseCase struct {
	categories repository.StoreCategoryRepository
}

// NewStoreCategoryUseCase builds the store category use case.
func NewStoreCategoryUseCase(categories repository.StoreCategoryRepository) *StoreCategoryUseCase {
	return &StoreCategoryUseCase{categories: categories}
}

// Create creates a store category; the title must be unique among visible
// rows.
func (uc *StoreCategoryUseCase) Create(ctx context.Context, addedBy string, in dto.CreateStoreCategoryRequest) (*dto.StoreCategoryResponse, error) {
	if in.Title == "" || in.Status == "" {
		return nil, domain.ErrInvalidInput
	}
	title := normalizeTitle(in.Title)
	existing, err := uc.categories.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	category := &entity.StoreCategory{
		ID:        uuid.New().String(),
		Title:     title,
		AddedBy:   addedBy,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return toStoreCategoryResponse(category), nil
}

// GetByID returns one store category or ErrNotFound.
func (uc *StoreCategoryUseCase) GetByID(ctx context.Context, id string) (*dto.StoreCategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toStoreCategoryResponse(category), nil
}

// List returns store categories page by page.
func (uc *StoreCategoryUseCase) List(ctx context.Context, limit, offset int) (*dto.StoreCategoryListResponse, error) {
	list, err := uc.categories.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toStoreCategoryList(list, limit, offset), nil
}

// ListActive returns store categories with status Active.
func (uc *StoreCategoryUseCase) ListActive(ctx context.Context, limit, offset int) (*dto.StoreCategoryListResponse, error) {
	list, err := uc.categories.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toStoreCategoryList(list, limit, offset), nil
}

// Update applies the provided fields and records who updated.
func (uc *StoreCategoryUseCase) Update(ctx context.Context, id, updatedBy string, in dto.UpdateStoreCategoryRequest) (*dto.StoreCategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != "" {
		title := normalizeTitle(in.Title)
		if title != category.Title {
			existing, err := uc.categories.GetByTitle(ctx, title)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrConflict
			}
			category.Title = title
		}
	}
	if in.Status != "" {
		category.Status = in.Status
	}
	category.UpdatedBy = updatedBy
	category.UpdatedAt = time.Now()

	if err := uc.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return toStoreCategoryResponse(category), nil
}

// SoftDelete flags the store category deleted.
func (uc *StoreCategoryUseCase) SoftDelete(ctx context.Context, id string) error {
	return uc.categories.SoftDelete(ctx, id)
}

func toStoreCategoryList(list []*entity.StoreCategory, limit, offset int) *dto.StoreCategoryListResponse {
	items := make([]dto.StoreCategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toStoreCategoryResponse(c))
	}
	return &dto.StoreCategoryListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toStoreCategoryResponse(c *entity.StoreCategory) *dto.StoreCategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.StoreCategoryResponse{
		ID:        c.ID,
		Title:     c.Title,
		AddedBy:   c.AddedBy,
		UpdatedBy: c.UpdatedBy,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
