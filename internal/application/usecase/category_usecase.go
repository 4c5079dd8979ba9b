package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/application/ports"
	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
	"github.com/rahulxkr/storekart-api/internal/domain/repository"
)

var titleCaser = cases.Title(language.English)

// normalizeTitle trims and title-cases a category title so "fast food" and
// "Fast Food" land on the same unique value.
func normalizeTitle(title string) string {
	return titleCaser.String(strings.TrimSpace(title))
}

// CategoryUseCase product category management.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	uploader   ports.AssetUploader
}

// NewCategoryUseCase builds the category use case.
func NewCategoryUseCase(categories repository.CategoryRepository, uploader ports.AssetUploader) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, uploader: uploader}
}

// Create creates a category; the title must be unique among visible rows.
func (uc *CategoryUseCase) Create(ctx context.Context, addedBy string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
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

	image, err := uploadIfPresent(ctx, uc.uploader, in.ImagePath)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Title:     title,
		Image:     image,
		AddedBy:   addedBy,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID returns one category or ErrNotFound.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// List returns categories page by page.
func (uc *CategoryUseCase) List(ctx context.Context, limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.categories.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toCategoryList(list, limit, offset), nil
}

// ListActive returns categories with status Active.
func (uc *CategoryUseCase) ListActive(ctx context.Context, limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.categories.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toCategoryList(list, limit, offset), nil
}

// Update applies the provided fields and records who updated.
func (uc *CategoryUseCase) Update(ctx context.Context, id, updatedBy string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
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
	if in.ImagePath != "" {
		image, err := uploadIfPresent(ctx, uc.uploader, in.ImagePath)
		if err != nil {
			return nil, err
		}
		category.Image = image
	}
	if in.Status != "" {
		category.Status = in.Status
	}
	category.UpdatedBy = updatedBy
	category.UpdatedAt = time.Now()

	if err := uc.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// SoftDelete flags the category deleted.
func (uc *CategoryUseCase) SoftDelete(ctx context.Context, id string) error {
	return uc.categories.SoftDelete(ctx, id)
}

func toCategoryList(list []*entity.Category, limit, offset int) *dto.CategoryListResponse {
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Title:     c.Title,
		Image:     c.Image,
		AddedBy:   c.AddedBy,
		UpdatedBy: c.UpdatedBy,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
