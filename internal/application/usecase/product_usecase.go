package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/application/ports"
	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
	"github.com/rahulxkr/storekart-api/internal/domain/repository"
)

// ProductUseCase product catalog management. Products belong to the admin
// that created them.
type ProductUseCase struct {
	products repository.ProductRepository
	uploader ports.AssetUploader
}

// NewProductUseCase builds the product use case.
func NewProductUseCase(products repository.ProductRepository, uploader ports.AssetUploader) *ProductUseCase {
	return &ProductUseCase{products: products, uploader: uploader}
}

// Create creates a product owned by adminID. The discount must not exceed
// the price.
func (uc *ProductUseCase) Create(ctx context.Context, adminID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Discount.IsNegative() || in.Discount.GreaterThan(in.Price) {
		return nil, domain.ErrInvalidInput
	}

	image, err := uploadIfPresent(ctx, uc.uploader, in.ImagePath)
	if err != nil {
		return nil, err
	}
	gallery := make([]string, 0, len(in.GalleryImagePaths))
	for _, path := range in.GalleryImagePaths {
		url, err := uploadIfPresent(ctx, uc.uploader, path)
		if err != nil {
			return nil, err
		}
		if url != "" {
			gallery = append(gallery, url)
		}
	}

	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		AdminID:       adminID,
		DeliveryMode:  in.DeliveryMode,
		Quantity:      in.Quantity,
		Price:         in.Price,
		Discount:      in.Discount,
		Image:         image,
		GalleryImages: gallery,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID returns one product or ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List returns products page by page.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.products.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list, limit, offset), nil
}

// ListActive returns products with status Active.
func (uc *ProductUseCase) ListActive(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.products.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list, limit, offset), nil
}

// ListByAdmin returns the products owned by one admin.
func (uc *ProductUseCase) ListByAdmin(ctx context.Context, adminID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.products.ListByAdmin(ctx, adminID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list, limit, offset), nil
}

// Update applies the provided fields. Price and discount are revalidated
// against each other after the merge.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.CategoryID != "" {
		product.CategoryID = in.CategoryID
	}
	if in.DeliveryMode != "" {
		product.DeliveryMode = in.DeliveryMode
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Discount != nil {
		product.Discount = *in.Discount
	}
	if product.Price.IsNegative() || product.Discount.IsNegative() || product.Discount.GreaterThan(product.Price) {
		return nil, domain.ErrInvalidInput
	}
	if in.ImagePath != "" {
		image, err := uploadIfPresent(ctx, uc.uploader, in.ImagePath)
		if err != nil {
			return nil, err
		}
		product.Image = image
	}
	if in.Status != "" {
		product.Status = in.Status
	}
	product.UpdatedAt = time.Now()

	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// SoftDelete flags the product deleted.
func (uc *ProductUseCase) SoftDelete(ctx context.Context, id string) error {
	return uc.products.SoftDelete(ctx, id)
}

// SellingPrice is the effective price after discount.
func SellingPrice(p *entity.Product) decimal.Decimal {
	return p.Price.Sub(p.Discount)
}

func toProductList(list []*entity.Product, limit, offset int) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		AdminID:       p.AdminID,
		DeliveryMode:  p.DeliveryMode,
		Quantity:      p.Quantity,
		Price:         p.Price,
		Discount:      p.Discount,
		Image:         p.Image,
		GalleryImages: p.GalleryImages,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
