package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
)

func TestProductCreate(t *testing.T) {
	repo := newFakeProductRepo()
	uploader := &fakeUploader{}
	uc := NewProductUseCase(repo, uploader)

	out, err := uc.Create(context.Background(), "admin-1", dto.CreateProductRequest{
		Name:              "Basmati Rice 5kg",
		CategoryID:        "cat-1",
		DeliveryMode:      entity.DeliveryModeHome,
		Quantity:          40,
		Price:             decimal.NewFromInt(450),
		Discount:          decimal.NewFromInt(50),
		ImagePath:         "/tmp/rice.jpg",
		GalleryImagePaths: []string{"/tmp/g1.jpg", "/tmp/g2.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "admin-1", out.AdminID)
	assert.Equal(t, "https://cdn.example.com/rice.jpg", out.Image)
	assert.Equal(t, []string{"https://cdn.example.com/g1.jpg", "https://cdn.example.com/g2.jpg"}, out.GalleryImages)
	assert.Equal(t, entity.StatusActive, out.Status)
	assert.Len(t, uploader.calls, 3)
}

func TestProductCreateValidation(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo(), &fakeUploader{})

	_, err := uc.Create(context.Background(), "admin-1", dto.CreateProductRequest{CategoryID: "cat-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), "admin-1", dto.CreateProductRequest{
		Name:       "X",
		CategoryID: "cat-1",
		Price:      decimal.NewFromInt(100),
		Discount:   decimal.NewFromInt(150),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdateRevalidatesMergedPrice(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo, &fakeUploader{})

	created, err := uc.Create(context.Background(), "admin-1", dto.CreateProductRequest{
		Name:       "X",
		CategoryID: "cat-1",
		Price:      decimal.NewFromInt(100),
		Discount:   decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	// Raising the discount past the existing price must fail even though
	// the request by itself looks fine.
	bad := decimal.NewFromInt(150)
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Discount: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	newPrice := decimal.NewFromInt(200)
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Price: &newPrice, Discount: &bad})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(newPrice))
	assert.True(t, out.Discount.Equal(bad))
}

func TestProductListByAdmin(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo, &fakeUploader{})

	for _, owner := range []string{"admin-1", "admin-1", "admin-2"} {
		_, err := uc.Create(context.Background(), owner, dto.CreateProductRequest{
			Name:       "P",
			CategoryID: "cat-1",
			Price:      decimal.NewFromInt(10),
		})
		require.NoError(t, err)
	}

	out, err := uc.ListByAdmin(context.Background(), "admin-1", 10, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}

func TestSellingPrice(t *testing.T) {
	p := &entity.Product{Price: decimal.NewFromInt(450), Discount: decimal.NewFromInt(50)}
	assert.True(t, SellingPrice(p).Equal(decimal.NewFromInt(400)))
}
