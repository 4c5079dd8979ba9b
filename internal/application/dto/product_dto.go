package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest new product; main image and gallery arrive as
// multipart files resolved to local paths by the handler.
type CreateProductRequest struct {
	Name         string          `json:"name" form:"name"`
	Description  string          `json:"description" form:"description"`
	CategoryID   string          `json:"categoryId" form:"categoryId"`
	DeliveryMode string          `json:"deliveryMode" form:"deliveryMode"`
	Quantity     int             `json:"quantity" form:"quantity"`
	Price        decimal.Decimal `json:"price" form:"price"`
	Discount     decimal.Decimal `json:"discount" form:"discount"`
	Status       string          `json:"status" form:"status"`

	ImagePath         string   `json:"-" form:"-"`
	GalleryImagePaths []string `json:"-" form:"-"`
}

// UpdateProductRequest partial product update. Pointer fields distinguish
// "not sent" from zero values.
type UpdateProductRequest struct {
	Name         string           `json:"name" form:"name"`
	Description  string           `json:"description" form:"description"`
	CategoryID   string           `json:"categoryId" form:"categoryId"`
	DeliveryMode string           `json:"deliveryMode" form:"deliveryMode"`
	Quantity     *int             `json:"quantity" form:"quantity"`
	Price        *decimal.Decimal `json:"price" form:"price"`
	Discount     *decimal.Decimal `json:"discount" form:"discount"`
	Status       string           `json:"status" form:"status"`
	ImagePath    string           `json:"-" form:"-"`
}

// ProductResponse product projection.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"categoryId"`
	AdminID       string          `json:"adminId"`
	DeliveryMode  string          `json:"deliveryMode,omitempty"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Discount      decimal.Decimal `json:"discount"`
	Image         string          `json:"image,omitempty"`
	GalleryImages []string        `json:"galleryImages,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProductListResponse paged product list.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
