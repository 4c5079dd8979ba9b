package dto

import "time"

// CreateCategoryRequest new product category; image arrives as multipart.
type CreateCategoryRequest struct {
	Title     string `json:"title" form:"title"`
	Status    string `json:"status" form:"status"`
	ImagePath string `json:"-" form:"-"`
}

// UpdateCategoryRequest partial category update.
type UpdateCategoryRequest struct {
	Title     string `json:"title" form:"title"`
	Status    string `json:"status" form:"status"`
	ImagePath string `json:"-" form:"-"`
}

// CategoryResponse category projection.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image,omitempty"`
	AddedBy   string    `json:"addedBy"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryListResponse paged category list.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateStoreCategoryRequest new store category (no image).
type CreateStoreCategoryRequest struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

// UpdateStoreCategoryRequest partial store category update.
type UpdateStoreCategoryRequest struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

// StoreCategoryResponse store category projection.
type StoreCategoryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	AddedBy   string    `json:"addedBy"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StoreCategoryListResponse paged store category list.
type StoreCategoryListResponse struct {
	Items []StoreCategoryResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
