package dto

import "time"

// CreateBannerRequest new banner; exactly one of storeId/productId should be
// set, matching redirectTo.
type CreateBannerRequest struct {
	StoreID    string `json:"storeId" form:"storeId"`
	ProductID  string `json:"productId" form:"productId"`
	RedirectTo string `json:"redirectTo" form:"redirectTo"`
	Status     string `json:"status" form:"status"`
	ImagePath  string `json:"-" form:"-"`
}

// UpdateBannerRequest partial banner update.
type UpdateBannerRequest struct {
	StoreID    string `json:"storeId" form:"storeId"`
	ProductID  string `json:"productId" form:"productId"`
	RedirectTo string `json:"redirectTo" form:"redirectTo"`
	Status     string `json:"status" form:"status"`
	ImagePath  string `json:"-" form:"-"`
}

// BannerResponse banner projection.
type BannerResponse struct {
	ID         string    `json:"id"`
	Image      string    `json:"image"`
	StoreID    string    `json:"storeId,omitempty"`
	ProductID  string    `json:"productId,omitempty"`
	RedirectTo string    `json:"redirectTo"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BannerListResponse paged banner list.
type BannerListResponse struct {
	Items []BannerResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
