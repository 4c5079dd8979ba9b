package dto

import "time"

// CreateStoreRequest creates the owner account and the store profile in one
// call. Owner credentials come first; everything else is store profile data.
type CreateStoreRequest struct {
	// Owner account
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Phone    string `json:"phone" form:"phone"`

	// Store profile
	Title           string   `json:"title" form:"title"`
	CategoryIDs     []string `json:"categoryIds" form:"categoryIds"`
	StoreCategoryID string   `json:"storeCategoryId" form:"storeCategoryId"`
	Street          string   `json:"street" form:"street"`
	City            string   `json:"city" form:"city"`
	State           string   `json:"state" form:"state"`
	ZipCode         string   `json:"zipCode" form:"zipCode"`
	Latitude        float64  `json:"latitude" form:"latitude"`
	Longitude       float64  `json:"longitude" form:"longitude"`
	Status          string   `json:"status" form:"status"`

	AvatarPath string `json:"-" form:"-"`
	ImagePath  string `json:"-" form:"-"`
}

// UpdateStoreRequest partial store update; empty fields left untouched.
type UpdateStoreRequest struct {
	Title           string   `json:"title" form:"title"`
	CategoryIDs     []string `json:"categoryIds" form:"categoryIds"`
	StoreCategoryID string   `json:"storeCategoryId" form:"storeCategoryId"`
	Street          string   `json:"street" form:"street"`
	City            string   `json:"city" form:"city"`
	State           string   `json:"state" form:"state"`
	ZipCode         string   `json:"zipCode" form:"zipCode"`
	IsOpen          *bool    `json:"isOpen" form:"isOpen"`
	Status          string   `json:"status" form:"status"`
	ImagePath       string   `json:"-" form:"-"`
}

// StoreResponse store projection with the sanitized owner attached.
type StoreResponse struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Image           string         `json:"image,omitempty"`
	Street          string         `json:"street"`
	City            string         `json:"city"`
	State           string         `json:"state"`
	ZipCode         string         `json:"zipCode"`
	Latitude        float64        `json:"latitude"`
	Longitude       float64        `json:"longitude"`
	CategoryIDs     []string       `json:"categoryIds"`
	StoreCategoryID string         `json:"storeCategoryId"`
	AdminID         string         `json:"adminId"`
	Owner           *AdminResponse `json:"owner,omitempty"`
	IsOpen          bool           `json:"isOpen"`
	AverageRating   float64        `json:"averageRating"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// StoreListResponse paged store list.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
