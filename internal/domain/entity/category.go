package entity

import "time"

// Category is a product category. Titles are stored title-cased and unique.
type Category struct {
	ID        string
	Title     string
	Image     string
	AddedBy   string // admin id
	UpdatedBy string // admin id, empty until first update
	Status    string // Active, Blocked
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoreCategory classifies stores (restaurant, grocery, ...). Same rules as
// Category minus the image.
type StoreCategory struct {
	ID        string
	Title     string
	AddedBy   string
	UpdatedBy string
	Status    string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
