package entity

import "time"

// Banner is a promotional image pointing at a store or a product.
// StoreID/ProductID are optional; RedirectTo says which one applies.
type Banner struct {
	ID         string
	Image      string
	StoreID    string // empty when the banner targets a product
	ProductID  string // empty when the banner targets a store
	RedirectTo string
	Status     string // Active, Blocked
	IsDeleted  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
