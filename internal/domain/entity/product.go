package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Delivery modes for a product.
const (
	DeliveryModeHome   = "Home Delivery"
	DeliveryModePickup = "Pickup"
)

// Product is a sellable item listed by an admin or store owner.
type Product struct {
	ID            string
	Name          string
	Description   string
	CategoryID    string
	AdminID       string
	DeliveryMode  string
	Quantity      int
	Price         decimal.Decimal
	Discount      decimal.Decimal // absolute discount, 0 when none
	Image         string
	GalleryImages []string
	Status        string // Active, Blocked
	IsDeleted     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
