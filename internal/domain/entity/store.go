package entity

import "time"

// Store is a physical shop owned by a principal account (AdminID). The
// owner's credentials live on the Admin row; the store row is profile data.
type Store struct {
	ID              string
	Title           string
	Image           string // unique
	Street          string
	City            string
	State           string
	ZipCode         string
	Latitude        float64
	Longitude       float64
	CategoryIDs     []string
	StoreCategoryID string
	AdminID         string
	IsOpen          bool
	AverageRating   float64
	Status          string // Active, Blocked
	IsDeleted       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Owner is the joined admin row when the query asked for it.
	Owner *Admin
}
