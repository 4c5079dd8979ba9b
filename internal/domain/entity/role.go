package entity

import "time"

// Role groups permission strings under a unique name. Deleting a role does
// not cascade to the admins referencing it.
type Role struct {
	ID          string
	Name        string // unique
	Permissions []string
	Status      string // Active, Blocked
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
