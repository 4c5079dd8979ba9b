package dto

import "time"

// CreateRoleRequest new role with its permission strings.
type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	Status      string   `json:"status"`
}

// UpdateRoleRequest partial role update.
type UpdateRoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	Status      string   `json:"status"`
}

// RoleResponse role projection.
type RoleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RoleListResponse paged role list.
type RoleListResponse struct {
	Items []RoleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
