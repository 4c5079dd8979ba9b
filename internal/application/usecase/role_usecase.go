package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
	"github.com/rahulxkr/storekart-api/internal/domain/repository"
)

// RoleUseCase role management.
type RoleUseCase struct {
	roles repository.RoleRepository
}

// NewRoleUseCase builds the role use case.
func NewRoleUseCase(roles repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{roles: roles}
}

// Create creates a role. Name and status are required; an existing name is a
// conflict.
func (uc *RoleUseCase) Create(ctx context.Context, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if in.Name == "" || in.Status == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.roles.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Permissions: in.Permissions,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// GetByID returns one role or ErrNotFound.
func (uc *RoleUseCase) GetByID(ctx context.Context, id string) (*dto.RoleResponse, error) {
	role, err := uc.roles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	return toRoleResponse(role), nil
}

// List returns roles page by page.
func (uc *RoleUseCase) List(ctx context.Context, limit, offset int) (*dto.RoleListResponse, error) {
	list, err := uc.roles.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toRoleList(list, limit, offset), nil
}

// ListActive returns roles with status Active.
func (uc *RoleUseCase) ListActive(ctx context.Context, limit, offset int) (*dto.RoleListResponse, error) {
	list, err := uc.roles.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toRoleList(list, limit, offset), nil
}

// Update applies the provided fields. Renaming onto an existing role name is
// a conflict.
func (uc *RoleUseCase) Update(ctx context.Context, id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.roles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" && in.Name != role.Name {
		existing, err := uc.roles.GetByName(ctx, in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrConflict
		}
		role.Name = in.Name
	}
	if in.Permissions != nil {
		role.Permissions = in.Permissions
	}
	if in.Status != "" {
		role.Status = in.Status
	}
	role.UpdatedAt = time.Now()

	if err := uc.roles.Update(ctx, role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// SoftDelete flags the role deleted. Admins referencing it are untouched;
// there is no cascade.
func (uc *RoleUseCase) SoftDelete(ctx context.Context, id string) error {
	return uc.roles.SoftDelete(ctx, id)
}

func toRoleList(list []*entity.Role, limit, offset int) *dto.RoleListResponse {
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRoleResponse(r))
	}
	return &dto.RoleListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Permissions: r.Permissions,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
