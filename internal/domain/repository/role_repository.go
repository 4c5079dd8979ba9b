package repository

import (
	"context"

	"github.com/rahulxkr/storekart-api/internal/domain/entity"
)

// RoleRepository persistence port for roles.
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, id string) (*entity.Role, error)
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Role, error)
	ListActive(ctx context.Context, limit, offset int) ([]*entity.Role, error)
	Update(ctx context.Context, role *entity.Role) error
	SoftDelete(ctx context.Context, id string) error
}
