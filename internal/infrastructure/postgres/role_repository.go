package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
	"github.com/rahulxkr/storekart-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implements the RoleRepository port on PostgreSQL.
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository builds the persistence adapter for roles.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

const roleColumns = `id, name, COALESCE(permissions, '{}'), status, is_deleted, created_at, updated_at`

func scanRole(row rowScanner) (*entity.Role, error) {
	var role entity.Role
	err := row.Scan(&role.ID, &role.Name, &role.Permissions, &role.Status, &role.IsDeleted, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// Create persists a new role.
func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, permissions, status, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		role.ID, role.Name, role.Permissions, role.Status, role.IsDeleted, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID returns one visible role, (nil, nil) when missing or deleted.
func (r *RoleRepo) GetByID(ctx context.Context, id string) (*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1 AND ` + notDeleted
	role, err := scanRole(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by id: %w", err)
	}
	return role, nil
}

// GetByName returns one visible role by its unique name.
func (r *RoleRepo) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE name = $1 AND ` + notDeleted + ` LIMIT 1`
	role, err := scanRole(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return role, nil
}

// List returns visible roles, newest first.
func (r *RoleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE ` + notDeleted + `
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.listQuery(ctx, query, limit, offset)
}

// ListActive returns visible roles with status Active.
func (r *RoleRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE ` + notDeleted + ` AND status = 'Active'
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.listQuery(ctx, query, limit, offset)
}

func (r *RoleRepo) listQuery(ctx context.Context, query string, args ...any) ([]*entity.Role, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, role)
	}
	return list, rows.Err()
}

// Update writes the role fields.
func (r *RoleRepo) Update(ctx context.Context, role *entity.Role) error {
	query := `
		UPDATE roles SET name = $2, permissions = $3, status = $4, updated_at = $5
		WHERE id = $1 AND ` + notDeleted
	tag, err := r.pool.Exec(ctx, query, role.ID, role.Name, role.Permissions, role.Status, role.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete flags the role deleted. No cascade onto admins.
func (r *RoleRepo) SoftDelete(ctx context.Context, id string) error {
	return softDeleteRow(ctx, r.pool, "roles", id)
}
