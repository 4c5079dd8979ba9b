package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
	"github.com/rahulxkr/storekart-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implements the AdminRepository port on PostgreSQL. The partners
// co-partner array lives in a JSONB column; the role comes back via a LEFT
// JOIN on every read.
type AdminRepo struct {
	pool *pgxpool.Pool
}

// NewAdminRepository builds the persistence adapter for principal accounts.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

const adminColumns = `
	a.id, a.name, a.email, a.phone, a.secondary_phone, a.password_hash, a.role_id,
	a.fcm_token, a.avatar, a.status, a.refresh_token,
	a.gst, a.gst_number, a.gst_type, a.composition_type, a.cess_type,
	a.goods_service_type, a.percentage, a.cin_number,
	a.firm_name, a.firm_address, a.firm_type,
	a.pan_number, a.pan_image, a.aadhar_number, a.aadhar_front_image, a.aadhar_back_image,
	a.bank_name, a.account_number, a.ifsc_code, a.account_holder_name,
	a.partners, a.is_deleted, a.created_at, a.updated_at,
	r.id, r.name, COALESCE(r.permissions, '{}'), r.status, r.created_at, r.updated_at`

const adminFrom = ` FROM admins a LEFT JOIN roles r ON r.id = a.role_id AND r.is_deleted = FALSE`

func scanAdmin(row rowScanner) (*entity.Admin, error) {
	var a entity.Admin
	var roleID, roleName, roleStatus *string
	var rolePermissions []string
	var roleCreatedAt, roleUpdatedAt *time.Time
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.SecondaryPhone, &a.PasswordHash, &a.RoleID,
		&a.FCMToken, &a.Avatar, &a.Status, &a.RefreshToken,
		&a.GST, &a.GSTNumber, &a.GSTType, &a.CompositionType, &a.CessType,
		&a.GoodsServiceType, &a.Percentage, &a.CINNumber,
		&a.FirmName, &a.FirmAddress, &a.FirmType,
		&a.PANNumber, &a.PANImage, &a.AadharNumber, &a.AadharFrontImage, &a.AadharBackImage,
		&a.BankName, &a.AccountNumber, &a.IFSCCode, &a.AccountHolderName,
		&a.Partners, &a.IsDeleted, &a.CreatedAt, &a.UpdatedAt,
		&roleID, &roleName, &rolePermissions, &roleStatus, &roleCreatedAt, &roleUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if roleID != nil {
		a.Role = &entity.Role{
			ID:          *roleID,
			Name:        *roleName,
			Permissions: rolePermissions,
			Status:      *roleStatus,
			CreatedAt:   *roleCreatedAt,
			UpdatedAt:   *roleUpdatedAt,
		}
	}
	return &a, nil
}

// Create persists a new account row.
func (r *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	query := `
		INSERT INTO admins (
			id, name, email, phone, secondary_phone, password_hash, role_id,
			fcm_token, avatar, status, refresh_token,
			gst, gst_number, gst_type, composition_type, cess_type,
			goods_service_type, percentage, cin_number,
			firm_name, firm_address, firm_type,
			pan_number, pan_image, aadhar_number, aadhar_front_image, aadhar_back_image,
			bank_name, account_number, ifsc_code, account_holder_name,
			partners, is_deleted, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35
		)`
	partners := admin.Partners
	if partners == nil {
		partners = []entity.FirmPartner{}
	}
	_, err := r.pool.Exec(ctx, query,
		admin.ID, admin.Name, admin.Email, admin.Phone, admin.SecondaryPhone, admin.PasswordHash, admin.RoleID,
		admin.FCMToken, admin.Avatar, admin.Status, admin.RefreshToken,
		admin.GST, admin.GSTNumber, admin.GSTType, admin.CompositionType, admin.CessType,
		admin.GoodsServiceType, admin.Percentage, admin.CINNumber,
		admin.FirmName, admin.FirmAddress, admin.FirmType,
		admin.PANNumber, admin.PANImage, admin.AadharNumber, admin.AadharFrontImage, admin.AadharBackImage,
		admin.BankName, admin.AccountNumber, admin.IFSCCode, admin.AccountHolderName,
		partners, admin.IsDeleted, admin.CreatedAt, admin.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return adminUniqueError(err)
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// adminUniqueError maps a unique violation to the field-specific error.
func adminUniqueError(err error) error {
	switch violatedConstraint(err) {
	case "admins_email_active_key":
		return domain.ErrEmailTaken
	case "admins_phone_active_key":
		return domain.ErrPhoneTaken
	case "admins_pan_number_active_key":
		return domain.ErrPANTaken
	default:
		return domain.ErrDuplicate
	}
}

// GetByID returns one visible account row, (nil, nil) when missing or deleted.
func (r *AdminRepo) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	query := `SELECT` + adminColumns + adminFrom + ` WHERE a.id = $1 AND a.` + notDeleted
	admin, err := scanAdmin(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin by id: %w", err)
	}
	return admin, nil
}

// GetByEmail returns one visible account row by email.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	query := `SELECT` + adminColumns + adminFrom + ` WHERE a.email = $1 AND a.` + notDeleted + ` LIMIT 1`
	admin, err := scanAdmin(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin by email: %w", err)
	}
	return admin, nil
}

// List returns visible account rows, newest first.
func (r *AdminRepo) List(ctx context.Context, limit, offset int) ([]*entity.Admin, error) {
	query := `SELECT` + adminColumns + adminFrom + ` WHERE a.` + notDeleted + `
		ORDER BY a.created_at DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// ListActive returns visible rows with status Active, newest first.
func (r *AdminRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Admin, error) {
	query := `SELECT` + adminColumns + adminFrom + ` WHERE a.` + notDeleted + ` AND a.status = 'Active'
		ORDER BY a.created_at DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

func (r *AdminRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Admin, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()
	var list []*entity.Admin
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		list = append(list, admin)
	}
	return list, rows.Err()
}

// Update writes every profile field. password_hash and refresh_token are
// deliberately absent: they change only through their dedicated methods.
func (r *AdminRepo) Update(ctx context.Context, admin *entity.Admin) error {
	query := `
		UPDATE admins SET
			name = $2, email = $3, phone = $4, secondary_phone = $5, role_id = $6,
			fcm_token = $7, avatar = $8, status = $9,
			gst = $10, gst_number = $11, gst_type = $12, composition_type = $13, cess_type = $14,
			goods_service_type = $15, percentage = $16, cin_number = $17,
			firm_name = $18, firm_address = $19, firm_type = $20,
			pan_number = $21, pan_image = $22, aadhar_number = $23, aadhar_front_image = $24, aadhar_back_image = $25,
			bank_name = $26, account_number = $27, ifsc_code = $28, account_holder_name = $29,
			partners = $30, updated_at = $31
		WHERE id = $1 AND ` + notDeleted
	partners := admin.Partners
	if partners == nil {
		partners = []entity.FirmPartner{}
	}
	tag, err := r.pool.Exec(ctx, query,
		admin.ID, admin.Name, admin.Email, admin.Phone, admin.SecondaryPhone, admin.RoleID,
		admin.FCMToken, admin.Avatar, admin.Status,
		admin.GST, admin.GSTNumber, admin.GSTType, admin.CompositionType, admin.CessType,
		admin.GoodsServiceType, admin.Percentage, admin.CINNumber,
		admin.FirmName, admin.FirmAddress, admin.FirmType,
		admin.PANNumber, admin.PANImage, admin.AadharNumber, admin.AadharFrontImage, admin.AadharBackImage,
		admin.BankName, admin.AccountNumber, admin.IFSCCode, admin.AccountHolderName,
		partners, admin.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return adminUniqueError(err)
		}
		return fmt.Errorf("update admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePassword stores a new bcrypt digest.
func (r *AdminRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `UPDATE admins SET password_hash = $2, updated_at = $3 WHERE id = $1 AND ` + notDeleted
	tag, err := r.pool.Exec(ctx, query, id, passwordHash, time.Now())
	if err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateRefreshToken stores the active refresh token; empty means logged out.
func (r *AdminRepo) UpdateRefreshToken(ctx context.Context, id, refreshToken string) error {
	query := `UPDATE admins SET refresh_token = $2, updated_at = $3 WHERE id = $1 AND ` + notDeleted
	tag, err := r.pool.Exec(ctx, query, id, refreshToken, time.Now())
	if err != nil {
		return fmt.Errorf("update admin refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete flags the row deleted.
func (r *AdminRepo) SoftDelete(ctx context.Context, id string) error {
	return softDeleteRow(ctx, r.pool, "admins", id)
}

// HardDelete removes the row outright. Only the compensating delete during
// store creation calls this.
func (r *AdminRepo) HardDelete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id); err != nil {
		return fmt.Errorf("hard delete admin: %w", err)
	}
	return nil
}

// EmailExists reports whether another row claims the email.
func (r *AdminRepo) EmailExists(ctx context.Context, email, excludeID string, activeOnly bool) (bool, error) {
	return r.fieldExists(ctx, "email", email, excludeID, activeOnly)
}

// PhoneExists reports whether another row claims the phone number.
func (r *AdminRepo) PhoneExists(ctx context.Context, phone, excludeID string, activeOnly bool) (bool, error) {
	return r.fieldExists(ctx, "phone", phone, excludeID, activeOnly)
}

// PANExists reports whether another row claims the PAN number.
func (r *AdminRepo) PANExists(ctx context.Context, panNumber, excludeID string, activeOnly bool) (bool, error) {
	return r.fieldExists(ctx, "pan_number", panNumber, excludeID, activeOnly)
}

func (r *AdminRepo) fieldExists(ctx context.Context, column, value, excludeID string, activeOnly bool) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM admins
			WHERE %s = $1 AND ($2 = '' OR id <> $2) AND ($3 = FALSE OR is_deleted = FALSE)
		)`, column)
	var exists bool
	if err := r.pool.QueryRow(ctx, query, value, excludeID, activeOnly).Scan(&exists); err != nil {
		return false, fmt.Errorf("check admin %s: %w", column, err)
	}
	return exists, nil
}
