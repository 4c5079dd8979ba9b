package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
	"github.com/rahulxkr/storekart-api/internal/domain/repository"
	"github.com/rahulxkr/storekart-api/pkg/jwt"
)

// SessionUseCase is the session lifecycle for every principal account.
// Admin, partner and store-owner logins all go through here; the role on the
// account is what differs, not the flow.
type SessionUseCase struct {
	admins     repository.AdminRepository
	tokens     jwt.Config
	bcryptCost int
}

// NewSessionUseCase builds the session use case.
func NewSessionUseCase(admins repository.AdminRepository, tokens jwt.Config, bcryptCost int) *SessionUseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &SessionUseCase{admins: admins, tokens: tokens, bcryptCost: bcryptCost}
}

// HashPassword hashes a plaintext password. Exposed so account-creation use
// cases hash through the exact same path as ChangePassword.
func (uc *SessionUseCase) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), uc.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Login verifies credentials and opens a session.
//
// Unknown email and wrong password both return ErrUnauthorized: callers can
// never tell which one happened. A new login overwrites any previously
// persisted refresh token, so the newest session wins.
func (uc *SessionUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	// Accounts store the email lowercased; accept any casing on login.
	email := strings.ToLower(strings.TrimSpace(in.Email))
	admin, err := uc.admins.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if admin.Status != entity.StatusActive {
		return nil, domain.ErrForbidden
	}

	roleName := ""
	if admin.Role != nil {
		roleName = admin.Role.Name
	}
	accessToken, err := uc.tokens.GenerateAccessToken(admin.ID, roleName)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := uc.tokens.GenerateRefreshToken(admin.ID, roleName)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	if err := uc.admins.UpdateRefreshToken(ctx, admin.ID, refreshToken); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Admin:        *ToAdminResponse(admin),
	}, nil
}

// Logout clears the persisted refresh token, ending every outstanding
// session for the account. Idempotent: logging out twice succeeds both
// times. Already-issued access tokens stay valid until they expire.
func (uc *SessionUseCase) Logout(ctx context.Context, adminID string) error {
	admin, err := uc.admins.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return domain.ErrNotFound
	}
	return uc.admins.UpdateRefreshToken(ctx, adminID, "")
}

// ChangePassword re-verifies the current password before storing a new hash.
// A mismatch returns ErrUnauthorized and leaves the stored hash untouched.
// The persisted refresh token is not invalidated.
func (uc *SessionUseCase) ChangePassword(ctx context.Context, adminID, oldPassword, newPassword string) error {
	admin, err := uc.admins.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(oldPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := uc.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return uc.admins.UpdatePassword(ctx, adminID, hash)
}

// Refresh rotates the token pair. The presented token must carry a valid
// signature AND match the token persisted on the account; after a logout or
// a newer login the old refresh token is useless even if unexpired.
func (uc *SessionUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	adminID, _, err := uc.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	admin, err := uc.admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil || admin.RefreshToken == "" || admin.RefreshToken != refreshToken {
		return nil, domain.ErrUnauthorized
	}
	if admin.Status != entity.StatusActive {
		return nil, domain.ErrForbidden
	}

	roleName := ""
	if admin.Role != nil {
		roleName = admin.Role.Name
	}
	newAccess, err := uc.tokens.GenerateAccessToken(admin.ID, roleName)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	newRefresh, err := uc.tokens.GenerateRefreshToken(admin.ID, roleName)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	if err := uc.admins.UpdateRefreshToken(ctx, admin.ID, newRefresh); err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{AccessToken: newAccess, RefreshToken: newRefresh}, nil
}

// ToAdminResponse strips credentials from an account row. Every projection
// that leaves the application layer goes through here.
func ToAdminResponse(a *entity.Admin) *dto.AdminResponse {
	if a == nil {
		return nil
	}
	out := &dto.AdminResponse{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		Phone:          a.Phone,
		SecondaryPhone: a.SecondaryPhone,
		RoleID:         a.RoleID,
		FCMToken:       a.FCMToken,
		Avatar:         a.Avatar,
		Status:         a.Status,
		PANNumber:      a.PANNumber,
		PANImage:       a.PANImage,
		AadharNumber:   a.AadharNumber,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.Role != nil {
		out.Role = &dto.RoleResponse{
			ID:          a.Role.ID,
			Name:        a.Role.Name,
			Permissions: a.Role.Permissions,
			Status:      a.Role.Status,
			CreatedAt:   a.Role.CreatedAt,
			UpdatedAt:   a.Role.UpdatedAt,
		}
	}
	return out
}
