package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rahulxkr/storekart-api/internal/application/auth"
	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/application/ports"
	"github.com/rahulxkr/storekart-api/internal/domain"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
	"github.com/rahulxkr/storekart-api/internal/domain/repository"
)

// UniquePolicy controls whether uniqueness checks look at every row or only
// at rows that are not soft-deleted.
type UniquePolicy struct {
	AmongActiveOnly bool
}

// AdminUseCase account management for staff admins.
type AdminUseCase struct {
	admins   repository.AdminRepository
	sessions *auth.SessionUseCase
	uploader ports.AssetUploader
	policy   UniquePolicy
}

// NewAdminUseCase builds the admin use case.
func NewAdminUseCase(admins repository.AdminRepository, sessions *auth.SessionUseCase, uploader ports.AssetUploader, policy UniquePolicy) *AdminUseCase {
	return &AdminUseCase{admins: admins, sessions: sessions, uploader: uploader, policy: policy}
}

// checkUniqueFields enforces email/phone uniqueness. excludeID skips the row
// being updated.
func checkUniqueFields(ctx context.Context, admins repository.AdminRepository, email, phone, excludeID string, policy UniquePolicy) error {
	if email != "" {
		taken, err := admins.EmailExists(ctx, email, excludeID, policy.AmongActiveOnly)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrEmailTaken
		}
	}
	if phone != "" {
		taken, err := admins.PhoneExists(ctx, phone, excludeID, policy.AmongActiveOnly)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrPhoneTaken
		}
	}
	return nil
}

// uploadIfPresent pushes a local file through the uploader; empty path means
// nothing to upload.
func uploadIfPresent(ctx context.Context, uploader ports.AssetUploader, localPath string) (string, error) {
	if localPath == "" {
		return "", nil
	}
	url, err := uploader.Upload(ctx, localPath)
	if err != nil {
		return "", domain.ErrUploadFailed
	}
	return url, nil
}

// Create registers a staff admin. The password is hashed exactly once, here,
// through the session use case's hashing path.
func (uc *AdminUseCase) Create(ctx context.Context, in dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := checkUniqueFields(ctx, uc.admins, email, in.Phone, "", uc.policy); err != nil {
		return nil, err
	}

	avatar, err := uploadIfPresent(ctx, uc.uploader, in.AvatarPath)
	if err != nil {
		return nil, err
	}
	panImage, err := uploadIfPresent(ctx, uc.uploader, in.PANImagePath)
	if err != nil {
		return nil, err
	}
	aadharFront, err := uploadIfPresent(ctx, uc.uploader, in.AadharFrontImagePath)
	if err != nil {
		return nil, err
	}
	aadharBack, err := uploadIfPresent(ctx, uc.uploader, in.AadharBackImagePath)
	if err != nil {
		return nil, err
	}

	hash, err := uc.sessions.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	now := time.Now()
	admin := &entity.Admin{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Email:            email,
		Phone:            in.Phone,
		SecondaryPhone:   in.SecondaryPhone,
		PasswordHash:     hash,
		RoleID:           in.RoleID,
		Avatar:           avatar,
		Status:           status,
		PANNumber:        in.PANNumber,
		PANImage:         panImage,
		AadharNumber:     in.AadharNumber,
		AadharFrontImage: aadharFront,
		AadharBackImage:  aadharBack,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	return auth.ToAdminResponse(admin), nil
}

// GetByID returns one admin or ErrNotFound (soft-deleted rows included).
func (uc *AdminUseCase) GetByID(ctx context.Context, id string) (*dto.AdminResponse, error) {
	admin, err := uc.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToAdminResponse(admin), nil
}

// List returns admins page by page.
func (uc *AdminUseCase) List(ctx context.Context, limit, offset int) (*dto.AdminListResponse, error) {
	list, err := uc.admins.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdminResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *auth.ToAdminResponse(a))
	}
	return &dto.AdminListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// ListActive returns admins with status Active.
func (uc *AdminUseCase) ListActive(ctx context.Context, limit, offset int) (*dto.AdminListResponse, error) {
	list, err := uc.admins.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdminResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *auth.ToAdminResponse(a))
	}
	return &dto.AdminListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update applies the provided fields. The password is out of reach here by
// construction: the repository's Update never writes it.
func (uc *AdminUseCase) Update(ctx context.Context, id string, in dto.UpdateAdminRequest) (*dto.AdminResponse, error) {
	admin, err := uc.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotFound
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := checkUniqueFields(ctx, uc.admins, email, in.Phone, id, uc.policy); err != nil {
		return nil, err
	}

	if in.AvatarPath != "" {
		avatar, err := uploadIfPresent(ctx, uc.uploader, in.AvatarPath)
		if err != nil {
			return nil, err
		}
		admin.Avatar = avatar
	}
	if in.Name != "" {
		admin.Name = in.Name
	}
	if email != "" {
		admin.Email = email
	}
	if in.Phone != "" {
		admin.Phone = in.Phone
	}
	if in.SecondaryPhone != "" {
		admin.SecondaryPhone = in.SecondaryPhone
	}
	if in.RoleID != "" {
		admin.RoleID = in.RoleID
	}
	if in.FCMToken != "" {
		admin.FCMToken = in.FCMToken
	}
	if in.Status != "" {
		admin.Status = in.Status
	}
	admin.UpdatedAt = time.Now()

	if err := uc.admins.Update(ctx, admin); err != nil {
		return nil, err
	}
	return auth.ToAdminResponse(admin), nil
}

// SoftDelete flags the admin deleted. Deleting twice returns
// ErrAlreadyDeleted; the flag never flips back.
func (uc *AdminUseCase) SoftDelete(ctx context.Context, id string) error {
	return uc.admins.SoftDelete(ctx, id)
}
