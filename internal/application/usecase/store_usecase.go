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

// StoreUseCase store management. Creating a store also creates the owner's
// principal account; the owner logs in through the shared session use case.
type StoreUseCase struct {
	stores   repository.StoreRepository
	admins   repository.AdminRepository
	roles    repository.RoleRepository
	sessions *auth.SessionUseCase
	uploader ports.AssetUploader
	policy   UniquePolicy
}

// NewStoreUseCase builds the store use case.
func NewStoreUseCase(stores repository.StoreRepository, admins repository.AdminRepository, roles repository.RoleRepository, sessions *auth.SessionUseCase, uploader ports.AssetUploader, policy UniquePolicy) *StoreUseCase {
	return &StoreUseCase{stores: stores, admins: admins, roles: roles, sessions: sessions, uploader: uploader, policy: policy}
}

// Create creates the owner account, then the store row. If the store insert
// fails the owner account is hard-deleted again so no orphaned credentials
// remain. This is an explicit compensating delete, not a transaction.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := checkUniqueFields(ctx, uc.admins, email, in.Phone, "", uc.policy); err != nil {
		return nil, err
	}

	role, err := uc.roles.GetByName(ctx, entity.RoleNameStore)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}

	avatar, err := uploadIfPresent(ctx, uc.uploader, in.AvatarPath)
	if err != nil {
		return nil, err
	}
	image, err := uploadIfPresent(ctx, uc.uploader, in.ImagePath)
	if err != nil {
		return nil, err
	}

	hash, err := uc.sessions.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	owner := &entity.Admin{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        email,
		Phone:        in.Phone,
		PasswordHash: hash,
		RoleID:       role.ID,
		Avatar:       avatar,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
		Role:         role,
	}
	if err := uc.admins.Create(ctx, owner); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	store := &entity.Store{
		ID:              uuid.New().String(),
		Title:           in.Title,
		Image:           image,
		Street:          in.Street,
		City:            in.City,
		State:           in.State,
		ZipCode:         in.ZipCode,
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		CategoryIDs:     in.CategoryIDs,
		StoreCategoryID: in.StoreCategoryID,
		AdminID:         owner.ID,
		IsOpen:          true,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
		Owner:           owner,
	}
	if err := uc.stores.Create(ctx, store); err != nil {
		// Compensating delete: the owner account must not survive without
		// its store.
		_ = uc.admins.HardDelete(ctx, owner.ID)
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID returns one store or ErrNotFound.
func (uc *StoreUseCase) GetByID(ctx context.Context, id string) (*dto.StoreResponse, error) {
	store, err := uc.stores.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return toStoreResponse(store), nil
}

// List returns stores page by page.
func (uc *StoreUseCase) List(ctx context.Context, limit, offset int) (*dto.StoreListResponse, error) {
	list, err := uc.stores.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toStoreList(list, limit, offset), nil
}

// ListActive returns stores with status Active.
func (uc *StoreUseCase) ListActive(ctx context.Context, limit, offset int) (*dto.StoreListResponse, error) {
	list, err := uc.stores.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toStoreList(list, limit, offset), nil
}

// Update applies the provided fields to the store profile.
func (uc *StoreUseCase) Update(ctx context.Context, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.stores.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if in.ImagePath != "" {
		image, err := uploadIfPresent(ctx, uc.uploader, in.ImagePath)
		if err != nil {
			return nil, err
		}
		store.Image = image
	}
	if in.Title != "" {
		store.Title = in.Title
	}
	if len(in.CategoryIDs) > 0 {
		store.CategoryIDs = in.CategoryIDs
	}
	if in.StoreCategoryID != "" {
		store.StoreCategoryID = in.StoreCategoryID
	}
	if in.Street != "" {
		store.Street = in.Street
	}
	if in.City != "" {
		store.City = in.City
	}
	if in.State != "" {
		store.State = in.State
	}
	if in.ZipCode != "" {
		store.ZipCode = in.ZipCode
	}
	if in.IsOpen != nil {
		store.IsOpen = *in.IsOpen
	}
	if in.Status != "" {
		store.Status = in.Status
	}
	store.UpdatedAt = time.Now()

	if err := uc.stores.Update(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// SoftDelete flags the store deleted. The owner account stays untouched.
func (uc *StoreUseCase) SoftDelete(ctx context.Context, id string) error {
	return uc.stores.SoftDelete(ctx, id)
}

func toStoreList(list []*entity.Store, limit, offset int) *dto.StoreListResponse {
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return &dto.StoreListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:              s.ID,
		Title:           s.Title,
		Image:           s.Image,
		Street:          s.Street,
		City:            s.City,
		State:           s.State,
		ZipCode:         s.ZipCode,
		Latitude:        s.Latitude,
		Longitude:       s.Longitude,
		CategoryIDs:     s.CategoryIDs,
		StoreCategoryID: s.StoreCategoryID,
		AdminID:         s.AdminID,
		Owner:           auth.ToAdminResponse(s.Owner),
		IsOpen:          s.IsOpen,
		AverageRating:   s.AverageRating,
		Status:          s.Status,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
