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

// PartnerUseCase onboarding and maintenance for partner accounts. Partners
// are Admin rows with the Partner role plus the GST/firm/KYC/bank blocks;
// their login goes through the shared session use case.
type PartnerUseCase struct {
	admins   repository.AdminRepository
	roles    repository.RoleRepository
	sessions *auth.SessionUseCase
	uploader ports.AssetUploader
	policy   UniquePolicy
}

// NewPartnerUseCase builds the partner use case.
func NewPartnerUseCase(admins repository.AdminRepository, roles repository.RoleRepository, sessions *auth.SessionUseCase, uploader ports.AssetUploader, policy UniquePolicy) *PartnerUseCase {
	return &PartnerUseCase{admins: admins, roles: roles, sessions: sessions, uploader: uploader, policy: policy}
}

func (uc *PartnerUseCase) checkPANUnique(ctx context.Context, panNumber, excludeID string) error {
	if panNumber == "" {
		return nil
	}
	taken, err := uc.admins.PANExists(ctx, panNumber, excludeID, uc.policy.AmongActiveOnly)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrPANTaken
	}
	return nil
}

// uploadFirmPartners resolves every co-partner's image uploads.
func (uc *PartnerUseCase) uploadFirmPartners(ctx context.Context, in []dto.FirmPartnerInput) ([]entity.FirmPartner, error) {
	out := make([]entity.FirmPartner, 0, len(in))
	for _, p := range in {
		panImage, err := uploadIfPresent(ctx, uc.uploader, p.PANImagePath)
		if err != nil {
			return nil, err
		}
		aadharFront, err := uploadIfPresent(ctx, uc.uploader, p.AadharFrontImagePath)
		if err != nil {
			return nil, err
		}
		aadharBack, err := uploadIfPresent(ctx, uc.uploader, p.AadharBackImagePath)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.FirmPartner{
			PANNumber:         p.PANNumber,
			PANImage:          panImage,
			AadharNumber:      p.AadharNumber,
			AadharFrontImage:  aadharFront,
			AadharBackImage:   aadharBack,
			Documents:         p.Documents,
			BankName:          p.BankName,
			AccountNumber:     p.AccountNumber,
			IFSCCode:          p.IFSCCode,
			AccountHolderName: p.AccountHolderName,
		})
	}
	return out, nil
}

// Create onboards a partner account with its full KYC payload.
func (uc *PartnerUseCase) Create(ctx context.Context, in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	if in.GSTSelected == "" || in.FirmName == "" || in.FirmAddress == "" || in.PANNumber == "" {
		return nil, domain.ErrInvalidInput
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := checkUniqueFields(ctx, uc.admins, email, in.Phone, "", uc.policy); err != nil {
		return nil, err
	}
	if err := uc.checkPANUnique(ctx, in.PANNumber, ""); err != nil {
		return nil, err
	}

	role, err := uc.roles.GetByName(ctx, entity.RoleNamePartner)
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
	firmPartners, err := uc.uploadFirmPartners(ctx, in.Partners)
	if err != nil {
		return nil, err
	}

	hash, err := uc.sessions.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	// GST-dependent fields are only kept when GST is selected, matching the
	// onboarding form's behavior.
	gstNumber, firmType, cinNumber := "", "", ""
	if in.GSTSelected == "Yes" {
		gstNumber = in.GSTNumber
		firmType = in.FirmType
		cinNumber = in.CINNumber
	}

	now := time.Now()
	partner := &entity.Admin{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Email:             email,
		Phone:             in.Phone,
		SecondaryPhone:    in.SecondaryPhone,
		PasswordHash:      hash,
		RoleID:            role.ID,
		Avatar:            avatar,
		Status:            entity.StatusActive,
		GST:               in.GSTSelected,
		GSTNumber:         gstNumber,
		GSTType:           in.GSTType,
		CompositionType:   in.CompositionType,
		CessType:          in.CessType,
		GoodsServiceType:  in.GoodsServiceType,
		Percentage:        in.Percentage,
		CINNumber:         cinNumber,
		FirmName:          in.FirmName,
		FirmAddress:       in.FirmAddress,
		FirmType:          firmType,
		PANNumber:         in.PANNumber,
		PANImage:          panImage,
		AadharNumber:      in.AadharNumber,
		AadharFrontImage:  aadharFront,
		AadharBackImage:   aadharBack,
		BankName:          in.BankName,
		AccountNumber:     in.AccountNumber,
		IFSCCode:          in.IFSCCode,
		AccountHolderName: in.AccountHolderName,
		Partners:          firmPartners,
		CreatedAt:         now,
		UpdatedAt:         now,
		Role:              role,
	}
	if err := uc.admins.Create(ctx, partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// GetByID returns one partner or ErrNotFound.
func (uc *PartnerUseCase) GetByID(ctx context.Context, id string) (*dto.PartnerResponse, error) {
	partner, err := uc.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	return toPartnerResponse(partner), nil
}

// List returns partners page by page.
func (uc *PartnerUseCase) List(ctx context.Context, limit, offset int) (*dto.PartnerListResponse, error) {
	list, err := uc.admins.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toPartnerList(list, limit, offset), nil
}

// ListActive returns partners with status Active.
func (uc *PartnerUseCase) ListActive(ctx context.Context, limit, offset int) (*dto.PartnerListResponse, error) {
	list, err := uc.admins.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toPartnerList(list, limit, offset), nil
}

// UpdateBasic updates name/contact/status.
func (uc *PartnerUseCase) UpdateBasic(ctx context.Context, id string, in dto.UpdatePartnerBasicRequest) (*dto.PartnerResponse, error) {
	partner, err := uc.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := checkUniqueFields(ctx, uc.admins, email, in.Phone, id, uc.policy); err != nil {
		return nil, err
	}
	if in.Name != "" {
		partner.Name = in.Name
	}
	if email != "" {
		partner.Email = email
	}
	if in.Phone != "" {
		partner.Phone = in.Phone
	}
	if in.SecondaryPhone != "" {
		partner.SecondaryPhone = in.SecondaryPhone
	}
	if in.Status != "" {
		partner.Status = in.Status
	}
	return uc.save(ctx, partner)
}

// UpdateGST updates the GST block.
func (uc *PartnerUseCase) UpdateGST(ctx context.Context, id string, in dto.UpdatePartnerGSTRequest) (*dto.PartnerResponse, error) {
	partner, err := uc.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	if in.GST != "" {
		partner.GST = in.GST
	}
	if in.GSTNumber != "" {
		partner.GSTNumber = in.GSTNumber
	}
	if in.GSTType != "" {
		partner.GSTType = in.GSTType
	}
	if in.CompositionType != "" {
		partner.CompositionType = in.CompositionType
	}
	if in.CessType != "" {
		partner.CessType = in.CessType
	}
	if in.GoodsServiceType != "" {
		partner.GoodsServiceType = in.GoodsServiceType
	}
	if in.Percentage != "" {
		partner.Percentage = in.Percentage
	}
	return uc.save(ctx, partner)
}

// UpdateFirm updates the firm/KYC block, re-uploading any replaced images.
func (uc *PartnerUseCase) UpdateFirm(ctx context.Context, id string, in dto.UpdatePartnerFirmRequest) (*dto.PartnerResponse, error) {
	partner, err := uc.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	if in.PANNumber != "" && in.PANNumber != partner.PANNumber {
		if err := uc.checkPANUnique(ctx, in.PANNumber, id); err != nil {
			return nil, err
		}
		partner.PANNumber = in.PANNumber
	}
	if in.PANImagePath != "" {
		url, err := uploadIfPresent(ctx, uc.uploader, in.PANImagePath)
		if err != nil {
			return nil, err
		}
		partner.PANImage = url
	}
	if in.AadharFrontImagePath != "" {
		url, err := uploadIfPresent(ctx, uc.uploader, in.AadharFrontImagePath)
		if err != nil {
			return nil, err
		}
		partner.AadharFrontImage = url
	}
	if in.AadharBackImagePath != "" {
		url, err := uploadIfPresent(ctx, uc.uploader, in.AadharBackImagePath)
		if err != nil {
			return nil, err
		}
		partner.AadharBackImage = url
	}
	if in.AadharNumber != "" {
		partner.AadharNumber = in.AadharNumber
	}
	if in.FirmName != "" {
		partner.FirmName = in.FirmName
	}
	if in.FirmAddress != "" {
		partner.FirmAddress = in.FirmAddress
	}
	if in.FirmType != "" {
		partner.FirmType = in.FirmType
	}
	if in.CINNumber != "" {
		partner.CINNumber = in.CINNumber
	}
	return uc.save(ctx, partner)
}

// UpdateBank updates the bank block.
func (uc *PartnerUseCase) UpdateBank(ctx context.Context, id string, in dto.UpdatePartnerBankRequest) (*dto.PartnerResponse, error) {
	partner, err := uc.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	if in.BankName != "" {
		partner.BankName = in.BankName
	}
	if in.AccountNumber != "" {
		partner.AccountNumber = in.AccountNumber
	}
	if in.IFSCCode != "" {
		partner.IFSCCode = in.IFSCCode
	}
	if in.AccountHolderName != "" {
		partner.AccountHolderName = in.AccountHolderName
	}
	return uc.save(ctx, partner)
}

// UpdatePartners replaces the firm's co-partner array wholesale.
func (uc *PartnerUseCase) UpdatePartners(ctx context.Context, id string, in dto.UpdatePartnerPartnersRequest) (*dto.PartnerResponse, error) {
	partner, err := uc.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	firmPartners, err := uc.uploadFirmPartners(ctx, in.Partners)
	if err != nil {
		return nil, err
	}
	partner.Partners = firmPartners
	return uc.save(ctx, partner)
}

// SoftDelete flags the partner deleted.
func (uc *PartnerUseCase) SoftDelete(ctx context.Context, id string) error {
	return uc.admins.SoftDelete(ctx, id)
}

func (uc *PartnerUseCase) save(ctx context.Context, partner *entity.Admin) (*dto.PartnerResponse, error) {
	partner.UpdatedAt = time.Now()
	if err := uc.admins.Update(ctx, partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

func toPartnerList(list []*entity.Admin, limit, offset int) *dto.PartnerListResponse {
	items := make([]dto.PartnerResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toPartnerResponse(a))
	}
	return &dto.PartnerListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toPartnerResponse(a *entity.Admin) *dto.PartnerResponse {
	if a == nil {
		return nil
	}
	out := &dto.PartnerResponse{
		AdminResponse:     *auth.ToAdminResponse(a),
		GST:               a.GST,
		GSTNumber:         a.GSTNumber,
		GSTType:           a.GSTType,
		CompositionType:   a.CompositionType,
		CessType:          a.CessType,
		GoodsServiceType:  a.GoodsServiceType,
		Percentage:        a.Percentage,
		CINNumber:         a.CINNumber,
		FirmName:          a.FirmName,
		FirmAddress:       a.FirmAddress,
		FirmType:          a.FirmType,
		AadharFrontImage:  a.AadharFrontImage,
		AadharBackImage:   a.AadharBackImage,
		BankName:          a.BankName,
		AccountNumber:     a.AccountNumber,
		IFSCCode:          a.IFSCCode,
		AccountHolderName: a.AccountHolderName,
	}
	for _, p := range a.Partners {
		out.Partners = append(out.Partners, dto.FirmPartnerResponse{
			PANNumber:         p.PANNumber,
			PANImage:          p.PANImage,
			AadharNumber:      p.AadharNumber,
			AadharFrontImage:  p.AadharFrontImage,
			AadharBackImage:   p.AadharBackImage,
			Documents:         p.Documents,
			BankName:          p.BankName,
			AccountNumber:     p.AccountNumber,
			IFSCCode:          p.IFSCCode,
			AccountHolderName: p.AccountHolderName,
		})
	}
	return out
}
