package http

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/application/usecase"
)

// PartnerHandler partner onboarding and staged-update endpoints.
type PartnerHandler struct {
	uc *usecase.PartnerUseCase
}

// NewPartnerHandler builds the partner handler.
func NewPartnerHandler(uc *usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

// parseFirmPartners reads the "partners" form field as a JSON array and
// resolves each co-partner's uploads, sent as indexed fields
// (partnerPanImage0, partnerAadharFront0, partnerAadharBack0, ...).
func parseFirmPartners(c *fiber.Ctx) ([]dto.FirmPartnerInput, error) {
	raw := c.FormValue("partners")
	if raw == "" {
		return nil, nil
	}
	var partners []dto.FirmPartnerInput
	if err := json.Unmarshal([]byte(raw), &partners); err != nil {
		return nil, err
	}
	for i := range partners {
		var err error
		if partners[i].PANImagePath, err = saveUpload(c, fmt.Sprintf("partnerPanImage%d", i)); err != nil {
			return nil, err
		}
		if partners[i].AadharFrontImagePath, err = saveUpload(c, fmt.Sprintf("partnerAadharFront%d", i)); err != nil {
			return nil, err
		}
		if partners[i].AadharBackImagePath, err = saveUpload(c, fmt.Sprintf("partnerAadharBack%d", i)); err != nil {
			return nil, err
		}
	}
	return partners, nil
}

// Create godoc
// @Summary      Onboard a partner
// @Tags         partners
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.PartnerResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/partners [post]
func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c)
	}
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email, password and phone are required"})
	}
	var err error
	if in.Partners, err = parseFirmPartners(c); err != nil {
		return badRequest(c)
	}
	if in.AvatarPath, err = saveUpload(c, "avatar"); err != nil {
		return writeError(c, err)
	}
	if in.PANImagePath, err = saveUpload(c, "panImage"); err != nil {
		return writeError(c, err)
	}
	if in.AadharFrontImagePath, err = saveUpload(c, "aadharFrontImage"); err != nil {
		return writeError(c, err)
	}
	if in.AadharBackImagePath, err = saveUpload(c, "aadharBackImage"); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get one partner
// @Tags         partners
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "partner id"
// @Success      200  {object}  dto.PartnerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/partners/{id} [get]
func (h *PartnerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List partners
// @Tags         partners
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.PartnerListResponse
// @Router       /api/v1/partners [get]
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	var (
		out *dto.PartnerListResponse
		err error
	)
	if c.QueryBool("active", false) {
		out, err = h.uc.ListActive(c.UserContext(), limit, offset)
	} else {
		out, err = h.uc.List(c.UserContext(), limit, offset)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateBasic godoc
// @Summary      Update partner contact details
// @Tags         partners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "partner id"
// @Success      200  {object}  dto.PartnerResponse
// @Router       /api/v1/partners/{id}/basic [put]
func (h *PartnerHandler) UpdateBasic(c *fiber.Ctx) error {
	var in dto.UpdatePartnerBasicRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c)
	}
	out, err := h.uc.UpdateBasic(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateGST godoc
// @Summary      Update partner GST block
// @Tags         partners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "partner id"
// @Success      200  {object}  dto.PartnerResponse
// @Router       /api/v1/partners/{id}/gst [put]
func (h *PartnerHandler) UpdateGST(c *fiber.Ctx) error {
	var in dto.UpdatePartnerGSTRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c)
	}
	out, err := h.uc.UpdateGST(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateFirm godoc
// @Summary      Update partner firm/KYC block
// @Tags         partners
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "partner id"
// @Success      200  {object}  dto.PartnerResponse
// @Router       /api/v1/partners/{id}/firm [put]
func (h *PartnerHandler) UpdateFirm(c *fiber.Ctx) error {
	var in dto.UpdatePartnerFirmRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c)
	}
	var err error
	if in.PANImagePath, err = saveUpload(c, "panImage"); err != nil {
		return writeError(c, err)
	}
	if in.AadharFrontImagePath, err = saveUpload(c, "aadharFrontImage"); err != nil {
		return writeError(c, err)
	}
	if in.AadharBackImagePath, err = saveUpload(c, "aadharBackImage"); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateFirm(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateBank godoc
// @Summary      Update partner bank block
// @Tags         partners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "partner id"
// @Success      200  {object}  dto.PartnerResponse
// @Router       /api/v1/partners/{id}/bank [put]
func (h *PartnerHandler) UpdateBank(c *fiber.Ctx) error {
	var in dto.UpdatePartnerBankRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c)
	}
	out, err := h.uc.UpdateBank(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdatePartners godoc
// @Summary      Replace the firm's co-partner array
// @Tags         partners
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "partner id"
// @Success      200  {object}  dto.PartnerResponse
// @Router       /api/v1/partners/{id}/partners [put]
func (h *PartnerHandler) UpdatePartners(c *fiber.Ctx) error {
	var in dto.UpdatePartnerPartnersRequest
	partners, err := parseFirmPartners(c)
	if err != nil {
		return badRequest(c)
	}
	if partners == nil {
		// JSON body without multipart.
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c)
		}
	} else {
		in.Partners = partners
	}
	out, err := h.uc.UpdatePartners(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Soft-delete a partner
// @Tags         partners
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "partner id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/partners/{id} [delete]
func (h *PartnerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "partner deleted"})
}
