package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/application/usecase"
)

// BannerHandler promotional banner endpoints.
type BannerHandler struct {
	uc *usecase.BannerUseCase
}

// NewBannerHandler builds the banner handler.
func NewBannerHandler(uc *usecase.BannerUseCase) *BannerHandler {
	return &BannerHandler{uc: uc}
}

// Create godoc
// @Summary      Create a banner
// @Tags         banners
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.BannerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/banners [post]
func (h *BannerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBannerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c)
	}
	var err error
	if in.ImagePath, err = saveUpload(c, "image"); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get one banner
// @Tags         banners
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "banner id"
// @Success      200  {object}  dto.BannerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/banners/{id} [get]
func (h *BannerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List banners
// @Tags         banners
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.BannerListResponse
// @Router       /api/v1/banners [get]
func (h *BannerHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	var (
		out *dto.BannerListResponse
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

// Update godoc
// @Summary      Update a banner
// @Tags         banners
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "banner id"
// @Success      200  {object}  dto.BannerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/banners/{id} [put]
func (h *BannerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBannerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c)
	}
	var err error
	if in.ImagePath, err = saveUpload(c, "image"); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Soft-delete a banner
// @Tags         banners
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "banner id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/banners/{id} [delete]
func (h *BannerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "banner deleted"})
}
