package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/application/usecase"
)

// AdminHandler staff admin account endpoints.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler builds the admin handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Create godoc
// @Summary      Create a staff admin
// @Tags         admins
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.AdminResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/admins [post]
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c)
	}
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email, password and phone are required"})
	}
	var err error
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
// @Summary      Get one admin
// @Tags         admins
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "admin id"
// @Success      200  {object}  dto.AdminResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/admins/{id} [get]
func (h *AdminHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List admins
// @Tags         admins
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AdminListResponse
// @Router       /api/v1/admins [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	var (
		out *dto.AdminListResponse
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
// @Summary      Update an admin
// @Tags         admins
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "admin id"
// @Success      200  {object}  dto.AdminResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/admins/{id} [put]
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c)
	}
	var err error
	if in.AvatarPath, err = saveUpload(c, "avatar"); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Soft-delete an admin
// @Tags         admins
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "admin id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/admins/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "admin deleted"})
}
