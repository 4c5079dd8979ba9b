package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/application/usecase"
)

// StoreCategoryHandler store category endpoints.
type StoreCategoryHandler struct {
	uc *usecase.StoreCategoryUseCase
}

// NewStoreCategoryHandler builds the store category handler.
func NewStoreCategoryHandler(uc *usecase.StoreCategoryUseCase) *StoreCategoryHandler {
	return &StoreCategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Create a store category
// @Tags         store-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateStoreCategoryRequest  true  "title, status"
// @Success      201   {object}  dto.StoreCategoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/store-categories [post]
func (h *StoreCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetAdminID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get one store category
// @Tags         store-categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "store category id"
// @Success      200  {object}  dto.StoreCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/store-categories/{id} [get]
func (h *StoreCategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List store categories
// @Tags         store-categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.StoreCategoryListResponse
// @Router       /api/v1/store-categories [get]
func (h *StoreCategoryHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	var (
		out *dto.StoreCategoryListResponse
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
// @Summary      Update a store category
// @Tags         store-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "store category id"
// @Success      200  {object}  dto.StoreCategoryResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/store-categories/{id} [put]
func (h *StoreCategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStoreCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetAdminID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Soft-delete a store category
// @Tags         store-categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "store category id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/store-categories/{id} [delete]
func (h *StoreCategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "store category deleted"})
}
