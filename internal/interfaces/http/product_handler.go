package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rahulxkr/storekart-api/internal/application/dto"
	"github.com/rahulxkr/storekart-api/internal/application/usecase"
)

// ProductHandler product catalog endpoints. Created products are owned by
// the authenticated account.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler builds the product handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Create a product
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c)
	}
	var err error
	if in.ImagePath, err = saveUpload(c, "image"); err != nil {
		return writeError(c, err)
	}
	if in.GalleryImagePaths, err = saveUploads(c, "galleryImages"); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetAdminID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get one product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "product id"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	var (
		out *dto.ProductListResponse
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

// ListMine godoc
// @Summary      List the caller's products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/v1/products/mine [get]
func (h *ProductHandler) ListMine(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListByAdmin(c.UserContext(), GetAdminID(c), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update a product
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "product id"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
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
// @Summary      Soft-delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "product id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "product deleted"})
}
