package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/warehousing/fulfilment-api/internal/application/dto"
	"github.com/warehousing/fulfilment-api/internal/application/fulfilment"
	"github.com/warehousing/fulfilment-api/internal/application/usecase"
	"github.com/warehousing/fulfilment-api/internal/infrastructure/metrics"
)

// ProductHandler handles HTTP requests for products and their fulfilment links.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	ful *fulfilment.UseCase
}

// NewProductHandler builds the handler.
func NewProductHandler(uc *usecase.ProductUseCase, ful *fulfilment.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc, ful: ful}
}

// List godoc
// @Summary      List products
// @Tags         product
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /product [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get a product by id
// @Tags         product
// @Produce      json
// @Param        id   path  int  true  "Product id"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /product/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Create a product
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Product data"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /product [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Update a product
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "Product id"
// @Param        body  body  dto.UpdateProductRequest  true  "Fields to change"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /product/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a product
// @Tags         product
// @Param        id   path  int  true  "Product id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /product/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Associate godoc
// @Summary      Associate a warehouse with a product
// @Tags         product
// @Param        id           path  int  true  "Product id"
// @Param        warehouseId  path  int  true  "Warehouse id"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /product/{id}/fulfilment/{warehouseId} [post]
func (h *ProductHandler) Associate(c *fiber.Ctx) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	warehouseID, err := parseID(c, "warehouseId")
	if err != nil {
		return respondError(c, err)
	}
	err = h.ful.AssociateProductWithWarehouse(c.Context(), productID, warehouseID)
	metrics.Associations.WithLabelValues("product_warehouse", outcomeOf(err)).Inc()
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
