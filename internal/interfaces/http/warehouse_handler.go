package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/warehousing/fulfilment-api/internal/application/dto"
	"github.com/warehousing/fulfilment-api/internal/application/usecase"
	"github.com/warehousing/fulfilment-api/internal/infrastructure/metrics"
)

// WarehouseHandler handles HTTP requests for the warehouse lifecycle.
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler builds the handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// List godoc
// @Summary      List active warehouses
// @Tags         warehouse
// @Produce      json
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /warehouse [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get a warehouse by id or business unit code
// @Tags         warehouse
// @Produce      json
// @Param        id   path  string  true  "Numeric id or business unit code"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /warehouse/{id} [get]
func (h *WarehouseHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByIDOrCode(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Create a new warehouse
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "Warehouse data"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /warehouse [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.BusinessUnitCode == "" || in.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "businessUnitCode and location are required"})
	}

	out, err := h.uc.Create(c.Context(), in)
	metrics.WarehouseOperations.WithLabelValues("create", outcomeOf(err)).Inc()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Archive godoc
// @Summary      Archive a warehouse by id or business unit code
// @Tags         warehouse
// @Param        id   path  string  true  "Numeric id or business unit code"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /warehouse/{id} [delete]
func (h *WarehouseHandler) Archive(c *fiber.Ctx) error {
	err := h.uc.Archive(c.Context(), c.Params("id"))
	metrics.WarehouseOperations.WithLabelValues("archive", outcomeOf(err)).Inc()
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Replace godoc
// @Summary      Replace the current active warehouse of a business unit
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        businessUnitCode  path  string                       true  "Business unit code"
// @Param        body              body  dto.ReplaceWarehouseRequest  true  "New warehouse data"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /warehouse/{businessUnitCode}/replacement [post]
func (h *WarehouseHandler) Replace(c *fiber.Ctx) error {
	var in dto.ReplaceWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location is required"})
	}

	out, err := h.uc.Replace(c.Context(), c.Params("businessUnitCode"), in)
	metrics.WarehouseOperations.WithLabelValues("replace", outcomeOf(err)).Inc()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
