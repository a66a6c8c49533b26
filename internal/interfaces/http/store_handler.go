package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/warehousing/fulfilment-api/internal/application/dto"
	"github.com/warehousing/fulfilment-api/internal/application/fulfilment"
	"github.com/warehousing/fulfilment-api/internal/application/usecase"
	"github.com/warehousing/fulfilment-api/internal/domain"
	"github.com/warehousing/fulfilment-api/internal/infrastructure/metrics"
)

// StoreHandler handles HTTP requests for stores and their fulfilment links.
type StoreHandler struct {
	uc  *usecase.StoreUseCase
	ful *fulfilment.UseCase
}

// NewStoreHandler builds the handler.
func NewStoreHandler(uc *usecase.StoreUseCase, ful *fulfilment.UseCase) *StoreHandler {
	return &StoreHandler{uc: uc, ful: ful}
}

// List godoc
// @Summary      List stores
// @Tags         store
// @Produce      json
// @Success      200  {array}  dto.StoreResponse
// @Router       /store [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get a store by id
// @Tags         store
// @Produce      json
// @Param        id   path  int  true  "Store id"
// @Success      200  {object}  dto.StoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /store/{id} [get]
func (h *StoreHandler) Get(c *fiber.Ctx) error {
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
// @Summary      Create a store
// @Tags         store
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "Store data"
// @Success      201   {object}  dto.StoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /store [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
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
// @Summary      Replace a store
// @Tags         store
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "Store id"
// @Param        body  body  dto.UpdateStoreRequest  true  "Store data"
// @Success      200   {object}  dto.StoreResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /store/{id} [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Partially update a store
// @Tags         store
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "Store id"
// @Param        body  body  dto.PatchStoreRequest  true  "Fields to change"
// @Success      200   {object}  dto.StoreResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /store/{id} [patch]
func (h *StoreHandler) Patch(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.PatchStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Patch(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a store
// @Tags         store
// @Param        id   path  int  true  "Store id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /store/{id} [delete]
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Associate a warehouse with a store
// @Tags         store
// @Param        id           path  int  true  "Store id"
// @Param        warehouseId  path  int  true  "Warehouse id"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /store/{id}/fulfilment/{warehouseId} [post]
func (h *StoreHandler) Associate(c *fiber.Ctx) error {
	storeID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	warehouseID, err := parseID(c, "warehouseId")
	if err != nil {
		return respondError(c, err)
	}
	err = h.ful.AssociateStoreWithWarehouse(c.Context(), storeID, warehouseID)
	metrics.Associations.WithLabelValues("store_warehouse", outcomeOf(err)).Inc()
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseID reads a numeric path parameter.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, domain.NewValidation(domain.KindInvalidInput,
			"path parameter '%s' must be numeric", name)
	}
	return id, nil
}
