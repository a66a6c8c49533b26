package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/warehousing/fulfilment-api/internal/application/fulfilment"
	"github.com/warehousing/fulfilment-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	WarehouseUC  *usecase.WarehouseUseCase
	StoreUC      *usecase.StoreUseCase
	ProductUC    *usecase.ProductUseCase
	FulfilmentUC *fulfilment.UseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	warehouses := app.Group("/warehouse")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.Get)
	warehouses.Delete("/:id", warehouseHandler.Archive)
	warehouses.Post("/:businessUnitCode/replacement", warehouseHandler.Replace)

	stores := app.Group("/store")
	storeHandler := NewStoreHandler(deps.StoreUC, deps.FulfilmentUC)
	stores.Get("/", storeHandler.List)
	stores.Post("/", storeHandler.Create)
	stores.Get("/:id", storeHandler.Get)
	stores.Put("/:id", storeHandler.Update)
	stores.Patch("/:id", storeHandler.Patch)
	stores.Delete("/:id", storeHandler.Delete)
	stores.Post("/:id/fulfilment/:warehouseId", storeHandler.Associate)

	products := app.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC, deps.FulfilmentUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/fulfilment/:warehouseId", productHandler.Associate)
}
