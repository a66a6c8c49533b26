package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehousing/fulfilment-api/internal/application/dto"
	"github.com/warehousing/fulfilment-api/internal/application/fulfilment"
	"github.com/warehousing/fulfilment-api/internal/application/usecase"
	"github.com/warehousing/fulfilment-api/internal/domain/warehouse"
	"github.com/warehousing/fulfilment-api/internal/infrastructure/cache"
	"github.com/warehousing/fulfilment-api/internal/infrastructure/location"
	apphttp "github.com/warehousing/fulfilment-api/internal/interfaces/http"
	"github.com/warehousing/fulfilment-api/internal/testutil"
)

// buildTestApp assembles the full API over the in-memory repositories.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	warehouses := testutil.NewMemWarehouseRepo()
	stores := testutil.NewMemStoreRepo()
	products := testutil.NewMemProductRepo()
	tx := testutil.NewTxRunner(warehouses, stores, products)
	validator := warehouse.NewValidator(location.NewResolver())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		WarehouseUC:  usecase.NewWarehouseUseCase(warehouses, tx, validator, cache.Noop{}, time.Minute),
		StoreUC:      usecase.NewStoreUseCase(stores, nil, nil),
		ProductUC:    usecase.NewProductUseCase(products),
		FulfilmentUC: fulfilment.NewUseCase(tx),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decodeError(t *testing.T, raw []byte) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func createWarehouse(t *testing.T, app *fiber.App, code, loc string, capacity, stock int) dto.WarehouseResponse {
	t.Helper()
	resp, raw := doJSON(t, app, http.MethodPost, "/warehouse", map[string]any{
		"businessUnitCode": code,
		"location":         loc,
		"capacity":         capacity,
		"stock":            stock,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var out dto.WarehouseResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestWarehouseEndpoints_CreateAndGet(t *testing.T) {
	app := buildTestApp(t)

	created := createWarehouse(t, app, "MWH.001", "ZWOLLE-001", 40, 10)
	assert.NotZero(t, created.ID)

	resp, raw := doJSON(t, app, http.MethodGet, "/warehouse/MWH.001", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.WarehouseResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "ZWOLLE-001", got.Location)

	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/warehouse/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWarehouseEndpoints_DuplicateCode(t *testing.T) {
	app := buildTestApp(t)
	createWarehouse(t, app, "MWH.001", "ZWOLLE-001", 40, 10)

	resp, raw := doJSON(t, app, http.MethodPost, "/warehouse", map[string]any{
		"businessUnitCode": "MWH.001",
		"location":         "AMSTERDAM-001",
		"capacity":         10,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errResp := decodeError(t, raw)
	assert.Equal(t, "DUPLICATE_BUSINESS_UNIT_CODE", errResp.Code)
	assert.Equal(t, "A warehouse with business unit code 'MWH.001' already exists.", errResp.Message)
}

func TestWarehouseEndpoints_UnknownLocation(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/warehouse", map[string]any{
		"businessUnitCode": "MWH.001",
		"location":         "NOWHERE-001",
		"capacity":         10,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_LOCATION", decodeError(t, raw).Code)
}

func TestWarehouseEndpoints_GetUnknown(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/warehouse/MWH.404", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, raw).Code)
}

func TestWarehouseEndpoints_ArchiveThenList(t *testing.T) {
	app := buildTestApp(t)
	createWarehouse(t, app, "MWH.001", "ZWOLLE-001", 40, 10)
	createWarehouse(t, app, "MWH.002", "AMSTERDAM-001", 50, 5)

	resp, _ := doJSON(t, app, http.MethodDelete, "/warehouse/MWH.001", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw := doJSON(t, app, http.MethodGet, "/warehouse/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.WarehouseResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "MWH.002", list[0].BusinessUnitCode)

	// Archiving again reports NotFound.
	resp, _ = doJSON(t, app, http.MethodDelete, "/warehouse/MWH.001", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWarehouseEndpoints_Replacement(t *testing.T) {
	app := buildTestApp(t)
	created := createWarehouse(t, app, "MWH.001", "ZWOLLE-001", 40, 10)

	resp, raw := doJSON(t, app, http.MethodPost, "/warehouse/MWH.001/replacement", map[string]any{
		"location": "AMSTERDAM-001",
		"capacity": 50,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var replacement dto.WarehouseResponse
	require.NoError(t, json.Unmarshal(raw, &replacement))
	assert.Equal(t, "MWH.001", replacement.BusinessUnitCode)
	assert.Equal(t, 10, replacement.Stock)
	assert.NotEqual(t, created.ID, replacement.ID)

	// The archived predecessor is still reachable by id.
	resp, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/warehouse/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var old dto.WarehouseResponse
	require.NoError(t, json.Unmarshal(raw, &old))
	assert.NotNil(t, old.ArchivedAt)
}

func TestWarehouseEndpoints_ReplacementStockMismatch(t *testing.T) {
	app := buildTestApp(t)
	createWarehouse(t, app, "MWH.001", "ZWOLLE-001", 40, 10)

	resp, raw := doJSON(t, app, http.MethodPost, "/warehouse/MWH.001/replacement", map[string]any{
		"location": "AMSTERDAM-001",
		"capacity": 50,
		"stock":    11,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "STOCK_MISMATCH_ON_REPLACE", decodeError(t, raw).Code)
}

func TestStoreEndpoints_CRUD(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/store", map[string]any{
		"name":                    "TONSTAD",
		"quantityProductsInStock": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var store dto.StoreResponse
	require.NoError(t, json.Unmarshal(raw, &store))

	resp, raw = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/store/%d", store.ID), map[string]any{
		"quantityProductsInStock": 12,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var patched dto.StoreResponse
	require.NoError(t, json.Unmarshal(raw, &patched))
	assert.Equal(t, "TONSTAD", patched.Name)
	assert.Equal(t, 12, patched.QuantityProductsInStock)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/store/%d", store.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/store/%d", store.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("Store with id of %d does not exist.", store.ID), decodeError(t, raw).Message)
}

func TestStoreEndpoints_NonNumericID(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/store/abc", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, raw).Code)
}

func TestProductEndpoints_CRUD(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/product", map[string]any{
		"name":        "BILLY",
		"description": "Bookcase",
		"price":       49.99,
		"stock":       100,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &product))
	assert.Equal(t, "BILLY", product.Name)

	resp, raw = doJSON(t, app, http.MethodPut, fmt.Sprintf("/product/%d", product.ID), map[string]any{
		"stock": 80,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "BILLY", updated.Name)
	assert.Equal(t, 80, updated.Stock)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/product/%d", product.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestFulfilmentEndpoints_AssociateAndLimits(t *testing.T) {
	app := buildTestApp(t)

	wh := createWarehouse(t, app, "MWH.001", "AMSTERDAM-001", 100, 10)

	_, raw := doJSON(t, app, http.MethodPost, "/product", map[string]any{"name": "BILLY"})
	var product dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &product))

	_, raw = doJSON(t, app, http.MethodPost, "/store", map[string]any{"name": "TONSTAD"})
	var store dto.StoreResponse
	require.NoError(t, json.Unmarshal(raw, &store))

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/product/%d/fulfilment/%d", product.ID, wh.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/store/%d/fulfilment/%d", store.ID, wh.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Unknown warehouse on the association path is a 404.
	resp, raw = doJSON(t, app, http.MethodPost, fmt.Sprintf("/product/%d/fulfilment/404", product.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Warehouse not found with id: 404", decodeError(t, raw).Message)
}

func TestFulfilmentEndpoints_ArchivedWarehouseRejected(t *testing.T) {
	app := buildTestApp(t)

	wh := createWarehouse(t, app, "MWH.001", "AMSTERDAM-001", 100, 10)
	resp, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/warehouse/%d", wh.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, raw := doJSON(t, app, http.MethodPost, "/product", map[string]any{"name": "BILLY"})
	var product dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &product))

	resp, raw = doJSON(t, app, http.MethodPost, fmt.Sprintf("/product/%d/fulfilment/%d", product.ID, wh.ID), nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errResp := decodeError(t, raw)
	assert.Equal(t, "ARCHIVED_WAREHOUSE", errResp.Code)
	assert.Equal(t, "Cannot associate an archived warehouse.", errResp.Message)
}
