package legacy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/warehousing/fulfilment-api/internal/application/usecase"
	"github.com/warehousing/fulfilment-api/internal/domain/entity"
)

var _ usecase.LegacyStoreGateway = (*StoreGateway)(nil)

// StoreGateway pushes committed store changes to the downstream legacy store
// manager over HTTP. Callers invoke it only after a durable commit; each call
// carries a fresh event id so the legacy side can deduplicate retries.
type StoreGateway struct {
	baseURL string
	client  *http.Client
}

// NewStoreGateway builds the gateway for the legacy endpoint.
func NewStoreGateway(baseURL string, timeout time.Duration) *StoreGateway {
	return &StoreGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type storePayload struct {
	ID                      int64  `json:"id"`
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

// CreateStoreOnLegacySystem registers a newly created store downstream.
func (g *StoreGateway) CreateStoreOnLegacySystem(ctx context.Context, store *entity.Store) error {
	return g.send(ctx, http.MethodPost, g.baseURL+"/legacy/store", store)
}

// UpdateStoreOnLegacySystem propagates an updated store downstream.
func (g *StoreGateway) UpdateStoreOnLegacySystem(ctx context.Context, store *entity.Store) error {
	return g.send(ctx, http.MethodPut, fmt.Sprintf("%s/legacy/store/%d", g.baseURL, store.ID), store)
}

func (g *StoreGateway) send(ctx context.Context, method, url string, store *entity.Store) error {
	body, err := json.Marshal(storePayload{
		ID:                      store.ID,
		Name:                    store.Name,
		QuantityProductsInStock: store.QuantityProductsInStock,
	})
	if err != nil {
		return fmt.Errorf("marshal store payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build legacy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-ID", uuid.New().String())

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("call legacy store manager: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("legacy store manager returned %d", resp.StatusCode)
	}
	return nil
}
