package fulfilment

import (
	"context"

	"github.com/warehousing/fulfilment-api/internal/domain/repository"
)

// TxRunner executes a function inside one database transaction, handing it
// repositories bound to that transaction. The association rules count existing
// rows before writing, so read and write must share the transaction.
type TxRunner interface {
	RunFulfilment(ctx context.Context, fn func(
		products repository.ProductRepository,
		stores repository.StoreRepository,
		warehouses repository.WarehouseRepository,
	) error) error
}
