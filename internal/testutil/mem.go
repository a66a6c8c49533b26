// Package testutil provides in-memory implementations of the persistence ports
// so use cases can be exercised without a database.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/warehousing/fulfilment-api/internal/domain"
	"github.com/warehousing/fulfilment-api/internal/domain/entity"
	"github.com/warehousing/fulfilment-api/internal/domain/repository"
)

// pair identifies one association row.
type pair struct {
	left, right int64
}

// MemWarehouseRepo in-memory WarehouseRepository. It enforces active business
// unit code uniqueness the way the database's partial unique index does.
type MemWarehouseRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]entity.Warehouse
}

var _ repository.WarehouseRepository = (*MemWarehouseRepo)(nil)

// NewMemWarehouseRepo builds an empty repository.
func NewMemWarehouseRepo() *MemWarehouseRepo {
	return &MemWarehouseRepo{items: make(map[int64]entity.Warehouse)}
}

func (r *MemWarehouseRepo) ListActive(ctx context.Context) ([]*entity.Warehouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Warehouse
	for _, w := range r.items {
		if w.Active() {
			c := w
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemWarehouseRepo) ListActiveByLocation(ctx context.Context, location string) ([]*entity.Warehouse, error) {
	all, _ := r.ListActive(ctx)
	var out []*entity.Warehouse
	for _, w := range all {
		if w.Location == location {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *MemWarehouseRepo) FindByBusinessUnitCode(ctx context.Context, code string) (*entity.Warehouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.items {
		if w.BusinessUnitCode == code && w.Active() {
			c := w
			return &c, nil
		}
	}
	return nil, nil
}

func (r *MemWarehouseRepo) FindByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	c := w
	return &c, nil
}

func (r *MemWarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if warehouse.ArchivedAt == nil {
		for _, w := range r.items {
			if w.BusinessUnitCode == warehouse.BusinessUnitCode && w.Active() {
				return domain.NewValidation(domain.KindDuplicateBusinessUnitCode,
					"A warehouse with business unit code '%s' already exists.", warehouse.BusinessUnitCode)
			}
		}
	}
	r.nextID++
	warehouse.ID = r.nextID
	r.items[warehouse.ID] = *warehouse
	return nil
}

func (r *MemWarehouseRepo) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[warehouse.ID]; !ok {
		return domain.NewNotFound("Warehouse not found with id: %d", warehouse.ID)
	}
	r.items[warehouse.ID] = *warehouse
	return nil
}

func (r *MemWarehouseRepo) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

// Seed inserts a warehouse bypassing uniqueness checks. Returns the assigned id.
func (r *MemWarehouseRepo) Seed(w entity.Warehouse) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.ID == 0 {
		r.nextID++
		w.ID = r.nextID
	} else if w.ID > r.nextID {
		r.nextID = w.ID
	}
	r.items[w.ID] = w
	return w.ID
}

func (r *MemWarehouseRepo) snapshot() map[int64]entity.Warehouse {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := make(map[int64]entity.Warehouse, len(r.items))
	for k, v := range r.items {
		c[k] = v
	}
	return c
}

func (r *MemWarehouseRepo) restore(items map[int64]entity.Warehouse) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = items
}

// MemStoreRepo in-memory StoreRepository including store–warehouse associations.
type MemStoreRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]entity.Store
	links  map[pair]struct{} // (storeID, warehouseID)
}

var _ repository.StoreRepository = (*MemStoreRepo)(nil)

// NewMemStoreRepo builds an empty repository.
func NewMemStoreRepo() *MemStoreRepo {
	return &MemStoreRepo{
		items: make(map[int64]entity.Store),
		links: make(map[pair]struct{}),
	}
}

func (r *MemStoreRepo) FindByID(ctx context.Context, id int64) (*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	c := s
	return &c, nil
}

func (r *MemStoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Store, 0, len(r.items))
	for _, s := range r.items {
		c := s
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemStoreRepo) Create(ctx context.Context, store *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	store.ID = r.nextID
	r.items[store.ID] = *store
	return nil
}

func (r *MemStoreRepo) Update(ctx context.Context, store *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[store.ID]; !ok {
		return domain.NewNotFound("Store with id of %d does not exist.", store.ID)
	}
	r.items[store.ID] = *store
	return nil
}

func (r *MemStoreRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	for p := range r.links {
		if p.left == id {
			delete(r.links, p)
		}
	}
	return nil
}

func (r *MemStoreRepo) CountWarehouses(ctx context.Context, storeID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for p := range r.links {
		if p.left == storeID {
			n++
		}
	}
	return n, nil
}

func (r *MemStoreRepo) HasFulfilmentUnit(ctx context.Context, storeID, warehouseID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.links[pair{storeID, warehouseID}]
	return ok, nil
}

func (r *MemStoreRepo) AddFulfilmentUnit(ctx context.Context, storeID, warehouseID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links[pair{storeID, warehouseID}] = struct{}{}
	return nil
}

func (r *MemStoreRepo) OverlapByStore(ctx context.Context, warehouseIDs []int64) (map[int64]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := make(map[int64]struct{}, len(warehouseIDs))
	for _, id := range warehouseIDs {
		set[id] = struct{}{}
	}
	out := make(map[int64]int)
	for p := range r.links {
		if _, ok := set[p.right]; ok {
			out[p.left]++
		}
	}
	return out, nil
}

type storeState struct {
	items map[int64]entity.Store
	links map[pair]struct{}
}

func (r *MemStoreRepo) snapshot() storeState {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := storeState{
		items: make(map[int64]entity.Store, len(r.items)),
		links: make(map[pair]struct{}, len(r.links)),
	}
	for k, v := range r.items {
		s.items[k] = v
	}
	for p := range r.links {
		s.links[p] = struct{}{}
	}
	return s
}

func (r *MemStoreRepo) restore(s storeState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = s.items
	r.links = s.links
}

// MemProductRepo in-memory ProductRepository including product–warehouse associations.
type MemProductRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]entity.Product
	links  map[pair]struct{} // (productID, warehouseID)
}

var _ repository.ProductRepository = (*MemProductRepo)(nil)

// NewMemProductRepo builds an empty repository.
func NewMemProductRepo() *MemProductRepo {
	return &MemProductRepo{
		items: make(map[int64]entity.Product),
		links: make(map[pair]struct{}),
	}
}

func (r *MemProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	c := p
	return &c, nil
}

func (r *MemProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		c := p
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	product.ID = r.nextID
	r.items[product.ID] = *product
	return nil
}

func (r *MemProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[product.ID]; !ok {
		return domain.NewNotFound("Product with id of %d does not exist.", product.ID)
	}
	r.items[product.ID] = *product
	return nil
}

func (r *MemProductRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	for p := range r.links {
		if p.left == id {
			delete(r.links, p)
		}
	}
	return nil
}

func (r *MemProductRepo) CountByWarehouseID(ctx context.Context, warehouseID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for p := range r.links {
		if p.right == warehouseID {
			n++
		}
	}
	return n, nil
}

func (r *MemProductRepo) WarehouseIDs(ctx context.Context, productID int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []int64
	for p := range r.links {
		if p.left == productID {
			out = append(out, p.right)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r *MemProductRepo) AddFulfilmentUnit(ctx context.Context, productID, warehouseID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links[pair{productID, warehouseID}] = struct{}{}
	return nil
}

type productState struct {
	items map[int64]entity.Product
	links map[pair]struct{}
}

func (r *MemProductRepo) snapshot() productState {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := productState{
		items: make(map[int64]entity.Product, len(r.items)),
		links: make(map[pair]struct{}, len(r.links)),
	}
	for k, v := range r.items {
		s.items[k] = v
	}
	for p := range r.links {
		s.links[p] = struct{}{}
	}
	return s
}

func (r *MemProductRepo) restore(s productState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = s.items
	r.links = s.links
}
