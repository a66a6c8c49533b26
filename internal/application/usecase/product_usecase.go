package usecase

import (
	"context"

	"github.com/warehousing/fulfilment-api/internal/application/dto"
	"github.com/warehousing/fulfilment-api/internal/domain"
	"github.com/warehousing/fulfilment-api/internal/domain/entity"
	"github.com/warehousing/fulfilment-api/internal/domain/repository"
)

// ProductUseCase CRUD for products.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// List returns all products sorted by name.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID returns one product.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound("Product with id of %d does not exist.", id)
	}
	return toProductResponse(product), nil
}

// Create persists a new product.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update applies only the fields present in the request.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound("Product with id of %d does not exist.", id)
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete removes a product.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.NewNotFound("Product with id of %d does not exist.", id)
	}
	return uc.products.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
	}
}
