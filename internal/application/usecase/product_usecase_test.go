package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehousing/fulfilment-api/internal/application/dto"
	"github.com/warehousing/fulfilment-api/internal/application/usecase"
	"github.com/warehousing/fulfilment-api/internal/domain"
	"github.com/warehousing/fulfilment-api/internal/testutil"
)

func TestProductCreateAndGet(t *testing.T) {
	uc := usecase.NewProductUseCase(testutil.NewMemProductRepo())

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:        "BILLY",
		Description: "Bookcase",
		Price:       decimal.NewFromFloat(49.99),
		Stock:       100,
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)

	got, err := uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, "BILLY", got.Name)
	assert.True(t, got.Price.Equal(decimal.NewFromFloat(49.99)))
}

func TestProductUpdate_PartialFields(t *testing.T) {
	uc := usecase.NewProductUseCase(testutil.NewMemProductRepo())

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:  "POANG",
		Stock: 50,
	})
	require.NoError(t, err)

	stock := 30
	updated, err := uc.Update(context.Background(), out.ID, dto.UpdateProductRequest{
		Stock: &stock,
	})
	require.NoError(t, err)
	assert.Equal(t, "POANG", updated.Name)
	assert.Equal(t, 30, updated.Stock)
}

func TestProductGetByID_Unknown(t *testing.T) {
	uc := usecase.NewProductUseCase(testutil.NewMemProductRepo())

	_, err := uc.GetByID(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Product with id of 404 does not exist.")
}

func TestProductDelete(t *testing.T) {
	repo := testutil.NewMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "LACK"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), out.ID))

	stored, err := repo.FindByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	err = uc.Delete(context.Background(), out.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
