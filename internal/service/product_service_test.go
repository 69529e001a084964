package service

import (
	"testing"

	"go-storepos/internal/model"
	"go-storepos/internal/ws"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newAdjustFixture(products ...model.Product) (*fakeProductRepo, *fakeInventoryRepo, ProductService) {
	productRepo := &fakeProductRepo{products: products}
	invRepo := &fakeInventoryRepo{products: productRepo}
	hub := ws.NewHub()
	go hub.Run()
	return productRepo, invRepo, NewProductService(productRepo, &fakeCategoryRepo{}, invRepo, hub)
}

func Test_AddQuantity_CounterAndLedgerMoveTogether(t *testing.T) {
	product := model.Product{
		BaseModel:   model.BaseModel{ID: uuid.New()},
		Name:        "Engine Oil",
		Description: "10W-40",
		Price:       "250",
		Quantity:    10,
	}
	_, invRepo, svc := newAdjustFixture(product)

	updated, err := svc.AddQuantity(&AdjustQuantityRequest{
		ProductID: product.ID.String(),
		IsPlus:    true,
		Quantity:  5,
	})
	assert.NoError(t, err)
	assert.Equal(t, 15, updated.Quantity)
	assert.Len(t, invRepo.entries, 1)
	assert.Equal(t, product.ID, invRepo.entries[0].ProductID)
	assert.True(t, invRepo.entries[0].IsPlus)
	assert.Equal(t, 5, invRepo.entries[0].Amount)

	updated, err = svc.AddQuantity(&AdjustQuantityRequest{
		ProductID: product.ID.String(),
		IsPlus:    false,
		Quantity:  3,
	})
	assert.NoError(t, err)
	assert.Equal(t, 12, updated.Quantity)
	assert.Len(t, invRepo.entries, 2)
	assert.False(t, invRepo.entries[1].IsPlus)
	assert.Equal(t, 3, invRepo.entries[1].Amount)
}

func Test_AddQuantity_UnknownProduct(t *testing.T) {
	_, invRepo, svc := newAdjustFixture()

	_, err := svc.AddQuantity(&AdjustQuantityRequest{
		ProductID: uuid.NewString(),
		IsPlus:    true,
		Quantity:  5,
	})

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Empty(t, invRepo.entries)
}

func Test_AddQuantity_ValidatesInput(t *testing.T) {
	_, invRepo, svc := newAdjustFixture()

	tests := []struct {
		name string
		req  *AdjustQuantityRequest
	}{
		{
			name: "malformed product id",
			req:  &AdjustQuantityRequest{ProductID: "not-a-uuid", IsPlus: true, Quantity: 5},
		},
		{
			name: "zero quantity",
			req:  &AdjustQuantityRequest{ProductID: uuid.NewString(), IsPlus: true},
		},
		{
			name: "negative quantity",
			req:  &AdjustQuantityRequest{ProductID: uuid.NewString(), IsPlus: false, Quantity: -2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddQuantity(tc.req)
			assert.Error(t, err)
			assert.Empty(t, invRepo.entries)
		})
	}
}
