package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/pkg/storeerr"
)

func TestProductCreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Widget", mustDecimal(t, "9.99"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "9.99", created.Price.StringFixed(2))

	found, err := repo.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", found.Name)
	assert.True(t, created.Price.Equal(found.Price))
}

func TestProductValidation(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, "", mustDecimal(t, "1.00"))
	assert.True(t, storeerr.IsValidation(err))

	_, err = repo.Create(ctx, "Widget", mustDecimal(t, "-0.01"))
	assert.True(t, storeerr.IsValidation(err))
}

func TestProductPriceRounded(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)

	created, err := repo.Create(context.Background(), "Widget", mustDecimal(t, "9.999"))
	require.NoError(t, err)
	assert.Equal(t, "10.00", created.Price.StringFixed(2))
}

func TestProductUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Widget", mustDecimal(t, "9.99"))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, "Deluxe Widget", mustDecimal(t, "19.99"))
	require.NoError(t, err)
	assert.Equal(t, "Deluxe Widget", updated.Name)
	assert.Equal(t, "19.99", updated.Price.StringFixed(2))

	_, err = repo.Update(ctx, 999, "Ghost", mustDecimal(t, "1.00"))
	assert.ErrorIs(t, err, storeerr.ErrNotFound)
}

func TestProductDeleteRestrictedWhileOnOrder(t *testing.T) {
	db := openTestDB(t)
	products := NewProductRepository(db)
	orders := NewOrderRepository(db)
	ctx := context.Background()

	order := seedOrder(t, db)
	p, err := products.Create(ctx, "Widget", mustDecimal(t, "9.99"))
	require.NoError(t, err)

	_, err = orders.AttachProduct(ctx, order.ID, p.ID)
	require.NoError(t, err)

	err = products.Delete(ctx, p.ID)
	assert.ErrorIs(t, err, storeerr.ErrForeignKey)

	// Deleting the order removes the line item, which unblocks the product.
	require.NoError(t, orders.Delete(ctx, order.ID))
	assert.NoError(t, products.Delete(ctx, p.ID))
}
