package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/pkg/storeerr"
)

func TestCustomerCreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Alice")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Alice", created.Name)

	found, err := repo.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestCustomerCreateEmptyName(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)

	_, err := repo.Create(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, storeerr.IsValidation(err))

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCustomerFindMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)

	_, err := repo.Find(context.Background(), 42)
	assert.ErrorIs(t, err, storeerr.ErrNotFound)
}

func TestCustomerAllOrdered(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		_, err := repo.Create(ctx, name)
		require.NoError(t, err)
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Alice", all[0].Name)
	assert.Equal(t, "Carol", all[2].Name)
	assert.Less(t, all[0].ID, all[1].ID)
}

func TestCustomerUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Alice")
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, "Alicia")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Alicia", updated.Name)

	_, err = repo.Update(ctx, 999, "Nobody")
	assert.ErrorIs(t, err, storeerr.ErrNotFound)
}

func TestCustomerDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Alice")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.Find(ctx, created.ID)
	assert.ErrorIs(t, err, storeerr.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), storeerr.ErrNotFound)
}

func TestCustomerDeleteBlockedByOrder(t *testing.T) {
	db := openTestDB(t)
	customers := NewCustomerRepository(db)
	orders := NewOrderRepository(db)
	ctx := context.Background()

	c, err := customers.Create(ctx, "Alice")
	require.NoError(t, err)

	o, err := orders.Create(ctx, c.ID, decimal.Zero)
	require.NoError(t, err)

	err = customers.Delete(ctx, c.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, storeerr.ErrForeignKey))

	require.NoError(t, orders.Delete(ctx, o.ID))
	assert.NoError(t, customers.Delete(ctx, c.ID))
}
