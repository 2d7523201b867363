package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/database"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") +
		"?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderProduct{},
	))
	return db
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// seedOrder creates a customer and an empty order for tests that exercise
// line items.
func seedOrder(t *testing.T, db *gorm.DB) models.Order {
	t.Helper()

	c, err := NewCustomerRepository(db).Create(context.Background(), "Alice")
	require.NoError(t, err)

	o, err := NewOrderRepository(db).Create(context.Background(), c.ID, decimal.Zero)
	require.NoError(t, err)
	return o
}
