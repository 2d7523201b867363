package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/migration"
)

type CreateOrderProductsTable struct{}

func init() {
	migration.Register("20260301000300_create_order_products_table", &CreateOrderProductsTable{})
}

func (*CreateOrderProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.OrderProduct{})
}

func (*CreateOrderProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.OrderProduct{})
}
