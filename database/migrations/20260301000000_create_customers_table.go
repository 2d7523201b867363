package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/migration"
)

type CreateCustomersTable struct{}

func init() {
	migration.Register("20260301000000_create_customers_table", &CreateCustomersTable{})
}

func (*CreateCustomersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Customer{})
}

func (*CreateCustomersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Customer{})
}
