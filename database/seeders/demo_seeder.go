package seeders

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/storefront/app/models"
)

// DemoSeeder creates a small storefront: two customers, three products and
// one order with a line item, enough to exercise every route by hand.
type DemoSeeder struct{}

func init() {
	Register("demo", &DemoSeeder{})
}

func (*DemoSeeder) Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		alice := models.Customer{Name: "Alice"}
		bob := models.Customer{Name: "Bob"}
		if err := tx.Create(&alice).Error; err != nil {
			return err
		}
		if err := tx.Create(&bob).Error; err != nil {
			return err
		}

		widget := models.Product{Name: "Widget", Price: decimal.RequireFromString("9.99")}
		gadget := models.Product{Name: "Gadget", Price: decimal.RequireFromString("14.50")}
		sticker := models.Product{Name: "Sticker", Price: decimal.RequireFromString("0.10")}
		for _, p := range []*models.Product{&widget, &gadget, &sticker} {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}

		order := models.Order{CustomerID: alice.ID, Subtotal: widget.Price}
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}

		item := models.OrderProduct{OrderID: order.ID, ProductID: widget.ID}
		return tx.Omit(clause.Associations).Create(&item).Error
	})
}
