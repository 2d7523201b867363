package models

import "github.com/shopspring/decimal"

// Order is a row in the "orders" table. Subtotal is a denormalized running
// sum of the attached products' prices, maintained by the order repository
// whenever a line item is added or removed; it is never recomputed on read.
type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CustomerID uint            `gorm:"not null;index" json:"-"`
	Customer   Customer        `gorm:"constraint:OnDelete:RESTRICT" json:"customer"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"subtotal"`
}

// OrderProduct is a line item: one row per product attached to an order.
// The composite primary key rejects attaching the same product twice.
//
// The two foreign keys carry different policies on purpose: deleting an
// order takes its line items with it, while deleting a product that still
// appears on any order is refused so order history is never silently erased.
type OrderProduct struct {
	OrderID   uint    `gorm:"primaryKey;autoIncrement:false"`
	ProductID uint    `gorm:"primaryKey;autoIncrement:false"`
	Order     Order   `gorm:"constraint:OnDelete:CASCADE"`
	Product   Product `gorm:"constraint:OnDelete:RESTRICT"`
}

func (OrderProduct) TableName() string { return "order_products" }
