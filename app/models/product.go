package models

import "github.com/shopspring/decimal"

// Product is a row in the "products" table. Price is a fixed-point decimal
// with two fractional digits; float64 is never used for money.
type Product struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"size:255;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
}
