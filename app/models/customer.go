package models

// Customer is a row in the "customers" table.
type Customer struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}
