// Package resources maps models to their wire representation. Money fields
// go out as strings with exactly two fractional digits so "9.99" stays
// "9.99" regardless of the driver behind the store.
package resources

import "github.com/shashiranjanraj/storefront/app/models"

type CustomerJSON struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProductJSON struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type CustomerRef struct {
	ID uint `json:"id"`
}

type OrderJSON struct {
	ID       uint        `json:"id"`
	Subtotal string      `json:"subtotal"`
	Customer CustomerRef `json:"customer"`
}

func Customer(c models.Customer) CustomerJSON {
	return CustomerJSON{ID: c.ID, Name: c.Name}
}

func Customers(cs []models.Customer) []CustomerJSON {
	out := make([]CustomerJSON, len(cs))
	for i, c := range cs {
		out[i] = Customer(c)
	}
	return out
}

func Product(p models.Product) ProductJSON {
	return ProductJSON{ID: p.ID, Name: p.Name, Price: p.Price.StringFixed(2)}
}

func Products(ps []models.Product) []ProductJSON {
	out := make([]ProductJSON, len(ps))
	for i, p := range ps {
		out[i] = Product(p)
	}
	return out
}

func Order(o models.Order) OrderJSON {
	return OrderJSON{
		ID:       o.ID,
		Subtotal: o.Subtotal.StringFixed(2),
		Customer: CustomerRef{ID: o.CustomerID},
	}
}

func Orders(os []models.Order) []OrderJSON {
	out := make([]OrderJSON, len(os))
	for i, o := range os {
		out[i] = Order(o)
	}
	return out
}
