package controllers

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/resources"
	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

type OrderController struct {
	repo *repositories.OrderRepository
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{repo: repositories.NewOrderRepository(db)}
}

// orderInput accepts the customer either nested, mirroring the response
// shape, or as a flat customer_id.
type orderInput struct {
	CustomerID uint `json:"customer_id"`
	Customer   *struct {
		ID uint `json:"id"`
	} `json:"customer"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (in orderInput) customerID() uint {
	if in.Customer != nil && in.Customer.ID != 0 {
		return in.Customer.ID
	}
	return in.CustomerID
}

func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	orders, err := c.repo.All(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resources.Orders(orders))
}

func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "orderID")
	if !ok {
		response.BadRequest(w, "invalid order id")
		return
	}

	order, err := c.repo.Find(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resources.Order(order))
}

func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	var in orderInput
	if err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	order, err := c.repo.Create(r.Context(), in.customerID(), in.Subtotal)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, resources.Order(order))
}

func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "orderID")
	if !ok {
		response.BadRequest(w, "invalid order id")
		return
	}

	var in orderInput
	if err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	order, err := c.repo.Update(r.Context(), id, in.customerID(), in.Subtotal)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resources.Order(order))
}

func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "orderID")
	if !ok {
		response.BadRequest(w, "invalid order id")
		return
	}

	if err := c.repo.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AttachProduct adds a product to an order. The product id comes from the
// productID query parameter, or from a JSON body {"id": N} as a fallback.
func (c *OrderController) AttachProduct(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "orderID")
	if !ok {
		response.BadRequest(w, "invalid order id")
		return
	}

	productID, ok := attachProductID(r)
	if !ok {
		response.BadRequest(w, "missing or invalid product id")
		return
	}

	order, err := c.repo.AttachProduct(r.Context(), orderID, productID)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resources.Order(order))
}

// DetachProduct removes a product from an order.
func (c *OrderController) DetachProduct(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "orderID")
	if !ok {
		response.BadRequest(w, "invalid order id")
		return
	}
	productID, ok := pathID(r, "productID")
	if !ok {
		response.BadRequest(w, "invalid product id")
		return
	}

	order, err := c.repo.DetachProduct(r.Context(), orderID, productID)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resources.Order(order))
}

func attachProductID(r *http.Request) (uint, bool) {
	if raw := r.URL.Query().Get("productID"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return 0, false
		}
		return uint(id), true
	}

	var body struct {
		ID uint `json:"id"`
	}
	if err := bind.JSON(r, &body); err != nil || body.ID == 0 {
		return 0, false
	}
	return body.ID, true
}
