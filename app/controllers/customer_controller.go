package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/resources"
	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

type CustomerController struct {
	repo *repositories.CustomerRepository
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{repo: repositories.NewCustomerRepository(db)}
}

type customerInput struct {
	Name string `json:"name"`
}

func (c *CustomerController) Index(w http.ResponseWriter, r *http.Request) {
	customers, err := c.repo.All(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resources.Customers(customers))
}

func (c *CustomerController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "customerID")
	if !ok {
		response.BadRequest(w, "invalid customer id")
		return
	}

	customer, err := c.repo.Find(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resources.Customer(customer))
}

func (c *CustomerController) Store(w http.ResponseWriter, r *http.Request) {
	var in customerInput
	if err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	customer, err := c.repo.Create(r.Context(), in.Name)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, resources.Customer(customer))
}

func (c *CustomerController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "customerID")
	if !ok {
		response.BadRequest(w, "invalid customer id")
		return
	}

	var in customerInput
	if err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	customer, err := c.repo.Update(r.Context(), id, in.Name)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resources.Customer(customer))
}

func (c *CustomerController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "customerID")
	if !ok {
		response.BadRequest(w, "invalid customer id")
		return
	}

	if err := c.repo.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
