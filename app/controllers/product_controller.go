package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/resources"
	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

type ProductController struct {
	repo *repositories.ProductRepository
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{repo: repositories.NewProductRepository(db)}
}

// productInput accepts the price as either a JSON number or a quoted string.
type productInput struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.repo.All(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resources.Products(products))
}

func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "productID")
	if !ok {
		response.BadRequest(w, "invalid product id")
		return
	}

	product, err := c.repo.Find(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resources.Product(product))
}

func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in productInput
	if err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	product, err := c.repo.Create(r.Context(), in.Name, in.Price)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, resources.Product(product))
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "productID")
	if !ok {
		response.BadRequest(w, "invalid product id")
		return
	}

	var in productInput
	if err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	product, err := c.repo.Update(r.Context(), id, in.Name, in.Price)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resources.Product(product))
}

func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "productID")
	if !ok {
		response.BadRequest(w, "invalid product id")
		return
	}

	if err := c.repo.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
