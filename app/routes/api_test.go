package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") +
		"?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderProduct{},
	))

	r := router.New()
	RegisterAPI(r, db)

	srv := httptest.NewServer(r.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, buf
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)

	resp, body := do(t, srv, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "storefront\n", string(body))
}

func TestStorefrontScenario(t *testing.T) {
	srv := newTestServer(t)

	// Create a customer and a product.
	resp, body := do(t, srv, http.MethodPost, "/customer", `{"name":"Alice"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var customer struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(body, &customer))
	assert.Equal(t, "Alice", customer.Name)

	resp, body = do(t, srv, http.MethodPost, "/product", `{"name":"Widget","price":"9.99"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var product struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Price string `json:"price"`
	}
	require.NoError(t, json.Unmarshal(body, &product))
	assert.Equal(t, "9.99", product.Price)

	// Create an order with the nested customer shape.
	resp, body = do(t, srv, http.MethodPost, "/order",
		fmt.Sprintf(`{"customer":{"id":%d}}`, customer.ID))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var order struct {
		ID       uint   `json:"id"`
		Subtotal string `json:"subtotal"`
		Customer struct {
			ID uint `json:"id"`
		} `json:"customer"`
	}
	require.NoError(t, json.Unmarshal(body, &order))
	assert.Equal(t, "0.00", order.Subtotal)
	assert.Equal(t, customer.ID, order.Customer.ID)

	// Attach the product via the query parameter form.
	resp, body = do(t, srv, http.MethodPost,
		fmt.Sprintf("/order/%d/product?productID=%d", order.ID, product.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, &order))
	assert.Equal(t, "9.99", order.Subtotal)

	// The listing carries the same shapes.
	resp, body = do(t, srv, http.MethodGet, "/order", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t,
		fmt.Sprintf(`[{"id":%d,"subtotal":"9.99","customer":{"id":%d}}]`, order.ID, customer.ID),
		string(body))

	// Attaching the same product again is a conflict.
	resp, _ = do(t, srv, http.MethodPost,
		fmt.Sprintf("/order/%d/product?productID=%d", order.ID, product.ID), "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The product cannot be deleted while the order references it.
	resp, _ = do(t, srv, http.MethodDelete, fmt.Sprintf("/product/%d", product.ID), "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Detach, then the delete goes through.
	resp, body = do(t, srv, http.MethodDelete,
		fmt.Sprintf("/order/%d/product/%d", order.ID, product.ID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, &order))
	assert.Equal(t, "0.00", order.Subtotal)

	resp, _ = do(t, srv, http.MethodDelete, fmt.Sprintf("/product/%d", product.ID), "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestErrorStatuses(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := do(t, srv, http.MethodGet, "/customer/42", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := do(t, srv, http.MethodPost, "/customer", `{"name":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), `"fields"`)

	resp, _ = do(t, srv, http.MethodPost, "/customer", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodGet, "/customer/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// An order for a customer that does not exist hits the foreign key.
	resp, _ = do(t, srv, http.MethodPost, "/order", `{"customer":{"id":42}}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestEmptyListings(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/customer", "/product", "/order"} {
		resp, body := do(t, srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, "[]", string(body))
	}
}
