package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRoutes(t *testing.T) {
	r := New()
	r.Get("/customer/{customerID}", "customer.show", okHandler)

	path, ok := r.Path("customer.show")
	require.True(t, ok)
	assert.Equal(t, "/customer/{customerID}", path)

	url, err := r.URL("customer.show", map[string]string{"customerID": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/customer/7", url)

	_, err = r.URL("customer.show", nil)
	assert.Error(t, err)

	_, err = r.URL("missing", nil)
	assert.Error(t, err)
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	mw := func(tag string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := New()
	g := r.Group("/api", mw("outer"))
	g.Get("/ping", "ping", okHandler, mw("inner"))

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestRoutesListing(t *testing.T) {
	r := New()
	r.Get("/a", "a", okHandler)
	r.Post("/b", "b", okHandler)

	routes := r.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, RouteInfo{Method: http.MethodGet, Path: "/a", Name: "a"}, routes[0])
	assert.Equal(t, RouteInfo{Method: http.MethodPost, Path: "/b", Name: "b"}, routes[1])
}
