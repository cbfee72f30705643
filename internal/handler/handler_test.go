package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"order-api/internal/model"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubProductService returns canned data so handler behavior can be tested
// without a database.
type stubProductService struct {
	products []model.Product
	err      error
}

func (s *stubProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.products, s.err
}

type stubCustomerService struct {
	customers []model.Customer
	err       error
}

func (s *stubCustomerService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.customers, s.err
}

type stubOrderService struct {
	orders      []model.Order
	created     *model.Order
	err         error
	createCalls int
}

func (s *stubOrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	s.createCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func performRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
