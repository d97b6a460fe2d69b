package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"onlineshop/internal/models"
	"onlineshop/internal/services"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, req *models.CustomerCreate) (*models.Customer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerService) ListCustomers(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Customer), args.Error(1)
}

func (m *MockCustomerService) UpdateCustomer(ctx context.Context, id int64, req *models.CustomerUpdate) (*models.Customer, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newCustomerTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateCustomer_Created(t *testing.T) {
	service := new(MockCustomerService)
	service.On("CreateCustomer", mock.Anything, mock.AnythingOfType("*models.CustomerCreate")).
		Return(&models.Customer{ID: 1, Name: "Alice", Surname: "Smith", Email: "alice@example.com"}, nil)

	h := NewCustomerHandlers(service)
	c, rec := newCustomerTestContext(http.MethodPost, "/api/v1/customers",
		`{"name":"Alice","surname":"Smith","email":"alice@example.com"}`)

	assert.NoError(t, h.CreateCustomer(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)
	assert.Contains(t, rec.Body.String(), `"email":"alice@example.com"`)
}

func TestCreateCustomer_MissingFieldIsUnprocessable(t *testing.T) {
	service := new(MockCustomerService)

	h := NewCustomerHandlers(service)
	c, rec := newCustomerTestContext(http.MethodPost, "/api/v1/customers",
		`{"name":"Alice","surname":"Smith"}`)

	assert.NoError(t, h.CreateCustomer(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	service.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
}

func TestCreateCustomer_DuplicateEmailConflicts(t *testing.T) {
	service := new(MockCustomerService)
	service.On("CreateCustomer", mock.Anything, mock.AnythingOfType("*models.CustomerCreate")).
		Return(nil, services.ErrEmailTaken)

	h := NewCustomerHandlers(service)
	c, rec := newCustomerTestContext(http.MethodPost, "/api/v1/customers",
		`{"name":"Bob","surname":"Jones","email":"taken@example.com"}`)

	assert.NoError(t, h.CreateCustomer(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already exists")
}

func TestGetCustomer_NotFound(t *testing.T) {
	service := new(MockCustomerService)
	service.On("GetCustomer", mock.Anything, int64(99)).Return(nil, services.ErrCustomerNotFound)

	h := NewCustomerHandlers(service)
	c, rec := newCustomerTestContext(http.MethodGet, "/api/v1/customers/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	assert.NoError(t, h.GetCustomer(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer not found")
}

func TestGetCustomer_MalformedID(t *testing.T) {
	service := new(MockCustomerService)

	h := NewCustomerHandlers(service)
	c, rec := newCustomerTestContext(http.MethodGet, "/api/v1/customers/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	assert.NoError(t, h.GetCustomer(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "GetCustomer", mock.Anything, mock.Anything)
}

func TestListCustomers_PassesSkipLimit(t *testing.T) {
	service := new(MockCustomerService)
	service.On("ListCustomers", mock.Anything, 10, 5).Return([]*models.Customer{}, nil)

	h := NewCustomerHandlers(service)
	c, rec := newCustomerTestContext(http.MethodGet, "/api/v1/customers?skip=5&limit=10", "")

	assert.NoError(t, h.ListCustomers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
	service.AssertExpectations(t)
}

func TestListCustomers_RejectsOutOfRangePagination(t *testing.T) {
	service := new(MockCustomerService)
	h := NewCustomerHandlers(service)

	for _, target := range []string{
		"/api/v1/customers?limit=0",
		"/api/v1/customers?limit=1001",
		"/api/v1/customers?limit=abc",
		"/api/v1/customers?skip=-1",
	} {
		c, rec := newCustomerTestContext(http.MethodGet, target, "")
		assert.NoError(t, h.ListCustomers(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR", target)
	}
	service.AssertNotCalled(t, "ListCustomers", mock.Anything, mock.Anything, mock.Anything)
}

// Trailing-slash paths must resolve to the same routes, which requires the
// rewrite to run before route matching (e.Pre, not e.Use).
func TestTrailingSlashPathsRoute(t *testing.T) {
	service := new(MockCustomerService)
	service.On("ListCustomers", mock.Anything, 100, 0).Return([]*models.Customer{}, nil)
	service.On("GetCustomer", mock.Anything, int64(7)).
		Return(&models.Customer{ID: 7, Name: "Alice", Surname: "Smith", Email: "alice@example.com"}, nil)

	h := NewCustomerHandlers(service)
	e := echo.New()
	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.GET("/api/v1/customers", h.ListCustomers)
	e.GET("/api/v1/customers/:id", h.GetCustomer)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/v1/customers/7/", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestDeleteCustomer_MessageBody(t *testing.T) {
	service := new(MockCustomerService)
	service.On("DeleteCustomer", mock.Anything, int64(7)).Return(nil)

	h := NewCustomerHandlers(service)
	c, rec := newCustomerTestContext(http.MethodDelete, "/api/v1/customers/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	assert.NoError(t, h.DeleteCustomer(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer deleted successfully")
}
