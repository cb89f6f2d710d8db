package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"elegance/internal/config"
	"elegance/internal/domain/model"
	"elegance/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAdminUsecase() (*usecase.AdminUsecase, *AdminRepoMock, *ProductRepoMock, *OrderRepoMock, *CustomerRepoMock) {
	admins := new(AdminRepoMock)
	products := new(ProductRepoMock)
	orders := new(OrderRepoMock)
	customers := new(CustomerRepoMock)
	cfg := config.Config{JWTSecret: testSecret}
	return usecase.NewAdminUsecase(cfg, admins, products, orders, customers), admins, products, orders, customers
}

func TestAdminLogin_RequiresCredentials(t *testing.T) {
	uc, _, _, _, _ := newAdminUsecase()

	_, err := uc.Login(context.Background(), "", "")
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "email and password are required", he.Message)
}

func TestAdminLogin_UniformUnauthorized(t *testing.T) {
	uc, admins, _, _, _ := newAdminUsecase()

	admins.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)
	admins.On("FindByEmail", mock.Anything, "admin@example.com").
		Return(&model.Admin{ID: 1, Email: "admin@example.com", Password: hashOf(t, "right")}, nil)

	_, err1 := uc.Login(context.Background(), "nobody@example.com", "whatever")
	_, err2 := uc.Login(context.Background(), "admin@example.com", "wrong")

	he1, _ := usecase.AsHTTPError(err1)
	he2, _ := usecase.AsHTTPError(err2)
	assert.Equal(t, http.StatusUnauthorized, he1.Status)
	assert.Equal(t, he1.Message, he2.Message)
}

func TestAdminLogin_TokenCarriesAdminRole(t *testing.T) {
	uc, admins, _, _, _ := newAdminUsecase()

	admins.On("FindByEmail", mock.Anything, "admin@example.com").
		Return(&model.Admin{ID: 1, Email: "admin@example.com", Password: hashOf(t, "secret123")}, nil)

	out, err := uc.Login(context.Background(), "admin@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Admin.ID)

	parsed, err := jwt.Parse(out.Token, func(tok *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "ADMIN", claims["role"])
	assert.Equal(t, "1", claims["sub"])
}

func TestDashboard_SumsRevenueAsDecimal(t *testing.T) {
	uc, _, products, orders, customers := newAdminUsecase()

	products.On("Count", mock.Anything).Return(int64(12), nil)
	orders.On("Count", mock.Anything).Return(int64(3), nil)
	customers.On("Count", mock.Anything).Return(int64(8), nil)
	//floatで足すと0.30にならない組み合わせ
	orders.On("ListAll", mock.Anything).Return([]model.Order{
		{ID: 1, Total: "0.10"},
		{ID: 2, Total: "0.20"},
		{ID: 3, Total: "10.00"},
	}, nil)

	out, err := uc.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(12), out.Products)
	assert.Equal(t, int64(3), out.Orders)
	assert.Equal(t, int64(8), out.Customers)
	assert.Equal(t, "10.30", out.Revenue)
}

func TestDashboard_InvalidTotalFails(t *testing.T) {
	uc, _, products, orders, customers := newAdminUsecase()

	products.On("Count", mock.Anything).Return(int64(0), nil)
	orders.On("Count", mock.Anything).Return(int64(1), nil)
	customers.On("Count", mock.Anything).Return(int64(0), nil)
	orders.On("ListAll", mock.Anything).Return([]model.Order{{ID: 1, Total: "abc"}}, nil)

	_, err := uc.Dashboard(context.Background())
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
}
