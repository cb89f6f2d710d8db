package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elegance/internal/config"
	"elegance/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	assert.NoError(t, err)
	return s
}

func validClaims(role string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":   "7",
		"email": "marie@example.com",
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
}

func runAuth(t *testing.T, authz string, guards ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured echo.Context
	h := func(c echo.Context) error {
		captured = c
		return c.NoContent(http.StatusOK)
	}

	cfg := config.Config{JWTSecret: testSecret}
	chain := h
	for i := len(guards) - 1; i >= 0; i-- {
		chain = guards[i](chain)
	}
	chain = middleware.AuthJWT(cfg)(chain)
	err := chain(c)
	assert.NoError(t, err)
	if captured != nil {
		return rec, captured
	}
	return rec, c
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec, _ := runAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_MalformedHeader(t *testing.T) {
	rec, _ := runAuth(t, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_BadSignature(t *testing.T) {
	tok := signToken(t, "other-secret", validClaims("CUSTOMER"))
	rec, _ := runAuth(t, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	claims := validClaims("CUSTOMER")
	claims["exp"] = time.Now().Add(-time.Minute).Unix()
	tok := signToken(t, testSecret, claims)
	rec, _ := runAuth(t, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ValidTokenSetsContext(t *testing.T) {
	tok := signToken(t, testSecret, validClaims("CUSTOMER"))
	rec, c := runAuth(t, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), c.Get(middleware.CtxAccountIDKey))
	assert.Equal(t, "CUSTOMER", c.Get(middleware.CtxRoleKey))
	assert.Equal(t, "marie@example.com", c.Get(middleware.CtxEmailKey))
}

func TestAdminRoleGuard_BlocksCustomer(t *testing.T) {
	tok := signToken(t, testSecret, validClaims("CUSTOMER"))
	rec, _ := runAuth(t, "Bearer "+tok, middleware.AdminRoleGuard())
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRoleGuard_AllowsAdmin(t *testing.T) {
	tok := signToken(t, testSecret, validClaims("ADMIN"))
	rec, _ := runAuth(t, "Bearer "+tok, middleware.AdminRoleGuard())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerRoleGuard_BlocksAdmin(t *testing.T) {
	tok := signToken(t, testSecret, validClaims("ADMIN"))
	rec, _ := runAuth(t, "Bearer "+tok, middleware.CustomerRoleGuard())
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
