package handler

import (
	"net/http"

	"elegance/internal/config"
	"elegance/internal/middleware"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/admin の管理者ログインとダッシュボード
type AdminHandler struct {
	uc        *usecase.AdminUsecase
	orders    *usecase.OrderUsecase
	customers *usecase.CustomerUsecase
}

func NewAdminHandler(uc *usecase.AdminUsecase, orders *usecase.OrderUsecase, customers *usecase.CustomerUsecase) *AdminHandler {
	return &AdminHandler{uc: uc, orders: orders, customers: customers}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/admin")

	g.POST("/login", h.login)
	g.POST("/logout", h.logout)

	p := g.Group("", middleware.AuthJWT(cfg), middleware.AdminRoleGuard())
	p.GET("/dashboard", h.dashboard)
	p.GET("/orders", h.listOrders)
	p.GET("/customers", h.listCustomers)
}

func (h *AdminHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid body")
	}

	out, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "login successful",
		"admin":   out.Admin,
		"token":   out.Token,
	})
}

func (h *AdminHandler) logout(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "logout successful"})
}

func (h *AdminHandler) dashboard(c echo.Context) error {
	out, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "stats": out})
}

func (h *AdminHandler) listOrders(c echo.Context) error {
	out, err := h.orders.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) listCustomers(c echo.Context) error {
	out, err := h.customers.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
