package handler

import (
	"net/http"

	"elegance/internal/config"
	"elegance/internal/middleware"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/orders の注文API。
// POSTはゲストチェックアウトを許すため認証なし。
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.POST("/api/orders", h.create)
	e.GET("/api/orders", h.list, middleware.AuthJWT(cfg), middleware.AdminRoleGuard())
	e.GET("/api/orders/:id", h.detail, middleware.AuthJWT(cfg))
	e.PUT("/api/orders/:id/status", h.updateStatus, middleware.AuthJWT(cfg), middleware.AdminRoleGuard())
}

type orderCreateResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Order   usecase.OrderOutput `json:"order"`
	ID      int64               `json:"id"`
}

func (h *OrderHandler) create(c echo.Context) error {
	var req orderCreateRequest
	if err := c.Bind(&req); err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid JSON body")
	}
	if req.Customer == nil {
		return failJSON(c, http.StatusBadRequest, "customer information is required")
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), req.normalize())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, orderCreateResponse{
		Success: true,
		Message: "order created",
		Order:   out,
		ID:      out.ID,
	})
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid id")
	}

	accountID, ok := accountIDFromContext(c)
	if !ok {
		return failJSON(c, http.StatusUnauthorized, "unauthorized")
	}
	role, ok := roleFromContext(c)
	if !ok {
		return failJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	out, err := h.uc.Get(c.Request().Context(), role, accountID, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

type orderStatusResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Order   usecase.OrderOutput `json:"order"`
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid id")
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid body")
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderStatusResponse{Success: true, Message: "status updated", Order: out})
}
