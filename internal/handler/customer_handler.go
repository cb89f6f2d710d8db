package handler

import (
	"net/http"

	"elegance/internal/config"
	"elegance/internal/middleware"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/customers の顧客管理API（管理者専用）
type CustomerHandler struct {
	uc *usecase.CustomerUsecase
}

func NewCustomerHandler(uc *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/customers", middleware.AuthJWT(cfg), middleware.AdminRoleGuard())

	//staticなパスは:idより先に登録する
	g.GET("/search", h.search)
	g.GET("/stats", h.stats)

	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

type customerListResponse struct {
	Success   bool                          `json:"success"`
	Customers []usecase.AdminCustomerOutput `json:"customers"`
	Count     *int                          `json:"count,omitempty"`
}

func (h *CustomerHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customerListResponse{Success: true, Customers: out})
}

func (h *CustomerHandler) detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid id")
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "customer": out})
}

func (h *CustomerHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid id")
	}

	var req customerUpdateRequest
	if err := c.Bind(&req); err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid body")
	}

	out, err := h.uc.Update(c.Request().Context(), id, req.normalizeAdmin())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "customer updated", "customer": out})
}

func (h *CustomerHandler) delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "customer deleted"})
}

func (h *CustomerHandler) search(c echo.Context) error {
	q := c.QueryParam("q")

	out, err := h.uc.Search(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	count := len(out)
	return c.JSON(http.StatusOK, customerListResponse{Success: true, Customers: out, Count: &count})
}

func (h *CustomerHandler) stats(c echo.Context) error {
	out, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "stats": out})
}
