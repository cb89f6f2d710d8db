package handler

import (
	"net/http"
	"strconv"

	"elegance/internal/config"
	"elegance/internal/domain/model"
	"elegance/internal/middleware"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /api/products のカタログAPI。参照は公開、書き込みは管理者のみ
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/api/products", h.list)
	e.GET("/api/products/:id", h.detail)

	admin := e.Group("/api/products", middleware.AuthJWT(cfg), middleware.AdminRoleGuard())
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid id")
	}

	out, err := h.uc.Detail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type productCreateRequest struct {
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Image       string           `json:"image"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	InStock     *bool            `json:"inStock"`
}

type productResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Product *model.Product `json:"product"`
}

func (h *ProductHandler) create(c echo.Context) error {
	var req productCreateRequest
	if err := c.Bind(&req); err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid body")
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.ProductCreateInput{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Description: req.Description,
		InStock:     req.InStock,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, productResponse{Success: true, Message: "product created", Product: out})
}

type productUpdateRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	InStock     *bool            `json:"inStock"`
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid id")
	}

	var req productUpdateRequest
	if err := c.Bind(&req); err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid body")
	}

	out, err := h.uc.Update(c.Request().Context(), id, usecase.ProductUpdateInput{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Description: req.Description,
		InStock:     req.InStock,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, productResponse{Success: true, Message: "product updated", Product: out})
}

func (h *ProductHandler) delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "product deleted"})
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
