package handler

import (
	"net/http"

	"elegance/internal/config"
	"elegance/internal/middleware"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/customer の認証・マイページAPI
type CustomerAuthHandler struct {
	uc *usecase.CustomerAuthUsecase
}

func NewCustomerAuthHandler(uc *usecase.CustomerAuthUsecase) *CustomerAuthHandler {
	return &CustomerAuthHandler{uc: uc}
}

func (h *CustomerAuthHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/customer")

	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)

	p := g.Group("", middleware.AuthJWT(cfg), middleware.CustomerRoleGuard())
	p.GET("/profile", h.profile)
	p.PUT("/profile", h.updateProfile)
	p.GET("/orders", h.orders)
	p.DELETE("/account", h.deleteAccount)
	p.POST("/change-password", h.changePassword)
}

func (h *CustomerAuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid body")
	}

	out, err := h.uc.Register(c.Request().Context(), req.normalize())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *CustomerAuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid body")
	}

	out, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// JWTはstatelessなのでサーバー側では何も無効化しない。
// クライアントがtokenを捨てるだけ。
func (h *CustomerAuthHandler) logout(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "logged out"})
}

func (h *CustomerAuthHandler) profile(c echo.Context) error {
	customerID, ok := accountIDFromContext(c)
	if !ok {
		return failJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	out, err := h.uc.Profile(c.Request().Context(), customerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerAuthHandler) updateProfile(c echo.Context) error {
	customerID, ok := accountIDFromContext(c)
	if !ok {
		return failJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	var req customerUpdateRequest
	if err := c.Bind(&req); err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid body")
	}

	out, err := h.uc.UpdateProfile(c.Request().Context(), customerID, req.normalizeProfile())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerAuthHandler) orders(c echo.Context) error {
	customerID, ok := accountIDFromContext(c)
	if !ok {
		return failJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	out, err := h.uc.MyOrders(c.Request().Context(), customerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type deleteAccountRequest struct {
	Password string `json:"password"`
}

func (h *CustomerAuthHandler) deleteAccount(c echo.Context) error {
	customerID, ok := accountIDFromContext(c)
	if !ok {
		return failJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	var req deleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid body")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), customerID, req.Password); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "account deleted"})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *CustomerAuthHandler) changePassword(c echo.Context) error {
	customerID, ok := accountIDFromContext(c)
	if !ok {
		return failJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return failJSON(c, http.StatusBadRequest, "invalid body")
	}

	if err := h.uc.ChangePassword(c.Request().Context(), customerID, req.CurrentPassword, req.NewPassword); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "password changed"})
}
