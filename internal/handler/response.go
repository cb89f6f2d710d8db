package handler

import (
	"net/http"

	"elegance/internal/domain/model"
	"elegance/internal/middleware"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 全エンドポイント共通のエラー形。successフラグと人間向けメッセージを返す
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Message: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
}

func failJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, ErrorResponse{Message: msg})
}

func accountIDFromContext(c echo.Context) (int64, bool) {
	id, ok := c.Get(middleware.CtxAccountIDKey).(int64)
	return id, ok
}

func roleFromContext(c echo.Context) (model.Role, bool) {
	role, ok := c.Get(middleware.CtxRoleKey).(string)
	if !ok {
		return "", false
	}
	return model.Role(role), true
}
