package middleware

import (
	"net/http"

	"elegance/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// contextのroleがADMINのリクエストだけ通す。
func AdminRoleGuard() echo.MiddlewareFunc {
	return roleGuard(model.RoleAdmin, "admin only")
}

// 顧客専用エンドポイント用。
func CustomerRoleGuard() echo.MiddlewareFunc {
	return roleGuard(model.RoleCustomer, "customer only")
}

func roleGuard(want model.Role, deniedMsg string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if role != string(want) {
				return c.JSON(http.StatusForbidden, errorJSON(deniedMsg))
			}

			return next(c)
		}
	}
}
