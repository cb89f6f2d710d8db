package validator

import (
	"strings"

	"elegance/internal/usecase"

	playground "github.com/go-playground/validator/v10"
)

type authValidator struct {
	validate *playground.Validate
}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{validate: playground.New()}
}

// 会員登録の入力を検証
func (v *authValidator) ValidateRegister(email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return usecase.NewHTTPError(400, "email and password are required")
	}

	// email形式
	if err := v.validate.Var(email, "email"); err != nil {
		return usecase.NewHTTPError(400, "invalid email format")
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(email string, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return usecase.NewHTTPError(400, "email and password are required")
	}
	return nil
}
