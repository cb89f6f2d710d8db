package model

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// ログインできるアカウントの共通能力。
// AdminとCustomerは別テーブルだが、認証フローからは同じ形で扱う。
type Credentialed interface {
	AccountID() int64
	AccountEmail() string
	PasswordHash() string
	AccountRole() Role
}
