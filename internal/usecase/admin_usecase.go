package usecase

import (
	"context"
	"net/http"
	"time"

	"elegance/internal/config"
	repo "elegance/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type AdminUsecase struct {
	cfg       config.Config
	admins    repo.AdminRepository
	products  repo.ProductRepository
	orders    repo.OrderRepository
	customers repo.CustomerRepository
}

func NewAdminUsecase(
	cfg config.Config,
	admins repo.AdminRepository,
	products repo.ProductRepository,
	orders repo.OrderRepository,
	customers repo.CustomerRepository,
) *AdminUsecase {
	return &AdminUsecase{cfg: cfg, admins: admins, products: products, orders: orders, customers: customers}
}

type AdminDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type AdminLoginResponse struct {
	Admin AdminDTO `json:"admin"`
	Token string   `json:"token"`
}

// ダッシュボードの集計
type DashboardStats struct {
	Products  int64  `json:"products"`
	Orders    int64  `json:"orders"`
	Customers int64  `json:"customers"`
	Revenue   string `json:"revenue"`
}

func (u *AdminUsecase) Login(ctx context.Context, email string, password string) (*AdminLoginResponse, error) {
	if email == "" || password == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	admin, err := u.admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	//customer loginと同じく、存在しないemailとパスワード違いを区別しない
	if admin == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	token, err := issueToken(u.cfg.JWTSecret, admin, time.Now())
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return &AdminLoginResponse{
		Admin: AdminDTO{ID: admin.ID, Email: admin.Email},
		Token: token,
	}, nil
}

// Dashboard は件数と売上合計を返す。
// 売上は注文totalのdecimal合計（floatで足すと誤差が出る）。
func (u *AdminUsecase) Dashboard(ctx context.Context) (*DashboardStats, error) {
	productCount, err := u.products.Count(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	orderCount, err := u.orders.Count(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	customerCount, err := u.customers.Count(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	revenue := decimal.Zero
	for _, o := range orders {
		total, err := decimal.NewFromString(o.Total)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "invalid order total: "+o.Total)
		}
		revenue = revenue.Add(total)
	}

	return &DashboardStats{
		Products:  productCount,
		Orders:    orderCount,
		Customers: customerCount,
		Revenue:   revenue.StringFixed(2),
	}, nil
}
