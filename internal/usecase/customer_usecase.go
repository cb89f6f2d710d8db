package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"elegance/internal/domain/model"
	repo "elegance/internal/repository"
)

// 管理者向けの顧客管理。
type CustomerUsecase struct {
	customers repo.CustomerRepository
	orders    repo.OrderRepository
	items     repo.OrderItemRepository
}

func NewCustomerUsecase(
	customers repo.CustomerRepository,
	orders repo.OrderRepository,
	items repo.OrderItemRepository,
) *CustomerUsecase {
	return &CustomerUsecase{customers: customers, orders: orders, items: items}
}

// 管理画面向けDTO（camelCase）
type AdminCustomerOutput struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	ZipCode     string `json:"zipCode"`
	OrdersCount int64  `json:"ordersCount"`
	CreatedAt   string `json:"createdAt"`
}

type AdminCustomerDetail struct {
	AdminCustomerOutput
	Orders []OrderOutput `json:"orders"`
}

type AdminCustomerUpdateInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
	City      *string
	ZipCode   *string
}

type CustomerStats struct {
	Total         int64 `json:"total"`
	WithOrders    int64 `json:"withOrders"`
	WithoutOrders int64 `json:"withoutOrders"`
	NewThisMonth  int64 `json:"newThisMonth"`
}

func (u *CustomerUsecase) List(ctx context.Context) ([]AdminCustomerOutput, error) {
	customers, err := u.customers.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return u.toOutputs(ctx, customers)
}

// Get は顧客1件を注文履歴つきで返す。
func (u *CustomerUsecase) Get(ctx context.Context, id int64) (*AdminCustomerDetail, error) {
	customer, err := u.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	orders, err := u.orders.ListByCustomerID(ctx, id)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	orderOuts := make([]OrderOutput, 0, len(orders))
	for i := range orders {
		items, err := u.items.ListByOrderID(ctx, orders[i].ID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		orderOuts = append(orderOuts, toOrderOutput(&orders[i], customer, items))
	}

	return &AdminCustomerDetail{
		AdminCustomerOutput: toAdminCustomerOutput(customer, int64(len(orders))),
		Orders:              orderOuts,
	}, nil
}

func (u *CustomerUsecase) Update(ctx context.Context, id int64, in AdminCustomerUpdateInput) (*AdminCustomerOutput, error) {
	customer, err := u.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	//email変更は他の顧客との重複を先にチェックする
	if in.Email != nil && *in.Email != customer.Email {
		existing, err := u.customers.FindByEmail(ctx, *in.Email)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if existing != nil && existing.ID != customer.ID {
			return nil, NewHTTPError(http.StatusConflict, "this email is already in use")
		}
		customer.Email = *in.Email
	}
	if in.FirstName != nil {
		customer.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		customer.LastName = *in.LastName
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.City != nil {
		customer.City = *in.City
	}
	if in.ZipCode != nil {
		customer.ZipCode = *in.ZipCode
	}

	if err := u.customers.Update(ctx, customer); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, NewHTTPError(http.StatusConflict, "this email is already in use")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	count, err := u.orders.CountByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	out := toAdminCustomerOutput(customer, count)
	return &out, nil
}

// Delete は注文を持つ顧客を消させない。
func (u *CustomerUsecase) Delete(ctx context.Context, id int64) error {
	customer, err := u.findCustomer(ctx, id)
	if err != nil {
		return err
	}

	count, err := u.orders.CountByCustomerID(ctx, customer.ID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if count > 0 {
		return NewHTTPError(http.StatusConflict, "cannot delete a customer with existing orders")
	}

	if err := u.customers.Delete(ctx, customer.ID); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return NewHTTPError(http.StatusConflict, "cannot delete a customer with existing orders")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CustomerUsecase) Search(ctx context.Context, q string) ([]AdminCustomerOutput, error) {
	if strings.TrimSpace(q) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "search query is required")
	}

	customers, err := u.customers.Search(ctx, q)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return u.toOutputs(ctx, customers)
}

func (u *CustomerUsecase) Stats(ctx context.Context) (*CustomerStats, error) {
	total, err := u.customers.Count(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	withOrders, err := u.customers.CountWithOrders(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//今月1日の0時から
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	newThisMonth, err := u.customers.CountCreatedSince(ctx, firstOfMonth)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return &CustomerStats{
		Total:         total,
		WithOrders:    withOrders,
		WithoutOrders: total - withOrders,
		NewThisMonth:  newThisMonth,
	}, nil
}

func (u *CustomerUsecase) findCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	customer, err := u.customers.FindByID(ctx, id)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if customer == nil {
		return nil, NewHTTPError(http.StatusNotFound, "customer not found")
	}
	return customer, nil
}

func (u *CustomerUsecase) toOutputs(ctx context.Context, customers []model.Customer) ([]AdminCustomerOutput, error) {
	outs := make([]AdminCustomerOutput, 0, len(customers))
	for i := range customers {
		count, err := u.orders.CountByCustomerID(ctx, customers[i].ID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, toAdminCustomerOutput(&customers[i], count))
	}
	return outs, nil
}

func toAdminCustomerOutput(c *model.Customer, ordersCount int64) AdminCustomerOutput {
	return AdminCustomerOutput{
		ID:          c.ID,
		Email:       c.Email,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Phone:       c.Phone,
		Address:     c.Address,
		City:        c.City,
		ZipCode:     c.ZipCode,
		OrdersCount: ordersCount,
		CreatedAt:   c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
