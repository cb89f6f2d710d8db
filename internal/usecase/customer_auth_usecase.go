package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"elegance/internal/config"
	"elegance/internal/domain/model"
	repo "elegance/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(email string, password string) error
	ValidateLogin(email string, password string) error
}

// 認証系エンドポイントが返す顧客DTO（snake_case）
type CustomerDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
}

type CustomerAuthResponse struct {
	Customer CustomerDTO `json:"customer"`
	Token    string      `json:"token"`
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
	City      string
	ZipCode   string
}

type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
	City      *string
	ZipCode   *string
	Password  *string
}

type CustomerAuthUsecase struct {
	cfg       config.Config
	customers repo.CustomerRepository
	orders    repo.OrderRepository
	items     repo.OrderItemRepository
	validator AuthValidator
}

func NewCustomerAuthUsecase(
	cfg config.Config,
	customers repo.CustomerRepository,
	orders repo.OrderRepository,
	items repo.OrderItemRepository,
	validator AuthValidator,
) *CustomerAuthUsecase {
	return &CustomerAuthUsecase{cfg: cfg, customers: customers, orders: orders, items: items, validator: validator}
}

func (u *CustomerAuthUsecase) Register(ctx context.Context, in RegisterInput) (*CustomerAuthResponse, error) {
	if err := u.validator.ValidateRegister(in.Email, in.Password); err != nil {
		return nil, err
	}

	//email重複は409
	existing, err := u.customers.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if existing != nil {
		return nil, NewHTTPError(http.StatusConflict, "an account with this email already exists")
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	customer := &model.Customer{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		ZipCode:   in.ZipCode,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	if err := u.customers.Create(ctx, customer); err != nil {
		//同時登録でunique制約に負けた場合
		if errors.Is(err, repo.ErrConflict) {
			return nil, NewHTTPError(http.StatusConflict, "an account with this email already exists")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//登録直後に再ログインさせないため、そのままtokenを発行する
	token, err := issueToken(u.cfg.JWTSecret, customer, time.Now())
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return &CustomerAuthResponse{Customer: toCustomerDTO(customer), Token: token}, nil
}

func (u *CustomerAuthUsecase) Login(ctx context.Context, email string, password string) (*CustomerAuthResponse, error) {
	if err := u.validator.ValidateLogin(email, password); err != nil {
		return nil, err
	}

	customer, err := u.customers.FindByEmail(ctx, email)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	//「emailが未登録」と「パスワード違い」を呼び出し側に区別させない
	if customer == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)) != nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	token, err := issueToken(u.cfg.JWTSecret, customer, time.Now())
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return &CustomerAuthResponse{Customer: toCustomerDTO(customer), Token: token}, nil
}

func (u *CustomerAuthUsecase) Profile(ctx context.Context, customerID int64) (*CustomerDTO, error) {
	customer, err := u.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	dto := toCustomerDTO(customer)
	return &dto, nil
}

func (u *CustomerAuthUsecase) UpdateProfile(ctx context.Context, customerID int64, in UpdateProfileInput) (*CustomerDTO, error) {
	customer, err := u.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	//送られてきたフィールドだけ更新する
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
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		customer.Password = string(hash)
	}

	if err := u.customers.Update(ctx, customer); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	dto := toCustomerDTO(customer)
	return &dto, nil
}

// MyOrders は自分の注文履歴を商品名付きで返す。
func (u *CustomerAuthUsecase) MyOrders(ctx context.Context, customerID int64) ([]OrderOutput, error) {
	customer, err := u.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	orders, err := u.orders.ListByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for i := range orders {
		items, err := u.items.ListByOrderID(ctx, orders[i].ID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, toOrderOutput(&orders[i], customer, items))
	}
	return outs, nil
}

// DeleteAccount はパスワード確認つきの退会。
func (u *CustomerAuthUsecase) DeleteAccount(ctx context.Context, customerID int64, password string) error {
	if password == "" {
		return NewHTTPError(http.StatusBadRequest, "password is required to confirm deletion")
	}

	customer, err := u.findCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)) != nil {
		return NewHTTPError(http.StatusForbidden, "incorrect password")
	}

	if err := u.customers.Delete(ctx, customer.ID); err != nil {
		//注文が残っているとFK違反になる
		if errors.Is(err, repo.ErrConflict) {
			return NewHTTPError(http.StatusConflict, "cannot delete an account with existing orders")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CustomerAuthUsecase) ChangePassword(ctx context.Context, customerID int64, current string, next string) error {
	if current == "" || next == "" {
		return NewHTTPError(http.StatusBadRequest, "current and new password are required")
	}

	customer, err := u.findCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(current)) != nil {
		return NewHTTPError(http.StatusForbidden, "current password is incorrect")
	}
	if len(next) < 6 {
		return NewHTTPError(http.StatusBadRequest, "new password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	customer.Password = string(hash)

	if err := u.customers.Update(ctx, customer); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// tokenは有効でも行が消えていることがあるので、ここでも401にする
func (u *CustomerAuthUsecase) findCustomer(ctx context.Context, customerID int64) (*model.Customer, error) {
	customer, err := u.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if customer == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return customer, nil
}

func toCustomerDTO(c *model.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		ZipCode:   c.ZipCode,
	}
}
