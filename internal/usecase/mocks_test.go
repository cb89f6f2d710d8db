package usecase_test

import (
	"context"
	"time"

	"elegance/internal/domain/model"
	repo "elegance/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) Create(ctx context.Context, c *model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepoMock) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	args := m.Called(ctx, phone)
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) Update(ctx context.Context, c *model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CustomerRepoMock) ListAll(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Customer)
	return items, args.Error(1)
}

func (m *CustomerRepoMock) Search(ctx context.Context, q string) ([]model.Customer, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Customer)
	return items, args.Error(1)
}

func (m *CustomerRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CustomerRepoMock) CountWithOrders(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CustomerRepoMock) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Update(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (*model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error) {
	args := m.Called(ctx, customerID)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) CountByCustomerID(ctx context.Context, customerID int64) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]repo.OrderItemWithProduct, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]repo.OrderItemWithProduct)
	return items, args.Error(1)
}

type AdminRepoMock struct{ mock.Mock }

func (m *AdminRepoMock) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(*model.Admin)
	return a, args.Error(1)
}

func (m *AdminRepoMock) FindByID(ctx context.Context, id int64) (*model.Admin, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*model.Admin)
	return a, args.Error(1)
}

// =====================
// Fake transaction manager
// =====================

type fakeTxRepos struct {
	customers *CustomerRepoMock
	products  *ProductRepoMock
	orders    *OrderRepoMock
	items     *OrderItemRepoMock
}

func (r *fakeTxRepos) Customers() repo.CustomerRepository   { return r.customers }
func (r *fakeTxRepos) Products() repo.ProductRepository     { return r.products }
func (r *fakeTxRepos) Orders() repo.OrderRepository         { return r.orders }
func (r *fakeTxRepos) OrderItems() repo.OrderItemRepository { return r.items }

// errSeq[i]がnilでなければi回目のWithinTxはfnを実行せずそのエラーを返す。
// 接続断リトライの検証に使う。
type fakeTxManager struct {
	repos  *fakeTxRepos
	errSeq []error

	calls  int
	resets int
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	idx := m.calls
	m.calls++
	if idx < len(m.errSeq) && m.errSeq[idx] != nil {
		return m.errSeq[idx]
	}
	return fn(m.repos)
}

func (m *fakeTxManager) Reset(ctx context.Context) error {
	m.resets++
	return nil
}

func newFakeTx() (*fakeTxManager, *fakeTxRepos) {
	repos := &fakeTxRepos{
		customers: new(CustomerRepoMock),
		products:  new(ProductRepoMock),
		orders:    new(OrderRepoMock),
		items:     new(OrderItemRepoMock),
	}
	return &fakeTxManager{repos: repos}, repos
}
