package repository

import (
	"context"

	repo "elegance/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	customers  repo.CustomerRepository
	products   repo.ProductRepository
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func (r *txReposGorm) Customers() repo.CustomerRepository   { return r.customers }
func (r *txReposGorm) Products() repo.ProductRepository     { return r.products }
func (r *txReposGorm) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository { return r.orderItems }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			customers:  NewCustomerGormRepository(tx),
			products:   NewProductGormRepository(tx),
			orders:     NewOrderGormRepository(tx),
			orderItems: NewOrderItemGormRepository(tx),
		}
		return fn(r)
	})
	return mapError(err)
}

// Reset は接続断のあとプールを張り直す。
// database/sqlはPingで死んだ接続を捨てて取り直すので、close/connectの代わりになる。
func (tm *TxManagerGorm) Reset(ctx context.Context) error {
	sqlDB, err := tm.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
