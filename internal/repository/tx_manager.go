package repository

import (
	"context"
	"errors"
)

var (
	// unique制約・FK制約などの競合
	ErrConflict = errors.New("conflict")
	// DB接続が切れた。呼び出し側はReset後に1回だけリトライしてよい
	ErrConnectionLost = errors.New("connection lost")
)

// トランザクション内で使う約束
type TxRepos interface {
	Customers() CustomerRepository
	Products() ProductRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
	// 接続断のあとプールを張り直す
	Reset(ctx context.Context) error
}
