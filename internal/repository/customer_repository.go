package repository

import (
	"context"
	"time"

	"elegance/internal/domain/model"
)

// 顧客の永続化（保存・取得・検索・統計）を約束。
type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	// 見つからない場合は (nil, nil) を返す
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	// ゲスト注文でemailが無いときのフォールバックキー
	FindByPhone(ctx context.Context, phone string) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id int64) error

	// 新しい順の一覧
	ListAll(ctx context.Context) ([]model.Customer, error)
	// email / first_name / last_name / phone の部分一致検索
	Search(ctx context.Context, q string) ([]model.Customer, error)

	Count(ctx context.Context) (int64, error)
	CountWithOrders(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
