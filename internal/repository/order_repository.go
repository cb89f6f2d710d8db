package repository

import (
	"context"

	"elegance/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (*model.Order, error)
	// 新しい順の全件（管理者用）
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error)
	Create(ctx context.Context, order *model.Order) error
	UpdateStatus(ctx context.Context, orderID int64, status string) error
	Count(ctx context.Context) (int64, error)
	CountByCustomerID(ctx context.Context, customerID int64) (int64, error)
}
