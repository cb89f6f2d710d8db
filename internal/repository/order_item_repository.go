package repository

import (
	"context"

	"elegance/internal/domain/model"
)

// 商品名を解決済みの明細行
type OrderItemWithProduct struct {
	model.OrderItem
	ProductName string
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	// products をJOINして商品名付きで返す
	ListByOrderID(ctx context.Context, orderID int64) ([]OrderItemWithProduct, error)
}
