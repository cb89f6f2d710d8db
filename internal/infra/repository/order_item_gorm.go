package repository

import (
	"context"

	"elegance/internal/domain/model"
	domainrepo "elegance/internal/repository"

	"gorm.io/gorm"
)

type orderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) domainrepo.OrderItemRepository {
	return &orderItemGormRepository{db: db}
}

func (r *orderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	return mapError(r.db.WithContext(ctx).Create(&items).Error)
}

func (r *orderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]domainrepo.OrderItemWithProduct, error) {
	var rows []domainrepo.OrderItemWithProduct
	err := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Select("order_items.*, products.name AS product_name").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_ref_id = ?", orderID).
		Order("order_items.id").
		Scan(&rows).Error
	if err != nil {
		return nil, mapError(err)
	}
	return rows, nil
}
