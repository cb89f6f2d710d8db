package repository

import (
	"context"
	"errors"

	"elegance/internal/domain/model"
	domainrepo "elegance/internal/repository"

	"gorm.io/gorm"
)

type orderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) domainrepo.OrderRepository {
	return &orderGormRepository{db: db}
}

func (r *orderGormRepository) FindByID(ctx context.Context, orderID int64) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainrepo.ErrNotFound
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &o, nil
}

func (r *orderGormRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

func (r *orderGormRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

func (r *orderGormRepository) Create(ctx context.Context, order *model.Order) error {
	return mapError(r.db.WithContext(ctx).Create(order).Error)
}

func (r *orderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

func (r *orderGormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&total).Error
	return total, mapError(err)
}

func (r *orderGormRepository) CountByCustomerID(ctx context.Context, customerID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("customer_id = ?", customerID).
		Count(&total).Error
	return total, mapError(err)
}
