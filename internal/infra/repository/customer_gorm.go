package repository

import (
	"context"
	"errors"
	"time"

	"elegance/internal/domain/model"
	domainrepo "elegance/internal/repository"

	"gorm.io/gorm"
)

type customerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) domainrepo.CustomerRepository {
	return &customerGormRepository{db: db}
}

func (r *customerGormRepository) Create(ctx context.Context, c *model.Customer) error {
	return mapError(r.db.WithContext(ctx).Create(c).Error)
}

func (r *customerGormRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *customerGormRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *customerGormRepository) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	return r.findOne(ctx, "phone = ?", phone)
}

// 見つからないときは (nil, nil) で返す
func (r *customerGormRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where(query, arg).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *customerGormRepository) Update(ctx context.Context, c *model.Customer) error {
	now := time.Now()
	c.UpdatedAt = &now
	return mapError(r.db.WithContext(ctx).Save(c).Error)
}

func (r *customerGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Customer{}, id)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

func (r *customerGormRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	var items []model.Customer
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

func (r *customerGormRepository) Search(ctx context.Context, q string) ([]model.Customer, error) {
	var items []model.Customer
	like := "%" + q + "%"
	err := r.db.WithContext(ctx).
		Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR phone ILIKE ?",
			like, like, like, like).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

func (r *customerGormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).Count(&total).Error
	return total, mapError(err)
}

// 注文を1件以上持つ顧客の数
func (r *customerGormRepository) CountWithOrders(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).
		Joins("JOIN orders ON orders.customer_id = customers.id").
		Distinct("customers.id").
		Count(&total).Error
	return total, mapError(err)
}

func (r *customerGormRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).
		Where("created_at >= ?", since).
		Count(&total).Error
	return total, mapError(err)
}
