package repository

import (
	"context"
	"errors"

	"elegance/internal/domain/model"
	domainrepo "elegance/internal/repository"

	"gorm.io/gorm"
)

type productGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) domainrepo.ProductRepository {
	return &productGormRepository{db: db}
}

func (r *productGormRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var items []model.Product
	err := r.db.WithContext(ctx).Order("id").Find(&items).Error
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

func (r *productGormRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainrepo.ErrNotFound
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *productGormRepository) Create(ctx context.Context, p *model.Product) error {
	return mapError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *productGormRepository) Update(ctx context.Context, p *model.Product) error {
	return mapError(r.db.WithContext(ctx).Save(p).Error)
}

func (r *productGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

func (r *productGormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&total).Error
	return total, mapError(err)
}
