package repository

import (
	"context"
	"errors"

	"elegance/internal/domain/model"
	domainrepo "elegance/internal/repository"

	"gorm.io/gorm"
)

type adminGormRepository struct {
	db *gorm.DB
}

func NewAdminGormRepository(db *gorm.DB) domainrepo.AdminRepository {
	return &adminGormRepository{db: db}
}

// emailで管理者を1件取得。見つからないときは (nil, nil)。
func (r *adminGormRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var a model.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

func (r *adminGormRepository) FindByID(ctx context.Context, id int64) (*model.Admin, error) {
	var a model.Admin
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}
