package repository

import (
	"context"

	"elegance/internal/domain/model"
)

// 管理者の取得だけを約束。管理者はシードで作られ、APIからは作成しない。
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	FindByID(ctx context.Context, id int64) (*model.Admin, error)
}
