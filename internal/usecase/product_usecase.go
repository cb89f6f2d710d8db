package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"elegance/internal/domain/model"
	repo "elegance/internal/repository"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

func NewHTTPError(status int, message string) error {
	return &HTTPError{Status: status, Message: message}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// base64画像の上限（約10MB）
const maxImageBytes = 10_000_000

type ProductUsecase struct {
	products repo.ProductRepository
	tx       repo.TransactionManager
}

func NewProductUsecase(products repo.ProductRepository, tx repo.TransactionManager) *ProductUsecase {
	return &ProductUsecase{products: products, tx: tx}
}

type ProductCreateInput struct {
	Name        string
	Price       *decimal.Decimal
	Image       string
	Category    string
	Description string
	InStock     *bool
}

type ProductUpdateInput struct {
	Name        *string
	Price       *decimal.Decimal
	Image       *string
	Category    *string
	Description *string
	InStock     *bool
}

func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	items, err := u.products.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) Detail(ctx context.Context, id int64) (*model.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Create(ctx context.Context, in ProductCreateInput) (*model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "product name is required")
	}
	if in.Price == nil {
		return nil, NewHTTPError(http.StatusBadRequest, "price must be a valid number")
	}
	if in.Price.IsNegative() {
		return nil, NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "category is required")
	}
	if len(in.Image) > maxImageBytes {
		return nil, NewHTTPError(http.StatusBadRequest, "image is too large (max ~7.5MB as base64)")
	}

	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}

	p := &model.Product{
		Name:        name,
		Price:       in.Price.StringFixed(2),
		Image:       in.Image,
		Category:    category,
		Description: strings.TrimSpace(in.Description),
		InStock:     inStock,
		CreatedAt:   time.Now(),
	}

	//接続断は1回だけリトライ
	err := withConnRetry(ctx, u.tx, func(r repo.TxRepos) error {
		return r.Products().Create(ctx, p)
	})
	if err != nil {
		if errors.Is(err, repo.ErrConnectionLost) {
			return nil, NewHTTPError(http.StatusInternalServerError, "database connection lost, please retry")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "failed to create product: "+err.Error())
	}

	return p, nil
}

func (u *ProductUsecase) Update(ctx context.Context, id int64, in ProductUpdateInput) (*model.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//送られてきたフィールドだけ更新する
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, NewHTTPError(http.StatusBadRequest, "price must not be negative")
		}
		p.Price = in.Price.StringFixed(2)
	}
	if in.Image != nil {
		if len(*in.Image) > maxImageBytes {
			return nil, NewHTTPError(http.StatusBadRequest, "image is too large (max ~7.5MB as base64)")
		}
		p.Image = *in.Image
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}

	if err := u.products.Update(ctx, p); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	err := u.products.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if errors.Is(err, repo.ErrConflict) {
		//注文明細から参照されている商品は消せない
		return NewHTTPError(http.StatusConflict, "product is referenced by existing orders")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
