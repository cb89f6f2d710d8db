package handler

import (
	"bytes"
	"encoding/json"

	"elegance/internal/usecase"

	"github.com/shopspring/decimal"
)

// 外部のpayloadはcamelCaseとsnake_caseが混ざって届くので、
// バリデーション前にここで正規化して1つの内部形式に寄せる。

// 数値でも文字列でも受けるID（注文番号など）
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func pickString(camel, snake *string) *string {
	if camel != nil {
		return camel
	}
	return snake
}

func pickDecimal(camel, snake *decimal.Decimal) decimal.Decimal {
	if camel != nil {
		return *camel
	}
	if snake != nil {
		return *snake
	}
	return decimal.Zero
}

type orderCustomerPayload struct {
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	FirstName      string `json:"firstName"`
	FirstNameSnake string `json:"first_name"`
	LastName       string `json:"lastName"`
	LastNameSnake  string `json:"last_name"`
	Address        string `json:"address"`
	City           string `json:"city"`
	ZipCode        string `json:"zipCode"`
	ZipCodeSnake   string `json:"zip_code"`
}

func (p *orderCustomerPayload) normalize() usecase.OrderCustomerInput {
	return usecase.OrderCustomerInput{
		Email:     p.Email,
		Phone:     p.Phone,
		FirstName: firstNonEmpty(p.FirstName, p.FirstNameSnake),
		LastName:  firstNonEmpty(p.LastName, p.LastNameSnake),
		Address:   p.Address,
		City:      p.City,
		ZipCode:   firstNonEmpty(p.ZipCode, p.ZipCodeSnake),
	}
}

type orderItemPayload struct {
	ID       int64            `json:"id"`
	Quantity int64            `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

type orderCreateRequest struct {
	Customer         *orderCustomerPayload `json:"customer"`
	Items            []orderItemPayload    `json:"items"`
	Subtotal         *decimal.Decimal      `json:"subtotal"`
	DeliveryFee      *decimal.Decimal      `json:"deliveryFee"`
	DeliveryFeeSnake *decimal.Decimal      `json:"delivery_fee"`
	Total            *decimal.Decimal      `json:"total"`
	Status           string                `json:"status"`
	// フロントが採番した注文番号
	ID flexString `json:"id"`
}

func (r *orderCreateRequest) normalize() usecase.PlaceOrderInput {
	items := make([]usecase.OrderItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: it.ID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	in := usecase.PlaceOrderInput{
		Items:       items,
		Subtotal:    pickDecimal(r.Subtotal, nil),
		DeliveryFee: pickDecimal(r.DeliveryFee, r.DeliveryFeeSnake),
		Total:       pickDecimal(r.Total, nil),
		Status:      r.Status,
		OrderNumber: string(r.ID),
	}
	if r.Customer != nil {
		in.Customer = r.Customer.normalize()
	}
	return in
}

type registerRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"firstName"`
	FirstNameSnake string `json:"first_name"`
	LastName       string `json:"lastName"`
	LastNameSnake  string `json:"last_name"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	ZipCode        string `json:"zipCode"`
	ZipCodeSnake   string `json:"zip_code"`
}

func (r *registerRequest) normalize() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: firstNonEmpty(r.FirstName, r.FirstNameSnake),
		LastName:  firstNonEmpty(r.LastName, r.LastNameSnake),
		Phone:     r.Phone,
		Address:   r.Address,
		City:      r.City,
		ZipCode:   firstNonEmpty(r.ZipCode, r.ZipCodeSnake),
	}
}

// 部分更新用。nilのフィールドは触らない
type customerUpdateRequest struct {
	Email          *string `json:"email"`
	FirstName      *string `json:"firstName"`
	FirstNameSnake *string `json:"first_name"`
	LastName       *string `json:"lastName"`
	LastNameSnake  *string `json:"last_name"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	City           *string `json:"city"`
	ZipCode        *string `json:"zipCode"`
	ZipCodeSnake   *string `json:"zip_code"`
	Password       *string `json:"password"`
}

func (r *customerUpdateRequest) normalizeProfile() usecase.UpdateProfileInput {
	return usecase.UpdateProfileInput{
		FirstName: pickString(r.FirstName, r.FirstNameSnake),
		LastName:  pickString(r.LastName, r.LastNameSnake),
		Phone:     r.Phone,
		Address:   r.Address,
		City:      r.City,
		ZipCode:   pickString(r.ZipCode, r.ZipCodeSnake),
		Password:  r.Password,
	}
}

func (r *customerUpdateRequest) normalizeAdmin() usecase.AdminCustomerUpdateInput {
	return usecase.AdminCustomerUpdateInput{
		Email:     r.Email,
		FirstName: pickString(r.FirstName, r.FirstNameSnake),
		LastName:  pickString(r.LastName, r.LastNameSnake),
		Phone:     r.Phone,
		Address:   r.Address,
		City:      r.City,
		ZipCode:   pickString(r.ZipCode, r.ZipCodeSnake),
	}
}
