package model

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// 注文。金額（subtotal/delivery_fee/total）はすべてNUMERIC(10,2)の文字列。
// total = subtotal + delivery_fee は呼び出し側の責任で、サーバーでは再計算しない。
// customersへのFKはRESTRICTで、注文を持つ顧客の削除はDB側でも拒否される。
type Order struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number"`
	Status      string    `gorm:"type:varchar(50);not null" json:"status"`
	Subtotal    string    `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	DeliveryFee string    `gorm:"type:numeric(10,2);not null" json:"delivery_fee"`
	Total       string    `gorm:"type:numeric(10,2);not null" json:"total"`
	CustomerID  int64     `gorm:"not null;index" json:"customer_id"`
	Customer    *Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Order) TableName() string { return "orders" }
