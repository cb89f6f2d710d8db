package model

import "time"

// 商品。PriceはNUMERIC(10,2)で、浮動小数を避けるため文字列で持つ。
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Price       string    `gorm:"type:numeric(10,2);not null" json:"price"`
	Image       string    `gorm:"type:text" json:"image"`
	Category    string    `gorm:"type:varchar(100);not null" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	InStock     bool      `gorm:"not null;default:true" json:"inStock"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Product) TableName() string { return "products" }
