package model

// 注文明細。Priceは注文時点の商品価格のスナップショットで、
// 後から商品価格が変わっても追随しない。
// productsへのFKはRESTRICTなので、明細から参照されている商品は消せない。
type OrderItem struct {
	ID        int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64    `gorm:"column:order_ref_id;not null;index" json:"order_id"`
	Order     *Order   `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ProductID int64    `gorm:"not null;index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity  int64    `gorm:"not null" json:"quantity"`
	Price     string   `gorm:"type:numeric(10,2);not null" json:"price"`
}

func (OrderItem) TableName() string { return "order_items" }
