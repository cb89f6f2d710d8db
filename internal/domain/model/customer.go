package model

import "time"

// 顧客アカウント。会員登録またはゲスト注文の初回で作られる。
type Customer struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string     `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName  string     `gorm:"type:varchar(255);not null" json:"last_name"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone     string     `gorm:"type:varchar(50)" json:"phone"`
	Address   string     `gorm:"type:text" json:"address"`
	City      string     `gorm:"type:varchar(100)" json:"city"`
	ZipCode   string     `gorm:"type:varchar(20)" json:"zip_code"`
	Password  string     `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) AccountID() int64     { return c.ID }
func (c *Customer) AccountEmail() string { return c.Email }
func (c *Customer) PasswordHash() string { return c.Password }
func (c *Customer) AccountRole() Role    { return RoleCustomer }
