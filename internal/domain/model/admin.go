package model

import "time"

// 管理者アカウント。roleは常にADMIN固定。
type Admin struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Admin) TableName() string { return "admins" }

func (a *Admin) AccountID() int64     { return a.ID }
func (a *Admin) AccountEmail() string { return a.Email }
func (a *Admin) PasswordHash() string { return a.Password }
func (a *Admin) AccountRole() Role    { return RoleAdmin }
