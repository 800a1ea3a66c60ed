package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User: akun guru/admin yang mencatat setoran dan penjualan. Siswa bukan akun login.
type User struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`

	UserName     string `gorm:"column:user_name;type:varchar(50);not null;unique" json:"user_name"`
	UserFullName string `gorm:"column:user_full_name;type:varchar(100);not null" json:"user_full_name"`
	UserPassword string `gorm:"column:user_password;type:varchar(100);not null" json:"-"`
	UserRole     string `gorm:"column:user_role;type:varchar(20);not null;default:'teacher'" json:"user_role"` // teacher | admin

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
