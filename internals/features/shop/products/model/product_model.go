package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;primaryKey" json:"product_id"`

	ProductName       string `gorm:"column:product_name;type:varchar(100);not null" json:"product_name"`
	ProductPriceCoins int    `gorm:"column:product_price_coins;not null;check:product_price_coins > 0" json:"product_price_coins"`
	ProductStock      int    `gorm:"column:product_stock;not null;default:0;check:product_stock >= 0" json:"product_stock"`
	ProductIsActive   bool   `gorm:"column:product_is_active;not null;default:true" json:"product_is_active"`

	ProductCreatedAt time.Time      `gorm:"column:product_created_at;autoCreateTime" json:"product_created_at"`
	ProductUpdatedAt time.Time      `gorm:"column:product_updated_at;autoUpdateTime" json:"product_updated_at"`
	ProductDeletedAt gorm.DeletedAt `gorm:"column:product_deleted_at;index" json:"product_deleted_at,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ProductID == uuid.Nil {
		p.ProductID = uuid.New()
	}
	return nil
}
