package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale: belanja di toko sekolah, mendebit saldo koin siswa.
// Bukan bagian ledger setoran; rekalkulasi tidak menyentuh baris ini.
type Sale struct {
	SaleID uuid.UUID `gorm:"column:sale_id;type:uuid;primaryKey" json:"sale_id"`

	SaleStudentID uuid.UUID `gorm:"column:sale_student_id;type:uuid;not null;index" json:"sale_student_id"`
	SaleProductID uuid.UUID `gorm:"column:sale_product_id;type:uuid;not null" json:"sale_product_id"`

	SaleQuantity   int `gorm:"column:sale_quantity;not null;check:sale_quantity > 0" json:"sale_quantity"`
	SaleTotalCoins int `gorm:"column:sale_total_coins;not null;check:sale_total_coins > 0" json:"sale_total_coins"`

	SaleTeacherID uuid.UUID `gorm:"column:sale_teacher_id;type:uuid;not null" json:"sale_teacher_id"`

	SaleCreatedAt time.Time      `gorm:"column:sale_created_at;autoCreateTime" json:"sale_created_at"`
	SaleUpdatedAt time.Time      `gorm:"column:sale_updated_at;autoUpdateTime" json:"sale_updated_at"`
	SaleDeletedAt gorm.DeletedAt `gorm:"column:sale_deleted_at;index" json:"sale_deleted_at,omitempty"`
}

func (Sale) TableName() string {
	return "sales"
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.SaleID == uuid.Nil {
		s.SaleID = uuid.New()
	}
	return nil
}
