package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exchange: satu setoran material oleh siswa, sudah dikonversi ke koin saat dicatat.
// Baris ini adalah ledger: sumber kebenaran untuk rekalkulasi agregat siswa.
type Exchange struct {
	ExchangeID uuid.UUID `gorm:"column:exchange_id;type:uuid;primaryKey" json:"exchange_id"`

	ExchangeStudentID    uuid.UUID `gorm:"column:exchange_student_id;type:uuid;not null;index" json:"exchange_student_id"`
	ExchangeMaterialCode string    `gorm:"column:exchange_material_code;type:varchar(30);not null;index" json:"exchange_material_code"`

	ExchangeQuantity int `gorm:"column:exchange_quantity;not null;check:exchange_quantity > 0" json:"exchange_quantity"`

	// Koin yang diberikan saat pencatatan, dihitung dengan rate saat itu dan DISIMPAN.
	// Tidak pernah dihitung ulang saat rate berubah.
	ExchangeCoinsEarned int `gorm:"column:exchange_coins_earned;not null;check:exchange_coins_earned >= 0" json:"exchange_coins_earned"`

	ExchangeTeacherID uuid.UUID `gorm:"column:exchange_teacher_id;type:uuid;not null" json:"exchange_teacher_id"`

	ExchangeCreatedAt time.Time      `gorm:"column:exchange_created_at;index" json:"exchange_created_at"`
	ExchangeUpdatedAt time.Time      `gorm:"column:exchange_updated_at;autoUpdateTime" json:"exchange_updated_at"`
	ExchangeDeletedAt gorm.DeletedAt `gorm:"column:exchange_deleted_at;index" json:"exchange_deleted_at,omitempty"`
}

func (Exchange) TableName() string {
	return "exchanges"
}

func (e *Exchange) BeforeCreate(tx *gorm.DB) error {
	if e.ExchangeID == uuid.Nil {
		e.ExchangeID = uuid.New()
	}
	if e.ExchangeCreatedAt.IsZero() {
		e.ExchangeCreatedAt = time.Now()
	}
	return nil
}
