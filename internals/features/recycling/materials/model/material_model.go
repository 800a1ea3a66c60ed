package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Material struct {
	MaterialID uuid.UUID `gorm:"column:material_id;type:uuid;primaryKey" json:"material_id"`

	MaterialCode string `gorm:"column:material_code;type:varchar(30);not null;unique" json:"material_code"`
	MaterialName string `gorm:"column:material_name;type:varchar(100);not null" json:"material_name"`
	MaterialUnit string `gorm:"column:material_unit;type:varchar(20);not null" json:"material_unit"` // pcs | liter | kg

	// Nama alternatif untuk pencarian (mis. "tutup botol", "dop").
	MaterialAliases pq.StringArray `gorm:"column:material_aliases;type:text[]" json:"material_aliases,omitempty"`

	MaterialIsActive bool `gorm:"column:material_is_active;not null;default:true" json:"material_is_active"`

	MaterialCreatedAt time.Time      `gorm:"column:material_created_at;autoCreateTime" json:"material_created_at"`
	MaterialUpdatedAt time.Time      `gorm:"column:material_updated_at;autoUpdateTime" json:"material_updated_at"`
	MaterialDeletedAt gorm.DeletedAt `gorm:"column:material_deleted_at;index" json:"material_deleted_at,omitempty"`
}

func (Material) TableName() string {
	return "materials"
}

func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.MaterialID == uuid.Nil {
		m.MaterialID = uuid.New()
	}
	return nil
}
