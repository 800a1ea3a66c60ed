package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConversionRate: versi rate "unit per koin" per material.
// Baris dengan effective_until NULL adalah rate yang sedang berlaku.
// Rate lama tidak pernah mengubah coins_earned yang sudah tercatat di ledger.
type ConversionRate struct {
	ConversionRateID uuid.UUID `gorm:"column:conversion_rate_id;type:uuid;primaryKey" json:"conversion_rate_id"`

	ConversionRateMaterialCode string `gorm:"column:conversion_rate_material_code;type:varchar(30);not null;index" json:"conversion_rate_material_code"`

	ConversionRateUnitsPerCoin int `gorm:"column:conversion_rate_units_per_coin;not null;check:conversion_rate_units_per_coin > 0" json:"conversion_rate_units_per_coin"`

	ConversionRateEffectiveFrom  time.Time  `gorm:"column:conversion_rate_effective_from;not null" json:"conversion_rate_effective_from"`
	ConversionRateEffectiveUntil *time.Time `gorm:"column:conversion_rate_effective_until;index" json:"conversion_rate_effective_until,omitempty"`

	ConversionRateCreatedAt time.Time `gorm:"column:conversion_rate_created_at;autoCreateTime" json:"conversion_rate_created_at"`
	ConversionRateUpdatedAt time.Time `gorm:"column:conversion_rate_updated_at;autoUpdateTime" json:"conversion_rate_updated_at"`
}

func (ConversionRate) TableName() string {
	return "conversion_rates"
}

func (r *ConversionRate) BeforeCreate(tx *gorm.DB) error {
	if r.ConversionRateID == uuid.Nil {
		r.ConversionRateID = uuid.New()
	}
	if r.ConversionRateEffectiveFrom.IsZero() {
		r.ConversionRateEffectiveFrom = time.Now()
	}
	return nil
}
