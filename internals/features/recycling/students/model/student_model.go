package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Student struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`

	StudentName   string `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentClass  string `gorm:"column:student_class;type:varchar(30)" json:"student_class"`
	StudentGender string `gorm:"column:student_gender;type:varchar(10)" json:"student_gender"` // laki-laki | perempuan, hanya untuk teks tampilan

	// Saldo koin berjalan: lifetime earned dikurangi belanja di toko sekolah.
	StudentCoinBalance int `gorm:"column:student_coin_balance;not null;default:0" json:"student_coin_balance"`

	// Total koin yang pernah diberikan lewat setoran (tidak berkurang saat belanja).
	StudentLifetimeCoins int `gorm:"column:student_lifetime_coins;not null;default:0" json:"student_lifetime_coins"`

	// Sisa unit per material yang belum cukup jadi satu koin, key = material_code.
	StudentPendingUnits datatypes.JSONType[map[string]int] `gorm:"column:student_pending_units" json:"student_pending_units"`

	// Total unit per material yang pernah disetor, key = material_code.
	StudentLifetimeUnits datatypes.JSONType[map[string]int] `gorm:"column:student_lifetime_units" json:"student_lifetime_units"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (Student) TableName() string {
	return "students"
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.StudentID == uuid.Nil {
		s.StudentID = uuid.New()
	}
	return nil
}

// PendingUnits: salinan nil-safe peta sisa unit.
func (s *Student) PendingUnits() map[string]int {
	return copyUnitMap(s.StudentPendingUnits.Data())
}

func (s *Student) SetPendingUnits(m map[string]int) {
	s.StudentPendingUnits = datatypes.NewJSONType(compactUnitMap(m))
}

// LifetimeUnits: salinan nil-safe peta total unit per material.
func (s *Student) LifetimeUnits() map[string]int {
	return copyUnitMap(s.StudentLifetimeUnits.Data())
}

func (s *Student) SetLifetimeUnits(m map[string]int) {
	s.StudentLifetimeUnits = datatypes.NewJSONType(compactUnitMap(m))
}

func copyUnitMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// compactUnitMap membuang entri bernilai nol supaya JSON di DB tetap ringkas.
func compactUnitMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		if v != 0 {
			out[k] = v
		}
	}
	return out
}
