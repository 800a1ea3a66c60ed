// file: internals/features/recycling/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"banksampahku_backend/internals/features/recycling/students/model"
)

////////////////////////////////////////////////////////////////////////////////
// STUDENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type StudentCreateDTO struct {
	StudentName   string `json:"student_name" validate:"required,max=100"`
	StudentClass  string `json:"student_class" validate:"max=30"`
	StudentGender string `json:"student_gender" validate:"omitempty,oneof=laki-laki perempuan"`
}

// Update (partial) — agregat koin TIDAK bisa diubah lewat sini; itu wewenang
// service setoran/penjualan/rekalkulasi.
type StudentUpdateDTO struct {
	StudentName   *string `json:"student_name,omitempty" validate:"omitempty,max=100"`
	StudentClass  *string `json:"student_class,omitempty" validate:"omitempty,max=30"`
	StudentGender *string `json:"student_gender,omitempty" validate:"omitempty,oneof=laki-laki perempuan"`
}

type StudentResponse struct {
	StudentID            uuid.UUID      `json:"student_id"`
	StudentName          string         `json:"student_name"`
	StudentClass         string         `json:"student_class"`
	StudentGender        string         `json:"student_gender"`
	StudentCoinBalance   int            `json:"student_coin_balance"`
	StudentLifetimeCoins int            `json:"student_lifetime_coins"`
	StudentPendingUnits  map[string]int `json:"student_pending_units"`
	StudentLifetimeUnits map[string]int `json:"student_lifetime_units"`
	StudentCreatedAt     time.Time      `json:"student_created_at"`
	StudentUpdatedAt     time.Time      `json:"student_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func (in StudentCreateDTO) ToModel() model.Student {
	return model.Student{
		StudentName:   in.StudentName,
		StudentClass:  in.StudentClass,
		StudentGender: in.StudentGender,
	}
}

func ApplyStudentUpdate(m *model.Student, in StudentUpdateDTO) {
	if in.StudentName != nil {
		m.StudentName = *in.StudentName
	}
	if in.StudentClass != nil {
		m.StudentClass = *in.StudentClass
	}
	if in.StudentGender != nil {
		m.StudentGender = *in.StudentGender
	}
}

func ToStudentResponse(m model.Student) StudentResponse {
	return StudentResponse{
		StudentID:            m.StudentID,
		StudentName:          m.StudentName,
		StudentClass:         m.StudentClass,
		StudentGender:        m.StudentGender,
		StudentCoinBalance:   m.StudentCoinBalance,
		StudentLifetimeCoins: m.StudentLifetimeCoins,
		StudentPendingUnits:  m.PendingUnits(),
		StudentLifetimeUnits: m.LifetimeUnits(),
		StudentCreatedAt:     m.StudentCreatedAt,
		StudentUpdatedAt:     m.StudentUpdatedAt,
	}
}

func ToStudentResponses(list []model.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToStudentResponse(m))
	}
	return out
}
