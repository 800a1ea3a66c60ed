// file: internals/features/recycling/exchanges/dto/exchange_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"banksampahku_backend/internals/features/recycling/exchanges/model"
	"banksampahku_backend/internals/features/recycling/exchanges/service"
	studentDTO "banksampahku_backend/internals/features/recycling/students/dto"
)

////////////////////////////////////////////////////////////////////////////////
// EXCHANGES — DTO
////////////////////////////////////////////////////////////////////////////////

type ExchangeCreateDTO struct {
	ExchangeStudentID    uuid.UUID `json:"exchange_student_id" validate:"required"`
	ExchangeMaterialCode string    `json:"exchange_material_code" validate:"required"`
	ExchangeQuantity     int       `json:"exchange_quantity" validate:"required,min=1"`
}

// Update (partial): field nil tidak diubah.
type ExchangeUpdateDTO struct {
	ExchangeStudentID    *uuid.UUID `json:"exchange_student_id,omitempty"`
	ExchangeMaterialCode *string    `json:"exchange_material_code,omitempty"`
	ExchangeQuantity     *int       `json:"exchange_quantity,omitempty" validate:"omitempty,min=1"`
}

type ExchangeResponse struct {
	ExchangeID           uuid.UUID `json:"exchange_id"`
	ExchangeStudentID    uuid.UUID `json:"exchange_student_id"`
	ExchangeMaterialCode string    `json:"exchange_material_code"`
	ExchangeQuantity     int       `json:"exchange_quantity"`
	ExchangeCoinsEarned  int       `json:"exchange_coins_earned"`
	ExchangeTeacherID    uuid.UUID `json:"exchange_teacher_id"`
	ExchangeCreatedAt    time.Time `json:"exchange_created_at"`
	ExchangeUpdatedAt    time.Time `json:"exchange_updated_at"`
}

type RegisterExchangeResponse struct {
	Exchange ExchangeResponse           `json:"exchange"`
	Student  studentDTO.StudentResponse `json:"student"`
}

type EditExchangeResponse struct {
	Exchange  ExchangeResponse            `json:"exchange"`
	Student   studentDTO.StudentResponse  `json:"student"`
	MovedFrom *studentDTO.StudentResponse `json:"moved_from,omitempty"`
}

type DeleteSummaryResponse struct {
	Exchange ExchangeResponse           `json:"exchange"`
	Before   service.StudentSnapshot    `json:"before"`
	After    service.StudentSnapshot    `json:"after"`
	Student  studentDTO.StudentResponse `json:"student"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func ToExchangeResponse(m model.Exchange) ExchangeResponse {
	return ExchangeResponse{
		ExchangeID:           m.ExchangeID,
		ExchangeStudentID:    m.ExchangeStudentID,
		ExchangeMaterialCode: m.ExchangeMaterialCode,
		ExchangeQuantity:     m.ExchangeQuantity,
		ExchangeCoinsEarned:  m.ExchangeCoinsEarned,
		ExchangeTeacherID:    m.ExchangeTeacherID,
		ExchangeCreatedAt:    m.ExchangeCreatedAt,
		ExchangeUpdatedAt:    m.ExchangeUpdatedAt,
	}
}

func ToExchangeResponses(list []model.Exchange) []ExchangeResponse {
	out := make([]ExchangeResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToExchangeResponse(m))
	}
	return out
}

func ToRegisterResponse(r *service.RegisterResult) RegisterExchangeResponse {
	return RegisterExchangeResponse{
		Exchange: ToExchangeResponse(r.Exchange),
		Student:  studentDTO.ToStudentResponse(r.Student),
	}
}

func ToEditResponse(r *service.EditResult) EditExchangeResponse {
	resp := EditExchangeResponse{
		Exchange: ToExchangeResponse(r.Exchange),
		Student:  studentDTO.ToStudentResponse(r.Student),
	}
	if r.Moved != nil {
		moved := studentDTO.ToStudentResponse(*r.Moved)
		resp.MovedFrom = &moved
	}
	return resp
}

func ToDeleteSummaryResponse(s *service.DeleteSummary) DeleteSummaryResponse {
	return DeleteSummaryResponse{
		Exchange: ToExchangeResponse(s.Exchange),
		Before:   s.Before,
		After:    s.After,
		Student:  studentDTO.ToStudentResponse(s.Student),
	}
}
