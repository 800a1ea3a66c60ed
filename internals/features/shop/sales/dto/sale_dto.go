// file: internals/features/shop/sales/dto/sale_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	studentDTO "banksampahku_backend/internals/features/recycling/students/dto"
	"banksampahku_backend/internals/features/shop/sales/model"
	"banksampahku_backend/internals/features/shop/sales/service"
)

type SaleCreateDTO struct {
	SaleStudentID uuid.UUID `json:"sale_student_id" validate:"required"`
	SaleProductID uuid.UUID `json:"sale_product_id" validate:"required"`
	SaleQuantity  int       `json:"sale_quantity" validate:"required,min=1"`
}

type SaleResponse struct {
	SaleID         uuid.UUID `json:"sale_id"`
	SaleStudentID  uuid.UUID `json:"sale_student_id"`
	SaleProductID  uuid.UUID `json:"sale_product_id"`
	SaleQuantity   int       `json:"sale_quantity"`
	SaleTotalCoins int       `json:"sale_total_coins"`
	SaleTeacherID  uuid.UUID `json:"sale_teacher_id"`
	SaleCreatedAt  time.Time `json:"sale_created_at"`
}

type SaleWithStudentResponse struct {
	Sale    SaleResponse               `json:"sale"`
	Student studentDTO.StudentResponse `json:"student"`
}

func ToSaleResponse(m model.Sale) SaleResponse {
	return SaleResponse{
		SaleID:         m.SaleID,
		SaleStudentID:  m.SaleStudentID,
		SaleProductID:  m.SaleProductID,
		SaleQuantity:   m.SaleQuantity,
		SaleTotalCoins: m.SaleTotalCoins,
		SaleTeacherID:  m.SaleTeacherID,
		SaleCreatedAt:  m.SaleCreatedAt,
	}
}

func ToSaleResponses(list []model.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToSaleResponse(m))
	}
	return out
}

func ToSaleWithStudentResponse(r *service.SaleResult) SaleWithStudentResponse {
	return SaleWithStudentResponse{
		Sale:    ToSaleResponse(r.Sale),
		Student: studentDTO.ToStudentResponse(r.Student),
	}
}
