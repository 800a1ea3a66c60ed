// file: internals/features/recycling/students/controller/student_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	exchangeService "banksampahku_backend/internals/features/recycling/exchanges/service"
	"banksampahku_backend/internals/features/recycling/students/dto"
	"banksampahku_backend/internals/features/recycling/students/model"
	helper "banksampahku_backend/internals/helpers"
)

type StudentHandler struct {
	DB  *gorm.DB
	Svc *exchangeService.ExchangeService
}

func buildOrderClause(p helper.Params) string {
	allowed := map[string]string{
		"created_at": "student_created_at",
		"name":       "student_name",
		"class":      "student_class",
		"balance":    "student_coin_balance",
		"coins":      "student_lifetime_coins",
	}
	col, ok := allowed[strings.ToLower(p.SortBy)]
	if !ok {
		col = allowed["created_at"]
	}
	dir := "DESC"
	if strings.ToLower(p.SortOrder) == "asc" {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s", col, dir)
}

// -----------------------------------------
// List (GET /students)
// Query filters (opsional): class, q (nama), sort_by (name|class|balance|coins)
// -----------------------------------------
func (h *StudentHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.Student{})

	if v := c.Query("class"); v != "" {
		q = q.Where("student_class = ?", v)
	}
	if v := c.Query("q"); v != "" {
		q = q.Where("LOWER(student_name) LIKE ?", "%"+strings.ToLower(v)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Student
	if err := q.
		Order(buildOrderClause(p)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, dto.ToStudentResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Get detail (GET /students/:id)
// -----------------------------------------
func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Create (POST /students)
// -----------------------------------------
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.ValidationError(c, err)
	}
	m := in.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "siswa terdaftar", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Update (PATCH /students/:id) — hanya identitas, bukan agregat koin
// -----------------------------------------
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.ValidationError(c, err)
	}
	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplyStudentUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "siswa diperbarui", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Delete (DELETE /students/:id) — soft delete
// -----------------------------------------
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "siswa dihapus", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Recalculate (POST /students/:id/recalculate) — alat perbaikan drift
// -----------------------------------------
func (h *StudentHandler) Recalculate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res, err := h.Svc.Recalculate(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, exchangeService.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	msg := "agregat sudah konsisten"
	if res.Corrected {
		msg = "agregat dikoreksi dari ledger"
	}
	return helper.JsonOK(c, msg, fiber.Map{
		"corrected": res.Corrected,
		"delta":     res.Delta,
		"student":   dto.ToStudentResponse(res.Student),
	})
}
