// file: internals/features/recycling/exchanges/controller/exchange_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/recycling/exchanges/dto"
	"banksampahku_backend/internals/features/recycling/exchanges/model"
	"banksampahku_backend/internals/features/recycling/exchanges/service"
	helper "banksampahku_backend/internals/helpers"
	authMiddleware "banksampahku_backend/internals/middlewares/auth"
)

type ExchangeHandler struct {
	DB  *gorm.DB
	Svc *service.ExchangeService
}

// mapServiceError: error bisnis inti → status HTTP.
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidRate):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrExchangeNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInsufficientBalance):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

func teacherIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(authMiddleware.LocUserID).(string)
	return uuid.Parse(strings.TrimSpace(raw))
}

func buildOrderClause(p helper.Params) string {
	allowed := map[string]string{
		"created_at": "exchange_created_at",
		"quantity":   "exchange_quantity",
		"coins":      "exchange_coins_earned",
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
// List (GET /exchanges)
// Query filters (opsional): student_id, material_code, date_from, date_to
// -----------------------------------------
func (h *ExchangeHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.Exchange{})

	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("exchange_student_id = ?", id)
		}
	}
	if v := c.Query("material_code"); v != "" {
		q = q.Where("exchange_material_code = ?", v)
	}
	if v := c.Query("date_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("exchange_created_at >= ?", t)
		}
	}
	if v := c.Query("date_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("exchange_created_at <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Exchange
	if err := q.
		Order(buildOrderClause(p)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, dto.ToExchangeResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Get detail (GET /exchanges/:id)
// -----------------------------------------
func (h *ExchangeHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	ex, err := h.Svc.GetExchange(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToExchangeResponse(ex))
}

// -----------------------------------------
// Create (POST /exchanges) → catat setoran
// -----------------------------------------
func (h *ExchangeHandler) Create(c *fiber.Ctx) error {
	var in dto.ExchangeCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.ValidationError(c, err)
	}
	teacherID, err := teacherIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "user_id tidak valid")
	}

	res, err := h.Svc.RegisterExchange(c.UserContext(), service.RegisterInput{
		StudentID:    in.ExchangeStudentID,
		MaterialCode: in.ExchangeMaterialCode,
		Quantity:     in.ExchangeQuantity,
		TeacherID:    teacherID,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonCreated(c, "setoran tercatat", dto.ToRegisterResponse(res))
}

// -----------------------------------------
// Update (PUT /exchanges/:id) → edit dengan protokol reversal
// -----------------------------------------
func (h *ExchangeHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.ExchangeUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := h.Svc.EditExchange(c.UserContext(), id, service.EditInput{
		NewStudentID:    in.ExchangeStudentID,
		NewMaterialCode: in.ExchangeMaterialCode,
		NewQuantity:     in.ExchangeQuantity,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonUpdated(c, "setoran diperbarui", dto.ToEditResponse(res))
}

// -----------------------------------------
// Delete (DELETE /exchanges/:id)
// Response memuat ringkasan sebelum/sesudah untuk dialog konfirmasi.
// -----------------------------------------
func (h *ExchangeHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	sum, err := h.Svc.DeleteExchange(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonDeleted(c, "setoran dihapus", dto.ToDeleteSummaryResponse(sum))
}

// -----------------------------------------
// Preview delete (GET /exchanges/:id/delete-preview) — murni baca
// -----------------------------------------
func (h *ExchangeHandler) DeletePreview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	sum, err := h.Svc.PreviewDelete(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToDeleteSummaryResponse(sum))
}
