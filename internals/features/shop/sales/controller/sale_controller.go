// file: internals/features/shop/sales/controller/sale_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/shop/sales/dto"
	"banksampahku_backend/internals/features/shop/sales/model"
	"banksampahku_backend/internals/features/shop/sales/service"
	helper "banksampahku_backend/internals/helpers"
	authMiddleware "banksampahku_backend/internals/middlewares/auth"
)

type SaleHandler struct {
	DB  *gorm.DB
	Svc *service.SaleService
}

func NewSaleHandler(db *gorm.DB, svc *service.SaleService) *SaleHandler {
	return &SaleHandler{DB: db, Svc: svc}
}

func mapSaleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidSaleQty):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrSaleNotFound),
		errors.Is(err, service.ErrSaleStudentMissing):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInsufficientCoins),
		errors.Is(err, service.ErrInsufficientStock):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

func saleTeacherID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(authMiddleware.LocUserID).(string)
	return uuid.Parse(strings.TrimSpace(raw))
}

// -----------------------------------------
// List (GET /sales)
// -----------------------------------------
func (h *SaleHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.Sale{})
	if raw := c.Query("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("sale_student_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order := "sale_created_at DESC"
	if strings.EqualFold(p.SortOrder, "asc") {
		order = "sale_created_at ASC"
	}

	var list []model.Sale
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, dto.ToSaleResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Create (POST /sales)
// -----------------------------------------
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	teacherID, err := saleTeacherID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "user_id tidak valid")
	}

	res, err := h.Svc.CreateSale(c.UserContext(), service.CreateSaleInput{
		StudentID: in.SaleStudentID,
		ProductID: in.SaleProductID,
		Quantity:  in.SaleQuantity,
		TeacherID: teacherID,
	})
	if err != nil {
		return mapSaleError(c, err)
	}
	return helper.JsonCreated(c, "belanja dicatat", dto.ToSaleWithStudentResponse(res))
}

// -----------------------------------------
// Delete (DELETE /sales/:id) — pembatalan, saldo & stok kembali
// -----------------------------------------
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res, err := h.Svc.DeleteSale(c.UserContext(), id)
	if err != nil {
		return mapSaleError(c, err)
	}
	return helper.JsonDeleted(c, "belanja dibatalkan", dto.ToSaleWithStudentResponse(res))
}
