// file: internals/features/recycling/materials/controller/material_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/recycling/materials/dto"
	"banksampahku_backend/internals/features/recycling/materials/model"
	helper "banksampahku_backend/internals/helpers"
)

type MaterialHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /materials) — material aktif untuk dropdown pencatatan
// -----------------------------------------
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.Material{})
	if c.Query("include_inactive") != "true" {
		q = q.Where("material_is_active = ?", true)
	}
	var list []model.Material
	if err := q.Order("material_code ASC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToMaterialResponses(list))
}

// -----------------------------------------
// Create (POST /materials)
// -----------------------------------------
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.MaterialCreateDTO
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
	return helper.JsonCreated(c, "material ditambahkan", dto.ToMaterialResponse(m))
}

// -----------------------------------------
// Update (PATCH /materials/:id)
// -----------------------------------------
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.MaterialUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.ValidationError(c, err)
	}
	var m model.Material
	if err := h.DB.First(&m, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "material tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplyMaterialUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "material diperbarui", dto.ToMaterialResponse(m))
}
