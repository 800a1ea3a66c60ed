// file: internals/features/shop/products/controller/product_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/shop/products/dto"
	"banksampahku_backend/internals/features/shop/products/model"
	helper "banksampahku_backend/internals/helpers"
)

type ProductHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /products)
// -----------------------------------------
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.Product{})
	if c.Query("include_inactive") != "true" {
		q = q.Where("product_is_active = ?", true)
	}
	var list []model.Product
	if err := q.Order("product_name ASC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToProductResponses(list))
}

// -----------------------------------------
// Create (POST /products)
// -----------------------------------------
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductCreateDTO
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
	return helper.JsonCreated(c, "produk ditambahkan", dto.ToProductResponse(m))
}

// -----------------------------------------
// Update (PATCH /products/:id)
// -----------------------------------------
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.ProductUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.ValidationError(c, err)
	}
	var m model.Product
	if err := h.DB.First(&m, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "produk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplyProductUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "produk diperbarui", dto.ToProductResponse(m))
}

// -----------------------------------------
// Delete (DELETE /products/:id) — soft delete
// -----------------------------------------
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Product
	if err := h.DB.First(&m, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "produk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "produk dihapus", dto.ToProductResponse(m))
}
