// file: internals/features/recycling/rates/controller/conversion_rate_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/recycling/rates/dto"
	"banksampahku_backend/internals/features/recycling/rates/model"
	"banksampahku_backend/internals/features/recycling/rates/service"
	helper "banksampahku_backend/internals/helpers"
)

type ConversionRateHandler struct {
	DB       *gorm.DB
	Provider *service.RateProvider
}

// -----------------------------------------
// Current (GET /conversion-rates) — peta material_code → unit per koin
// -----------------------------------------
func (h *ConversionRateHandler) Current(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", h.Provider.GetRates())
}

// -----------------------------------------
// History (GET /conversion-rates/history?material_code=...)
// -----------------------------------------
func (h *ConversionRateHandler) History(c *fiber.Ctx) error {
	q := h.DB.Model(&model.ConversionRate{})
	if v := c.Query("material_code"); v != "" {
		q = q.Where("conversion_rate_material_code = ?", v)
	}
	var list []model.ConversionRate
	if err := q.Order("conversion_rate_effective_from DESC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToConversionRateResponses(list))
}

// -----------------------------------------
// Set (POST /conversion-rates) — tutup rate lama, buka rate baru.
// coins_earned yang sudah tercatat TIDAK dihitung ulang.
// -----------------------------------------
func (h *ConversionRateHandler) Set(c *fiber.Ctx) error {
	var in dto.ConversionRateSetDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var created model.ConversionRate
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		// tutup rate yang masih terbuka untuk material ini
		if err := tx.Model(&model.ConversionRate{}).
			Where("conversion_rate_material_code = ? AND conversion_rate_effective_until IS NULL",
				in.ConversionRateMaterialCode).
			Update("conversion_rate_effective_until", now).Error; err != nil {
			return err
		}
		created = model.ConversionRate{
			ConversionRateMaterialCode:  in.ConversionRateMaterialCode,
			ConversionRateUnitsPerCoin:  in.ConversionRateUnitsPerCoin,
			ConversionRateEffectiveFrom: now,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	h.Provider.Invalidate()
	return helper.JsonCreated(c, "rate baru berlaku", dto.ToConversionRateResponse(created))
}
