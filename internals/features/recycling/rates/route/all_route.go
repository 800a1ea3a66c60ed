package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/recycling/rates/controller"
	"banksampahku_backend/internals/features/recycling/rates/service"
)

// Tarif konversi boleh dilihat siapa saja (dipajang di mading sekolah).
func ConversionRateAllRoutes(public fiber.Router, db *gorm.DB, provider *service.RateProvider) {
	h := &controller.ConversionRateHandler{DB: db, Provider: provider}

	public.Get("/conversion-rates", h.Current)
}
