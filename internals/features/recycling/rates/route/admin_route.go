package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/recycling/rates/controller"
	"banksampahku_backend/internals/features/recycling/rates/service"
)

func ConversionRateAdminRoutes(admin fiber.Router, db *gorm.DB, provider *service.RateProvider) {
	h := &controller.ConversionRateHandler{DB: db, Provider: provider}

	// Group: /conversion-rates
	rates := admin.Group("/conversion-rates")
	rates.Get("/", h.Current)        // 📄 Tarif berlaku sekarang
	rates.Get("/history", h.History) // 🕘 Riwayat tarif
	rates.Post("/", h.Set)           // ✏️ Ubah tarif (tutup lama, buka baru)
}
