package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/recycling/exchanges/controller"
	"banksampahku_backend/internals/features/recycling/exchanges/service"
)

func ExchangeAdminRoutes(admin fiber.Router, db *gorm.DB, svc *service.ExchangeService) {
	h := &controller.ExchangeHandler{DB: db, Svc: svc}

	// Group: /exchanges
	ex := admin.Group("/exchanges")
	ex.Get("/", h.List)                            // 📄 Daftar setoran (filter + pagination)
	ex.Get("/:id", h.GetByID)                      // 🔍 Detail setoran
	ex.Get("/:id/delete-preview", h.DeletePreview) // 👀 Simulasi hapus
	ex.Post("/", h.Create)                         // ➕ Catat setoran
	ex.Put("/:id", h.Update)                       // ✏️ Koreksi setoran
	ex.Delete("/:id", h.Delete)                    // ❌ Batalkan setoran
}
