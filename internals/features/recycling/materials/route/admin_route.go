package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/recycling/materials/controller"
)

func MaterialAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &controller.MaterialHandler{DB: db}

	// Group: /materials
	mat := admin.Group("/materials")
	mat.Get("/", h.List)      // 📄 Daftar jenis sampah
	mat.Post("/", h.Create)   // ➕ Tambah jenis sampah
	mat.Put("/:id", h.Update) // ✏️ Edit jenis sampah
}
