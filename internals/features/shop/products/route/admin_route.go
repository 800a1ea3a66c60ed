package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/shop/products/controller"
)

func ProductAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &controller.ProductHandler{DB: db}

	// Group: /products
	prod := admin.Group("/products")
	prod.Get("/", h.List)         // 📄 Katalog produk (termasuk nonaktif via query)
	prod.Post("/", h.Create)      // ➕ Tambah produk
	prod.Put("/:id", h.Update)    // ✏️ Edit produk
	prod.Delete("/:id", h.Delete) // ❌ Nonaktifkan produk
}
