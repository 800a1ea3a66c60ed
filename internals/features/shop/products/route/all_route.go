package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/shop/products/controller"
)

// Katalog produk aktif untuk siswa/orang tua.
func ProductAllRoutes(public fiber.Router, db *gorm.DB) {
	h := &controller.ProductHandler{DB: db}

	public.Get("/products", h.List)
}
