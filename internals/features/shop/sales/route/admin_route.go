package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/shop/sales/controller"
	"banksampahku_backend/internals/features/shop/sales/service"
)

func SaleAdminRoutes(admin fiber.Router, db *gorm.DB, svc *service.SaleService) {
	h := controller.NewSaleHandler(db, svc)

	// Group: /sales
	sales := admin.Group("/sales")
	sales.Get("/", h.List)         // 📄 Riwayat belanja
	sales.Post("/", h.Create)      // ➕ Catat belanja (debit koin, kurangi stok)
	sales.Delete("/:id", h.Delete) // ❌ Batalkan belanja (koin & stok kembali)
}
