package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/recycling/students/controller"

	exchangeService "banksampahku_backend/internals/features/recycling/exchanges/service"
)

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB, svc *exchangeService.ExchangeService) {
	h := &controller.StudentHandler{DB: db, Svc: svc}

	// Group: /students
	st := admin.Group("/students")
	st.Get("/", h.List)                        // 📄 Daftar siswa
	st.Get("/:id", h.GetByID)                  // 🔍 Detail siswa + saldo
	st.Post("/", h.Create)                     // ➕ Daftarkan siswa
	st.Put("/:id", h.Update)                   // ✏️ Edit data siswa
	st.Delete("/:id", h.Delete)                // ❌ Hapus siswa
	st.Post("/:id/recalculate", h.Recalculate) // 🔄 Hitung ulang agregat dari ledger
}
