package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"banksampahku_backend/internals/constants"
	"banksampahku_backend/internals/features/users/user/controller"
	authMiddleware "banksampahku_backend/internals/middlewares/auth"
)

// AuthRoutes: login dipasang langsung di app (tanpa JWT).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	h := controller.NewUserHandler(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", h.Login) // 🔑 Login guru/admin
}

// UserRoutes: manajemen akun, butuh JWT (group /api/a).
func UserRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.NewUserHandler(db)

	users := admin.Group("/users")
	users.Get("/me", h.Me) // 🙋 Profil sendiri
	users.Get("/", authMiddleware.RequireRole(constants.RoleAdmin), h.List)    // 📄 Semua akun (admin)
	users.Post("/", authMiddleware.RequireRole(constants.RoleAdmin), h.Create) // ➕ Tambah akun (admin)
}
