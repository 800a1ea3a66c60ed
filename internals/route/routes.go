// file: internals/route/routes.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	exchangeRoute "banksampahku_backend/internals/features/recycling/exchanges/route"
	exchangeService "banksampahku_backend/internals/features/recycling/exchanges/service"
	materialRoute "banksampahku_backend/internals/features/recycling/materials/route"
	rateRoute "banksampahku_backend/internals/features/recycling/rates/route"
	rateService "banksampahku_backend/internals/features/recycling/rates/service"
	studentRoute "banksampahku_backend/internals/features/recycling/students/route"
	productRoute "banksampahku_backend/internals/features/shop/products/route"
	saleRoute "banksampahku_backend/internals/features/shop/sales/route"
	saleService "banksampahku_backend/internals/features/shop/sales/service"
	userRoute "banksampahku_backend/internals/features/users/user/route"
	authMiddleware "banksampahku_backend/internals/middlewares/auth"
)

var startTime time.Time

const rateCacheTTL = 5 * time.Minute

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// Service dibangun sekali di sini: lock siswa dipakai bersama oleh
	// setoran dan penjualan supaya saldo tidak balapan.
	locks := exchangeService.NewStudentLocks()
	rates := rateService.NewRateProvider(db, rateCacheTTL)
	exchanges := exchangeService.NewExchangeService(db, rates, locks)
	sales := saleService.NewSaleService(db, locks)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	rateRoute.ConversionRateAllRoutes(public, db, rates)
	productRoute.ProductAllRoutes(public, db)

	// ===================== ADMIN (guru/admin, JWT) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	userRoute.UserRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db, exchanges)
	exchangeRoute.ExchangeAdminRoutes(admin, db, exchanges)
	materialRoute.MaterialAdminRoutes(admin, db)
	rateRoute.ConversionRateAdminRoutes(admin, db, rates)
	productRoute.ProductAdminRoutes(admin, db)
	saleRoute.SaleAdminRoutes(admin, db, sales)

	// ===================== OPS =====================
	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		status := "ok"
		if err != nil || sqlDB.Ping() != nil {
			status = "degraded"
		}
		return c.JSON(fiber.Map{
			"status": status,
			"uptime": time.Since(startTime).String(),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
