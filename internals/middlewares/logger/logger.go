package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"banksampahku_backend/internals/configs"
)

// LoggerMiddleware mencatat semua request. Zona waktu mengikuti APP_TIMEZONE
// supaya log cocok dengan jam operasional sekolah; reqid diisi middleware
// request-id di main.go.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   configs.GetEnv("APP_TIMEZONE", "Asia/Jakarta"),
		Format:     "[${time}] ${locals:reqid} ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
