package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sethvargo/go-retry"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"banksampahku_backend/internals/configs"
	exchangeModel "banksampahku_backend/internals/features/recycling/exchanges/model"
	materialModel "banksampahku_backend/internals/features/recycling/materials/model"
	rateModel "banksampahku_backend/internals/features/recycling/rates/model"
	studentModel "banksampahku_backend/internals/features/recycling/students/model"
	productModel "banksampahku_backend/internals/features/shop/products/model"
	saleModel "banksampahku_backend/internals/features/shop/sales/model"
	userModel "banksampahku_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=banksampahku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db

	// tunggu DB benar-benar siap (cold start Supabase/Railway bisa lambat)
	if err := waitForDB(); err != nil {
		log.Fatalf("❌ DB tidak siap: %v", err)
	}
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate semua tabel fitur bank sampah.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.User{},
		&studentModel.Student{},
		&materialModel.Material{},
		&rateModel.ConversionRate{},
		&exchangeModel.Exchange{},
		&productModel.Product{},
		&saleModel.Sale{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}

func waitForDB() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	b := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := ping(); err != nil {
			log.Printf("⏳ ping DB gagal, coba lagi: %v", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
