// file: internals/seeds/runner.go
package seeds

import (
	"log"
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"banksampahku_backend/internals/configs"
	"banksampahku_backend/internals/constants"
	materialModel "banksampahku_backend/internals/features/recycling/materials/model"
	rateModel "banksampahku_backend/internals/features/recycling/rates/model"
	userModel "banksampahku_backend/internals/features/users/user/model"
)

// RunAllSeeds: data awal supaya bank sampah langsung bisa dipakai.
// Semua seed idempoten (cek dulu, baru insert).
func RunAllSeeds(db *gorm.DB) {
	seedMaterials(db)
	seedConversionRates(db)
	seedAdminUser(db)
}

func seedMaterials(db *gorm.DB) {
	defaults := []materialModel.Material{
		{
			MaterialCode:    constants.MaterialCaps,
			MaterialName:    "Tutup Botol Plastik",
			MaterialUnit:    "pcs",
			MaterialAliases: pq.StringArray{"tutup", "tutup botol", "bottle caps"},
		},
		{
			MaterialCode:    constants.MaterialCans,
			MaterialName:    "Kaleng Minuman",
			MaterialUnit:    "pcs",
			MaterialAliases: pq.StringArray{"kaleng", "cans"},
		},
		{
			MaterialCode:    constants.MaterialOil,
			MaterialName:    "Minyak Jelantah",
			MaterialUnit:    "liter",
			MaterialAliases: pq.StringArray{"minyak", "jelantah", "used cooking oil"},
		},
	}

	for _, m := range defaults {
		var count int64
		db.Model(&materialModel.Material{}).
			Where("material_code = ?", m.MaterialCode).
			Count(&count)
		if count > 0 {
			continue
		}
		m.MaterialIsActive = true
		if err := db.Create(&m).Error; err != nil {
			log.Printf("[SEED] gagal seed material %s: %v", m.MaterialCode, err)
			continue
		}
		log.Printf("[SEED] material %s ditambahkan", m.MaterialCode)
	}
}

func seedConversionRates(db *gorm.DB) {
	now := time.Now()
	for code, unitsPerCoin := range constants.DefaultConversionRates {
		var count int64
		db.Model(&rateModel.ConversionRate{}).
			Where("conversion_rate_material_code = ? AND conversion_rate_effective_until IS NULL", code).
			Count(&count)
		if count > 0 {
			continue
		}
		r := rateModel.ConversionRate{
			ConversionRateMaterialCode:  code,
			ConversionRateUnitsPerCoin:  unitsPerCoin,
			ConversionRateEffectiveFrom: now,
		}
		if err := db.Create(&r).Error; err != nil {
			log.Printf("[SEED] gagal seed tarif %s: %v", code, err)
			continue
		}
		log.Printf("[SEED] tarif %s = %d unit/koin", code, unitsPerCoin)
	}
}

func seedAdminUser(db *gorm.DB) {
	var count int64
	db.Model(&userModel.User{}).Where("user_role = ?", constants.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	password := configs.GetEnv("SEED_ADMIN_PASSWORD", "")
	if password == "" {
		log.Println("[SEED] SEED_ADMIN_PASSWORD kosong, admin awal dilewati")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED] gagal hash password admin: %v", err)
		return
	}

	admin := userModel.User{
		UserName:     configs.GetEnv("SEED_ADMIN_USERNAME", "admin"),
		UserFullName: "Administrator Bank Sampah",
		UserPassword: string(hash),
		UserRole:     constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED] gagal seed admin: %v", err)
		return
	}
	log.Printf("[SEED] akun admin %s dibuat", admin.UserName)
}
