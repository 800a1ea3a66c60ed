package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	exchangeModel "banksampahku_backend/internals/features/recycling/exchanges/model"
	studentModel "banksampahku_backend/internals/features/recycling/students/model"
)

// fixedRates: RateSource deterministik untuk test.
type fixedRates map[string]int

func (f fixedRates) GetRates() map[string]int {
	out := make(map[string]int, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// satu koneksi supaya :memory: tidak pecah jadi beberapa DB
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&studentModel.Student{}, &exchangeModel.Exchange{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func setupService(t *testing.T, rates fixedRates) *ExchangeService {
	t.Helper()
	return NewExchangeService(setupTestDB(t), rates, NewStudentLocks())
}

func seedStudent(t *testing.T, db *gorm.DB, name string) studentModel.Student {
	t.Helper()
	st := studentModel.Student{
		StudentName:  name,
		StudentClass: "5A",
	}
	if err := db.Create(&st).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return st
}

func reloadStudent(t *testing.T, db *gorm.DB, st *studentModel.Student) {
	t.Helper()
	if err := db.First(st, "student_id = ?", st.StudentID).Error; err != nil {
		t.Fatalf("reload student: %v", err)
	}
}
