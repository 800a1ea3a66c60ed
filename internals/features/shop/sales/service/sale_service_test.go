package service

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	exchangeService "banksampahku_backend/internals/features/recycling/exchanges/service"
	studentModel "banksampahku_backend/internals/features/recycling/students/model"
	productModel "banksampahku_backend/internals/features/shop/products/model"
	"banksampahku_backend/internals/features/shop/sales/model"
)

func setupSaleService(t *testing.T) *SaleService {
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
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&studentModel.Student{}, &productModel.Product{}, &model.Sale{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return NewSaleService(db, exchangeService.NewStudentLocks())
}

func seedBuyer(t *testing.T, db *gorm.DB, balance int) studentModel.Student {
	t.Helper()
	st := studentModel.Student{
		StudentName:          "Ani",
		StudentCoinBalance:   balance,
		StudentLifetimeCoins: balance,
	}
	if err := db.Create(&st).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return st
}

func seedProduct(t *testing.T, db *gorm.DB, price, stock int) productModel.Product {
	t.Helper()
	p := productModel.Product{
		ProductName:       "Pensil",
		ProductPriceCoins: price,
		ProductStock:      stock,
		ProductIsActive:   true,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func TestCreateSaleDebitsBalanceAndStock(t *testing.T) {
	svc := setupSaleService(t)
	st := seedBuyer(t, svc.DB, 10)
	p := seedProduct(t, svc.DB, 3, 5)

	res, err := svc.CreateSale(context.Background(), CreateSaleInput{
		StudentID: st.StudentID, ProductID: p.ProductID, Quantity: 2, TeacherID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	if res.Sale.SaleTotalCoins != 6 {
		t.Errorf("total coins = %d, want 6", res.Sale.SaleTotalCoins)
	}
	if res.Student.StudentCoinBalance != 4 {
		t.Errorf("balance = %d, want 4", res.Student.StudentCoinBalance)
	}
	// lifetime earned tidak tersentuh belanja
	if res.Student.StudentLifetimeCoins != 10 {
		t.Errorf("lifetime coins = %d, want 10", res.Student.StudentLifetimeCoins)
	}

	if err := svc.DB.First(&p, "product_id = ?", p.ProductID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if p.ProductStock != 3 {
		t.Errorf("stock = %d, want 3", p.ProductStock)
	}
}

func TestCreateSaleInsufficientCoins(t *testing.T) {
	svc := setupSaleService(t)
	st := seedBuyer(t, svc.DB, 5)
	p := seedProduct(t, svc.DB, 3, 5)

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		StudentID: st.StudentID, ProductID: p.ProductID, Quantity: 2, TeacherID: uuid.New(),
	})
	if !errors.Is(err, ErrInsufficientCoins) {
		t.Fatalf("err = %v, want ErrInsufficientCoins", err)
	}

	// tidak ada mutasi parsial
	if err := svc.DB.First(&st, "student_id = ?", st.StudentID).Error; err != nil {
		t.Fatalf("reload student: %v", err)
	}
	if st.StudentCoinBalance != 5 {
		t.Errorf("balance = %d, want 5", st.StudentCoinBalance)
	}
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	svc := setupSaleService(t)
	st := seedBuyer(t, svc.DB, 100)
	p := seedProduct(t, svc.DB, 1, 2)

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		StudentID: st.StudentID, ProductID: p.ProductID, Quantity: 3, TeacherID: uuid.New(),
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("err = %v, want ErrInsufficientStock", err)
	}
}

func TestCreateSaleInactiveProduct(t *testing.T) {
	svc := setupSaleService(t)
	st := seedBuyer(t, svc.DB, 10)
	p := seedProduct(t, svc.DB, 3, 5)
	if err := svc.DB.Model(&p).Update("product_is_active", false).Error; err != nil {
		t.Fatalf("nonaktifkan produk: %v", err)
	}

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		StudentID: st.StudentID, ProductID: p.ProductID, Quantity: 1, TeacherID: uuid.New(),
	})
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestCreateSaleInvalidQuantity(t *testing.T) {
	svc := setupSaleService(t)

	_, err := svc.CreateSale(context.Background(), CreateSaleInput{
		StudentID: uuid.New(), ProductID: uuid.New(), Quantity: 0,
	})
	if !errors.Is(err, ErrInvalidSaleQty) {
		t.Errorf("err = %v, want ErrInvalidSaleQty", err)
	}
}

func TestDeleteSaleRestoresBalanceAndStock(t *testing.T) {
	svc := setupSaleService(t)
	st := seedBuyer(t, svc.DB, 10)
	p := seedProduct(t, svc.DB, 3, 5)
	ctx := context.Background()

	res, err := svc.CreateSale(ctx, CreateSaleInput{
		StudentID: st.StudentID, ProductID: p.ProductID, Quantity: 2, TeacherID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	out, err := svc.DeleteSale(ctx, res.Sale.SaleID)
	if err != nil {
		t.Fatalf("delete sale: %v", err)
	}
	if out.Student.StudentCoinBalance != 10 {
		t.Errorf("balance = %d, want 10", out.Student.StudentCoinBalance)
	}

	if err := svc.DB.First(&p, "product_id = ?", p.ProductID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if p.ProductStock != 5 {
		t.Errorf("stock = %d, want 5", p.ProductStock)
	}

	if _, err := svc.DeleteSale(ctx, res.Sale.SaleID); !errors.Is(err, ErrSaleNotFound) {
		t.Errorf("delete kedua: err = %v, want ErrSaleNotFound", err)
	}
}
