// file: internals/features/shop/sales/service/sale_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	exchangeService "banksampahku_backend/internals/features/recycling/exchanges/service"
	studentModel "banksampahku_backend/internals/features/recycling/students/model"
	productModel "banksampahku_backend/internals/features/shop/products/model"
	"banksampahku_backend/internals/features/shop/sales/model"
)

var (
	ErrProductNotFound    = errors.New("produk tidak ditemukan")
	ErrSaleNotFound       = errors.New("penjualan tidak ditemukan")
	ErrInsufficientCoins  = errors.New("saldo koin siswa tidak cukup")
	ErrInsufficientStock  = errors.New("stok produk tidak cukup")
	ErrInvalidSaleQty     = errors.New("jumlah beli harus lebih dari 0")
	ErrSaleStudentMissing = errors.New("siswa tidak ditemukan")
)

// SaleService: belanja toko sekolah. Memakai lock siswa yang SAMA dengan
// service setoran supaya debit saldo tidak menyela read-modify-write setoran.
type SaleService struct {
	DB    *gorm.DB
	Locks *exchangeService.StudentLocks
}

func NewSaleService(db *gorm.DB, locks *exchangeService.StudentLocks) *SaleService {
	return &SaleService{DB: db, Locks: locks}
}

type CreateSaleInput struct {
	StudentID uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	TeacherID uuid.UUID
}

type SaleResult struct {
	Sale    model.Sale
	Student studentModel.Student
}

func (s *SaleService) CreateSale(ctx context.Context, in CreateSaleInput) (*SaleResult, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSaleQty, in.Quantity)
	}

	unlock := s.Locks.Lock(in.StudentID)
	defer unlock()

	var out SaleResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var st studentModel.Student
		if err := tx.First(&st, "student_id = ?", in.StudentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrSaleStudentMissing, in.StudentID)
			}
			return err
		}

		var p productModel.Product
		if err := tx.First(&p, "product_id = ? AND product_is_active = ?", in.ProductID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrProductNotFound, in.ProductID)
			}
			return err
		}
		if p.ProductStock < in.Quantity {
			return fmt.Errorf("%w: stok %d, diminta %d", ErrInsufficientStock, p.ProductStock, in.Quantity)
		}

		total := p.ProductPriceCoins * in.Quantity
		if st.StudentCoinBalance < total {
			return fmt.Errorf("%w: saldo %d koin, harga total %d koin",
				ErrInsufficientCoins, st.StudentCoinBalance, total)
		}

		sale := model.Sale{
			SaleStudentID:  in.StudentID,
			SaleProductID:  in.ProductID,
			SaleQuantity:   in.Quantity,
			SaleTotalCoins: total,
			SaleTeacherID:  in.TeacherID,
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		st.StudentCoinBalance -= total
		if err := tx.Save(&st).Error; err != nil {
			return err
		}
		p.ProductStock -= in.Quantity
		if err := tx.Save(&p).Error; err != nil {
			return err
		}

		out = SaleResult{Sale: sale, Student: st}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSale membatalkan belanja: saldo koin dan stok dikembalikan.
func (s *SaleService) DeleteSale(ctx context.Context, saleID uuid.UUID) (*SaleResult, error) {
	var sale model.Sale
	if err := s.DB.WithContext(ctx).First(&sale, "sale_id = ?", saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSaleNotFound, saleID)
		}
		return nil, err
	}

	unlock := s.Locks.Lock(sale.SaleStudentID)
	defer unlock()

	var out SaleResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sale, "sale_id = ?", saleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrSaleNotFound, saleID)
			}
			return err
		}

		var st studentModel.Student
		if err := tx.First(&st, "student_id = ?", sale.SaleStudentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrSaleStudentMissing, sale.SaleStudentID)
			}
			return err
		}

		if err := tx.Delete(&sale).Error; err != nil {
			return err
		}

		st.StudentCoinBalance += sale.SaleTotalCoins
		if err := tx.Save(&st).Error; err != nil {
			return err
		}

		// stok dikembalikan kalau produknya masih ada
		var p productModel.Product
		if err := tx.First(&p, "product_id = ?", sale.SaleProductID).Error; err == nil {
			p.ProductStock += sale.SaleQuantity
			if err := tx.Save(&p).Error; err != nil {
				return err
			}
		}

		out = SaleResult{Sale: sale, Student: st}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
