// file: internals/features/recycling/exchanges/service/service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"banksampahku_backend/internals/features/recycling/exchanges/model"
	studentModel "banksampahku_backend/internals/features/recycling/students/model"
)

// RateSource: sumber rate unit-per-koin. Diinject supaya test bisa pakai rate
// deterministik tanpa DB rate sungguhan.
type RateSource interface {
	GetRates() map[string]int
}

// ExchangeService: inti pencatatan setoran — konversi floor division,
// akuntansi sisa unit (pending), protokol reversal edit/hapus, dan
// rekalkulasi agregat dari ledger.
type ExchangeService struct {
	DB    *gorm.DB
	Rates RateSource
	Locks *StudentLocks
}

func NewExchangeService(db *gorm.DB, rates RateSource, locks *StudentLocks) *ExchangeService {
	if locks == nil {
		locks = NewStudentLocks()
	}
	return &ExchangeService{DB: db, Rates: rates, Locks: locks}
}

// GetExchange: baca satu baris ledger.
func (s *ExchangeService) GetExchange(ctx context.Context, exchangeID uuid.UUID) (model.Exchange, error) {
	var ex model.Exchange
	err := s.DB.WithContext(ctx).
		First(&ex, "exchange_id = ?", exchangeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ex, fmt.Errorf("%w: %s", ErrExchangeNotFound, exchangeID)
	}
	return ex, err
}

// ListByStudent: seluruh setoran siswa urut waktu pencatatan naik —
// urutan yang dipakai rekalkulasi.
func (s *ExchangeService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Exchange, error) {
	return listLedger(s.DB.WithContext(ctx), studentID, uuid.Nil)
}

// listLedger: baris ledger siswa urut created_at ASC; excludeID != Nil berarti
// "replay seolah-olah baris itu tidak pernah ada" (dipakai reversal).
func listLedger(tx *gorm.DB, studentID, excludeID uuid.UUID) ([]model.Exchange, error) {
	q := tx.Where("exchange_student_id = ?", studentID)
	if excludeID != uuid.Nil {
		q = q.Where("exchange_id <> ?", excludeID)
	}
	var rows []model.Exchange
	err := q.Order("exchange_created_at ASC").Find(&rows).Error
	return rows, err
}

// loadStudent membaca agregat siswa yang akan dimutasi. Di Postgres barisnya
// ikut dikunci FOR UPDATE; sqlite (dipakai test) tidak mengenal klausa itu.
func loadStudent(tx *gorm.DB, studentID uuid.UUID) (studentModel.Student, error) {
	var st studentModel.Student
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := q.First(&st, "student_id = ?", studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return st, fmt.Errorf("%w: %s", ErrStudentNotFound, studentID)
	}
	return st, err
}

func (s *ExchangeService) rateFor(materialCode string) (int, map[string]int, error) {
	rates := s.Rates.GetRates()
	r, ok := rates[materialCode]
	if !ok || r <= 0 {
		return 0, nil, fmt.Errorf("%w: material %q", ErrInvalidRate, materialCode)
	}
	return r, rates, nil
}
