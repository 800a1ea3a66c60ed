// file: internals/features/recycling/exchanges/service/accounting.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/recycling/exchanges/model"
	studentModel "banksampahku_backend/internals/features/recycling/students/model"
	"banksampahku_backend/internals/observability"
)

type RegisterInput struct {
	StudentID    uuid.UUID
	MaterialCode string
	Quantity     int
	TeacherID    uuid.UUID
}

type RegisterResult struct {
	Exchange model.Exchange
	Student  studentModel.Student
}

// convert: algoritma tukar inti. Sisa unit lama selalu dipakai lebih dulu,
// jadi setoran kecil berturut-turut tetap terakumulasi menuju satu koin.
// Hasil newPending selalu di [0, rate).
func convert(pending, quantity, rate int) (coins, newPending int) {
	total := pending + quantity
	return total / rate, total % rate
}

// RegisterExchange mencatat satu setoran material: validasi dulu (tanpa efek
// samping), lalu dalam satu transaksi DB di bawah lock siswa tulis baris ledger
// dan perbarui agregat siswa sekaligus.
func (s *ExchangeService) RegisterExchange(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, in.Quantity)
	}
	rate, _, err := s.rateFor(in.MaterialCode)
	if err != nil {
		return nil, err
	}

	unlock := s.Locks.Lock(in.StudentID)
	defer unlock()

	var out RegisterResult
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st, err := loadStudent(tx, in.StudentID)
		if err != nil {
			return err
		}

		pending := st.PendingUnits()
		coins, newPending := convert(pending[in.MaterialCode], in.Quantity, rate)

		ex := model.Exchange{
			ExchangeStudentID:    in.StudentID,
			ExchangeMaterialCode: in.MaterialCode,
			ExchangeQuantity:     in.Quantity,
			ExchangeCoinsEarned:  coins,
			ExchangeTeacherID:    in.TeacherID,
		}
		if err := tx.Create(&ex).Error; err != nil {
			return err
		}

		pending[in.MaterialCode] = newPending
		units := st.LifetimeUnits()
		units[in.MaterialCode] += in.Quantity

		st.StudentCoinBalance += coins
		st.StudentLifetimeCoins += coins
		st.SetPendingUnits(pending)
		st.SetLifetimeUnits(units)
		if err := tx.Save(&st).Error; err != nil {
			return err
		}

		out = RegisterResult{Exchange: ex, Student: st}
		return nil
	})
	if err != nil {
		return nil, err
	}

	observability.ExchangesRegistered.WithLabelValues(in.MaterialCode).Inc()
	observability.CoinsAwarded.Add(float64(out.Exchange.ExchangeCoinsEarned))
	return &out, nil
}
