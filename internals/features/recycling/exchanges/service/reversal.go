// file: internals/features/recycling/exchanges/service/reversal.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/recycling/exchanges/model"
	studentModel "banksampahku_backend/internals/features/recycling/students/model"
	"banksampahku_backend/internals/observability"
)

// StudentSnapshot: potret agregat siswa untuk preview sebelum/sesudah
// (dialog konfirmasi hapus di sisi UI).
type StudentSnapshot struct {
	CoinBalance   int            `json:"coin_balance"`
	LifetimeCoins int            `json:"lifetime_coins"`
	PendingUnits  map[string]int `json:"pending_units"`
	LifetimeUnits map[string]int `json:"lifetime_units"`
}

func snapshotOf(st *studentModel.Student) StudentSnapshot {
	return StudentSnapshot{
		CoinBalance:   st.StudentCoinBalance,
		LifetimeCoins: st.StudentLifetimeCoins,
		PendingUnits:  st.PendingUnits(),
		LifetimeUnits: st.LifetimeUnits(),
	}
}

type DeleteSummary struct {
	Exchange model.Exchange       `json:"exchange"`
	Before   StudentSnapshot      `json:"before"`
	After    StudentSnapshot      `json:"after"`
	Student  studentModel.Student `json:"student"`
}

// lockExchangeOwner mengunci pemilik setoran saat ini, plus siswa tujuan bila
// diberikan. Antara baca pertama dan pengambilan lock, edit lain bisa saja
// memindahkan setoran ke siswa lain; karena itu kepemilikan diverifikasi ulang
// di bawah lock, dan kunci diambil ulang pada pemilik baru bila bergeser.
func (s *ExchangeService) lockExchangeOwner(ctx context.Context, exchangeID uuid.UUID, targetID *uuid.UUID) (model.Exchange, func(), error) {
	ex, err := s.GetExchange(ctx, exchangeID)
	if err != nil {
		return ex, nil, err
	}
	for {
		owner := ex.ExchangeStudentID
		var unlock func()
		if targetID != nil && *targetID != owner {
			unlock = s.Locks.LockPair(owner, *targetID)
		} else {
			unlock = s.Locks.Lock(owner)
		}
		cur, err := s.GetExchange(ctx, exchangeID)
		if err != nil {
			unlock()
			return cur, nil, err
		}
		if cur.ExchangeStudentID == owner {
			return cur, unlock, nil
		}
		unlock()
		ex = cur
	}
}

// DeleteExchange membatalkan efek sebuah setoran. Karena akuntansi pending
// tergantung urutan, baris yang dihapus belum tentu yang terakhir — satu-satunya
// cara menjamin invarian tetap benar adalah replay penuh sisa ledger, bukan
// pengurangan aritmetika. Guard saldo berjalan mencegah reversal administratif
// membuat saldo negatif (aturan produk, bukan keharusan matematis).
func (s *ExchangeService) DeleteExchange(ctx context.Context, exchangeID uuid.UUID) (*DeleteSummary, error) {
	ex, unlock, err := s.lockExchangeOwner(ctx, exchangeID, nil)
	if err != nil {
		return nil, err
	}
	defer unlock()
	rates := s.Rates.GetRates()

	var out DeleteSummary
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// muat ulang di bawah lock; bisa saja sudah dihapus operasi lain
		if err := tx.First(&ex, "exchange_id = ?", exchangeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrExchangeNotFound, exchangeID)
			}
			return err
		}

		st, err := loadStudent(tx, ex.ExchangeStudentID)
		if err != nil {
			return err
		}
		if st.StudentCoinBalance < ex.ExchangeCoinsEarned {
			return fmt.Errorf("%w: saldo %d koin, setoran ini bernilai %d koin",
				ErrInsufficientBalance, st.StudentCoinBalance, ex.ExchangeCoinsEarned)
		}

		before := snapshotOf(&st)

		if err := tx.Delete(&ex).Error; err != nil {
			return err
		}

		rows, err := listLedger(tx, st.StudentID, uuid.Nil)
		if err != nil {
			return err
		}
		totals, changed := replayRegistrations(rows, rates)

		logDeleteFastPath(&st, &ex, rows, totals, rates)

		// carry pending bergeser, koin baris setelahnya bisa ikut berubah
		for _, row := range changed {
			if err := tx.Model(&model.Exchange{}).
				Where("exchange_id = ?", row.ExchangeID).
				Update("exchange_coins_earned", row.ExchangeCoinsEarned).Error; err != nil {
				return err
			}
		}

		applyTotals(&st, totals)
		if err := tx.Save(&st).Error; err != nil {
			return err
		}

		out = DeleteSummary{Exchange: ex, Before: before, After: snapshotOf(&st), Student: st}
		return nil
	})
	if err != nil {
		return nil, err
	}

	observability.ExchangesDeleted.Inc()
	return &out, nil
}

// PreviewDelete: walk yang sama dengan DeleteExchange tapi murni baca —
// untuk dialog "sebelum/sesudah" tanpa menduplikasi aritmetika di caller.
func (s *ExchangeService) PreviewDelete(ctx context.Context, exchangeID uuid.UUID) (*DeleteSummary, error) {
	ex, err := s.GetExchange(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	rates := s.Rates.GetRates()

	tx := s.DB.WithContext(ctx)
	st, err := loadStudent(tx, ex.ExchangeStudentID)
	if err != nil {
		return nil, err
	}
	rows, err := listLedger(tx, st.StudentID, ex.ExchangeID)
	if err != nil {
		return nil, err
	}

	before := snapshotOf(&st)
	after := st // salinan nilai; tidak ada yang ditulis ke DB
	totals, _ := replayRegistrations(rows, rates)
	applyTotals(&after, totals)

	return &DeleteSummary{Exchange: ex, Before: before, After: snapshotOf(&after), Student: st}, nil
}

type EditInput struct {
	NewStudentID    *uuid.UUID
	NewMaterialCode *string
	NewQuantity     *int
}

type EditResult struct {
	Exchange model.Exchange
	Student  studentModel.Student  // pemilik setoran setelah edit
	Moved    *studentModel.Student // siswa asal, terisi hanya jika setoran pindah siswa
}

// EditExchange = hapus lalu daftar ulang dengan nilai baru, dalam satu transaksi
// dan satu lintasan replay supaya tidak ada saldo transien yang salah terlihat.
// Identitas baris dipertahankan, tetapi created_at digeser ke sekarang: hasil
// akhirnya persis seperti setoran lama dihapus dan setoran baru dicatat.
func (s *ExchangeService) EditExchange(ctx context.Context, exchangeID uuid.UUID, in EditInput) (*EditResult, error) {
	ex, unlock, err := s.lockExchangeOwner(ctx, exchangeID, in.NewStudentID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	newQty := ex.ExchangeQuantity
	if in.NewQuantity != nil {
		newQty = *in.NewQuantity
	}
	if newQty <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, newQty)
	}

	newMat := ex.ExchangeMaterialCode
	if in.NewMaterialCode != nil {
		newMat = *in.NewMaterialCode
	}
	rate, rates, err := s.rateFor(newMat)
	if err != nil {
		return nil, err
	}

	origID := ex.ExchangeStudentID
	targetID := origID
	if in.NewStudentID != nil {
		targetID = *in.NewStudentID
	}

	var out EditResult
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ex, "exchange_id = ?", exchangeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrExchangeNotFound, exchangeID)
			}
			return err
		}

		orig, err := loadStudent(tx, origID)
		if err != nil {
			return err
		}
		if orig.StudentCoinBalance < ex.ExchangeCoinsEarned {
			return fmt.Errorf("%w: saldo %d koin, setoran ini bernilai %d koin",
				ErrInsufficientBalance, orig.StudentCoinBalance, ex.ExchangeCoinsEarned)
		}

		// 1) Reversed: agregat siswa asal di-replay tanpa baris yang diedit;
		// koin baris setelahnya dihitung ulang dan ditulis bila bergeser.
		origRows, err := listLedger(tx, origID, ex.ExchangeID)
		if err != nil {
			return err
		}
		totals, changed := replayRegistrations(origRows, rates)
		for _, row := range changed {
			if err := tx.Model(&model.Exchange{}).
				Where("exchange_id = ?", row.ExchangeID).
				Update("exchange_coins_earned", row.ExchangeCoinsEarned).Error; err != nil {
				return err
			}
		}
		applyTotals(&orig, totals)

		// 2) Tentukan basis penerima. Siswa tujuan tidak ikut di-replay:
		// ledger-nya tidak berubah, cukup daftar ulang di atas agregat
		// tersimpannya, persis seperti RegisterExchange biasa.
		target := &orig
		var moved *studentModel.Student
		if targetID != origID {
			t, err := loadStudent(tx, targetID)
			if err != nil {
				return err
			}
			target = &t
			moved = &orig
		}

		// 3) Reapplied: daftar ulang di atas pending hasil replay.
		pending := target.PendingUnits()
		coins, newPending := convert(pending[newMat], newQty, rate)

		now := time.Now()
		updates := map[string]any{
			"exchange_student_id":    targetID,
			"exchange_material_code": newMat,
			"exchange_quantity":      newQty,
			"exchange_coins_earned":  coins,
			"exchange_created_at":    now,
		}
		if err := tx.Model(&model.Exchange{}).
			Where("exchange_id = ?", ex.ExchangeID).
			Updates(updates).Error; err != nil {
			return err
		}
		ex.ExchangeStudentID = targetID
		ex.ExchangeMaterialCode = newMat
		ex.ExchangeQuantity = newQty
		ex.ExchangeCoinsEarned = coins
		ex.ExchangeCreatedAt = now

		pending[newMat] = newPending
		units := target.LifetimeUnits()
		units[newMat] += newQty
		target.StudentCoinBalance += coins
		target.StudentLifetimeCoins += coins
		target.SetPendingUnits(pending)
		target.SetLifetimeUnits(units)

		if moved != nil {
			if err := tx.Save(moved).Error; err != nil {
				return err
			}
		}
		if err := tx.Save(target).Error; err != nil {
			return err
		}

		out = EditResult{Exchange: ex, Student: *target, Moved: moved}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// logDeleteFastPath: kalau baris yang dihapus adalah setoran TERAKHIR siswa
// untuk materialnya, pengurangan aritmetika seharusnya cocok dengan hasil
// replay. Dipakai sebagai sinyal log saja; nilai otoritatif tetap dari replay.
func logDeleteFastPath(st *studentModel.Student, ex *model.Exchange, remaining []model.Exchange, totals ledgerTotals, rates map[string]int) {
	for _, row := range remaining {
		if row.ExchangeMaterialCode == ex.ExchangeMaterialCode &&
			row.ExchangeCreatedAt.After(ex.ExchangeCreatedAt) {
			return // bukan yang terakhir, fast path tidak berlaku
		}
	}
	r := rates[ex.ExchangeMaterialCode]
	if r <= 0 {
		return
	}
	expected := st.PendingUnits()[ex.ExchangeMaterialCode] - ex.ExchangeQuantity
	for expected < 0 {
		expected += r
	}
	if got := totals.pending[ex.ExchangeMaterialCode]; got != expected%r {
		log.Printf("[INFO] fast-path hapus setoran %s meleset dari replay (aritmetika=%d, replay=%d); pakai hasil replay",
			ex.ExchangeID, expected%r, got)
	}
}
