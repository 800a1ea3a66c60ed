// file: internals/features/recycling/exchanges/service/recalc.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"banksampahku_backend/internals/features/recycling/exchanges/model"
	studentModel "banksampahku_backend/internals/features/recycling/students/model"
	"banksampahku_backend/internals/observability"
)

// ledgerTotals: hasil replay ledger seorang siswa dari nol.
type ledgerTotals struct {
	lifetimeCoins int
	pending       map[string]int
	lifetimeUnits map[string]int
}

// replayLedger menghitung ulang agregat dari urutan setoran (created_at ASC).
// Koin dijumlahkan dari nilai TERSIMPAN per baris — rate historis ikut
// terawetkan di situ. Pending dihitung ulang dengan rate sekarang; kalau
// sebuah material tidak punya rate, unitnya menumpuk tanpa modulo.
func replayLedger(rows []model.Exchange, rates map[string]int) ledgerTotals {
	t := ledgerTotals{
		pending:       map[string]int{},
		lifetimeUnits: map[string]int{},
	}
	for _, ex := range rows {
		mat := ex.ExchangeMaterialCode
		t.lifetimeCoins += ex.ExchangeCoinsEarned
		t.lifetimeUnits[mat] += ex.ExchangeQuantity

		total := t.pending[mat] + ex.ExchangeQuantity
		if r := rates[mat]; r > 0 {
			t.pending[mat] = total % r
		} else {
			t.pending[mat] = total
		}
	}
	return t
}

// replayRegistrations memutar ulang urutan setoran seolah dicatat dari nol
// dengan rate sekarang: koin per baris dihitung ulang dari carry pending,
// bukan dibaca dari nilai tersimpan. Ini mode replay milik protokol reversal.
// Baris yang nilai koinnya berubah ikut dikembalikan supaya caller bisa
// menulis ulang coins_earned-nya; tanpa itu, Recalculate (yang menjumlah
// nilai tersimpan) tidak akan mencapai titik tetap yang sama.
func replayRegistrations(rows []model.Exchange, rates map[string]int) (ledgerTotals, []model.Exchange) {
	t := ledgerTotals{
		pending:       map[string]int{},
		lifetimeUnits: map[string]int{},
	}
	var changed []model.Exchange
	for _, ex := range rows {
		mat := ex.ExchangeMaterialCode
		coins := ex.ExchangeCoinsEarned
		if r := rates[mat]; r > 0 {
			coins, t.pending[mat] = convert(t.pending[mat], ex.ExchangeQuantity, r)
		} else {
			// tanpa rate tidak ada dasar hitung ulang; nilai tersimpan dipakai
			t.pending[mat] += ex.ExchangeQuantity
		}
		t.lifetimeCoins += coins
		t.lifetimeUnits[mat] += ex.ExchangeQuantity
		if coins != ex.ExchangeCoinsEarned {
			ex.ExchangeCoinsEarned = coins
			changed = append(changed, ex)
		}
	}
	return t, changed
}

// applyTotals menimpa agregat siswa dengan hasil replay. Saldo koin TIDAK
// ditimpa mentah: belanja toko sudah terpotong di saldo, jadi saldo hanya
// digeser sebesar selisih lifetime coins lama vs baru.
func applyTotals(st *studentModel.Student, t ledgerTotals) (delta int) {
	delta = t.lifetimeCoins - st.StudentLifetimeCoins
	st.StudentCoinBalance += delta
	st.StudentLifetimeCoins = t.lifetimeCoins
	st.SetPendingUnits(t.pending)
	st.SetLifetimeUnits(t.lifetimeUnits)
	return delta
}

func (t ledgerTotals) matches(st *studentModel.Student) bool {
	return t.lifetimeCoins == st.StudentLifetimeCoins &&
		equalUnitMaps(t.pending, st.PendingUnits()) &&
		equalUnitMaps(t.lifetimeUnits, st.LifetimeUnits())
}

// equalUnitMaps: entri nol dianggap sama dengan tidak ada.
func equalUnitMaps(a, b map[string]int) bool {
	for k, v := range a {
		if v != 0 && b[k] != v {
			return false
		}
	}
	for k, v := range b {
		if v != 0 && a[k] != v {
			return false
		}
	}
	return true
}

type RecalcResult struct {
	Corrected bool
	Delta     int
	Student   studentModel.Student
}

// Recalculate: mekanisme self-healing. Hitung ulang agregat siswa murni dari
// ledger dan timpa nilai tersimpan bila melenceng. Idempoten: tanpa tulisan
// baru di antaranya, pemanggilan kedua selalu Corrected=false.
func (s *ExchangeService) Recalculate(ctx context.Context, studentID uuid.UUID) (*RecalcResult, error) {
	rates := s.Rates.GetRates()

	unlock := s.Locks.Lock(studentID)
	defer unlock()

	var out RecalcResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st, err := loadStudent(tx, studentID)
		if err != nil {
			return err
		}
		rows, err := listLedger(tx, studentID, uuid.Nil)
		if err != nil {
			return err
		}

		totals := replayLedger(rows, rates)
		if totals.matches(&st) {
			out = RecalcResult{Corrected: false, Delta: 0, Student: st}
			return nil
		}

		delta := applyTotals(&st, totals)
		if err := tx.Save(&st).Error; err != nil {
			return err
		}
		out = RecalcResult{Corrected: true, Delta: delta, Student: st}
		return nil
	})
	if err != nil {
		return nil, err
	}

	observability.RecalcRuns.Inc()
	if out.Corrected {
		observability.RecalcCorrections.Inc()
		observability.RecalcCorrectionMagnitude.Add(absFloat(out.Delta))
		log.Printf("[DRIFT] agregat siswa %s dikoreksi, delta koin=%d", studentID, out.Delta)
	}
	return &out, nil
}

func absFloat(n int) float64 {
	if n < 0 {
		n = -n
	}
	return float64(n)
}
