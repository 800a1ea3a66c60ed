package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"banksampahku_backend/internals/constants"
	exchangeModel "banksampahku_backend/internals/features/recycling/exchanges/model"
)

func TestReplayLedgerSumsStoredCoins(t *testing.T) {
	base := time.Now()
	// koin tersimpan sengaja dibuat dengan "rate lama": 10 caps = 1 koin
	rows := []exchangeModel.Exchange{
		{ExchangeMaterialCode: constants.MaterialCaps, ExchangeQuantity: 10, ExchangeCoinsEarned: 1, ExchangeCreatedAt: base},
		{ExchangeMaterialCode: constants.MaterialCaps, ExchangeQuantity: 10, ExchangeCoinsEarned: 1, ExchangeCreatedAt: base.Add(time.Second)},
	}

	totals := replayLedger(rows, map[string]int{constants.MaterialCaps: 20})

	// koin historis tidak dihitung ulang walau rate sekarang 20
	if totals.lifetimeCoins != 2 {
		t.Errorf("lifetime coins = %d, want 2", totals.lifetimeCoins)
	}
	// pending dihitung dengan rate sekarang: 20 unit % 20 = 0
	if got := totals.pending[constants.MaterialCaps]; got != 0 {
		t.Errorf("pending = %d, want 0", got)
	}
	if got := totals.lifetimeUnits[constants.MaterialCaps]; got != 20 {
		t.Errorf("lifetime units = %d, want 20", got)
	}
}

func TestReplayLedgerMaterialWithoutRate(t *testing.T) {
	rows := []exchangeModel.Exchange{
		{ExchangeMaterialCode: "kardus", ExchangeQuantity: 30, ExchangeCoinsEarned: 2},
	}
	totals := replayLedger(rows, map[string]int{constants.MaterialCaps: 20})

	// tanpa rate, unit menumpuk tanpa modulo dan koin tersimpan tetap dihormati
	if got := totals.pending["kardus"]; got != 30 {
		t.Errorf("pending = %d, want 30", got)
	}
	if totals.lifetimeCoins != 2 {
		t.Errorf("lifetime coins = %d, want 2", totals.lifetimeCoins)
	}
}

func TestRecalculateNoDriftIsNoop(t *testing.T) {
	svc := setupService(t, fixedRates{constants.MaterialOil: 2})
	st := seedStudent(t, svc.DB, "Putri")
	ctx := context.Background()

	if _, err := svc.RegisterExchange(ctx, RegisterInput{
		StudentID: st.StudentID, MaterialCode: constants.MaterialOil, Quantity: 7,
	}); err != nil {
		t.Fatalf("register 7 oil: %v", err)
	}

	res, err := svc.Recalculate(ctx, st.StudentID)
	if err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if res.Corrected || res.Delta != 0 {
		t.Errorf("corrected=%v delta=%d, want false dan 0", res.Corrected, res.Delta)
	}
}

func TestRecalculateFixesDrift(t *testing.T) {
	svc := setupService(t, fixedRates{constants.MaterialCaps: 20})
	st := seedStudent(t, svc.DB, "Rara")
	ctx := context.Background()

	if _, err := svc.RegisterExchange(ctx, RegisterInput{
		StudentID: st.StudentID, MaterialCode: constants.MaterialCaps, Quantity: 45, // 2 koin, sisa 5
	}); err != nil {
		t.Fatalf("register 45 caps: %v", err)
	}

	// simulasi drift: update agregat gagal separuh jalan
	if err := svc.DB.Model(&st).Updates(map[string]any{
		"student_coin_balance":   9,
		"student_lifetime_coins": 9,
	}).Error; err != nil {
		t.Fatalf("korupsi agregat: %v", err)
	}

	res, err := svc.Recalculate(ctx, st.StudentID)
	if err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if !res.Corrected {
		t.Fatal("corrected = false, want true")
	}
	if res.Delta != -7 {
		t.Errorf("delta = %d, want -7", res.Delta)
	}
	if res.Student.StudentLifetimeCoins != 2 || res.Student.StudentCoinBalance != 2 {
		t.Errorf("lifetime=%d balance=%d, want 2 dan 2",
			res.Student.StudentLifetimeCoins, res.Student.StudentCoinBalance)
	}
	if got := res.Student.PendingUnits()[constants.MaterialCaps]; got != 5 {
		t.Errorf("pending = %d, want 5", got)
	}

	// idempoten: panggilan kedua tanpa tulisan baru tidak mengoreksi apa pun
	again, err := svc.Recalculate(ctx, st.StudentID)
	if err != nil {
		t.Fatalf("recalculate kedua: %v", err)
	}
	if again.Corrected {
		t.Error("recalculate kedua masih corrected=true")
	}
}

// Saldo = lifetime earned dikurangi belanja; koreksi drift hanya menggeser
// saldo sebesar selisih lifetime, belanja yang sudah tercatat tidak hilang.
func TestRecalculatePreservesSpending(t *testing.T) {
	svc := setupService(t, fixedRates{constants.MaterialCaps: 20})
	st := seedStudent(t, svc.DB, "Sari")
	ctx := context.Background()

	if _, err := svc.RegisterExchange(ctx, RegisterInput{
		StudentID: st.StudentID, MaterialCode: constants.MaterialCaps, Quantity: 100, // 5 koin
	}); err != nil {
		t.Fatalf("register 100 caps: %v", err)
	}

	// belanja 2 koin, lalu lifetime tergelincir ke 4
	if err := svc.DB.Model(&st).Updates(map[string]any{
		"student_coin_balance":   3,
		"student_lifetime_coins": 4,
	}).Error; err != nil {
		t.Fatalf("setup drift: %v", err)
	}

	res, err := svc.Recalculate(ctx, st.StudentID)
	if err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if !res.Corrected || res.Delta != 1 {
		t.Fatalf("corrected=%v delta=%d, want true dan 1", res.Corrected, res.Delta)
	}
	if res.Student.StudentCoinBalance != 4 {
		t.Errorf("balance = %d, want 4 (3 + selisih 1)", res.Student.StudentCoinBalance)
	}
	if res.Student.StudentLifetimeCoins != 5 {
		t.Errorf("lifetime = %d, want 5", res.Student.StudentLifetimeCoins)
	}
}

func TestRecalculateStudentNotFound(t *testing.T) {
	svc := setupService(t, fixedRates{constants.MaterialCaps: 20})

	_, err := svc.Recalculate(context.Background(), uuid.New())
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("err = %v, want ErrStudentNotFound", err)
	}
}
