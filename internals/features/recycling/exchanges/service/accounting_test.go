package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"banksampahku_backend/internals/constants"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		name        string
		pending     int
		quantity    int
		rate        int
		wantCoins   int
		wantPending int
	}{
		{"di bawah rate", 0, 15, 20, 0, 15},
		{"sisa lama menggenapi", 15, 10, 20, 1, 5},
		{"beberapa koin sekaligus", 0, 7, 2, 3, 1},
		{"pas habis", 5, 35, 20, 2, 0},
		{"rate satu", 0, 9, 1, 9, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			coins, pending := convert(tc.pending, tc.quantity, tc.rate)
			if coins != tc.wantCoins || pending != tc.wantPending {
				t.Errorf("convert(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tc.pending, tc.quantity, tc.rate, coins, pending, tc.wantCoins, tc.wantPending)
			}
		})
	}
}

func TestRegisterExchangeCarriesPending(t *testing.T) {
	svc := setupService(t, fixedRates{constants.MaterialCaps: 20})
	st := seedStudent(t, svc.DB, "Ani")
	ctx := context.Background()

	res, err := svc.RegisterExchange(ctx, RegisterInput{
		StudentID: st.StudentID, MaterialCode: constants.MaterialCaps, Quantity: 15,
	})
	if err != nil {
		t.Fatalf("register 15 caps: %v", err)
	}
	if res.Exchange.ExchangeCoinsEarned != 0 {
		t.Errorf("coins setoran pertama = %d, want 0", res.Exchange.ExchangeCoinsEarned)
	}
	if got := res.Student.PendingUnits()[constants.MaterialCaps]; got != 15 {
		t.Errorf("pending setelah setoran pertama = %d, want 15", got)
	}

	res, err = svc.RegisterExchange(ctx, RegisterInput{
		StudentID: st.StudentID, MaterialCode: constants.MaterialCaps, Quantity: 10,
	})
	if err != nil {
		t.Fatalf("register 10 caps: %v", err)
	}
	if res.Exchange.ExchangeCoinsEarned != 1 {
		t.Errorf("coins setoran kedua = %d, want 1", res.Exchange.ExchangeCoinsEarned)
	}
	if got := res.Student.PendingUnits()[constants.MaterialCaps]; got != 5 {
		t.Errorf("pending setelah setoran kedua = %d, want 5", got)
	}
	if res.Student.StudentCoinBalance != 1 {
		t.Errorf("balance = %d, want 1", res.Student.StudentCoinBalance)
	}
	if res.Student.StudentLifetimeCoins != 1 {
		t.Errorf("lifetime coins = %d, want 1", res.Student.StudentLifetimeCoins)
	}
	if got := res.Student.LifetimeUnits()[constants.MaterialCaps]; got != 25 {
		t.Errorf("lifetime units = %d, want 25", got)
	}
}

func TestRegisterExchangeMultipleCoinsInOneCall(t *testing.T) {
	svc := setupService(t, fixedRates{constants.MaterialOil: 2})
	st := seedStudent(t, svc.DB, "Budi")

	res, err := svc.RegisterExchange(context.Background(), RegisterInput{
		StudentID: st.StudentID, MaterialCode: constants.MaterialOil, Quantity: 7,
	})
	if err != nil {
		t.Fatalf("register 7 oil: %v", err)
	}
	if res.Exchange.ExchangeCoinsEarned != 3 {
		t.Errorf("coins = %d, want 3", res.Exchange.ExchangeCoinsEarned)
	}
	if got := res.Student.PendingUnits()[constants.MaterialOil]; got != 1 {
		t.Errorf("pending = %d, want 1", got)
	}
}

// Total koin hanya tergantung jumlah total unit, bukan cara membaginya
// ke beberapa setoran.
func TestRegisterExchangeSplitInvariance(t *testing.T) {
	svc := setupService(t, fixedRates{constants.MaterialCaps: 20})
	split := seedStudent(t, svc.DB, "Citra")
	whole := seedStudent(t, svc.DB, "Dewi")
	ctx := context.Background()

	quantities := []int{3, 9, 14, 6, 18}
	total := 0
	for _, q := range quantities {
		if _, err := svc.RegisterExchange(ctx, RegisterInput{
			StudentID: split.StudentID, MaterialCode: constants.MaterialCaps, Quantity: q,
		}); err != nil {
			t.Fatalf("register %d caps: %v", q, err)
		}
		total += q
	}
	if _, err := svc.RegisterExchange(ctx, RegisterInput{
		StudentID: whole.StudentID, MaterialCode: constants.MaterialCaps, Quantity: total,
	}); err != nil {
		t.Fatalf("register %d caps sekaligus: %v", total, err)
	}

	reloadStudent(t, svc.DB, &split)
	reloadStudent(t, svc.DB, &whole)

	if split.StudentLifetimeCoins != whole.StudentLifetimeCoins {
		t.Errorf("lifetime coins split = %d, sekaligus = %d",
			split.StudentLifetimeCoins, whole.StudentLifetimeCoins)
	}
	if sp, wp := split.PendingUnits()[constants.MaterialCaps], whole.PendingUnits()[constants.MaterialCaps]; sp != wp {
		t.Errorf("pending split = %d, sekaligus = %d", sp, wp)
	}
	if want := total / 20; split.StudentLifetimeCoins != want {
		t.Errorf("lifetime coins = %d, want %d", split.StudentLifetimeCoins, want)
	}
}

func TestRegisterExchangePendingStaysBelowRate(t *testing.T) {
	const rate = 20
	svc := setupService(t, fixedRates{constants.MaterialCans: rate})
	st := seedStudent(t, svc.DB, "Eka")
	ctx := context.Background()

	for _, q := range []int{1, 19, 20, 21, 7, 13, 39} {
		res, err := svc.RegisterExchange(ctx, RegisterInput{
			StudentID: st.StudentID, MaterialCode: constants.MaterialCans, Quantity: q,
		})
		if err != nil {
			t.Fatalf("register %d cans: %v", q, err)
		}
		p := res.Student.PendingUnits()[constants.MaterialCans]
		if p < 0 || p >= rate {
			t.Fatalf("pending %d di luar [0, %d) setelah setoran %d", p, rate, q)
		}
	}
}

func TestRegisterExchangeValidation(t *testing.T) {
	svc := setupService(t, fixedRates{constants.MaterialCaps: 20})
	st := seedStudent(t, svc.DB, "Fajar")
	ctx := context.Background()

	if _, err := svc.RegisterExchange(ctx, RegisterInput{
		StudentID: st.StudentID, MaterialCode: constants.MaterialCaps, Quantity: 0,
	}); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("quantity 0: err = %v, want ErrInvalidQuantity", err)
	}

	if _, err := svc.RegisterExchange(ctx, RegisterInput{
		StudentID: st.StudentID, MaterialCode: "kertas", Quantity: 5,
	}); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("material tanpa rate: err = %v, want ErrInvalidRate", err)
	}

	if _, err := svc.RegisterExchange(ctx, RegisterInput{
		StudentID: uuid.New(), MaterialCode: constants.MaterialCaps, Quantity: 5,
	}); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("siswa tak dikenal: err = %v, want ErrStudentNotFound", err)
	}

	// validasi gagal tidak boleh meninggalkan baris ledger
	rows, err := svc.ListByStudent(ctx, st.StudentID)
	if err != nil {
		t.Fatalf("list ledger: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("ledger berisi %d baris setelah input invalid, want 0", len(rows))
	}
}
