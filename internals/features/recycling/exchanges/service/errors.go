// file: internals/features/recycling/exchanges/service/errors.go
package service

import "errors"

// Error bisnis inti pencatatan setoran. Controller memetakan ke status HTTP
// lewat errors.Is supaya pesan pembungkus tetap sampai ke pengguna.
var (
	ErrInvalidQuantity     = errors.New("jumlah setoran harus lebih dari 0")
	ErrInvalidRate         = errors.New("rate konversi material tidak valid")
	ErrStudentNotFound     = errors.New("siswa tidak ditemukan")
	ErrExchangeNotFound    = errors.New("setoran tidak ditemukan")
	ErrInsufficientBalance = errors.New("saldo koin siswa tidak cukup untuk membatalkan setoran ini")
)
