package constants

// Kode material bawaan program bank sampah sekolah.
const (
	MaterialCaps = "caps" // tutup botol plastik
	MaterialCans = "cans" // kaleng bekas
	MaterialOil  = "oil"  // minyak jelantah
)

// DefaultConversionRates: unit per koin jika belum ada konfigurasi di DB.
var DefaultConversionRates = map[string]int{
	MaterialCaps: 20,
	MaterialCans: 30,
	MaterialOil:  2,
}
