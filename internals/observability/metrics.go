// file: internals/observability/metrics.go
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counter proses bank sampah; diekspos lewat GET /metrics.
var (
	ExchangesRegistered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "banksampahku",
		Name:      "exchanges_registered_total",
		Help:      "Jumlah setoran material yang tercatat, per material.",
	}, []string{"material"})

	CoinsAwarded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "banksampahku",
		Name:      "coins_awarded_total",
		Help:      "Total koin yang diberikan lewat setoran.",
	})

	ExchangesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "banksampahku",
		Name:      "exchanges_deleted_total",
		Help:      "Jumlah setoran yang dihapus (reversal).",
	})

	RecalcRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "banksampahku",
		Name:      "recalc_runs_total",
		Help:      "Jumlah pemanggilan rekalkulasi agregat siswa.",
	})

	RecalcCorrections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "banksampahku",
		Name:      "recalc_corrections_total",
		Help:      "Jumlah rekalkulasi yang menemukan drift dan mengoreksi agregat.",
	})

	RecalcCorrectionMagnitude = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "banksampahku",
		Name:      "recalc_correction_coins_total",
		Help:      "Akumulasi |delta| koin yang dikoreksi oleh rekalkulasi.",
	})
)
