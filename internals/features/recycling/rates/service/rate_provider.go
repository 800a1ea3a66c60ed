// file: internals/features/recycling/rates/service/rate_provider.go
package service

import (
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"banksampahku_backend/internals/constants"
	"banksampahku_backend/internals/features/recycling/rates/model"
)

// DefaultCacheTTL: rate jarang berubah, 5 menit cukup segar.
const DefaultCacheTTL = 5 * time.Minute

// RateProvider menyediakan rate "unit per koin" per material_code dengan cache TTL.
// GetRates tidak pernah gagal: kalau query DB error, pakai cache terakhir;
// kalau belum pernah ada cache, pakai default hard-coded.
type RateProvider struct {
	db  *gorm.DB
	ttl time.Duration

	mu        sync.RWMutex
	cached    map[string]int
	fetchedAt time.Time
}

func NewRateProvider(db *gorm.DB, ttl time.Duration) *RateProvider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RateProvider{db: db, ttl: ttl}
}

// GetRates mengembalikan salinan peta rate yang sedang berlaku.
func (p *RateProvider) GetRates() map[string]int {
	p.mu.RLock()
	fresh := p.cached != nil && time.Since(p.fetchedAt) < p.ttl
	if fresh {
		out := copyRates(p.cached)
		p.mu.RUnlock()
		return out
	}
	p.mu.RUnlock()

	if err := p.Refresh(); err != nil {
		log.Printf("[WARN] gagal refresh conversion rates, pakai fallback: %v", err)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.cached != nil {
		return copyRates(p.cached)
	}
	return copyRates(constants.DefaultConversionRates)
}

// Refresh: paksa baca ulang rate dari DB (batas eksplisit untuk test/admin).
func (p *RateProvider) Refresh() error {
	var rows []model.ConversionRate
	err := p.db.
		Where("conversion_rate_effective_until IS NULL").
		Find(&rows).Error
	if err != nil {
		return err
	}

	// merge di atas default: material tanpa baris DB tetap punya rate
	merged := copyRates(constants.DefaultConversionRates)
	for _, r := range rows {
		if r.ConversionRateUnitsPerCoin > 0 {
			merged[r.ConversionRateMaterialCode] = r.ConversionRateUnitsPerCoin
		}
	}

	p.mu.Lock()
	p.cached = merged
	p.fetchedAt = time.Now()
	p.mu.Unlock()
	return nil
}

// Invalidate: buang cache supaya pembacaan berikut ambil dari DB (dipanggil admin rate).
func (p *RateProvider) Invalidate() {
	p.mu.Lock()
	p.fetchedAt = time.Time{}
	p.mu.Unlock()
}

func copyRates(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
