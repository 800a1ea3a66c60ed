// file: internals/features/recycling/rates/dto/conversion_rate_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"banksampahku_backend/internals/features/recycling/rates/model"
)

type ConversionRateSetDTO struct {
	ConversionRateMaterialCode string `json:"conversion_rate_material_code" validate:"required"`
	ConversionRateUnitsPerCoin int    `json:"conversion_rate_units_per_coin" validate:"required,min=1"`
}

type ConversionRateResponse struct {
	ConversionRateID             uuid.UUID  `json:"conversion_rate_id"`
	ConversionRateMaterialCode   string     `json:"conversion_rate_material_code"`
	ConversionRateUnitsPerCoin   int        `json:"conversion_rate_units_per_coin"`
	ConversionRateEffectiveFrom  time.Time  `json:"conversion_rate_effective_from"`
	ConversionRateEffectiveUntil *time.Time `json:"conversion_rate_effective_until,omitempty"`
}

func ToConversionRateResponse(m model.ConversionRate) ConversionRateResponse {
	return ConversionRateResponse{
		ConversionRateID:             m.ConversionRateID,
		ConversionRateMaterialCode:   m.ConversionRateMaterialCode,
		ConversionRateUnitsPerCoin:   m.ConversionRateUnitsPerCoin,
		ConversionRateEffectiveFrom:  m.ConversionRateEffectiveFrom,
		ConversionRateEffectiveUntil: m.ConversionRateEffectiveUntil,
	}
}

func ToConversionRateResponses(list []model.ConversionRate) []ConversionRateResponse {
	out := make([]ConversionRateResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToConversionRateResponse(m))
	}
	return out
}
