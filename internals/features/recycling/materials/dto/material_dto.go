// file: internals/features/recycling/materials/dto/material_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"banksampahku_backend/internals/features/recycling/materials/model"
)

type MaterialCreateDTO struct {
	MaterialCode    string   `json:"material_code" validate:"required,max=30"`
	MaterialName    string   `json:"material_name" validate:"required,max=100"`
	MaterialUnit    string   `json:"material_unit" validate:"required,oneof=pcs liter kg"`
	MaterialAliases []string `json:"material_aliases,omitempty"`
}

type MaterialUpdateDTO struct {
	MaterialName     *string  `json:"material_name,omitempty" validate:"omitempty,max=100"`
	MaterialUnit     *string  `json:"material_unit,omitempty" validate:"omitempty,oneof=pcs liter kg"`
	MaterialAliases  []string `json:"material_aliases,omitempty"`
	MaterialIsActive *bool    `json:"material_is_active,omitempty"`
}

type MaterialResponse struct {
	MaterialID        uuid.UUID `json:"material_id"`
	MaterialCode      string    `json:"material_code"`
	MaterialName      string    `json:"material_name"`
	MaterialUnit      string    `json:"material_unit"`
	MaterialAliases   []string  `json:"material_aliases,omitempty"`
	MaterialIsActive  bool      `json:"material_is_active"`
	MaterialCreatedAt time.Time `json:"material_created_at"`
}

func (in MaterialCreateDTO) ToModel() model.Material {
	return model.Material{
		MaterialCode:     in.MaterialCode,
		MaterialName:     in.MaterialName,
		MaterialUnit:     in.MaterialUnit,
		MaterialAliases:  in.MaterialAliases,
		MaterialIsActive: true,
	}
}

func ApplyMaterialUpdate(m *model.Material, in MaterialUpdateDTO) {
	if in.MaterialName != nil {
		m.MaterialName = *in.MaterialName
	}
	if in.MaterialUnit != nil {
		m.MaterialUnit = *in.MaterialUnit
	}
	if in.MaterialAliases != nil {
		m.MaterialAliases = in.MaterialAliases
	}
	if in.MaterialIsActive != nil {
		m.MaterialIsActive = *in.MaterialIsActive
	}
}

func ToMaterialResponse(m model.Material) MaterialResponse {
	return MaterialResponse{
		MaterialID:        m.MaterialID,
		MaterialCode:      m.MaterialCode,
		MaterialName:      m.MaterialName,
		MaterialUnit:      m.MaterialUnit,
		MaterialAliases:   m.MaterialAliases,
		MaterialIsActive:  m.MaterialIsActive,
		MaterialCreatedAt: m.MaterialCreatedAt,
	}
}

func ToMaterialResponses(list []model.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMaterialResponse(m))
	}
	return out
}
