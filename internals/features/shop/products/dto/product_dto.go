// file: internals/features/shop/products/dto/product_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"banksampahku_backend/internals/features/shop/products/model"
)

type ProductCreateDTO struct {
	ProductName       string `json:"product_name" validate:"required,max=100"`
	ProductPriceCoins int    `json:"product_price_coins" validate:"required,min=1"`
	ProductStock      int    `json:"product_stock" validate:"min=0"`
}

type ProductUpdateDTO struct {
	ProductName       *string `json:"product_name,omitempty" validate:"omitempty,max=100"`
	ProductPriceCoins *int    `json:"product_price_coins,omitempty" validate:"omitempty,min=1"`
	ProductStock      *int    `json:"product_stock,omitempty" validate:"omitempty,min=0"`
	ProductIsActive   *bool   `json:"product_is_active,omitempty"`
}

type ProductResponse struct {
	ProductID         uuid.UUID `json:"product_id"`
	ProductName       string    `json:"product_name"`
	ProductPriceCoins int       `json:"product_price_coins"`
	ProductStock      int       `json:"product_stock"`
	ProductIsActive   bool      `json:"product_is_active"`
	ProductCreatedAt  time.Time `json:"product_created_at"`
}

func (in ProductCreateDTO) ToModel() model.Product {
	return model.Product{
		ProductName:       in.ProductName,
		ProductPriceCoins: in.ProductPriceCoins,
		ProductStock:      in.ProductStock,
		ProductIsActive:   true,
	}
}

func ApplyProductUpdate(m *model.Product, in ProductUpdateDTO) {
	if in.ProductName != nil {
		m.ProductName = *in.ProductName
	}
	if in.ProductPriceCoins != nil {
		m.ProductPriceCoins = *in.ProductPriceCoins
	}
	if in.ProductStock != nil {
		m.ProductStock = *in.ProductStock
	}
	if in.ProductIsActive != nil {
		m.ProductIsActive = *in.ProductIsActive
	}
}

func ToProductResponse(m model.Product) ProductResponse {
	return ProductResponse{
		ProductID:         m.ProductID,
		ProductName:       m.ProductName,
		ProductPriceCoins: m.ProductPriceCoins,
		ProductStock:      m.ProductStock,
		ProductIsActive:   m.ProductIsActive,
		ProductCreatedAt:  m.ProductCreatedAt,
	}
}

func ToProductResponses(list []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToProductResponse(m))
	}
	return out
}
