package dto

import (
	"time"

	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTaxRateRequest defines the payload for adding a tax catalog entry.
type CreateTaxRateRequest struct {
	Name       string          `json:"name" binding:"required"`
	Percentage decimal.Decimal `json:"percentage" binding:"required"`
}

// TaxRateResponse defines the data returned for a tax catalog entry.
type TaxRateResponse struct {
	TaxRateID  string          `json:"taxRateID"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	IsActive   bool            `json:"isActive"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToTaxRateResponse converts a domain.TaxRate to TaxRateResponse DTO.
func ToTaxRateResponse(t *domain.TaxRate) TaxRateResponse {
	return TaxRateResponse{
		TaxRateID:  t.TaxRateID,
		Name:       t.DisplayName(),
		Percentage: t.Percentage,
		IsActive:   t.IsActive,
		CreatedAt:  t.CreatedAt,
	}
}

// ToTaxRateResponses converts a slice of domain.TaxRate to []TaxRateResponse.
func ToTaxRateResponses(rates []domain.TaxRate) []TaxRateResponse {
	responses := make([]TaxRateResponse, len(rates))
	for i, t := range rates {
		responses[i] = ToTaxRateResponse(&t)
	}
	return responses
}
