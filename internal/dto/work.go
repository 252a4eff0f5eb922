package dto

import (
	"time"

	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWorkRequest defines the payload for registering a sanctioned work.
// New records are born well-formed: amounts must be non-negative here even
// though the ledger core tolerates zero-valued fields on stored rows.
type CreateWorkRequest struct {
	SchemeName          string          `json:"schemeName" binding:"required"`
	Name                string          `json:"name" binding:"required"`
	SanctionedDate      time.Time       `json:"sanctionedDate" binding:"required"`
	FinancialYear       string          `json:"financialYear" binding:"required"`
	AdminApprovedAmount decimal.Decimal `json:"adminApprovedAmount"`
	WorkPortionAmount   decimal.Decimal `json:"workPortionAmount"`
	TaxDeductionAmount  decimal.Decimal `json:"taxDeductionAmount"`
	VendorID            *string         `json:"vendorID,omitempty"`
	Status              string          `json:"status,omitempty"`
}

// WorkResponse defines the data returned for a work.
type WorkResponse struct {
	WorkID              string          `json:"workID"`
	SchemeName          string          `json:"schemeName"`
	Name                string          `json:"name"`
	SanctionedDate      time.Time       `json:"sanctionedDate"`
	FinancialYear       string          `json:"financialYear"`
	AdminApprovedAmount decimal.Decimal `json:"adminApprovedAmount"`
	WorkPortionAmount   decimal.Decimal `json:"workPortionAmount"`
	TaxDeductionAmount  decimal.Decimal `json:"taxDeductionAmount"`
	VendorID            *string         `json:"vendorID,omitempty"`
	VendorName          string          `json:"vendorName,omitempty"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// WorkSummaryResponse combines a work with its derived financial aggregates.
type WorkSummaryResponse struct {
	Work          WorkResponse    `json:"work"`
	GrossTotal    decimal.Decimal `json:"grossTotal"`
	TotalDemanded decimal.Decimal `json:"totalDemanded"`
	Balance       decimal.Decimal `json:"balance"`
}

// ListWorksParams holds pagination parameters for listing works.
type ListWorksParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,gt=0,lte=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// ToWorkResponse converts a domain.Work to WorkResponse DTO.
func ToWorkResponse(w *domain.Work) WorkResponse {
	return WorkResponse{
		WorkID:              w.WorkID,
		SchemeName:          w.SchemeName,
		Name:                w.Name,
		SanctionedDate:      w.SanctionedDate,
		FinancialYear:       w.FinancialYear,
		AdminApprovedAmount: w.AdminApprovedAmount,
		WorkPortionAmount:   w.WorkPortionAmount,
		TaxDeductionAmount:  w.TaxDeductionAmount,
		VendorID:            w.VendorID,
		VendorName:          w.VendorName,
		Status:              w.Status,
		CreatedAt:           w.CreatedAt,
	}
}

// ToWorkResponses converts a slice of domain.Work to []WorkResponse.
func ToWorkResponses(works []domain.Work) []WorkResponse {
	responses := make([]WorkResponse, len(works))
	for i, w := range works {
		responses[i] = ToWorkResponse(&w)
	}
	return responses
}

// ToWorkSummaryResponse combines a work and its aggregates into a summary DTO.
func ToWorkSummaryResponse(w *domain.Work, agg domain.WorkAggregates) WorkSummaryResponse {
	return WorkSummaryResponse{
		Work:          ToWorkResponse(w),
		GrossTotal:    agg.GrossTotal,
		TotalDemanded: agg.TotalDemanded,
		Balance:       agg.Balance,
	}
}
