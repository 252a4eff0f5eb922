package dto

import (
	"time"

	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	"github.com/NidhiSetu/fund_management_app/internal/utils/funding"
	"github.com/shopspring/decimal"
)

// RaiseDemandRequest defines the payload for raising a fund demand against a
// work. Amount arrives as free text so malformed input degrades to the
// Invalid validation outcome instead of a bind failure.
type RaiseDemandRequest struct {
	Amount     string   `json:"amount" binding:"required"`
	TaxRateIDs []string `json:"taxRateIDs"`
	Remarks    string   `json:"remarks" binding:"required"`
}

// PreviewTaxesRequest defines the payload for the pure tax preview used by
// forms on every amount or selection change.
type PreviewTaxesRequest struct {
	Amount     string   `json:"amount" binding:"required"`
	TaxRateIDs []string `json:"taxRateIDs"`
}

// TaxLineResponse defines the data returned for one applied tax line.
type TaxLineResponse struct {
	TaxRateID  string          `json:"taxRateID"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	Amount     decimal.Decimal `json:"amount"`
}

// PreviewTaxesResponse defines the result of a tax preview.
type PreviewTaxesResponse struct {
	Lines      []TaxLineResponse `json:"lines"`
	TotalTax   decimal.Decimal   `json:"totalTax"`
	NetPayable decimal.Decimal   `json:"netPayable"`
}

// DemandResponse defines the data returned for a demand.
type DemandResponse struct {
	DemandID   string            `json:"demandID"`
	DemandCode string            `json:"demandCode"`
	WorkID     string            `json:"workID"`
	VendorName string            `json:"vendorName,omitempty"`
	Amount     decimal.Decimal   `json:"amount"`
	NetPayable *decimal.Decimal  `json:"netPayable,omitempty"`
	Status     string            `json:"status"`
	Remarks    string            `json:"remarks"`
	DemandDate time.Time         `json:"demandDate"`
	Taxes      []TaxLineResponse `json:"taxes"`
	CreatedAt  time.Time         `json:"createdAt"`
	CreatedBy  string            `json:"createdBy"`
}

// RaiseDemandResponse carries the created demand plus any non-blocking
// advisory produced by amount validation (ExactBalance / NearBalance).
type RaiseDemandResponse struct {
	Demand   DemandResponse         `json:"demand"`
	Advisory *funding.AmountOutcome `json:"advisory,omitempty"`
}

// VendorTotalsResponse defines a vendor's realized totals.
type VendorTotalsResponse struct {
	VendorID          string          `json:"vendorID"`
	TotalFundReceived decimal.Decimal `json:"totalFundReceived"`
	TotalTaxDeducted  decimal.Decimal `json:"totalTaxDeducted"`
}

// ToTaxLineResponse converts a domain.TaxLine to TaxLineResponse DTO.
func ToTaxLineResponse(line *domain.TaxLine) TaxLineResponse {
	return TaxLineResponse{
		TaxRateID:  line.TaxRateID,
		Name:       line.Name,
		Percentage: line.Percentage,
		Amount:     line.Amount,
	}
}

// ToTaxLineResponses converts a slice of domain.TaxLine to []TaxLineResponse.
func ToTaxLineResponses(lines []domain.TaxLine) []TaxLineResponse {
	responses := make([]TaxLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = ToTaxLineResponse(&line)
	}
	return responses
}

// ToDemandResponse converts a domain.Demand to DemandResponse DTO.
func ToDemandResponse(d *domain.Demand) DemandResponse {
	return DemandResponse{
		DemandID:   d.DemandID,
		DemandCode: d.DemandCode,
		WorkID:     d.WorkID,
		VendorName: d.VendorName,
		Amount:     d.Amount,
		NetPayable: d.NetPayable,
		Status:     string(d.Status),
		Remarks:    d.Remarks,
		DemandDate: d.DemandDate,
		Taxes:      ToTaxLineResponses(d.Taxes),
		CreatedAt:  d.CreatedAt,
		CreatedBy:  d.CreatedBy,
	}
}

// ToDemandResponses converts a slice of domain.Demand to []DemandResponse.
func ToDemandResponses(demands []domain.Demand) []DemandResponse {
	responses := make([]DemandResponse, len(demands))
	for i, d := range demands {
		responses[i] = ToDemandResponse(&d)
	}
	return responses
}

// ToPreviewTaxesResponse converts a funding.TaxPreview to its DTO.
func ToPreviewTaxesResponse(preview funding.TaxPreview) PreviewTaxesResponse {
	return PreviewTaxesResponse{
		Lines:      ToTaxLineResponses(preview.Lines),
		TotalTax:   preview.TotalTax,
		NetPayable: preview.NetPayable,
	}
}
