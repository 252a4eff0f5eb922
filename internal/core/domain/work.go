package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Work represents a sanctioned government work item against which fund
// demands are raised. Works are created by the sanctioning authority and are
// read-only from the demand ledger's perspective: no operation in this service
// mutates the sanctioned amounts after creation.
type Work struct {
	WorkID              string          `json:"workID"`
	SchemeName          string          `json:"schemeName"`
	Name                string          `json:"name"`
	SanctionedDate      time.Time       `json:"sanctionedDate"`
	FinancialYear       string          `json:"financialYear"` // e.g. "2025-26"
	AdminApprovedAmount decimal.Decimal `json:"adminApprovedAmount"`
	WorkPortionAmount   decimal.Decimal `json:"workPortionAmount"`
	TaxDeductionAmount  decimal.Decimal `json:"taxDeductionAmount"`
	VendorID            *string         `json:"vendorID,omitempty"` // Nullable; assigned when a vendor is attached
	VendorName          string          `json:"vendorName,omitempty"`
	Status              string          `json:"status"` // Free-form workflow label, e.g. "Pending"
	AuditFields
}

// GrossTotal is the full drawable allocation for the work: the work-portion
// component plus the tax-deduction component. Zero-valued fields contribute
// zero rather than being treated as an error.
func (w Work) GrossTotal() decimal.Decimal {
	return w.WorkPortionAmount.Add(w.TaxDeductionAmount)
}

// WorkAggregates holds the derived financial figures for a single work.
type WorkAggregates struct {
	GrossTotal    decimal.Decimal `json:"grossTotal"`
	TotalDemanded decimal.Decimal `json:"totalDemanded"`
	Balance       decimal.Decimal `json:"balance"`
}
