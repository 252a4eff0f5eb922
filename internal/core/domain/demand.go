package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemandStatus indicates the workflow state of a fund demand.
// The set is open ended; these are the states this service transitions.
type DemandStatus string

const (
	DemandPending  DemandStatus = "Pending"
	DemandApproved DemandStatus = "Approved"
	DemandRejected DemandStatus = "Rejected"
)

// Demand represents a single request to draw down funds against a work's
// allocation. A demand is created in one atomic raise operation and is never
// edited afterwards; the only permitted mutation is the status transition
// performed by the approval workflow.
type Demand struct {
	DemandID   string           `json:"demandID"`   // Primary Key (UUID)
	DemandCode string           `json:"demandCode"` // Human-facing code, e.g. "FD-0003"
	WorkID     string           `json:"workID"`     // FK -> Work.workID (Not Null)
	VendorName string           `json:"vendorName"` // Denormalized from the work's vendor at creation time
	Amount     decimal.Decimal  `json:"amount"`     // Requested amount; positive
	NetPayable *decimal.Decimal `json:"netPayable,omitempty"` // Amount minus taxes; raw value, may be negative; nil on legacy rows
	Status     DemandStatus     `json:"status"`
	Remarks    string           `json:"remarks"`
	DemandDate time.Time        `json:"demandDate"` // Calendar-date granularity
	Taxes      []TaxLine        `json:"taxes"`
	AuditFields
}

// TaxLine is one tax applied to a demand, frozen at creation time. Lines are
// immutable once attached; a changed catalog rate never rewrites history.
type TaxLine struct {
	TaxLineID  string          `json:"taxLineID"`
	DemandID   string          `json:"demandID"`
	TaxRateID  string          `json:"taxRateID"`
	Name       string          `json:"name"`       // Display name encoding the rate, e.g. "GST (18%)"
	Percentage decimal.Decimal `json:"percentage"` // e.g. 18
	Amount     decimal.Decimal `json:"amount"`     // Rounded tax amount at the frozen rate
}

// TotalTax sums the frozen tax line amounts of the demand.
func (d Demand) TotalTax() decimal.Decimal {
	total := decimal.Zero
	for _, line := range d.Taxes {
		total = total.Add(line.Amount)
	}
	return total
}

// IsPending reports whether the demand is still awaiting the approval
// workflow. Only pending demands may transition state.
func (d Demand) IsPending() bool {
	return d.Status == DemandPending
}
