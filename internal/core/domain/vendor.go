package domain

import "github.com/shopspring/decimal"

// Vendor represents a registered contractor or supplier to whom net payable
// amounts are disbursed. Aadhaar and GSTIN are carried as opaque identifier
// strings; only length/format checks are applied at the API boundary.
type Vendor struct {
	VendorID      string `json:"vendorID"`
	Name          string `json:"name"`
	AadhaarNumber string `json:"aadhaarNumber"`
	GSTIN         string `json:"gstin,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}

// VendorTotals holds the realized figures for a vendor: only demands that
// cleared the approval workflow count toward funds received. Pending or
// rejected demands must not inflate reported disbursements, in contrast to a
// work's TotalDemanded which deliberately counts every demand raised.
type VendorTotals struct {
	TotalFundReceived decimal.Decimal `json:"totalFundReceived"`
	TotalTaxDeducted  decimal.Decimal `json:"totalTaxDeducted"`
}
