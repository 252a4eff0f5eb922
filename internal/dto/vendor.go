package dto

import (
	"time"

	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
)

// CreateVendorRequest defines the payload for registering a vendor.
// Aadhaar and GSTIN are opaque identifiers; only length/format checks apply.
type CreateVendorRequest struct {
	Name          string `json:"name" binding:"required"`
	AadhaarNumber string `json:"aadhaarNumber" binding:"required,len=12,numeric"`
	GSTIN         string `json:"gstin" binding:"omitempty,len=15,alphanum"`
	ContactNumber string `json:"contactNumber" binding:"omitempty,min=10,max=13"`
}

// VendorResponse defines the data returned for a vendor.
type VendorResponse struct {
	VendorID      string    `json:"vendorID"`
	Name          string    `json:"name"`
	AadhaarNumber string    `json:"aadhaarNumber"`
	GSTIN         string    `json:"gstin,omitempty"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListVendorsParams holds pagination parameters for listing vendors.
type ListVendorsParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,gt=0,lte=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// ToVendorResponse converts a domain.Vendor to VendorResponse DTO.
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:      v.VendorID,
		Name:          v.Name,
		AadhaarNumber: v.AadhaarNumber,
		GSTIN:         v.GSTIN,
		ContactNumber: v.ContactNumber,
		IsActive:      v.IsActive,
		CreatedAt:     v.CreatedAt,
	}
}

// ToVendorResponses converts a slice of domain.Vendor to []VendorResponse.
func ToVendorResponses(vendors []domain.Vendor) []VendorResponse {
	responses := make([]VendorResponse, len(vendors))
	for i, v := range vendors {
		responses[i] = ToVendorResponse(&v)
	}
	return responses
}
