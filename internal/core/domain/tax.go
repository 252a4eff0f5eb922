package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxRate is a catalog entry describing one deductible tax. The catalog is
// small and configurable; rates here are only a template — applying a rate to
// a demand freezes the computed amount into a TaxLine.
type TaxRate struct {
	TaxRateID  string          `json:"taxRateID"`
	Name       string          `json:"name"`       // e.g. "GST (18%)"
	Percentage decimal.Decimal `json:"percentage"` // e.g. 18
	IsActive   bool            `json:"isActive"`
	AuditFields
}

// DisplayName returns the catalog name, or a derived "<name> (<pct>%)" label
// when the stored name does not already encode the rate.
func (t TaxRate) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("Tax (%s%%)", t.Percentage.String())
}
