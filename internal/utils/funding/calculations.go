// Package funding holds the pure fund-demand calculations shared by services
// and handlers. Everything here is side-effect free and total over its inputs:
// malformed or zero-valued numeric fields contribute zero, and validation
// produces outcomes rather than errors.
package funding

import (
	"fmt"

	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// nearBalanceFraction is the advisory threshold: requesting more than 90% of
// the remaining balance triggers the NearBalance advisory.
var nearBalanceFraction = decimal.NewFromFloat(0.9)

// ComputeWorkAggregates derives the summary figures for one work from the
// full demand collection. Demands belonging to other works are filtered out.
// TotalDemanded deliberately counts every demand regardless of status: it
// represents "amount requested", not "amount paid" (contrast with
// ComputeVendorTotals, which counts only approved demands).
func ComputeWorkAggregates(work domain.Work, demands []domain.Demand) domain.WorkAggregates {
	gross := work.GrossTotal()

	totalDemanded := decimal.Zero
	for _, d := range demands {
		if d.WorkID != work.WorkID {
			continue
		}
		totalDemanded = totalDemanded.Add(d.Amount)
	}

	return domain.WorkAggregates{
		GrossTotal:    gross,
		TotalDemanded: totalDemanded,
		Balance:       gross.Sub(totalDemanded),
	}
}

// ComputeVendorTotals derives a vendor's realized totals from the demands
// raised against their works. Only Approved demands count: pending or
// rejected demands must not inflate reported disbursements. NetPayable falls
// back to the raw amount on rows that predate tax tracking.
func ComputeVendorTotals(demands []domain.Demand) domain.VendorTotals {
	received := decimal.Zero
	taxDeducted := decimal.Zero

	for _, d := range demands {
		if d.Status != domain.DemandApproved {
			continue
		}
		if d.NetPayable != nil {
			received = received.Add(*d.NetPayable)
		} else {
			received = received.Add(d.Amount)
		}
		taxDeducted = taxDeducted.Add(d.TotalTax())
	}

	return domain.VendorTotals{
		TotalFundReceived: received,
		TotalTaxDeducted:  taxDeducted,
	}
}

// TaxPreview is the result of applying a tax selection to a candidate amount.
type TaxPreview struct {
	Lines      []domain.TaxLine
	TotalTax   decimal.Decimal
	NetPayable decimal.Decimal
}

// PreviewTaxes computes the tax lines for a candidate demand amount against
// the selected catalog rates. Each line amount is round-half-up of
// amount × percentage / 100 to whole currency units; no further currency
// rounding is applied. NetPayable may go negative — flooring to zero is a
// display concern, the raw value is what gets persisted.
func PreviewTaxes(candidate decimal.Decimal, selectedTaxIDs []string, catalog []domain.TaxRate) TaxPreview {
	selected := make(map[string]bool, len(selectedTaxIDs))
	for _, id := range selectedTaxIDs {
		selected[id] = true
	}

	preview := TaxPreview{TotalTax: decimal.Zero}
	for _, rate := range catalog {
		if !selected[rate.TaxRateID] {
			continue
		}
		// decimal.Round rounds half away from zero, which is round-half-up
		// for the non-negative amounts handled here.
		amount := candidate.Mul(rate.Percentage).Div(decimal.NewFromInt(100)).Round(0)
		preview.Lines = append(preview.Lines, domain.TaxLine{
			TaxRateID:  rate.TaxRateID,
			Name:       rate.DisplayName(),
			Percentage: rate.Percentage,
			Amount:     amount,
		})
		preview.TotalTax = preview.TotalTax.Add(amount)
	}
	preview.NetPayable = candidate.Sub(preview.TotalTax)
	return preview
}

// OutcomeKind classifies a demand-amount validation result.
type OutcomeKind string

const (
	OutcomeOk             OutcomeKind = "OK"
	OutcomeNearBalance    OutcomeKind = "NEAR_BALANCE"    // Advisory: >90% of balance requested
	OutcomeExactBalance   OutcomeKind = "EXACT_BALANCE"   // Advisory: closes out the allocation
	OutcomeExceedsBalance OutcomeKind = "EXCEEDS_BALANCE" // Blocking
	OutcomeInvalid        OutcomeKind = "INVALID"         // Blocking: not a positive number
)

// AmountOutcome is the result of validating a candidate demand amount against
// a work's remaining balance. Outcomes are mutually exclusive; at most one is
// produced per evaluation.
type AmountOutcome struct {
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message,omitempty"`
}

// Blocks reports whether the outcome prevents submission. Advisory outcomes
// (ExactBalance, NearBalance) inform the caller but do not block.
func (o AmountOutcome) Blocks() bool {
	return o.Kind == OutcomeInvalid || o.Kind == OutcomeExceedsBalance
}

// ValidateDemandAmount evaluates a candidate amount against the remaining
// balance. Precedence: Invalid short-circuits everything, then
// ExceedsBalance, ExactBalance, NearBalance, Ok.
func ValidateDemandAmount(candidate decimal.Decimal, balance decimal.Decimal) AmountOutcome {
	if candidate.LessThanOrEqual(decimal.Zero) {
		return AmountOutcome{
			Kind:    OutcomeInvalid,
			Message: "demand amount must be a positive number",
		}
	}
	if candidate.GreaterThan(balance) {
		return AmountOutcome{
			Kind:    OutcomeExceedsBalance,
			Message: fmt.Sprintf("demand amount exceeds the remaining balance of %s", balance.String()),
		}
	}
	if candidate.Equal(balance) {
		return AmountOutcome{
			Kind:    OutcomeExactBalance,
			Message: "this demand closes out the remaining allocation",
		}
	}
	if candidate.GreaterThan(balance.Mul(nearBalanceFraction)) {
		return AmountOutcome{
			Kind:    OutcomeNearBalance,
			Message: "more than 90% of the remaining balance is being requested",
		}
	}
	return AmountOutcome{Kind: OutcomeOk}
}

// ValidateDemandAmountString parses free-text form input and validates it.
// Non-numeric input degrades to the Invalid outcome rather than an error.
func ValidateDemandAmountString(raw string, balance decimal.Decimal) (decimal.Decimal, AmountOutcome) {
	candidate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, AmountOutcome{
			Kind:    OutcomeInvalid,
			Message: "demand amount must be a positive number",
		}
	}
	return candidate, ValidateDemandAmount(candidate, balance)
}
