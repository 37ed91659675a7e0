// Package money centralizes the platform's amount arithmetic so every
// component applies identical fee and USD-resolution rules.
package money

import (
	"github.com/AdhamRef/gozbebekleri-sub002/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FeeRate is the platform fee applied to the base amount plus team support.
var FeeRate = decimal.NewFromFloat(0.03)

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ComputeTotals derives the platform fee and the final charged total.
// Fees are always computed and recorded; they are only added to the total
// when the donor opted to cover them. Rounding is applied once here, never
// per allocation line.
func ComputeTotals(baseAmount, teamSupport decimal.Decimal, coverFees bool) (fees, totalAmount decimal.Decimal) {
	fees = Round2(baseAmount.Add(teamSupport).Mul(FeeRate))
	totalAmount = baseAmount.Add(teamSupport)
	if coverFees {
		totalAmount = totalAmount.Add(fees)
	}
	return fees, totalAmount
}

// ResolveUSDAmount returns the USD value of a donation using a fixed
// precedence: sum of allocation AmountUSD when any allocation carries one,
// then the donation's own AmountUSD, TotalAmount, and finally Amount.
// Every aggregate consumer goes through this function so the fallback order
// is applied in exactly one place.
func ResolveUSDAmount(d *domain.Donation) decimal.Decimal {
	allocated := decimal.Zero
	hasAllocated := false
	for _, item := range d.Items {
		if !item.AmountUSD.IsZero() {
			hasAllocated = true
		}
		allocated = allocated.Add(item.AmountUSD)
	}
	for _, item := range d.CategoryItems {
		if !item.AmountUSD.IsZero() {
			hasAllocated = true
		}
		allocated = allocated.Add(item.AmountUSD)
	}
	if hasAllocated {
		return allocated
	}
	if !d.AmountUSD.IsZero() {
		return d.AmountUSD
	}
	if !d.TotalAmount.IsZero() {
		return d.TotalAmount
	}
	return d.Amount
}
