// Package ledger holds the money arithmetic shared by goals, deposits and escrow settlement.
package ledger

import (
	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the number of fractional digits persisted for money.
const CurrencyPlaces = 2

var (
	// ReleaseFeeRate is the platform's cut when held funds are released to the store.
	ReleaseFeeRate = decimal.RequireFromString("0.05")

	// RefundUserRate is the share returned to a user whose cancellation is approved.
	RefundUserRate = decimal.RequireFromString("0.80")

	// RefundPlatformRate is the platform's half of the cancellation penalty.
	RefundPlatformRate = decimal.RequireFromString("0.10")
)

// ReleaseSplit is the payout of a released escrow
type ReleaseSplit struct {
	PlatformFee decimal.Decimal
	NetAmount   decimal.Decimal
}

// RefundSplit is the payout of a refunded escrow
type RefundSplit struct {
	UserShare  decimal.Decimal
	AdminShare decimal.Decimal
	StoreShare decimal.Decimal
}

// SplitRelease divides amount into the platform fee and the store's net payout.
// NetAmount is derived as the remainder so PlatformFee+NetAmount == amount exactly.
func SplitRelease(amount decimal.Decimal) ReleaseSplit {
	fee := Round(amount.Mul(ReleaseFeeRate))
	return ReleaseSplit{
		PlatformFee: fee,
		NetAmount:   amount.Sub(fee),
	}
}

// SplitRefund divides amount into the user's refund and the two penalty shares.
// StoreShare is derived as the remainder so the three shares always sum to amount.
func SplitRefund(amount decimal.Decimal) RefundSplit {
	user := Round(amount.Mul(RefundUserRate))
	admin := Round(amount.Mul(RefundPlatformRate))
	return RefundSplit{
		UserShare:  user,
		AdminShare: admin,
		StoreShare: amount.Sub(user).Sub(admin),
	}
}

// Round rounds d to whole currency units. Call it only where a value is about to be persisted.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// IsCurrencyAmount reports whether d is already expressed in whole currency units.
func IsCurrencyAmount(d decimal.Decimal) bool {
	return d.Equal(Round(d))
}
