package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/benx421/layaway/internal/ledger"
	"github.com/shopspring/decimal"
)

// ValidateAmount checks that amount is positive and expressible in currency units
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}

	if !ledger.IsCurrencyAmount(amount) {
		return fmt.Errorf("invalid amount: at most %d decimal places", ledger.CurrencyPlaces)
	}

	return nil
}

// ValidateTargetDate checks that a goal's target date lies in the future
func ValidateTargetDate(target, now time.Time) error {
	if target.IsZero() {
		return fmt.Errorf("invalid target date: required")
	}

	if !target.After(now) {
		return fmt.Errorf("invalid target date: must be in the future")
	}

	return nil
}

// ValidateCoordinates accepts a cleared pair (both nil) or a pair within range
func ValidateCoordinates(lat, lng *float64) error {
	if lat == nil && lng == nil {
		return nil
	}

	if lat == nil || lng == nil {
		return fmt.Errorf("invalid coordinates: latitude and longitude must be set together")
	}

	if *lat < -90 || *lat > 90 {
		return fmt.Errorf("invalid latitude %v: must be between -90 and 90", *lat)
	}

	if *lng < -180 || *lng > 180 {
		return fmt.Errorf("invalid longitude %v: must be between -180 and 180", *lng)
	}

	return nil
}

// PaymentIdempotencyKey derives the deposit key for a gateway session and amount
func PaymentIdempotencyKey(sessionID string, amount decimal.Decimal) string {
	sum := sha256.Sum256([]byte(sessionID + ":" + amount.StringFixed(ledger.CurrencyPlaces)))
	return hex.EncodeToString(sum[:])
}

const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randomReference(n int) (string, error) {
	out := make([]byte, n)
	limit := big.NewInt(int64(len(referenceAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[i] = referenceAlphabet[idx.Int64()]
	}
	return string(out), nil
}

// newReceiptNumber returns a receipt like RCP-20260115-7KQ2MZ4D
func newReceiptNumber(now time.Time) (string, error) {
	suffix, err := randomReference(8)
	if err != nil {
		return "", fmt.Errorf("failed to generate receipt number: %w", err)
	}
	return "RCP-" + now.UTC().Format("20060102") + "-" + suffix, nil
}

// newTrackingNumber returns a tracking number like TRK7KQ2MZ4DX9PA
func newTrackingNumber() (string, error) {
	suffix, err := randomReference(12)
	if err != nil {
		return "", fmt.Errorf("failed to generate tracking number: %w", err)
	}
	return "TRK" + suffix, nil
}
