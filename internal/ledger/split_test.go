package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSplitRelease(t *testing.T) {
	tests := []struct {
		amount  string
		wantFee string
		wantNet string
	}{
		{"1000", "50", "950"},
		{"0.01", "0", "0.01"},
		{"333.33", "16.67", "316.66"},
		{"19.99", "1", "18.99"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			split := SplitRelease(d(tt.amount))

			assert.True(t, d(tt.wantFee).Equal(split.PlatformFee), "fee %s", split.PlatformFee)
			assert.True(t, d(tt.wantNet).Equal(split.NetAmount), "net %s", split.NetAmount)
		})
	}
}

func TestSplitRefund(t *testing.T) {
	split := SplitRefund(d("500"))

	assert.True(t, d("400").Equal(split.UserShare))
	assert.True(t, d("50").Equal(split.AdminShare))
	assert.True(t, d("50").Equal(split.StoreShare))
}

func TestSplits_ConserveEveryCent(t *testing.T) {
	for cents := int64(1); cents <= 20000; cents += 7 {
		amount := decimal.New(cents, -2)

		release := SplitRelease(amount)
		assert.True(t, amount.Equal(release.PlatformFee.Add(release.NetAmount)), "release %s", amount)
		assert.True(t, IsCurrencyAmount(release.NetAmount), "release net %s", release.NetAmount)

		refund := SplitRefund(amount)
		assert.True(t, amount.Equal(refund.UserShare.Add(refund.AdminShare).Add(refund.StoreShare)), "refund %s", amount)
		assert.True(t, IsCurrencyAmount(refund.StoreShare), "refund store %s", refund.StoreShare)
	}
}

func TestIsCurrencyAmount(t *testing.T) {
	assert.True(t, IsCurrencyAmount(d("10")))
	assert.True(t, IsCurrencyAmount(d("10.25")))
	assert.False(t, IsCurrencyAmount(d("10.255")))
}
