//go:build unit

package pricing_test

import (
	"testing"

	"lookup-service/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewQuote(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		discount int
		want     string
		errIs    error
	}{
		{name: "割引なしは基本価格そのまま", base: "2.50", discount: 0, want: "2.50"},
		{name: "20%割引", base: "2.50", discount: 20, want: "2.00"},
		{name: "100%割引はゼロ", base: "2.50", discount: 100, want: "0.00"},
		{name: "端数は小数2桁で四捨五入される", base: "1.99", discount: 15, want: "1.69"},
		{name: "切り上げ側の丸め", base: "0.99", discount: 50, want: "0.50"},
		{name: "基本価格ゼロは拒否", base: "0", discount: 0, errIs: pricing.ErrInvalidBasePrice},
		{name: "基本価格マイナスは拒否", base: "-2.50", discount: 0, errIs: pricing.ErrInvalidBasePrice},
		{name: "割引マイナスは拒否", base: "2.50", discount: -1, errIs: pricing.ErrInvalidDiscount},
		{name: "割引100超は拒否", base: "2.50", discount: 101, errIs: pricing.ErrInvalidDiscount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := pricing.NewQuote("document_lookup", d(tc.base), tc.discount)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, q.FinalPrice.Equal(d(tc.want)), "final: got %s", q.FinalPrice)
			assert.Equal(t, "document_lookup", q.OperationType)
			assert.Equal(t, tc.discount, q.DiscountPercent)
			assert.True(t, q.BasePrice.Equal(d(tc.base)))
		})
	}
}
