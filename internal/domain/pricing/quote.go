package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBasePrice = errors.New("base price must be greater than zero")
	ErrInvalidDiscount  = errors.New("discount percent must be between 0 and 100")
)

// currencyPrecision is the smallest currency unit (centavos).
const currencyPrecision = 2

// Quote is the chargeable price of one operation. It is recomputed on every
// attempt because subscription state can change between attempts.
type Quote struct {
	OperationType   string
	BasePrice       decimal.Decimal
	DiscountPercent int
	FinalPrice      decimal.Decimal
}

// NewQuote applies the subscription discount and rounds half-up to currency
// precision.
func NewQuote(operationType string, basePrice decimal.Decimal, discountPercent int) (*Quote, error) {
	if !basePrice.IsPositive() {
		return nil, ErrInvalidBasePrice
	}
	if discountPercent < 0 || discountPercent > 100 {
		return nil, ErrInvalidDiscount
	}

	multiplier := decimal.NewFromInt(100 - int64(discountPercent)).Div(decimal.NewFromInt(100))
	final := basePrice.Mul(multiplier).Round(currencyPrecision)

	return &Quote{
		OperationType:   operationType,
		BasePrice:       basePrice,
		DiscountPercent: discountPercent,
		FinalPrice:      final,
	}, nil
}
