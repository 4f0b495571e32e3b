package kernel

import (
	"fmt"

	"cookieadmin/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CentPlaces is the number of decimal places money amounts are rounded to.
const CentPlaces = 2

// AmountLimit is the smallest amount that no longer fits the numeric(12,2) money columns.
var AmountLimit = decimal.New(1, 10)

// ValidateNonNegativeAmount returns a ValueIsInvalidError naming param when amount is below
// zero or cannot be stored exactly.
//
// Example:
//
//	err := kernel.ValidateNonNegativeAmount("preco_venda", decimal.RequireFromString("8.50")) // nil
//	err = kernel.ValidateNonNegativeAmount("preco_venda", decimal.RequireFromString("8.505")) // more than 2 places
func ValidateNonNegativeAmount(param string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is negative", amount.String()))
	}
	return validateStorable(param, amount)
}

// ValidatePositiveAmount returns a ValueIsInvalidError naming param when amount is not greater
// than zero or cannot be stored exactly. 0.004 is rejected: it would be stored as 0.00.
func ValidatePositiveAmount(param string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is not greater than 0", amount.String()))
	}
	return validateStorable(param, amount)
}

func validateStorable(param string, amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(CentPlaces)) {
		return errs.NewValueIsInvalidErrorWithCause(param,
			fmt.Errorf("%s has more than %d decimal places", amount.String(), CentPlaces))
	}
	if amount.Abs().GreaterThanOrEqual(AmountLimit) {
		return errs.NewValueIsInvalidErrorWithCause(param,
			fmt.Errorf("%s is not less than %s", amount.String(), AmountLimit.String()))
	}
	return nil
}

// RoundCents rounds amount to cents using banker's rounding.
func RoundCents(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundBank(CentPlaces)
}
