package cargo

import (
	"github.com/shopspring/decimal"

	"github.com/amvarmar/cargotrack/pkg/cargo_server/model"
)

// lbsToKgsRate is the fixed pounds→kilograms conversion constant.
var lbsToKgsRate = decimal.RequireFromString("0.453592")

// DeriveReceiptWeight applies the receipt weight rule: when pounds is
// supplied, kilograms is always recomputed from it (3 decimal places),
// overwriting any supplied kilogram value. At least one of the two weights
// must be present.
func DeriveReceiptWeight(lbs, kgs *decimal.Decimal) (*decimal.Decimal, *decimal.Decimal, error) {
	if lbs != nil {
		derived := lbs.Mul(lbsToKgsRate).Round(3)
		return lbs, &derived, nil
	}
	if kgs == nil {
		return nil, nil, model.ErrMissingWeight
	}
	return nil, kgs, nil
}

// DeriveItemWeight applies the per-unit weight rule. Unlike the receipt
// rule, kilograms is derived only when absent; an explicitly supplied
// kilogram value is kept even when pounds is present. Both weights are
// optional on an item.
func DeriveItemWeight(lbs, kgs *decimal.Decimal) (*decimal.Decimal, *decimal.Decimal) {
	if lbs != nil && kgs == nil {
		derived := lbs.Mul(lbsToKgsRate).Round(3)
		return lbs, &derived
	}
	return lbs, kgs
}
