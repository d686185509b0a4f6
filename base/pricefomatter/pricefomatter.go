package pricefomatter

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// PaymentDecimals is the scale between persisted integer payment units
// and the display denomination.
const PaymentDecimals = 9

// FormatAmount converts integer payment units to the display denomination.
func FormatAmount(amount uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -PaymentDecimals)
}

// DisplayAmount renders integer payment units as a display string
func DisplayAmount(amount uint64) string {
	return FormatAmount(amount).String()
}
