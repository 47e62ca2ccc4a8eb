// Package rounding implements the round-up policies that turn purchases into
// spare-change savings.
//
// Every policy rounds towards positive infinity, so a rounded amount is never
// smaller than the original. Arithmetic is done in base 10 so that amounts
// such as 12.3 stay at 12.3 under nearest-decimal instead of drifting to 12.4.
package rounding

import (
	"github.com/shopspring/decimal"

	"roundup/internal/models"
)

// places maps each policy to the decimal exponent it rounds up to.
var places = map[models.RoundingType]int32{
	models.RoundingNearestDecimal:  1,
	models.RoundingNearestTens:     -1,
	models.RoundingNearestHundreds: -2,
}

// RoundDecimal rounds amount up according to policy. Unknown policies return
// the amount unchanged.
func RoundDecimal(amount decimal.Decimal, policy models.RoundingType) decimal.Decimal {
	p, ok := places[policy]
	if !ok {
		return amount
	}
	return amount.RoundCeil(p)
}

// Round is the float64 form of RoundDecimal.
func Round(amount float64, policy models.RoundingType) float64 {
	return RoundDecimal(decimal.NewFromFloat(amount), policy).InexactFloat64()
}

// SpareChange returns how much rounding amount up under policy sets aside.
func SpareChange(amount float64, policy models.RoundingType) decimal.Decimal {
	d := decimal.NewFromFloat(amount)
	return RoundDecimal(d, policy).Sub(d)
}

// TotalSpareChange folds SpareChange over a transaction history.
func TotalSpareChange(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for i := range txs {
		total = total.Add(SpareChange(txs[i].Amount, txs[i].RoundingType))
	}
	return total
}
