package money

import "github.com/shopspring/decimal"

// Decimals is the precision of every monetary figure handed out by an Amount.
const Decimals = 2

// Round2 rounds x to two decimals, half away from zero.
// The shortest decimal representation of x is rounded, so 1.005 gives 1.01.
func Round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(Decimals).InexactFloat64()
}
