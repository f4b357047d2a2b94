// Package metrics computes dashboard aggregates from planner snapshots.
//
// Every function is pure: it reads the slices it is given and keeps no state,
// so results are recomputed on each query. Division by a zero denominator
// yields 0.
package metrics

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// Percent returns round(100 * part / total) with halves rounded up,
// or 0 when total is not positive.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(roundHalfUp(decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(total)))).IntPart())
}

// PercentOf is Percent over money amounts.
func PercentOf(part, total decimal.Decimal) int {
	if !total.IsPositive() {
		return 0
	}
	return int(roundHalfUp(part.Mul(hundred).Div(total)).IntPart())
}

// roundHalfUp rounds toward positive infinity on ties (2.5 -> 3, -2.5 -> -2).
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}
