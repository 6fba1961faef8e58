package sales

import "github.com/shopspring/decimal"

// PercentChange calcula la variación porcentual de current respecto a prior,
// redondeada a un decimal con empate al par (401 vs 400 → 0.2, 403 vs 400 → 0.8).
//
// Política ante prior = 0 (no es una tasa de crecimiento real):
//   - prior > 0             → (current − prior) / prior × 100
//   - prior ≤ 0, current > 0 → 100.0 (crecimiento "infinito" acotado)
//   - en otro caso          → 0.0
//
// Nunca devuelve NaN ni infinito.
func PercentChange(current, prior decimal.Decimal) decimal.Decimal {
	switch {
	case prior.IsPositive():
		return current.Sub(prior).Div(prior).Mul(hundred).RoundBank(1)
	case current.IsPositive():
		return hundred
	default:
		return decimal.Zero
	}
}

// CountChange es PercentChange para conteos enteros.
func CountChange(current, prior int64) decimal.Decimal {
	return PercentChange(decimal.NewFromInt(current), decimal.NewFromInt(prior))
}
