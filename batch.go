package money

import "fmt"

// Amounts represents an ordered sequence of amounts.
// Batch operations transform every element independently and produce a new
// slice of the same length and order; the original slice is never modified,
// so Amounts is safe for concurrent use by multiple goroutines.
//
// Elements are not required to share a currency: each amount is scaled
// against its own precision.
type Amounts []Amount

// MulAll returns a new slice in which every amount has been multiplied by
// factor e using the [Nearest] mode.
// See also method [Amount.Mul].
func (aa Amounts) MulAll(e float64) Amounts {
	return aa.MulAllWithMode(e, Nearest)
}

// MulAllWithMode returns a new slice in which every amount has been
// multiplied by factor e using the given rounding mode.
// See also method [Amount.MulWithMode].
func (aa Amounts) MulAllWithMode(e float64, mode RoundingMode) Amounts {
	res := make(Amounts, len(aa))
	for i, a := range aa {
		res[i] = a.MulWithMode(e, mode)
	}
	return res
}

// QuoAll returns a new slice in which every amount has been divided by
// divisor e using the [Nearest] mode.
// See also method [Amount.Quo].
//
// QuoAll returns an error if the divisor is 0.
func (aa Amounts) QuoAll(e float64) (Amounts, error) {
	return aa.QuoAllWithMode(e, Nearest)
}

// QuoAllWithMode returns a new slice in which every amount has been divided
// by divisor e using the given rounding mode.
// The divisor is checked up front, so either every element is divided or
// none is.
// See also method [Amount.QuoWithMode].
//
// QuoAllWithMode returns an error if the divisor is 0.
func (aa Amounts) QuoAllWithMode(e float64, mode RoundingMode) (Amounts, error) {
	if e == 0 {
		return nil, fmt.Errorf("dividing amounts by %v: %w", e, ErrDivisionByZero)
	}
	res := make(Amounts, len(aa))
	for i, a := range aa {
		c, err := a.QuoWithMode(e, mode)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}
	return res, nil
}

// PercentAll returns a new slice in which every amount has been replaced by
// e percent of itself using the [Nearest] mode.
// See also method [Amount.Percent].
func (aa Amounts) PercentAll(e float64) Amounts {
	return aa.PercentAllWithMode(e, Nearest)
}

// PercentAllWithMode returns a new slice in which every amount has been
// replaced by e percent of itself using the given rounding mode.
// See also method [Amount.PercentWithMode].
func (aa Amounts) PercentAllWithMode(e float64, mode RoundingMode) Amounts {
	res := make(Amounts, len(aa))
	for i, a := range aa {
		res[i] = a.PercentWithMode(e, mode)
	}
	return res
}
