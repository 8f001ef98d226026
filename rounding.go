package money

import (
	"errors"
	"fmt"
	"math"
)

// RoundingMode determines how a real-valued intermediate result is collapsed
// back to an integer count of minor units.
// The zero value is [Nearest], which is also the mode implied by every
// convenience operation that does not take an explicit mode.
//
// RoundingMode is stateless and is always passed as a parameter;
// it is never stored on a [Currency] or an [Amount].
type RoundingMode uint8

const (
	// Nearest rounds to the nearest integer, with ties rounded away from zero:
	// 2.5 rounds to 3, -2.5 rounds to -3.
	Nearest RoundingMode = iota

	// Floor rounds toward negative infinity:
	// 2.9 rounds to 2, -2.1 rounds to -3.
	Floor

	// Ceil rounds toward positive infinity:
	// 2.1 rounds to 3, -2.9 rounds to -2.
	Ceil
)

var errUnknownMode = errors.New("unknown rounding mode")

// ParseRoundingMode converts a string to a rounding mode.
// The input must be "nearest", "floor", or "ceil".
// ParseRoundingMode returns an error for any other string.
func ParseRoundingMode(mode string) (RoundingMode, error) {
	switch mode {
	case "nearest":
		return Nearest, nil
	case "floor":
		return Floor, nil
	case "ceil":
		return Ceil, nil
	}
	return Nearest, fmt.Errorf("%w %q", errUnknownMode, mode)
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the RoundingMode value.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Floor:
		return "floor"
	case Ceil:
		return "ceil"
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRoundingMode].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Nearest, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [RoundingMode.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m RoundingMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// round collapses a scaled intermediate value to an integral float64.
// Modes outside the enumeration behave as Nearest.
func (m RoundingMode) round(x float64) float64 {
	switch m {
	case Floor:
		return math.Floor(x)
	case Ceil:
		return math.Ceil(x)
	}
	return math.Round(x)
}
