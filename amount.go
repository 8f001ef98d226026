package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

var (
	// ErrCurrencyMismatch occurs when a binary operation is attempted between
	// amounts denominated in different currencies.
	// The error carries both currency codes for diagnostics.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrDivisionByZero occurs when a scalar division is attempted with
	// a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)

var errAmountOverflow = errors.New("amount overflow")

// mismatchError returns a currency mismatch error carrying both currency codes.
func mismatchError(a, b Amount) error {
	return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, a.Code(), b.Code())
}

// Amount type represents a monetary amount: a signed count of minor units
// of a currency (e.g. 500 cents at precision 2 is 5.00 dollars).
// The zero value is 0 minor units of the zero value of [Currency].
//
// Arithmetic between amounts is exact integer arithmetic; scaling by a float
// factor goes through floating point and collapses back to an integer count
// of minor units under a [RoundingMode], so no fractional minor units ever
// exist after any operation returns.
//
// All operations except [Amount.RoundToPrecision] take value receivers and
// return new amounts, so Amount is safe for concurrent use by multiple
// goroutines as long as no shared value is re-rounded in place.
type Amount struct {
	curr  Currency // currency descriptor, owned by value
	units int64    // signed count of minor units
}

// NewAmount returns an amount equal to units * 10^-precision of the given
// currency. The integer amount is stored as passed: no validation and
// no rounding is performed.
//
//	NewAmount(500, NewCurrency("USD", "$", 2)) // $5.00
func NewAmount(units int64, curr Currency) Amount {
	return Amount{curr: curr, units: units}
}

// NewAmountFromDecimal converts a decimal number of major units to an amount.
// The conversion is exact: no rounding is performed.
// See also method [Amount.Decimal] and constructor [ParseAmount].
//
// NewAmountFromDecimal returns an error if:
//   - the decimal has more fractional digits than the precision of the currency;
//   - the resulting count of minor units does not fit in an int64.
func NewAmountFromDecimal(curr Currency, d decimal.Decimal) (Amount, error) {
	a, err := newAmountFromDecimal(curr, d)
	if err != nil {
		return Amount{}, fmt.Errorf("converting decimal: %w", err)
	}
	return a, nil
}

func newAmountFromDecimal(c Currency, d decimal.Decimal) (Amount, error) {
	d = d.Trim(0)
	if d.Scale() > c.Precision() {
		return Amount{}, fmt.Errorf("%v has fractional minor units", d)
	}
	if d.Scale() < c.Precision() {
		d = d.Pad(c.Precision())
		if d.Scale() < c.Precision() {
			return Amount{}, fmt.Errorf("padding decimal: %w", errAmountOverflow)
		}
	}
	u := d.Coef()
	if d.IsNeg() {
		if u > -math.MinInt64 {
			return Amount{}, errAmountOverflow
		}
		return NewAmount(-int64(u), c), nil
	}
	if u > math.MaxInt64 {
		return Amount{}, errAmountOverflow
	}
	return NewAmount(int64(u), c), nil
}

// ParseAmount converts a decimal string to an amount denominated in the given
// currency. The conversion is exact: at precision 2, "5", "5.0", and "5.00"
// all parse to 500 minor units, whereas "5.005" fails.
// See also constructors [NewAmountFromDecimal] and [decimal.Parse].
func ParseAmount(curr Currency, amount string) (Amount, error) {
	// Decimal
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	// Amount
	a, err := newAmountFromDecimal(curr, d)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return a, nil
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr Currency, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// MinorUnits returns the amount as a signed count of minor units of its
// currency (e.g. cents, pennies, satoshis).
func (a Amount) MinorUnits() int64 {
	return a.units
}

// Float64 returns the amount in major units as a float.
// The conversion is lossy for amounts whose integer count of minor units
// cannot be represented exactly as a float64.
// See also method [Amount.MinorUnits].
func (a Amount) Float64() float64 {
	return float64(a.MinorUnits()) / math.Pow10(a.Precision())
}

// Decimal returns the amount as a decimal number of major units.
// See also constructor [NewAmountFromDecimal].
//
// Decimal returns an error if the precision of the currency is greater
// than [decimal.MaxScale].
func (a Amount) Decimal() (decimal.Decimal, error) {
	d, err := decimal.New(a.MinorUnits(), a.Precision())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", a, err)
	}
	return d, nil
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Code returns the code of the amount's currency.
// See also method [Currency.Code].
func (a Amount) Code() string {
	return a.Curr().Code()
}

// Precision returns the precision of the amount's currency.
// See also method [Currency.Precision].
func (a Amount) Precision() int {
	return a.Curr().Precision()
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	switch {
	case a.units < 0:
		return -1
	case a.units > 0:
		return 1
	}
	return 0
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.units < 0
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.units > 0
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.units == 0
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	if a.IsNeg() {
		return a.Neg()
	}
	return a
}

// Neg returns an amount with the opposite sign.
// The currency is left unchanged.
func (a Amount) Neg() Amount {
	return NewAmount(-a.units, a.Curr())
}

// Zero returns an amount with a value of 0, having the same currency as amount a.
// See also method [Amount.ULP].
func (a Amount) Zero() Amount {
	return NewAmount(0, a.Curr())
}

// ULP (Unit in the Last Place) returns one minor unit of the amount's currency,
// the smallest representable positive difference between two amounts.
// It can be useful for implementing rounding and comparison algorithms.
// See also method [Amount.Zero].
func (a Amount) ULP() Amount {
	return NewAmount(1, a.Curr())
}

// Add returns the sum of amounts a and b.
// The sum of integer amounts is exact: no rounding is performed.
//
// Add returns an error if amounts are denominated in different currencies.
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, mismatchError(a, b)
	}
	return NewAmount(a.units+b.units, a.Curr()), nil
}

// Sub returns the difference between amounts a and b.
// The difference between integer amounts is exact: no rounding is performed.
//
// Sub returns an error if amounts are denominated in different currencies.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, mismatchError(a, b)
	}
	return NewAmount(a.units-b.units, a.Curr()), nil
}

// MulInt returns the product of amount a and integer factor e.
// The product of integer amounts is exact: no rounding is performed.
// See also method [Amount.Mul].
func (a Amount) MulInt(e int64) Amount {
	return NewAmount(a.units*e, a.Curr())
}

// QuoInt returns the quotient of amount a and integer divisor e, truncated
// toward zero, following integer division semantics.
// See also methods [Amount.Quo] and [Amount.Split].
//
// QuoInt returns an error if the divisor is 0.
func (a Amount) QuoInt(e int64) (Amount, error) {
	if e == 0 {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, ErrDivisionByZero)
	}
	return NewAmount(a.units/e, a.Curr()), nil
}

// Mul returns the product of amount a and factor e, rounded to an integer
// count of minor units using the [Nearest] mode.
// See also method [Amount.MulWithMode].
func (a Amount) Mul(e float64) Amount {
	return a.MulWithMode(e, Nearest)
}

// MulWithMode returns the product of amount a and factor e, rounded to an
// integer count of minor units using the given rounding mode.
//
// The multiplication is carried out in floating point: the amount is converted
// to major units, multiplied by the factor, scaled back by 10^precision, and
// collapsed to an integer by the mode. For example, multiplying 1.05 by 2.5
// gives 2.625 major units, which yields 263 minor units under [Nearest],
// 262 under [Floor], and 263 under [Ceil].
func (a Amount) MulWithMode(e float64, mode RoundingMode) Amount {
	return newAmountFromFloat(a.Curr(), a.Float64()*e, mode)
}

// Quo returns the quotient of amount a and divisor e, rounded to an integer
// count of minor units using the [Nearest] mode.
// See also methods [Amount.QuoWithMode] and [Amount.QuoInt].
//
// Quo returns an error if the divisor is 0.
func (a Amount) Quo(e float64) (Amount, error) {
	return a.QuoWithMode(e, Nearest)
}

// QuoWithMode returns the quotient of amount a and divisor e, rounded to an
// integer count of minor units using the given rounding mode.
// The division is carried out in floating point, like [Amount.MulWithMode].
//
// QuoWithMode returns an error if the divisor is 0.
func (a Amount) QuoWithMode(e float64, mode RoundingMode) (Amount, error) {
	if e == 0 {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, ErrDivisionByZero)
	}
	return newAmountFromFloat(a.Curr(), a.Float64()/e, mode), nil
}

// Percent returns e percent of the amount, rounded to an integer count of
// minor units using the [Nearest] mode.
// See also method [Amount.PercentWithMode].
func (a Amount) Percent(e float64) Amount {
	return a.PercentWithMode(e, Nearest)
}

// PercentWithMode returns e percent of the amount, rounded to an integer
// count of minor units using the given rounding mode.
// The computation is carried out in floating point, like [Amount.MulWithMode]:
// 2.8 percent of 1.05 major units gives 0.0294, which yields 3 minor units
// under [Nearest] and [Ceil], and 2 under [Floor].
func (a Amount) PercentWithMode(e float64, mode RoundingMode) Amount {
	return newAmountFromFloat(a.Curr(), a.Float64()*(e/100), mode)
}

// newAmountFromFloat converts a major-unit value to an amount by scaling it by
// 10^precision and collapsing to an integer count of minor units with the
// given rounding mode.
func newAmountFromFloat(c Currency, raw float64, mode RoundingMode) Amount {
	pow := math.Pow10(c.Precision())
	return NewAmount(int64(mode.round(raw*pow)), c)
}

// RoundToPrecision re-derives the integer amount from its major-unit value
// using the [Nearest] mode and overwrites the receiver's amount in place.
// Since the amount is already an integer count of minor units, this is an
// idempotent no-op in the absence of floating-point error; it is provided so
// that values constructed through other means can be re-normalized.
//
// RoundToPrecision is the only mutating operation on Amount and must not be
// called concurrently on a shared value without external synchronization.
func (a *Amount) RoundToPrecision() {
	pow := math.Pow10(a.Precision())
	raw := float64(a.units) / pow
	a.units = int64(math.Round(raw * pow))
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed one minor unit at a time among the
// first parts of the slice.
// See also method [Amount.QuoInt].
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Amount) split(parts int) ([]Amount, error) {
	if parts < 1 {
		return nil, fmt.Errorf("number of parts must be positive")
	}
	quo := a.units / int64(parts)
	rem := a.units % int64(parts)
	ulp := int64(1)
	if rem < 0 {
		ulp, rem = -1, -rem
	}
	res := make([]Amount, parts)
	for i := range res {
		u := quo
		// Remainder distribution
		if int64(i) < rem {
			u += ulp
		}
		res[i] = NewAmount(u, a.Curr())
	}
	return res, nil
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// Equal returns true if the amounts are denominated in the same currency and
// have equal integer amounts.
// Unlike ordering, equality is defined across currencies: amounts of
// different currencies are simply not equal.
// See also method [Amount.Cmp].
func (a Amount) Equal(b Amount) bool {
	return a.SameCurr(b) && a.units == b.units
}

// Less returns true if both amounts are denominated in the same currency and
// amount a is numerically smaller than amount b.
// Amounts of different currencies have no defined order, so Less returns false.
// See also method [Amount.Cmp].
func (a Amount) Less(b Amount) bool {
	return a.SameCurr(b) && a.units < b.units
}

// Greater returns true if both amounts are denominated in the same currency
// and amount a is numerically larger than amount b.
// Amounts of different currencies have no defined order, so Greater returns false.
// See also method [Amount.Cmp].
func (a Amount) Greater(b Amount) bool {
	return a.SameCurr(b) && a.units > b.units
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Amounts of different currencies have no defined order, so ok is false and
// the comparison result is meaningless.
// See also methods [Amount.Equal], [Amount.Less], [Amount.Greater].
func (a Amount) Cmp(b Amount) (r int, ok bool) {
	if !a.SameCurr(b) {
		return 0, false
	}
	switch {
	case a.units < b.units:
		return -1, true
	case a.units > b.units:
		return 1, true
	}
	return 0, true
}

// Min returns the smaller amount.
// See also method [Amount.Cmp].
//
// Min returns an error if amounts are denominated in different currencies.
func (a Amount) Min(b Amount) (Amount, error) {
	r, ok := a.Cmp(b)
	if !ok {
		return Amount{}, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, mismatchError(a, b))
	}
	if r <= 0 {
		return a, nil
	}
	return b, nil
}

// Max returns the larger amount.
// See also method [Amount.Cmp].
//
// Max returns an error if amounts are denominated in different currencies.
func (a Amount) Max(b Amount) (Amount, error) {
	r, ok := a.Cmp(b)
	if !ok {
		return Amount{}, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, mismatchError(a, b))
	}
	if r >= 0 {
		return a, nil
	}
	return b, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the amount: the currency symbol, followed by the whole
// part of the amount, then a point and exactly precision fractional digits.
// At precision 0 the point and the fractional digits are omitted.
//
//	NewAmount(500, NewCurrency("NGN", "₦", 2)) // ₦5.00
//	NewAmount(200, NewCurrency("JPY", "¥", 0)) // ¥200
//	NewAmount(200, NewCurrency("BTC", "₿", 8)) // ₿0.00000200
//
// The whole part follows integer division semantics, so negative amounts
// smaller than one major unit render without an arithmetic sign.
// See also method [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	prec := a.Precision()
	if prec == 0 {
		return a.Curr().Symbol() + strconv.FormatInt(a.MinorUnits(), 10)
	}

	// Whole and fractional parts
	whole, frac := int64(0), a.MinorUnits()
	if pow, ok := pow10(prec); ok {
		whole, frac = frac/pow, frac%pow
	}
	ufrac := uint64(frac)
	if frac < 0 {
		ufrac = -ufrac
	}

	digits := strconv.FormatUint(ufrac, 10)
	buf := make([]byte, 0, len(a.Curr().Symbol())+prec+21)
	buf = append(buf, a.Curr().Symbol()...)
	buf = strconv.AppendInt(buf, whole, 10)
	buf = append(buf, '.')
	for i := len(digits); i < prec; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, digits...)
	return string(buf)
}

// pow10 returns 10 raised to the power of n.
// If the result does not fit in an int64, ok is false.
func pow10(n int) (p int64, ok bool) {
	if n < 0 || n > 18 {
		return 0, false
	}
	p = 1
	for ; n > 0; n-- {
		p *= 10
	}
	return p, true
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description          |
//	| ------ | ------- | -------------------- |
//	| %s, %v | ₦5.00   | Amount               |
//	| %q     | "₦5.00" | Quoted amount        |
//
// The '-' format flag can be used with all verbs.
// The width is counted in runes, matching the padding of plain strings.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	// Monetary value
	num := a.String()
	numlen := len(num)

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + numlen + tquote
	runes := lquote + utf8.RuneCountInString(num) + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > runes {
		switch {
		case state.Flag('-'):
			tspaces = w - runes
		default:
			lspaces = w - runes
		}
		width += w - runes
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for i := 0; i < tspaces; i++ {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	for i := 0; i < tquote; i++ {
		buf[pos] = '"'
		pos--
	}

	// Monetary value
	for i := 0; i < numlen; i++ {
		buf[pos] = num[numlen-i-1]
		pos--
	}

	// Opening quote
	for i := 0; i < lquote; i++ {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for i := 0; i < lspaces; i++ {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Amount="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns an object with the fields "amount" and
// "currency", in that order; the byte sequence is stable and suitable for
// consumers that compare serialized text.
// See also method [Currency.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 96)
	text = append(text, `{"amount":`...)
	text = strconv.AppendInt(text, a.MinorUnits(), 10)
	text = append(text, `,"currency":`...)
	text = a.Curr().appendJSON(text)
	return append(text, '}'), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// All fields of the shape produced by [Amount.MarshalJSON] are required;
// unknown fields are ignored.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	var rec amountJSON
	if err := json.Unmarshal(text, &rec); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	b, err := rec.amount()
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = b
	return nil
}

// amountJSON mirrors the wire shape of an amount.
// Pointer fields distinguish an absent field from a zero value.
type amountJSON struct {
	Amount   *int64        `json:"amount"`
	Currency *currencyJSON `json:"currency"`
}

func (rec amountJSON) amount() (Amount, error) {
	switch {
	case rec.Amount == nil:
		return Amount{}, fmt.Errorf("missing field %q", "amount")
	case rec.Currency == nil:
		return Amount{}, fmt.Errorf("missing field %q", "currency")
	}
	curr, err := rec.Currency.currency()
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(*rec.Amount, curr), nil
}
