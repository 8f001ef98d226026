package money

import (
	"encoding/json"
	"fmt"
)

// Currency type represents a currency descriptor: an alphabetic code, a display
// symbol, and the precision of the currency's minor unit.
// The zero value is a descriptor with empty code and symbol and a precision of 0.
//
// Currency is an immutable value and is copied freely; an [Amount] owns its own
// copy of the descriptor, so two amounts never share one.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Currency value.
//
// Currency performs no validation: any strings and any precision from 0 to 255
// are accepted, including empty strings.
// Two descriptors are equal if and only if all three fields are equal;
// the symbol is part of a currency's identity, not just its display.
type Currency struct {
	code   string
	symbol string
	prec   uint8
}

// NewCurrency returns a currency descriptor with the given code, symbol, and
// precision, stored exactly as passed.
//
//	USD  $  2
//	JPY  ¥  0
//	BTC  ₿  8
func NewCurrency(code, symbol string, prec uint8) Currency {
	return Currency{code: code, symbol: symbol, prec: prec}
}

// Code returns the alphabetic code of the currency (e.g. "USD").
func (c Currency) Code() string {
	return c.code
}

// Symbol returns the display symbol of the currency (e.g. "$").
func (c Currency) Symbol() string {
	return c.symbol
}

// Precision returns the number of digits after the decimal point required for
// representing the minor unit of the currency:
//   - A precision of 0 indicates currencies without minor units,
//     such as the Japanese Yen.
//   - A precision of 2 indicates currencies that use 2 digits to represent
//     their minor units, such as the US Dollar, whose minor unit, 1 cent,
//     is represented as 0.01 dollars.
//   - Higher precisions describe subdivided units such as Bitcoin's satoshi,
//     represented as 0.00000001 bitcoins with a precision of 8.
func (c Currency) Precision() int {
	return int(c.prec)
}

// String method implements the [fmt.Stringer] interface and returns
// the code of the currency.
// See also method [Currency.Code].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns an object with the fields "code", "symbol", and
// "precision", in that order.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	return c.appendJSON(make([]byte, 0, 48)), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// All three fields are required; unknown fields are ignored.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	var rec currencyJSON
	if err := json.Unmarshal(text, &rec); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	curr, err := rec.currency()
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	*c = curr
	return nil
}

// currencyJSON mirrors the wire shape of a currency.
// Pointer fields distinguish an absent field from a zero value.
type currencyJSON struct {
	Code      *string `json:"code"`
	Symbol    *string `json:"symbol"`
	Precision *uint8  `json:"precision"`
}

func (rec currencyJSON) currency() (Currency, error) {
	switch {
	case rec.Code == nil:
		return Currency{}, fmt.Errorf("missing field %q", "code")
	case rec.Symbol == nil:
		return Currency{}, fmt.Errorf("missing field %q", "symbol")
	case rec.Precision == nil:
		return Currency{}, fmt.Errorf("missing field %q", "precision")
	}
	return NewCurrency(*rec.Code, *rec.Symbol, *rec.Precision), nil
}

// appendJSON appends the JSON encoding of the currency to text.
// The field order is fixed: code, symbol, precision.
func (c Currency) appendJSON(text []byte) []byte {
	text = append(text, `{"code":`...)
	text = appendJSONString(text, c.code)
	text = append(text, `,"symbol":`...)
	text = appendJSONString(text, c.symbol)
	text = append(text, `,"precision":`...)
	text = appendUint8(text, c.prec)
	text = append(text, '}')
	return text
}

// appendJSONString appends a quoted JSON string.
// Quotes, backslashes, and control characters are escaped;
// all other bytes, including multibyte runes, are copied verbatim.
func appendJSONString(text []byte, s string) []byte {
	const hex = "0123456789abcdef"
	text = append(text, '"')
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b == '"':
			text = append(text, '\\', '"')
		case b == '\\':
			text = append(text, '\\', '\\')
		case b >= 0x20:
			text = append(text, b)
		case b == '\b':
			text = append(text, '\\', 'b')
		case b == '\f':
			text = append(text, '\\', 'f')
		case b == '\n':
			text = append(text, '\\', 'n')
		case b == '\r':
			text = append(text, '\\', 'r')
		case b == '\t':
			text = append(text, '\\', 't')
		default:
			text = append(text, '\\', 'u', '0', '0', hex[b>>4], hex[b&0xF])
		}
	}
	return append(text, '"')
}

// appendUint8 appends the decimal digits of u.
func appendUint8(text []byte, u uint8) []byte {
	if u >= 100 {
		text = append(text, '0'+u/100)
	}
	if u >= 10 {
		text = append(text, '0'+u/10%10)
	}
	return append(text, '0'+u%10)
}
