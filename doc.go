/*
Package money implements fixed-point monetary values stored as integer counts
of minor units.
An [Amount] pairs a signed 64-bit integer amount with a caller-defined
[Currency] descriptor, so 5 dollars is stored as 500 cents and never as the
float 5.0.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Caller-defined currencies: any code, symbol, and precision from 0 to 255
  - Exact integer arithmetic for addition, subtraction, and comparison
  - Scaling by float factors with an explicit [RoundingMode]
  - Batch scaling over sequences of values via [Amounts]
  - A stable JSON encoding with a fixed field order

# Representation

The package consists of two main structs: Amount and Currency.
An Amount holds an int64 count of minor units and its own copy of a Currency.
The Currency struct is a plain descriptor of code, symbol, and precision;
there is no registry, and no validation is performed, so the caller decides
what a currency is.

# Operations

Addition, subtraction, integer multiplication, and integer division operate
on the integer amounts directly and are exact.
Scaling by a float factor (Mul, Quo, Percent) converts the amount to major
units, applies the factor in floating point, scales back by 10^precision, and
collapses the intermediate to an integer count of minor units, so the result
is always a whole number of minor units.

# Rounding

Collapsing a float intermediate to an integer is governed by a [RoundingMode]:
[Nearest] rounds to the nearest integer with ties away from zero, [Floor]
rounds toward negative infinity, and [Ceil] rounds toward positive infinity.
Every scaling operation has a convenience form that uses Nearest and
a WithMode form that takes the mode explicitly.

# Errors

Binary operations between amounts of different currencies fail with
[ErrCurrencyMismatch], and divisions by zero fail with [ErrDivisionByZero];
both are recognizable with [errors.Is].
Decoding malformed JSON fails with a wrapped structural error.
The package returns errors or panics, depending on the situation.
*/
package money
