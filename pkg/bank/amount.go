// Package bank holds the account domain model: amounts with native numeric
// promotion, account records, identifier generation, and the in-memory
// account store.
package bank

import "strconv"

// Amount is a monetary value that is either an int64 or a float64.
// Integer and floating balances may coexist across accounts; arithmetic
// between the two follows native promotion, so adding a float to an integer
// balance widens the result to float.
type Amount struct {
	isFloat bool
	i       int64
	f       float64
}

// Int returns an integer Amount.
func Int(v int64) Amount {
	return Amount{i: v}
}

// Float returns a floating-point Amount.
func Float(v float64) Amount {
	return Amount{isFloat: true, f: v}
}

// IsFloat reports whether the amount is carried as a float.
func (a Amount) IsFloat() bool {
	return a.isFloat
}

// Float64 returns the amount widened to float64.
func (a Amount) Float64() float64 {
	if a.isFloat {
		return a.f
	}
	return float64(a.i)
}

// Add returns a + b, promoting to float if either operand is a float.
func (a Amount) Add(b Amount) Amount {
	if a.isFloat || b.isFloat {
		return Float(a.Float64() + b.Float64())
	}
	return Int(a.i + b.i)
}

// Sub returns a - b, promoting to float if either operand is a float.
func (a Amount) Sub(b Amount) Amount {
	if a.isFloat || b.isFloat {
		return Float(a.Float64() - b.Float64())
	}
	return Int(a.i - b.i)
}

// Less reports whether a < b.
func (a Amount) Less(b Amount) bool {
	if a.isFloat || b.isFloat {
		return a.Float64() < b.Float64()
	}
	return a.i < b.i
}

// String renders integers without a decimal part and floats in the shortest
// form that round-trips.
func (a Amount) String() string {
	if a.isFloat {
		return strconv.FormatFloat(a.f, 'g', -1, 64)
	}
	return strconv.FormatInt(a.i, 10)
}

// MarshalJSON renders the amount as a bare JSON number, keeping the
// integer/float distinction visible in the output.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}
