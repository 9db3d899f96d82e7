// Package rational implements exact fraction arithmetic for musical
// durations. Durations are expressed in quarter-note units, so a dotted
// eighth is 3/4 and a triplet quarter is 2/3. Keeping everything in
// reduced integer fractions avoids the floating-point drift that ruins
// divisions math when measures are summed.
package rational

import (
	"fmt"
)

// Rational is a fraction Num/Den. The zero value is 0/1. Every value
// produced by this package is fully reduced with Den > 0.
type Rational struct {
	Num int64
	Den int64
}

var Zero = Rational{0, 1}

// New returns num/den in lowest terms.
func New(num, den int64) Rational {
	if den == 0 {
		panic("rational: zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Rational{0, 1}
	}
	g := gcd(abs(num), den)
	return Rational{num / g, den / g}
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{n, 1}
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Lcm returns the least common multiple of a and b.
func Lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(abs(a), abs(b)) * b
}

func (r Rational) Add(o Rational) Rational {
	return New(r.Num*o.Den+o.Num*r.Den, r.Den*o.Den)
}

func (r Rational) Sub(o Rational) Rational {
	return New(r.Num*o.Den-o.Num*r.Den, r.Den*o.Den)
}

func (r Rational) Mul(o Rational) Rational {
	return New(r.Num*o.Num, r.Den*o.Den)
}

func (r Rational) Div(o Rational) Rational {
	if o.Num == 0 {
		panic("rational: division by zero")
	}
	return New(r.Num*o.Den, r.Den*o.Num)
}

func (r Rational) Neg() Rational {
	return Rational{-r.Num, r.Den}
}

// Cmp returns -1, 0 or +1 depending on whether r is less than, equal
// to, or greater than o.
func (r Rational) Cmp(o Rational) int {
	d := r.Num*o.Den - o.Num*r.Den
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

func (r Rational) Less(o Rational) bool {
	return r.Cmp(o) < 0
}

func (r Rational) LessEq(o Rational) bool {
	return r.Cmp(o) <= 0
}

func (r Rational) Equal(o Rational) bool {
	return r.Cmp(o) == 0
}

func (r Rational) IsZero() bool {
	return r.Num == 0
}

func (r Rational) Sign() int {
	switch {
	case r.Num < 0:
		return -1
	case r.Num > 0:
		return 1
	}
	return 0
}

func (r Rational) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// IsInt reports whether r is a whole number.
func (r Rational) IsInt() bool {
	return r.Den == 1
}

// HasPowerOfTwoDen reports whether the reduced denominator is a power
// of two, i.e. the value is expressible in plain (non-tuplet) binary
// subdivision.
func (r Rational) HasPowerOfTwoDen() bool {
	return r.Den&(r.Den-1) == 0
}

func (r Rational) String() string {
	if r.Den == 1 {
		return fmt.Sprintf("%d", r.Num)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
