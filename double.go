// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qd

import "math"

// A Double is a double-double floating point number: the exact sum of its
// two float64 components, carrying roughly 106 bits (31 decimal digits) of
// significand. The zero value is 0.
//
// Double follows the same representation rules as Quad with two
// components instead of four: the trailing component is at most half an
// ulp of the leading one, special values live in the leading component,
// and values are immutable. Only the arithmetic and algebraic layers are
// duplicated at this width; for transcendental functions, widen with
// Quad, which is exact.
type Double [2]float64

// DoubleEpsilon is the difference between 1 and the smallest Double
// greater than 1, 2^-104.
const DoubleEpsilon = 0x1p-104

// NewDouble returns the Double with the given components, without
// renormalizing. The caller must guarantee |lo| <= 0.5×ulp(hi).
func NewDouble(hi, lo float64) Double {
	return Double{hi, lo}
}

// DoubleFromFloat64 returns the Double value of f. The conversion is
// exact.
func DoubleFromFloat64(f float64) Double {
	return Double{f, 0}
}

// ParseDouble parses s with the same grammar as Parse and rounds the
// result to double-double precision.
func ParseDouble(s string) (Double, error) {
	z, err := Parse(s)
	if err != nil {
		return Double{}, err
	}
	return z.Double(), nil
}

// Quad widens x to quad-double precision. The conversion is exact.
func (x Double) Quad() Quad {
	return Quad{x[0], x[1], 0, 0}
}

// Float64 returns the leading component of x.
func (x Double) Float64() float64 { return x[0] }

// IsNaN reports whether x is a "not-a-number" value.
func (x Double) IsNaN() bool { return x[0] != x[0] }

// IsInf reports whether x is an infinity.
func (x Double) IsInf() bool { return math.IsInf(x[0], 0) }

// IsFinite reports whether x is neither an infinity nor NaN.
func (x Double) IsFinite() bool { return !x.IsNaN() && !x.IsInf() }

// IsZero reports whether x is ±0.
func (x Double) IsZero() bool { return x[0] == 0 }

// Signbit reports whether x is negative or negative zero.
func (x Double) Signbit() bool { return math.Signbit(x[0]) }

// Sign returns -1, 0 or +1 for negative, zero-or-NaN, and positive x.
func (x Double) Sign() int {
	switch {
	case x[0] > 0:
		return 1
	case x[0] < 0:
		return -1
	}
	return 0
}

// Neg returns -x.
func (x Double) Neg() Double { return Double{-x[0], -x[1]} }

// Abs returns the absolute value of x.
func (x Double) Abs() Double {
	if x.Signbit() {
		return x.Neg()
	}
	return x
}

// Add returns the sum x + y.
func (x Double) Add(y Double) Double {
	if x.IsNaN() || y.IsNaN() {
		return Double{math.NaN(), 0}
	}
	if x.IsInf() || y.IsInf() {
		return Double{x[0] + y[0], 0}
	}
	s1, s2 := twoSum(x[0], y[0])
	t1, t2 := twoSum(x[1], y[1])
	s2 += t1
	s1, s2 = quickTwoSum(s1, s2)
	s2 += t2
	return Double(renorm2(s1, s2))
}

// Sub returns the difference x - y.
func (x Double) Sub(y Double) Double {
	return x.Add(y.Neg())
}

// Mul returns the product x × y.
func (x Double) Mul(y Double) Double {
	if x.IsNaN() || y.IsNaN() {
		return Double{math.NaN(), 0}
	}
	if x.IsInf() || y.IsInf() || x.IsZero() || y.IsZero() {
		return Double{x[0] * y[0], 0}
	}
	p, e := twoProd(x[0], y[0])
	e += x[0]*y[1] + x[1]*y[0]
	return Double(renorm2(p, e))
}

// MulFloat64 returns x × f.
func (x Double) MulFloat64(f float64) Double {
	if x.IsNaN() || f != f {
		return Double{math.NaN(), 0}
	}
	if x.IsInf() || math.IsInf(f, 0) || x.IsZero() || f == 0 {
		return Double{x[0] * f, 0}
	}
	p, e := twoProd(x[0], f)
	e += x[1] * f
	return Double(renorm2(p, e))
}

// Sqr returns x².
func (x Double) Sqr() Double {
	if x.IsNaN() {
		return Double{math.NaN(), 0}
	}
	if x.IsInf() || x.IsZero() {
		return Double{x[0] * x[0], 0}
	}
	p, e := twoSqr(x[0])
	e += 2.0*x[0]*x[1] + x[1]*x[1]
	return Double(renorm2(p, e))
}

// Div returns the quotient x / y, by three rounds of component-wise long
// division.
func (x Double) Div(y Double) Double {
	if !x.IsFinite() || !y.IsFinite() || x.IsZero() || y.IsZero() {
		return Double{x[0] / y[0], 0}
	}
	q1 := x[0] / y[0]
	r := x.Sub(y.MulFloat64(q1))
	q2 := r[0] / y[0]
	r = r.Sub(y.MulFloat64(q2))
	q3 := r[0] / y[0]
	return Double(renorm3(q1, q2, q3))
}

// Recip returns 1 / x.
func (x Double) Recip() Double {
	return DoubleFromFloat64(1).Div(x)
}

// Sqrt returns the square root of x, with the same special cases as
// Quad.Sqrt.
//
// A single correction step suffices at this width: with r = 1/√x at
// native precision and s = x·r, the error of s² against x refined by r/2
// doubles the 53 correct bits past the 106-bit target (Karp's trick).
func (x Double) Sqrt() Double {
	if x.IsNaN() || x.Sign() < 0 {
		return Double{math.NaN(), 0}
	}
	if x.IsZero() || x.IsInf() {
		return x
	}
	r := 1 / math.Sqrt(x[0])
	s := x[0] * r
	p, e := twoSqr(s)
	d := x.Sub(Double{p, e})
	return Double(renorm2(twoSum(s, d[0]*(r*0.5))))
}

// Powi returns x raised to the integer power n, by binary exponentiation.
// Powi(x, 0) is 1 for every x, including NaN.
func (x Double) Powi(n int) Double {
	if n == 0 {
		return Double{1, 0}
	}
	if x.IsNaN() {
		return Double{math.NaN(), 0}
	}
	k := n
	if k < 0 {
		k = -k
	}
	r := x
	s := Double{1, 0}
	for k > 1 {
		if k&1 == 1 {
			s = s.Mul(r)
		}
		r = r.Sqr()
		k >>= 1
	}
	r = r.Mul(s)
	if n < 0 {
		return r.Recip()
	}
	return r
}

// Floor returns the greatest integer value less than or equal to x.
func (x Double) Floor() Double {
	c0 := math.Floor(x[0])
	var c1 float64
	if c0 == x[0] {
		c1 = math.Floor(x[1])
	}
	return Double(renorm2(c0, c1))
}

// Ceil returns the least integer value greater than or equal to x.
func (x Double) Ceil() Double {
	c0 := math.Ceil(x[0])
	var c1 float64
	if c0 == x[0] {
		c1 = math.Ceil(x[1])
	}
	return Double(renorm2(c0, c1))
}

// Trunc returns the integer part of x, rounding toward zero.
func (x Double) Trunc() Double {
	if x.Signbit() {
		return x.Ceil()
	}
	return x.Floor()
}

// Round returns the nearest integer to x, rounding half away from zero.
func (x Double) Round() Double {
	c0, exact := roundComp(x[0], x[1])
	var c1 float64
	if exact {
		c1, _ = roundComp(x[1], 0)
	}
	return Double(renorm2(c0, c1))
}

// Cmp compares x and y with the same total order as Quad.Cmp.
func (x Double) Cmp(y Double) int {
	xn, yn := x.IsNaN(), y.IsNaN()
	switch {
	case xn && yn:
		return 0
	case xn:
		return 1
	case yn:
		return -1
	}
	for i := 0; i < 2; i++ {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// String formats x with its full 31 meaningful digits.
func (x Double) String() string {
	if x.IsNaN() || x.IsInf() {
		return x.Quad().String()
	}
	return x.Quad().Text('g', 31)
}
