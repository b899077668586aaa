// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qd

import "math"

var half = Quad{0.5, 0, 0, 0}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
//
// The general case runs Newton's iteration on f(r) = 1/r² - x, which
// converges to 1/√x without any division, starting from the native double
// square root. Each step doubles the number of correct digits, so three
// steps take the 53-bit seed past the 212-bit target; the final multiply
// by x recovers √x.
func (x Quad) Sqrt() Quad {
	if x.IsNaN() || x.Sign() < 0 {
		return NaN()
	}
	if x.IsZero() || x.IsInf() {
		return x
	}

	r := FromFloat64(1 / math.Sqrt(x[0]))
	h := Ldexp(x, -1)

	// r' = r + r×(1/2 - h·r²)
	r = r.Add(r.Mul(half.Sub(h.Mul(r.Sqr()))))
	r = r.Add(r.Mul(half.Sub(h.Mul(r.Sqr()))))
	r = r.Add(r.Mul(half.Sub(h.Mul(r.Sqr()))))

	return r.Mul(x)
}

// NRoot returns the n-th root of x.
//
// Special cases are:
//
//	NRoot(x, 0) = NaN
//	NRoot(x, 1) = x
//	NRoot(±0, n) = ±0 for n > 0
//	NRoot(x < 0, even n) = NaN
//	NRoot(+Inf, n) = +Inf, NRoot(-Inf, odd n) = -Inf
//	NRoot(x, -n) = 1 / NRoot(x, n)
//
// The general case runs Newton's iteration on f(r) = r⁻ⁿ - |x|, seeded
// with exp(-ln|x|/n) at native precision, and restores the sign for odd
// roots of negative values.
func (x Quad) NRoot(n int) Quad {
	switch {
	case n == 0 || x.IsNaN():
		return NaN()
	case n < 0:
		return x.NRoot(-n).Recip()
	case n == 1:
		return x
	case n == 2:
		return x.Sqrt()
	}
	neg := x.Sign() < 0
	if neg && n%2 == 0 {
		return NaN()
	}
	if x.IsZero() {
		return x
	}
	if x.IsInf() {
		return x
	}

	a := x.Abs()
	nf := FromFloat64(float64(n))

	// r' = r + r×(1 - a·rⁿ)/n converges to |x|^(-1/n).
	r := FromFloat64(math.Exp(-math.Log(a[0]) / float64(n)))
	r = r.Add(r.Mul(One.Sub(a.Mul(r.Powi(n)))).Div(nf))
	r = r.Add(r.Mul(One.Sub(a.Mul(r.Powi(n)))).Div(nf))
	r = r.Add(r.Mul(One.Sub(a.Mul(r.Powi(n)))).Div(nf))

	r = r.Recip()
	if neg {
		r = r.Neg()
	}
	return r
}

// Powi returns x raised to the integer power n, by binary exponentiation.
//
// Following the native pow conventions, Powi(x, 0) is 1 for every x,
// including NaN, and negative exponents of zero produce signed infinities.
func (x Quad) Powi(n int) Quad {
	if n == 0 {
		return One
	}
	if x.IsNaN() {
		return NaN()
	}
	k := n
	if k < 0 {
		k = -k
	}
	r := x
	s := One
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
