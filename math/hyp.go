// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"

	"github.com/db47h/qd"
)

// Sinh returns the hyperbolic sine of x.
//
// Special cases are:
//
//	Sinh(±0) = ±0
//	Sinh(±Inf) = ±Inf
//	Sinh(NaN) = NaN
func Sinh(x qd.Quad) qd.Quad {
	if x.IsZero() || x.IsNaN() || x.IsInf() {
		return x
	}
	if math.Abs(x.Component(0)) > 0.05 {
		e := Exp(x)
		return qd.Ldexp(e.Sub(e.Recip()), -1)
	}
	// Near zero (exp(x) - exp(-x))/2 cancels catastrophically; the odd
	// Taylor series has all positive terms and loses nothing.
	nx := x.Sqr()
	s := x
	p := x
	thresh := 0.5 * math.Abs(x.Float64()) * qd.Epsilon
	for k := 3; k <= maxFact; k += 2 {
		p = p.Mul(nx)
		t := p.Mul(invFact(k))
		s = s.Add(t)
		if math.Abs(t.Float64()) <= thresh {
			break
		}
	}
	return s
}

// Cosh returns the hyperbolic cosine of x.
//
// Special cases are:
//
//	Cosh(±0) = 1
//	Cosh(±Inf) = +Inf
//	Cosh(NaN) = NaN
func Cosh(x qd.Quad) qd.Quad {
	if x.IsZero() {
		return qd.One
	}
	if x.IsNaN() {
		return x
	}
	if x.IsInf() {
		return qd.Inf(1)
	}
	e := Exp(x)
	return qd.Ldexp(e.Add(e.Recip()), -1)
}

// Tanh returns the hyperbolic tangent of x.
//
// Special cases are:
//
//	Tanh(±0) = ±0
//	Tanh(±Inf) = ±1
//	Tanh(NaN) = NaN
func Tanh(x qd.Quad) qd.Quad {
	if x.IsZero() || x.IsNaN() {
		return x
	}
	// exp(2x) saturates well before 300; the quad tail cannot tell the
	// ratio from ±1 past that point.
	if x.IsInf() || math.Abs(x.Component(0)) > 300 {
		if x.Sign() > 0 {
			return qd.One
		}
		return qd.One.Neg()
	}
	if math.Abs(x.Component(0)) > 0.05 {
		e := Exp(x)
		r := e.Recip()
		return e.Sub(r).Div(e.Add(r))
	}
	s := Sinh(x)
	return s.Div(qd.One.Add(s.Sqr()).Sqrt())
}

// Asinh returns the inverse hyperbolic sine of x.
//
// Special cases are:
//
//	Asinh(±0) = ±0
//	Asinh(±Inf) = ±Inf
//	Asinh(NaN) = NaN
func Asinh(x qd.Quad) qd.Quad {
	if x.IsZero() || x.IsNaN() || x.IsInf() {
		return x
	}
	// asinh is odd; evaluating on |x| keeps the log argument > 1 so the
	// x + √(x²+1) sum never cancels.
	a := x.Abs()
	r := Log(a.Add(a.Sqr().Add(qd.One).Sqrt()))
	if x.Signbit() {
		return r.Neg()
	}
	return r
}

// Acosh returns the inverse hyperbolic cosine of x.
//
// Special cases are:
//
//	Acosh(+Inf) = +Inf
//	Acosh(x) = NaN if x < 1
//	Acosh(NaN) = NaN
func Acosh(x qd.Quad) qd.Quad {
	if x.IsNaN() || x.Lt(qd.One) {
		return qd.NaN()
	}
	if x.Eq(qd.One) {
		return qd.Quad{}
	}
	if x.IsInf() {
		return x
	}
	return Log(x.Add(x.Sqr().Sub(qd.One).Sqrt()))
}

// Atanh returns the inverse hyperbolic tangent of x.
//
// Special cases are:
//
//	Atanh(±0) = ±0
//	Atanh(±1) = ±Inf
//	Atanh(x) = NaN if x < -1 or x > 1
//	Atanh(NaN) = NaN
func Atanh(x qd.Quad) qd.Quad {
	if x.IsZero() || x.IsNaN() {
		return x
	}
	switch x.Abs().Cmp(qd.One) {
	case 1:
		return qd.NaN()
	case 0:
		return qd.Inf(x.Sign())
	}
	return qd.Ldexp(Log(qd.One.Add(x).Div(qd.One.Sub(x))), -1)
}
