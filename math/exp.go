// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"

	"github.com/db47h/qd"
)

// Exp returns e**x, the base-e exponential of x.
//
// Special cases are:
//
//	Exp(+Inf) = +Inf
//	Exp(-Inf) = 0
//	Exp(NaN) = NaN
//
// The argument is first reduced as x = m·ln 2 + r·2¹⁶ with |r| tiny, so
// that the Taylor series for exp(r)-1 converges in a handful of terms;
// the result is then squared back up sixteen times and scaled by 2**m.
func Exp(x qd.Quad) qd.Quad {
	// exp overflows a float64 past 709.78, and the quad tail cannot
	// rescue a leading component that is already ±Inf.
	if x.Component(0) <= -709.0 {
		return qd.Quad{}
	}
	if x.Component(0) >= 709.0 {
		return qd.Inf(1)
	}
	if x.IsNaN() {
		return qd.NaN()
	}
	if x.IsZero() {
		return qd.One
	}
	if x.Eq(qd.One) {
		return qd.E
	}

	const k = 1 << 16

	m := math.Floor(x.Component(0)/qd.Ln2.Component(0) + 0.5)
	r := qd.Ldexp(x.Sub(qd.Ln2.MulFloat64(m)), -16)

	// exp(r) - 1 by Taylor series; the constant and linear terms are
	// reintroduced after the loop.
	p := r.Sqr()
	s := r.Add(qd.Ldexp(p, -1))
	thresh := qd.Epsilon / k
	for i := 3; i <= maxFact; i++ {
		p = p.Mul(r)
		t := p.Mul(invFact(i))
		s = s.Add(t)
		if math.Abs(t.Float64()) <= thresh {
			break
		}
	}

	// Undo the 2¹⁶ scaling: (1+s)² - 1 = 2s + s².
	for i := 0; i < 16; i++ {
		s = qd.Ldexp(s, 1).Add(s.Sqr())
	}
	return qd.Ldexp(s.Add(qd.One), int(m))
}

// Expm1 returns e**x - 1, accurate even when x is near zero.
func Expm1(x qd.Quad) qd.Quad {
	if x.IsZero() || x.IsNaN() {
		return x
	}
	if x.IsInf() {
		if x.Signbit() {
			return qd.FromFloat64(-1)
		}
		return x
	}
	// Away from zero the direct form loses nothing.
	if math.Abs(x.Component(0)) > 0.5 {
		return Exp(x).Sub(qd.One)
	}
	p := x.Sqr()
	s := x.Add(qd.Ldexp(p, -1))
	thresh := 0.5 * math.Abs(x.Float64()) * qd.Epsilon
	for i := 3; i <= maxFact; i++ {
		p = p.Mul(x)
		t := p.Mul(invFact(i))
		s = s.Add(t)
		if math.Abs(t.Float64()) <= thresh {
			break
		}
	}
	return s
}
