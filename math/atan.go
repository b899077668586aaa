// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"

	"github.com/db47h/qd"
)

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
//
// Special cases are:
//
//	Atan2(NaN, x) = NaN
//	Atan2(y, NaN) = NaN
//	Atan2(0, 0) = NaN
//	Atan2(±Inf, ±Inf) = NaN
//	Atan2(y>0, 0) = π/2
//	Atan2(y<0, 0) = -π/2
//	Atan2(0, x>0) = 0
//	Atan2(0, x<0) = π
//	Atan2(±Inf, x) = ±π/2
//	Atan2(y, +Inf) = ±0
//	Atan2(y>0, -Inf) = π
//	Atan2(y<0, -Inf) = -π
func Atan2(y, x qd.Quad) qd.Quad {
	switch {
	case y.IsNaN() || x.IsNaN():
		return qd.NaN()
	case y.IsZero() && x.IsZero():
		return qd.NaN()
	case y.IsInf() && x.IsInf():
		return qd.NaN()
	case y.IsZero():
		if x.Sign() > 0 {
			return qd.Quad{}
		}
		return qd.Pi
	case x.IsZero(), y.IsInf():
		if y.Sign() > 0 {
			return halfPi
		}
		return halfPi.Neg()
	case x.IsInf() && x.Sign() > 0:
		if y.Signbit() {
			return qd.Quad{}.Neg()
		}
		return qd.Quad{}
	case x.IsInf():
		if y.Sign() > 0 {
			return qd.Pi
		}
		return qd.Pi.Neg()
	case x.Eq(y):
		if y.Sign() > 0 {
			return quarterPi
		}
		return qd.Ldexp(quarterPi, 1).Add(quarterPi).Neg()
	case x.Eq(y.Neg()):
		if y.Sign() > 0 {
			return qd.Ldexp(quarterPi, 1).Add(quarterPi)
		}
		return quarterPi.Neg()
	}

	// Newton iteration on the unit circle: with r = hypot(x, y), the
	// point (x/r, y/r) is (cos θ, sin θ) for the angle we want. Seed
	// from the float64 result and refine via whichever of
	// θ' = θ + (sin θₜ - sin θ)/cos θ and θ' = θ - (cos θₜ - cos θ)/sin θ
	// has the larger denominator.
	r := x.Sqr().Add(y.Sqr()).Sqrt()
	xx := x.Div(r)
	yy := y.Div(r)

	z := qd.FromFloat64(math.Atan2(y.Component(0), x.Component(0)))
	if math.Abs(xx.Component(0)) > math.Abs(yy.Component(0)) {
		for i := 0; i < 3; i++ {
			s, c := SinCos(z)
			z = z.Add(yy.Sub(s).Div(c))
		}
	} else {
		for i := 0; i < 3; i++ {
			s, c := SinCos(z)
			z = z.Sub(xx.Sub(c).Div(s))
		}
	}
	return z
}

// Atan returns the arc tangent of x.
//
// Special cases are:
//
//	Atan(±0) = ±0
//	Atan(±Inf) = ±π/2
//	Atan(NaN) = NaN
func Atan(x qd.Quad) qd.Quad {
	if x.IsZero() {
		return x
	}
	return Atan2(x, qd.One)
}

// Asin returns the arc sine of x.
//
// Special cases are:
//
//	Asin(±0) = ±0
//	Asin(x) = NaN if x < -1 or x > 1
func Asin(x qd.Quad) qd.Quad {
	if x.IsZero() {
		return x
	}
	a := x.Abs()
	switch a.Cmp(qd.One) {
	case 1:
		return qd.NaN()
	case 0:
		if x.Sign() > 0 {
			return halfPi
		}
		return halfPi.Neg()
	}
	return Atan2(x, qd.One.Sub(x.Sqr()).Sqrt())
}

// Acos returns the arc cosine of x.
//
// Special cases are:
//
//	Acos(1) = 0
//	Acos(-1) = π
//	Acos(x) = NaN if x < -1 or x > 1
func Acos(x qd.Quad) qd.Quad {
	a := x.Abs()
	switch a.Cmp(qd.One) {
	case 1:
		return qd.NaN()
	case 0:
		if x.Sign() > 0 {
			return qd.Quad{}
		}
		return qd.Pi
	}
	return Atan2(qd.One.Sub(x.Sqr()).Sqrt(), x)
}
