// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"

	"github.com/db47h/qd"
)

// Log returns the natural logarithm of x.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(0) = NaN
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
func Log(x qd.Quad) qd.Quad {
	if x.Eq(qd.One) {
		return qd.Quad{}
	}
	if x.IsNaN() || x.Sign() <= 0 {
		return qd.NaN()
	}
	if x.IsInf() {
		return x
	}

	// Newton iteration on f(z) = exp(z) - x, in the numerically stable
	// form z' = z + x·exp(-z) - 1. The float64 seed is accurate to 53
	// bits and each round better than doubles that, so three rounds
	// suffice; the loop runs a few more with an early exit in case the
	// seed was degraded by a subnormal or near-overflow argument.
	z := qd.FromFloat64(math.Log(x.Component(0)))
	for i := 0; i < 6; i++ {
		zn := z.Add(x.Mul(Exp(z.Neg()))).Sub(qd.One)
		if zn.Eq(z) {
			break
		}
		z = zn
	}
	return z
}

// Log2 returns the binary logarithm of x. The special cases are the
// same as for Log.
func Log2(x qd.Quad) qd.Quad {
	return Log(x).Div(qd.Ln2)
}

// Log10 returns the decimal logarithm of x. The special cases are the
// same as for Log.
func Log10(x qd.Quad) qd.Quad {
	return Log(x).Div(qd.Ln10)
}

// LogBase returns the base b logarithm of x, computed as Log(x)/Log(b).
func LogBase(x, b qd.Quad) qd.Quad {
	return Log(x).Div(Log(b))
}

// Log1p returns the natural logarithm of 1 plus its argument x,
// accurate even when x is near zero.
func Log1p(x qd.Quad) qd.Quad {
	if x.IsZero() || x.IsNaN() || (x.IsInf() && x.Sign() > 0) {
		return x
	}
	if math.Abs(x.Component(0)) > 0x1p-8 {
		return Log(qd.One.Add(x))
	}
	// Newton on f(z) = expm1(z) - x keeps full precision for tiny x:
	// z' = z - (expm1(z) - x)/(expm1(z) + 1).
	z := qd.FromFloat64(math.Log1p(x.Component(0)))
	for i := 0; i < 4; i++ {
		e := Expm1(z)
		zn := z.Sub(e.Sub(x).Div(e.Add(qd.One)))
		if zn.Eq(z) {
			break
		}
		z = zn
	}
	return z
}
