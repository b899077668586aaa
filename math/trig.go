// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"

	"github.com/db47h/qd"
)

// reduce brings x into the Taylor kernel's range in three stages:
// modulo 2π, then modulo π/2 leaving the quadrant in j, then modulo
// π/1024 leaving the table index in k and the residual |t| <= π/2048.
// ok is false when x is too large or not finite enough to reduce.
func reduce(x qd.Quad) (j, k int, t qd.Quad, ok bool) {
	if !x.IsFinite() {
		return 0, 0, qd.Quad{}, false
	}

	// x mod 2π.
	z := x.Div(twoPi).Round()
	r := x.Sub(twoPi.Mul(z))

	// r mod π/2. The rounded quotient is in [-2, 2]; fold -2 onto 2 so
	// the quadrant switch has four cases.
	q := math.Floor(r.Component(0)/halfPi.Component(0) + 0.5)
	if q < -2 || q > 2 || q != q {
		return 0, 0, qd.Quad{}, false
	}
	t = r.Sub(halfPi.MulFloat64(q))
	j = int(q)
	if j == -2 {
		j = 2
	}

	// t mod π/1024.
	q = math.Floor(t.Component(0)/pi1024.Component(0) + 0.5)
	if q < -tableSize || q > tableSize || q != q {
		return 0, 0, qd.Quad{}, false
	}
	t = t.Sub(pi1024.MulFloat64(q))
	k = int(q)
	return j, k, t, true
}

// sinCosReduced reconstructs sin and cos of the original angle from the
// reduction triple using the angle addition formulas and the π/1024
// tables.
func sinCosReduced(j, k int, t qd.Quad) (sin, cos qd.Quad) {
	u, v := sinCosTaylor(t) // sin t, cos t

	var s, c qd.Quad
	if k == 0 {
		s, c = u, v
	} else {
		st, ct := sinCosEntry(abs(k))
		if k > 0 {
			s = u.Mul(ct).Add(v.Mul(st))
			c = v.Mul(ct).Sub(u.Mul(st))
		} else {
			s = u.Mul(ct).Sub(v.Mul(st))
			c = v.Mul(ct).Add(u.Mul(st))
		}
	}

	switch j {
	case 0:
		return s, c
	case 1:
		return c, s.Neg()
	case -1:
		return c.Neg(), s
	default: // 2
		return s.Neg(), c.Neg()
	}
}

func abs(k int) int {
	if k < 0 {
		return -k
	}
	return k
}

// Sin returns the sine of the radian argument x.
//
// Special cases are:
//
//	Sin(±0) = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin(x qd.Quad) qd.Quad {
	if x.IsZero() {
		return x
	}
	j, k, t, ok := reduce(x)
	if !ok {
		return qd.NaN()
	}
	s, _ := sinCosReduced(j, k, t)
	return s
}

// Cos returns the cosine of the radian argument x.
//
// Special cases are:
//
//	Cos(±0) = 1
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos(x qd.Quad) qd.Quad {
	if x.IsZero() {
		return qd.One
	}
	j, k, t, ok := reduce(x)
	if !ok {
		return qd.NaN()
	}
	_, c := sinCosReduced(j, k, t)
	return c
}

// SinCos returns Sin(x) and Cos(x), sharing the argument reduction
// between them.
func SinCos(x qd.Quad) (sin, cos qd.Quad) {
	if x.IsZero() {
		return x, qd.One
	}
	j, k, t, ok := reduce(x)
	if !ok {
		return qd.NaN(), qd.NaN()
	}
	return sinCosReduced(j, k, t)
}

// Tan returns the tangent of the radian argument x.
//
// Special cases are:
//
//	Tan(±0) = ±0
//	Tan(±Inf) = NaN
//	Tan(NaN) = NaN
func Tan(x qd.Quad) qd.Quad {
	if x.IsZero() {
		return x
	}
	s, c := SinCos(x)
	return s.Div(c)
}
