// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qd

import "math"

// Add returns the sum x + y.
//
// Following IEEE semantics, a NaN operand yields NaN, as does adding
// infinities of opposite signs.
func (x Quad) Add(y Quad) Quad {
	if x.IsNaN() || y.IsNaN() {
		return NaN()
	}
	if x.IsInf() || y.IsInf() {
		// Inf + -Inf is NaN, any other combination keeps the infinity.
		return FromFloat64(x[0] + y[0])
	}
	if x.IsZero() && y.IsZero() {
		return FromFloat64(x[0] + y[0]) // preserve -0 + -0 == -0
	}
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}

	// Merge the two component sequences by decreasing magnitude, keeping a
	// double-length accumulator (u, v) and committing a component through
	// accumulate whenever the three-term sum spills.
	var z [4]float64
	var u, v float64
	i, j, k := 0, 0, 0

	if math.Abs(x[i]) > math.Abs(y[j]) {
		u = x[i]
		i++
	} else {
		u = y[j]
		j++
	}
	if i < 4 && (j >= 4 || math.Abs(x[i]) > math.Abs(y[j])) {
		v = x[i]
		i++
	} else {
		v = y[j]
		j++
	}
	u, v = quickTwoSum(u, v)

	for k < 4 {
		if i >= 4 && j >= 4 {
			z[k] = u
			if k < 3 {
				z[k+1] = v
			}
			break
		}
		var t float64
		switch {
		case i >= 4:
			t = y[j]
			j++
		case j >= 4:
			t = x[i]
			i++
		case math.Abs(x[i]) > math.Abs(y[j]):
			t = x[i]
			i++
		default:
			t = y[j]
			j++
		}
		var s float64
		s, u, v = accumulate(u, v, t)
		if s != 0.0 {
			z[k] = s
			k++
		}
	}
	// Components beyond the precision budget fold into the last slot.
	for ; i < 4; i++ {
		z[3] += x[i]
	}
	for ; j < 4; j++ {
		z[3] += y[j]
	}
	return Quad(renorm4(z[0], z[1], z[2], z[3]))
}

// Sub returns the difference x - y.
func (x Quad) Sub(y Quad) Quad {
	return x.Add(y.Neg())
}

// Mul returns the product x × y.
//
// The general algorithm forms the 13 partial products that contribute to a
// 212-bit significand (ten exact twoProd pairs plus three high-word-only
// terms of order ε⁴) and compresses them by order of magnitude. Partial
// products that swap places when the operands swap always meet in a
// symmetric compressor position, so Mul commutes bit for bit.
func (x Quad) Mul(y Quad) Quad {
	if x.IsNaN() || y.IsNaN() {
		return NaN()
	}
	if x.IsInf() || y.IsInf() || x.IsZero() || y.IsZero() {
		// IEEE float multiplication covers every special combination,
		// including Inf × 0 = NaN and the sign of zero results.
		return FromFloat64(x[0] * y[0])
	}

	p0, q0 := twoProd(x[0], y[0])

	p1, q1 := twoProd(x[0], y[1])
	p2, q2 := twoProd(x[1], y[0])

	p3, q3 := twoProd(x[0], y[2])
	p4, q4 := twoProd(x[1], y[1])
	p5, q5 := twoProd(x[2], y[0])

	p6, q6 := twoProd(x[0], y[3])
	p7, q7 := twoProd(x[1], y[2])
	p8, q8 := twoProd(x[2], y[1])
	p9, q9 := twoProd(x[3], y[0])

	// order ε: p1, p2 and the ε² residue of p0
	u0, u1, u2 := threeThreeSum(p1, p2, q0)

	// order ε²
	s0, s1, s2 := sixThreeSum(q1, q2, u1, p3, p5, p4)

	// order ε³
	r0, r1 := nineTwoSum(u2, q4, q3, q5, p6, p9, p7, p8, s1)

	// order ε⁴: plain products suffice
	lo := r1 + s2 + ((x[1]*y[3] + x[3]*y[1]) + x[2]*y[2]) + ((q6 + q9) + (q7 + q8))

	return Quad(renorm5(p0, u0, s0, r0, lo))
}

// Sqr returns x², exploiting the symmetry of the cross products to do
// roughly half the work of Mul.
func (x Quad) Sqr() Quad {
	if x.IsNaN() {
		return NaN()
	}
	if x.IsInf() || x.IsZero() {
		return FromFloat64(x[0] * x[0])
	}

	p0, q0 := twoSqr(x[0])
	p1, q1 := twoProd(2.0*x[0], x[1])
	p2, q2 := twoProd(2.0*x[0], x[2])
	p3, q3 := twoSqr(x[1])
	p4, q4 := twoProd(2.0*x[0], x[3])
	p5, q5 := twoProd(2.0*x[1], x[2])

	c1, e1 := twoSum(q0, p1)
	c2, f1, f2 := threeThreeSum(p2, p3, q1)
	c2, f0 := twoSum(c2, e1)
	c3, g1, g2 := sixThreeSum(q2, q3, f1, p4, p5, f0)
	c4 := g1 + g2 + f2 + q4 + q5 + 2.0*x[1]*x[3] + x[2]*x[2]

	return Quad(renorm5(p0, c1, c2, c3, c4))
}

// MulFloat64 returns x × f. It is the Quad × float64 product the division
// loop and the parser build on; going through FromFloat64 and Mul would
// compute the same value with four times the partial products.
func (x Quad) MulFloat64(f float64) Quad {
	if x.IsNaN() || f != f {
		return NaN()
	}
	if x.IsInf() || math.IsInf(f, 0) || x.IsZero() || f == 0 {
		return FromFloat64(x[0] * f)
	}

	p0, q0 := twoProd(x[0], f)
	p1, q1 := twoProd(x[1], f)
	p2, q2 := twoProd(x[2], f)
	p3 := x[3] * f

	s1, t0 := twoSum(q0, p1)
	s2, t1, t2 := threeThreeSum(q1, p2, t0)
	s3, t3 := threeTwoSum(q2, p3, t1)
	s4 := t2 + t3

	return Quad(renorm5(p0, s1, s2, s3, s4))
}

// Div returns the quotient x / y.
//
// The general algorithm is component-wise long division: each round
// divides the leading component of the running remainder by y's leading
// component and subtracts the resulting multiple of y. Five quotient
// digits are needed for full precision since every round extracts at most
// one component's worth of it.
func (x Quad) Div(y Quad) Quad {
	if !x.IsFinite() || !y.IsFinite() || x.IsZero() || y.IsZero() {
		// IEEE float division covers every special combination:
		// NaN propagation, Inf/Inf = 0/0 = NaN, x/0 = ±Inf, x/Inf = ±0.
		return FromFloat64(x[0] / y[0])
	}

	q0 := x[0] / y[0]
	r := x.Sub(y.MulFloat64(q0))

	q1 := r[0] / y[0]
	r = r.Sub(y.MulFloat64(q1))

	q2 := r[0] / y[0]
	r = r.Sub(y.MulFloat64(q2))

	q3 := r[0] / y[0]
	r = r.Sub(y.MulFloat64(q3))

	q4 := r[0] / y[0]

	return Quad(renorm5(q0, q1, q2, q3, q4))
}

// Recip returns 1 / x.
func (x Quad) Recip() Quad {
	return One.Div(x)
}

// Rem returns the remainder of x / y with the sign of x, matching the
// native float remainder: x - y×trunc(x/y).
func (x Quad) Rem(y Quad) Quad {
	if x.IsNaN() || y.IsNaN() || x.IsInf() || y.IsZero() {
		return NaN()
	}
	if y.IsInf() || x.IsZero() {
		return x
	}
	return x.Sub(y.Mul(x.Div(y).Trunc()))
}

// DivEuclid returns the Euclidean quotient of x / y: the integer q such
// that x = q×y + r with 0 <= r < |y|.
func (x Quad) DivEuclid(y Quad) Quad {
	q := x.Div(y).Trunc()
	if x.Rem(y).Sign() < 0 {
		if y.Sign() > 0 {
			return q.Sub(One)
		}
		return q.Add(One)
	}
	return q
}

// RemEuclid returns the Euclidean remainder of x / y, in [0, |y|).
func (x Quad) RemEuclid(y Quad) Quad {
	r := x.Rem(y)
	if r.Sign() < 0 {
		return r.Add(y.Abs())
	}
	return r
}

// Sum returns the sum of its arguments, or 0 when called with none.
func Sum(xs ...Quad) Quad {
	var s Quad
	for _, x := range xs {
		s = s.Add(x)
	}
	return s
}

// Product returns the product of its arguments, or 1 when called with
// none.
func Product(xs ...Quad) Quad {
	p := One
	for _, x := range xs {
		p = p.Mul(x)
	}
	return p
}
