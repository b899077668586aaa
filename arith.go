// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the error-free transforms and renormalization kernels
// that all Quad and Double arithmetic is built on. Each transform returns a
// rounded result together with the exact rounding error, so that a sequence
// of hardware float operations can track a ~106 or ~212 bit significand.

package qd

import "math"

const (
	// splitter is 2^27+1, used to split a float64 into two 26-bit halves.
	splitter = 134217729.0
	// splitThresh is 2^996. Operands at or above this magnitude are
	// prescaled by 2^-28 before splitting to avoid overflow in
	// splitter*a, and the halves are scaled back by 2^28.
	splitThresh = 6.696928794914170755e+299

	scaleDown = 3.7252902984619140625e-09 // 2^-28
	scaleUp   = 268435456.0               // 2^28
)

// twoSum returns s = fl(a+b) and err such that s + err == a + b exactly.
// There is no constraint on the relative magnitudes of a and b.
func twoSum(a, b float64) (s, err float64) {
	s = a + b
	bb := s - a
	err = (a - (s - bb)) + (b - bb)
	return s, err
}

// quickTwoSum is twoSum under the precondition |a| >= |b|.
func quickTwoSum(a, b float64) (s, err float64) {
	s = a + b
	err = b - (s - a)
	return s, err
}

// twoDiff returns s = fl(a-b) and err such that s + err == a - b exactly.
func twoDiff(a, b float64) (s, err float64) {
	s = a - b
	bb := s - a
	err = (a - (s - bb)) - (b + bb)
	return s, err
}

// split returns hi, lo with hi + lo == a exactly, each half fitting in 26
// bits of significand, so that products of halves are exact.
func split(a float64) (hi, lo float64) {
	if a > splitThresh || a < -splitThresh {
		a *= scaleDown
		temp := splitter * a
		hi = temp - (temp - a)
		lo = a - hi
		return hi * scaleUp, lo * scaleUp
	}
	temp := splitter * a
	hi = temp - (temp - a)
	lo = a - hi
	return hi, lo
}

// twoProdFMA returns p = fl(a*b) and err with p + err == a*b exactly,
// using a fused multiply-add to extract the error term.
func twoProdFMA(a, b float64) (p, err float64) {
	p = a * b
	err = math.FMA(a, b, -p)
	return p, err
}

// twoSqrFMA is twoProdFMA specialized to a == b.
func twoSqrFMA(a float64) (q, err float64) {
	q = a * a
	err = math.FMA(a, a, -q)
	return q, err
}

// twoProdSplit computes the same (p, err) pair as twoProdFMA using the
// Dekker splitting trick. Both must agree bit for bit on all finite inputs
// that do not overflow during splitting.
func twoProdSplit(a, b float64) (p, err float64) {
	p = a * b
	aHi, aLo := split(a)
	bHi, bLo := split(b)
	err = ((aHi*bHi - p) + aHi*bLo + aLo*bHi) + aLo*bLo
	return p, err
}

// twoSqrSplit is twoProdSplit specialized to a == b.
func twoSqrSplit(a float64) (q, err float64) {
	q = a * a
	hi, lo := split(a)
	err = ((hi*hi - q) + 2.0*hi*lo) + lo*lo
	return q, err
}

// threeTwoSum compresses a+b+c into two doubles.
func threeTwoSum(a, b, c float64) (s, e float64) {
	t1, t2 := twoSum(a, b)
	s, t3 := twoSum(c, t1)
	return s, t2 + t3
}

// threeThreeSum compresses a+b+c into three ordered doubles. The result is
// symmetric in a and b.
func threeThreeSum(a, b, c float64) (s0, s1, s2 float64) {
	t1, t2 := twoSum(a, b)
	s0, t3 := twoSum(c, t1)
	s1, s2 = twoSum(t2, t3)
	return s0, s1, s2
}

// fourTwoSum adds the pairs (a, b) and (c, d), where b and d are the low
// words, compressing the result into two doubles.
func fourTwoSum(a, b, c, d float64) (s, e float64) {
	s, e0 := twoSum(a, c)
	e0 += b + d
	return quickTwoSum(s, e0)
}

// sixThreeSum compresses the sum of six doubles into three. It is the
// pairwise sum of threeThreeSum(a, b, c) and threeThreeSum(d, e, f), so it
// is symmetric in (a, b) and in (d, e).
func sixThreeSum(a, b, c, d, e, f float64) (r0, r1, r2 float64) {
	p0, p1, p2 := threeThreeSum(a, b, c)
	q0, q1, q2 := threeThreeSum(d, e, f)
	r0, t0 := twoSum(p0, q0)
	r1, t1 := twoSum(p1, q1)
	r1, t2 := twoSum(r1, t0)
	r2 = p2 + q2 + t1 + t2
	return r0, r1, r2
}

// nineTwoSum compresses the sum of nine doubles into two. The reduction
// tree sums the four leading pairs (x0,x1) (x2,x3) (x4,x5) (x6,x7) first,
// so the result is invariant under swapping the members of any such pair.
func nineTwoSum(x0, x1, x2, x3, x4, x5, x6, x7, x8 float64) (r0, r1 float64) {
	s0, e0 := twoSum(x0, x1)
	s1, e1 := twoSum(x2, x3)
	s2, e2 := twoSum(x4, x5)
	s3, e3 := twoSum(x6, x7)
	u, eu := twoSum(s0, s1)
	v, ev := twoSum(s2, s3)
	w, ew := twoSum(u, v)
	r1 = x8 + ((e0 + e1) + (e2 + e3)) + ((eu + ev) + ew)
	return twoSum(w, r1)
}

// accumulate adds the correction c into the running pair (a, b). If the
// result fits in two components they are returned in (a1, b1) with s == 0;
// otherwise s holds the new leading component and (a1, b1) the remainder.
// A zero s from genuine cancellation and the "fits in two" signal are the
// same case for callers: there is no finished component to commit.
func accumulate(a, b, c float64) (s, a1, b1 float64) {
	s, b1 = twoSum(b, c)
	s, a1 = twoSum(a, s)
	za := a1 != 0.0
	zb := b1 != 0.0
	if za && zb {
		return s, a1, b1
	}
	if !zb {
		return 0.0, s, a1
	}
	return 0.0, s, b1
}

// compact4 merges a leading component and up to four residuals, in
// decreasing magnitude order, into at most four components satisfying the
// half-ulp normalization invariant. Residuals are folded into the last open
// component; a nonzero fold error opens the next component. Trailing slots
// are zero, so fully-cancelling input compacts to the canonical zero.
func compact4(lead float64, rest ...float64) [4]float64 {
	var z [4]float64
	z[0] = lead
	k := 0
	for _, u := range rest {
		s, e := quickTwoSum(z[k], u)
		z[k] = s
		if e != 0.0 && k < 3 {
			k++
			z[k] = e
		}
	}
	return z
}

// renorm4 restores the normalization invariant over four components that
// are already in rough magnitude order.
func renorm4(c0, c1, c2, c3 float64) [4]float64 {
	if math.IsInf(c0, 0) || math.IsNaN(c0) {
		return [4]float64{c0, 0, 0, 0}
	}
	s, c3 := quickTwoSum(c2, c3)
	s, c2 = quickTwoSum(c1, s)
	c0, c1 = quickTwoSum(c0, s)
	return compact4(c0, c1, c2, c3)
}

// renorm5 restores the invariant over five components, discarding the
// lowest-order error once four components are full.
func renorm5(c0, c1, c2, c3, c4 float64) [4]float64 {
	if math.IsInf(c0, 0) || math.IsNaN(c0) {
		return [4]float64{c0, 0, 0, 0}
	}
	s, c4 := quickTwoSum(c3, c4)
	s, c3 = quickTwoSum(c2, s)
	s, c2 = quickTwoSum(c1, s)
	c0, c1 = quickTwoSum(c0, s)
	return compact4(c0, c1, c2, c3, c4)
}

// renorm2 is the two-component degenerate case.
func renorm2(c0, c1 float64) [2]float64 {
	if math.IsInf(c0, 0) || math.IsNaN(c0) {
		return [2]float64{c0, 0}
	}
	s, e := quickTwoSum(c0, c1)
	return [2]float64{s, e}
}

// renorm3 compresses three rough components into two.
func renorm3(c0, c1, c2 float64) [2]float64 {
	if math.IsInf(c0, 0) || math.IsNaN(c0) {
		return [2]float64{c0, 0}
	}
	s, c2 := quickTwoSum(c1, c2)
	c0, c1 = quickTwoSum(c0, s)
	if c1 == 0.0 {
		c0, c1 = quickTwoSum(c0, c2)
	} else {
		c1, _ = quickTwoSum(c1, c2)
	}
	return [2]float64{c0, c1}
}
