// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qd

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (-0 and +0 are equal)
//	+1 if x >  y
//
// The order is total: NaN sorts above +Inf regardless of its sign bit.
// Use the classification predicates for IEEE-style partial comparisons.
func (x Quad) Cmp(y Quad) int {
	xn, yn := x.IsNaN(), y.IsNaN()
	switch {
	case xn && yn:
		return 0
	case xn:
		return 1
	case yn:
		return -1
	}
	// Normalization makes the component sequences compare
	// lexicographically.
	for i := 0; i < 4; i++ {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// Eq reports whether x == y. It is false if either operand is NaN.
func (x Quad) Eq(y Quad) bool {
	return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) == 0
}

// Lt reports whether x < y. It is false if either operand is NaN.
func (x Quad) Lt(y Quad) bool {
	return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) < 0
}

// Le reports whether x <= y. It is false if either operand is NaN.
func (x Quad) Le(y Quad) bool {
	return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) <= 0
}

// Gt reports whether x > y. It is false if either operand is NaN.
func (x Quad) Gt(y Quad) bool {
	return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) > 0
}

// Ge reports whether x >= y. It is false if either operand is NaN.
func (x Quad) Ge(y Quad) bool {
	return !x.IsNaN() && !y.IsNaN() && x.Cmp(y) >= 0
}

// Min returns the smaller of x and y, or NaN if either operand is NaN.
func (x Quad) Min(y Quad) Quad {
	if x.IsNaN() || y.IsNaN() {
		return NaN()
	}
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y, or NaN if either operand is NaN.
func (x Quad) Max(y Quad) Quad {
	if x.IsNaN() || y.IsNaN() {
		return NaN()
	}
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}
