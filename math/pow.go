// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/db47h/qd"

// Pow returns x**y, the base-x exponential of y, computed as
// exp(y·ln x). For integer exponents, qd.Quad.Powi is exact about signs
// and considerably faster.
//
// Special cases are:
//
//	Pow(x, 0) = 1 for any x, including NaN
//	Pow(x, NaN) = NaN
//	Pow(NaN, y) = NaN
//	Pow(0, y>0) = 0
//	Pow(0, y<0) = +Inf
//	Pow(x<0, y) = NaN
func Pow(x, y qd.Quad) qd.Quad {
	if y.IsZero() {
		return qd.One
	}
	if x.IsNaN() || y.IsNaN() {
		return qd.NaN()
	}
	if x.IsZero() {
		if y.Sign() > 0 {
			return qd.Quad{}
		}
		return qd.Inf(1)
	}
	if x.Sign() < 0 {
		// A negative base is only meaningful for integer exponents;
		// use Powi for those.
		return qd.NaN()
	}
	return Exp(y.Mul(Log(x)))
}
