// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qd

import "math"

// Rounding to integers works component-wise: when a component is already
// integral the rounding decision cascades to the next one, since only then
// can the lower-order components move the result.

// Floor returns the greatest integer value less than or equal to x.
func (x Quad) Floor() Quad {
	c0 := math.Floor(x[0])
	var c1, c2, c3 float64
	if c0 == x[0] {
		c1 = math.Floor(x[1])
		if c1 == x[1] {
			c2 = math.Floor(x[2])
			if c2 == x[2] {
				c3 = math.Floor(x[3])
			}
		}
	}
	return Quad(renorm4(c0, c1, c2, c3))
}

// Ceil returns the least integer value greater than or equal to x.
func (x Quad) Ceil() Quad {
	c0 := math.Ceil(x[0])
	var c1, c2, c3 float64
	if c0 == x[0] {
		c1 = math.Ceil(x[1])
		if c1 == x[1] {
			c2 = math.Ceil(x[2])
			if c2 == x[2] {
				c3 = math.Ceil(x[3])
			}
		}
	}
	return Quad(renorm4(c0, c1, c2, c3))
}

// Trunc returns the integer part of x, rounding toward zero.
func (x Quad) Trunc() Quad {
	if x.Signbit() {
		return x.Ceil()
	}
	return x.Floor()
}

// roundComp rounds the component c half away from zero, with tail (the
// next component) breaking exact half ties: a tail opposing the rounding
// direction means the true value is on the other side of the tie.
func roundComp(c, tail float64) (r float64, exact bool) {
	r = math.Round(c)
	if r == c {
		return r, true
	}
	if math.Abs(r-c) == 0.5 {
		if r > c && tail < 0 {
			r--
		} else if r < c && tail > 0 {
			r++
		}
	}
	return r, false
}

// Round returns the nearest integer to x, rounding half away from zero.
func (x Quad) Round() Quad {
	var c [4]float64
	for i := 0; i < 4; i++ {
		tail := 0.0
		if i < 3 {
			tail = x[i+1]
		}
		r, exact := roundComp(x[i], tail)
		c[i] = r
		if !exact {
			break
		}
	}
	return Quad(renorm4(c[0], c[1], c[2], c[3]))
}

// IsInt reports whether x is an integer.
func (x Quad) IsInt() bool {
	return x.IsFinite() && x == x.Trunc()
}
