// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qd

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// debugQD enables expensive normalization checks in intermediate results.
const debugQD = false

// A Quad is a quad-double floating point number: the exact, unevaluated sum
// of its four float64 components, carrying roughly 212 bits (62 decimal
// digits) of significand. The zero value is 0.
//
// A Quad is normalized when each component past the first is at most half a
// unit in the last place of its predecessor. All exported operations return
// normalized values; New is the only entry point that skips
// renormalization. NaN and infinity status is carried by the first
// component alone, with the remaining components zero, and the sign of the
// value is the sign of the first component.
//
// Quad is an immutable value type. Operations never modify their operands
// and there is no shared state, so values can be used freely from multiple
// goroutines.
type Quad [4]float64

// Epsilon is the difference between 1 and the smallest Quad greater
// than 1, 2^-209.
const Epsilon = 0x1p-209

// Commonly used values. These are pre-normalized component tuples; deriving
// them through Parse at init time would only re-round what is already the
// correctly rounded decomposition.
var (
	One  = Quad{1, 0, 0, 0}
	Pi   = Quad{3.141592653589793116e+00, 1.224646799147353207e-16, -2.994769809718339666e-33, 1.112454220863365282e-49}
	E    = Quad{2.718281828459045091e+00, 1.445646891729250158e-16, -2.127717108038176765e-33, 1.515630159841218954e-49}
	Ln2  = Quad{6.931471805599452862e-01, 2.319046813846299558e-17, 5.707708438416212066e-34, -3.582432210601811423e-50}
	Ln10 = Quad{2.302585092994045901e+00, -2.170756223382249351e-16, -9.984262454465776570e-33, -4.023357454450206379e-49}
)

// New returns the Quad with the given components, without renormalizing.
// The caller must guarantee that the components already satisfy the
// normalization invariant; constants tables and exact integer splits are
// the intended users.
func New(c0, c1, c2, c3 float64) Quad {
	z := Quad{c0, c1, c2, c3}
	if debugQD {
		z.validate()
	}
	return z
}

// FromFloat64 returns the Quad value of f. The conversion is exact.
func FromFloat64(f float64) Quad {
	return Quad{f, 0, 0, 0}
}

// FromFloat32 returns the Quad value of f. The conversion is exact.
func FromFloat32(f float32) Quad {
	return Quad{float64(f), 0, 0, 0}
}

// FromInt returns the Quad value of i. The conversion is exact for every
// value of every integer type: 64-bit magnitudes are split across the two
// leading components.
func FromInt[T constraints.Integer](i T) Quad {
	neg := i < 0
	u := uint64(i)
	if neg {
		u = -u
	}
	hi := float64(u>>32) * 4294967296.0
	lo := float64(u & 0xffffffff)
	if neg {
		hi, lo = -hi, -lo
	}
	s, e := quickTwoSum(hi, lo)
	return Quad{s, e, 0, 0}
}

// NaN returns a quad-double "not-a-number" value.
func NaN() Quad {
	return Quad{math.NaN(), 0, 0, 0}
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) Quad {
	if sign < 0 {
		return Quad{math.Inf(-1), 0, 0, 0}
	}
	return Quad{math.Inf(1), 0, 0, 0}
}

// Float64 returns the leading component of x: the float64 nearest to x for
// finite values, and the matching special value for NaN and infinities.
func (x Quad) Float64() float64 { return x[0] }

// Float32 returns x truncated to float32 precision.
func (x Quad) Float32() float32 { return float32(x[0]) }

// Int64 returns x truncated toward zero. The result is undefined when x
// does not fit in an int64 or is not finite.
func (x Quad) Int64() int64 {
	// The truncated components are integers summed modulo 2^64;
	// converting each through uint64 keeps the conversion in range even
	// when a single component lands exactly on 2^63 (as happens for
	// MaxInt64, which normalizes to {2^63, -1}).
	t := x.Trunc()
	var u uint64
	for _, c := range t {
		if c >= 0 {
			u += uint64(c)
		} else {
			u -= uint64(-c)
		}
	}
	return int64(u)
}

// Component returns the i-th component of x. It panics if i is not in
// [0, 4): an out-of-range index is a caller bug, not a data condition.
func (x Quad) Component(i int) float64 {
	if i < 0 || i >= len(x) {
		panic(fmt.Sprintf("qd: component index %d out of range", i))
	}
	return x[i]
}

// Components returns the four components of x in decreasing magnitude
// order.
func (x Quad) Components() [4]float64 { return x }

// Double returns x truncated to double-double precision.
func (x Quad) Double() Double {
	if x.IsNaN() || x.IsInf() {
		return Double{x[0], 0}
	}
	return Double(renorm2(x[0], x[1]+(x[2]+x[3])))
}

// IsNaN reports whether x is a "not-a-number" value.
func (x Quad) IsNaN() bool { return x[0] != x[0] }

// IsInf reports whether x is an infinity.
func (x Quad) IsInf() bool { return math.IsInf(x[0], 0) }

// IsFinite reports whether x is neither an infinity nor NaN.
func (x Quad) IsFinite() bool { return !x.IsNaN() && !x.IsInf() }

// IsZero reports whether x is ±0.
func (x Quad) IsZero() bool { return x[0] == 0 }

// Signbit reports whether x is negative or negative zero.
func (x Quad) Signbit() bool { return math.Signbit(x[0]) }

// Sign returns:
//
//	-1 if x <  0
//	 0 if x is ±0 or NaN
//	+1 if x >  0
func (x Quad) Sign() int {
	switch {
	case x[0] > 0:
		return 1
	case x[0] < 0:
		return -1
	}
	return 0
}

// Neg returns -x.
func (x Quad) Neg() Quad {
	return Quad{-x[0], -x[1], -x[2], -x[3]}
}

// Abs returns the absolute value of x.
func (x Quad) Abs() Quad {
	if x.Signbit() {
		return x.Neg()
	}
	return x
}

// Ldexp returns x × 2^exp. The scaling is exact as long as no component
// over- or underflows.
func Ldexp(x Quad, exp int) Quad {
	return Quad{
		math.Ldexp(x[0], exp),
		math.Ldexp(x[1], exp),
		math.Ldexp(x[2], exp),
		math.Ldexp(x[3], exp),
	}
}

// ulp returns the unit in the last place of f for finite nonzero f.
func ulp(f float64) float64 {
	f = math.Abs(f)
	return math.Nextafter(f, math.Inf(1)) - f
}

func (x Quad) validate() {
	if !debugQD {
		panic("validate called but debugQD is not set")
	}
	if x.IsNaN() || x.IsInf() {
		if x[1] != 0 || x[2] != 0 || x[3] != 0 {
			panic(fmt.Sprintf("special value with nonzero trailing components: %v", [4]float64(x)))
		}
		return
	}
	for i := 1; i < len(x); i++ {
		if x[i-1] == 0 {
			if x[i] != 0 {
				panic(fmt.Sprintf("nonzero component %d after zero component: %v", i, [4]float64(x)))
			}
			continue
		}
		if math.Abs(x[i]) > 0.5*ulp(x[i-1]) {
			panic(fmt.Sprintf("component %d violates the half-ulp invariant: %v", i, [4]float64(x)))
		}
	}
}
