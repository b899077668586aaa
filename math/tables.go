// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package math provides transcendental functions for quad-double values:
the exponential and logarithms, trigonometric functions with their
inverses, and the hyperbolic family. All functions follow the IEEE
special-value conventions of package qd: domain errors yield NaN, and no
function reports an error.
*/
package math

import (
	"math"
	"sync"

	"github.com/db47h/qd"
)

// Derived angle constants, exact power-of-two scalings of qd.Pi.
var (
	twoPi     = qd.Ldexp(qd.Pi, 1)
	halfPi    = qd.Ldexp(qd.Pi, -1)
	quarterPi = qd.Ldexp(qd.Pi, -2)
	pi1024    = qd.Ldexp(qd.Pi, -10)
)

// tableSize is the number of sine/cosine table entries: after reduction
// modulo π/2 the angle is at most π/4, so indices run to 256·π/1024.
const tableSize = 256

// maxFact bounds the inverse factorial table. 1/46! is far below the ε²
// of the smallest Taylor argument the tables are built from (π/4), so
// the adaptive loops always terminate inside the table.
const maxFact = 46

// The constant tables are immutable for the process lifetime once built.
// They are computed from the package's own arithmetic on first use: the
// inverse factorials by accumulating k! (exactly representable through
// 18!, correctly rounded past it), the sine/cosine entries by the Taylor
// kernel itself on the exact arguments k·π/1024.
var tables struct {
	once    sync.Once
	invFact [maxFact + 1]qd.Quad // invFact[k] = 1/k!
	sin     [tableSize + 1]qd.Quad
	cos     [tableSize + 1]qd.Quad
}

// initTables fills the inverse factorials first: the sine kernel below
// reads them directly, so the table entries can be built with it from
// within this same function without re-entering the sync.Once.
func initTables() {
	fact := qd.One
	tables.invFact[0] = qd.One
	for k := 1; k <= maxFact; k++ {
		fact = fact.MulFloat64(float64(k))
		tables.invFact[k] = fact.Recip()
	}

	tables.sin[0] = qd.Quad{}
	tables.cos[0] = qd.One
	for k := 1; k <= tableSize; k++ {
		s, c := sinCosKernel(pi1024.MulFloat64(float64(k)))
		tables.sin[k] = s
		tables.cos[k] = c
	}
}

func invFact(k int) qd.Quad {
	tables.once.Do(initTables)
	return tables.invFact[k]
}

func sinCosEntry(k int) (s, c qd.Quad) {
	tables.once.Do(initTables)
	return tables.sin[k], tables.cos[k]
}

// sinKernel evaluates the sine series of x, terminating once a term
// drops below the precision the leading component of x can influence.
// It converges usefully for |x| up to π/4 and is the sole builder of
// the sine table entries. The inverse factorials must be filled in
// before it runs.
func sinKernel(x qd.Quad) qd.Quad {
	if x.IsZero() {
		return x
	}
	thresh := 0.5 * math.Abs(x.Float64()) * qd.Epsilon
	nx := x.Sqr().Neg()
	s := x
	p := x
	for k := 3; k <= maxFact; k += 2 {
		p = p.Mul(nx)
		t := p.Mul(tables.invFact[k])
		s = s.Add(t)
		if math.Abs(t.Float64()) <= thresh {
			break
		}
	}
	return s
}

// sinCosKernel returns sin x and cos x for |x| <= π/4. The cosine comes
// from the sine for free: with |x| this small, cos x = √(1 - sin²x) has
// no cancellation to lose precision to.
func sinCosKernel(x qd.Quad) (sin, cos qd.Quad) {
	if x.IsZero() {
		return x, qd.One
	}
	sin = sinKernel(x)
	cos = qd.One.Sub(sin.Sqr()).Sqrt()
	return sin, cos
}

func sinCosTaylor(x qd.Quad) (sin, cos qd.Quad) {
	tables.once.Do(initTables)
	return sinCosKernel(x)
}
