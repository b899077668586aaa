// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qd implements extended-precision binary floating-point arithmetic
using unevaluated sums of float64 values: Double packs two components for
roughly 106 bits of significand, Quad packs four for roughly 212 bits
(about 31 and 62 decimal digits).

Unlike arbitrary-precision packages, a Quad is an ordinary fixed-size
value: arithmetic stays in hardware float operations, orchestrated so the
rounding error of every step is captured exactly and carried in the lower
components. This keeps operations within a small constant factor of native
float64 speed while providing four times its precision.

A value is normalized when each component past the first carries at most
half a unit in the last place of its predecessor, which makes the
decomposition unique. All exported operations return normalized values and
follow IEEE-754 semantics for special values: invalid operations produce
NaN rather than errors, infinities combine the way native floats do, and
the sign of zero is preserved. The zero value of both types is 0 and ready
to use:

	var x qd.Quad // x == 0
	y := qd.FromFloat64(2)
	z := y.Sqrt().Sub(x)

Operations are methods on the value of the usual form

	func (x Quad) Binary(y Quad) Quad // z = x binary y
	func (x Quad) Unary() Quad        // z = unary x
	func (x Quad) Pred() bool         // p = pred(x)

and never modify their receiver, so values can be shared freely across
goroutines.

Conversions to and from strings use Parse, MustParse, String, Text and
Append; Quad also satisfies fmt.Formatter for formatted printing and the
encoding text marshaler interfaces. The only reported errors in the
package are the Parse failures ErrEmpty and ErrSyntax; indexing a
component out of range panics, as that is a caller bug rather than a data
condition.

Transcendental functions (exp, logarithms, trigonometric and hyperbolic
functions) live in the companion package math.
*/
package qd
