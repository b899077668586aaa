// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math_test

import (
	"testing"

	"github.com/db47h/qd"
	"github.com/db47h/qd/math"
)

func TestSinhCoshTanh(t *testing.T) {
	one := qd.One
	check(t, "Sinh(1)", math.Sinh(one),
		"1.1752011936438014568823818505956008151557179813340958702295654")
	check(t, "Cosh(1)", math.Cosh(one),
		"1.5430806348152437784779056207570616826015291123658637047374022")
	check(t, "Tanh(1)", math.Tanh(one),
		"0.7615941559557648881194582826047935904127685972579365515968105")
	// The small-argument Taylor branch.
	x := qd.MustParse("0.01")
	check(t, "Sinh(0.01)", math.Sinh(x),
		"1.0000166667500001984129739861411738017641560135227524140262643e-2")
	check(t, "Tanh(0.01)", math.Tanh(x),
		"9.9996666799994603393289197088394975100110314242336516426318740e-3")
	// cosh² - sinh² = 1
	for _, f := range []float64{0.001, 0.5, 3, 20} {
		y := qd.FromFloat64(f)
		d := math.Cosh(y).Sqr().Sub(math.Sinh(y).Sqr()).Sub(qd.One).Abs()
		if d.Cmp(qd.FromFloat64(0x1p-195)) > 0 {
			t.Errorf("cosh²-sinh² at %g off by %v", f, d)
		}
	}
}

func TestHypSpecial(t *testing.T) {
	inf := qd.Inf(1)
	if z := math.Sinh(qd.Quad{}); !z.IsZero() {
		t.Errorf("Sinh(0) = %v", z)
	}
	if z := math.Sinh(inf.Neg()); !z.IsInf() || z.Sign() > 0 {
		t.Errorf("Sinh(-Inf) = %v", z)
	}
	if z := math.Cosh(qd.Quad{}); z != qd.One {
		t.Errorf("Cosh(0) = %v", z)
	}
	if z := math.Cosh(inf.Neg()); !z.IsInf() || z.Sign() < 0 {
		t.Errorf("Cosh(-Inf) = %v, want +Inf", z)
	}
	if z := math.Tanh(inf); z != qd.One {
		t.Errorf("Tanh(+Inf) = %v, want 1", z)
	}
	if z := math.Tanh(qd.FromFloat64(-400)); !z.Eq(qd.One.Neg()) {
		t.Errorf("Tanh(-400) = %v, want -1", z)
	}
	checkNaN(t, "Sinh(NaN)", math.Sinh(qd.NaN()))
	checkNaN(t, "Cosh(NaN)", math.Cosh(qd.NaN()))
	checkNaN(t, "Tanh(NaN)", math.Tanh(qd.NaN()))
}

func TestInverseHyperbolic(t *testing.T) {
	check(t, "Asinh(1)", math.Asinh(qd.One),
		"0.8813735870195430252326093249797923090281603282616354107532956")
	check(t, "Acosh(2)", math.Acosh(qd.FromFloat64(2)),
		"1.3169578969248167086250463473079684440269819714675164797684723")
	check(t, "Atanh(0.5)", math.Atanh(qd.FromFloat64(0.5)),
		"0.5493061443340548456976226184612628523237452789113747258673471")
	if z := math.Asinh(qd.Quad{}); !z.IsZero() {
		t.Errorf("Asinh(0) = %v", z)
	}
	if z := math.Asinh(qd.Inf(-1)); !z.IsInf() || z.Sign() > 0 {
		t.Errorf("Asinh(-Inf) = %v", z)
	}
	if z := math.Acosh(qd.One); !z.IsZero() {
		t.Errorf("Acosh(1) = %v, want 0", z)
	}
	checkNaN(t, "Acosh(0.5)", math.Acosh(qd.FromFloat64(0.5)))
	if z := math.Atanh(qd.One); !z.IsInf() || z.Sign() < 0 {
		t.Errorf("Atanh(1) = %v, want +Inf", z)
	}
	if z := math.Atanh(qd.One.Neg()); !z.IsInf() || z.Sign() > 0 {
		t.Errorf("Atanh(-1) = %v, want -Inf", z)
	}
	checkNaN(t, "Atanh(2)", math.Atanh(qd.FromFloat64(2)))
}

func TestHyperbolicInverses(t *testing.T) {
	for _, f := range []float64{-5, -0.25, 0.5, 2, 30} {
		x := qd.FromFloat64(f)
		z := math.Asinh(math.Sinh(x))
		d := z.Sub(x).Abs()
		if tol := x.Abs().MulFloat64(0x1p-195); d.Cmp(tol) > 0 {
			t.Errorf("Asinh(Sinh(%g)) = %v, off by %v", f, z, d)
		}
	}
	for _, f := range []float64{-0.99, -0.5, 0.125, 0.9} {
		x := qd.FromFloat64(f)
		z := math.Tanh(math.Atanh(x))
		if d := z.Sub(x).Abs(); d.Cmp(qd.FromFloat64(0x1p-195)) > 0 {
			t.Errorf("Tanh(Atanh(%g)) = %v, off by %v", f, z, d)
		}
	}
}
