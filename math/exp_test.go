// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math_test

import (
	"testing"

	"github.com/db47h/qd"
	"github.com/db47h/qd/math"
)

func TestExp(t *testing.T) {
	check(t, "Exp(0)", math.Exp(qd.Quad{}), "1")
	check(t, "Exp(1)", math.Exp(qd.One),
		"2.7182818284590452353602874713526624977572470936999595749669676")
	check(t, "Exp(2)", math.Exp(qd.FromFloat64(2)),
		"7.3890560989306502272304274605750078131803155705518473240871278")
	check(t, "Exp(0.5)", math.Exp(qd.FromFloat64(0.5)),
		"1.6487212707001281468486507878141635716537761007101480115750793")
	check(t, "Exp(-10)", math.Exp(qd.FromFloat64(-10)),
		"4.5399929762484851535591515560550610237918088866564969259071305e-5")
	check(t, "Exp(Pi)", math.Exp(qd.Pi),
		"23.140692632779269005729086367948547380266106242600211993445046")
	if z := math.Exp(qd.One); z != qd.E {
		t.Errorf("Exp(1) = %v, want the E constant", z)
	}
}

func TestExpSpecial(t *testing.T) {
	if z := math.Exp(qd.Inf(1)); !z.IsInf() || z.Sign() < 0 {
		t.Errorf("Exp(+Inf) = %v", z)
	}
	if z := math.Exp(qd.Inf(-1)); !z.IsZero() {
		t.Errorf("Exp(-Inf) = %v", z)
	}
	if z := math.Exp(qd.FromFloat64(-1000)); !z.IsZero() {
		t.Errorf("Exp(-1000) = %v, want 0", z)
	}
	if z := math.Exp(qd.FromFloat64(1000)); !z.IsInf() {
		t.Errorf("Exp(1000) = %v, want +Inf", z)
	}
	checkNaN(t, "Exp(NaN)", math.Exp(qd.NaN()))
}

func TestExpLogInverse(t *testing.T) {
	for _, f := range []float64{0.125, 0.5, 1, 2, 10, 100, 600, -3, -40} {
		x := qd.FromFloat64(f)
		z := math.Log(math.Exp(x))
		d := z.Sub(x).Abs()
		tol := qd.FromFloat64(0x1p-200)
		if !x.IsZero() {
			tol = x.Abs().MulFloat64(0x1p-200)
		}
		if d.Cmp(tol) > 0 {
			t.Errorf("Log(Exp(%g)) = %v, off by %v", f, z, d)
		}
	}
}

func TestExpm1(t *testing.T) {
	check(t, "Expm1(0.001)", math.Expm1(qd.MustParse("0.001")),
		"1.0005001667083416680557539930583115630762005807014602285146744e-3")
	check(t, "Expm1(1)", math.Expm1(qd.One),
		"1.7182818284590452353602874713526624977572470936999595749669676")
	if z := math.Expm1(qd.Quad{}); !z.IsZero() {
		t.Errorf("Expm1(0) = %v", z)
	}
	if z := math.Expm1(qd.Inf(-1)); !z.Eq(qd.FromFloat64(-1)) {
		t.Errorf("Expm1(-Inf) = %v, want -1", z)
	}
	checkNaN(t, "Expm1(NaN)", math.Expm1(qd.NaN()))
}
