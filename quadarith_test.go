// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qd

import (
	"math"
	"testing"
)

// rndQ returns a random normalized Quad with full-width significand.
func rndQ() Quad {
	x := FromFloat64(rndF())
	for i := 0; i < 3; i++ {
		x = x.Add(FromFloat64(x[i] * 0x1p-52 * rnd.Float64()))
	}
	return x
}

// near reports whether got is within 2^tolExp relative error of the value
// encoded by want.
func near(got Quad, want string, tolExp int) bool {
	w := MustParse(want)
	if w.IsZero() {
		return got.Abs().Cmp(FromFloat64(math.Ldexp(1, tolExp))) <= 0
	}
	diff := got.Sub(w).Abs()
	return diff.Cmp(w.Abs().MulFloat64(math.Ldexp(1, tolExp))) <= 0
}

func TestAddSpecial(t *testing.T) {
	inf, nan := Inf(1), NaN()
	td := []struct {
		x, y, z Quad
	}{
		{inf, inf, inf},
		{inf.Neg(), inf.Neg(), inf.Neg()},
		{inf, inf.Neg(), nan},
		{inf, Pi, inf},
		{Pi, inf.Neg(), inf.Neg()},
		{nan, Pi, nan},
		{Pi, nan, nan},
		{Quad{}, Quad{}, Quad{}},
		{Pi, Quad{}, Pi},
		{Quad{}, Pi, Pi},
	}
	for _, d := range td {
		z := d.x.Add(d.y)
		if d.z.IsNaN() {
			if !z.IsNaN() {
				t.Errorf("%v + %v = %v, want NaN", d.x, d.y, z)
			}
			continue
		}
		if z != d.z {
			t.Errorf("%v + %v = %v, want %v", d.x, d.y, z, d.z)
		}
	}
	// -0 + -0 keeps the sign of zero.
	nz := FromFloat64(math.Copysign(0, -1))
	if z := nz.Add(nz); !z.IsZero() || !z.Signbit() {
		t.Errorf("-0 + -0 = %v, want -0", z)
	}
}

func TestMulDivSpecial(t *testing.T) {
	inf, nan := Inf(1), NaN()
	if z := inf.Mul(Quad{}); !z.IsNaN() {
		t.Errorf("Inf × 0 = %v, want NaN", z)
	}
	if z := inf.Mul(Pi.Neg()); !z.IsInf() || z.Sign() > 0 {
		t.Errorf("Inf × -Pi = %v, want -Inf", z)
	}
	if z := nan.Mul(Pi); !z.IsNaN() {
		t.Errorf("NaN × Pi = %v, want NaN", z)
	}
	if z := inf.Div(inf); !z.IsNaN() {
		t.Errorf("Inf / Inf = %v, want NaN", z)
	}
	if z := One.Div(Quad{}); !z.IsInf() || z.Sign() < 0 {
		t.Errorf("1 / 0 = %v, want +Inf", z)
	}
	if z := One.Neg().Div(Quad{}); !z.IsInf() || z.Sign() > 0 {
		t.Errorf("-1 / 0 = %v, want -Inf", z)
	}
	if z := (Quad{}).Div(Quad{}); !z.IsNaN() {
		t.Errorf("0 / 0 = %v, want NaN", z)
	}
	if z := Pi.Div(inf); !z.IsZero() {
		t.Errorf("Pi / Inf = %v, want 0", z)
	}
}

func TestAddRegression(t *testing.T) {
	const piPlusE = "5.8598744820488384738229308546321653819544164930750653959419122"
	if z := Pi.Add(E); !near(z, piPlusE, -200) {
		t.Errorf("Pi + E = %v, want %s", z, piPlusE)
	}
	const eMinusPi = "-0.4233108251307480031023559119268403864399223056751462460079769645837"
	if z := E.Sub(Pi); !near(z, eMinusPi, -200) {
		t.Errorf("E - Pi = %v, want %s", z, eMinusPi)
	}
}

func TestMulRegression(t *testing.T) {
	const piTimesE = "8.5397342226735670654635508695465744950348885357651149618796011"
	if z := Pi.Mul(E); !near(z, piTimesE, -200) {
		t.Errorf("Pi × E = %v, want %s", z, piTimesE)
	}
	const piSqr = "9.8696044010893586188344909998761511353136994072407906264133493762200"
	if z := Pi.Sqr(); !near(z, piSqr, -200) {
		t.Errorf("Pi² = %v, want %s", z, piSqr)
	}
	if z := Pi.Sqr(); z != Pi.Mul(Pi) {
		t.Errorf("Pi.Sqr() = %v differs from Pi × Pi = %v", z, Pi.Mul(Pi))
	}
}

func TestDivRegression(t *testing.T) {
	const piOverE = "1.1557273497909217179100931833126962991208510231644158204997065353273"
	if z := Pi.Div(E); !near(z, piOverE, -200) {
		t.Errorf("Pi / E = %v, want %s", z, piOverE)
	}
	const recipPi = "0.3183098861837906715377675267450287240689192914809128974953346881178"
	if z := Pi.Recip(); !near(z, recipPi, -200) {
		t.Errorf("1 / Pi = %v, want %s", z, recipPi)
	}
	// Exact quotients come out exact.
	if z := FromFloat64(10).Div(FromFloat64(4)); z != FromFloat64(2.5) {
		t.Errorf("10 / 4 = %v, want 2.5", z)
	}
}

func TestMulCommutes(t *testing.T) {
	for i := 0; i < 10000; i++ {
		x, y := rndQ(), rndQ()
		if x.Mul(y) != y.Mul(x) {
			t.Fatalf("Mul not commutative for %v × %v", x, y)
		}
		if x.Add(y) != y.Add(x) {
			t.Fatalf("Add not commutative for %v + %v", x, y)
		}
	}
}

func TestArithIdentities(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := rndQ()
		if z := x.Add(Quad{}); z != x {
			t.Fatalf("%v + 0 = %v", x, z)
		}
		if z := x.Mul(One); z != x {
			t.Fatalf("%v × 1 = %v", x, z)
		}
		if z := x.Sub(x); !z.IsZero() {
			t.Fatalf("%v - itself = %v", x, z)
		}
		if z := x.Div(x); z != One {
			t.Fatalf("%v / itself = %v", x, z)
		}
		// x × f must agree with the generic product.
		f := rndF()
		if z, w := x.MulFloat64(f), x.Mul(FromFloat64(f)); z != w {
			t.Fatalf("MulFloat64(%v, %g) = %v, Mul = %v", x, f, z, w)
		}
	}
}

func TestNormalizedResults(t *testing.T) {
	for i := 0; i < 10000; i++ {
		x, y := rndQ(), rndQ()
		for _, z := range []Quad{x.Add(y), x.Sub(y), x.Mul(y), x.Div(y)} {
			checkNormalized(t, z)
		}
	}
}

func TestRem(t *testing.T) {
	if z := FromFloat64(21).Rem(FromFloat64(4)); z != One {
		t.Errorf("21 rem 4 = %v, want 1", z)
	}
	if z := FromFloat64(-21).Rem(FromFloat64(4)); !z.Eq(FromFloat64(-1)) {
		t.Errorf("-21 rem 4 = %v, want -1", z)
	}
	if z := FromFloat64(21).Rem(Quad{}); !z.IsNaN() {
		t.Errorf("21 rem 0 = %v, want NaN", z)
	}
	if z := Inf(1).Rem(FromFloat64(4)); !z.IsNaN() {
		t.Errorf("Inf rem 4 = %v, want NaN", z)
	}
	if z := FromFloat64(21).Rem(Inf(1)); !z.Eq(FromFloat64(21)) {
		t.Errorf("21 rem Inf = %v, want 21", z)
	}
}

func TestRemEuclid(t *testing.T) {
	four := FromFloat64(4)
	if z := FromFloat64(21).RemEuclid(four); !z.Eq(One) {
		t.Errorf("21 remEuclid 4 = %v, want 1", z)
	}
	if z := FromFloat64(-21).RemEuclid(four); !z.Eq(FromFloat64(3)) {
		t.Errorf("-21 remEuclid 4 = %v, want 3", z)
	}
	if z := FromFloat64(-21).RemEuclid(four.Neg()); !z.Eq(FromFloat64(3)) {
		t.Errorf("-21 remEuclid -4 = %v, want 3", z)
	}
	if z := FromFloat64(21).DivEuclid(four); !z.Eq(FromFloat64(5)) {
		t.Errorf("21 divEuclid 4 = %v, want 5", z)
	}
	if z := FromFloat64(-21).DivEuclid(four); !z.Eq(FromFloat64(-6)) {
		t.Errorf("-21 divEuclid 4 = %v, want -6", z)
	}
	if z := FromFloat64(-21).DivEuclid(four.Neg()); !z.Eq(FromFloat64(6)) {
		t.Errorf("-21 divEuclid -4 = %v, want 6", z)
	}
}

func TestSumProduct(t *testing.T) {
	if z := Sum(); !z.IsZero() {
		t.Errorf("Sum() = %v, want 0", z)
	}
	if z := Product(); z != One {
		t.Errorf("Product() = %v, want 1", z)
	}
	if z := Sum(One, One, One, One); !z.Eq(FromFloat64(4)) {
		t.Errorf("Sum(1×4) = %v", z)
	}
	if z := Product(FromFloat64(2), FromFloat64(3), FromFloat64(4)); !z.Eq(FromFloat64(24)) {
		t.Errorf("Product(2, 3, 4) = %v", z)
	}
}

var benchQ Quad

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	x, y := Pi, E
	for i := 0; i < b.N; i++ {
		benchQ = x.Add(y)
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	x, y := Pi, E
	for i := 0; i < b.N; i++ {
		benchQ = x.Mul(y)
	}
}

func BenchmarkDiv(b *testing.B) {
	b.ReportAllocs()
	x, y := Pi, E
	for i := 0; i < b.N; i++ {
		benchQ = x.Div(y)
	}
}
