// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qd

import (
	"math"
	"sort"
	"testing"
)

func TestCmp(t *testing.T) {
	td := []struct {
		x, y Quad
		want int
	}{
		{Quad{}, Quad{}, 0},
		{FromFloat64(math.Copysign(0, -1)), Quad{}, 0},
		{One, Quad{}, 1},
		{One.Neg(), One, -1},
		{Pi, E, 1},
		{Inf(-1), Inf(1), -1},
		{Inf(1), Pi, 1},
		{Inf(-1), Pi.Neg(), -1},
		{NaN(), Inf(1), 1},
		{Inf(1), NaN(), -1},
		{NaN(), NaN(), 0},
		// equal leading components, differing tails
		{Pi, Pi.Add(FromFloat64(0x1p-120)), -1},
		{Pi, Pi.Sub(FromFloat64(0x1p-120)), 1},
	}
	for _, d := range td {
		if got := d.x.Cmp(d.y); got != d.want {
			t.Errorf("Cmp(%v, %v) = %d, want %d", d.x, d.y, got, d.want)
		}
		if got := d.y.Cmp(d.x); got != -d.want {
			t.Errorf("Cmp(%v, %v) = %d, want %d", d.y, d.x, got, -d.want)
		}
	}
}

func TestPartialOrderNaN(t *testing.T) {
	n := NaN()
	if n.Eq(n) || n.Lt(One) || n.Gt(One) || n.Le(One) || n.Ge(One) {
		t.Error("comparison predicate true on NaN operand")
	}
	if !One.Eq(One) || !One.Le(One) || !One.Ge(One) {
		t.Error("reflexive predicate false on 1")
	}
}

func TestCmpSort(t *testing.T) {
	xs := []Quad{Pi, One.Neg(), Inf(1), Quad{}, E.Neg(), Inf(-1), One, NaN()}
	sort.Slice(xs, func(i, j int) bool { return xs[i].Cmp(xs[j]) < 0 })
	want := []Quad{Inf(-1), E.Neg(), One.Neg(), Quad{}, One, Pi, Inf(1), NaN()}
	for i := range want {
		if xs[i].Cmp(want[i]) != 0 {
			t.Fatalf("sorted[%d] = %v, want %v", i, xs[i], want[i])
		}
	}
}

func TestMinMax(t *testing.T) {
	if z := Pi.Min(E); z != E {
		t.Errorf("Min(Pi, E) = %v", z)
	}
	if z := Pi.Max(E); z != Pi {
		t.Errorf("Max(Pi, E) = %v", z)
	}
	if z := Pi.Min(NaN()); !z.IsNaN() {
		t.Errorf("Min(Pi, NaN) = %v, want NaN", z)
	}
	if z := NaN().Max(Pi); !z.IsNaN() {
		t.Errorf("Max(NaN, Pi) = %v, want NaN", z)
	}
	if z := Inf(-1).Min(Pi.Neg()); !z.IsInf() {
		t.Errorf("Min(-Inf, -Pi) = %v", z)
	}
}
