// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math_test

import (
	"testing"

	"github.com/db47h/qd"
	"github.com/db47h/qd/math"
)

func TestLog(t *testing.T) {
	if z := math.Log(qd.One); !z.IsZero() {
		t.Errorf("Log(1) = %v, want 0", z)
	}
	check(t, "Log(2)", math.Log(qd.FromFloat64(2)),
		"0.6931471805599453094172321214581765680755001343602552541206800")
	check(t, "Log(10)", math.Log(qd.FromFloat64(10)),
		"2.3025850929940456840179914546843642076011014886287729760333279")
	check(t, "Log(3)", math.Log(qd.FromFloat64(3)),
		"1.0986122886681096913952452369225257046474905578227494517346943")
	check(t, "Log(Pi)", math.Log(qd.Pi),
		"1.1447298858494001741434273513530587116472948129153115715136230")
	check(t, "Log(E)", math.Log(qd.E), "1")
}

func TestLogSpecial(t *testing.T) {
	checkNaN(t, "Log(0)", math.Log(qd.Quad{}))
	checkNaN(t, "Log(-1)", math.Log(qd.FromFloat64(-1)))
	checkNaN(t, "Log(NaN)", math.Log(qd.NaN()))
	checkNaN(t, "Log(-Inf)", math.Log(qd.Inf(-1)))
	if z := math.Log(qd.Inf(1)); !z.IsInf() || z.Sign() < 0 {
		t.Errorf("Log(+Inf) = %v, want +Inf", z)
	}
}

func TestLogBases(t *testing.T) {
	check(t, "Log2(10)", math.Log2(qd.FromFloat64(10)),
		"3.3219280948873623478703194294893901758648313930245806120547564")
	check(t, "Log10(E)", math.Log10(qd.E),
		"0.4342944819032518276511289189166050822943970058036665661144538")
	if z := math.Log2(qd.FromFloat64(1024)); !near(z, qd.FromFloat64(10)) {
		t.Errorf("Log2(1024) = %v, want 10", z)
	}
	if z := math.Log10(qd.FromFloat64(1e6)); !near(z, qd.FromFloat64(6)) {
		t.Errorf("Log10(1e6) = %v, want 6", z)
	}
	if z := math.LogBase(qd.FromFloat64(243), qd.FromFloat64(3)); !near(z, qd.FromFloat64(5)) {
		t.Errorf("LogBase(243, 3) = %v, want 5", z)
	}
	if z := math.LogBase(qd.Pi, qd.E); !near(z, math.Log(qd.Pi)) {
		t.Errorf("LogBase(Pi, E) = %v, want Log(Pi)", z)
	}
}

// near reports agreement to within 2^-200 relative error, for wants that
// are already Quad values.
func near(got, want qd.Quad) bool {
	if want.IsZero() {
		return got.Abs().Cmp(qd.FromFloat64(0x1p-200)) <= 0
	}
	return got.Sub(want).Abs().Cmp(want.Abs().MulFloat64(0x1p-200)) <= 0
}

func TestLog1p(t *testing.T) {
	check(t, "Log1p(0.001)", math.Log1p(qd.MustParse("0.001")),
		"9.9950033308353316680939892053501146075506239316655199701966683e-4")
	check(t, "Log1p(1)", math.Log1p(qd.One),
		"0.6931471805599453094172321214581765680755001343602552541206800")
	if z := math.Log1p(qd.Quad{}); !z.IsZero() {
		t.Errorf("Log1p(0) = %v", z)
	}
	checkNaN(t, "Log1p(-1)", math.Log1p(qd.FromFloat64(-1)))
	checkNaN(t, "Log1p(-2)", math.Log1p(qd.FromFloat64(-2)))
	if z := math.Log1p(qd.Inf(1)); !z.IsInf() {
		t.Errorf("Log1p(+Inf) = %v", z)
	}
}
