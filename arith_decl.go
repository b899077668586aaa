//go:build !qd_nofma
// +build !qd_nofma

package qd

// By default twoProd and twoSqr extract the product error term with a
// fused multiply-add. math.FMA compiles to the hardware instruction where
// one exists and to an exact software fallback elsewhere, so the contract
// is the same either way. Build with the qd_nofma tag to force the
// Dekker-split implementation at every call site instead.

func twoProd(a, b float64) (p, err float64) {
	return twoProdFMA(a, b)
}

func twoSqr(a float64) (q, err float64) {
	return twoSqrFMA(a)
}
