//go:build qd_nofma
// +build qd_nofma

package qd

func twoProd(a, b float64) (p, err float64) {
	return twoProdSplit(a, b)
}

func twoSqr(a float64) (q, err float64) {
	return twoSqrSplit(a)
}
