package math

import "github.com/db47h/qd"

// Sqrt returns the square root of x.
//
// This function is a proxy for x.Sqrt().
func Sqrt(x qd.Quad) qd.Quad {
	return x.Sqrt()
}

// NRoot returns the nth root of x.
//
// This function is a proxy for x.NRoot(n).
func NRoot(x qd.Quad, n int) qd.Quad {
	return x.NRoot(n)
}

// Hypot returns √(x² + y²), the euclidean norm of (x, y).
func Hypot(x, y qd.Quad) qd.Quad {
	switch {
	case x.IsInf() || y.IsInf():
		return qd.Inf(1)
	case x.IsNaN() || y.IsNaN():
		return qd.NaN()
	}
	return x.Sqr().Add(y.Sqr()).Sqrt()
}
