// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qd

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// maxDigits is the number of meaningful decimal digits in a Quad
// (212 bits × log10 2, rounded down).
const maxDigits = 62

// Parse errors. They are wrapped with the offending input; test with
// errors.Is.
var (
	ErrEmpty  = errors.New("empty input")
	ErrSyntax = errors.New("invalid syntax")
)

var ten = Quad{10, 0, 0, 0}

// Parse parses s as a decimal floating point number and returns its Quad
// value. The number must be of the form:
//
//	number   = [ sign ] ( digits | digits "." [ digits ] | "." digits )
//	           [ exponent ] | [ sign ] ( "inf" | "infinity" | "nan" ) .
//	sign     = "+" | "-" .
//	exponent = ( "e" | "E" ) [ sign ] digits .
//
// The special-value tokens are matched case-insensitively. Parse returns
// ErrEmpty for an empty string and ErrSyntax for anything else it cannot
// consume entirely.
//
// Digits accumulate through MulFloat64 and Add on the value under
// construction, so parsing depends only on the arithmetic core, never on
// the general float conversion path.
func Parse(s string) (Quad, error) {
	if s == "" {
		return Quad{}, fmt.Errorf("qd: parse %q: %w", s, ErrEmpty)
	}

	i := 0
	neg := false
	if s[i] == '+' || s[i] == '-' {
		neg = s[i] == '-'
		i++
	}

	if z, ok := parseSpecial(s[i:]); ok {
		if neg {
			z = z.Neg()
		}
		return z, nil
	}

	var (
		z        Quad
		sawDigit bool
		sawDot   bool
		frac     int
	)
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			sawDigit = true
			z = z.MulFloat64(10).Add(FromFloat64(float64(c - '0')))
			if sawDot {
				frac++
			}
		case c == '.':
			if sawDot {
				return Quad{}, fmt.Errorf("qd: parse %q: %w", s, ErrSyntax)
			}
			sawDot = true
		default:
			goto exponent
		}
	}
exponent:
	if !sawDigit {
		return Quad{}, fmt.Errorf("qd: parse %q: %w", s, ErrSyntax)
	}
	exp := 0
	if i < len(s) {
		if c := s[i]; c != 'e' && c != 'E' {
			return Quad{}, fmt.Errorf("qd: parse %q: %w", s, ErrSyntax)
		}
		i++
		e, err := strconv.Atoi(s[i:])
		if err != nil {
			return Quad{}, fmt.Errorf("qd: parse %q: %w", s, ErrSyntax)
		}
		exp = e
	}

	z = z.scale10(exp - frac)
	if neg {
		z = z.Neg()
	}
	return z, nil
}

// scale10 returns x·10^p. The power is applied in chunks of at most
// 10^±150: a single 10^±p for |p| near the exponent limits would
// overflow outright or carry subnormal tail components with only a
// handful of meaningful bits. Each chunk moves x toward its final
// magnitude, so no intermediate product strays further from the float64
// range than x or the result.
func (x Quad) scale10(p int) Quad {
	for p != 0 {
		c := p
		if c > 150 {
			c = 150
		} else if c < -150 {
			c = -150
		}
		x = x.Mul(ten.Powi(c))
		p -= c
	}
	return x
}

func parseSpecial(s string) (Quad, bool) {
	if eqFold(s, "inf") || eqFold(s, "infinity") {
		return Inf(1), true
	}
	if eqFold(s, "nan") {
		return NaN(), true
	}
	return Quad{}, false
}

// eqFold is strings.EqualFold restricted to ASCII letters.
func eqFold(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i]|0x20 != t[i]|0x20 {
			return false
		}
	}
	return true
}

// MustParse is like Parse but panics on error. It simplifies initializing
// package-level constants.
func MustParse(s string) Quad {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}

// digits extracts the n leading decimal digits of the finite, nonzero
// value x, rounded in the last place, along with the decimal exponent e
// such that x = d₀.d₁d₂… × 10^e. n must be in [1, maxDigits].
func (x Quad) digits(n int) (d []byte, e int) {
	r := x.Abs()
	e = int(math.Floor(math.Log10(r[0])))
	r = r.scale10(-e)

	// The native log10 estimate can be off, so settle r into [1, 10)
	// by whole decades.
	for r[0] >= 10 {
		r = r.Div(ten)
		e++
	}
	for r[0] < 1 {
		r = r.MulFloat64(10)
		e--
	}

	// Extract one guard digit past the requested count.
	d = make([]byte, n+1)
	for i := range d {
		k := math.Floor(r[0])
		d[i] = byte(k)
		r = r.Sub(FromFloat64(k)).MulFloat64(10)
	}

	// The subtract-and-scale loop can leave a digit momentarily negative
	// or above 9; repair by borrowing from its neighbor.
	for i := len(d) - 1; i > 0; i-- {
		if int8(d[i]) < 0 {
			d[i-1]--
			d[i] += 10
		} else if d[i] > 9 {
			d[i-1]++
			d[i] -= 10
		}
	}

	// Round on the guard digit.
	if d[n] >= 5 {
		i := n - 1
		d[i]++
		for i > 0 && d[i] > 9 {
			d[i] -= 10
			d[i-1]++
			i--
		}
	}
	if d[0] > 9 {
		// Rounding carried all the way out: 9.99… became 10.0….
		e++
		d[0] = 1
		for i := 1; i < n; i++ {
			d[i] = 0
		}
	}
	return d[:n], e
}

// Text converts x to a string according to the given format and
// precision. The format is one of:
//
//	'e'	-d.dddde±dd, decimal exponent
//	'E'	like 'e', with an upper case exponent marker
//	'f'	-ddddd.ddddd, no exponent
//	'g'	like 'e' for large exponents, like 'f' otherwise
//	'G'	like 'g', with an upper case exponent marker
//
// For 'e' and 'E' the precision counts digits after the decimal point; for
// 'f' it counts digits after the point; for 'g' it is the maximum number
// of significant digits. A negative precision selects the full 62
// significant digits of the representation.
func (x Quad) Text(format byte, prec int) string {
	return string(x.Append(make([]byte, 0, 80), format, prec))
}

// Append appends the textual form of x, as produced by Text, to buf and
// returns the extended buffer.
func (x Quad) Append(buf []byte, format byte, prec int) []byte {
	if x.IsNaN() {
		return append(buf, "NaN"...)
	}
	if x.Signbit() {
		buf = append(buf, '-')
	}
	if x.IsInf() {
		return append(buf, "Inf"...)
	}

	switch format {
	case 'e', 'E':
		return x.fmtE(buf, format, prec)
	case 'f':
		return x.fmtF(buf, prec)
	case 'g', 'G':
		return x.fmtG(buf, format+'e'-'g', prec)
	}
	return append(buf, '%', format)
}

func (x Quad) fmtE(buf []byte, expChar byte, prec int) []byte {
	if prec < 0 {
		prec = maxDigits - 1
	}
	var d []byte
	var e int
	if x.IsZero() {
		d, e = []byte{0}, 0
	} else {
		n := prec + 1
		if n > maxDigits {
			n = maxDigits
		}
		d, e = x.digits(n)
	}
	buf = append(buf, '0'+d[0])
	if prec > 0 {
		buf = append(buf, '.')
		for i := 1; i <= prec; i++ {
			if i < len(d) {
				buf = append(buf, '0'+d[i])
			} else {
				buf = append(buf, '0')
			}
		}
	}
	buf = append(buf, expChar)
	if e >= 0 {
		buf = append(buf, '+')
	} else {
		buf = append(buf, '-')
		e = -e
	}
	if e < 10 {
		buf = append(buf, '0')
	}
	return strconv.AppendInt(buf, int64(e), 10)
}

func (x Quad) fmtF(buf []byte, prec int) []byte {
	if prec < 0 {
		prec = maxDigits
	}
	if x.IsZero() {
		buf = append(buf, '0')
		if prec > 0 {
			buf = append(buf, '.')
			for i := 0; i < prec; i++ {
				buf = append(buf, '0')
			}
		}
		return buf
	}
	// significant digits needed: all integral digits plus prec
	_, e0 := x.digits(1)
	n := e0 + 1 + prec
	if n < 1 {
		n = 1
	}
	if n > maxDigits {
		n = maxDigits
	}
	d, e := x.digits(n)
	// digit i has decimal position e-i; positions < -prec render as
	// padding zeros only
	if e < 0 {
		buf = append(buf, '0')
	} else {
		for i := 0; i <= e; i++ {
			if i < len(d) {
				buf = append(buf, '0'+d[i])
			} else {
				buf = append(buf, '0')
			}
		}
	}
	if prec > 0 {
		buf = append(buf, '.')
		for p := 1; p <= prec; p++ {
			i := e + p
			if 0 <= i && i < len(d) {
				buf = append(buf, '0'+d[i])
			} else {
				buf = append(buf, '0')
			}
		}
	}
	return buf
}

func (x Quad) fmtG(buf []byte, expChar byte, prec int) []byte {
	if prec < 0 {
		prec = maxDigits
	}
	if prec == 0 {
		prec = 1
	}
	var e int
	if x.IsZero() {
		e = 0
	} else {
		_, e = x.digits(1)
	}
	if e < -4 || e >= prec {
		buf = x.fmtE(buf, expChar, prec-1)
		return trimZerosE(buf)
	}
	buf = x.fmtF(buf, prec-1-e)
	return trimZerosF(buf)
}

// trimZerosF removes trailing fractional zeros and a dangling point.
func trimZerosF(buf []byte) []byte {
	hasDot := false
	for _, c := range buf {
		if c == '.' {
			hasDot = true
			break
		}
	}
	if !hasDot {
		return buf
	}
	i := len(buf)
	for i > 0 && buf[i-1] == '0' {
		i--
	}
	if i > 0 && buf[i-1] == '.' {
		i--
	}
	return buf[:i]
}

// trimZerosE removes trailing zeros from the mantissa of an 'e' form.
func trimZerosE(buf []byte) []byte {
	e := -1
	for i, c := range buf {
		if c == 'e' || c == 'E' {
			e = i
			break
		}
	}
	if e < 0 {
		return buf
	}
	m := e
	for m > 0 && buf[m-1] == '0' {
		m--
	}
	if m > 0 && buf[m-1] == '.' {
		m--
	}
	return append(buf[:m], buf[e:]...)
}

// String formats x like Text('g', -1): the shortest form showing all 62
// meaningful digits.
func (x Quad) String() string {
	return x.Text('g', -1)
}

var _ fmt.Formatter = Quad{}

// Format implements fmt.Formatter. It accepts the floating point verbs
// 'e', 'E', 'f', 'g', 'G' and 'v' (equivalent to 'g'), together with
// width, precision, and the '+', ' ', '-' and '0' flags.
func (x Quad) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		verb = 'g'
	case 'e', 'E', 'f', 'g', 'G':
		// ok
	default:
		fmt.Fprintf(s, "%%!%c(qd.Quad=%s)", verb, x.String())
		return
	}
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = -1
	}
	buf := x.Append(nil, byte(verb), prec)

	// sign flags apply to non-negative values only
	var sign []byte
	if !x.Signbit() && !x.IsNaN() {
		if s.Flag('+') {
			sign = []byte{'+'}
		} else if s.Flag(' ') {
			sign = []byte{' '}
		}
	}

	width, hasWidth := s.Width()
	pad := width - len(sign) - len(buf)
	switch {
	case !hasWidth || pad <= 0:
		s.Write(sign)
		s.Write(buf)
	case s.Flag('-'):
		s.Write(sign)
		s.Write(buf)
		s.Write(spaces(pad))
	case s.Flag('0') && x.IsFinite():
		s.Write(sign)
		if len(buf) > 0 && buf[0] == '-' {
			s.Write(buf[:1])
			buf = buf[1:]
		}
		s.Write(zeros(pad))
		s.Write(buf)
	default:
		s.Write(spaces(pad))
		s.Write(sign)
		s.Write(buf)
	}
}

func spaces(n int) []byte { return fill(n, ' ') }
func zeros(n int) []byte  { return fill(n, '0') }

func fill(n int, c byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return b
}
