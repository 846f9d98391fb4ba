// Package fraction provides exact rational numbers with 64-bit magnitudes
// and a separate sign. See the F type and the New function for details.
package fraction

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"
)

// Common errors returned by functions in this package.
var (
	ErrDenZero     = errors.New("denominator is zero")
	ErrDenOverflow = errors.New("denominator overflow")
	ErrNumOverflow = errors.New("numerator overflow")
	ErrDivByZero   = errors.New("division by zero")
)

// Sign is the sign of a fraction. The zero value is Positive.
type Sign int8

const (
	Positive Sign = iota
	Negative
)

// String returns "+" or "-".
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

func (s Sign) flip() Sign {
	if s == Negative {
		return Positive
	}
	return Negative
}

// F is a rational number stored as a non-negative numerator, a positive
// denominator, and a Sign. Both magnitudes are 63-bit; their product and sum
// are checked for overflow rather than allowed to wrap.
//
// Internally, the denominator is biased by 1, which means the zero value is
// equivalent to 0/1 and thus valid and equal to 0.
//
// Valid values are obtained in the following ways:
//   - the zero value of the type F
//   - returned by Default, New, NewSigned, Try, TrySigned or FromInt
//   - returned by arithmetic on any valid values
//   - copied from a valid value
//
// Every valid value is in lowest terms, and zero is always Positive, so two
// valid values of F can be compared using the == and != operators.
type F struct {
	num  int64
	den  int64
	sign Sign
}

// Default returns 1/1.
func Default() F {
	return F{num: 1}
}

// Try creates a new fraction with the given numerator and denominator.
// The result is Negative if exactly one of num and den is negative.
// Try returns an error if den is zero or if either argument is
// math.MinInt64, whose magnitude does not fit in 63 bits.
func Try(num, den int64) (F, error) {
	return TrySigned(num, den, Positive)
}

// TrySigned is like Try, but the sign implied by num and den is flipped
// if s is Negative. For example, TrySigned(-1, 2, Negative) is 1/2.
// Any s other than Negative is treated as Positive.
func TrySigned(num, den int64, s Sign) (F, error) {
	if den == 0 {
		return F{}, ErrDenZero
	}
	if num == math.MinInt64 {
		return F{}, fmt.Errorf("numerator %d: %w", num, ErrNumOverflow)
	}
	if den == math.MinInt64 {
		return F{}, fmt.Errorf("denominator %d: %w", den, ErrDenOverflow)
	}
	if s != Negative {
		s = Positive
	}
	if (num < 0) != (den < 0) {
		s = s.flip()
	}
	return F{abs(num), abs(den) - 1, s}.reduce(), nil
}

// New is like Try, except that a zero denominator is reported to the
// standard logger and replaced by 1/1. See Lenient for details.
// New panics if either argument is math.MinInt64.
func New(num, den int64) F {
	return Lenient{}.New(num, den)
}

// NewSigned is like TrySigned, but handles a zero denominator as New does.
func NewSigned(num, den int64, s Sign) F {
	return Lenient{}.NewSigned(num, den, s)
}

// FromInt returns the whole number w as w/1.
// FromInt panics if w is math.MinInt64.
func FromInt(w int64) F {
	if w == math.MinInt64 {
		panic(ErrNumOverflow)
	}
	if w < 0 {
		return F{num: -w, sign: Negative}
	}
	return F{num: w}
}

// Num returns the numerator of x, which is never negative.
func (x F) Num() int64 {
	return x.num
}

// Den returns the denominator of x, which is always positive.
func (x F) Den() int64 {
	return x.den + 1
}

// Sign returns the stored sign of x. Zero is Positive.
func (x F) Sign() Sign {
	return x.sign
}

// Signum returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x F) Signum() int {
	switch {
	case x.num == 0:
		return 0
	case x.sign == Negative:
		return -1
	}
	return 1
}

// IsValid returns true if x is a valid fraction.
// Invalid values do not arise under normal circumstances, but may occur if
// a value is constructed or manipulated using unsafe operations.
func (x F) IsValid() bool {
	if x.num < 0 || x.den < 0 || x.den == math.MaxInt64 {
		return false
	}
	if x.sign != Positive && (x.sign != Negative || x.num == 0) {
		return false
	}
	return x.reduce() == x
}

// IsZero returns true if x is equal to 0.
func (x F) IsZero() bool {
	return x.num == 0
}

// Equal reports whether x and y have the same numerator, denominator and
// sign. For valid values this is the same as x == y.
func (x F) Equal(y F) bool {
	return x == y
}

// Less reports whether x < y.
func (x F) Less(y F) bool {
	if x.sign != y.sign {
		return x.sign == Negative
	}
	c := cmpMagnitude(x, y)
	if x.sign == Negative {
		return c > 0
	}
	return c < 0
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
func (x F) Cmp(y F) int {
	switch {
	case x == y:
		return 0
	case x.Less(y):
		return -1
	}
	return 1
}

// Neg returns the negation of x, -x.
func (x F) Neg() F {
	if x.num == 0 {
		return x
	}
	x.sign = x.sign.flip()
	return x
}

// Abs returns the absolute value of x, |x|.
func (x F) Abs() F {
	x.sign = Positive
	return x
}

// TryInv returns the inverse of x, 1/x, or ErrDivByZero if x is zero.
func (x F) TryInv() (F, error) {
	if x.num == 0 {
		return F{}, ErrDivByZero
	}
	return F{x.Den(), x.num - 1, x.sign}, nil
}

// Inv returns the inverse of x, 1/x.
// Inv panics if x is zero.
func (x F) Inv() F {
	return must(x.TryInv())
}

// TryAdd adds x and y and returns the result.
// TryAdd returns 0 and a non-nil error if the result would overflow.
func (x F) TryAdd(y F) (F, error) {
	if x.num == 0 {
		return y, nil
	} else if y.num == 0 {
		return x, nil
	}
	nx, ny := x.Den(), y.Den()

	// The sum is x.num*ny ± y.num*nx over nx*ny. When every operand fits in
	// 31 bits each product fits in 62, the sum in 63, and Try can do the rest.
	if x.num < math.MaxInt32 && y.num < math.MaxInt32 && nx < math.MaxInt32 && ny < math.MaxInt32 {
		return Try(x.signed()*ny+y.signed()*nx, nx*ny)
	}

	// Otherwise follow Knuth (TAOCP Vol 2, 4.5.1): with d = GCF(nx, ny), the
	// sum is t/(nx*ny/d) where t = x.num*(ny/d) ± y.num*(nx/d), and dividing
	// out g = GCF(t, d) leaves it in lowest terms. Products are formed in 128
	// bits (h is for high, l is for low) and only the reduced result has to
	// fit.
	d := GCF(nx, ny)
	nx, ny = nx/d, ny/d
	m1h, m1l := bits.Mul64(uint64(x.num), uint64(ny))
	m2h, m2l := bits.Mul64(uint64(y.num), uint64(nx))

	// With equal signs the magnitudes add and keep the sign. With differing
	// signs the smaller magnitude is taken from the larger, whose sign wins.
	sign := x.sign
	var th, tl uint64
	if x.sign == y.sign {
		var carry uint64
		tl, carry = bits.Add64(m1l, m2l, 0)
		th, carry = bits.Add64(m1h, m2h, carry)
		if carry != 0 {
			return F{}, ErrNumOverflow
		}
	} else {
		if m2h > m1h || (m2h == m1h && m2l > m1l) {
			m1h, m2h = m2h, m1h
			m1l, m2l = m2l, m1l
			sign = y.sign
		}
		var borrow uint64
		tl, borrow = bits.Sub64(m1l, m2l, 0)
		th, _ = bits.Sub64(m1h, m2h, borrow)
	}
	if th == 0 && tl == 0 {
		return F{}, nil
	}

	// GCF(t, d) == GCF(t mod d, d); GCF treats a zero argument as 1, so an
	// exact multiple of d is handled separately.
	g := d
	if r := bits.Rem64(th, tl, uint64(d)); r != 0 {
		g = GCF(int64(r), d)
	}
	if uint64(g) <= th {
		return F{}, ErrNumOverflow
	}
	m, _ := bits.Div64(th, tl, uint64(g))
	nh, nl := bits.Mul64(uint64(nx), uint64(y.Den()/g))
	if nh != 0 {
		return F{}, ErrDenOverflow
	}
	return fromMagnitudes(sign, m, nl)
}

// Add adds x and y and returns the result.
// Add panics if the result would overflow.
func (x F) Add(y F) F {
	return must(x.TryAdd(y))
}

// TrySub subtracts y from x and returns the result.
// TrySub returns 0 and a non-nil error if the result would overflow.
func (x F) TrySub(y F) (F, error) {
	return x.TryAdd(y.Neg())
}

// Sub subtracts y from x and returns the result.
// The following are equivalent in outcome and behavior:
//
//	x.Sub(y) == x.Add(y.Neg())
func (x F) Sub(y F) F {
	return x.Add(y.Neg())
}

// TryMul multiplies x and y and returns the result.
// TryMul returns 0 and a non-nil error if the result would overflow.
func (x F) TryMul(y F) (F, error) {
	if x.num == 0 || y.num == 0 {
		return F{}, nil
	}
	sign := Positive
	if x.sign != y.sign {
		sign = Negative
	}
	mx, nx := x.num, x.Den()
	my, ny := y.num, y.Den()

	// x and y are each in lowest terms, but the product (mx*my)/(nx*ny) can
	// still share factors across operands. Dividing them out first keeps the
	// result reduced and postpones overflow.
	if d := GCF(mx, ny); d != 1 {
		mx, ny = mx/d, ny/d
	}
	if d := GCF(my, nx); d != 1 {
		my, nx = my/d, nx/d
	}

	mh, ml := bits.Mul64(uint64(mx), uint64(my))
	if mh != 0 {
		return F{}, ErrNumOverflow
	}
	nh, nl := bits.Mul64(uint64(nx), uint64(ny))
	if nh != 0 {
		return F{}, ErrDenOverflow
	}
	return fromMagnitudes(sign, ml, nl)
}

// Mul multiplies x and y and returns the result.
// Mul panics if the result would overflow.
func (x F) Mul(y F) F {
	return must(x.TryMul(y))
}

// TryDiv divides x by y and returns the result.
// TryDiv returns ErrDivByZero if y is zero, or another non-nil error if the
// result would overflow.
func (x F) TryDiv(y F) (F, error) {
	if y.num == 0 {
		return F{}, ErrDivByZero
	}
	return x.TryMul(y.Inv())
}

// Div divides x by y and returns the result. A zero y is reported to the
// standard logger and x is divided by 1/1 instead; see Lenient.Div.
// Div panics if the result would overflow.
func (x F) Div(y F) F {
	return Lenient{}.Div(x, y)
}

// String returns a string representation of x, as n/d or -n/d.
func (x F) String() string {
	if x.sign == Negative {
		return fmt.Sprintf("-%d/%d", x.num, x.Den())
	}
	return fmt.Sprintf("%d/%d", x.num, x.Den())
}

// DecimalString returns a string representation of x, as a decimal number
// to the given number of digits after the decimal point.
// The last digit is rounded to nearest, with ties rounded away from zero.
// If prec <= 0, the decimal point is omitted from the string.
// If the result of rounding is zero but x is negative, the string will still
// include a negative sign.
//
// The following relation holds for all valid values of x:
//
//	x.DecimalString(prec) == x.BigRat().FloatString(prec)
func (x F) DecimalString(prec int) string {
	m, n := uint64(x.num), uint64(x.Den())
	q, r := m/n, m%n
	frac := make([]byte, max(prec, 0))
	for i := range frac {
		hi, lo := bits.Mul64(r, 10)
		digit, rem := bits.Div64(hi, lo, n)
		frac[i] = byte(digit) + '0'
		r = rem
	}
	// round up when the remainder is at least half of n
	if r != 0 && r >= n-r {
		i := len(frac) - 1
		for ; i >= 0 && frac[i] == '9'; i-- {
			frac[i] = '0'
		}
		if i >= 0 {
			frac[i]++
		} else {
			q++
		}
	}
	var buf []byte
	if x.sign == Negative {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, q, 10)
	if prec > 0 {
		buf = append(buf, '.')
		buf = append(buf, frac...)
	}
	return string(buf)
}

// Float64 returns the floating-point equivalent of x. If exact is true, then
// v is exactly equal to x; otherwise, it is the closest approximation.
func (x F) Float64() (v float64, exact bool) {
	m, n := x.num, x.Den()
	if m == 0 {
		return 0, true
	}
	v = float64(m) / float64(n)
	if x.sign == Negative {
		v = -v
	}
	// exact as long as the numerator fits in the mantissa and the
	// denominator is a power of two (including 1)
	fits := bits.Len64(uint64(m)) <= 53
	return v, fits && bits.OnesCount64(uint64(n)) == 1
}

// BigRat converts x to a new big.Rat.
func (x F) BigRat() *big.Rat {
	r := big.NewRat(x.num, x.Den())
	if x.sign == Negative {
		r.Neg(r)
	}
	return r
}

// reduce returns x in lowest terms, with zero as 0/1 Positive.
func (x F) reduce() F {
	if x.num == 0 {
		return F{}
	}
	m, n := x.num, x.Den()
	d := GCF(m, n)
	return F{m / d, n/d - 1, x.sign}
}

// signed returns the numerator of x carrying the sign of x.
func (x F) signed() int64 {
	if x.sign == Negative {
		return -x.num
	}
	return x.num
}

// fromMagnitudes builds a reduced fraction from wide magnitudes. n must be
// positive.
func fromMagnitudes(s Sign, m, n uint64) (F, error) {
	if m > math.MaxInt64 {
		return F{}, ErrNumOverflow
	}
	if n > math.MaxInt64 {
		return F{}, ErrDenOverflow
	}
	return F{int64(m), int64(n) - 1, s}.reduce(), nil
}

// cmpMagnitude compares |x| and |y| by cross-multiplying in 128 bits.
func cmpMagnitude(x, y F) int {
	lh, ll := bits.Mul64(uint64(x.num), uint64(y.Den()))
	rh, rl := bits.Mul64(uint64(y.num), uint64(x.Den()))
	switch {
	case lh < rh || (lh == rh && ll < rl):
		return -1
	case lh > rh || (lh == rh && ll > rl):
		return 1
	}
	return 0
}

func must(x F, err error) F {
	if err != nil {
		panic(err)
	}
	return x
}
