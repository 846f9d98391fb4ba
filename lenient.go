package fraction

import (
	"errors"
	"fmt"
	"log"
)

// Diagnostic describes an invalid input that was replaced by 1/1.
type Diagnostic struct {
	Op  string // the call that received the input, e.g. "New(3, 0)"
	Err error  // ErrDenZero or ErrDivByZero
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %v; substituted %v", d.Op, d.Err, Default())
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Lenient constructs and divides fractions without failing on a zero
// denominator or a zero divisor. Each such input is reported through Logf as
// a Diagnostic and 1/1 is used in its place:
//   - New and NewSigned return 1/1.
//   - Div divides by 1/1, so it returns its dividend.
//
// Overflow is not substituted; those methods panic as Add and Mul do.
//
// The zero value reports to the standard logger. To collect diagnostics
// elsewhere, set Logf, for example to (*log.Logger).Printf or testing.T.Logf.
type Lenient struct {
	Logf func(format string, v ...any)
}

// New is like Try, but a zero denominator yields 1/1.
func (l Lenient) New(num, den int64) F {
	x, err := Try(num, den)
	if errors.Is(err, ErrDenZero) {
		l.report(Diagnostic{fmt.Sprintf("New(%d, %d)", num, den), err})
		return Default()
	}
	return must(x, err)
}

// NewSigned is like TrySigned, but a zero denominator yields 1/1.
func (l Lenient) NewSigned(num, den int64, s Sign) F {
	x, err := TrySigned(num, den, s)
	if errors.Is(err, ErrDenZero) {
		l.report(Diagnostic{fmt.Sprintf("NewSigned(%d, %d, %v)", num, den, s), err})
		return Default()
	}
	return must(x, err)
}

// Div returns x / y. A zero y is reported and x / (1/1) is returned instead.
// y is a copy, so the caller's divisor is never altered.
func (l Lenient) Div(x, y F) F {
	if y.IsZero() {
		l.report(Diagnostic{fmt.Sprintf("(%v).Div(%v)", x, y), ErrDivByZero})
		y = Default()
	}
	return must(x.TryDiv(y))
}

func (l Lenient) report(d Diagnostic) {
	logf := l.Logf
	if logf == nil {
		logf = log.Printf
	}
	logf("%v", d)
}
