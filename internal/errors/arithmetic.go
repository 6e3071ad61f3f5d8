package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by ArithmeticError. Use errors.Is to classify a
// recovered arithmetic failure.
var (
	// ErrOverflow reports that the exact result does not fit the wide integer.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrPrecondition reports a violated operand contract, such as a negative
	// exponent or an empty LCM input.
	ErrPrecondition = errors.New("precondition violation")
	// ErrDivisionByZero reports a zero divisor or a division by a zero rational.
	ErrDivisionByZero = errors.New("division by zero")
)

// ArithmeticError is the panic value raised by the exact arithmetic engine.
// It names the failing operation and wraps one of the sentinel causes.
type ArithmeticError struct {
	// Op is the name of the primitive that failed (e.g. "mul", "gcd").
	Op string
	// Err is one of ErrOverflow, ErrPrecondition or ErrDivisionByZero.
	Err error
	// Detail optionally carries the operands involved.
	Detail string
}

// Error returns a message of the form "op: cause (detail)".
func (e ArithmeticError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Op, e.Err, e.Detail)
}

// Unwrap returns the sentinel cause.
func (e ArithmeticError) Unwrap() error { return e.Err }

// Fatal raises an arithmetic failure. It never returns.
//
// Parameters:
//   - op: The failing operation.
//   - cause: One of the sentinel causes.
//   - format: Optional detail format string (may be empty).
//   - args: Arguments for format.
func Fatal(op string, cause error, format string, args ...any) {
	detail := ""
	if format != "" {
		detail = fmt.Sprintf(format, args...)
	}
	panic(ArithmeticError{Op: op, Err: cause, Detail: detail})
}

// RecoverArithmetic converts an in-flight ArithmeticError panic into an error
// stored in *errp. It must be called directly by a deferred statement.
// Panics carrying any other value are re-raised unchanged.
//
//	func run() (err error) {
//		defer apperrors.RecoverArithmetic(&err)
//		...
//	}
func RecoverArithmetic(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if ae, ok := r.(ArithmeticError); ok {
		*errp = ae
		return
	}
	panic(r)
}

// IsArithmeticError reports whether err carries an ArithmeticError.
func IsArithmeticError(err error) bool {
	var ae ArithmeticError
	return errors.As(err, &ae)
}
