// Package rational implements exact fractions over wide.Int.
//
// A Rat holds a numerator and a divisor. Normalizing operations keep every
// value in reduced form with a positive divisor, the sign carried by the
// numerator, and zero as 0/1. The zero value of Rat is 0/1 and ready to use.
//
// Binary operations follow the math/big convention: the receiver is the
// destination, the operand is passed by value and never modified, and the
// receiver is returned to allow chaining:
//
//	var sum rational.Rat
//	sum.Add(rational.New(1, 2)).Add(rational.New(1, 3)) // 5/6
//
// The Fast variants (AddFast, MulFast) skip the final reduction so that a
// long accumulation pays for a single Normalize at the end.
//
// Overflow of any intermediate value, division by zero and other contract
// violations are fatal: they raise an apperrors.ArithmeticError panic.
// Values are plain data; distinct Rats may be used from distinct goroutines,
// but a single Rat must not be mutated concurrently.
package rational
