// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// calculation, arithmetic, etc.) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method to support errors.Is() and errors.As().
//
// Arithmetic failures are the exception to the error-return convention: the
// exact arithmetic engine treats overflow and precondition violations as
// contract violations and raises them with panic(ArithmeticError). Only
// process boundaries convert them back into errors, using RecoverArithmetic.
package apperrors
