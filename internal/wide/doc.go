// Package wide provides the double-width signed integer used by the exact
// rational engine, together with its overflow-checked primitives.
//
// Int is 128 bits wide on 64-bit targets and 64 bits wide on 32-bit targets
// (see Bits). Add, Sub, Mul, Neg and Quo either return the exact result or
// raise an apperrors.ArithmeticError panic: values that outgrow the wide type
// have left the domain the engine is designed for, so there is no error
// return to check.
//
// On top of the primitives the package offers Euclidean reduction (GCD, LCM,
// LCMOf), binary exponentiation (Pow) and decimal rendering (String). All
// functions are pure and safe for concurrent use.
package wide
