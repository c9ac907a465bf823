package modulo

import "errors"

// Every failure in this package is one of the sentinel errors below (or
// wraps one); all of them are deterministic functions of the inputs.
var (
	// Construction errors.
	ErrInvalidArity   = errors.New("must provide either a modulus or a value and a modulus")
	ErrInvalidModulus = errors.New("modulus must be a positive integer")
	ErrInvalidValue   = errors.New("value must be a non-nil integer")

	// Operand and exponent typing errors.
	ErrExpectedElement = errors.New("expecting a congruence class, not a ring")
	ErrExpectedOperand = errors.New("expecting a congruence class or integer")
	ErrInvalidExponent = errors.New("exponent must be an integer or congruence class")
	ErrInvalidIndex    = errors.New("index must be a non-nil integer")

	// Algebraic errors.
	ErrModulusMismatch = errors.New("congruence classes do not have the same modulus")
	ErrNoInverse       = errors.New("congruence class has no inverse")
	ErrNotDivisible    = errors.New("residue and modulus must both be divisible by the scale factor")
	ErrInvalidScale    = errors.New("scale factor must be a positive integer")
)
