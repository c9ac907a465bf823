package modulo

import (
	"fmt"
	"math/big"

	"github.com/modulo-go/modulo/egcd"
)

// Element is an individual congruence class: the set of all integers
// congruent to its residue modulo its modulus. The residue is always the
// least nonnegative representative, reduced at construction time.
type Element struct {
	residue *big.Int
	modulus *big.Int
}

// NewElement returns the congruence class of value modulo modulus. The
// value may be any integer; it is reduced into [0, modulus) regardless of
// sign.
func NewElement(value, modulus *big.Int) (Element, error) {
	if err := checkModulus(modulus); err != nil {
		return Element{}, err
	}
	if value == nil {
		return Element{}, ErrInvalidValue
	}
	return Element{new(big.Int).Mod(value, modulus), new(big.Int).Set(modulus)}, nil
}

// MustElement returns the congruence class of value modulo modulus.
// Non-error-checked convenience for tests and initialization only; panics
// on invalid input.
func MustElement(value, modulus int64) Element {
	e, err := NewElement(big.NewInt(value), big.NewInt(modulus))
	if err != nil {
		panic(fmt.Sprintf("invalid congruence class (%d, %d): %v", value, modulus, err))
	}
	return e
}

// Int returns a copy of the least nonnegative residue, the canonical
// integer representative of the class.
func (e Element) Int() *big.Int {
	return new(big.Int).Set(e.residue)
}

// Modulus returns a copy of the modulus.
func (e Element) Modulus() *big.Int {
	return new(big.Int).Set(e.modulus)
}

// Key returns the comparable structural identity of the class.
func (e Element) Key() Key {
	return Key{e.residue.String(), e.modulus.String()}
}

// Equal reports whether other is an Element with the same residue and
// modulus.
func (e Element) Equal(other Class) bool {
	o, ok := other.(Element)
	return ok && e.modulus.Cmp(o.modulus) == 0 && e.residue.Cmp(o.residue) == 0
}

func (e Element) String() string {
	return fmt.Sprintf("modulo(%v, %v)", e.residue, e.modulus)
}

func (e Element) isClass() {}

// Clone returns an independent copy of the class.
func (e Element) Clone() Element {
	return Element{new(big.Int).Set(e.residue), new(big.Int).Set(e.modulus)}
}

// Add returns the modular sum of the receiver and x.
func (e Element) Add(x Operand) (Element, error) {
	o, err := e.coerce(x)
	if err != nil {
		return Element{}, err
	}
	r := new(big.Int).Add(e.residue, o.residue)
	return Element{r.Mod(r, e.modulus), e.modulus}, nil
}

// Subtract returns the modular difference of the receiver and x.
func (e Element) Subtract(x Operand) (Element, error) {
	o, err := e.coerce(x)
	if err != nil {
		return Element{}, err
	}
	r := new(big.Int).Sub(e.residue, o.residue)
	return Element{r.Mod(r, e.modulus), e.modulus}, nil
}

// Multiply returns the modular product of the receiver and x.
func (e Element) Multiply(x Operand) (Element, error) {
	o, err := e.coerce(x)
	if err != nil {
		return Element{}, err
	}
	r := new(big.Int).Mul(e.residue, o.residue)
	return Element{r.Mod(r, e.modulus), e.modulus}, nil
}

// Divide returns the receiver multiplied by the inverse of x. It fails
// with ErrNoInverse when x shares a factor with the modulus.
func (e Element) Divide(x Operand) (Element, error) {
	o, err := e.coerce(x)
	if err != nil {
		return Element{}, err
	}
	inv, ok := egcd.Inverse(o.residue, e.modulus)
	if !ok {
		return Element{}, ErrNoInverse
	}
	r := new(big.Int).Mul(e.residue, inv)
	return Element{r.Mod(r, e.modulus), e.modulus}, nil
}

// Neg returns the additive inverse of the class.
func (e Element) Neg() Element {
	r := new(big.Int).Neg(e.residue)
	return Element{r.Mod(r, e.modulus), e.modulus}
}

// Exp returns the receiver raised to the given exponent. The exponent may
// be any integer kind accepted for operands, or an Element of any modulus
// whose residue supplies the exponent value. A negative exponent inverts
// the receiver first and fails with ErrNoInverse when no inverse exists.
// An optional explicit modulus is accepted only if it equals the
// receiver's modulus.
//
// Exponentiation matches big.Int.Exp: a zero exponent yields 1 mod m,
// which is 0 when m is 1.
func (e Element) Exp(exponent Operand, modulus ...*big.Int) (Element, error) {
	if len(modulus) > 1 {
		return Element{}, ErrInvalidArity
	}
	if len(modulus) == 1 && (modulus[0] == nil || modulus[0].Cmp(e.modulus) != 0) {
		return Element{}, ErrModulusMismatch
	}

	exp, err := exponentValue(exponent)
	if err != nil {
		return Element{}, err
	}

	base := e.residue
	if exp.Sign() < 0 {
		inv, ok := egcd.Inverse(e.residue, e.modulus)
		if !ok {
			return Element{}, ErrNoInverse
		}
		base = inv
		exp = new(big.Int).Neg(exp)
	}
	return Element{new(big.Int).Exp(base, exp, e.modulus), e.modulus}, nil
}

// Inverse returns the multiplicative inverse of the class, or
// ErrNoInverse when the residue shares a factor with the modulus.
func (e Element) Inverse() (Element, error) {
	return e.Exp(-1)
}

// Rebind returns the congruence class of the receiver's residue under a
// new modulus. The residue is re-reduced against the new modulus; the
// original modulus plays no part in the result.
func (e Element) Rebind(modulus *big.Int) (Element, error) {
	return NewElement(e.residue, modulus)
}

// ScaleDown divides both the residue and the modulus by k, mapping the
// class r+mZ onto (r/k)+(m/k)Z. k must be a positive integer dividing
// both; otherwise the operation fails with ErrInvalidScale or
// ErrNotDivisible.
func (e Element) ScaleDown(k *big.Int) (Element, error) {
	if k == nil || k.Sign() <= 0 {
		return Element{}, ErrInvalidScale
	}
	var rq, rr, mq, mr big.Int
	rq.QuoRem(e.residue, k, &rr)
	mq.QuoRem(e.modulus, k, &mr)
	if rr.Sign() != 0 || mr.Sign() != 0 {
		return Element{}, ErrNotDivisible
	}
	return Element{&rq, &mq}, nil
}

// Cmp compares the residues of two classes with the same modulus and
// returns -1, 0, or +1 like big.Int.Cmp. Classes of different moduli are
// not ordered and fail with ErrModulusMismatch.
func (e Element) Cmp(other Element) (int, error) {
	if e.modulus.Cmp(other.modulus) != 0 {
		return 0, ErrModulusMismatch
	}
	return e.residue.Cmp(other.residue), nil
}

// Contains reports whether the integer n is a member of the class, i.e.
// whether n is congruent to the residue.
func (e Element) Contains(n *big.Int) bool {
	return n != nil && new(big.Int).Mod(n, e.modulus).Cmp(e.residue) == 0
}

// IsSubsetOf reports whether every member of the receiver is also a
// member of other.
func (e Element) IsSubsetOf(other Element) bool {
	return new(big.Int).Mod(e.residue, other.modulus).Cmp(other.residue) == 0
}

// IsZero reports whether the class is the additive identity.
func (e Element) IsZero() bool {
	return e.residue.Sign() == 0
}

// IsOne reports whether the class is the multiplicative identity, i.e.
// contains the integer 1. In the trivial ring Z/1Z this is the zero class.
func (e Element) IsOne() bool {
	return e.Contains(one)
}
