// Package modulo implements congruence classes of integers and the rings
// they live in. An Element represents the (infinite) set of integers
// congruent to a residue modulo a positive integer; a Ring represents
// Z/mZ, the finite set of all congruence classes for a fixed modulus.
// Values of both kinds are immutable: constructors copy their inputs and
// every operation returns a freshly constructed value.
package modulo

import (
	"math/big"
)

var one = big.NewInt(1)

// Class is implemented by the two congruence-class variants, Element and
// Ring.
type Class interface {
	// Modulus returns a copy of the modulus defining the class.
	Modulus() *big.Int

	// Key returns a comparable structural identity for the class, suitable
	// for use as a map key. Two classes have the same key exactly when
	// Equal reports true.
	Key() Key

	// Equal reports whether both values represent the same congruence
	// class or the same ring. An Element and a Ring are never equal.
	Equal(Class) bool

	String() string

	isClass()
}

// Key is the comparable structural identity of a Class: the decimal
// residue (empty for a Ring) and the decimal modulus.
type Key struct {
	residue string
	modulus string
}

// New constructs a Ring from a single argument (the modulus) or an
// Element from two arguments (value, modulus). Any other argument count
// fails with ErrInvalidArity.
func New(args ...*big.Int) (Class, error) {
	switch len(args) {
	case 1:
		r, err := NewRing(args[0])
		if err != nil {
			return nil, err
		}
		return r, nil
	case 2:
		e, err := NewElement(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, ErrInvalidArity
	}
}

func checkModulus(m *big.Int) error {
	if m == nil || m.Sign() <= 0 {
		return ErrInvalidModulus
	}
	return nil
}
