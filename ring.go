package modulo

import (
	"fmt"
	"math/big"
)

// Ring is the set of all congruence classes for a fixed positive modulus:
// the ring Z/mZ, a finite field when the modulus is prime.
type Ring struct {
	modulus *big.Int
}

// NewRing returns the ring Z/mZ for a positive modulus m.
func NewRing(modulus *big.Int) (Ring, error) {
	if err := checkModulus(modulus); err != nil {
		return Ring{}, err
	}
	return Ring{new(big.Int).Set(modulus)}, nil
}

// MustRing returns the ring Z/mZ. Non-error-checked convenience for tests
// and initialization only; panics on invalid input.
func MustRing(modulus int64) Ring {
	r, err := NewRing(big.NewInt(modulus))
	if err != nil {
		panic(fmt.Sprintf("invalid ring modulus %d: %v", modulus, err))
	}
	return r
}

// Modulus returns a copy of the modulus.
func (r Ring) Modulus() *big.Int {
	return new(big.Int).Set(r.modulus)
}

// Len returns the number of congruence classes in the ring, which equals
// the modulus. An Element has no Len: an individual class is infinite.
func (r Ring) Len() *big.Int {
	return new(big.Int).Set(r.modulus)
}

// Key returns the comparable structural identity of the ring.
func (r Ring) Key() Key {
	return Key{"", r.modulus.String()}
}

// Equal reports whether other is a Ring with the same modulus.
func (r Ring) Equal(other Class) bool {
	o, ok := other.(Ring)
	return ok && r.modulus.Cmp(o.modulus) == 0
}

func (r Ring) String() string {
	return fmt.Sprintf("modulo(%v)", r.modulus)
}

func (r Ring) isClass() {}

// Reduce returns the congruence class of n in the ring.
func (r Ring) Reduce(n *big.Int) (Element, error) {
	return NewElement(n, r.modulus)
}

// Contains reports whether e belongs to the ring; every congruence class
// with the same modulus does.
func (r Ring) Contains(e Element) bool {
	return r.modulus.Cmp(e.modulus) == 0
}

// Zero returns the class of 0, the additive identity of the ring.
func (r Ring) Zero() Element {
	return Element{new(big.Int), new(big.Int).Set(r.modulus)}
}

// One returns the class of 1, the multiplicative identity of the ring.
// In the trivial ring Z/1Z this coincides with Zero.
func (r Ring) One() Element {
	return Element{new(big.Int).Mod(one, r.modulus), new(big.Int).Set(r.modulus)}
}

// IsField reports whether the ring is a finite field, i.e. whether the
// modulus is prime. Primality is probabilistic per big.Int.ProbablyPrime.
func (r Ring) IsField() bool {
	return r.modulus.ProbablyPrime(20)
}
