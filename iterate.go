package modulo

import (
	"iter"
	"math/big"
)

// Elements returns the classes of the ring in ascending residue order,
// 0 through modulus-1. The sequence is finite and restartable: every
// range over it starts again from zero.
func (r Ring) Elements() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for c := new(big.Int); c.Cmp(r.modulus) < 0; c.Add(c, one) {
			if !yield(Element{new(big.Int).Set(c), r.modulus}) {
				return
			}
		}
	}
}

// Index returns the i-th class of the ring, i.e. the class of i itself.
// Negative indices wrap around.
func (r Ring) Index(i *big.Int) (Element, error) {
	if i == nil {
		return Element{}, ErrInvalidIndex
	}
	return NewElement(i, r.modulus)
}

// Members returns the nonnegative members of the class in ascending
// order: residue, residue+modulus, residue+2*modulus, and so on. The
// sequence is infinite and lazy; callers bound their own iteration. It is
// restartable: every range over it starts again from the residue.
func (e Element) Members() iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		member := new(big.Int).Set(e.residue)
		for {
			if !yield(new(big.Int).Set(member)) {
				return
			}
			member.Add(member, e.modulus)
		}
	}
}

// Index returns the i-th member of the class, residue + i*modulus. The
// result is a plain integer, not reduced, and is negative for
// sufficiently negative i.
func (e Element) Index(i *big.Int) (*big.Int, error) {
	if i == nil {
		return nil, ErrInvalidIndex
	}
	n := new(big.Int).Mul(i, e.modulus)
	return n.Add(n, e.residue), nil
}
