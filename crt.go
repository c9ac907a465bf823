package modulo

import "math/big"

// Intersect returns the congruence class whose members are exactly the
// integers belonging to both e and other, constructed via the Chinese
// remainder theorem. Its modulus is lcm(m1, m2). The second result is
// false when the two classes are disjoint, which happens exactly when the
// residues disagree modulo gcd(m1, m2).
func (e Element) Intersect(other Element) (Element, bool) {
	g := new(big.Int).GCD(nil, nil, e.modulus, other.modulus)
	combined := new(big.Int).Mul(e.modulus, other.modulus)
	combined.Quo(combined, g)

	r := new(big.Int).Mod(e.residue, g)
	if new(big.Int).Mod(other.residue, g).Cmp(r) != 0 {
		return Element{}, false
	}

	// Cross coefficients: each modulus, reduced into the other's ring and
	// scaled down by g, is invertible there because m1/g and m2/g are
	// coprime.
	otherInv := crossInverse(other.modulus, e.modulus, g)
	selfInv := crossInverse(e.modulus, other.modulus, g)

	t1 := new(big.Int).Sub(e.residue, r)
	t1.Quo(t1, g)
	t1.Mul(t1, new(big.Int).Quo(other.modulus, g))
	t1.Mul(t1, otherInv)

	t2 := new(big.Int).Sub(other.residue, r)
	t2.Quo(t2, g)
	t2.Mul(t2, new(big.Int).Quo(e.modulus, g))
	t2.Mul(t2, selfInv)

	sum := t1.Add(t1, t2)
	sum.Mul(sum, g)
	sum.Add(sum, r)
	return Element{sum.Mod(sum, combined), combined}, true
}

// crossInverse computes the inverse of (a mod m)/g in Z/(m/g)Z. The
// arguments always admit an inverse when called with g = gcd of two
// moduli whose residues agree modulo g.
func crossInverse(a, m, g *big.Int) *big.Int {
	reduced, err := NewElement(a, m)
	if err != nil {
		panic("modulo: cross inverse on invalid modulus: " + err.Error())
	}
	scaled, err := reduced.ScaleDown(g)
	if err != nil {
		panic("modulo: cross inverse scale failed: " + err.Error())
	}
	inv, err := scaled.Inverse()
	if err != nil {
		panic("modulo: cross inverse does not exist: " + err.Error())
	}
	return inv.residue
}
