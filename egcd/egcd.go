// Package egcd implements the extended Euclidean algorithm over
// arbitrary-precision integers, along with the modular-inverse helper
// built on top of it.
package egcd

import "math/big"

// EGCD returns d = gcd(a, m) together with Bézout coefficients x and y
// satisfying a*x + m*y = d. For nonnegative inputs d is nonnegative; the
// coefficients may be negative.
func EGCD(a, m *big.Int) (d, x, y *big.Int) {
	// Knuth, TAOCP Vol 1 (3e), Algorithm E.
	x0, x1 := big.NewInt(1), new(big.Int)
	y0, y1 := new(big.Int), big.NewInt(1)
	c := new(big.Int).Set(a)
	rem := new(big.Int).Set(m)
	for rem.Sign() != 0 {
		q, r := new(big.Int).QuoRem(c, rem, new(big.Int))
		c, rem = rem, r
		x0, x1 = x1, x0.Sub(x0, new(big.Int).Mul(q, x1))
		y0, y1 = y1, y0.Sub(y0, new(big.Int).Mul(q, y1))
	}
	return c, x0, y0
}

// Inverse returns the multiplicative inverse of a modulo m, reduced into
// [0, m), and true; or nil and false when gcd(a, m) > 1 and no inverse
// exists. m must be positive.
func Inverse(a, m *big.Int) (*big.Int, bool) {
	d, x, _ := EGCD(a, m)
	if d.Cmp(big.NewInt(1)) != 0 {
		return nil, false
	}
	return x.Mod(x, m), true
}
