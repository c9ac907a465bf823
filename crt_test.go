package modulo

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntersect(t *testing.T) {
	cases := []struct {
		r1, m1, r2, m2 int64
		residue, mod   int64
	}{
		{2, 3, 4, 5, 14, 15},
		{1, 10, 1, 14, 1, 70},
		{2, 10, 2, 14, 2, 70},
		{23, 100, 31, 49, 423, 4900},
		{3, 7, 3, 7, 3, 7},
		{0, 1, 5, 9, 5, 9},
	}
	for _, c := range cases {
		got, ok := MustElement(c.r1, c.m1).Intersect(MustElement(c.r2, c.m2))
		require.True(t, ok, "(%d, %d) & (%d, %d)", c.r1, c.m1, c.r2, c.m2)
		require.True(t, MustElement(c.residue, c.mod).Equal(got),
			"(%d, %d) & (%d, %d) = %v", c.r1, c.m1, c.r2, c.m2, got)
	}
}

func TestIntersectDisjoint(t *testing.T) {
	_, ok := MustElement(2, 10).Intersect(MustElement(4, 20))
	require.False(t, ok)

	_, ok = MustElement(0, 2).Intersect(MustElement(1, 2))
	require.False(t, ok)
}

func TestIntersectCommutes(t *testing.T) {
	a, b := MustElement(23, 100), MustElement(31, 49)
	x, ok := a.Intersect(b)
	require.True(t, ok)
	y, ok := b.Intersect(a)
	require.True(t, ok)
	require.True(t, x.Equal(y))
}

// TestIntersectExhaustive cross-checks the intersection operator against a
// bounded enumeration of both classes' members, for all residue pairs over
// all moduli below 20.
func TestIntersectExhaustive(t *testing.T) {
	members := func(r, m int64) map[int64]bool {
		set := make(map[int64]bool, 20)
		for i := int64(0); i < 20; i++ {
			set[r+i*m] = true
		}
		return set
	}

	for m := int64(1); m < 20; m++ {
		for a := int64(0); a < m; a++ {
			for n := int64(1); n < 20; n++ {
				for b := int64(0); b < n; b++ {
					got, ok := MustElement(a, m).Intersect(MustElement(b, n))

					common := map[int64]bool{}
					other := members(b, n)
					for v := range members(a, m) {
						if other[v] {
							common[v] = true
						}
					}

					g := new(big.Int).GCD(nil, nil, big.NewInt(m), big.NewInt(n)).Int64()
					if a%g == b%g {
						require.True(t, ok, "(%d, %d) & (%d, %d)", a, m, b, n)
						require.True(t, common[got.Int().Int64()],
							"(%d, %d) & (%d, %d) = %v not in bounded intersection", a, m, b, n, got)
						lcm := m / g * n
						require.Equal(t, lcm, got.Modulus().Int64(),
							"(%d, %d) & (%d, %d) modulus", a, m, b, n)
					} else {
						require.False(t, ok, "(%d, %d) & (%d, %d)", a, m, b, n)
						require.Empty(t, common, "(%d, %d) & (%d, %d)", a, m, b, n)
					}
				}
			}
		}
	}
}
