package modulo

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRing(t *testing.T) {
	r, err := NewRing(big.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, int64(7), r.Modulus().Int64())
	require.Equal(t, int64(7), r.Len().Int64())
	require.Equal(t, "modulo(7)", r.String())

	_, err = NewRing(big.NewInt(0))
	require.ErrorIs(t, err, ErrInvalidModulus)
	_, err = NewRing(nil)
	require.ErrorIs(t, err, ErrInvalidModulus)
}

func TestRingReduce(t *testing.T) {
	r := MustRing(11)

	got, err := r.Reduce(big.NewInt(7))
	require.NoError(t, err)
	require.True(t, MustElement(7, 11).Equal(got))

	got, err = r.Reduce(big.NewInt(-4))
	require.NoError(t, err)
	require.True(t, MustElement(7, 11).Equal(got))

	_, err = r.Reduce(nil)
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestRingIndex(t *testing.T) {
	r := MustRing(7)

	got, err := r.Index(big.NewInt(2))
	require.NoError(t, err)
	require.True(t, MustElement(2, 7).Equal(got))

	// Negative indices wrap around.
	got, err = r.Index(big.NewInt(-2))
	require.NoError(t, err)
	require.True(t, MustElement(5, 7).Equal(got))

	_, err = r.Index(nil)
	require.ErrorIs(t, err, ErrInvalidIndex)
}

func TestRingContains(t *testing.T) {
	require.True(t, MustRing(7).Contains(MustElement(4, 7)))
	require.False(t, MustRing(7).Contains(MustElement(4, 5)))
}

func TestRingIdentities(t *testing.T) {
	r := MustRing(7)
	require.True(t, MustElement(0, 7).Equal(r.Zero()))
	require.True(t, MustElement(1, 7).Equal(r.One()))

	trivial := MustRing(1)
	require.True(t, trivial.Zero().Equal(trivial.One()))
}

func TestRingIsField(t *testing.T) {
	require.True(t, MustRing(7).IsField())
	require.True(t, MustRing(2).IsField())
	require.False(t, MustRing(6).IsField())
	require.False(t, MustRing(1).IsField())
}

func TestRingElements(t *testing.T) {
	r := MustRing(4)

	collect := func() []string {
		var classes []string
		for e := range r.Elements() {
			classes = append(classes, e.String())
		}
		return classes
	}

	want := []string{"modulo(0, 4)", "modulo(1, 4)", "modulo(2, 4)", "modulo(3, 4)"}
	require.Equal(t, want, collect())
	// Restartable: a second range yields the identical sequence.
	require.Equal(t, want, collect())

	// Early termination does not disturb later iterations.
	for range r.Elements() {
		break
	}
	require.Equal(t, want, collect())
}

func TestRingElementsCardinality(t *testing.T) {
	for m := int64(1); m <= 50; m++ {
		r := MustRing(m)
		expected := int64(0)
		for e := range r.Elements() {
			require.Equal(t, expected, e.Int().Int64(), "modulus %d", m)
			require.Equal(t, m, e.Modulus().Int64(), "modulus %d", m)
			expected++
		}
		require.Equal(t, m, expected, "modulus %d", m)
	}
}

func TestRingEqualAndKey(t *testing.T) {
	require.True(t, MustRing(4).Equal(MustRing(4)))
	require.False(t, MustRing(5).Equal(MustRing(7)))
	require.NotEqual(t, MustRing(3).Key(), MustElement(0, 3).Key())
}
