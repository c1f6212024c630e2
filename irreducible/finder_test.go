package irreducible

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlewis/ffcalc/field"
)

func TestIsPrimitive(t *testing.T) {
	a := assert.New(t)

	a.True(isPrimitive(2, 5))
	a.True(isPrimitive(3, 5))
	a.False(isPrimitive(4, 5))
	a.False(isPrimitive(1, 5))

	a.True(isPrimitive(3, 7))
	a.True(isPrimitive(5, 7))
	a.False(isPrimitive(2, 7))
}

func TestPrimitiveElements(t *testing.T) {
	a := assert.New(t)

	a.Equal([]int{2, 3}, primitiveElements(5))
	a.Equal([]int{3, 5}, primitiveElements(7))
	a.Equal([]int{1}, primitiveElements(2))
}

// TestComputeLargeExponentOfX checks that the ladder computes x^8 mod
// (x^2+1) over Z/3Z as 1, since x^2 = -1 = 2 mod the modulus, so x^4 = 1
// and x^8 = 1.
func TestComputeLargeExponentOfX(t *testing.T) {
	a := assert.New(t)
	require := require.New(t)

	f, err := field.New(3, []int{1, 0, 1}) // x^2 + 1
	require.NoError(err)

	got, err := computeLargeExponentOfX(big.NewInt(8), f)
	require.NoError(err)

	// x^2 = -1 = 2 (mod 3, mod f); x^4 = 2*2 = 4 = 1; x^8 = 1*1 = 1.
	one, err := field.New(3, []int{1})
	require.NoError(err)
	a.True(got.Equal(one))
}

func TestIsLowDegreeIrreducible(t *testing.T) {
	a := assert.New(t)
	require := require.New(t)

	// x^2 + 1 over Z/3Z has no root (0->1, 1->2, 2->2), irreducible.
	f, err := field.New(3, []int{1, 0, 1})
	require.NoError(err)
	ok, err := isIrreducible(f)
	a.NoError(err)
	a.True(ok)

	// x^2 + 1 over Z/5Z: f(2) = 4+1 = 5 = 0, reducible.
	f, err = field.New(5, []int{1, 0, 1})
	require.NoError(err)
	ok, err = isIrreducible(f)
	a.NoError(err)
	a.False(ok)
}

func TestFindDegree1(t *testing.T) {
	a := assert.New(t)

	f, err := Find(5, 1)
	a.NoError(err)
	a.Equal([]int{0, 1}, f.Coeffs())
}

func TestFindDegree2(t *testing.T) {
	a := assert.New(t)
	require := require.New(t)

	f, err := Find(2, 2)
	require.NoError(err)
	a.Equal(2, f.Degree())

	ok, err := isIrreducible(f)
	a.NoError(err)
	a.True(ok)
}

func TestFindDegree3(t *testing.T) {
	a := assert.New(t)
	require := require.New(t)

	f, err := Find(2, 3)
	require.NoError(err)
	a.Equal([]int{1, 1, 0, 1}, f.Coeffs())
}

// TestHardcodedDegree8IsIrreducible verifies the one (p, d) pair with no
// trinomial of the enumerated shape, Find(2, 8), returns a polynomial that
// independently passes the irreducibility test rather than merely
// returning a fixed value on faith.
func TestHardcodedDegree8IsIrreducible(t *testing.T) {
	a := assert.New(t)
	require := require.New(t)

	f, err := Find(2, 8)
	require.NoError(err)
	a.Equal(8, f.Degree())

	ok, err := isIrreducible(f)
	a.NoError(err)
	a.True(ok)
}

func TestFindNonPrimePowerDegree(t *testing.T) {
	a := assert.New(t)
	require := require.New(t)

	f, err := Find(2, 6)
	require.NoError(err)
	a.Equal(6, f.Degree())

	ok, err := isIrreducible(f)
	a.NoError(err)
	a.True(ok)
}

// TestFindExhaustsCandidates exercises the ErrNoIrreduciblePolynomial path
// directly, rather than waiting for a real (p, d) pair to exhaust the
// search, by calling findTrinomial against a degree for which the
// enumerated trinomial shape has no solution: a single-term constant zero
// poly is never constructible by findTrinomial, but passing d=0 makes the
// inner loop over k (1..d-1) empty for every (c, y), so no candidate is
// ever built and the search reports failure.
func TestFindExhaustsCandidates(t *testing.T) {
	a := assert.New(t)

	_, err := findTrinomial(5, 0)
	a.ErrorIs(err, ErrNoIrreduciblePolynomial)
}

func TestIsIrreducibleRejectsReducible(t *testing.T) {
	a := assert.New(t)
	require := require.New(t)

	// (x+1)(x+1) = x^2+2x+1 over Z/3Z -> reducible, has root x=2 (double).
	xPlus1, err := field.New(3, []int{1, 1})
	require.NoError(err)
	square, err := xPlus1.Mul(xPlus1)
	require.NoError(err)

	ok, err := isIrreducible(square)
	a.NoError(err)
	a.False(ok)
}

// BenchmarkFind sweeps the full supported (p, n) grid, one sub-benchmark per
// prime, timing Find across every degree 1..12 for that characteristic.
func BenchmarkFind(b *testing.B) {
	primes := []int{
		2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
		53, 59, 61, 67, 71, 73, 79, 83, 89, 97, 101,
	}

	for _, p := range primes {
		p := p
		b.Run(fmt.Sprintf("p=%d", p), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for d := 1; d <= 12; d++ {
					if _, err := Find(p, d); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}
