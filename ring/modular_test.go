package ring

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModArithmetic(t *testing.T) {

	moduli := []uint64{97, 65537, 0x1fffffffffe00001}

	for _, q := range moduli {

		boundary := []uint64{0, 1, q - 1, q / 2}

		t.Run(fmt.Sprintf("ModAdd-ModSub/q=%d", q), func(t *testing.T) {
			for _, a := range boundary {
				for _, b := range boundary {
					require.Equal(t, (a+b)%q, ModAdd(a, b, q))
					require.Equal(t, (a+q-b)%q, ModSub(a, b, q))
				}
			}
		})

		t.Run(fmt.Sprintf("ModMul/q=%d", q), func(t *testing.T) {
			bigQ := new(big.Int).SetUint64(q)
			for _, a := range boundary {
				for _, b := range boundary {
					want := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
					want.Mod(want, bigQ)
					require.Equal(t, want.Uint64(), ModMul(a, b, q))
				}
			}
		})

		t.Run(fmt.Sprintf("ModExp/q=%d", q), func(t *testing.T) {
			bigQ := new(big.Int).SetUint64(q)
			for _, base := range boundary {
				for _, exp := range []uint64{0, 1, 2, 17, q - 1} {
					want := new(big.Int).Exp(
						new(big.Int).SetUint64(base),
						new(big.Int).SetUint64(exp),
						bigQ)
					require.Equal(t, want.Uint64(), ModExp(base, exp, q))
				}
			}
		})
	}

	t.Run("ModInv/Exhaustive", func(t *testing.T) {
		const q = 97
		for a := uint64(1); a < q; a++ {
			inv, err := ModInv(a, q)
			require.NoError(t, err)
			require.Equal(t, uint64(1), ModMul(a, inv, q))
		}
	})

	t.Run("ModInv/Zero", func(t *testing.T) {
		_, err := ModInv(0, 97)
		require.True(t, errors.Is(err, ErrInvalidParameter))
	})

	t.Run("ModInv/NotCoprime", func(t *testing.T) {
		_, err := ModInv(6, 15)
		require.True(t, errors.Is(err, ErrInvalidParameter))
	})
}

func TestPrimes(t *testing.T) {

	t.Run("IsPrime", func(t *testing.T) {
		require.True(t, IsPrime(97))
		require.True(t, IsPrime(65537))
		require.True(t, IsPrime(0x1fffffffffe00001))
		require.False(t, IsPrime(1))
		require.False(t, IsPrime(96))
		require.False(t, IsPrime(65536))
	})

	t.Run("Factorize", func(t *testing.T) {
		require.Equal(t, []uint64{2, 3}, Factorize(96))
		require.Equal(t, []uint64{2}, Factorize(65536))
		require.Equal(t, []uint64{97}, Factorize(97))
		require.Equal(t, []uint64{2, 3, 5, 7}, Factorize(2*2*3*5*7*7))
	})

	t.Run("PrimitiveRoot", func(t *testing.T) {
		// 97 - 1 = 96 = 2^5 * 3, so roots of order 8 exist.
		g, err := PrimitiveRoot(97, 8)
		require.NoError(t, err)
		require.NotZero(t, g)

		// Exact order: g^8 = 1 but g^4 != 1.
		require.Equal(t, uint64(1), ModExp(g, 8, 97))
		require.NotEqual(t, uint64(1), ModExp(g, 4, 97))
	})

	t.Run("PrimitiveRoot/OrderDoesNotDivide", func(t *testing.T) {
		_, err := PrimitiveRoot(97, 64)
		require.True(t, errors.Is(err, ErrInvalidParameter))
	})
}
