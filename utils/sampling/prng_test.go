package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhelab/bfvcore/utils/sampling"
)

func Test_PRNG(t *testing.T) {

	t.Run("PRNG", func(t *testing.T) {

		key := sampling.KeyFromUint64(0x490a423d, 0x979dc107)

		Ha, _ := sampling.NewKeyedPRNG(key)
		Hb, _ := sampling.NewKeyedPRNG(key)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			Hb.Read(sum1)
		}

		Hb.Reset()

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
		require.Equal(t, key, Ha.Key())
	})

	t.Run("KeyFromUint64", func(t *testing.T) {
		require.Equal(t, sampling.KeyFromUint64(1, 2), sampling.KeyFromUint64(1, 2))
		require.NotEqual(t, sampling.KeyFromUint64(1, 2), sampling.KeyFromUint64(2, 1))
		require.Len(t, sampling.KeyFromUint64(), 32)
	})
}
