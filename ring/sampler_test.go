package ring

import (
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/fhelab/bfvcore/utils/sampling"
)

func TestUniformSampler(t *testing.T) {

	r, err := NewRing(4096, 0x1fffffffffe00001)
	require.NoError(t, err)

	prng, err := sampling.NewKeyedPRNG(sampling.KeyFromUint64(uint64(r.N), r.Modulus))
	require.NoError(t, err)

	sampler := NewUniformSampler(prng, r)

	pol, err := sampler.ReadNew()
	require.NoError(t, err)

	samples := make([]float64, r.N)
	for i, c := range pol.Coeffs {
		require.Less(t, c, r.Modulus)
		samples[i] = float64(c)
	}

	// The empirical mean of 4096 uniform draws over [0, q) stays well within
	// 5% of q/2.
	mean, err := stats.Mean(samples)
	require.NoError(t, err)

	expected := float64(r.Modulus) / 2
	require.InEpsilon(t, expected, mean, 0.05)

	t.Run("Deterministic", func(t *testing.T) {
		prng2, err := sampling.NewKeyedPRNG(sampling.KeyFromUint64(uint64(r.N), r.Modulus))
		require.NoError(t, err)

		pol2, err := NewUniformSampler(prng2, r).ReadNew()
		require.NoError(t, err)
		require.True(t, pol.Equal(pol2))
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		require.Error(t, sampler.Read(NewPoly(r.N-1)))
	})
}
