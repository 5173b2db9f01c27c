package ring

import (
	"testing"

	"github.com/fhelab/bfvcore/utils/sampling"
)

func benchRingAndPoly(b *testing.B, N int, q uint64) (*Ring, Poly) {

	r, err := NewRing(N, q)
	if err != nil {
		b.Fatal(err)
	}

	prng, err := sampling.NewKeyedPRNG(sampling.KeyFromUint64(uint64(N), q))
	if err != nil {
		b.Fatal(err)
	}

	pol, err := NewUniformSampler(prng, r).ReadNew()
	if err != nil {
		b.Fatal(err)
	}

	return r, pol
}

func BenchmarkForward(b *testing.B) {
	r, pol := benchRingAndPoly(b, 1024, 0x1fffffffffe00001)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Forward(pol)
	}
}

func BenchmarkBackward(b *testing.B) {
	r, pol := benchRingAndPoly(b, 1024, 0x1fffffffffe00001)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Backward(pol)
	}
}

func BenchmarkMulPoly(b *testing.B) {
	r, pol := benchRingAndPoly(b, 1024, 0x1fffffffffe00001)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.MulPoly(pol, pol); err != nil {
			b.Fatal(err)
		}
	}
}
